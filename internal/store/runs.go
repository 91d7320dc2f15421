package store

import (
	"context"
	"fmt"

	"github.com/marksaft/gramiz/ent"
	"github.com/marksaft/gramiz/ent/runevent"
)

// runRepo implements RunRepo using the ent client.
type runRepo struct {
	client *ent.Client
}

func (r *runRepo) Append(ctx context.Context, run Run) error {
	builder := r.client.RunEvent.Create().
		SetRunID(run.RunID).
		SetMode(run.Mode).
		SetScore(run.Score).
		SetTotal(run.Total).
		SetTimeRemaining(run.TimeRemaining)
	if !run.Timestamp.IsZero() {
		builder = builder.SetTimestamp(run.Timestamp)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("append run event: %w", err)
	}
	return nil
}

func (r *runRepo) Recent(ctx context.Context, limit int) ([]Run, error) {
	q := r.client.RunEvent.Query().
		Order(ent.Desc(runevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query run events: %w", err)
	}

	runs := make([]Run, 0, len(events))
	for _, e := range events {
		runs = append(runs, Run{
			RunID:         e.RunID,
			Mode:          e.Mode,
			Score:         e.Score,
			Total:         e.Total,
			TimeRemaining: e.TimeRemaining,
			Timestamp:     e.Timestamp,
		})
	}
	return runs, nil
}

func (r *runRepo) Reset(ctx context.Context) error {
	_, err := r.client.RunEvent.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset run events: %w", err)
	}
	return nil
}
