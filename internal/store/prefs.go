package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/marksaft/gramiz/ent"
	"github.com/marksaft/gramiz/ent/pref"
)

// prefsRepo implements PrefsRepo using the ent client.
type prefsRepo struct {
	client *ent.Client
}

func (r *prefsRepo) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	raw, err := r.get(ctx, KeyLeaderboard)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []LeaderboardEntry{}, nil
	}
	var entries []LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// Corrupted blob degrades to the default, never propagates.
		return []LeaderboardEntry{}, nil
	}
	return entries, nil
}

func (r *prefsRepo) SetLeaderboard(ctx context.Context, entries []LeaderboardEntry) error {
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	return r.setJSON(ctx, KeyLeaderboard, entries)
}

func (r *prefsRepo) DailyStats(ctx context.Context) (DailyStats, error) {
	raw, err := r.get(ctx, KeyDailyStats)
	if err != nil {
		return DailyStats{}, err
	}
	if raw == "" {
		return DailyStats{}, nil
	}
	var stats DailyStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return DailyStats{}, nil
	}
	return stats, nil
}

func (r *prefsRepo) SetDailyStats(ctx context.Context, stats DailyStats) error {
	return r.setJSON(ctx, KeyDailyStats, stats)
}

func (r *prefsRepo) Muted(ctx context.Context) (bool, error) {
	return r.getBool(ctx, KeyMuted)
}

func (r *prefsRepo) SetMuted(ctx context.Context, muted bool) error {
	return r.setJSON(ctx, KeyMuted, muted)
}

func (r *prefsRepo) Supporter(ctx context.Context) (bool, error) {
	return r.getBool(ctx, KeySupporter)
}

func (r *prefsRepo) SetSupporter(ctx context.Context, supporter bool) error {
	return r.setJSON(ctx, KeySupporter, supporter)
}

func (r *prefsRepo) Reset(ctx context.Context) error {
	_, err := r.client.Pref.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset prefs: %w", err)
	}
	return nil
}

// get returns the raw stored value for key, or "" if absent.
func (r *prefsRepo) get(ctx context.Context, key string) (string, error) {
	p, err := r.client.Pref.Query().
		Where(pref.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query pref %q: %w", key, err)
	}
	return p.Value, nil
}

func (r *prefsRepo) getBool(ctx context.Context, key string) (bool, error) {
	raw, err := r.get(ctx, key)
	if err != nil {
		return false, err
	}
	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return false, nil
	}
	return v, nil
}

// setJSON replaces the whole blob stored under key.
func (r *prefsRepo) setJSON(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal pref %q: %w", key, err)
	}

	n, err := r.client.Pref.Update().
		Where(pref.KeyEQ(key)).
		SetValue(string(b)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update pref %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Pref.Create().
		SetKey(key).
		SetValue(string(b)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create pref %q: %w", key, err)
	}
	return nil
}
