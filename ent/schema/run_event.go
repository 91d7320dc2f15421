package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent records one completed quiz run. Rows are append-only; the stats
// command reads them back in reverse chronological order.
type RunEvent struct {
	ent.Schema
}

func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Comment("UUID assigned when the run started"),
		field.String("mode").
			Comment("\"normal\" or \"daily\""),
		field.Int("score"),
		field.Int("total").
			Comment("Number of questions in the run"),
		field.Int("time_remaining").
			Comment("Summed seconds left on correct answers"),
		field.Time("timestamp").
			Default(time.Now),
	}
}

func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("run_id"),
	}
}
