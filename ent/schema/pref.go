package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Pref is a single named preference blob. Each row holds one JSON value
// replaced whole on every write (leaderboard, dailyStats, isMuted,
// isSupporter).
type Pref struct {
	ent.Schema
}

func (Pref) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Comment("Preference name, e.g. \"leaderboard\""),
		field.String("value").
			Comment("JSON-encoded value"),
	}
}

func (Pref) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
