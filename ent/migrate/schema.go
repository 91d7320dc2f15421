// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PrefsColumns holds the columns for the "prefs" table.
	PrefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// PrefsTable holds the schema information for the "prefs" table.
	PrefsTable = &schema.Table{
		Name:       "prefs",
		Columns:    PrefsColumns,
		PrimaryKey: []*schema.Column{PrefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pref_key",
				Unique:  true,
				Columns: []*schema.Column{PrefsColumns[1]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "time_remaining", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[6]},
			},
			{
				Name:    "runevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PrefsTable,
		RunEventsTable,
	}
)

func init() {
}
