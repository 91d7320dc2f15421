// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Pref is the predicate function for pref builders.
type Pref func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)
