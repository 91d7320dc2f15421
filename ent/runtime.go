// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/marksaft/gramiz/ent/runevent"
	"github.com/marksaft/gramiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventFields[5].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
}
