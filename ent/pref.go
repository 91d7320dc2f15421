// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marksaft/gramiz/ent/pref"
)

// Pref is the model entity for the Pref schema.
type Pref struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Preference name, e.g. "leaderboard"
	Key string `json:"key,omitempty"`
	// JSON-encoded value
	Value        string `json:"value,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pref) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pref.FieldID:
			values[i] = new(sql.NullInt64)
		case pref.FieldKey, pref.FieldValue:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pref fields.
func (_m *Pref) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pref.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pref.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case pref.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the Pref.
// This includes values selected through modifiers, order, etc.
func (_m *Pref) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Pref.
// Note that you need to call Pref.Unwrap() before calling this method if this Pref
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pref) Update() *PrefUpdateOne {
	return NewPrefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pref entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pref) Unwrap() *Pref {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Pref is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pref) String() string {
	var builder strings.Builder
	builder.WriteString("Pref(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteByte(')')
	return builder.String()
}

// Prefs is a parsable slice of Pref.
type Prefs []*Pref
