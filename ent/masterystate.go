// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/masteryforge/ent/masterystate"
)

// MasteryState is the model entity for the MasteryState schema.
type MasteryState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// MasteryScore holds the value of the "mastery_score" field.
	MasteryScore float64 `json:"mastery_score,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// FrustrationScore holds the value of the "frustration_score" field.
	FrustrationScore float64 `json:"frustration_score,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Set when the concept was last chosen by the recommendation adapter
	RecommendedByAdapter bool `json:"recommended_by_adapter,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masterystate.FieldRecommendedByAdapter:
			values[i] = new(sql.NullBool)
		case masterystate.FieldMasteryScore, masterystate.FieldConfidenceScore, masterystate.FieldFrustrationScore:
			values[i] = new(sql.NullFloat64)
		case masterystate.FieldID, masterystate.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case masterystate.FieldUserID, masterystate.FieldConceptID:
			values[i] = new(sql.NullString)
		case masterystate.FieldCreatedAt, masterystate.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryState fields.
func (_m *MasteryState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masterystate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masterystate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case masterystate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case masterystate.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case masterystate.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = value.Float64
			}
		case masterystate.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case masterystate.FieldFrustrationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field frustration_score", values[i])
			} else if value.Valid {
				_m.FrustrationScore = value.Float64
			}
		case masterystate.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case masterystate.FieldRecommendedByAdapter:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_by_adapter", values[i])
			} else if value.Valid {
				_m.RecommendedByAdapter = value.Bool
			}
		case masterystate.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryState.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryState.
// Note that you need to call MasteryState.Unwrap() before calling this method if this MasteryState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryState) Update() *MasteryStateUpdateOne {
	return NewMasteryStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryState) Unwrap() *MasteryState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryState) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("frustration_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrustrationScore))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("recommended_by_adapter=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedByAdapter))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MasteryStates is a parsable slice of MasteryState.
type MasteryStates []*MasteryState
