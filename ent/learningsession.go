// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/masteryforge/ent/learningsession"
	"github.com/google/uuid"
)

// LearningSession is the model entity for the LearningSession schema.
type LearningSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// Nil while the session is open
	EndTime *time.Time `json:"end_time,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// AverageScore holds the value of the "average_score" field.
	AverageScore float64 `json:"average_score,omitempty"`
	// ConceptsCovered holds the value of the "concepts_covered" field.
	ConceptsCovered []string `json:"concepts_covered,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningsession.FieldConceptsCovered:
			values[i] = new([]byte)
		case learningsession.FieldAverageScore:
			values[i] = new(sql.NullFloat64)
		case learningsession.FieldTotalQuestions:
			values[i] = new(sql.NullInt64)
		case learningsession.FieldUserID:
			values[i] = new(sql.NullString)
		case learningsession.FieldStartTime, learningsession.FieldEndTime:
			values[i] = new(sql.NullTime)
		case learningsession.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningSession fields.
func (_m *LearningSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningsession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case learningsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningsession.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case learningsession.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case learningsession.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case learningsession.FieldAverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				_m.AverageScore = value.Float64
			}
		case learningsession.FieldConceptsCovered:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concepts_covered", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptsCovered); err != nil {
					return fmt.Errorf("unmarshal field concepts_covered: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningSession.
// This includes values selected through modifiers, order, etc.
func (_m *LearningSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningSession.
// Note that you need to call LearningSession.Unwrap() before calling this method if this LearningSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningSession) Update() *LearningSessionUpdateOne {
	return NewLearningSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningSession) Unwrap() *LearningSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningSession) String() string {
	var builder strings.Builder
	builder.WriteString("LearningSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("concepts_covered=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptsCovered))
	builder.WriteByte(')')
	return builder.String()
}

// LearningSessions is a parsable slice of LearningSession.
type LearningSessions []*LearningSession
