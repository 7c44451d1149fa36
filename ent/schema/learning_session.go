package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LearningSession is a bounded window of learner activity.
type LearningSession struct {
	ent.Schema
}

func (LearningSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Time("start_time").
			Default(time.Now).
			Immutable(),
		field.Time("end_time").
			Optional().
			Nillable().
			Comment("Nil while the session is open"),
		field.Int("total_questions").
			Default(0).
			NonNegative(),
		field.Float("average_score").
			Default(0),
		field.Strings("concepts_covered").
			Optional(),
	}
}

func (LearningSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "start_time"),
	}
}
