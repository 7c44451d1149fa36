package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryState holds the three learner signals for one (user, concept)
// pair. Rows are created on the first graded attempt and never deleted.
type MasteryState struct {
	ent.Schema
}

func (MasteryState) Mixin() []ent.Mixin {
	return []ent.Mixin{CreatedAtMixin{}}
}

func (MasteryState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("concept_id").
			NotEmpty().
			Immutable(),
		field.Float("mastery_score").
			Default(0).
			Min(0).
			Max(1),
		field.Float("confidence_score").
			Default(0).
			Min(0).
			Max(1),
		field.Float("frustration_score").
			Default(0).
			Min(0).
			Max(1),
		field.Int("attempts").
			Default(0).
			NonNegative(),
		field.Bool("recommended_by_adapter").
			Default(false).
			Comment("Set when the concept was last chosen by the recommendation adapter"),
		field.Time("last_seen").
			Default(time.Now),
	}
}

func (MasteryState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept_id").
			Unique(),
		index.Fields("user_id", "last_seen"),
	}
}
