package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt is the append-only ledger of graded attempts.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{CreatedAtMixin{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("concept_id").
			NotEmpty().
			Immutable(),
		field.String("course_id").
			Immutable().
			Comment("Denormalized from the concept for course history queries"),
		field.Float("score_percent").
			Min(0).
			Max(100).
			Immutable(),
		field.String("session_id").
			Default("").
			Immutable().
			Comment("Learning session the attempt belongs to, if known"),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "course_id"),
		index.Fields("user_id", "concept_id"),
	}
}
