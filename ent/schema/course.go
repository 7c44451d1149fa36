package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Course groups concepts. Owned by the content catalog; the scheduler
// only reads it.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable catalog identifier"),
		field.String("name"),
		field.Int("grade_level").
			Default(0),
		field.Bool("active").
			Default(true),
	}
}
