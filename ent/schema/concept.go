package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Concept is a unit of learnable content. Prerequisites are stored as an
// adjacency list of concept IDs rather than an edge table so the graph can
// be loaded in one query.
type Concept struct {
	ent.Schema
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable catalog identifier"),
		field.String("course_id").
			NotEmpty(),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Int("difficulty").
			Default(1).
			Positive(),
		field.Int("order_index").
			Default(0).
			Comment("Position within the course"),
		field.Strings("prerequisites").
			Optional().
			Comment("IDs of concepts that must be mastered first"),
		field.Bool("active").
			Default(true),
	}
}

func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "order_index"),
		index.Fields("active"),
	}
}
