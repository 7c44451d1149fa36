package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one recommender call to a hosted model, kept for the
// `llm` inspection commands and cost estimates.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{CreatedAtMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider"),
		field.String("model").Comment("model that served the call, falling back to the configured one"),
		field.String("purpose").Comment("rank-concepts or next-concept"),
		field.Int("input_tokens").Default(0).NonNegative(),
		field.Int("output_tokens").Default(0).NonNegative(),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_message").Default(""),
		field.Text("request_body").Default(""),
		field.Text("response_body").Default("").Comment("empty on failure"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("model"),
		index.Fields("success"),
	}
}
