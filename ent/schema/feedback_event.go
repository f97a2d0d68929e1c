package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent records the encouragement text shown for an answer.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("question_text").NotEmpty(),
		field.String("tags").
			Default("").
			Comment("Comma-joined error tags the text was selected for"),
		field.String("source").
			NotEmpty().
			Comment("template, llm, or cache"),
		field.String("text").
			NotEmpty().
			Comment("The feedback shown to the learner"),
	}
}

func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("source"),
	}
}
