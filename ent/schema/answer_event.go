package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent logs one checked answer together with its diagnosis.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups answers from one sitting"),
		field.String("question_text").
			NotEmpty(),
		field.Int("user_answer").
			Comment("The answer the child gave"),
		field.Int("correct_answer"),
		field.Bool("correct"),
		field.String("tags").
			Default("").
			Comment("Comma-joined error tags; empty for correct or unmatched answers"),
		field.String("severity").
			NotEmpty().
			Comment("critical, moderate, or minor"),
		field.String("strategy").
			NotEmpty().
			Comment("Which mental-math strategy the question exercises"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
		index.Fields("severity"),
	}
}
