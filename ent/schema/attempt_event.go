package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single graded answer within a review or
// training session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("word_id").
			Comment("Word this attempt was for"),
		field.String("term").
			NotEmpty().
			Comment("The word term at the time of the attempt"),
		field.String("mode").
			NotEmpty().
			Comment("recognition, translation_input, or reverse_input"),
		field.String("session_type").
			NotEmpty().
			Comment("daily or training"),
		field.String("direction").
			NotEmpty().
			Comment("forward or reverse"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner typed; empty for recognition mode"),
		field.Int("score").
			Comment("Quality score 1-4"),
		field.String("reason").
			Default("").
			Comment("exact, synonym, typo, hint_used, or wrong"),
		field.Bool("correct").
			Comment("Whether the answer was accepted"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word_id"),
		index.Fields("correct"),
	}
}
