package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Word is a vocabulary item together with its scheduling state and the
// rolling statistics of typed-answer attempts.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("term").
			NotEmpty().
			Comment("The word or phrase being learned"),
		field.String("translation").
			NotEmpty().
			Comment("Primary translation in the learner's language"),
		field.JSON("synonyms", []string{}).
			Optional().
			Comment("Alternative accepted translations"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Free-form grouping labels"),
		field.String("notes").
			Default("").
			Comment("Learner notes, usage examples"),
		field.Int("mastery_level").
			Default(0).
			Min(0).
			Max(5).
			Comment("0 new .. 4 strong, 5 retired from scheduling"),
		field.Int("interval_days").
			Default(0).
			Comment("Current review interval"),
		field.Time("last_review_at").
			Optional().
			Nillable().
			Comment("When the word was last reviewed"),
		field.Time("next_review_at").
			Optional().
			Nillable().
			Comment("When the word is due again; unset while retired"),
		field.Int("attempt_count").
			Default(0).
			Comment("Typed answers submitted for this word"),
		field.Int("correct_count").
			Default(0).
			Comment("Typed answers accepted for this word"),
		field.Int("last_score").
			Default(0).
			Comment("Score of the most recent typed answer"),
		field.Int("avg_response_ms").
			Default(0).
			Comment("Rolling mean answer latency"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("term").Unique(),
		index.Fields("mastery_level"),
		index.Fields("next_review_at"),
		index.Fields("created_at"),
	}
}
