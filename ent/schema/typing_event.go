package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TypingEvent records one completed typing attempt.
type TypingEvent struct {
	ent.Schema
}

func (TypingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TypingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("word_id").
			NotEmpty().
			Comment("Target word of the attempt"),
		field.Int("wpm").
			Default(0).
			Comment("Words per minute; meaningless when has_wpm is false"),
		field.Bool("has_wpm").
			Default(true).
			Comment("False when the attempt completed too fast to measure"),
		field.Int64("elapsed_ms").
			Comment("Milliseconds from first keystroke to completion"),
	}
}

func (TypingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word_id"),
	}
}
