package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MatchEvent records a completed memory-match game.
type MatchEvent struct {
	ent.Schema
}

func (MatchEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MatchEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the game"),
		field.String("category").
			Optional().
			Comment("Category the game was started for, empty for all"),
		field.Int("pairs").
			Comment("Number of word pairs on the board"),
		field.Int("moves").
			Comment("Completed 2-card attempts; lower is better"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock game time in seconds"),
	}
}

func (MatchEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
