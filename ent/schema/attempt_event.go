package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one finalized drawing attempt: which character was
// drawn, in what kind of session, and how it scored.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Default("").
			Comment("UUID of the owning session, empty for freestyle practice"),
		field.String("character_uuid").
			NotEmpty().
			Comment("Backend identity of the character"),
		field.String("character").
			NotEmpty().
			Comment("The literal character drawn"),
		field.String("kind").
			NotEmpty().
			Comment("lesson, review or freestyle"),
		field.Int("score").
			Comment("Completion percentage 0-100"),
		field.Int("stroke_count").
			Default(0).
			Comment("Number of strokes in the finalized attempt"),
		field.Bool("mismatch").
			Default(false).
			Comment("Whether the attempt was scored zero for a stroke-count mismatch"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("character_uuid"),
		index.Fields("kind"),
	}
}
