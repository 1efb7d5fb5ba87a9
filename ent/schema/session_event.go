package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records SRS session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("kind").
			NotEmpty().
			Comment("lesson or review"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("items_total").
			Default(0).
			Comment("Batch size (on start and end)"),
		field.Int("items_completed").
			Default(0).
			Comment("Characters finalized (on end only)"),
		field.Float("average_score").
			Default(0).
			Comment("Mean completion percentage (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("kind"),
		index.Fields("action"),
	}
}
