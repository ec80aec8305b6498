package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress is the saved state of an unfinished quiz attempt.
// At most one row exists per quiz id; it is overwritten on every
// answer change and deleted when the attempt is submitted.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Unique().
			Comment("Chapter id, 'all', or a custom quiz id"),
		field.JSON("data", map[string]any{}).
			Comment("Frozen questions, answers, flags, position and timer values"),
		field.Time("saved_at").
			Default(time.Now).
			Comment("When the snapshot was written"),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
	}
}
