package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CustomQuiz holds a user-imported question set.
type CustomQuiz struct {
	ent.Schema
}

func (CustomQuiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Generated UUID; also the key of any progress snapshot"),
		field.String("name").
			NotEmpty().
			Comment("Display name, from the file's quiz title"),
		field.JSON("data", map[string]any{}).
			Comment("The imported questions"),
		field.Time("uploaded_at").
			Default(time.Now).
			Immutable().
			Comment("When the set was imported"),
	}
}

func (CustomQuiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploaded_at"),
	}
}
