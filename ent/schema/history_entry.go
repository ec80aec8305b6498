package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryEntry records one finished quiz attempt. The log is bounded:
// the store keeps only the most recent entries and evicts the oldest.
type HistoryEntry struct {
	ent.Schema
}

func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			Comment("Display title of the attempted quiz"),
		field.Time("taken_at").
			Default(time.Now).
			Immutable().
			Comment("When the attempt was submitted"),
		field.Int("score").
			Comment("Number of correctly answered questions"),
		field.Int("total").
			Comment("Number of questions in the attempt"),
		field.JSON("data", map[string]any{}).
			Comment("Frozen questions and answers for review"),
	}
}

func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("taken_at"),
	}
}
