// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CustomQuiz is the predicate function for customquiz builders.
type CustomQuiz func(*sql.Selector)

// HistoryEntry is the predicate function for historyentry builders.
type HistoryEntry func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)
