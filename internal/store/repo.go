package store

import (
	"context"
	"time"

	"quizdeck/internal/quiz"
)

// HistoryLimit bounds the attempt log: appending past the limit evicts
// the oldest entries.
const HistoryLimit = 20

// ProgressSnapshot is the saved state of an unfinished attempt, keyed
// by quiz id. At most one exists per quiz id.
type ProgressSnapshot struct {
	QuizID        string          `json:"quiz_id"`
	Questions     []quiz.Question `json:"questions"`
	Answers       map[int]string  `json:"answers"`
	Flags         []int           `json:"flags"`
	CurrentIndex  int             `json:"current_index"`
	TimeRemaining int             `json:"time_remaining"`
	Elapsed       int             `json:"elapsed"`
	SavedAt       time.Time       `json:"saved_at"`
}

// HistoryEntry is one finished attempt, frozen for later review.
type HistoryEntry struct {
	ID        int             `json:"-"`
	Title     string          `json:"title"`
	TakenAt   time.Time       `json:"taken_at"`
	Score     int             `json:"score"`
	Total     int             `json:"total"`
	Questions []quiz.Question `json:"questions"`
	Answers   map[int]string  `json:"answers"`
}

// CustomQuiz is a user-imported question set.
type CustomQuiz struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Questions  []quiz.Question `json:"questions"`
	UploadedAt time.Time       `json:"uploaded_at"`
}

// ProgressRepo persists progress snapshots. Save overwrites any prior
// snapshot for the same quiz id.
type ProgressRepo interface {
	Save(ctx context.Context, snap *ProgressSnapshot) error

	// Load returns nil (no error) when no snapshot exists.
	Load(ctx context.Context, quizID string) (*ProgressSnapshot, error)

	// Delete is a no-op when no snapshot exists.
	Delete(ctx context.Context, quizID string) error

	// ActiveQuizIDs returns the quiz ids with a saved snapshot, for
	// the home screen's "in progress" tags.
	ActiveQuizIDs(ctx context.Context) (map[string]bool, error)
}

// HistoryRepo persists the bounded attempt log.
type HistoryRepo interface {
	// Append stores an entry and evicts the oldest beyond HistoryLimit.
	Append(ctx context.Context, entry *HistoryEntry) error

	// List returns entries oldest first.
	List(ctx context.Context) ([]*HistoryEntry, error)
}

// CustomQuizRepo persists user-imported question sets.
type CustomQuizRepo interface {
	Save(ctx context.Context, cq *CustomQuiz) error
	List(ctx context.Context) ([]*CustomQuiz, error)

	// Delete removes the set and any progress snapshot saved under its id.
	Delete(ctx context.Context, quizID string) error
}
