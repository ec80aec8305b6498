package store

import (
	"context"
	"log"
	"time"
)

const persistTimeout = 5 * time.Second

// Saver adapts the repositories to best-effort persistence calls.
// Failures are logged and never surfaced to the caller; losing a
// checkpoint must not interrupt a quiz in flight. Calls run
// synchronously so that writes commit in issue order: a submit's
// DeleteProgress always lands after the save that preceded it.
type Saver struct {
	Progress ProgressRepo
	History  HistoryRepo
	Customs  CustomQuizRepo
}

// SaveProgress writes a progress snapshot.
func (s *Saver) SaveProgress(snap *ProgressSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.Progress.Save(ctx, snap); err != nil {
		log.Printf("store: save progress %s: %v", snap.QuizID, err)
	}
}

// DeleteProgress removes a quiz's saved progress.
func (s *Saver) DeleteProgress(quizID string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.Progress.Delete(ctx, quizID); err != nil {
		log.Printf("store: delete progress %s: %v", quizID, err)
	}
}

// DeleteCustomQuiz removes an imported set and its progress snapshot.
func (s *Saver) DeleteCustomQuiz(quizID string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.Customs.Delete(ctx, quizID); err != nil {
		log.Printf("store: delete custom quiz %s: %v", quizID, err)
	}
}

// AppendHistory records a finished attempt.
func (s *Saver) AppendHistory(entry *HistoryEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.History.Append(ctx, entry); err != nil {
		log.Printf("store: append history %q: %v", entry.Title, err)
	}
}
