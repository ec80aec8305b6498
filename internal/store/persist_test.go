package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// slowProgressRepo records commits in the order they complete, with an
// artificial delay on Save so that an unordered writer would let a
// later Delete finish first.
type slowProgressRepo struct {
	mu    sync.Mutex
	order []string
	snaps map[string]*ProgressSnapshot
}

func newSlowProgressRepo() *slowProgressRepo {
	return &slowProgressRepo{snaps: make(map[string]*ProgressSnapshot)}
}

func (r *slowProgressRepo) Save(ctx context.Context, snap *ProgressSnapshot) error {
	time.Sleep(30 * time.Millisecond)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, "save")
	r.snaps[snap.QuizID] = snap
	return nil
}

func (r *slowProgressRepo) Load(ctx context.Context, quizID string) (*ProgressSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snaps[quizID], nil
}

func (r *slowProgressRepo) Delete(ctx context.Context, quizID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, "delete")
	delete(r.snaps, quizID)
	return nil
}

func (r *slowProgressRepo) ActiveQuizIDs(ctx context.Context) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]bool, len(r.snaps))
	for id := range r.snaps {
		ids[id] = true
	}
	return ids, nil
}

// A delete issued after a save must always win, or a finished quiz
// comes back as "in progress".
func TestSaverWritesCommitInOrder(t *testing.T) {
	repo := newSlowProgressRepo()
	s := &Saver{Progress: repo}

	s.SaveProgress(&ProgressSnapshot{QuizID: "c1", Questions: testQuestions()})
	s.DeleteProgress("c1")

	repo.mu.Lock()
	order := append([]string(nil), repo.order...)
	repo.mu.Unlock()
	if len(order) != 2 || order[0] != "save" || order[1] != "delete" {
		t.Fatalf("commit order = %v, want [save delete]", order)
	}

	snap, err := repo.Load(context.Background(), "c1")
	if err != nil {
		t.Fatal(err)
	}
	if snap != nil {
		t.Error("snapshot present after delete: save committed out of order")
	}
}

type failingHistoryRepo struct{}

func (failingHistoryRepo) Append(ctx context.Context, entry *HistoryEntry) error {
	return errors.New("disk full")
}

func (failingHistoryRepo) List(ctx context.Context) ([]*HistoryEntry, error) {
	return nil, nil
}

// Persistence failures are logged, never propagated.
func TestSaverSwallowsFailures(t *testing.T) {
	s := &Saver{History: failingHistoryRepo{}}
	s.AppendHistory(&HistoryEntry{Title: "t", Total: 1})
}
