package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"quizdeck/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{
			Text:        "Q1",
			ChapterID:   "c1",
			ChapterName: "Chapter 1",
			Options:     []quiz.Option{{Text: "A"}, {Text: "B", IsCorrect: true}},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Absent snapshot loads as nil without error.
	snap, err := repo.Load(ctx, "c1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot before save")
	}

	in := &ProgressSnapshot{
		QuizID:        "c1",
		Questions:     testQuestions(),
		Answers:       map[int]string{0: "B"},
		Flags:         []int{0},
		CurrentIndex:  0,
		TimeRemaining: 540,
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := repo.Load(ctx, "c1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out == nil {
		t.Fatal("expected snapshot after save")
	}
	if out.Answers[0] != "B" {
		t.Errorf("Answers[0] = %q, want %q", out.Answers[0], "B")
	}
	if len(out.Flags) != 1 || out.Flags[0] != 0 {
		t.Errorf("Flags = %v, want [0]", out.Flags)
	}
	if out.TimeRemaining != 540 {
		t.Errorf("TimeRemaining = %d, want 540", out.TimeRemaining)
	}
	if len(out.Questions) != 1 || out.Questions[0].Text != "Q1" {
		t.Errorf("Questions = %+v", out.Questions)
	}
	if out.SavedAt.IsZero() {
		t.Error("SavedAt not set on save")
	}
}

func TestProgressSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first := &ProgressSnapshot{QuizID: "c1", Questions: testQuestions(), Answers: map[int]string{0: "A"}}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := &ProgressSnapshot{QuizID: "c1", Questions: testQuestions(), Answers: map[int]string{0: "B"}, CurrentIndex: 0}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	out, err := repo.Load(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if out.Answers[0] != "B" {
		t.Errorf("Answers[0] = %q, want %q (latest save wins)", out.Answers[0], "B")
	}

	ids, err := repo.ActiveQuizIDs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || !ids["c1"] {
		t.Errorf("ActiveQuizIDs = %v, want exactly {c1}", ids)
	}
}

func TestProgressDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &ProgressSnapshot{QuizID: "c1", Questions: testQuestions()}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "c1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	snap, err := repo.Load(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if snap != nil {
		t.Error("snapshot still present after delete")
	}

	// Deleting again is a no-op.
	if err := repo.Delete(ctx, "c1"); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestHistoryBounded(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < HistoryLimit+1; i++ {
		entry := &HistoryEntry{
			Title:     fmt.Sprintf("attempt-%d", i),
			TakenAt:   base.Add(time.Duration(i) * time.Minute),
			Score:     i,
			Total:     HistoryLimit + 1,
			Questions: testQuestions(),
			Answers:   map[int]string{0: "B"},
		}
		if err := repo.Append(ctx, entry); err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != HistoryLimit {
		t.Fatalf("len = %d, want %d", len(entries), HistoryLimit)
	}
	if entries[0].Title != "attempt-1" {
		t.Errorf("oldest = %q, want attempt-1 (attempt-0 evicted)", entries[0].Title)
	}
	if entries[len(entries)-1].Title != fmt.Sprintf("attempt-%d", HistoryLimit) {
		t.Errorf("newest = %q, want attempt-%d", entries[len(entries)-1].Title, HistoryLimit)
	}
}

func TestHistoryPreservesReviewData(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	in := &HistoryEntry{
		Title:     "Chapter 1",
		Score:     1,
		Total:     1,
		Questions: testQuestions(),
		Answers:   map[int]string{0: "B"},
	}
	if err := repo.Append(ctx, in); err != nil {
		t.Fatal(err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	got := entries[0]
	if got.Score != 1 || got.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1", got.Score, got.Total)
	}
	if len(got.Questions) != 1 || got.Questions[0].CorrectText() != "B" {
		t.Errorf("Questions = %+v", got.Questions)
	}
	if got.Answers[0] != "B" {
		t.Errorf("Answers[0] = %q, want %q", got.Answers[0], "B")
	}
}

func TestCustomQuizLifecycle(t *testing.T) {
	s := openTestStore(t)
	quizzes := s.CustomQuizRepo()
	progress := s.ProgressRepo()
	ctx := context.Background()

	cq := &CustomQuiz{
		ID:        "custom-1",
		Name:      "My Set",
		Questions: testQuestions(),
	}
	if err := quizzes.Save(ctx, cq); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := progress.Save(ctx, &ProgressSnapshot{QuizID: "custom-1", Questions: testQuestions()}); err != nil {
		t.Fatal(err)
	}

	list, err := quizzes.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Name != "My Set" {
		t.Fatalf("List() = %+v", list)
	}
	if list[0].UploadedAt.IsZero() {
		t.Error("UploadedAt not set on save")
	}

	// Deleting the set also drops its progress snapshot.
	if err := quizzes.Delete(ctx, "custom-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	list, err = quizzes.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("List() after delete = %+v", list)
	}
	snap, err := progress.Load(ctx, "custom-1")
	if err != nil {
		t.Fatal(err)
	}
	if snap != nil {
		t.Error("progress snapshot survived custom quiz deletion")
	}
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.ProgressRepo().Save(ctx, &ProgressSnapshot{QuizID: "c1", Questions: testQuestions()}); err != nil {
		t.Fatal(err)
	}
	if err := s.HistoryRepo().Append(ctx, &HistoryEntry{Title: "t", Total: 1, Questions: testQuestions()}); err != nil {
		t.Fatal(err)
	}

	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("Wipe() error = %v", err)
	}

	ids, err := s.ProgressRepo().ActiveQuizIDs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Errorf("progress survived wipe: %v", ids)
	}
	entries, err := s.HistoryRepo().List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("history survived wipe: %d entries", len(entries))
	}
}
