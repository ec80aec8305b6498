package session

import (
	"errors"
	"fmt"
	"testing"

	"quizdeck/internal/quiz"
	"quizdeck/internal/store"
)

// recordingPersister implements Persister for testing.
type recordingPersister struct {
	saves   []*store.ProgressSnapshot
	deletes []string
	history []*store.HistoryEntry
}

func (p *recordingPersister) SaveProgress(snap *store.ProgressSnapshot) {
	p.saves = append(p.saves, snap)
}
func (p *recordingPersister) DeleteProgress(quizID string) {
	p.deletes = append(p.deletes, quizID)
}
func (p *recordingPersister) AppendHistory(entry *store.HistoryEntry) {
	p.history = append(p.history, entry)
}

func testBank(n int) *quiz.Bank {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			Text: fmt.Sprintf("Q%d", i+1),
			Options: []quiz.Option{
				{Text: "wrong"},
				{Text: "right", IsCorrect: true},
			},
		}
	}
	b := quiz.NewBank()
	b.AddSource("c1", "Chapter 1", qs, false)
	return b
}

func liveSession(t *testing.T, n int, cfg Config, p Persister) *Session {
	t.Helper()
	s, err := Start(testBank(n), "c1", "Chapter 1", cfg, p)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return s
}

func TestStart_EmptySelection(t *testing.T) {
	_, err := Start(testBank(1), "missing", "Missing", Config{}, nil)
	if !errors.Is(err, ErrEmptySelection) {
		t.Errorf("error = %v, want ErrEmptySelection", err)
	}
}

func TestStart_InitialState(t *testing.T) {
	s := liveSession(t, 3, Config{TimeLimitMinutes: 10}, nil)

	if s.Mode() != ModeLive {
		t.Errorf("Mode = %v, want ModeLive", s.Mode())
	}
	if s.CurrentIndex() != 0 || s.NavPage() != 0 {
		t.Errorf("position = %d page %d, want 0 0", s.CurrentIndex(), s.NavPage())
	}
	if s.AnsweredCount() != 0 || len(s.Flags()) != 0 {
		t.Error("expected empty answers and flags")
	}
	timer := s.Timer()
	if timer.Mode != Countdown || timer.Remaining != 600 || !timer.Running {
		t.Errorf("timer = %+v, want running countdown from 600", timer)
	}
}

func TestStart_StopwatchWhenNoLimit(t *testing.T) {
	s := liveSession(t, 1, Config{TimeLimitMinutes: 0}, nil)
	timer := s.Timer()
	if timer.Mode != Stopwatch || !timer.Running {
		t.Errorf("timer = %+v, want running stopwatch", timer)
	}
}

func TestStart_ShuffleKeepsMultiset(t *testing.T) {
	s := liveSession(t, 50, Config{ShuffleQuestions: true, ShuffleAnswers: true}, nil)

	if s.Len() != 50 {
		t.Fatalf("Len = %d, want 50", s.Len())
	}
	seen := make(map[string]bool, 50)
	for _, q := range s.Questions() {
		seen[q.Text] = true
		if len(q.Options) != 2 {
			t.Fatalf("question %q has %d options, want 2", q.Text, len(q.Options))
		}
		if q.CorrectText() != "right" {
			t.Fatalf("question %q lost its correct option", q.Text)
		}
	}
	if len(seen) != 50 {
		t.Errorf("distinct questions = %d, want 50", len(seen))
	}
}

func TestSelectOption_OverwritesAndSaves(t *testing.T) {
	p := &recordingPersister{}
	s := liveSession(t, 2, Config{}, p)

	if err := s.SelectOption(0, "wrong"); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectOption(0, "right"); err != nil {
		t.Fatal(err)
	}

	a, ok := s.Answer(0)
	if !ok || a != "right" {
		t.Errorf("Answer(0) = %q %v, want right true", a, ok)
	}
	if s.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1 (overwrite, not append)", s.AnsweredCount())
	}

	// Every save targets the same key; the store overwrites.
	if len(p.saves) != 2 {
		t.Fatalf("saves = %d, want 2", len(p.saves))
	}
	for _, snap := range p.saves {
		if snap.QuizID != "c1" {
			t.Errorf("save keyed %q, want c1", snap.QuizID)
		}
	}
	if p.saves[1].Answers[0] != "right" {
		t.Errorf("last saved answer = %q, want right", p.saves[1].Answers[0])
	}
}

func TestSelectOption_Idempotent(t *testing.T) {
	p := &recordingPersister{}
	s := liveSession(t, 1, Config{}, p)

	_ = s.SelectOption(0, "right")
	_ = s.SelectOption(0, "right")

	if a, _ := s.Answer(0); a != "right" {
		t.Errorf("Answer(0) = %q, want right", a)
	}
	last := p.saves[len(p.saves)-1]
	if len(last.Answers) != 1 {
		t.Errorf("saved answers = %d, want 1", len(last.Answers))
	}
}

func TestToggleFlag(t *testing.T) {
	s := liveSession(t, 3, Config{}, nil)

	s.ToggleFlag(1)
	if !s.Flagged(1) {
		t.Error("expected question 1 flagged")
	}
	s.ToggleFlag(1)
	if s.Flagged(1) {
		t.Error("expected flag cleared after second toggle")
	}

	s.ToggleFlag(2)
	s.ToggleFlag(0)
	flags := s.Flags()
	if len(flags) != 2 || flags[0] != 0 || flags[1] != 2 {
		t.Errorf("Flags() = %v, want [0 2]", flags)
	}
}

func TestNavigate_RecomputesNavPage(t *testing.T) {
	s := liveSession(t, 100, Config{}, nil)

	s.Jump(39)
	if s.NavPage() != 0 {
		t.Errorf("NavPage = %d, want 0", s.NavPage())
	}
	s.Navigate(1)
	if s.CurrentIndex() != 40 || s.NavPage() != 1 {
		t.Errorf("index %d page %d, want 40 1", s.CurrentIndex(), s.NavPage())
	}
	s.Jump(99)
	if s.NavPage() != 2 {
		t.Errorf("NavPage = %d, want 2", s.NavPage())
	}
	if s.NavPageCount() != 3 {
		t.Errorf("NavPageCount = %d, want 3", s.NavPageCount())
	}
}

func TestSetNavPage_BrowsesWithoutMoving(t *testing.T) {
	s := liveSession(t, 100, Config{}, nil)

	s.SetNavPage(2)
	if s.NavPage() != 2 || s.CurrentIndex() != 0 {
		t.Errorf("page %d index %d, want 2 0", s.NavPage(), s.CurrentIndex())
	}

	// Moving the position snaps the page back to it.
	s.Navigate(1)
	if s.NavPage() != 0 {
		t.Errorf("NavPage = %d, want 0 after move", s.NavPage())
	}
}

func TestNavigate_OutOfBoundsPanics(t *testing.T) {
	s := liveSession(t, 2, Config{}, nil)

	assertPanics(t, "Navigate(-1)", func() { s.Navigate(-1) })
	s.Jump(1)
	assertPanics(t, "Navigate(+1) at end", func() { s.Navigate(1) })
	assertPanics(t, "Jump(2)", func() { s.Jump(2) })
	assertPanics(t, "SetNavPage(1)", func() { s.SetNavPage(1) })
}

func TestSubmit_Flow(t *testing.T) {
	p := &recordingPersister{}
	s := liveSession(t, 3, Config{}, p)

	for i := 0; i < 3; i++ {
		if err := s.SelectOption(i, "right"); err != nil {
			t.Fatal(err)
		}
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if res.Correct != 3 || res.Total != 3 {
		t.Errorf("score = %d/%d, want 3/3", res.Correct, res.Total)
	}
	if s.Mode() != ModeFinished {
		t.Errorf("Mode = %v, want ModeFinished", s.Mode())
	}
	if s.Timer().Running {
		t.Error("timer still running after submit")
	}

	if len(p.history) != 1 {
		t.Fatalf("history entries = %d, want 1", len(p.history))
	}
	entry := p.history[0]
	if entry.Score != 3 || entry.Total != 3 || entry.Title != "Chapter 1" {
		t.Errorf("entry = %+v", entry)
	}
	if len(p.deletes) != 1 || p.deletes[0] != "c1" {
		t.Errorf("deletes = %v, want [c1]", p.deletes)
	}
}

func TestSubmit_TwiceReturnsErrNotLive(t *testing.T) {
	p := &recordingPersister{}
	s := liveSession(t, 1, Config{}, p)

	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(); !errors.Is(err, ErrNotLive) {
		t.Errorf("second Submit() error = %v, want ErrNotLive", err)
	}
	if len(p.history) != 1 {
		t.Errorf("history entries = %d, want 1 (no double append)", len(p.history))
	}
}

func TestNeedsConfirmation(t *testing.T) {
	countdown := liveSession(t, 1, Config{TimeLimitMinutes: 1}, nil)
	if !countdown.NeedsConfirmation() {
		t.Error("countdown with time remaining should need confirmation")
	}

	stopwatch := liveSession(t, 1, Config{}, nil)
	if stopwatch.NeedsConfirmation() {
		t.Error("stopwatch submit should not need confirmation")
	}
}

func TestHandleTick_CountdownExpiry(t *testing.T) {
	s := liveSession(t, 1, Config{TimeLimitMinutes: 1}, &recordingPersister{})

	var expired bool
	for i := 0; i < 60; i++ {
		expired = s.HandleTick()
	}
	if !expired {
		t.Fatal("expected expiry after 60 ticks of a 1-minute countdown")
	}
	if s.NeedsConfirmation() {
		t.Error("expired countdown must not require confirmation")
	}

	// Expiry triggers submit; the racing manual submit is a no-op.
	if _, err := s.Submit(); err != nil {
		t.Fatalf("auto submit error = %v", err)
	}
	if _, err := s.Submit(); !errors.Is(err, ErrNotLive) {
		t.Errorf("racing submit error = %v, want ErrNotLive", err)
	}
}

func TestHandleTick_StopwatchCountsUp(t *testing.T) {
	s := liveSession(t, 1, Config{}, nil)

	for i := 0; i < 90; i++ {
		if s.HandleTick() {
			t.Fatal("stopwatch must never expire")
		}
	}
	if got := s.Timer().Elapsed; got != 90 {
		t.Errorf("Elapsed = %d, want 90", got)
	}
	if got := s.Timer().Display(); got != "01:30" {
		t.Errorf("Display = %q, want 01:30", got)
	}
}

func TestTimerExclusivity_StaleTicksDiscarded(t *testing.T) {
	old := liveSession(t, 1, Config{TimeLimitMinutes: 1}, &recordingPersister{})
	old.StopTimer()

	replacement := liveSession(t, 1, Config{TimeLimitMinutes: 1}, &recordingPersister{})

	// A tick aimed at the stopped session must not move its clock.
	before := old.Timer().Remaining
	old.HandleTick()
	if old.Timer().Remaining != before {
		t.Error("stopped session's timer advanced on a stale tick")
	}

	replacement.HandleTick()
	if replacement.Timer().Remaining != 59 {
		t.Errorf("replacement Remaining = %d, want 59", replacement.Timer().Remaining)
	}

	// Likewise after finishing.
	if _, err := old.Submit(); err != nil {
		t.Fatal(err)
	}
	if old.HandleTick() {
		t.Error("finished session reported expiry on a stale tick")
	}
}

func TestResume_RoundTrip(t *testing.T) {
	p := &recordingPersister{}
	s := liveSession(t, 45, Config{TimeLimitMinutes: 10}, p)

	_ = s.SelectOption(0, "right")
	_ = s.SelectOption(44, "wrong")
	s.ToggleFlag(7)
	s.Jump(44)
	for i := 0; i < 30; i++ {
		s.HandleTick()
	}
	s.SaveNow()

	snap := p.saves[len(p.saves)-1]
	resumed := Resume(snap, "Chapter 1", &recordingPersister{})

	if got := resumed.Answers(); len(got) != 2 || got[0] != "right" || got[44] != "wrong" {
		t.Errorf("Answers = %v", got)
	}
	if flags := resumed.Flags(); len(flags) != 1 || flags[0] != 7 {
		t.Errorf("Flags = %v, want [7]", flags)
	}
	if resumed.CurrentIndex() != 44 {
		t.Errorf("CurrentIndex = %d, want 44", resumed.CurrentIndex())
	}
	if resumed.NavPage() != 1 {
		t.Errorf("NavPage = %d, want 1 (recomputed)", resumed.NavPage())
	}
	timer := resumed.Timer()
	if timer.Mode != Countdown || timer.Remaining != 570 || !timer.Running {
		t.Errorf("timer = %+v, want running countdown from 570", timer)
	}
	if resumed.Mode() != ModeLive {
		t.Errorf("Mode = %v, want ModeLive", resumed.Mode())
	}
}

func TestResume_StopwatchValueAuthoritative(t *testing.T) {
	snap := &store.ProgressSnapshot{
		QuizID:    "c1",
		Questions: testBank(1).SelectFor("c1"),
		Answers:   map[int]string{},
		Elapsed:   120,
	}
	s := Resume(snap, "Chapter 1", nil)
	timer := s.Timer()
	if timer.Mode != Stopwatch || timer.Elapsed != 120 {
		t.Errorf("timer = %+v, want stopwatch at 120", timer)
	}
}

func TestReview_ReadOnly(t *testing.T) {
	questions := testBank(2).SelectFor("c1")
	s := Review("Chapter 1", questions, map[int]string{0: "right"})

	if s.Mode() != ModeReview {
		t.Fatalf("Mode = %v, want ModeReview", s.Mode())
	}
	if err := s.SelectOption(1, "right"); !errors.Is(err, ErrNotLive) {
		t.Errorf("SelectOption error = %v, want ErrNotLive", err)
	}
	if s.Answered(1) {
		t.Error("answer stored in review mode")
	}
	if _, err := s.Submit(); !errors.Is(err, ErrNotLive) {
		t.Errorf("Submit error = %v, want ErrNotLive", err)
	}
	if s.Timer().Running {
		t.Error("review session has a running timer")
	}

	if !s.Correct(0) {
		t.Error("expected question 0 correct in review")
	}
	if s.Correct(1) {
		t.Error("unanswered question 1 reported correct")
	}
}

func TestCorrect_MatchesByOptionText(t *testing.T) {
	s := liveSession(t, 1, Config{}, nil)

	_ = s.SelectOption(0, "right")
	if !s.Correct(0) {
		t.Error("expected correct after selecting the correct option text")
	}
	_ = s.SelectOption(0, "wrong")
	if s.Correct(0) {
		t.Error("expected incorrect after overwriting with the wrong option")
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
