package quizscreen

import (
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/screens/results"
	sess "quizdeck/internal/session"
	"quizdeck/internal/store"
)

type nopPersister struct{}

func (nopPersister) SaveProgress(*store.ProgressSnapshot) {}
func (nopPersister) DeleteProgress(string)                {}
func (nopPersister) AppendHistory(*store.HistoryEntry)    {}

func newTestScreen(t *testing.T, n, limitMinutes int) *QuizScreen {
	t.Helper()
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			Text: fmt.Sprintf("Q%d", i+1),
			Options: []quiz.Option{
				{Text: "alpha", IsCorrect: true},
				{Text: "beta"},
			},
		}
	}
	bank := quiz.NewBank()
	bank.AddSource("c1", "Chapter 1", qs, false)

	session, err := sess.Start(bank, "c1", "Chapter 1", sess.Config{TimeLimitMinutes: limitMinutes}, nopPersister{})
	if err != nil {
		t.Fatal(err)
	}
	return New(session)
}

func key(s string) tea.Msg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func TestSelectAnswerWithEnter(t *testing.T) {
	q := newTestScreen(t, 3, 0)

	q.Update(key("j")) // cursor to second option
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	answer, ok := q.sess.Answer(0)
	if !ok || answer != "beta" {
		t.Errorf("answer = %q %v, want beta true", answer, ok)
	}
}

func TestArrowsMoveBetweenQuestions(t *testing.T) {
	q := newTestScreen(t, 3, 0)

	q.Update(key("l"))
	q.Update(key("l"))
	if q.sess.CurrentIndex() != 2 {
		t.Errorf("index = %d, want 2", q.sess.CurrentIndex())
	}

	// At the last question a further move is ignored, not a panic.
	q.Update(key("l"))
	if q.sess.CurrentIndex() != 2 {
		t.Errorf("index = %d, want 2 at end", q.sess.CurrentIndex())
	}

	q.Update(key("h"))
	if q.sess.CurrentIndex() != 1 {
		t.Errorf("index = %d, want 1", q.sess.CurrentIndex())
	}
}

func TestFlagToggle(t *testing.T) {
	q := newTestScreen(t, 2, 0)

	q.Update(key("f"))
	if !q.sess.Flagged(0) {
		t.Error("expected question 0 flagged")
	}
	q.Update(key("f"))
	if q.sess.Flagged(0) {
		t.Error("expected flag cleared")
	}
}

func TestGridJump(t *testing.T) {
	q := newTestScreen(t, 45, 0)

	q.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !q.gridFocus {
		t.Fatal("expected grid focus after tab")
	}

	q.Update(key("]")) // second grid page
	if q.sess.NavPage() != 1 {
		t.Fatalf("NavPage = %d, want 1", q.sess.NavPage())
	}

	q.Update(key("l")) // 40 -> 41
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if q.gridFocus {
		t.Error("expected grid focus released after jump")
	}
	if q.sess.CurrentIndex() != 41 {
		t.Errorf("index = %d, want 41", q.sess.CurrentIndex())
	}
}

func TestGridBrowseWithoutJumpRestoresPage(t *testing.T) {
	q := newTestScreen(t, 45, 0)

	q.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	q.Update(key("]"))
	q.Update(tea.KeyPressMsg{Code: tea.KeyTab}) // leave without jumping

	if q.sess.NavPage() != 0 {
		t.Errorf("NavPage = %d, want 0 (snapped back to current question)", q.sess.NavPage())
	}
	if q.sess.CurrentIndex() != 0 {
		t.Errorf("index = %d, want 0", q.sess.CurrentIndex())
	}
}

func TestSubmitWithoutLimitSkipsConfirmation(t *testing.T) {
	q := newTestScreen(t, 1, 0)

	_, cmd := q.Update(key("s"))
	if q.confirm != confirmNone {
		t.Fatal("stopwatch submit must not ask for confirmation")
	}
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if _, ok := cmd().(submitMsg); !ok {
		t.Fatalf("cmd produced %T, want submitMsg", cmd())
	}
}

func TestSubmitWithTimeLeftAsksConfirmation(t *testing.T) {
	q := newTestScreen(t, 1, 10)

	q.Update(key("s"))
	if q.confirm != confirmSubmit {
		t.Fatal("expected submit confirmation dialog")
	}

	// n cancels.
	q.Update(key("n"))
	if q.confirm != confirmNone {
		t.Error("expected dialog dismissed")
	}
	if q.sess.Mode() != sess.ModeLive {
		t.Error("session must stay live after cancel")
	}
}

func TestSubmitReplacesWithResults(t *testing.T) {
	q := newTestScreen(t, 2, 0)

	_, cmd := q.Update(submitMsg{})
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("replacement is %T, want *results.ResultsScreen", msg.Screen)
	}
	if q.sess.Mode() != sess.ModeFinished {
		t.Error("session should be finished after submit")
	}

	// Racing second submit is a no-op.
	_, cmd = q.Update(submitMsg{})
	if cmd != nil {
		t.Error("second submit produced a command")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	q := newTestScreen(t, 1, 10)
	other := newTestScreen(t, 1, 10)

	before := q.sess.Timer().Remaining
	_, cmd := q.Update(tickMsg{owner: other.sess, at: time.Now()})
	if q.sess.Timer().Remaining != before {
		t.Error("stale tick advanced the timer")
	}
	if cmd != nil {
		t.Error("stale tick rescheduled itself")
	}

	_, cmd = q.Update(tickMsg{owner: q.sess, at: time.Now()})
	if q.sess.Timer().Remaining != before-1 {
		t.Error("own tick did not advance the timer")
	}
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
}

func TestExpiryAutoSubmits(t *testing.T) {
	q := newTestScreen(t, 1, 10)

	for q.sess.Timer().Remaining > 1 {
		q.sess.HandleTick()
	}
	_, cmd := q.Update(tickMsg{owner: q.sess, at: time.Now()})
	if cmd == nil {
		t.Fatal("expected a command at expiry")
	}
	if _, ok := cmd().(submitMsg); !ok {
		t.Fatalf("cmd produced %T, want submitMsg", cmd())
	}
}

func TestReviewRejectsAnswering(t *testing.T) {
	questions := []quiz.Question{
		{Text: "Q1", Options: []quiz.Option{{Text: "alpha", IsCorrect: true}, {Text: "beta"}}},
	}
	q := NewReview("Chapter 1", questions, map[int]string{})

	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if q.sess.AnsweredCount() != 0 {
		t.Error("review mode accepted an answer")
	}
	if q.Init() != nil {
		t.Error("review mode scheduled a timer tick")
	}
}

func TestReviewGridMarksCorrectness(t *testing.T) {
	questions := []quiz.Question{
		{Text: "Q1", Options: []quiz.Option{{Text: "alpha", IsCorrect: true}, {Text: "beta"}}},
		{Text: "Q2", Options: []quiz.Option{{Text: "alpha", IsCorrect: true}, {Text: "beta"}}},
		{Text: "Q3", Options: []quiz.Option{{Text: "alpha", IsCorrect: true}, {Text: "beta"}}},
	}
	q := NewReview("Chapter 1", questions, map[int]string{0: "alpha", 1: "beta"})

	g := q.grid()
	if !g.Review {
		t.Fatal("grid not in review mode")
	}
	if !g.Correct(0) {
		t.Error("grid reports the right answer as wrong")
	}
	if g.Correct(1) {
		t.Error("grid reports the wrong answer as right")
	}
	if g.Answered(2) {
		t.Error("grid reports an unanswered question as answered")
	}
}

func TestLiveGridHidesCorrectness(t *testing.T) {
	q := newTestScreen(t, 2, 0)
	if q.grid().Review {
		t.Error("live grid flagged as review")
	}
}

func TestQuitConfirmSavesAndExits(t *testing.T) {
	q := newTestScreen(t, 2, 10)

	q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if q.confirm != confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	_, cmd := q.Update(key("y"))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Fatalf("cmd produced %T, want PopToRootMsg", cmd())
	}
	if q.sess.Timer().Running {
		t.Error("timer still running after save & exit")
	}
}
