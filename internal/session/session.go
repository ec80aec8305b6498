// Package session implements the quiz attempt state machine: the
// selected questions, answer map, flags, navigation position, timer,
// and live/review/finished modes. It owns no I/O; persistence is a
// fire-and-forget collaborator injected at construction.
package session

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"quizdeck/internal/quiz"
	"quizdeck/internal/score"
	"quizdeck/internal/store"
)

// NavPageSize is the number of boxes per side-nav page.
const NavPageSize = 40

// Mode is the lifecycle state of a session. Live is the only mutable
// state; Finished and Review are terminal for answer mutation.
type Mode int

const (
	ModeLive Mode = iota
	ModeReview
	ModeFinished
)

// Config is captured at session start and immutable thereafter.
type Config struct {
	ShuffleQuestions bool
	ShuffleAnswers   bool
	TimeLimitMinutes int // 0 = stopwatch counting up
}

// Persister receives the session's persistence side effects. Calls are
// best-effort: implementations log failures and never report them back,
// so the in-memory session stays authoritative.
type Persister interface {
	SaveProgress(snap *store.ProgressSnapshot)
	DeleteProgress(quizID string)
	AppendHistory(entry *store.HistoryEntry)
}

// ErrEmptySelection is returned when a quiz id resolves to no questions.
var ErrEmptySelection = errors.New("no questions for the selected quiz")

// ErrNotLive is returned by mutations on a review or finished session.
var ErrNotLive = errors.New("session is not live")

// Session is one quiz attempt. A Session is owned by a single goroutine
// (the UI event loop); mutations happen only through its methods, one
// event at a time.
type Session struct {
	quizID    string
	title     string
	questions []quiz.Question
	answers   map[int]string
	flags     map[int]bool
	current   int
	navPage   int
	mode      Mode
	cfg       Config
	timer     Timer
	persister Persister
}

// Start builds a live session from the bank selection for quizID,
// applying the configured shuffles to fresh copies. Question order and
// per-question option order are frozen from here on.
func Start(bank *quiz.Bank, quizID, title string, cfg Config, p Persister) (*Session, error) {
	questions := bank.SelectFor(quizID)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySelection, quizID)
	}

	if cfg.ShuffleQuestions {
		questions = quiz.Shuffle(questions)
	}
	if cfg.ShuffleAnswers {
		for i := range questions {
			questions[i].Options = quiz.Shuffle(questions[i].Options)
		}
	}

	var timer Timer
	if cfg.TimeLimitMinutes > 0 {
		timer = newCountdown(cfg.TimeLimitMinutes * 60)
	} else {
		timer = newStopwatch(0)
	}

	return &Session{
		quizID:    quizID,
		title:     title,
		questions: questions,
		answers:   make(map[int]string),
		flags:     make(map[int]bool),
		mode:      ModeLive,
		cfg:       cfg,
		timer:     timer,
		persister: p,
	}, nil
}

// Resume rebuilds a live session from a progress snapshot. Questions,
// answers, flags, position, and the timer value are restored verbatim;
// the nav page is recomputed. The saved timer value is authoritative:
// a positive remaining time resumes the countdown, otherwise the
// stopwatch resumes from the saved elapsed seconds.
func Resume(snap *store.ProgressSnapshot, title string, p Persister) *Session {
	answers := make(map[int]string, len(snap.Answers))
	for i, a := range snap.Answers {
		answers[i] = a
	}
	flags := make(map[int]bool, len(snap.Flags))
	for _, i := range snap.Flags {
		flags[i] = true
	}

	var timer Timer
	if snap.TimeRemaining > 0 {
		timer = newCountdown(snap.TimeRemaining)
	} else {
		timer = newStopwatch(snap.Elapsed)
	}

	return &Session{
		quizID:    snap.QuizID,
		title:     title,
		questions: quiz.CloneAll(snap.Questions),
		answers:   answers,
		flags:     flags,
		current:   snap.CurrentIndex,
		navPage:   snap.CurrentIndex / NavPageSize,
		mode:      ModeLive,
		timer:     timer,
		persister: p,
	}
}

// Review builds a read-only session over a finished attempt's frozen
// questions and answers. No timer runs and nothing is persisted.
func Review(title string, questions []quiz.Question, answers map[int]string) *Session {
	copied := make(map[int]string, len(answers))
	for i, a := range answers {
		copied[i] = a
	}
	return &Session{
		title:     title,
		questions: quiz.CloneAll(questions),
		answers:   copied,
		flags:     make(map[int]bool),
		mode:      ModeReview,
	}
}

// Mode returns the session's lifecycle state.
func (s *Session) Mode() Mode { return s.mode }

// QuizID returns the persistence key of the attempt.
func (s *Session) QuizID() string { return s.quizID }

// Title returns the display title of the attempt.
func (s *Session) Title() string { return s.title }

// Config returns the start-time configuration.
func (s *Session) Config() Config { return s.cfg }

// Len returns the number of questions in the attempt.
func (s *Session) Len() int { return len(s.questions) }

// Questions returns the frozen question sequence. Callers must not
// mutate the result.
func (s *Session) Questions() []quiz.Question { return s.questions }

// Question returns the question at index i.
func (s *Session) Question(i int) quiz.Question {
	s.checkIndex("Question", i)
	return s.questions[i]
}

// Current returns the question at the navigation position.
func (s *Session) Current() quiz.Question { return s.questions[s.current] }

// CurrentIndex returns the navigation position.
func (s *Session) CurrentIndex() int { return s.current }

// Timer returns a copy of the session timer.
func (s *Session) Timer() Timer { return s.timer }

// Answer returns the stored answer for question i, if any.
func (s *Session) Answer(i int) (string, bool) {
	a, ok := s.answers[i]
	return a, ok
}

// Answers returns a copy of the answer map.
func (s *Session) Answers() map[int]string {
	out := make(map[int]string, len(s.answers))
	for i, a := range s.answers {
		out[i] = a
	}
	return out
}

// AnsweredCount returns how many questions have a stored answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Answered reports whether question i has a stored answer.
func (s *Session) Answered(i int) bool {
	_, ok := s.answers[i]
	return ok
}

// Flagged reports whether question i is marked for review.
func (s *Session) Flagged(i int) bool { return s.flags[i] }

// Flags returns the flagged indices in ascending order.
func (s *Session) Flags() []int {
	out := make([]int, 0, len(s.flags))
	for i := range s.flags {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Correct reports whether question i is correctly answered: the stored
// answer equals the text of the question's correct option.
func (s *Session) Correct(i int) bool {
	a, ok := s.answers[i]
	return score.Correct(s.questions[i], a, ok)
}

// SelectOption stores the answer for question i, overwriting any prior
// answer, and fires a best-effort progress save. Rejected outside live
// mode.
func (s *Session) SelectOption(i int, optionText string) error {
	if s.mode != ModeLive {
		return ErrNotLive
	}
	s.checkIndex("SelectOption", i)
	s.answers[i] = optionText
	s.saveProgress()
	return nil
}

// ToggleFlag flips the review mark on question i.
func (s *Session) ToggleFlag(i int) {
	s.checkIndex("ToggleFlag", i)
	if s.flags[i] {
		delete(s.flags, i)
	} else {
		s.flags[i] = true
	}
}

// Navigate moves the position by delta. The result must stay in
// bounds: callers disable navigation at the edges, so an out-of-range
// move is a programming error, not a user error.
func (s *Session) Navigate(delta int) {
	s.Jump(s.current + delta)
}

// Jump moves the position to index i and recomputes the nav page.
func (s *Session) Jump(i int) {
	s.checkIndex("Jump", i)
	s.current = i
	s.navPage = i / NavPageSize
}

// NavPage returns the side-nav page currently shown. It tracks the
// position (floor(current/NavPageSize)) after every move, but can be
// paged away independently with SetNavPage to browse the grid.
func (s *Session) NavPage() int { return s.navPage }

// NavPageCount returns the number of side-nav pages.
func (s *Session) NavPageCount() int {
	return (len(s.questions) + NavPageSize - 1) / NavPageSize
}

// SetNavPage browses the side-nav grid without moving the position.
func (s *Session) SetNavPage(page int) {
	if page < 0 || page >= s.NavPageCount() {
		panic(fmt.Sprintf("session: SetNavPage(%d) out of range [0,%d)", page, s.NavPageCount()))
	}
	s.navPage = page
}

// HandleTick advances the timer by one second and reports whether the
// countdown expired. Expiry obliges the caller to Submit immediately;
// ticks arriving after the session left live mode are discarded, which
// makes the expiry/manual-submit race idempotent.
func (s *Session) HandleTick() (expired bool) {
	if s.mode != ModeLive {
		return false
	}
	return s.timer.tick()
}

// StopTimer halts the timer without finishing the session, for
// save-and-quit. Idempotent.
func (s *Session) StopTimer() {
	s.timer.stop()
}

// NeedsConfirmation reports whether a manual submit should be
// confirmed by the user first: a countdown with time still remaining.
func (s *Session) NeedsConfirmation() bool {
	return s.mode == ModeLive && s.timer.Mode == Countdown && s.timer.Remaining > 0
}

// Submit finishes a live attempt: stops the timer, scores the answer
// map, appends a history entry, deletes the progress snapshot, and
// moves the session to its terminal finished state. Further calls
// return ErrNotLive.
func (s *Session) Submit() (*score.Result, error) {
	if s.mode != ModeLive {
		return nil, ErrNotLive
	}
	s.mode = ModeFinished
	s.timer.stop()

	result := score.Score(s.questions, s.answers)

	if s.persister != nil {
		s.persister.AppendHistory(&store.HistoryEntry{
			Title:     s.title,
			TakenAt:   time.Now(),
			Score:     result.Correct,
			Total:     result.Total,
			Questions: quiz.CloneAll(s.questions),
			Answers:   s.Answers(),
		})
		s.persister.DeleteProgress(s.quizID)
	}
	return result, nil
}

// Snapshot captures the attempt for persistence. SavedAt is stamped by
// the store.
func (s *Session) Snapshot() *store.ProgressSnapshot {
	return &store.ProgressSnapshot{
		QuizID:        s.quizID,
		Questions:     quiz.CloneAll(s.questions),
		Answers:       s.Answers(),
		Flags:         s.Flags(),
		CurrentIndex:  s.current,
		TimeRemaining: s.timer.Remaining,
		Elapsed:       s.timer.Elapsed,
	}
}

// SaveNow forces a progress save, for save-and-quit.
func (s *Session) SaveNow() {
	if s.mode != ModeLive {
		return
	}
	s.saveProgress()
}

func (s *Session) saveProgress() {
	if s.persister != nil {
		s.persister.SaveProgress(s.Snapshot())
	}
}

func (s *Session) checkIndex(op string, i int) {
	if i < 0 || i >= len(s.questions) {
		panic(fmt.Sprintf("session: %s(%d) out of range [0,%d)", op, i, len(s.questions)))
	}
}
