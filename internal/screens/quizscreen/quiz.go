package quizscreen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/results"
	sess "quizdeck/internal/session"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
)

// confirmKind identifies which confirmation dialog is showing.
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmSubmit
	confirmQuit
)

// QuizScreen drives one quiz attempt: answering, flagging, navigating
// and submitting. The same screen renders finished attempts read-only
// when the session is in review mode.
type QuizScreen struct {
	sess    *sess.Session
	options components.OptionList

	confirm    confirmKind
	gridFocus  bool
	gridCursor int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen over a live session.
func New(s *sess.Session) *QuizScreen {
	q := &QuizScreen{sess: s}
	q.rebuildOptions()
	return q
}

// NewReview creates a read-only screen over a finished attempt.
func NewReview(title string, questions []quiz.Question, answers map[int]string) *QuizScreen {
	return New(sess.Review(title, questions, answers))
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.sess.Mode() != sess.ModeLive {
		return nil
	}
	return q.tickCmd()
}

func (q *QuizScreen) Title() string {
	if q.sess.Mode() == sess.ModeReview {
		return "Review · " + q.sess.Title()
	}
	return q.sess.Title()
}

// Status renders the header's right slot: timer plus answered count.
func (q *QuizScreen) Status() string {
	return q.statusView()
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.confirm {
	case confirmSubmit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit now"},
			{Key: "N", Description: "Keep going"},
		}
	case confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Save & exit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if q.sess.Mode() == sess.ModeReview {
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Tab", Description: "Grid"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if q.gridFocus {
		return []layout.KeyHint{
			{Key: "←↑↓→", Description: "Pick"},
			{Key: "[ ]", Description: "Page"},
			{Key: "Enter", Description: "Go"},
			{Key: "Tab", Description: "Back to question"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "F", Description: "Flag"},
		{Key: "Tab", Description: "Grid"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Exit"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return q.handleTick(msg)
	case submitMsg:
		return q.finish()
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.owner != q.sess {
		return q, nil
	}
	if expired := q.sess.HandleTick(); expired {
		return q, func() tea.Msg { return submitMsg{} }
	}
	if !q.sess.Timer().Running {
		return q, nil
	}
	return q, q.tickCmd()
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.confirm != confirmNone {
		return q.handleConfirmKey(key)
	}

	if q.gridFocus {
		return q.handleGridKey(key)
	}

	review := q.sess.Mode() == sess.ModeReview

	switch key {
	case "esc":
		if review {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		q.confirm = confirmQuit
		return q, nil

	case "left", "h":
		if q.sess.CurrentIndex() > 0 {
			q.sess.Navigate(-1)
			q.rebuildOptions()
		}
		return q, nil

	case "right", "l":
		if q.sess.CurrentIndex() < q.sess.Len()-1 {
			q.sess.Navigate(1)
			q.rebuildOptions()
		}
		return q, nil

	case "tab":
		q.gridFocus = true
		q.gridCursor = q.sess.CurrentIndex()
		return q, nil
	}

	if review {
		return q, nil
	}

	switch key {
	case "enter", "space":
		q.options.Choose()
		i := q.sess.CurrentIndex()
		opt := q.sess.Question(i).Options[q.options.Cursor]
		if err := q.sess.SelectOption(i, opt.Text); err != nil {
			return q, nil
		}
		return q, nil

	case "f":
		q.sess.ToggleFlag(q.sess.CurrentIndex())
		return q, nil

	case "s":
		if q.sess.NeedsConfirmation() {
			q.confirm = confirmSubmit
			return q, nil
		}
		return q, func() tea.Msg { return submitMsg{} }
	}

	var cmd tea.Cmd
	q.options, cmd = q.options.Update(msg)
	return q, cmd
}

func (q *QuizScreen) handleConfirmKey(key string) (screen.Screen, tea.Cmd) {
	kind := q.confirm
	switch key {
	case "y", "Y":
		q.confirm = confirmNone
		if kind == confirmSubmit {
			return q, func() tea.Msg { return submitMsg{} }
		}
		q.sess.StopTimer()
		q.sess.SaveNow()
		return q, func() tea.Msg { return router.PopToRootMsg{} }
	case "n", "N", "esc":
		q.confirm = confirmNone
	}
	return q, nil
}

func (q *QuizScreen) handleGridKey(key string) (screen.Screen, tea.Cmd) {
	grid := q.grid()
	start, end := grid.PageBounds()

	switch key {
	case "tab", "esc":
		q.gridFocus = false
		q.sess.SetNavPage(q.sess.CurrentIndex() / sess.NavPageSize)

	case "left", "h":
		if q.gridCursor > start {
			q.gridCursor--
		}
	case "right", "l":
		if q.gridCursor < end-1 {
			q.gridCursor++
		}
	case "up", "k":
		if q.gridCursor-gridColumns >= start {
			q.gridCursor -= gridColumns
		}
	case "down", "j":
		if q.gridCursor+gridColumns < end {
			q.gridCursor += gridColumns
		}

	case "[":
		if q.sess.NavPage() > 0 {
			q.sess.SetNavPage(q.sess.NavPage() - 1)
			q.gridCursor = q.sess.NavPage() * sess.NavPageSize
		}
	case "]":
		if q.sess.NavPage() < q.sess.NavPageCount()-1 {
			q.sess.SetNavPage(q.sess.NavPage() + 1)
			q.gridCursor = q.sess.NavPage() * sess.NavPageSize
		}

	case "enter":
		q.sess.Jump(q.gridCursor)
		q.gridFocus = false
		q.rebuildOptions()
	}
	return q, nil
}

// finish runs the submit flow and swaps in the results screen. Safe to
// hit twice when timer expiry races a manual submit.
func (q *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	res, err := q.sess.Submit()
	if err != nil {
		return q, nil
	}

	title := q.sess.Title()
	questions := q.sess.Questions()
	answers := q.sess.Answers()
	resultsScreen := results.New(res, title, func() screen.Screen {
		return NewReview(title, questions, answers)
	})
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsScreen}
	}
}

// rebuildOptions resets the option list for the current question.
func (q *QuizScreen) rebuildOptions() {
	question := q.sess.Current()

	chosen := -1
	if answer, ok := q.sess.Answer(q.sess.CurrentIndex()); ok {
		for i, opt := range question.Options {
			if opt.Text == answer {
				chosen = i
				break
			}
		}
	}

	correct := -1
	for i, opt := range question.Options {
		if opt.IsCorrect {
			correct = i
			break
		}
	}

	texts := make([]string, len(question.Options))
	for i, opt := range question.Options {
		texts[i] = opt.Text
	}

	q.options = components.NewOptionList(texts, chosen, correct, q.sess.Mode() == sess.ModeReview)
}

func (q *QuizScreen) tickCmd() tea.Cmd {
	owner := q.sess
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{owner: owner, at: t}
	})
}
