package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/quizscreen"
	sess "quizdeck/internal/session"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// phase tracks which stage of setup is showing.
type phase int

const (
	phaseLoading phase = iota
	phaseResumePrompt
	phaseConfigure
)

// field indexes for the configure form.
const (
	fieldShuffleQuestions = iota
	fieldShuffleAnswers
	fieldTimeLimit
	fieldStart
	fieldCount
)

// progressLoadedMsg is sent once the saved-progress lookup finishes.
type progressLoadedMsg struct {
	snap *store.ProgressSnapshot
	err  error
}

// SetupScreen configures a quiz attempt: shuffle toggles and an
// optional time limit. When saved progress exists for the quiz it
// offers to resume instead.
type SetupScreen struct {
	bank     *quiz.Bank
	quizID   string
	title    string
	progress store.ProgressRepo
	saver    *store.Saver

	phase     phase
	snap      *store.ProgressSnapshot
	cursor    int
	cfg       sess.Config
	timeInput components.TextInput
	errMsg    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen for the given quiz.
func New(bank *quiz.Bank, quizID, title string, progress store.ProgressRepo, saver *store.Saver) *SetupScreen {
	return &SetupScreen{
		bank:      bank,
		quizID:    quizID,
		title:     title,
		progress:  progress,
		saver:     saver,
		timeInput: components.NewTextInput("0", true, 3),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := s.progress.Load(context.Background(), s.quizID)
		return progressLoadedMsg{snap: snap, err: err}
	}
}

func (s *SetupScreen) Title() string {
	return s.title
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseResumePrompt:
		return []layout.KeyHint{
			{Key: "Y", Description: "Resume"},
			{Key: "N", Description: "Start over"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseConfigure:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Field"},
			{Key: "Enter", Description: "Toggle / Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.err == nil && msg.snap != nil {
			s.snap = msg.snap
			s.phase = phaseResumePrompt
		} else {
			s.phase = phaseConfigure
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseConfigure && s.cursor == fieldTimeLimit {
		var cmd tea.Cmd
		s.timeInput, cmd = s.timeInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseResumePrompt:
		switch key {
		case "y", "Y":
			session := sess.Resume(s.snap, s.title, s.saver)
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(session)}
			}
		case "n", "N":
			s.saver.DeleteProgress(s.quizID)
			s.snap = nil
			s.phase = phaseConfigure
		}
		return s, nil

	case phaseConfigure:
		switch key {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down", "j":
			if s.cursor < fieldCount-1 {
				s.cursor++
			}
			return s, nil
		case "enter", "space":
			return s.activateField()
		}

		if s.cursor == fieldTimeLimit {
			var cmd tea.Cmd
			s.timeInput, cmd = s.timeInput.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *SetupScreen) activateField() (screen.Screen, tea.Cmd) {
	switch s.cursor {
	case fieldShuffleQuestions:
		s.cfg.ShuffleQuestions = !s.cfg.ShuffleQuestions
	case fieldShuffleAnswers:
		s.cfg.ShuffleAnswers = !s.cfg.ShuffleAnswers
	case fieldTimeLimit, fieldStart:
		if s.cursor == fieldTimeLimit {
			s.cursor = fieldStart
			return s, nil
		}
		return s.start()
	}
	return s, nil
}

func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	cfg := s.cfg
	if v, err := s.timeInput.NumericValue(); err == nil {
		cfg.TimeLimitMinutes = v
	}

	session, err := sess.Start(s.bank, s.quizID, s.title, cfg, s.saver)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(session)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading...")

	case phaseResumePrompt:
		detail := fmt.Sprintf("%d of %d answered", len(s.snap.Answers), len(s.snap.Questions))
		card := theme.Card.Render(
			theme.Title.Render("Resume where you left off?") + "\n\n" +
				lipgloss.NewStyle().Foreground(theme.Text).Render(detail) + "\n\n" +
				theme.Hint.Render("[y] resume    [n] start over"),
		)
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(card)
	}

	var b strings.Builder

	count := len(s.bank.SelectFor(s.quizID))
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf("%d questions", count)))
	b.WriteString("\n\n")

	b.WriteString(s.renderToggle(fieldShuffleQuestions, "Shuffle questions", s.cfg.ShuffleQuestions))
	b.WriteString(s.renderToggle(fieldShuffleAnswers, "Shuffle answers", s.cfg.ShuffleAnswers))

	timeLine := "Time limit (minutes, 0 = none): " + s.timeInput.View()
	b.WriteString(s.renderField(fieldTimeLimit, timeLine))
	b.WriteString("\n")

	startLabel := "Start quiz"
	if s.cursor == fieldStart {
		b.WriteString("  " + theme.ButtonActive.Render("  ▸ "+startLabel+" "))
	} else {
		b.WriteString("  " + theme.ButtonInactive.Render("    "+startLabel+" "))
	}
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (s *SetupScreen) renderToggle(field int, label string, on bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return s.renderField(field, box+" "+label)
}

func (s *SetupScreen) renderField(field int, text string) string {
	if s.cursor == field {
		return theme.Selected.Render("  ▸ "+text) + "\n"
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("    "+text) + "\n"
}
