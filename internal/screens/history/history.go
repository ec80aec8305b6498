package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"quizdeck/internal/router"
	"quizdeck/internal/score"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/quizscreen"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

type historyLoadedMsg struct {
	Entries []*store.HistoryEntry
	Err     error
}

// HistoryScreen lists past attempts, newest first. Selecting one opens
// a read-only review of its questions and answers.
type HistoryScreen struct {
	repo     store.HistoryRepo
	entries  []*store.HistoryEntry
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.HistoryRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.repo.List(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// Stored oldest first; show newest first.
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		return historyLoadedMsg{Entries: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Review"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.entries) {
				entry := s.entries[s.selected]
				if len(entry.Questions) == 0 {
					return s, nil
				}
				review := quizscreen.NewReview(entry.Title, entry.Questions, entry.Answers)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: review} }
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, entry := range s.entries {
		dateStr := entry.TakenAt.Format("Jan 02, 2006 15:04")

		percent := score.Percent(entry.Score, entry.Total)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-24s  %d/%d  %d%%",
			prefix, dateStr, truncateTitle(entry.Title, 24), entry.Score, entry.Total, percent)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncateTitle(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
