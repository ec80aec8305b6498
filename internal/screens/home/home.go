package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/history"
	"quizdeck/internal/screens/setup"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// activeLoadedMsg carries the set of quizzes with saved progress.
type activeLoadedMsg struct {
	active map[string]bool
}

// HomeScreen is the entry screen: pick a chapter or custom quiz, view
// past attempts, or exit. Custom quizzes can be deleted with "d".
type HomeScreen struct {
	bank     *quiz.Bank
	progress store.ProgressRepo
	history  store.HistoryRepo
	saver    *store.Saver

	menu   components.Menu
	active map[string]bool

	// customAt maps menu indices to the custom quiz they represent.
	customAt map[int]quiz.Chapter

	// confirmDelete holds the custom quiz pending a y/n delete confirm.
	confirmDelete *quiz.Chapter
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(bank *quiz.Bank, progress store.ProgressRepo, hist store.HistoryRepo, saver *store.Saver) *HomeScreen {
	h := &HomeScreen{
		bank:     bank,
		progress: progress,
		history:  hist,
		saver:    saver,
	}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		active, err := h.progress.ActiveQuizIDs(context.Background())
		if err != nil {
			return activeLoadedMsg{}
		}
		return activeLoadedMsg{active: active}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmDelete != nil {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if _, ok := h.customAt[h.menu.Selected]; ok {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Delete"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activeLoadedMsg:
		h.active = msg.active
		h.rebuildMenu()
		return h, nil

	case tea.KeyMsg:
		if h.confirmDelete != nil {
			switch msg.String() {
			case "y":
				h.deleteCustom(*h.confirmDelete)
			case "n", "esc":
				h.confirmDelete = nil
			}
			return h, nil
		}

		switch msg.String() {
		case "q":
			return h, tea.Quit
		case "d":
			if ch, ok := h.customAt[h.menu.Selected]; ok {
				h.confirmDelete = &ch
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if ch := h.confirmDelete; ch != nil {
		card := theme.Card.Render(
			theme.Title.Render("Delete quiz?") + "\n\n" +
				lipgloss.NewStyle().Foreground(theme.Text).
					Render(fmt.Sprintf("%q and its saved progress will be removed.", ch.Name)) + "\n\n" +
				theme.Hint.Render("[y] yes    [n] no"),
		)
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(card)
	}

	banner := theme.Title.Width(width).Render("QuizDeck") + "\n" +
		theme.Subtitle.Width(width).Render("pick a quiz to begin") + "\n\n"

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(banner + h.menu.View())
}

// deleteCustom removes an imported quiz from the bank and the store.
func (h *HomeScreen) deleteCustom(ch quiz.Chapter) {
	h.bank.RemoveSource(ch.ID)
	h.saver.DeleteCustomQuiz(ch.ID)
	delete(h.active, ch.ID)
	h.confirmDelete = nil
	h.rebuildMenu()
}

func (h *HomeScreen) rebuildMenu() {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.buildItems())
	if selected < len(h.menu.Items) {
		h.menu.Selected = selected
	}
}

// buildItems assembles the menu: chapters first, then custom quizzes,
// the all-questions entry, history and exit.
func (h *HomeScreen) buildItems() []components.MenuItem {
	var items []components.MenuItem
	h.customAt = make(map[int]quiz.Chapter)

	add := func(ch quiz.Chapter) {
		hint := fmt.Sprintf("%d questions", ch.Count)
		if h.active[ch.ID] {
			hint += "  · in progress"
		}
		if ch.Custom {
			h.customAt[len(items)] = ch
		}
		id, name := ch.ID, ch.Name
		items = append(items, components.MenuItem{
			Label: name,
			Hint:  hint,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: setup.New(h.bank, id, name, h.progress, h.saver),
					}
				}
			},
		})
	}

	for _, ch := range h.bank.Chapters() {
		if !ch.Custom {
			add(ch)
		}
	}
	for _, ch := range h.bank.Chapters() {
		if ch.Custom {
			add(ch)
		}
	}

	if h.bank.Len() > 0 {
		add(quiz.Chapter{ID: quiz.AllQuizID, Name: "All Questions", Count: h.bank.Len()})
	}

	items = append(items, components.MenuItem{
		Label: "History",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.history)}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return items
}
