package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/router"
	"quizdeck/internal/score"
	"quizdeck/internal/screen"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// ResultsScreen displays the outcome of a submitted quiz. The review
// factory builds a read-only answer review on demand; the caller
// supplies it so this package stays decoupled from the quiz screen.
type ResultsScreen struct {
	result     *score.Result
	title      string
	makeReview func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen.
func New(result *score.Result, title string, makeReview func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		result:     result,
		title:      title,
		makeReview: makeReview,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results · " + r.title
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "Enter", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		if r.makeReview != nil {
			review := r.makeReview()
			return r, func() tea.Msg { return router.PushScreenMsg{Screen: review} }
		}
	case "enter", "esc":
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	res := r.result

	var b strings.Builder

	heading := fmt.Sprintf("%d / %d", res.Correct, res.Total)
	b.WriteString(theme.Title.Width(width).Render(heading))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf("%d%% correct", res.Percent())))
	b.WriteString("\n\n")

	barWidth := width - 12
	if barWidth > 60 {
		barWidth = 60
	}

	overall := components.NewProgressBar("", float64(res.Correct)/float64(res.Total), false, barWidth)
	overall.FillColor = percentColor(res.Percent())
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(overall.View()))
	b.WriteString("\n\n")

	if len(res.Chapters) > 1 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Padding(0, 4).
			Render("By chapter"))
		b.WriteString("\n\n")

		labelWidth := 0
		for _, ch := range res.Chapters {
			if w := lipgloss.Width(ch.Name); w > labelWidth {
				labelWidth = w
			}
		}

		for _, ch := range res.Chapters {
			label := fmt.Sprintf("%-*s  %2d/%2d", labelWidth, ch.Name, ch.Correct, ch.Total)
			bar := components.NewProgressBar(label, float64(ch.Correct)/float64(ch.Total), true, barWidth)
			bar.FillColor = percentColor(ch.Percent())
			b.WriteString(lipgloss.NewStyle().Padding(0, 4).Render(bar.View()))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Left, lipgloss.Center).
		Render(b.String())
}

func percentColor(percent int) color.Color {
	switch {
	case percent >= 70:
		return theme.Success
	case percent >= 40:
		return theme.Warning
	default:
		return theme.Error
	}
}
