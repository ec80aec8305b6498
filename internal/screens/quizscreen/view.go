package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "quizdeck/internal/session"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/theme"
)

const gridColumns = components.NavGridColumns

func (q *QuizScreen) View(width, height int) string {
	switch q.confirm {
	case confirmSubmit:
		return q.renderConfirm(width, height,
			"Submit now?",
			fmt.Sprintf("%d of %d answered. Unanswered questions count as wrong.",
				q.sess.AnsweredCount(), q.sess.Len()))
	case confirmQuit:
		return q.renderConfirm(width, height,
			"Exit quiz?",
			"Your progress is saved. Resume any time from the home screen.")
	}

	var b strings.Builder

	b.WriteString(q.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	question := q.sess.Current()
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 2)
	b.WriteString(questionStyle.Render(question.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(q.options.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(q.grid().View()))

	return b.String()
}

// renderInfoLine shows position, chapter and flag state for the current
// question.
func (q *QuizScreen) renderInfoLine(width int) string {
	i := q.sess.CurrentIndex()
	question := q.sess.Current()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", i+1, q.sess.Len()))
	if question.ChapterName != "" {
		left += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  ·  " + question.ChapterName)
	}

	var right string
	if q.sess.Flagged(i) {
		right = theme.Flagged.Render("⚑ flagged")
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// statusView renders the header status: answered count plus the timer.
func (q *QuizScreen) statusView() string {
	if q.sess.Mode() == sess.ModeReview {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("review")
	}

	answered := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", q.sess.AnsweredCount(), q.sess.Len()))

	timer := q.sess.Timer()
	display := timer.Display()
	var timerStr string
	if timer.Mode == sess.Countdown && timer.LowTime() {
		timerStr = theme.TimerLow.Render("⏱ " + display)
	} else {
		timerStr = lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱ " + display)
	}

	return answered + "   " + timerStr
}

func (q *QuizScreen) grid() components.NavGrid {
	current := q.sess.CurrentIndex()
	if q.gridFocus {
		current = q.gridCursor
	}
	return components.NavGrid{
		Total:    q.sess.Len(),
		Page:     q.sess.NavPage(),
		PageSize: sess.NavPageSize,
		Current:  current,
		Answered: q.sess.Answered,
		Flagged:  q.sess.Flagged,
		Review:   q.sess.Mode() == sess.ModeReview,
		Correct:  q.sess.Correct,
	}
}

func (q *QuizScreen) renderConfirm(width, height int, title, detail string) string {
	card := theme.Card.Render(
		theme.Title.Render(title) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render(detail) + "\n\n" +
			theme.Hint.Render("[y] yes    [n] no"),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
