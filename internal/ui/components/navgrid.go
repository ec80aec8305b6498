package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdeck/internal/ui/theme"
)

// NavGridColumns is the number of cells per grid row.
const NavGridColumns = 10

// NavGrid renders one page of question numbers for direct navigation.
// Cell styling encodes status: the current question is highlighted,
// flagged questions are amber, answered questions teal, the rest dim.
// In review mode answered cells show correctness instead: green when
// right, red when wrong.
type NavGrid struct {
	Total    int
	Page     int
	PageSize int
	Current  int
	Answered func(i int) bool
	Flagged  func(i int) bool

	Review  bool
	Correct func(i int) bool
}

// PageBounds returns the half-open index range [start, end) shown on
// the grid's page.
func (g NavGrid) PageBounds() (start, end int) {
	start = g.Page * g.PageSize
	end = start + g.PageSize
	if end > g.Total {
		end = g.Total
	}
	return start, end
}

// View renders the grid plus a page indicator when there is more than
// one page.
func (g NavGrid) View() string {
	start, end := g.PageBounds()

	var rows []string
	var row []string
	for i := start; i < end; i++ {
		cell := fmt.Sprintf("%3d", i+1)
		if g.Flagged != nil && g.Flagged(i) {
			cell += "⚑"
		} else {
			cell += " "
		}

		switch {
		case i == g.Current:
			cell = lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(cell)
		case g.Review && g.Answered != nil && g.Answered(i):
			if g.Correct != nil && g.Correct(i) {
				cell = theme.Correct.Render(cell)
			} else {
				cell = theme.Incorrect.Render(cell)
			}
		case g.Flagged != nil && g.Flagged(i):
			cell = theme.Flagged.Render(cell)
		case g.Answered != nil && g.Answered(i):
			cell = lipgloss.NewStyle().Foreground(theme.Secondary).Render(cell)
		default:
			cell = lipgloss.NewStyle().Foreground(theme.TextDim).Render(cell)
		}

		row = append(row, cell)
		if len(row) == NavGridColumns {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	s := strings.Join(rows, "\n")

	pages := g.PageCount()
	if pages > 1 {
		indicator := fmt.Sprintf("page %d/%d  ‹ › to switch", g.Page+1, pages)
		s += "\n" + theme.Hint.Render(indicator)
	}
	return s
}

// PageCount returns the number of grid pages.
func (g NavGrid) PageCount() int {
	if g.Total == 0 {
		return 1
	}
	return (g.Total + g.PageSize - 1) / g.PageSize
}
