package components

import (
	"strings"
	"testing"

	"quizdeck/internal/ui/theme"
)

func TestNavGridShowsPageNumbersAndFlags(t *testing.T) {
	g := NavGrid{
		Total:    45,
		Page:     1,
		PageSize: 40,
		Current:  40,
		Flagged:  func(i int) bool { return i == 42 },
	}
	out := g.View()

	for _, want := range []string{"41", "45", "⚑", "page 2/2"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(out, " 40") {
		t.Error("View() shows cells from the previous page")
	}
}

func TestNavGridReviewColorsCorrectness(t *testing.T) {
	answered := map[int]bool{0: true, 1: true}
	g := NavGrid{
		Total:    3,
		PageSize: 40,
		Current:  2,
		Answered: func(i int) bool { return answered[i] },
		Review:   true,
		Correct:  func(i int) bool { return i == 0 },
	}
	out := g.View()

	if want := theme.Correct.Render("  1 "); !strings.Contains(out, want) {
		t.Error("correct answer cell not rendered with the correct style")
	}
	if want := theme.Incorrect.Render("  2 "); !strings.Contains(out, want) {
		t.Error("wrong answer cell not rendered with the incorrect style")
	}
}

func TestNavGridLiveIgnoresCorrectness(t *testing.T) {
	g := NavGrid{
		Total:    2,
		PageSize: 40,
		Current:  1,
		Answered: func(i int) bool { return i == 0 },
		Correct:  func(i int) bool { return false },
	}
	out := g.View()

	bad := theme.Incorrect.Render("  1 ")
	if bad != "  1 " && strings.Contains(out, bad) {
		t.Error("live grid leaked review coloring")
	}
}
