package history

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"quizdeck/internal/store"
)

func TestTruncateTitle_MultiByte(t *testing.T) {
	title := "Lịch sử Việt Nam hiện đại và đương đại"
	got := truncateTitle(title, 24)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated title is invalid UTF-8: %q", got)
	}
	if want := string([]rune(title)[:23]) + "…"; got != want {
		t.Errorf("truncateTitle = %q, want %q", got, want)
	}
	if short := truncateTitle("Chương 1", 24); short != "Chương 1" {
		t.Errorf("short title modified: %q", short)
	}
}

func TestRowShowsRoundedPercent(t *testing.T) {
	s := New(nil)
	s.Update(historyLoadedMsg{Entries: []*store.HistoryEntry{
		{Title: "Chapter 1", TakenAt: time.Now(), Score: 2, Total: 3},
	}})

	out := s.View(80, 24)
	if !strings.Contains(out, "67%") {
		t.Errorf("View() shows truncated percent for 2/3, want 67%%:\n%s", out)
	}
}
