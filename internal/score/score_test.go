package score

import (
	"testing"

	"quizdeck/internal/quiz"
)

func question(chapID, chapName, correct string) quiz.Question {
	return quiz.Question{
		Text:        "Q",
		ChapterID:   chapID,
		ChapterName: chapName,
		Options: []quiz.Option{
			{Text: "A"},
			{Text: correct, IsCorrect: true},
		},
	}
}

func TestScore_AnsweredCorrectly(t *testing.T) {
	qs := []quiz.Question{question("c1", "One", "B")}

	res := Score(qs, map[int]string{0: "B"})
	if res.Total != 1 || res.Correct != 1 {
		t.Errorf("got %d/%d, want 1/1", res.Correct, res.Total)
	}
}

func TestScore_UnansweredIsIncorrect(t *testing.T) {
	qs := []quiz.Question{question("c1", "One", "B")}

	res := Score(qs, map[int]string{})
	if res.Total != 1 || res.Correct != 0 {
		t.Errorf("got %d/%d, want 0/1", res.Correct, res.Total)
	}
}

func TestScore_WrongAnswer(t *testing.T) {
	qs := []quiz.Question{question("c1", "One", "B")}

	res := Score(qs, map[int]string{0: "A"})
	if res.Correct != 0 {
		t.Errorf("Correct = %d, want 0", res.Correct)
	}
}

func TestScore_ChapterAggregation(t *testing.T) {
	// Chapters interleaved the way a shuffled session leaves them.
	qs := []quiz.Question{
		question("c1", "One", "B"),
		question("c2", "Two", "B"),
		question("c1", "One", "B"),
	}

	res := Score(qs, map[int]string{0: "B", 1: "B", 2: "A"})

	if len(res.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(res.Chapters))
	}
	c1 := res.Chapters[0]
	if c1.ID != "c1" || c1.Correct != 1 || c1.Total != 2 {
		t.Errorf("c1 = %+v, want correct 1/2", c1)
	}
	if got := c1.Percent(); got != 50 {
		t.Errorf("c1.Percent() = %d, want 50", got)
	}
	c2 := res.Chapters[1]
	if c2.Correct != 1 || c2.Total != 1 {
		t.Errorf("c2 = %+v, want correct 1/1", c2)
	}
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{0, 0, 0},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.correct, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
		c := ChapterStat{Correct: tt.correct, Total: tt.total}
		if got := c.Percent(); got != tt.want {
			t.Errorf("ChapterStat.Percent(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
