// Package score computes the result of a finished quiz attempt from
// its frozen question list and answer map.
package score

import (
	"math"

	"quizdeck/internal/quiz"
)

// ChapterStat aggregates correctness for one source chapter.
type ChapterStat struct {
	ID      string
	Name    string
	Correct int
	Total   int
}

// Percent returns the round-half-up percentage of correct answers.
func (c ChapterStat) Percent() int {
	return Percent(c.Correct, c.Total)
}

// Result is the scored outcome of an attempt.
type Result struct {
	Correct int
	Total   int
	// Chapters in first-appearance order of the (possibly shuffled)
	// question sequence; questions sharing a chapter id group together
	// even when shuffled apart.
	Chapters []ChapterStat
}

// Percent returns the round-half-up overall percentage.
func (r *Result) Percent() int {
	return Percent(r.Correct, r.Total)
}

// Percent is the round-half-up percentage rule every score display
// shares, so the same attempt never shows two different numbers.
func Percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Correct reports whether the stored answer for a question matches the
// text of its correct option. An absent answer is incorrect, never an
// error.
func Correct(q quiz.Question, answer string, answered bool) bool {
	return answered && answer == q.CorrectText()
}

// Score classifies every question with the text-equality rule and
// aggregates totals per chapter.
func Score(questions []quiz.Question, answers map[int]string) *Result {
	res := &Result{Total: len(questions)}
	byID := make(map[string]int) // chapter id -> index into res.Chapters

	for i, q := range questions {
		ci, ok := byID[q.ChapterID]
		if !ok {
			ci = len(res.Chapters)
			byID[q.ChapterID] = ci
			res.Chapters = append(res.Chapters, ChapterStat{ID: q.ChapterID, Name: q.ChapterName})
		}
		res.Chapters[ci].Total++

		answer, answered := answers[i]
		if Correct(q, answer, answered) {
			res.Correct++
			res.Chapters[ci].Correct++
		}
	}
	return res
}
