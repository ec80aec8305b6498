package quiz

// Option is one answer choice of a multiple-choice question.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Question is a multiple-choice question stamped with its source chapter.
// Exactly one option is correct and option texts are unique within a
// question; both are enforced at ingestion (Validate), not here.
type Question struct {
	Text        string   `json:"question_text"`
	Options     []Option `json:"options"`
	ChapterID   string   `json:"chapter_id"`
	ChapterName string   `json:"chapter_name"`
}

// CorrectText returns the text of the correct option, or "" if the
// question has none (possible only for data that bypassed Validate).
func (q Question) CorrectText() string {
	for _, o := range q.Options {
		if o.IsCorrect {
			return o.Text
		}
	}
	return ""
}

// Clone returns a deep copy. Sessions shuffle and persist copies, so
// the bank's canonical order must never be reachable through them.
func (q Question) Clone() Question {
	c := q
	c.Options = make([]Option, len(q.Options))
	copy(c.Options, q.Options)
	return c
}

// CloneAll deep-copies a question slice.
func CloneAll(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

// Chapter describes one loaded source for display on the home screen.
type Chapter struct {
	ID     string
	Name   string
	Count  int
	Custom bool
}
