package quiz

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AllQuizID selects every loaded question regardless of chapter.
const AllQuizID = "all"

// Bank is the question repository: the full set of loaded questions,
// read-only after load and shared by all sessions.
type Bank struct {
	questions []Question
	chapters  []Chapter
}

// NewBank returns an empty bank.
func NewBank() *Bank {
	return &Bank{}
}

// AddSource appends one chapter or custom set, stamping every question
// with the source id and name.
func (b *Bank) AddSource(id, name string, qs []Question, custom bool) {
	for _, q := range qs {
		q.ChapterID = id
		q.ChapterName = name
		b.questions = append(b.questions, q)
	}
	b.chapters = append(b.chapters, Chapter{ID: id, Name: name, Count: len(qs), Custom: custom})
}

// RemoveSource drops a source and its questions, for custom set
// deletion. Unknown ids are a no-op.
func (b *Bank) RemoveSource(id string) {
	kept := b.questions[:0]
	for _, q := range b.questions {
		if q.ChapterID != id {
			kept = append(kept, q)
		}
	}
	b.questions = kept

	for i, ch := range b.chapters {
		if ch.ID == id {
			b.chapters = append(b.chapters[:i], b.chapters[i+1:]...)
			break
		}
	}
}

// Chapters returns the loaded sources in load order.
func (b *Bank) Chapters() []Chapter {
	out := make([]Chapter, len(b.chapters))
	copy(out, b.chapters)
	return out
}

// Len returns the total number of loaded questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// SelectFor returns deep copies of the questions for quizID, or of the
// whole bank for AllQuizID. Callers own the result outright.
func (b *Bank) SelectFor(quizID string) []Question {
	if quizID == AllQuizID {
		return CloneAll(b.questions)
	}
	var out []Question
	for _, q := range b.questions {
		if q.ChapterID == quizID {
			out = append(out, q.Clone())
		}
	}
	return out
}

// quizFile is the wire format of a question-bank file:
// {"quiz": {"title": "...", "questions": [...]}}.
type quizFile struct {
	Quiz struct {
		Title     string     `json:"title"`
		Questions []Question `json:"questions"`
	} `json:"quiz"`
}

// LoadFile parses and validates one question-bank file. The returned
// title falls back to the file name when the quiz has none.
func LoadFile(path string) (string, []Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := validateSchema(raw); err != nil {
		return "", nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	var f quizFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := Validate(filepath.Base(path), f.Quiz.Questions); err != nil {
		return "", nil, err
	}

	title := f.Quiz.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return title, f.Quiz.Questions, nil
}

// LoadDir loads every *.json file under dir into a bank, one chapter
// per file keyed by the file's base name. A file that cannot be read
// or fails validation is logged and skipped; it never aborts the rest.
func LoadDir(dir string) (*Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read bank dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	b := NewBank()
	for _, name := range names {
		path := filepath.Join(dir, name)
		title, qs, err := LoadFile(path)
		if err != nil {
			log.Printf("skipping bank source %s: %v", name, err)
			continue
		}
		id := strings.TrimSuffix(name, filepath.Ext(name))
		b.AddSource(id, title, qs, false)
	}
	return b, nil
}
