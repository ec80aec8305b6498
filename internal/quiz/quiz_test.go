package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"unicode/utf8"
)

func twoOptions(correct string, other string) []Option {
	return []Option{
		{Text: other},
		{Text: correct, IsCorrect: true},
	}
}

func testBank() *Bank {
	b := NewBank()
	b.AddSource("c1", "Chapter 1", []Question{
		{Text: "Q1", Options: twoOptions("B", "A")},
		{Text: "Q2", Options: twoOptions("D", "C")},
	}, false)
	b.AddSource("c2", "Chapter 2", []Question{
		{Text: "Q3", Options: twoOptions("F", "E")},
	}, false)
	return b
}

func TestSelectFor_Chapter(t *testing.T) {
	b := testBank()

	qs := b.SelectFor("c1")
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
	for _, q := range qs {
		if q.ChapterID != "c1" || q.ChapterName != "Chapter 1" {
			t.Errorf("question %q not stamped with chapter: %q %q", q.Text, q.ChapterID, q.ChapterName)
		}
	}
}

func TestSelectFor_All(t *testing.T) {
	b := testBank()

	qs := b.SelectFor(AllQuizID)
	if len(qs) != b.Len() {
		t.Fatalf("len = %d, want %d", len(qs), b.Len())
	}
}

func TestSelectFor_ReturnsCopies(t *testing.T) {
	b := testBank()

	qs := b.SelectFor("c1")
	qs[0].Options[0].Text = "mutated"

	again := b.SelectFor("c1")
	if again[0].Options[0].Text == "mutated" {
		t.Error("mutating a selection leaked into the bank")
	}
}

func TestSelectFor_UnknownChapter(t *testing.T) {
	b := testBank()
	if qs := b.SelectFor("nope"); len(qs) != 0 {
		t.Errorf("len = %d, want 0", len(qs))
	}
}

func TestRemoveSource(t *testing.T) {
	b := testBank()
	b.RemoveSource("c1")

	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if qs := b.SelectFor("c1"); len(qs) != 0 {
		t.Errorf("removed chapter still selectable: %d questions", len(qs))
	}
	chapters := b.Chapters()
	if len(chapters) != 1 || chapters[0].ID != "c2" {
		t.Errorf("chapters = %+v, want only c2", chapters)
	}

	// Unknown ids are a no-op.
	b.RemoveSource("nope")
	if b.Len() != 1 {
		t.Errorf("Len after no-op remove = %d, want 1", b.Len())
	}
}

func TestTruncate_MultiByte(t *testing.T) {
	s := "Tiếng Việt là ngôn ngữ của người Việt"
	got := truncate(s, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if want := string([]rune(s)[:10]) + "..."; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}
	if short := truncate("ngắn", 10); short != "ngắn" {
		t.Errorf("short string modified: %q", short)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	out := Shuffle(in)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}

	sorted := make([]int, len(out))
	copy(sorted, out)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("output is not a permutation of input: %v", out)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	Shuffle(in)
	for i, v := range in {
		if v != i+1 {
			t.Fatalf("input mutated: %v", in)
		}
	}
}

func TestValidate_ExactlyOneCorrect(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{"one correct", []Option{{Text: "A"}, {Text: "B", IsCorrect: true}}, false},
		{"none correct", []Option{{Text: "A"}, {Text: "B"}}, true},
		{"two correct", []Option{{Text: "A", IsCorrect: true}, {Text: "B", IsCorrect: true}}, true},
		{"duplicate text", []Option{{Text: "A"}, {Text: "A", IsCorrect: true}}, true},
		{"single option", []Option{{Text: "A", IsCorrect: true}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("test.json", []Question{{Text: "Q", Options: tt.opts}})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error is %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestValidate_EmptySet(t *testing.T) {
	if err := Validate("empty.json", nil); err == nil {
		t.Error("expected error for empty question set")
	}
}

func TestLoadDir_SkipsBadSources(t *testing.T) {
	dir := t.TempDir()

	good := `{"quiz":{"title":"Good","questions":[
		{"question_text":"Q1","options":[{"text":"A"},{"text":"B","is_correct":true}]}
	]}}`
	bad := `{"quiz":{"questions":[{"question_text":"Q1","options":[{"text":"A"},{"text":"B"}]}]}}`
	notJSON := `{{{`

	writeFile(t, filepath.Join(dir, "good.json"), good)
	writeFile(t, filepath.Join(dir, "bad.json"), bad)
	writeFile(t, filepath.Join(dir, "broken.json"), notJSON)

	b, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	chapters := b.Chapters()
	if len(chapters) != 1 {
		t.Fatalf("chapters = %d, want 1 (bad sources skipped)", len(chapters))
	}
	if chapters[0].ID != "good" || chapters[0].Name != "Good" || chapters[0].Count != 1 {
		t.Errorf("chapter = %+v", chapters[0])
	}
}

func TestLoadFile_TitleFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chap1.json")
	writeFile(t, path, `{"quiz":{"questions":[
		{"question_text":"Q1","options":[{"text":"A"},{"text":"B","is_correct":true}]}
	]}}`)

	title, qs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if title != "chap1" {
		t.Errorf("title = %q, want %q", title, "chap1")
	}
	if len(qs) != 1 {
		t.Errorf("questions = %d, want 1", len(qs))
	}
}

func TestCorrectText(t *testing.T) {
	q := Question{Text: "Q", Options: []Option{{Text: "A"}, {Text: "B", IsCorrect: true}}}
	if got := q.CorrectText(); got != "B" {
		t.Errorf("CorrectText() = %q, want %q", got, "B")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
