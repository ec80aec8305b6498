package quiz

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError reports a malformed question in an imported set,
// identifying the offending question so the user can fix the file.
type ValidationError struct {
	Source   string // file or set name
	Question string // leading text of the offending question, "" for file-level problems
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Question == "" {
		return fmt.Sprintf("%s: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("%s: question %q: %s", e.Source, e.Question, e.Reason)
}

// fileSchema is the structural contract of a question-bank file.
// Semantic rules (exactly one correct option, unique option text)
// are checked separately by Validate.
const fileSchema = `{
  "type": "object",
  "required": ["quiz"],
  "properties": {
    "quiz": {
      "type": "object",
      "required": ["questions"],
      "properties": {
        "title": {"type": "string"},
        "questions": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["question_text", "options"],
            "properties": {
              "question_text": {"type": "string", "minLength": 1},
              "options": {
                "type": "array",
                "minItems": 2,
                "items": {
                  "type": "object",
                  "required": ["text"],
                  "properties": {
                    "text": {"type": "string", "minLength": 1},
                    "is_correct": {"type": "boolean"}
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateSchema checks raw JSON against the file schema.
func validateSchema(raw []byte) error {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(fileSchema)))
		if err != nil {
			schemaErr = fmt.Errorf("parse quiz file schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("quizfile.json", doc); err != nil {
			schemaErr = fmt.Errorf("add quiz file schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("quizfile.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// truncate shortens question text for diagnostics without splitting a
// multi-byte rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Validate enforces the semantic preconditions of ingested questions:
// a non-empty set, exactly one correct option per question, and option
// texts unique within each question (correctness is matched by text).
func Validate(source string, qs []Question) error {
	if len(qs) == 0 {
		return &ValidationError{Source: source, Reason: "no questions"}
	}
	for _, q := range qs {
		label := truncate(q.Text, 30)
		if q.Text == "" {
			return &ValidationError{Source: source, Reason: "question with empty text"}
		}
		if len(q.Options) < 2 {
			return &ValidationError{Source: source, Question: label, Reason: "fewer than two options"}
		}

		correct := 0
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Text == "" {
				return &ValidationError{Source: source, Question: label, Reason: "option with empty text"}
			}
			if seen[o.Text] {
				return &ValidationError{Source: source, Question: label,
					Reason: fmt.Sprintf("duplicate option text %q", truncate(o.Text, 30))}
			}
			seen[o.Text] = true
			if o.IsCorrect {
				correct++
			}
		}
		switch {
		case correct == 0:
			return &ValidationError{Source: source, Question: label, Reason: "no option marked is_correct"}
		case correct > 1:
			return &ValidationError{Source: source, Question: label,
				Reason: fmt.Sprintf("%d options marked is_correct, want exactly 1", correct)}
		}
	}
	return nil
}
