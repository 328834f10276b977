// Package bank loads the screening question catalog and serves it read-only.
package bank

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/tdahscreen/internal/schema"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/questions.yaml
var builtinFS embed.FS

const builtinPath = "builtin/questions.yaml"

// DataError reports a missing, malformed, or inconsistent question bank.
type DataError struct {
	Source   string
	Problems []string
	Err      error
}

func (e *DataError) Error() string {
	if len(e.Problems) == 0 && e.Err != nil {
		return fmt.Sprintf("question bank %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("question bank %s: %s", e.Source, strings.Join(e.Problems, "; "))
}

func (e *DataError) Unwrap() error { return e.Err }

// Bank is an immutable, ordered catalog of questions.
type Bank struct {
	Source string
	Hash   string

	questions []Question
	byID      map[int]int
	counts    map[Category]int
}

// Load reads a question bank from a YAML or JSON file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataError{Source: path, Err: fmt.Errorf("bank.Load: %w", err)}
	}
	return Parse(data, path)
}

// LoadBuiltin returns the bank bundled with the binary.
func LoadBuiltin() (*Bank, error) {
	data, err := builtinFS.ReadFile(builtinPath)
	if err != nil {
		return nil, &DataError{Source: "builtin", Err: fmt.Errorf("bank.LoadBuiltin: %w", err)}
	}
	return Parse(data, "builtin")
}

// Parse decodes and validates a question-bank document. JSON input is
// accepted since the YAML decoder reads it as well.
func Parse(data []byte, source string) (*Bank, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &DataError{Source: source, Err: fmt.Errorf("bank.Parse: %w", err)}
	}
	if raw == nil {
		return nil, &DataError{Source: source, Problems: []string{"document is empty"}}
	}
	if errs := schema.ValidateBank(raw); len(errs) > 0 {
		return nil, &DataError{Source: source, Problems: problems(errs)}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DataError{Source: source, Err: fmt.Errorf("bank.Parse: %w", err)}
	}

	b, err := New(doc.Questions, source)
	if err != nil {
		return nil, err
	}
	h := sha256.Sum256(data)
	b.Hash = fmt.Sprintf("sha256:%x", h)
	return b, nil
}

// New builds a bank from questions already in memory. The slice is copied.
func New(questions []Question, source string) (*Bank, error) {
	if errs := Validate(questions); len(errs) > 0 {
		return nil, &DataError{Source: source, Problems: problems(errs)}
	}

	b := &Bank{
		Source:    source,
		questions: make([]Question, len(questions)),
		byID:      make(map[int]int, len(questions)),
		counts:    make(map[Category]int),
	}
	for i, q := range questions {
		b.questions[i] = cloneQuestion(q)
		b.byID[q.ID] = i
		b.counts[q.Category]++
	}
	return b, nil
}

// Questions returns a copy of the questions in document order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

// Question looks up a question by id.
func (b *Bank) Question(id int) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return cloneQuestion(b.questions[i]), true
}

// At returns the question at position i (0-based, document order).
func (b *Bank) At(i int) Question {
	return cloneQuestion(b.questions[i])
}

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.questions) }

// CountByCategory returns how many questions belong to c.
func (b *Bank) CountByCategory(c Category) int { return b.counts[c] }

func cloneQuestion(q Question) Question {
	out := q
	out.Options = append([]string(nil), q.Options...)
	if q.Feedback != nil {
		out.Feedback = make(map[Bucket]string, len(q.Feedback))
		for k, v := range q.Feedback {
			out.Feedback[k] = v
		}
	}
	if q.Scale != nil {
		out.Scale = append([]ScalePoint(nil), q.Scale...)
	}
	return out
}

func problems(errs []schema.ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
