package scoring

import (
	"testing"

	"github.com/dshills/tdahscreen/internal/bank"
)

func genericOptions() []string {
	return []string{"Raramente", "Às vezes", "Frequentemente", "Sempre"}
}

func feedback(prefix string) map[bank.Bucket]string {
	return map[bank.Bucket]string{
		bank.BucketLow:    prefix + "-low",
		bank.BucketMedium: prefix + "-medium",
		bank.BucketHigh:   prefix + "-high",
	}
}

func question(id int, c bank.Category) bank.Question {
	return bank.Question{
		ID:       id,
		Text:     "pergunta",
		Options:  genericOptions(),
		Category: c,
		Feedback: feedback("q"),
	}
}

// overrideQuestion uses custom phrasing instead of the frequency scale.
func overrideQuestion(id int, c bank.Category) bank.Question {
	return bank.Question{
		ID:       id,
		Text:     "Quando chamado pelo nome, seu filho(a)...",
		Options:  []string{"Responde imediatamente", "Responde após insistência", "Ignora completamente"},
		Category: c,
		Feedback: feedback("override"),
		Scale: []bank.ScalePoint{
			{Option: "Responde imediatamente", Weight: 0, Bucket: bank.BucketLow},
			{Option: "Responde após insistência", Weight: 1, Bucket: bank.BucketMedium},
			{Option: "Ignora completamente", Weight: 3, Bucket: bank.BucketHigh},
		},
	}
}

func mixedQuestions() []bank.Question {
	return []bank.Question{
		question(1, bank.CategoryConcentration),
		question(2, bank.CategoryConcentration),
		overrideQuestion(3, bank.CategoryConcentration),
		question(4, bank.CategoryImpulsivity),
		question(5, bank.CategoryHyperactivity),
		question(6, bank.CategoryHyperactivity),
	}
}

func newEngine(t *testing.T, questions []bank.Question) *Engine {
	t.Helper()
	b, err := bank.New(questions, "test")
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	e, err := NewEngine(b)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func builtinEngine(t *testing.T) *Engine {
	t.Helper()
	b, err := bank.LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	e, err := NewEngine(b)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// maxResponses answers every question with its highest-weight option.
func maxResponses(e *Engine) Responses {
	resp := make(Responses)
	for _, q := range e.Bank().Questions() {
		best, bestWeight := "", -1
		for _, o := range q.Options {
			w, err := e.Resolve(q.ID, o)
			if err == nil && w.Value > bestWeight {
				best, bestWeight = o, w.Value
			}
		}
		resp[q.ID] = best
	}
	return resp
}

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
