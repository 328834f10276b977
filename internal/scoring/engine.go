// Package scoring turns questionnaire responses into category scores,
// severity levels, and narrative feedback.
package scoring

import (
	"fmt"

	"github.com/dshills/tdahscreen/internal/bank"
)

// Responses maps question id to the chosen option. The engine only reads it.
type Responses map[int]string

// Scores maps each category to a percentage in [0,100].
type Scores map[bank.Category]float64

// Engine scores responses against one question bank. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	bank         *bank.Bank
	resolver     *Resolver
	descriptions Descriptions
}

// Option configures an Engine.
type Option func(*Engine)

// WithDescriptions replaces the bundled category descriptions.
func WithDescriptions(d Descriptions) Option {
	return func(e *Engine) { e.descriptions = d }
}

// NewEngine builds an engine for b. Every option of every question must
// resolve to a weight, otherwise a *bank.DataError is returned.
func NewEngine(b *bank.Bank, opts ...Option) (*Engine, error) {
	questions := b.Questions()
	e := &Engine{
		bank:     b,
		resolver: NewResolver(questions),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.descriptions == nil {
		d, err := LoadDescriptions()
		if err != nil {
			return nil, fmt.Errorf("scoring.NewEngine: %w", err)
		}
		e.descriptions = d
	}

	var problems []string
	for _, q := range questions {
		for _, o := range q.Options {
			if _, err := e.resolver.Resolve(q.ID, o); err != nil {
				problems = append(problems, err.Error())
			}
		}
	}
	if len(problems) > 0 {
		return nil, &bank.DataError{Source: b.Source, Problems: problems}
	}
	return e, nil
}

// Bank returns the engine's question bank.
func (e *Engine) Bank() *bank.Bank { return e.bank }

// Resolve returns the weight of one answer.
func (e *Engine) Resolve(questionID int, option string) (Weight, error) {
	return e.resolver.Resolve(questionID, option)
}

// CategoryScores sums the weights of answered questions per category and
// normalizes each sum by the category's maximum possible total, so
// categories with more questions are not inflated. Unanswered questions
// count as zero; response keys that are not bank ids are ignored.
func (e *Engine) CategoryScores(resp Responses) (Scores, error) {
	sums := make(map[bank.Category]int, len(bank.Categories()))
	for _, c := range bank.Categories() {
		sums[c] = 0
	}
	for _, q := range e.bank.Questions() {
		option, ok := resp[q.ID]
		if !ok {
			continue
		}
		w, err := e.resolver.Resolve(q.ID, option)
		if err != nil {
			return nil, err
		}
		sums[q.Category] += w.Value
	}

	scores := make(Scores, len(sums))
	for c, sum := range sums {
		max := bank.MaxWeight * e.bank.CountByCategory(c)
		if max == 0 {
			scores[c] = 0
			continue
		}
		scores[c] = float64(sum) / float64(max) * 100
	}
	return scores, nil
}

// SeverityLevel classifies a percentage score.
func (e *Engine) SeverityLevel(score float64) Severity {
	return Classify(score)
}
