// Package session holds the caller-owned state of one questionnaire run:
// the current step and the answers given so far.
package session

import (
	"errors"
	"fmt"

	"github.com/dshills/tdahscreen/internal/bank"
	"github.com/dshills/tdahscreen/internal/scoring"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidOption   = errors.New("option is not one of the question's choices")
	ErrUnanswered      = errors.New("current question has not been answered")
)

// Phase is the kind of screen a step shows.
type Phase string

const (
	PhaseIntro        Phase = "intro"
	PhaseQuestion     Phase = "question"
	PhaseResults      Phase = "results"
	PhaseTestimonials Phase = "testimonials"
)

// Session tracks progress through the questionnaire. Step 0 is the intro,
// steps 1..n are the questions, n+1 shows results and n+2 testimonials.
// A Session is not safe for concurrent use; each caller owns its own.
type Session struct {
	bank      *bank.Bank
	step      int
	responses scoring.Responses
}

// New starts a session at the intro step.
func New(b *bank.Bank) *Session {
	return &Session{bank: b, responses: make(scoring.Responses)}
}

// Step returns the current step index.
func (s *Session) Step() int { return s.step }

// TotalSteps counts the intro, every question, results and testimonials.
func (s *Session) TotalSteps() int { return s.bank.Len() + 3 }

// Progress returns the fraction of steps already passed, in [0,1).
func (s *Session) Progress() float64 {
	return float64(s.step) / float64(s.TotalSteps())
}

func (s *Session) lastStep() int { return s.bank.Len() + 2 }

// Phase returns what the current step shows.
func (s *Session) Phase() Phase {
	n := s.bank.Len()
	switch {
	case s.step == 0:
		return PhaseIntro
	case s.step <= n:
		return PhaseQuestion
	case s.step == n+1:
		return PhaseResults
	default:
		return PhaseTestimonials
	}
}

// Current returns the question shown at the current step, if any.
func (s *Session) Current() (bank.Question, bool) {
	if s.Phase() != PhaseQuestion {
		return bank.Question{}, false
	}
	return s.bank.At(s.step - 1), true
}

// Answer records option for question id, replacing any earlier answer.
func (s *Session) Answer(id int, option string) error {
	q, ok := s.bank.Question(id)
	if !ok {
		return fmt.Errorf("session.Answer: %w: %d", ErrUnknownQuestion, id)
	}
	if !q.HasOption(option) {
		return fmt.Errorf("session.Answer: question %d: %w: %q", id, ErrInvalidOption, option)
	}
	s.responses[id] = option
	return nil
}

// Response returns the recorded answer for question id.
func (s *Session) Response(id int) (string, bool) {
	r, ok := s.responses[id]
	return r, ok
}

// CanAdvance reports whether Next would move forward. Question steps
// require an answer; the final step has nowhere to go.
func (s *Session) CanAdvance() bool {
	if s.step >= s.lastStep() {
		return false
	}
	q, ok := s.Current()
	if !ok {
		return true
	}
	_, answered := s.responses[q.ID]
	return answered
}

// Next moves one step forward.
func (s *Session) Next() error {
	if q, ok := s.Current(); ok {
		if _, answered := s.responses[q.ID]; !answered {
			return fmt.Errorf("session.Next: question %d: %w", q.ID, ErrUnanswered)
		}
	}
	if s.step < s.lastStep() {
		s.step++
	}
	return nil
}

// Prev moves one step back, stopping at the intro.
func (s *Session) Prev() {
	if s.step > 0 {
		s.step--
	}
}

// Responses returns a copy of the answers recorded so far.
func (s *Session) Responses() scoring.Responses {
	out := make(scoring.Responses, len(s.responses))
	for k, v := range s.responses {
		out[k] = v
	}
	return out
}
