package scoring

import "github.com/dshills/tdahscreen/internal/bank"

// Weight is the resolved value of one answer.
type Weight struct {
	Value  int         `json:"value"`
	Bucket bank.Bucket `json:"bucket"`
}

// GenericScale is the frequency scale shared by every question that does
// not declare its own.
var GenericScale = []bank.ScalePoint{
	{Option: "Raramente", Weight: 0, Bucket: bank.BucketLow},
	{Option: "Às vezes", Weight: 1, Bucket: bank.BucketMedium},
	{Option: "Frequentemente", Weight: 2, Bucket: bank.BucketHigh},
	{Option: "Sempre", Weight: 3, Bucket: bank.BucketHigh},
}

var genericTable = scaleTable(GenericScale)

// Resolver maps answers to weights in two tiers: a question's own scale
// when it has one, otherwise GenericScale. A question's own scale is
// authoritative; the generic scale is never consulted for it.
type Resolver struct {
	overrides map[int]map[string]Weight
	options   map[int]map[string]bool
}

// NewResolver builds a resolver for the given questions.
func NewResolver(questions []bank.Question) *Resolver {
	r := &Resolver{
		overrides: make(map[int]map[string]Weight),
		options:   make(map[int]map[string]bool, len(questions)),
	}
	for _, q := range questions {
		allowed := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			allowed[o] = true
		}
		r.options[q.ID] = allowed
		if len(q.Scale) > 0 {
			r.overrides[q.ID] = scaleTable(q.Scale)
		}
	}
	return r
}

// Resolve returns the weight of option for the given question. Options
// outside the question's declared list never resolve.
func (r *Resolver) Resolve(questionID int, option string) (Weight, error) {
	if !r.options[questionID][option] {
		return Weight{}, &UnresolvedResponseError{QuestionID: questionID, Option: option}
	}
	table, ok := r.overrides[questionID]
	if !ok {
		table = genericTable
	}
	w, ok := table[option]
	if !ok {
		return Weight{}, &UnresolvedResponseError{QuestionID: questionID, Option: option}
	}
	return w, nil
}

// HasOverride reports whether the question carries its own scale.
func (r *Resolver) HasOverride(questionID int) bool {
	_, ok := r.overrides[questionID]
	return ok
}

func scaleTable(points []bank.ScalePoint) map[string]Weight {
	t := make(map[string]Weight, len(points))
	for _, p := range points {
		t[p.Option] = Weight{Value: p.Weight, Bucket: p.Bucket}
	}
	return t
}
