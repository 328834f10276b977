package scoring

import "github.com/dshills/tdahscreen/internal/bank"

// Assessment is the full result view derived from one Response Set.
type Assessment struct {
	Categories      []CategoryResult   `json:"categories"`
	Overall         float64            `json:"overall"`
	OverallSeverity Severity           `json:"overall_severity"`
	Highlight       bank.Category      `json:"highlight"`
	Recommendation  string             `json:"recommendation"`
	Feedback        []QuestionFeedback `json:"feedback"`
	Answered        int                `json:"answered"`
	Total           int                `json:"total"`
	Chart           ChartSeries        `json:"chart"`
}

// CategoryResult is the score and classification of one category.
type CategoryResult struct {
	Category    bank.Category `json:"category"`
	Label       string        `json:"label"`
	Score       float64       `json:"score"`
	Severity    Severity      `json:"severity"`
	Answered    int           `json:"answered"`
	Questions   int           `json:"questions"`
	Description string        `json:"description"`
}

// QuestionFeedback is the feedback shown for one answered question.
type QuestionFeedback struct {
	QuestionID int           `json:"question_id"`
	Question   string        `json:"question"`
	Category   bank.Category `json:"category"`
	Response   string        `json:"response"`
	Weight     int           `json:"weight"`
	Bucket     bank.Bucket   `json:"bucket"`
	Feedback   string        `json:"feedback"`
}

// ChartSeries is the numeric series a radar or bar chart consumes, in
// canonical category order.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Complete reports whether every question was answered.
func (a *Assessment) Complete() bool {
	return a.Answered == a.Total
}

// Scores returns the category scores as a map.
func (a *Assessment) Scores() Scores {
	s := make(Scores, len(a.Categories))
	for _, cr := range a.Categories {
		s[cr.Category] = cr.Score
	}
	return s
}

// Assess derives scores, severities, descriptions, per-question feedback and
// the overall recommendation for resp.
func (e *Engine) Assess(resp Responses) (*Assessment, error) {
	scores, err := e.CategoryScores(resp)
	if err != nil {
		return nil, err
	}

	a := &Assessment{
		Total:          e.bank.Len(),
		Overall:        Mean(scores),
		Highlight:      HighestCategory(scores),
		Recommendation: e.Recommendation(scores),
	}
	a.OverallSeverity = Classify(a.Overall)

	answered := make(map[bank.Category]int)
	for _, q := range e.bank.Questions() {
		option, ok := resp[q.ID]
		if !ok {
			continue
		}
		w, err := e.resolver.Resolve(q.ID, option)
		if err != nil {
			return nil, err
		}
		text, err := e.Feedback(q, option)
		if err != nil {
			return nil, err
		}
		answered[q.Category]++
		a.Answered++
		a.Feedback = append(a.Feedback, QuestionFeedback{
			QuestionID: q.ID,
			Question:   q.Text,
			Category:   q.Category,
			Response:   option,
			Weight:     w.Value,
			Bucket:     w.Bucket,
			Feedback:   text,
		})
	}

	for _, c := range bank.Categories() {
		sev := Classify(scores[c])
		desc, err := e.Description(c, sev)
		if err != nil {
			return nil, err
		}
		a.Categories = append(a.Categories, CategoryResult{
			Category:    c,
			Label:       c.Label(),
			Score:       scores[c],
			Severity:    sev,
			Answered:    answered[c],
			Questions:   e.bank.CountByCategory(c),
			Description: desc,
		})
		a.Chart.Labels = append(a.Chart.Labels, c.Label())
		a.Chart.Values = append(a.Chart.Values, scores[c])
	}
	return a, nil
}
