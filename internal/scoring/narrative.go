package scoring

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/dshills/tdahscreen/internal/bank"
	"gopkg.in/yaml.v3"
)

//go:embed descriptions.yaml
var builtinDescriptions []byte

// Descriptions holds the clinical-style text for each category and severity.
type Descriptions map[bank.Category]map[Severity]string

// LoadDescriptions parses the bundled description table.
func LoadDescriptions() (Descriptions, error) {
	return ParseDescriptions(builtinDescriptions)
}

// ParseDescriptions decodes a description table from YAML.
func ParseDescriptions(data []byte) (Descriptions, error) {
	var d Descriptions
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("scoring.ParseDescriptions: %w", err)
	}
	for c, levels := range d {
		if !c.Valid() {
			return nil, fmt.Errorf("scoring.ParseDescriptions: unknown category %q", c)
		}
		for s := range levels {
			if !s.Valid() {
				return nil, fmt.Errorf("scoring.ParseDescriptions: unknown severity %q for %q", s, c)
			}
		}
	}
	return d, nil
}

// Description returns the multi-line description for a category at a
// severity level.
func (e *Engine) Description(c bank.Category, s Severity) (string, error) {
	text, ok := e.descriptions[c][s]
	if !ok || text == "" {
		return "", &MissingDescriptionError{Category: c, Severity: s}
	}
	return strings.TrimSpace(text), nil
}

// Feedback returns the feedback text matching the bucket of the chosen option.
func (e *Engine) Feedback(q bank.Question, option string) (string, error) {
	w, err := e.resolver.Resolve(q.ID, option)
	if err != nil {
		return "", err
	}
	text, ok := q.Feedback[w.Bucket]
	if !ok {
		return "", &MissingFeedbackError{QuestionID: q.ID, Bucket: w.Bucket}
	}
	return text, nil
}

const (
	recommendStrong = "Com base nas suas respostas, recomendamos fortemente uma avaliação profissional para TDAH. " +
		"A área que mais chamou atenção foi %s. " +
		"A Ativa-Mente pode ser uma ferramenta valiosa no suporte ao desenvolvimento do seu filho."
	recommendModerate = "Alguns comportamentos indicam que seu filho poderia se beneficiar do suporte adicional oferecido pela Ativa-Mente, " +
		"principalmente na área de %s. Considere uma avaliação profissional."
	recommendTypical = "Seu filho parece apresentar comportamentos típicos para a idade. " +
		"A Ativa-Mente ainda pode ajudar no desenvolvimento de habilidades importantes, como %s."
)

// Recommendation builds the overall narrative from the mean of all category
// scores, naming the highest-scoring category.
func (e *Engine) Recommendation(scores Scores) string {
	return Recommend(scores)
}

// Recommend is Recommendation without an engine. Categories missing from
// scores count as zero.
func Recommend(scores Scores) string {
	label := strings.ToLower(HighestCategory(scores).Label())
	switch Classify(Mean(scores)) {
	case SeverityVeryHigh, SeverityHigh:
		return fmt.Sprintf(recommendStrong, label)
	case SeverityModerate:
		return fmt.Sprintf(recommendModerate, label)
	default:
		return fmt.Sprintf(recommendTypical, label)
	}
}

// Mean averages the scores of every known category.
func Mean(scores Scores) float64 {
	cats := bank.Categories()
	var total float64
	for _, c := range cats {
		total += scores[c]
	}
	return total / float64(len(cats))
}

// HighestCategory returns the category with the highest score. Ties go to
// the category that comes first in canonical order.
func HighestCategory(scores Scores) bank.Category {
	cats := bank.Categories()
	best := cats[0]
	for _, c := range cats[1:] {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best
}
