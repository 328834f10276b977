// Package render produces Markdown output from an assessment.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/tdahscreen/internal/content"
	"github.com/dshills/tdahscreen/internal/scoring"
)

// Markdown renders an assessment as a Markdown report.
func Markdown(a *scoring.Assessment) string {
	var b strings.Builder

	b.WriteString("# Resultados da Avaliação\n\n")
	fmt.Fprintf(&b, "**Respostas:** %d de %d\n", a.Answered, a.Total)
	fmt.Fprintf(&b, "**Média geral:** %.1f%% (%s)\n\n", a.Overall, a.OverallSeverity.Label())

	b.WriteString("## Análise por Área\n\n")
	b.WriteString("| Área | Pontuação | Nível |\n")
	b.WriteString("|---|---|---|\n")
	for _, cr := range a.Categories {
		fmt.Fprintf(&b, "| %s | %.1f%% | %s |\n", cr.Label, cr.Score, cr.Severity.Label())
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "> %s\n\n", a.Recommendation)

	for _, cr := range a.Categories {
		fmt.Fprintf(&b, "### %s [%s]\n\n", cr.Label, cr.Severity.Label())
		fmt.Fprintf(&b, "%s\n\n", cr.Description)
	}

	if len(a.Feedback) > 0 {
		b.WriteString("## Respostas\n\n")
		for _, f := range a.Feedback {
			renderFeedback(&b, f)
		}
	}

	if !a.Complete() {
		fmt.Fprintf(&b, "_%d pergunta(s) sem resposta._\n", a.Total-a.Answered)
	}

	return b.String()
}

func renderFeedback(b *strings.Builder, f scoring.QuestionFeedback) {
	fmt.Fprintf(b, "### %d. %s\n\n", f.QuestionID, f.Question)
	fmt.Fprintf(b, "**Resposta:** %s (%d / %s)\n\n", f.Response, f.Weight, f.Bucket)
	fmt.Fprintf(b, "%s\n\n", f.Feedback)
}

// Benefits renders the platform benefit cards shown with the results.
func Benefits(c *content.Content) string {
	if len(c.PlatformBenefits) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Como a Ativa-Mente pode ajudar\n\n")
	for _, bn := range c.PlatformBenefits {
		fmt.Fprintf(&b, "- **%s**: %s\n", bn.Title, bn.Description)
	}
	b.WriteString("\n")
	return b.String()
}

// Testimonials renders the parent testimonials.
func Testimonials(c *content.Content) string {
	if len(c.Testimonials) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Depoimentos de Pais\n\n")
	for _, t := range c.Testimonials {
		fmt.Fprintf(&b, "> \"%s\"\n>\n> **%s** %s\n\n", t.Text, t.Name, t.Stars())
	}
	return b.String()
}

// Footer renders the closing disclaimer line.
func Footer(c *content.Content) string {
	if c.Footer == "" {
		return ""
	}
	return fmt.Sprintf("---\n\n%s\n", c.Footer)
}
