package internal

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/dshills/tdahscreen/internal/bank"
	"github.com/dshills/tdahscreen/internal/render"
	"github.com/dshills/tdahscreen/internal/scoring"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

// golden is the expected summary of an assessment.
type golden struct {
	Answered               int                                `json:"answered"`
	Scores                 map[bank.Category]float64          `json:"scores"`
	Severities             map[bank.Category]scoring.Severity `json:"severities"`
	Overall                float64                            `json:"overall"`
	OverallSeverity        scoring.Severity                   `json:"overall_severity"`
	Highlight              bank.Category                      `json:"highlight"`
	RecommendationContains string                             `json:"recommendation_contains"`
}

func loadGolden(t *testing.T, name string) golden {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(projectRoot(), "testdata", "golden", name+".json"))
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	var g golden
	if err := json.Unmarshal(data, &g); err != nil {
		t.Fatalf("failed to parse golden JSON: %v", err)
	}
	return g
}

func loadResponses(t *testing.T, file string) scoring.Responses {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(projectRoot(), "testdata", "responses", file))
	if err != nil {
		t.Fatalf("failed to read responses: %v", err)
	}
	resp, err := scoring.ParseResponses(data)
	if err != nil {
		t.Fatalf("failed to parse responses: %v", err)
	}
	return resp
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestGoldenBuiltinBank(t *testing.T) {
	b, err := bank.LoadBuiltin()
	if err != nil {
		t.Fatal(err)
	}
	e, err := scoring.NewEngine(b)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name      string
		responses string
	}{
		{"all-max", "all-max.json"},
		{"mixed", "mixed.yaml"},
		{"empty", "empty.json"},
		{"tie", "tie.json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := loadGolden(t, tc.name)
			a, err := e.Assess(loadResponses(t, tc.responses))
			if err != nil {
				t.Fatalf("Assess: %v", err)
			}

			if a.Answered != want.Answered {
				t.Errorf("answered = %d, want %d", a.Answered, want.Answered)
			}
			for _, cr := range a.Categories {
				if !closeTo(cr.Score, want.Scores[cr.Category]) {
					t.Errorf("%s score = %.3f, want %.3f", cr.Category, cr.Score, want.Scores[cr.Category])
				}
				if cr.Severity != want.Severities[cr.Category] {
					t.Errorf("%s severity = %s, want %s", cr.Category, cr.Severity, want.Severities[cr.Category])
				}
				if cr.Description == "" {
					t.Errorf("%s has no description", cr.Category)
				}
			}
			if !closeTo(a.Overall, want.Overall) {
				t.Errorf("overall = %.3f, want %.3f", a.Overall, want.Overall)
			}
			if a.OverallSeverity != want.OverallSeverity {
				t.Errorf("overall severity = %s, want %s", a.OverallSeverity, want.OverallSeverity)
			}
			if a.Highlight != want.Highlight {
				t.Errorf("highlight = %s, want %s", a.Highlight, want.Highlight)
			}
			if !strings.Contains(a.Recommendation, want.RecommendationContains) {
				t.Errorf("recommendation %q does not contain %q", a.Recommendation, want.RecommendationContains)
			}

			// Scoring is a pure function of the responses.
			again, err := e.Assess(loadResponses(t, tc.responses))
			if err != nil {
				t.Fatal(err)
			}
			if render.Markdown(again) != render.Markdown(a) {
				t.Error("repeated assessment rendered differently")
			}
		})
	}
}

func TestGoldenConcentrationOnlyBank(t *testing.T) {
	b, err := bank.Load(filepath.Join(projectRoot(), "testdata", "banks", "concentration-only.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	e, err := scoring.NewEngine(b)
	if err != nil {
		t.Fatal(err)
	}

	scores, err := e.CategoryScores(loadResponses(t, "concentration-only.json"))
	if err != nil {
		t.Fatal(err)
	}
	got := scores[bank.CategoryConcentration]
	if !closeTo(got, 66.667) {
		t.Errorf("concentracao = %.3f, want 66.667", got)
	}
	if sev := scoring.Classify(got); sev != scoring.SeverityModerate {
		t.Errorf("severity = %s, want moderate", sev)
	}
	if scores[bank.CategoryImpulsivity] != 0 || scores[bank.CategoryHyperactivity] != 0 {
		t.Errorf("categories without questions should score 0: %v", scores)
	}
}
