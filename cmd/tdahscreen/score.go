package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/tdahscreen/internal/render"
	"github.com/dshills/tdahscreen/internal/scoring"
)

type scoreFlags struct {
	format string
	out    string
	failOn string
}

func newScoreCmd(g *globalFlags) *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score <responses-file>",
		Short: "Score a file of answers and produce an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(g, args[0], f, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit 2 if any category reaches this level: moderate, high or very_high")

	return cmd
}

func runScore(g *globalFlags, responsesPath string, f *scoreFlags, w io.Writer) error {
	verbose := g.logf()

	var threshold scoring.Severity
	if f.failOn != "" {
		threshold = scoring.Severity(strings.ToLower(f.failOn))
		if !threshold.Valid() || threshold == scoring.SeverityLow {
			return exitError(3, "unknown --fail-on level: %s", f.failOn)
		}
	}
	if f.format != "json" && f.format != "md" {
		return exitError(3, "unknown format: %s", f.format)
	}

	e, err := g.loadEngine()
	if err != nil {
		return err
	}

	verbose("Loading responses: %s", responsesPath)
	data, err := os.ReadFile(responsesPath)
	if err != nil {
		return exitError(3, "failed to load responses: %v", err)
	}
	resp, err := scoring.ParseResponses(data)
	if err != nil {
		return exitError(3, "failed to parse responses: %v", err)
	}
	verbose("Parsed %d responses", len(resp))

	a, err := e.Assess(resp)
	if err != nil {
		var unresolved *scoring.UnresolvedResponseError
		if errors.As(err, &unresolved) {
			return exitError(4, "unresolved response: %v", err)
		}
		return exitError(3, "scoring failed: %v", err)
	}
	verbose("Overall %.1f%% (%s), highlight %s", a.Overall, a.OverallSeverity, a.Highlight)

	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(a)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(w, output)
	}

	if threshold != "" {
		if cr, ok := firstAtLeast(a, threshold); ok {
			return exitError(2, "%s severity %s meets fail threshold %s", cr.Category, cr.Severity, threshold)
		}
	}
	return nil
}

// firstAtLeast returns the first category, in canonical order, whose
// severity is at or above threshold.
func firstAtLeast(a *scoring.Assessment, threshold scoring.Severity) (scoring.CategoryResult, bool) {
	for _, cr := range a.Categories {
		if cr.Severity.AtLeast(threshold) {
			return cr, true
		}
	}
	return scoring.CategoryResult{}, false
}
