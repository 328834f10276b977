package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/tdahscreen/internal/bank"
)

func newQuestionsCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions of the configured bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestions(g, format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func runQuestions(g *globalFlags, format string, w io.Writer) error {
	e, err := g.loadEngine()
	if err != nil {
		return err
	}
	questions := e.Bank().Questions()

	switch format {
	case "json":
		data, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal questions: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "text":
		writeQuestionList(w, questions)
	default:
		return exitError(3, "unknown format: %s", format)
	}
	return nil
}

func writeQuestionList(w io.Writer, questions []bank.Question) {
	for _, q := range questions {
		fmt.Fprintf(w, "%d. [%s] %s\n", q.ID, q.Category.Label(), q.Text)
		fmt.Fprintf(w, "   %s\n", strings.Join(q.Options, " | "))
	}
}
