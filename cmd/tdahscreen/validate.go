package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/tdahscreen/internal/bank"
	"github.com/dshills/tdahscreen/internal/scoring"
)

func newValidateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <bank-file>",
		Short: "Check a question bank for schema and consistency errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(g, args[0], cmd.OutOrStdout())
		},
	}
}

func runValidate(g *globalFlags, path string, w io.Writer) error {
	verbose := g.logf()
	verbose("Validating question bank: %s", path)

	b, err := bank.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Question bank validation errors:")
		printProblems(err)
		return exitError(3, "%v", err)
	}
	if _, err := scoring.NewEngine(b); err != nil {
		fmt.Fprintln(os.Stderr, "Question bank validation errors:")
		printProblems(err)
		return exitError(3, "%v", err)
	}

	fmt.Fprintf(w, "OK: %d questions", b.Len())
	for _, c := range bank.Categories() {
		fmt.Fprintf(w, ", %s %d", c, b.CountByCategory(c))
	}
	fmt.Fprintf(w, " (%s)\n", b.Hash)
	return nil
}
