package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "tdahscreen",
		Short:         "Score parent-reported attention and behavior screening questionnaires",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.resolve(cmd)
		},
	}

	pflags := root.PersistentFlags()
	pflags.StringVar(&g.bankPath, "bank", "", "Question bank file (default: built-in bank)")
	pflags.StringVar(&g.contentPath, "content", "", "Content file (default: built-in content)")
	pflags.StringVar(&g.envFile, "env-file", ".env", "Environment file loaded before reading TDAHSCREEN_* variables")
	pflags.BoolVar(&g.verbose, "verbose", false, "Print processing steps to stderr")

	root.AddCommand(
		newQuestionsCmd(g),
		newValidateCmd(g),
		newScoreCmd(g),
		newRunCmd(g),
		newServeCmd(g),
		newMCPCmd(g),
	)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
