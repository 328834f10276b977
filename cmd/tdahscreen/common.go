package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/tdahscreen/internal/bank"
	"github.com/dshills/tdahscreen/internal/config"
	"github.com/dshills/tdahscreen/internal/content"
	"github.com/dshills/tdahscreen/internal/scoring"
)

// globalFlags holds the persistent flags after they have been merged with
// the environment. Flags set on the command line win.
type globalFlags struct {
	bankPath    string
	contentPath string
	envFile     string
	verbose     bool
	cfg         *config.Config
}

func (g *globalFlags) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(g.envFile)
	if err != nil {
		return exitError(3, "failed to load configuration: %v", err)
	}
	flags := cmd.Flags()
	if !flags.Changed("bank") {
		g.bankPath = cfg.BankPath
	}
	if !flags.Changed("content") {
		g.contentPath = cfg.ContentPath
	}
	if !flags.Changed("verbose") {
		g.verbose = cfg.Verbose
	}
	g.cfg = cfg
	return nil
}

func (g *globalFlags) config() *config.Config {
	if g.cfg == nil {
		g.cfg = &config.Config{
			Addr:            config.DefaultAddr,
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: config.DefaultShutdownTimeout,
		}
	}
	return g.cfg
}

func (g *globalFlags) logf() func(msg string, args ...any) {
	logger := log.New(os.Stderr, "", 0)
	return func(msg string, args ...any) {
		if g.verbose {
			logger.Printf(msg, args...)
		}
	}
}

func loadBank(path string) (*bank.Bank, error) {
	if path == "" {
		return bank.LoadBuiltin()
	}
	return bank.Load(path)
}

// loadEngine builds the scoring engine for the configured bank.
func (g *globalFlags) loadEngine() (*scoring.Engine, error) {
	verbose := g.logf()
	if g.bankPath == "" {
		verbose("Loading built-in question bank")
	} else {
		verbose("Loading question bank: %s", g.bankPath)
	}

	b, err := loadBank(g.bankPath)
	if err != nil {
		return nil, exitError(3, "failed to load question bank: %v", err)
	}
	e, err := scoring.NewEngine(b)
	if err != nil {
		return nil, exitError(3, "invalid question bank: %v", err)
	}
	verbose("Loaded %d questions (%s)", b.Len(), b.Hash)
	return e, nil
}

func (g *globalFlags) loadContent() (*content.Content, error) {
	verbose := g.logf()
	var (
		c   *content.Content
		err error
	)
	if g.contentPath == "" {
		verbose("Loading built-in content")
		c, err = content.LoadBuiltin()
	} else {
		verbose("Loading content: %s", g.contentPath)
		c, err = content.Load(g.contentPath)
	}
	if err != nil {
		return nil, exitError(3, "failed to load content: %v", err)
	}
	return c, nil
}

// printProblems lists every validation problem carried by a DataError.
func printProblems(err error) {
	var de *bank.DataError
	if !errors.As(err, &de) {
		return
	}
	for _, p := range de.Problems {
		fmt.Fprintf(os.Stderr, "  %s\n", p)
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
