package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/tdahscreen/internal/content"
	"github.com/dshills/tdahscreen/internal/render"
	"github.com/dshills/tdahscreen/internal/scoring"
	"github.com/dshills/tdahscreen/internal/session"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Answer the questionnaire interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.loadEngine()
			if err != nil {
				return err
			}
			c, err := g.loadContent()
			if err != nil {
				return err
			}
			return runInteractive(e, c, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// Input commands accepted at every prompt.
const (
	cmdBack = "v"
	cmdQuit = "s"
)

// runInteractive walks one session from the intro to the testimonials.
// Question steps take an option number; "v" goes back and "s" quits.
func runInteractive(e *scoring.Engine, c *content.Content, in io.Reader, out io.Writer) error {
	s := session.New(e.Bank())
	scanner := bufio.NewScanner(in)

	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		fmt.Fprintf(out, "\n[%3.0f%%]\n", s.Progress()*100)

		switch s.Phase() {
		case session.PhaseIntro:
			fmt.Fprintf(out, "# %s\n\n%s\n\n", c.Intro.Title, c.Intro.Description)
			fmt.Fprint(out, "Pressione Enter para começar a avaliação. ")

		case session.PhaseQuestion:
			q, _ := s.Current()
			fmt.Fprintf(out, "Pergunta %d de %d\n\n%s\n", s.Step(), e.Bank().Len(), q.Text)
			current, answered := s.Response(q.ID)
			for i, o := range q.Options {
				mark := " "
				if answered && o == current {
					mark = "*"
				}
				fmt.Fprintf(out, " %s %d) %s\n", mark, i+1, o)
			}
			fmt.Fprint(out, "Escolha uma opção (v = voltar, s = sair): ")

		case session.PhaseResults:
			a, err := e.Assess(s.Responses())
			if err != nil {
				return fmt.Errorf("scoring answers: %w", err)
			}
			fmt.Fprint(out, render.Markdown(a))
			fmt.Fprint(out, render.Benefits(c))
			fmt.Fprint(out, "Pressione Enter para ver os depoimentos (v = voltar, s = sair). ")

		case session.PhaseTestimonials:
			fmt.Fprint(out, render.Testimonials(c))
			fmt.Fprint(out, render.Footer(c))
			return nil
		}

		line, ok := readLine()
		if !ok {
			return scanner.Err()
		}
		switch line {
		case cmdQuit:
			return nil
		case cmdBack:
			s.Prev()
			continue
		}

		if q, isQuestion := s.Current(); isQuestion {
			if line == "" {
				if !s.CanAdvance() {
					fmt.Fprintln(out, "Selecione uma opção para continuar.")
					continue
				}
			} else {
				n, err := strconv.Atoi(line)
				if err != nil || n < 1 || n > len(q.Options) {
					fmt.Fprintf(out, "Opção inválida: %q\n", line)
					continue
				}
				option := q.Options[n-1]
				if err := s.Answer(q.ID, option); err != nil {
					return err
				}
				fb, err := e.Feedback(q, option)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s\n", fb)
			}
		}
		if err := s.Next(); err != nil {
			return err
		}
	}
}
