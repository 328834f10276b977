package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dshills/tdahscreen/internal/bank"
	"github.com/dshills/tdahscreen/internal/config"
	"github.com/dshills/tdahscreen/internal/content"
	"github.com/dshills/tdahscreen/internal/scoring"
)

const smallBank = `questions:
  - id: 10
    text: "Perde objetos com frequência?"
    options: [Raramente, Às vezes, Frequentemente, Sempre]
    category: concentracao
    feedback:
      low: "fb-low"
      medium: "fb-medium"
      high: "fb-high"
  - id: 20
    text: "Interrompe conversas?"
    options: [Raramente, Às vezes, Frequentemente, Sempre]
    category: impulsividade
    feedback:
      low: "fb2-low"
      medium: "fb2-medium"
      high: "fb2-high"
`

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertExitCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	if wantCode == 0 {
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected exit code %d, got nil error", wantCode)
	}
	var ee *exitErr
	if !errors.As(err, &ee) {
		t.Fatalf("expected *exitErr, got %T: %v", err, err)
	}
	if ee.code != wantCode {
		t.Errorf("exit code = %d, want %d (msg: %s)", ee.code, wantCode, ee.msg)
	}
}

func TestRunScoreJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "resp.json", `{"1": "Sempre", "2": "Sempre", "3": "Raramente"}`)

	var out bytes.Buffer
	err := runScore(&globalFlags{}, path, &scoreFlags{format: "json"}, &out)
	assertExitCode(t, err, 0)

	var a scoring.Assessment
	if err := json.Unmarshal(out.Bytes(), &a); err != nil {
		t.Fatalf("output is not an assessment: %v\n%s", err, out.String())
	}
	if a.Answered != 3 || a.Categories[0].Score != 50 {
		t.Errorf("unexpected assessment: answered=%d concentration=%v", a.Answered, a.Categories[0].Score)
	}
}

func TestRunScoreMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "resp.yaml", "1: Sempre\n5: Frequentemente\n")

	var out bytes.Buffer
	err := runScore(&globalFlags{}, path, &scoreFlags{format: "md"}, &out)
	assertExitCode(t, err, 0)
	if !strings.Contains(out.String(), "# Resultados da Avaliação") {
		t.Errorf("expected markdown report, got:\n%s", out.String())
	}
}

func TestRunScoreOutFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "resp.json", `{"1": "Sempre"}`)
	outPath := filepath.Join(dir, "report.md")

	var out bytes.Buffer
	err := runScore(&globalFlags{}, path, &scoreFlags{format: "md", out: outPath}, &out)
	assertExitCode(t, err, 0)
	if out.Len() != 0 {
		t.Error("nothing should be written to stdout when --out is set")
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Análise por Área") {
		t.Error("output file is missing the report")
	}
}

func TestRunScoreExitCodes(t *testing.T) {
	dir := t.TempDir()
	high := writeTempFile(t, dir, "high.json", `{"1": "Sempre", "2": "Sempre", "3": "Sempre"}`)
	unresolved := writeTempFile(t, dir, "unresolved.json", `{"4": "Sempre"}`)
	malformed := writeTempFile(t, dir, "malformed.json", `{"1": [`)
	badKey := writeTempFile(t, dir, "badkey.json", `{"um": "Sempre"}`)

	tests := []struct {
		name  string
		path  string
		flags scoreFlags
		g     globalFlags
		want  int
	}{
		{"fail-on met", high, scoreFlags{format: "json", failOn: "high"}, globalFlags{}, 2},
		{"fail-on moderate met", high, scoreFlags{format: "json", failOn: "moderate"}, globalFlags{}, 2},
		{"fail-on not met", high, scoreFlags{format: "json", failOn: "very_high"}, globalFlags{}, 0},
		{"fail-on unknown", high, scoreFlags{format: "json", failOn: "bogus"}, globalFlags{}, 3},
		{"fail-on low rejected", high, scoreFlags{format: "json", failOn: "low"}, globalFlags{}, 3},
		{"unknown format", high, scoreFlags{format: "html"}, globalFlags{}, 3},
		{"missing file", filepath.Join(dir, "absent.json"), scoreFlags{format: "json"}, globalFlags{}, 3},
		{"malformed", malformed, scoreFlags{format: "json"}, globalFlags{}, 3},
		{"bad key", badKey, scoreFlags{format: "json"}, globalFlags{}, 3},
		{"unresolved", unresolved, scoreFlags{format: "json"}, globalFlags{}, 4},
		{"missing bank", high, scoreFlags{format: "json"}, globalFlags{bankPath: filepath.Join(dir, "absent.yaml")}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runScore(&tt.g, tt.path, &tt.flags, &out)
			assertExitCode(t, err, tt.want)
		})
	}
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeTempFile(t, dir, "good.yaml", smallBank)
	bad := writeTempFile(t, dir, "bad.yaml", `questions:
  - id: 1
    text: "x"
    options: [Sim]
    category: memoria
`)

	var out bytes.Buffer
	assertExitCode(t, runValidate(&globalFlags{}, good, &out), 0)
	if !strings.HasPrefix(out.String(), "OK: 2 questions") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if !strings.Contains(out.String(), "hiperatividade 0") {
		t.Errorf("expected per-category counts, got %q", out.String())
	}

	out.Reset()
	assertExitCode(t, runValidate(&globalFlags{}, bad, &out), 3)
	assertExitCode(t, runValidate(&globalFlags{}, filepath.Join(dir, "absent.yaml"), &out), 3)
}

func TestRunQuestions(t *testing.T) {
	var out bytes.Buffer
	assertExitCode(t, runQuestions(&globalFlags{}, "text", &out), 0)
	if !strings.HasPrefix(out.String(), "1. [Concentração]") {
		t.Errorf("unexpected text listing:\n%s", out.String())
	}

	out.Reset()
	assertExitCode(t, runQuestions(&globalFlags{}, "json", &out), 0)
	var qs []bank.Question
	if err := json.Unmarshal(out.Bytes(), &qs); err != nil {
		t.Fatal(err)
	}
	if len(qs) != 12 {
		t.Errorf("expected 12 questions, got %d", len(qs))
	}

	assertExitCode(t, runQuestions(&globalFlags{}, "xml", &out), 3)
}

func TestRunInteractive(t *testing.T) {
	b, err := bank.Parse([]byte(smallBank), "test")
	if err != nil {
		t.Fatal(err)
	}
	e, err := scoring.NewEngine(b)
	if err != nil {
		t.Fatal(err)
	}
	c, err := content.LoadBuiltin()
	if err != nil {
		t.Fatal(err)
	}

	// intro, blocked advance, invalid option, answer, back, advance, answer, results.
	in := strings.NewReader("\n\n9\n4\nv\n\n1\n\n")
	var out bytes.Buffer
	if err := runInteractive(e, c, in, &out); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	checks := []string{
		c.Intro.Title,
		"Pergunta 1 de 2",
		"Selecione uma opção para continuar.",
		`Opção inválida: "9"`,
		"fb-high",
		" * 4) Sempre",
		"Pergunta 2 de 2",
		"fb2-low",
		"| Concentração | 100.0% | Muito Alto |",
		"Como a Ativa-Mente pode ajudar",
		"Depoimentos de Pais",
		c.Footer,
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunInteractiveQuit(t *testing.T) {
	e, err := (&globalFlags{}).loadEngine()
	if err != nil {
		t.Fatal(err)
	}
	c, err := content.LoadBuiltin()
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runInteractive(e, c, strings.NewReader("\ns\n"), &out); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Resultados") {
		t.Error("quitting should not show results")
	}
}

func TestGlobalFlagsResolve(t *testing.T) {
	for _, k := range []string{config.EnvBank, config.EnvContent, config.EnvVerbose} {
		t.Setenv(k, "")
	}
	t.Setenv(config.EnvBank, "/env/bank.yaml")
	t.Setenv(config.EnvContent, "/env/content.yaml")
	t.Setenv(config.EnvVerbose, "true")

	g := &globalFlags{envFile: filepath.Join(t.TempDir(), "absent.env")}
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&g.bankPath, "bank", "", "")
	cmd.Flags().StringVar(&g.contentPath, "content", "", "")
	cmd.Flags().BoolVar(&g.verbose, "verbose", false, "")
	if err := cmd.Flags().Parse([]string{"--bank", "/flag/bank.yaml"}); err != nil {
		t.Fatal(err)
	}

	if err := g.resolve(cmd); err != nil {
		t.Fatal(err)
	}
	if g.bankPath != "/flag/bank.yaml" {
		t.Errorf("flag should win over env, got %q", g.bankPath)
	}
	if g.contentPath != "/env/content.yaml" {
		t.Errorf("env should fill unset flag, got %q", g.contentPath)
	}
	if !g.verbose {
		t.Error("expected verbose from env")
	}
	if g.config().Addr != config.DefaultAddr {
		t.Errorf("Addr = %q", g.config().Addr)
	}
}
