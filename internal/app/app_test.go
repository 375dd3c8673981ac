package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/quizextract/internal/export"
	"github.com/hyperifyio/quizextract/internal/question"
)

func writeQuestionDoc(t *testing.T, dir, name string, count int) {
	t.Helper()
	var b strings.Builder
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "%d) Which option is marked correct in item %d? A) first B) second C) third D) fourth Answer: B\n", i, i)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeQuestionDoc(t, dir, "set-a.txt", 6)
	writeQuestionDoc(t, dir, "set-b.txt", 5)
	outDir := t.TempDir()
	cfg := Config{
		InputDir:   dir,
		OutputJSON: filepath.Join(outDir, "bank.json"),
		OutputPDF:  filepath.Join(outDir, "quiz.pdf"),
		QuizTitle:  "Practice",
		QuizSize:   4,
		Seed:       7,
		MinTotal:   1,
	}
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	pool, err := export.ReadPoolJSON(cfg.OutputJSON, question.LastWins)
	if err != nil {
		t.Fatalf("read bank: %v", err)
	}
	if pool.Len() != 11 {
		t.Fatalf("bank has %d questions, want 11", pool.Len())
	}
	pdf, err := os.ReadFile(cfg.OutputPDF)
	if err != nil {
		t.Fatalf("read quiz pdf: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF-") {
		t.Fatal("quiz output is not a PDF")
	}
}

func TestRun_ShortfallStillWritesBank(t *testing.T) {
	dir := t.TempDir()
	writeQuestionDoc(t, dir, "tiny.txt", 5)
	out := filepath.Join(t.TempDir(), "bank.json")
	cfg := Config{InputDir: dir, OutputJSON: out, MinTotal: 50}
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if runErr := a.Run(context.Background()); runErr == nil {
		t.Fatal("expected shortfall error")
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("bank not written despite shortfall: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{InputDir: "docs", OutputJSON: "bank.json"}, false},
		{"no input", Config{OutputJSON: "bank.json"}, true},
		{"no output", Config{InputDir: "docs"}, true},
		{"dry run no output", Config{InputDir: "docs", DryRun: true}, false},
		{"explain without model", Config{InputDir: "docs", OutputJSON: "x", Explain: true}, true},
		{"bad policy", Config{InputDir: "docs", OutputJSON: "x", DedupPolicy: "best-wins"}, true},
		{"negative", Config{InputDir: "docs", OutputJSON: "x", Concurrency: -1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateConfig(tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{InputDir: "from-flag", QuizSize: 10}
	var fc FileConfig
	fc.InputDir = "from-file"
	fc.Output.JSON = "file-bank.json"
	fc.Quiz.Size = 3
	fc.Extract.Dedup = "reject"
	ApplyFileConfig(&cfg, fc)
	if cfg.InputDir != "from-flag" {
		t.Fatalf("flag value overridden: %q", cfg.InputDir)
	}
	if cfg.QuizSize != 10 {
		t.Fatalf("flag quiz size overridden: %d", cfg.QuizSize)
	}
	if cfg.OutputJSON != "file-bank.json" || cfg.DedupPolicy != "reject" {
		t.Fatalf("file defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "inputDir: exams\noutput:\n  json: bank.json\n  pdf: quiz.pdf\nextract:\n  dedup: first-wins\n  concurrency: 2\nllm:\n  enable: true\n  model: test-model\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.InputDir != "exams" || fc.Output.PDF != "quiz.pdf" || fc.Extract.Concurrency != 2 {
		t.Fatalf("unexpected config: %+v", fc)
	}
	if !fc.LLM.Enable || fc.LLM.Model != "test-model" {
		t.Fatalf("llm section not parsed: %+v", fc.LLM)
	}
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("QUIZEXTRACT_CONCURRENCY", "3")
	t.Setenv("QUIZEXTRACT_EXPLAIN", "yes")
	cfg := Config{LLMModel: "flag-model"}
	ApplyEnvToConfig(&cfg)
	if cfg.LLMModel != "flag-model" {
		t.Fatalf("env overrode explicit model: %q", cfg.LLMModel)
	}
	if cfg.Concurrency != 3 || !cfg.Explain {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestExplanationsSidecarPath(t *testing.T) {
	if got := explanationsSidecarPath("out/bank.json"); got != "out/bank.explanations.md" {
		t.Fatalf("sidecar path = %q", got)
	}
}
