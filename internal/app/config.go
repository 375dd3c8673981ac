package app

import (
	"errors"
	"strings"
)

// Config holds runtime configuration for the application.
type Config struct {
	// Inputs
	InputDir string   // directory scanned for .txt/.html/.pdf documents
	Inputs   []string // explicit file paths or http(s) URLs, in addition to InputDir

	// Outputs
	OutputJSON string // question bank path
	OutputPDF  string // optional printable quiz; empty disables
	QuizTitle  string
	QuizSize   int // questions rendered per quiz sheet

	// Extraction
	DedupPolicy string // last-wins | first-wins | reject
	Concurrency int
	MinTotal    int // fail the run when fewer questions survive

	// LLM (optional; enables answer explanations)
	Explain    bool
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Behavior
	CacheDir  string
	ScorePath string // quiz score history file
	Seed      int64  // 0 means time-seeded sampling
	DryRun    bool
	Verbose   bool
	UserAgent string
}

// ValidateConfig performs minimal schema validation for required settings.
// For dry-run, output settings may be omitted.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputDir) == "" && len(cfg.Inputs) == 0 {
		return errors.New("config: at least one input (dir or file) is required")
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.OutputJSON) == "" {
		return errors.New("config: output path is required")
	}
	if cfg.Explain && strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required when explanations are enabled (or set LLM_MODEL)")
	}
	if cfg.Concurrency < 0 || cfg.QuizSize < 0 || cfg.MinTotal < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	if _, err := parsePolicy(cfg.DedupPolicy); err != nil {
		return err
	}
	return nil
}
