package app

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	}

	if cfg.InputDir == "" {
		cfg.InputDir = os.Getenv("QUIZEXTRACT_INPUT_DIR")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CACHE_DIR")
	}
	if cfg.ScorePath == "" {
		cfg.ScorePath = os.Getenv("QUIZEXTRACT_SCORES")
	}
	if cfg.DedupPolicy == "" {
		cfg.DedupPolicy = os.Getenv("QUIZEXTRACT_DEDUP")
	}

	if cfg.Concurrency == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("QUIZEXTRACT_CONCURRENCY"))); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}
	if cfg.MinTotal == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("QUIZEXTRACT_MIN_TOTAL"))); err == nil && n > 0 {
			cfg.MinTotal = n
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.DryRun, "DRY_RUN")
	setBool(&cfg.Verbose, "VERBOSE")
	setBool(&cfg.Explain, "QUIZEXTRACT_EXPLAIN")
}
