package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/quizextract/internal/app"
	"github.com/hyperifyio/quizextract/internal/pipeline"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath  string
		inputDir    string
		inputs      string
		outputJSON  string
		outputPDF   string
		quizTitle   string
		quizSize    int
		quizSeed    int64
		scorePath   string
		dedup       string
		concurrency int
		minTotal    int
		explain     bool
		llmBaseURL  string
		llmModel    string
		llmKey      string
		cacheDir    string
		userAgent   string
		dryRun      bool
		verbose     bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("QUIZEXTRACT_CONFIG"), "Path to YAML/JSON config file")
	flag.StringVar(&inputDir, "input.dir", "", "Directory of source documents (.txt, .html, .pdf)")
	flag.StringVar(&inputs, "input", "", "Comma-separated document paths or http(s) URLs")
	flag.StringVar(&outputJSON, "output.json", "questions.json", "Path to write the question bank")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path for a printable quiz sheet")
	flag.StringVar(&quizTitle, "quiz.title", "Practice Quiz", "Title printed on the quiz sheet")
	flag.IntVar(&quizSize, "quiz.size", 0, "Questions per quiz sheet (0 = all)")
	flag.Int64Var(&quizSeed, "quiz.seed", 0, "Sampling seed for reproducible sheets (0 = time-based)")
	flag.StringVar(&scorePath, "quiz.scores", "", "Path to the quiz score history file")
	flag.StringVar(&dedup, "dedup", "", "Duplicate-identity policy: last-wins, first-wins, or reject")
	flag.IntVar(&concurrency, "concurrency", 0, "Concurrent document extractions (0 = default)")
	flag.IntVar(&minTotal, "min.total", 0, "Minimum questions required overall (0 disables)")
	flag.BoolVar(&explain, "explain", false, "Generate answer explanations via the configured LLM")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.StringVar(&cacheDir, "cache.dir", "", "Cache directory for LLM responses")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for remote document fetches")
	flag.BoolVar(&dryRun, "dry-run", false, "Resolve and list sources without extracting")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputDir:    inputDir,
		OutputJSON:  outputJSON,
		OutputPDF:   outputPDF,
		QuizTitle:   quizTitle,
		QuizSize:    quizSize,
		Seed:        quizSeed,
		ScorePath:   scorePath,
		DedupPolicy: dedup,
		Concurrency: concurrency,
		MinTotal:    minTotal,
		Explain:     explain,
		LLMBaseURL:  llmBaseURL,
		LLMModel:    llmModel,
		LLMAPIKey:   llmKey,
		CacheDir:    cacheDir,
		UserAgent:   userAgent,
		DryRun:      dryRun,
		Verbose:     verbose,
	}
	if s := strings.TrimSpace(inputs); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				cfg.Inputs = append(cfg.Inputs, v)
			}
		}
	}

	// Precedence: flags, then env, then config file defaults.
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 signals "give me more documents", other
		// failures exit 1.
		if errors.Is(err, pipeline.ErrInsufficientQuestions) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return a.Run(ctx)
}
