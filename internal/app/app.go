// Package app wires configuration, source resolution, the extraction
// pipeline, and the exporters into a single runnable unit.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/quizextract/internal/analysis"
	"github.com/hyperifyio/quizextract/internal/export"
	"github.com/hyperifyio/quizextract/internal/pipeline"
	"github.com/hyperifyio/quizextract/internal/question"
	"github.com/hyperifyio/quizextract/internal/source"
)

// App owns the configured collaborators for one run.
type App struct {
	cfg Config
	ai  *openai.Client
}

const defaultUserAgent = "quizextract/1.0 (+https://github.com/hyperifyio/quizextract)"

// New builds an App and, when explanations are enabled, runs a
// best-effort connectivity check against the chat endpoint.
func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg}
	if cfg.Explain {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		a.ai = openai.NewClientWithConfig(transportCfg)

		// Preflight is best-effort: warn and continue so extraction can
		// still run when the model endpoint is down.
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if models, err := a.ai.ListModels(ctx); err != nil {
			log.Warn().Err(err).Msg("LLM model list failed; continuing")
		} else if len(models.Models) == 0 {
			log.Warn().Msg("LLM returned zero models")
		}
	}
	return a, nil
}

// Run executes extraction end to end: resolve sources, run the pipeline,
// write the bank and optional quiz sheet, then optional explanations.
// ErrInsufficientQuestions from the pipeline is surfaced only after the
// partial outputs are written, so callers can apply an exit code policy
// without losing the work.
func (a *App) Run(ctx context.Context) error {
	sources, err := a.resolveSources()
	if err != nil {
		return err
	}
	if a.cfg.DryRun {
		for i, s := range sources {
			fmt.Printf("%d. %s\n", i+1, s.ID())
		}
		log.Info().Int("sources", len(sources)).Msg("dry run: resolved sources only")
		return nil
	}

	policy, err := parsePolicy(a.cfg.DedupPolicy)
	if err != nil {
		return err
	}
	p := pipeline.New(pipeline.Config{
		MinPool:     a.cfg.MinTotal,
		Dedup:       policy,
		Concurrency: a.cfg.Concurrency,
	})
	pool, stats, runErr := p.Run(ctx, sources)
	if runErr != nil && !errors.Is(runErr, pipeline.ErrInsufficientQuestions) {
		return runErr
	}
	log.Info().
		Int("documents", stats.Documents).
		Int("failed", stats.Failed).
		Int("fallback", stats.FallbackDocs).
		Int("dropped", stats.Dropped).
		Int("questions", stats.Records).
		Msg("extraction finished")

	if err := export.WritePoolJSON(pool, a.cfg.OutputJSON); err != nil {
		return err
	}
	log.Info().Str("out", a.cfg.OutputJSON).Msg("wrote question bank")

	if a.cfg.OutputPDF != "" && pool.Len() > 0 {
		if err := a.writeQuizSheet(pool); err != nil {
			return err
		}
	}

	if a.cfg.Explain && pool.Len() > 0 {
		a.writeExplanations(ctx, pool)
	}

	return runErr
}

func (a *App) writeQuizSheet(pool *question.Pool) error {
	var rnd *rand.Rand
	if a.cfg.Seed != 0 {
		rnd = rand.New(rand.NewSource(a.cfg.Seed))
	}
	sampler := question.NewSampler(rnd)
	size := a.cfg.QuizSize
	if size <= 0 || size > pool.Len() {
		size = pool.Len()
	}
	recs := sampler.Sample(pool, size, nil)
	if err := export.WriteQuizPDF(a.cfg.QuizTitle, recs, a.cfg.OutputPDF); err != nil {
		return fmt.Errorf("write quiz pdf: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPDF).Int("questions", len(recs)).Msg("wrote quiz sheet")
	return nil
}

// writeExplanations produces a sidecar markdown file next to the bank.
// Individual failures are logged and skipped; an unreachable model must
// not invalidate the extraction outputs already written.
func (a *App) writeExplanations(ctx context.Context, pool *question.Pool) {
	exp := &analysis.Explainer{Client: a.ai, Model: a.cfg.LLMModel}
	if a.cfg.CacheDir != "" {
		exp.Cache = &analysis.ResponseCache{Dir: a.cfg.CacheDir}
	}
	var b strings.Builder
	b.WriteString("# Answer Explanations\n")
	written := 0
	for _, rec := range pool.Records() {
		text, err := exp.Explain(ctx, rec)
		if err != nil {
			log.Warn().Err(err).Str("question", rec.ID).Msg("explanation failed; skipping")
			continue
		}
		fmt.Fprintf(&b, "\n## %d. %s\n\nAnswer: %s\n\n%s\n", rec.Number, rec.Question, rec.Answer, text)
		written++
	}
	if written == 0 {
		log.Warn().Msg("no explanations generated")
		return
	}
	path := explanationsSidecarPath(a.cfg.OutputJSON)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		log.Warn().Err(err).Str("out", path).Msg("write explanations failed")
		return
	}
	log.Info().Str("out", path).Int("explained", written).Msg("wrote explanations")
}

func explanationsSidecarPath(bankPath string) string {
	ext := filepath.Ext(bankPath)
	return strings.TrimSuffix(bankPath, ext) + ".explanations.md"
}

// resolveSources expands the configured directory and explicit inputs
// into pipeline sources. Explicit inputs may be local paths or http(s)
// URLs; the directory is optional when explicit inputs exist.
func (a *App) resolveSources() ([]pipeline.Source, error) {
	ua := a.cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	var out []pipeline.Source
	if a.cfg.InputDir != "" {
		dirSources, err := source.FromDir(a.cfg.InputDir)
		if err != nil {
			if len(a.cfg.Inputs) == 0 {
				return nil, err
			}
			log.Warn().Err(err).Str("dir", a.cfg.InputDir).Msg("input dir yielded no sources")
		}
		for _, s := range dirSources {
			out = append(out, s)
		}
	}
	for _, in := range a.cfg.Inputs {
		if u, err := url.Parse(in); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
			out = append(out, &source.RemoteSource{
				URL:    in,
				Client: &source.HTTPClient{UserAgent: ua, MaxAttempts: 2, Timeout: 15 * time.Second},
			})
			continue
		}
		s, err := source.FromPath(in)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", in, err)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no input documents found")
	}
	return out, nil
}
