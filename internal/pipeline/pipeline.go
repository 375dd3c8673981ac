// Package pipeline orchestrates per-document extraction into a question
// pool: normalize, scan with the structured grammars, and fall back to
// block segmentation when a document under-recovers.
package pipeline

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/quizextract/internal/extract"
	"github.com/hyperifyio/quizextract/internal/normalize"
	"github.com/hyperifyio/quizextract/internal/question"
)

// ErrInsufficientQuestions is returned when the accumulated pool ends up
// below the configured minimum. The partial pool is still returned with it;
// the condition asks the user for more or different source documents, it is
// not a processing failure.
var ErrInsufficientQuestions = errors.New("not enough questions found")

// Source is the minimal view of a document the pipeline needs. Text is
// expected to be page-ordered plain text; producing it (and any I/O that
// involves) is the provider's concern.
type Source interface {
	ID() string
	Text(ctx context.Context) (string, error)
}

// Config tunes a Pipeline. Zero values select the defaults.
type Config struct {
	// MinStructured is the per-document recall gate below which structured
	// results are discarded in favor of fallback segmentation.
	MinStructured int
	// MinPool is the minimum total record count; a smaller final pool
	// yields ErrInsufficientQuestions.
	MinPool int
	// Dedup resolves identity collisions in the pool.
	Dedup question.DedupPolicy
	// Concurrency caps simultaneous document extractions. Zero means 4.
	Concurrency int
}

// Stats aggregates per-batch counters for the caller's summary.
type Stats struct {
	Documents    int
	Failed       int
	FallbackDocs int
	Dropped      int
	Records      int
}

type Pipeline struct {
	cfg Config
}

func New(cfg Config) *Pipeline {
	if cfg.MinStructured <= 0 {
		cfg.MinStructured = extract.MinStructured
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	return &Pipeline{cfg: cfg}
}

// Run extracts every source concurrently and merges the results into one
// pool in submission order. Each document reads only its own text and writes
// only its own slot, so the merge below is the sole synchronization point.
// A failing document is logged and skipped, never fatal to the batch.
func (p *Pipeline) Run(ctx context.Context, sources []Source) (*question.Pool, Stats, error) {
	results := make([][]extract.Candidate, len(sources))
	failures := make([]error, len(sources))
	fellBack := make([]bool, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			text, err := src.Text(gctx)
			if err != nil {
				log.Warn().Err(err).Str("source", src.ID()).Msg("text extraction failed, skipping document")
				failures[i] = err
				return nil
			}
			normalized := normalize.Normalize(text)
			cands := extract.Extract(normalized, src.ID())
			if len(cands) < p.cfg.MinStructured {
				log.Debug().Str("source", src.ID()).Int("structured", len(cands)).
					Msg("below recall gate, re-deriving through fallback segmentation")
				cands = extract.Segment(normalized, src.ID())
				fellBack[i] = true
			}
			results[i] = cands
			return nil
		})
	}
	// Workers only record failures, so Wait can only surface ctx errors.
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	pool := question.NewPool(p.cfg.Dedup)
	stats := Stats{Documents: len(sources)}
	for i := range sources {
		if failures[i] != nil {
			stats.Failed++
			continue
		}
		if fellBack[i] {
			stats.FallbackDocs++
		}
		for _, c := range results[i] {
			rec := question.Record{
				ID:       question.RecordID(c.SourceID, c.Number),
				Number:   c.Number,
				Question: c.Question,
				Options:  c.Options,
				Answer:   c.Answer,
				SourceID: c.SourceID,
			}
			if err := rec.Validate(); err != nil {
				log.Debug().Err(err).Msg("dropping invalid candidate")
				stats.Dropped++
				continue
			}
			pool.Add(rec)
		}
	}
	stats.Records = pool.Len()

	if stats.Failed > 0 {
		log.Warn().Int("failed", stats.Failed).Int("total", stats.Documents).Msg("documents failed extraction")
	}
	if p.cfg.MinPool > 0 && stats.Records < p.cfg.MinPool {
		return pool, stats, ErrInsufficientQuestions
	}
	return pool, stats, nil
}
