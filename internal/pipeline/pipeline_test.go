package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hyperifyio/quizextract/internal/question"
)

type fakeSource struct {
	id   string
	text string
	err  error
}

func (f *fakeSource) ID() string { return f.id }

func (f *fakeSource) Text(context.Context) (string, error) { return f.text, f.err }

func answeredQuestion(n int) string {
	return fmt.Sprintf("%d. Which structured question number %d has a proper key? A. one B. two C. three D. four Answer: B ", n, n)
}

func answerlessQuestion(n int) string {
	return fmt.Sprintf("%d. Which lenient question number %d is missing its key? A. one B. two C. three D. four ", n, n)
}

func TestRun_StructuredPathAboveGate(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 6; i++ {
		b.WriteString(answeredQuestion(i))
	}
	p := New(Config{})
	pool, stats, err := p.Run(context.Background(), []Source{&fakeSource{id: "doc", text: b.String()}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.FallbackDocs != 0 {
		t.Fatalf("structured document should not fall back, stats %+v", stats)
	}
	if pool.Len() != 6 {
		t.Fatalf("expected 6 records, got %d", pool.Len())
	}
	for _, r := range pool.Records() {
		if r.Answer != "B" {
			t.Fatalf("record %s answer %q, want B", r.ID, r.Answer)
		}
	}
}

func TestRun_FallbackReplacesStructuredResults(t *testing.T) {
	// Three blocks satisfy the full grammar and nine satisfy only the
	// lenient form: the pool must hold exactly the twelve fallback-derived
	// records, not a union of 3+12.
	var b strings.Builder
	for i := 1; i <= 3; i++ {
		b.WriteString(answeredQuestion(i))
	}
	for i := 4; i <= 12; i++ {
		b.WriteString(answerlessQuestion(i))
	}
	p := New(Config{})
	pool, stats, err := p.Run(context.Background(), []Source{&fakeSource{id: "doc", text: b.String()}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.FallbackDocs != 1 {
		t.Fatalf("expected fallback activation, stats %+v", stats)
	}
	if pool.Len() != 12 {
		t.Fatalf("expected exactly 12 records, got %d", pool.Len())
	}
	byID := map[string]question.Record{}
	for _, r := range pool.Records() {
		byID[r.ID] = r
	}
	if byID["doc-2"].Answer != "B" {
		t.Fatalf("answered block lost its key: %+v", byID["doc-2"])
	}
	if byID["doc-7"].Answer != "A" {
		t.Fatalf("answerless block should default to A: %+v", byID["doc-7"])
	}
}

func TestRun_DocumentFailureDoesNotAbortBatch(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 6; i++ {
		b.WriteString(answeredQuestion(i))
	}
	srcs := []Source{
		&fakeSource{id: "bad", err: errors.New("extractor exploded")},
		&fakeSource{id: "good", text: b.String()},
	}
	p := New(Config{})
	pool, stats, err := p.Run(context.Background(), srcs)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Failed != 1 || stats.Documents != 2 {
		t.Fatalf("stats %+v", stats)
	}
	if pool.Len() != 6 {
		t.Fatalf("expected records from the surviving document, got %d", pool.Len())
	}
}

func TestRun_InsufficientPool(t *testing.T) {
	p := New(Config{MinPool: 50})
	var b strings.Builder
	for i := 1; i <= 6; i++ {
		b.WriteString(answeredQuestion(i))
	}
	pool, stats, err := p.Run(context.Background(), []Source{&fakeSource{id: "doc", text: b.String()}})
	if !errors.Is(err, ErrInsufficientQuestions) {
		t.Fatalf("expected ErrInsufficientQuestions, got %v", err)
	}
	if pool == nil || pool.Len() != 6 || stats.Records != 6 {
		t.Fatalf("partial pool must still be returned, got %+v", stats)
	}
}

func TestRun_MergePreservesSubmissionOrder(t *testing.T) {
	one := answeredQuestion(1) + answeredQuestion(2) + answeredQuestion(3) +
		answeredQuestion(4) + answeredQuestion(5)
	p := New(Config{})
	srcs := []Source{
		&fakeSource{id: "first", text: one},
		&fakeSource{id: "second", text: one},
	}
	pool, _, err := p.Run(context.Background(), srcs)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	recs := pool.Records()
	if len(recs) != 10 {
		t.Fatalf("expected 10 records, got %d", len(recs))
	}
	for i := 0; i < 5; i++ {
		if recs[i].SourceID != "first" {
			t.Fatalf("record %d came from %s, want first", i, recs[i].SourceID)
		}
	}
	for i := 5; i < 10; i++ {
		if recs[i].SourceID != "second" {
			t.Fatalf("record %d came from %s, want second", i, recs[i].SourceID)
		}
	}
}
