// Package quiz runs question rounds drawn from an extracted pool and
// keeps a running score that can be persisted between sessions.
package quiz

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hyperifyio/quizextract/internal/question"
)

// ErrPoolExhausted is returned by NextRound when fewer unasked questions
// remain than the requested round size.
var ErrPoolExhausted = errors.New("quiz: question pool exhausted")

// Session draws rounds of questions without repetition and scores
// answers against the recorded key.
type Session struct {
	ID      string
	Started time.Time

	sampler *question.Sampler
	pool    *question.Pool
	asked   map[string]struct{}

	correct int
	wrong   int
}

// NewSession starts a session over pool. A nil sampler gets a
// time-seeded one.
func NewSession(pool *question.Pool, sampler *question.Sampler) *Session {
	if sampler == nil {
		sampler = question.NewSampler(nil)
	}
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
		sampler: sampler,
		pool:    pool,
		asked:   make(map[string]struct{}),
	}
}

// NextRound draws size previously-unasked questions. The drawn questions
// are immediately marked asked, whether or not they get answered. A pool
// with fewer unasked questions than size yields ErrPoolExhausted and no
// draw.
func (s *Session) NextRound(size int) ([]question.Record, error) {
	round := s.sampler.Sample(s.pool, size, s.asked)
	if len(round) < size {
		return nil, ErrPoolExhausted
	}
	for _, rec := range round {
		s.asked[rec.ID] = struct{}{}
	}
	return round, nil
}

// Answer scores the given choice against rec and returns whether it was
// correct. Choice comparison is case-insensitive.
func (s *Session) Answer(rec question.Record, choice string) bool {
	ok := strings.EqualFold(strings.TrimSpace(choice), rec.Answer)
	if ok {
		s.correct++
	} else {
		s.wrong++
	}
	return ok
}

// Remaining reports how many questions have not yet been drawn.
func (s *Session) Remaining() int {
	return s.pool.Len() - len(s.asked)
}

// Score returns the session's tally so far.
func (s *Session) Score() Score {
	return Score{
		SessionID: s.ID,
		Started:   s.Started,
		Correct:   s.correct,
		Wrong:     s.wrong,
		Asked:     s.correct + s.wrong,
	}
}
