package question

import (
	"math/rand"
	"time"
)

// Sampler draws randomized, non-repeating subsets of a pool for quiz rounds.
// Exclusions are threaded through explicitly per call rather than kept as
// sampler state, so concurrent sessions cannot bleed into each other.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler returns a sampler backed by the given source. A nil rnd seeds
// from the clock; tests pass a fixed-seed source for reproducibility.
func NewSampler(rnd *rand.Rand) *Sampler {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rnd: rnd}
}

// Sample filters out excluded identities, shuffles the remainder uniformly,
// and returns up to count records. The pool is not mutated. A result shorter
// than count means the pool is depleted for this exclusion set; callers must
// treat that as a signal, not an error.
func (s *Sampler) Sample(pool *Pool, count int, exclude map[string]struct{}) []Record {
	if pool == nil || count <= 0 {
		return nil
	}
	eligible := make([]Record, 0, pool.Len())
	for _, r := range pool.Records() {
		if _, skip := exclude[r.ID]; skip {
			continue
		}
		eligible = append(eligible, r)
	}
	s.rnd.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	if count > len(eligible) {
		count = len(eligible)
	}
	return eligible[:count]
}
