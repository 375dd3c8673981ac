package question

import "fmt"

// DedupPolicy decides what happens when two records share an identity.
// The source behavior this tool replaces resolved collisions by overwrite,
// so LastWins is the default; the stricter policies are offered because the
// overwrite behavior was never verified to be intentional.
type DedupPolicy int

const (
	// LastWins keeps the most recently inserted record for an identity.
	LastWins DedupPolicy = iota
	// FirstWins keeps the earliest record and ignores later collisions.
	FirstWins
	// Reject drops every record whose identity collided.
	Reject
)

// ParseDedupPolicy maps a configuration string to a policy.
func ParseDedupPolicy(s string) (DedupPolicy, error) {
	switch s {
	case "", "last-wins":
		return LastWins, nil
	case "first-wins":
		return FirstWins, nil
	case "reject":
		return Reject, nil
	}
	return LastWins, fmt.Errorf("unknown dedup policy %q", s)
}

// Pool is an append-only sequence of records owned by the extraction
// pipeline. Inserts keep every record in arrival order; Records applies the
// duplicate-identity policy when the pool is read.
type Pool struct {
	policy  DedupPolicy
	entries []Record
}

// NewPool returns an empty pool with the given duplicate-identity policy.
func NewPool(policy DedupPolicy) *Pool {
	return &Pool{policy: policy}
}

// Add appends a record. Safe only for a single writer, which is all the
// pipeline's merge step needs.
func (p *Pool) Add(r Record) {
	p.entries = append(p.entries, r)
}

// Records returns the deduplicated view of the pool in first-insertion
// order of each surviving identity. The returned slice is a fresh copy;
// callers may reorder it freely.
func (p *Pool) Records() []Record {
	seen := make(map[string]int, len(p.entries))
	collided := make(map[string]bool)
	out := make([]Record, 0, len(p.entries))
	for _, r := range p.entries {
		idx, dup := seen[r.ID]
		if !dup {
			seen[r.ID] = len(out)
			out = append(out, r)
			continue
		}
		collided[r.ID] = true
		if p.policy == LastWins {
			out[idx] = r
		}
	}
	if p.policy != Reject || len(collided) == 0 {
		return out
	}
	kept := out[:0]
	for _, r := range out {
		if !collided[r.ID] {
			kept = append(kept, r)
		}
	}
	return kept
}

// Len reports the number of records visible under the dedup policy.
func (p *Pool) Len() int {
	return len(p.Records())
}
