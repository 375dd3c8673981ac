// Package export writes extracted question pools to their output
// formats: a machine-readable JSON bank and a printable PDF quiz.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperifyio/quizextract/internal/question"
)

// bank is the on-disk JSON shape. Records carry their own json tags.
type bank struct {
	Count     int               `json:"count"`
	Questions []question.Record `json:"questions"`
}

// WritePoolJSON writes the deduplicated pool to path as indented JSON,
// creating parent directories as needed.
func WritePoolJSON(pool *question.Pool, path string) error {
	records := pool.Records()
	b, err := json.MarshalIndent(bank{Count: len(records), Questions: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode question bank: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write question bank: %w", err)
	}
	return nil
}

// ReadPoolJSON loads a previously written bank into a fresh pool with
// the given dedup policy.
func ReadPoolJSON(path string, policy question.DedupPolicy) (*question.Pool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	var bk bank
	if err := json.Unmarshal(raw, &bk); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}
	pool := question.NewPool(policy)
	for _, rec := range bk.Questions {
		pool.Add(rec)
	}
	return pool, nil
}
