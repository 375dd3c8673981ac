package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Score is the persisted outcome of a session.
type Score struct {
	SessionID string    `json:"session_id"`
	Started   time.Time `json:"started"`
	Asked     int       `json:"asked"`
	Correct   int       `json:"correct"`
	Wrong     int       `json:"wrong"`
}

// Percent returns the correct ratio in percent, 0 when nothing was asked.
func (sc Score) Percent() float64 {
	if sc.Asked == 0 {
		return 0
	}
	return float64(sc.Correct) / float64(sc.Asked) * 100
}

// History is an append-only score file, newest last.
type History struct {
	Scores []Score `json:"scores"`
}

// LoadHistory reads the score file at path. A missing file yields an
// empty history.
func LoadHistory(path string) (*History, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, fmt.Errorf("read score history: %w", err)
	}
	var h History
	if err := json.Unmarshal(b, &h); err != nil {
		return nil, fmt.Errorf("parse score history %s: %w", path, err)
	}
	return &h, nil
}

// Append records sc and writes the history back to path.
func (h *History) Append(path string, sc Score) error {
	h.Scores = append(h.Scores, sc)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode score history: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write score history: %w", err)
	}
	return nil
}
