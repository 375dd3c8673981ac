// Package question holds the validated question model: records, the pool
// they accumulate into, and sampling for quiz rounds.
package question

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Options holds the four option texts keyed by their printed label.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Record is the validated, identity-assigned unit the rest of the system
// consumes. Identity is "{sourceID}-{number}"; the printed number is not
// globally unique, so identity is only meaningful together with the source.
// Records are never mutated after insertion into a pool.
type Record struct {
	ID       string  `json:"id"`
	Number   int     `json:"number"`
	Question string  `json:"question"`
	Options  Options `json:"options"`
	Answer   string  `json:"answer"`
	SourceID string  `json:"sourceId"`
}

// RecordID derives the pool identity for a question number within a source.
func RecordID(sourceID string, number int) string {
	return fmt.Sprintf("%s-%d", sourceID, number)
}

// Validate enforces the record invariants: question text longer than 10
// characters (runes, not bytes), four non-empty options, and an answer
// letter in A-D.
func (r Record) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(r.Question)) <= 10 {
		return fmt.Errorf("question %q: text too short", r.ID)
	}
	for label, text := range map[string]string{"A": r.Options.A, "B": r.Options.B, "C": r.Options.C, "D": r.Options.D} {
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("question %q: empty option %s", r.ID, label)
		}
	}
	switch r.Answer {
	case "A", "B", "C", "D":
	default:
		return fmt.Errorf("question %q: answer %q not in A-D", r.ID, r.Answer)
	}
	return nil
}

// OptionText returns the option text for a label, or "" for unknown labels.
func (r Record) OptionText(label string) string {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "A":
		return r.Options.A
	case "B":
		return r.Options.B
	case "C":
		return r.Options.C
	case "D":
		return r.Options.D
	}
	return ""
}
