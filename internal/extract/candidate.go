// Package extract reconstructs multiple-choice question candidates from
// normalized document text. Two structural grammars are scanned globally;
// a lenient block-wise segmenter covers documents the grammars under-match.
package extract

import (
	"strconv"
	"strings"

	"github.com/hyperifyio/quizextract/internal/normalize"
	"github.com/hyperifyio/quizextract/internal/question"
)

// Candidate is a provisional, unvalidated parse result. The pipeline assigns
// identity and validates it into a question.Record.
type Candidate struct {
	Number   int
	Question string
	Options  question.Options
	Answer   string
	SourceID string
}

// cleanField reapplies the normalizer's final phase at field granularity,
// trimming stray whitespace a greedy capture may have picked up.
func cleanField(s string) string {
	return normalize.Clean(s)
}

// candidateFromMatch builds a Candidate from a grammar submatch laid out as
// [number, question, optA, optB, optC, optD, answer]. It reports false when
// any field failed to capture or cleaned down to nothing; the answer field
// may be empty only when the caller allows a default.
func candidateFromMatch(fields []string, sourceID string, defaultAnswer string) (Candidate, bool) {
	if len(fields) != 7 {
		return Candidate{}, false
	}
	number, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || number <= 0 {
		return Candidate{}, false
	}
	c := Candidate{
		Number:   number,
		Question: cleanField(fields[1]),
		Options: question.Options{
			A: cleanField(fields[2]),
			B: cleanField(fields[3]),
			C: cleanField(fields[4]),
			D: cleanField(fields[5]),
		},
		Answer:   strings.ToUpper(strings.TrimSpace(fields[6])),
		SourceID: sourceID,
	}
	if c.Answer == "" {
		if defaultAnswer == "" {
			return Candidate{}, false
		}
		c.Answer = defaultAnswer
	}
	if c.Question == "" || c.Options.A == "" || c.Options.B == "" || c.Options.C == "" || c.Options.D == "" {
		return Candidate{}, false
	}
	return c, true
}
