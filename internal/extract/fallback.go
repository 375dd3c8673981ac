package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Fallback segmentation: split the document into per-question blocks at
// numbering markers and apply one lenient grammar match per block. Operating
// block-wise with a defaulted answer trades some answer-key precision for
// much higher question recall: a defaulted key may be wrong, but the
// question itself is still usable. Every defaulted answer is logged so the
// trade-off stays visible.

const (
	minBlockLen    = 20
	minQuestionLen = 10

	// DefaultAnswer is assigned when a block carries no answer marker.
	DefaultAnswer = "A"
)

var (
	blockBoundary = regexp.MustCompile(`(?i)\b(?:q\.?\s*)?\d{1,3}[.)]`)
	blockNumber   = regexp.MustCompile(`(?i)^(?:q\.?\s*)?(\d{1,3})[.)]\s*`)

	// Same anchors as the structured grammars, but anchored to the block and
	// with the answer capture optional.
	lenientLettered = regexp.MustCompile(
		`(?s)^(.+?)\s+A[.)]\s*(.+?)\s+B[.)]\s*(.+?)\s+C[.)]\s*(.+?)\s+D[.)]\s*(.*?)` +
			`(?:\s+(?i:answer|ans|correct)\s*:?\s*([A-Da-d])\b.*)?$`)
	lenientParen = regexp.MustCompile(
		`(?s)^(.+?)\s+\(A\)\s*(.+?)\s+\(B\)\s*(.+?)\s+\(C\)\s*(.+?)\s+\(D\)\s*(.*?)` +
			`(?:\s+(?i:answer|ans|correct)\s*:?\s*([A-Da-d])\b.*)?$`)
)

// Segment splits normalized text into numbered blocks and derives one
// candidate per block that satisfies a lenient grammar. A malformed block is
// skipped, never the whole document.
func Segment(text, sourceID string) []Candidate {
	var out []Candidate
	for _, block := range splitBlocks(text) {
		if c, ok := segmentBlock(block, sourceID); ok {
			out = append(out, c)
		}
	}
	return out
}

// splitBlocks cuts the text at every numbering marker; each block runs from
// its marker to the next marker or end of text.
func splitBlocks(text string) []string {
	bounds := blockBoundary.FindAllStringIndex(text, -1)
	blocks := make([]string, 0, len(bounds))
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		blocks = append(blocks, text[b[0]:end])
	}
	return blocks
}

// segmentBlock parses a single block. The recover guard honors the contract
// that no single block may abort a document's segmentation, whatever goes
// wrong inside.
func segmentBlock(block, sourceID string) (c Candidate, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Str("source", sourceID).Msg("skipping malformed block")
			c, ok = Candidate{}, false
		}
	}()

	block = strings.TrimSpace(block)
	if utf8.RuneCountInString(block) < minBlockLen {
		return Candidate{}, false
	}
	num := blockNumber.FindStringSubmatch(block)
	if num == nil {
		return Candidate{}, false
	}
	rest := block[len(num[0]):]

	m := lenientLettered.FindStringSubmatch(rest)
	if m == nil {
		m = lenientParen.FindStringSubmatch(rest)
	}
	if m == nil {
		return Candidate{}, false
	}

	fields := append([]string{num[1]}, m[1:]...)
	c, ok = candidateFromMatch(fields, sourceID, DefaultAnswer)
	if !ok {
		return Candidate{}, false
	}
	if utf8.RuneCountInString(c.Question) <= minQuestionLen {
		return Candidate{}, false
	}
	if m[6] == "" {
		log.Debug().Str("source", sourceID).Int("number", c.Number).Msg("no answer marker in block, defaulting to A")
	}
	return c, true
}
