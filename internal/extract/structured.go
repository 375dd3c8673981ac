package extract

import "regexp"

// MinStructured is the recall gate: when both grammars together yield fewer
// candidates for a document, the caller must discard them and re-derive the
// document through Segment instead. Results are never merged across the two
// paths.
const MinStructured = 5

// The two grammars differ only in option markers: "A." / "A)" for the
// lettered form, "(A)" for the parenthesized form. Every option marker must
// be preceded by whitespace so an inline "(A + B)" inside an option text
// cannot anchor a false sub-match. Captures between anchors are lazy, so each
// span is the shortest text satisfying the next anchor.
var (
	grammarLettered = regexp.MustCompile(
		`(?s)(?:[Qq]\.?\s*)?(\d{1,3})\s*[.)]\s*(.+?)` +
			`\s+A[.)]\s*(.+?)\s+B[.)]\s*(.+?)\s+C[.)]\s*(.+?)\s+D[.)]\s*(.+?)` +
			`\s+(?i:answer|ans|correct)\s*:?\s*([A-Da-d])\b`)

	grammarParen = regexp.MustCompile(
		`(?s)(?:[Qq]\.?\s*)?(\d{1,3})\s*[.)]\s*(.+?)` +
			`\s+\(A\)\s*(.+?)\s+\(B\)\s*(.+?)\s+\(C\)\s*(.+?)\s+\(D\)\s*(.+?)` +
			`\s+(?i:answer|ans|correct)\s*:?\s*([A-Da-d])\b`)
)

// Extract scans the entire normalized text with both grammars independently
// and concatenates their candidates. Matches are consumed left to right
// without overlap; scanning resumes after each match end. Duplicates across
// the grammars are expected and resolved later by identity, not here.
func Extract(text, sourceID string) []Candidate {
	out := scan(grammarLettered, text, sourceID)
	return append(out, scan(grammarParen, text, sourceID)...)
}

func scan(grammar *regexp.Regexp, text, sourceID string) []Candidate {
	matches := grammar.FindAllStringSubmatch(text, -1)
	out := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		if c, ok := candidateFromMatch(m[1:], sourceID, ""); ok {
			out = append(out, c)
		}
	}
	return out
}
