// Package normalize repairs character-level corruption in text extracted from
// scanned or converted documents: ligatures misread as unrelated symbols,
// words fractured around them, and watermark noise injected by converters.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

type compiledRule struct {
	re   *regexp.Regexp
	repl string
}

func compileRules(rules []joinRule) []compiledRule {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		quoted := make([]string, 0, len(r.parts))
		for _, p := range r.parts {
			quoted = append(quoted, regexp.QuoteMeta(p))
		}
		pattern := `(?i)\b` + strings.Join(quoted, `\s*`) + `\b`
		out = append(out, compiledRule{re: regexp.MustCompile(pattern), repl: r.repl})
	}
	return out
}

var (
	prePass    = compileRules(prePassFixes)
	postPass   = compileRules(postPassFixes)
	dictionary = compileRules(wordDictionary)

	// Orphaned two-or-three-letter infix left behind by the glyph table,
	// surrounded by single spaces and flanked by fragments of length >= 2.
	// The infix set is closed: only tokens the substitution step actually
	// produces mid-word. "ft" and "st" are excluded because they end real
	// words ("le ft side" must not become "leftside").
	orphanInfix = regexp.MustCompile(`(?i)\b([a-z]{2,}) (tti|ffi|ffl|ti|tt|ff|fi|fl) ([a-z]{2,})\b`)

	noise      = compileNoise(noisePatterns)
	whitespace = regexp.MustCompile(`\s+`)
)

func compileNoise(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// Normalize repairs known corruption in raw document text. It is pure and
// total: unrecognized input passes through unchanged, and the output is a
// fixed point (normalizing twice yields the same string). The phases run in a
// fixed order that later phases depend on; see rules.go for the rule data.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := norm.NFC.String(raw)
	s = applyRules(prePass, s)
	s = substituteGlyphs(s)
	s = applyRules(postPass, s)
	s = applyRules(dictionary, s)
	s = Clean(s)
	return rejoinOrphanInfixes(s)
}

// Clean strips converter noise, collapses all whitespace runs (including
// newlines) to single spaces, and trims. It runs before the orphan-infix
// repair, which needs fragments separated by exactly one space: a newline or
// double space between fragments must not hide a rejoin. Exported so
// extraction can reapply it at field granularity.
func Clean(s string) string {
	for _, re := range noise {
		s = re.ReplaceAllString(s, " ")
	}
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func substituteGlyphs(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := glyphTable[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// applyRules consults each rule once, in order, preserving the case of the
// first letter so sentence-initial words keep their capital.
func applyRules(rules []compiledRule, s string) string {
	for _, r := range rules {
		s = r.re.ReplaceAllStringFunc(s, func(m string) string {
			if strings.EqualFold(m, r.repl) {
				// already the joined word, leave its casing alone
				return m
			}
			return matchCase(m, r.repl)
		})
	}
	return s
}

func matchCase(src, repl string) string {
	if src == "" || repl == "" {
		return repl
	}
	first := []rune(src)[0]
	if unicode.IsUpper(first) {
		rs := []rune(repl)
		rs[0] = unicode.ToUpper(rs[0])
		return string(rs)
	}
	return repl
}

// rejoinOrphanInfixes closes up any spaced infix the explicit dictionary did
// not cover. A single pass cannot fix chains like "authen ti ca ti on"
// because matches do not overlap, so it loops to a fixed point. The bound
// guards against a pathological rule interaction, not an expected case.
func rejoinOrphanInfixes(s string) string {
	for i := 0; i < 16; i++ {
		next := orphanInfix.ReplaceAllString(s, "$1$2$3")
		if next == s {
			break
		}
		s = next
	}
	return s
}
