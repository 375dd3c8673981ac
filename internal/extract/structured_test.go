package extract

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtract_KnownLiteralCase(t *testing.T) {
	text := "1) What is 2+2? A) 3 B) 4 C) 5 D) 6 Answer: B"
	got := Extract(text, "doc")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.Number != 1 || c.Question != "What is 2+2?" || c.Answer != "B" {
		t.Fatalf("unexpected candidate: %+v", c)
	}
	if c.Options.A != "3" || c.Options.B != "4" || c.Options.C != "5" || c.Options.D != "6" {
		t.Fatalf("unexpected options: %+v", c.Options)
	}
	if c.SourceID != "doc" {
		t.Fatalf("source id not carried: %q", c.SourceID)
	}
}

func TestExtract_LetteredGrammarNormalizesAnswerCase(t *testing.T) {
	question := strings.Repeat("x", 38) + " ok?" // length 42
	text := fmt.Sprintf("Q. 7. %s A. first B. second C. third D. fourth Ans: c", question)
	got := Extract(text, "doc")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.Number != 7 {
		t.Fatalf("number = %d, want 7", c.Number)
	}
	if c.Answer != "C" {
		t.Fatalf("answer = %q, want C", c.Answer)
	}
	for label, opt := range map[string]string{"A": c.Options.A, "B": c.Options.B, "C": c.Options.C, "D": c.Options.D} {
		if opt == "" {
			t.Fatalf("option %s empty", label)
		}
	}
}

func TestExtract_ParenGrammarIgnoresInlineBareLetters(t *testing.T) {
	// "(A + B)" inside the question must not anchor a false option marker.
	text := "2) Compute the sum (A + B) of the registers (A) alpha (B) beta (C) gamma (D) delta Answer: A"
	got := Extract(text, "doc")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(got), got)
	}
	c := got[0]
	if !strings.Contains(c.Question, "(A + B)") {
		t.Fatalf("question lost the inline expression: %q", c.Question)
	}
	if c.Options.A != "alpha" || c.Options.B != "beta" || c.Options.C != "gamma" || c.Options.D != "delta" {
		t.Fatalf("unexpected options: %+v", c.Options)
	}
}

func TestExtract_ConsecutiveNonOverlappingMatches(t *testing.T) {
	text := "1. Which layer routes packets between networks? A. Physical B. Network C. Session D. Transport Answer: B " +
		"2. Which protocol resolves names to addresses? A. ARP B. DHCP C. DNS D. ICMP Answer: C"
	got := Extract(text, "doc")
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Number != 1 || got[1].Number != 2 {
		t.Fatalf("numbers = %d, %d", got[0].Number, got[1].Number)
	}
	if got[1].Options.C != "DNS" {
		t.Fatalf("second candidate option C = %q", got[1].Options.C)
	}
}

func TestExtract_ParenGrammarMultipleQuestions(t *testing.T) {
	text := "3) First parenthesized question here (A) uno (B) dos (C) tres (D) cuatro Answer: A " +
		"4) Second parenthesized question here (A) one (B) two (C) three (D) four Correct: d"
	got := Extract(text, "doc")
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
	}
	if got[0].Number != 3 || got[1].Number != 4 {
		t.Fatalf("numbers = %d, %d", got[0].Number, got[1].Number)
	}
	if got[1].Answer != "D" {
		t.Fatalf("answer = %q, want D", got[1].Answer)
	}
}

func TestExtract_IncompleteBlockYieldsNothing(t *testing.T) {
	// Missing option D and answer marker.
	text := "5) A question missing most structure A) one B) two"
	if got := Extract(text, "doc"); len(got) != 0 {
		t.Fatalf("expected no candidates, got %+v", got)
	}
}
