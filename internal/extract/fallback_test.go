package extract

import (
	"fmt"
	"strings"
	"testing"
)

func fallbackDocument(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d. Which fallback question number %d is being asked? A. first B. second C. third D. fourth ", i, i)
	}
	return strings.TrimSpace(b.String())
}

func TestSegment_DefaultsMissingAnswers(t *testing.T) {
	got := Segment(fallbackDocument(12), "doc")
	if len(got) != 12 {
		t.Fatalf("expected 12 candidates, got %d", len(got))
	}
	for i, c := range got {
		if c.Number != i+1 {
			t.Fatalf("candidate %d has number %d", i, c.Number)
		}
		if c.Answer != DefaultAnswer {
			t.Fatalf("candidate %d answer = %q, want default %q", i, c.Answer, DefaultAnswer)
		}
	}
}

func TestSegment_CapturesPresentAnswer(t *testing.T) {
	text := "Q. 9) Which answer marker should this block keep? A) one B) two C) three D) four Answer: d"
	got := Segment(text, "doc")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Number != 9 || got[0].Answer != "D" {
		t.Fatalf("got number %d answer %q", got[0].Number, got[0].Answer)
	}
	if got[0].Options.D != "four" {
		t.Fatalf("option D = %q, the answer marker leaked into it", got[0].Options.D)
	}
}

func TestSegment_ParenthesizedBlocks(t *testing.T) {
	text := "4) A parenthesized block should also be segmented here (A) uno (B) dos (C) tres (D) cuatro"
	got := Segment(text, "doc")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Options.A != "uno" || got[0].Options.D != "cuatro" {
		t.Fatalf("unexpected options: %+v", got[0].Options)
	}
}

func TestSegment_DiscardsTinyBlocks(t *testing.T) {
	// "7." starts a block shorter than the 20 character floor.
	text := "7. tiny 8. A real question sits in this block, does it parse? A. yes B. no C. maybe D. unsure"
	got := Segment(text, "doc")
	if len(got) != 1 {
		t.Fatalf("expected only the real block, got %d: %+v", len(got), got)
	}
	if got[0].Number != 8 {
		t.Fatalf("number = %d, want 8", got[0].Number)
	}
}

func TestSegment_DiscardsShortQuestions(t *testing.T) {
	text := "3. Too short? A. alpha B. beta C. gamma D. delta"
	if got := Segment(text, "doc"); len(got) != 0 {
		t.Fatalf("expected short question to be discarded, got %+v", got)
	}
}

func TestSegment_MalformedBlockDoesNotAbortDocument(t *testing.T) {
	text := "1. This block has no option structure at all and cannot parse into anything useful " +
		"2. This block is fine and should still come through cleanly A. one B. two C. three D. four Ans: b"
	got := Segment(text, "doc")
	if len(got) != 1 {
		t.Fatalf("expected the well-formed block only, got %d", len(got))
	}
	if got[0].Number != 2 || got[0].Answer != "B" {
		t.Fatalf("got number %d answer %q", got[0].Number, got[0].Answer)
	}
}

func TestSegment_NoBoundariesYieldsNothing(t *testing.T) {
	if got := Segment("prose without any numbering markers at all", "doc"); len(got) != 0 {
		t.Fatalf("expected no candidates, got %+v", got)
	}
}
