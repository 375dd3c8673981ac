package question

import "testing"

func validRecord(id string) Record {
	return Record{
		ID:       id,
		Number:   1,
		Question: "Which port does HTTPS use by default?",
		Options:  Options{A: "80", B: "443", C: "8080", D: "21"},
		Answer:   "B",
		SourceID: "doc",
	}
}

func TestRecordValidate(t *testing.T) {
	if err := validRecord("doc-1").Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	short := validRecord("doc-1")
	short.Question = "Too short"
	if err := short.Validate(); err == nil {
		t.Fatalf("expected short question to fail validation")
	}

	// 10 runes but 11 bytes: length is counted in runes, so the byte
	// count must not push a multibyte question over the threshold.
	multibyte := validRecord("doc-1")
	multibyte.Question = "Äquator 9?"
	if err := multibyte.Validate(); err == nil {
		t.Fatalf("expected 10-rune question to fail validation")
	}

	elevenRunes := validRecord("doc-1")
	elevenRunes.Question = "Äquator 19?"
	if err := elevenRunes.Validate(); err != nil {
		t.Fatalf("11-rune question rejected: %v", err)
	}

	empty := validRecord("doc-1")
	empty.Options.C = "  "
	if err := empty.Validate(); err == nil {
		t.Fatalf("expected blank option to fail validation")
	}

	badAnswer := validRecord("doc-1")
	badAnswer.Answer = "E"
	if err := badAnswer.Validate(); err == nil {
		t.Fatalf("expected answer outside A-D to fail validation")
	}
}

func TestRecordID(t *testing.T) {
	if got := RecordID("exam.pdf", 17); got != "exam.pdf-17" {
		t.Fatalf("RecordID = %q", got)
	}
}

func TestPoolDedup_LastWins(t *testing.T) {
	p := NewPool(LastWins)
	first := validRecord("doc-1")
	first.Question = "What is the first version of this question?"
	second := validRecord("doc-1")
	second.Question = "What is the second version of this question?"
	p.Add(first)
	p.Add(validRecord("doc-2"))
	p.Add(second)

	recs := p.Records()
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Question != second.Question {
		t.Fatalf("last-wins should keep the later record, got %q", recs[0].Question)
	}
}

func TestPoolDedup_FirstWins(t *testing.T) {
	p := NewPool(FirstWins)
	first := validRecord("doc-1")
	first.Question = "What is the first version of this question?"
	second := validRecord("doc-1")
	second.Question = "What is the second version of this question?"
	p.Add(first)
	p.Add(second)

	recs := p.Records()
	if len(recs) != 1 || recs[0].Question != first.Question {
		t.Fatalf("first-wins should keep the earlier record, got %+v", recs)
	}
}

func TestPoolDedup_Reject(t *testing.T) {
	p := NewPool(Reject)
	p.Add(validRecord("doc-1"))
	p.Add(validRecord("doc-1"))
	p.Add(validRecord("doc-2"))

	recs := p.Records()
	if len(recs) != 1 || recs[0].ID != "doc-2" {
		t.Fatalf("reject should drop every colliding identity, got %+v", recs)
	}
	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1", p.Len())
	}
}

func TestParseDedupPolicy(t *testing.T) {
	for in, want := range map[string]DedupPolicy{"": LastWins, "last-wins": LastWins, "first-wins": FirstWins, "reject": Reject} {
		got, err := ParseDedupPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseDedupPolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDedupPolicy("bogus"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
