package gc

import (
	"math"
	"testing"

	"biofx-core/fasta"
)

func TestContent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"", 0, false},
		{"GGCC", 100, true},
		{"ATAT", 0, true},
		{"acgt", 50, true},
		{"CCGGGA", 100 * 5.0 / 6.0, true},
		{"NNNG", 25, true},
	}
	for _, tc := range tests {
		got, ok := Content(tc.in)
		if ok != tc.ok || math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Content(%q) = %v,%v, want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEvaluatePicksHighest(t *testing.T) {
	recs := []fasta.Record{
		{ID: "A", Residues: "ATCG"},
		{ID: "B", Residues: "CCGGGA"},
		{ID: "C", Residues: "TCACTACTACCTGCCCCCCCCCCCCC"},
	}
	got := Evaluate(recs)
	if !got.Found || got.BestID != "B" {
		t.Fatalf("best = %+v, want B", got)
	}
	if math.Abs(got.BestPct-83.333333333) > 1e-6 {
		t.Fatalf("pct = %v", got.BestPct)
	}
}

func TestTiesKeepEarliest(t *testing.T) {
	got := Evaluate([]fasta.Record{
		{ID: "first", Residues: "GC"},
		{ID: "second", Residues: "CG"},
	})
	if got.BestID != "first" {
		t.Fatalf("best = %q, want first", got.BestID)
	}
}

func TestZeroLengthNeverWins(t *testing.T) {
	got := Evaluate([]fasta.Record{
		{ID: "empty", Residues: ""},
		{ID: "low", Residues: "AAAT"},
	})
	if got.Found || got.BestID == "empty" {
		t.Fatalf("zero-length record selected: %+v", got)
	}

	got = Evaluate([]fasta.Record{
		{ID: "empty", Residues: ""},
		{ID: "some", Residues: "AG"},
	})
	if got.BestID != "some" || got.BestPct != 50 {
		t.Fatalf("got %+v, want some/50", got)
	}
}

func TestEvaluatorAcrossBatches(t *testing.T) {
	var e Evaluator
	for _, r := range []fasta.Record{{ID: "a", Residues: "AG"}} {
		e.Observe(r)
	}
	for _, r := range []fasta.Record{{ID: "b", Residues: "GG"}, {ID: "c", Residues: "GGGG"}} {
		e.Observe(r)
	}
	if got := e.Result(); got.BestID != "b" || got.BestPct != 100 {
		t.Fatalf("got %+v, want b/100", got)
	}
}
