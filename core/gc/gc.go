// Package gc finds the record with the highest GC content.
package gc

import (
	"strings"

	"biofx-core/fasta"
)

// Result is the best record seen so far. Found is false until a record with
// non-zero length and GC content above 0 has been observed.
type Result struct {
	BestID  string
	BestPct float64
	Found   bool
}

// Content returns the GC percentage of residues, matching case-insensitively.
// ok is false for empty residues, which have no defined percentage.
func Content(residues string) (pct float64, ok bool) {
	if len(residues) == 0 {
		return 0, false
	}
	up := strings.ToUpper(residues)
	n := strings.Count(up, "C") + strings.Count(up, "G")
	return 100 * float64(n) / float64(len(up)), true
}

// Evaluator tracks the maximum GC content over a stream of records.
// A candidate replaces the best only when strictly greater, so ties keep the
// earliest record. The zero value starts with a best of 0.0.
type Evaluator struct {
	best Result
}

// Observe considers one record.
func (e *Evaluator) Observe(rec fasta.Record) {
	pct, ok := Content(rec.Residues)
	if !ok {
		return
	}
	if pct > e.best.BestPct {
		e.best = Result{BestID: rec.ID, BestPct: pct, Found: true}
	}
}

// Result returns the current winner.
func (e *Evaluator) Result() Result { return e.best }

// Evaluate runs an Evaluator over records in order.
func Evaluate(records []fasta.Record) Result {
	var e Evaluator
	for _, r := range records {
		e.Observe(r)
	}
	return e.Result()
}
