package report

import (
	"biofx-core/gc"
	"biofx-core/hamming"
	"biofx-core/stats"
	"biofx/internal/input"
	"biofx/pkg/api"
)

// GroupStats is one input's length statistics.
type GroupStats struct {
	Path  string
	Stats stats.LengthStats
}

// LengthPayload carries the per-file statistics and their combination.
type LengthPayload struct {
	Meta     api.Meta
	Groups   []GroupStats
	Combined stats.LengthStats
}

// GCPayload carries the global GC winner.
type GCPayload struct {
	Meta   api.Meta
	Result gc.Result
}

// RecordsPayload carries tokenized FASTA files.
type RecordsPayload struct {
	Meta  api.Meta
	Files []input.FastaFile
}

// MatrixPayload carries a distance matrix and the sequences it was built from.
type MatrixPayload struct {
	Meta      api.Meta
	Path      string
	Sequences []string
	Matrix    hamming.Matrix
	Pretty    bool
}
