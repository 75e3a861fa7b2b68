// pkg/api/sequence_v1.go
package api

// RecordV1 is one parsed FASTA record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	SourceFile string `json:"source_file,omitempty"`
	ID         string `json:"id"`
	Residues   string `json:"residues"`
	Length     int    `json:"length"`
}

// RecordsV1 wraps the records of one `biofx fasta` run.
type RecordsV1 struct {
	Meta
	Records []RecordV1 `json:"records"`
}

// MatrixV1 is the pairwise distance table; only cells with i < j are set.
type MatrixV1 struct {
	Meta
	SourceFile string   `json:"source_file,omitempty"`
	Sequences  []string `json:"sequences"`
	Distances  [][]int  `json:"distances"`
}
