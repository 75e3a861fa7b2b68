// pkg/api/stats_v1.go
package api

// Meta identifies the run that produced a payload.
type Meta struct {
	RunID       string `json:"run_id"`
	ToolVersion string `json:"tool_version"`
}

// LengthStatsV1 is one group's (or the combined) length summary.
// Max, Min and Avg are null when Count is 0.
type LengthStatsV1 struct {
	SourceFile string   `json:"source_file,omitempty"`
	Count      int      `json:"count"`
	Max        *int     `json:"max"`
	Min        *int     `json:"min"`
	Avg        *float64 `json:"avg"`
}

// LengthReportV1 is the stable schema for `biofx lengths --format json`.
type LengthReportV1 struct {
	Meta
	Files    []LengthStatsV1 `json:"files"`
	Combined LengthStatsV1   `json:"combined"`
}

// GCResultV1 is the stable schema for `biofx gc --format json`.
type GCResultV1 struct {
	Meta
	BestID  string  `json:"best_id"`
	BestPct float64 `json:"best_pct"`
	Found   bool    `json:"found"`
}
