// internal/report/json.go
package report

import (
	"io"

	"biofx-core/stats"
	"biofx/internal/input"
	"biofx/internal/jsonlutil"
	"biofx/internal/jsonutil"
	"biofx/pkg/api"
)

func init() {
	RegisterLength(FormatJSON, func(w io.Writer, p LengthPayload) error { return jsonutil.EncodePretty(w, ToAPILengthReport(p)) })
	RegisterGC(FormatJSON, func(w io.Writer, p GCPayload) error { return jsonutil.EncodePretty(w, ToAPIGC(p)) })
	RegisterRecords(FormatJSON, func(w io.Writer, p RecordsPayload) error { return jsonutil.EncodePretty(w, ToAPIRecords(p)) })
	RegisterMatrix(FormatJSON, func(w io.Writer, p MatrixPayload) error { return jsonutil.EncodePretty(w, ToAPIMatrix(p)) })
	RegisterRecords(FormatJSONL, func(w io.Writer, p RecordsPayload) error {
		return jsonlutil.Write(w, ToAPIRecords(p).Records, IsBrokenPipe)
	})
}

// ToAPILengthStats converts one summary to the wire schema. Unset values
// become null.
func ToAPILengthStats(path string, s stats.LengthStats) api.LengthStatsV1 {
	v := api.LengthStatsV1{SourceFile: path, Count: s.Count}
	if s.HasData() {
		hi, lo, avg := s.Max, s.Min, s.Avg
		v.Max, v.Min, v.Avg = &hi, &lo, &avg
	}
	return v
}

func ToAPILengthReport(p LengthPayload) api.LengthReportV1 {
	out := api.LengthReportV1{
		Meta:     p.Meta,
		Files:    make([]api.LengthStatsV1, 0, len(p.Groups)),
		Combined: ToAPILengthStats("", p.Combined),
	}
	for _, g := range p.Groups {
		out.Files = append(out.Files, ToAPILengthStats(input.DisplayName(g.Path), g.Stats))
	}
	return out
}

func ToAPIGC(p GCPayload) api.GCResultV1 {
	return api.GCResultV1{
		Meta:    p.Meta,
		BestID:  p.Result.BestID,
		BestPct: p.Result.BestPct,
		Found:   p.Result.Found,
	}
}

func ToAPIRecords(p RecordsPayload) api.RecordsV1 {
	out := api.RecordsV1{Meta: p.Meta, Records: []api.RecordV1{}}
	for _, f := range p.Files {
		name := input.DisplayName(f.Path)
		for _, r := range f.Records {
			out.Records = append(out.Records, api.RecordV1{
				SourceFile: name,
				ID:         r.ID,
				Residues:   r.Residues,
				Length:     r.Len(),
			})
		}
	}
	return out
}

func ToAPIMatrix(p MatrixPayload) api.MatrixV1 {
	dist := make([][]int, len(p.Matrix))
	for i, row := range p.Matrix {
		dist[i] = append([]int(nil), row...)
	}
	seqs := append([]string{}, p.Sequences...)
	return api.MatrixV1{
		Meta:       p.Meta,
		SourceFile: input.DisplayName(p.Path),
		Sequences:  seqs,
		Distances:  dist,
	}
}
