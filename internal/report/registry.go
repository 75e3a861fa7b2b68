// internal/report/registry.go
package report

import (
	"fmt"
	"io"
)

// Writer registries (format → handler), one per payload kind.
// Register in init() blocks from text.go / json.go.
var (
	LengthWriters = map[string]func(w io.Writer, p LengthPayload) error{}
	GCWriters     = map[string]func(w io.Writer, p GCPayload) error{}
	RecordWriters = map[string]func(w io.Writer, p RecordsPayload) error{}
	MatrixWriters = map[string]func(w io.Writer, p MatrixPayload) error{}
)

// Register helpers (idempotent last-wins)
func RegisterLength(format string, fn func(io.Writer, LengthPayload) error) { LengthWriters[format] = fn }
func RegisterGC(format string, fn func(io.Writer, GCPayload) error) { GCWriters[format] = fn }
func RegisterRecords(format string, fn func(io.Writer, RecordsPayload) error) { RecordWriters[format] = fn }
func RegisterMatrix(format string, fn func(io.Writer, MatrixPayload) error) { MatrixWriters[format] = fn }

// Dispatch helpers used by internal/app.
func WriteLength(format string, w io.Writer, p LengthPayload) error {
	fn, ok := LengthWriters[format]
	if !ok {
		return fmt.Errorf("unknown length format %q (no writer registered)", format)
	}
	return fn(w, p)
}
func WriteGC(format string, w io.Writer, p GCPayload) error {
	fn, ok := GCWriters[format]
	if !ok {
		return fmt.Errorf("unknown gc format %q (no writer registered)", format)
	}
	return fn(w, p)
}
func WriteRecords(format string, w io.Writer, p RecordsPayload) error {
	fn, ok := RecordWriters[format]
	if !ok {
		return fmt.Errorf("unknown record format %q (no writer registered)", format)
	}
	return fn(w, p)
}
func WriteMatrix(format string, w io.Writer, p MatrixPayload) error {
	fn, ok := MatrixWriters[format]
	if !ok {
		return fmt.Errorf("unknown matrix format %q (no writer registered)", format)
	}
	return fn(w, p)
}

// Formats lists the formats every payload kind supports.
func Formats() []string { return []string{FormatText, FormatJSON} }

// RecordFormats adds the streaming JSON-lines format, which only record
// listings support.
func RecordFormats() []string { return []string{FormatText, FormatJSON, FormatJSONL} }

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)
