// Package report turns computed statistics into serialized outputs.
//
// Design:
//   • Report owns all presentation knowledge (text lines, JSON, pretty tables).
//   • The core packages stay domain-only; internal/app stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package report
