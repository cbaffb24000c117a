// Package diag defines the diagnostic model shared by the scanner, the parser
// and the checker.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     each phase.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//   - Convert the first error of a compilation unit into a Go error whose text
//     is "<line>,<column>: <message>." with 1-based positions.
//
// # Scope
//
// Package diag performs no IO. Rendering lives in internal/diagfmt and
// orchestration in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: numeric identifier with a stable string form (codes.go). The
//     thousands digit selects the Phase: 1xxx scan, 2xxx parse, 3xxx check.
//   - Message: short human text without a trailing period.
//   - Primary: the source.Span the finding points at.
//   - Notes: optional secondary spans.
//
// # Failure policy
//
// Every phase stops at its first error. A Bag created with NewBag(1) keeps
// exactly that error; larger bags are accepted so that warnings and infos
// can accompany it.
package diag
