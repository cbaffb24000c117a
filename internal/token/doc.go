// Package token defines lexical token kinds and trivia for the Gaia compiler.
// Invariants:
//   - Token.Text is the exact source slice for Span (literals round-trip).
//   - Token.LineBreak is true when the trivia skipped before the token
//     contained a newline; the parser uses it for semicolon insertion.
//   - Primitive type names (int, float, char, string, bool, void) are keywords.
//   - The keyword table is read-only after package init.
package token
