// Package diagnostic provides structured warnings, errors, and notes
// collected while refeq-gen builds field accessors.
//
// Key capabilities:
//   - Skipped unexported field warnings
//   - Transient field notes
//   - Unknown type names with a suggested spelling
//   - Types left without accessors (no fields, type parameters)
package diagnostic
