// Package refeq compares two arbitrary Go values field by field and reports
// the first difference found.
//
// Comparison is delegated to an ordered chain of comparators. Every pair of
// values, the top-level pair as well as each nested field, element or map
// entry, is offered to the chain from its start; the first comparator that
// resolves the pair decides the outcome. Leniency comparators selected by
// options.Options are placed before the default chain:
//
//	LenientDates, IgnoreDefaults, LenientNumbers,
//	SimpleCases, Pointer, Collection, Map, Fields
//
// Reference pairs (pointers, maps, non-empty slices) are remembered for the
// duration of one call, which makes cyclic values compare in finite time.
//
// Structural mismatches are reported as a *Difference. Errors are reserved
// for usage faults such as an accessor that cannot read a field.
package refeq
