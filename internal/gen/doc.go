// Package gen emits field accessor registrations for refeq.
//
// For every analyzed package it writes one zz_refeq_fields.go whose init
// function registers a fields.Accessor per struct field with
// fields.Default, so struct comparisons read fields through plain Go code
// instead of reflection and may cover unexported fields.
//
// Generation uses text/template + go/format. Output is deterministic:
// types are sorted by name and fields keep their declaration order.
package gen
