package refeq

import (
	"fmt"
	"slices"
	"strings"
)

// TopLevel is the field path rendered for a difference on the compared
// values themselves.
const TopLevel = "<top-level>"

// Difference describes the first mismatch found by a comparison.
type Difference struct {
	message string
	left    any
	right   any
	path    []string
}

// NewDifference returns a difference located at path.
func NewDifference(message string, left, right any, path []string) *Difference {
	return &Difference{
		message: message,
		left:    left,
		right:   right,
		path:    slices.Clone(path),
	}
}

// Message describes the mismatch.
func (d *Difference) Message() string { return d.message }

// LeftValue is the left (expected) value at the difference location.
func (d *Difference) LeftValue() any { return d.left }

// RightValue is the right (actual) value at the difference location.
func (d *Difference) RightValue() any { return d.right }

// FieldPath returns the path segments leading to the difference: field
// names, decimal indices or map keys. It is empty for the top level.
func (d *Difference) FieldPath() []string { return slices.Clone(d.path) }

// FieldPathString joins the field path with dots.
func (d *Difference) FieldPathString() string {
	if len(d.path) == 0 {
		return TopLevel
	}

	return strings.Join(d.path, ".")
}

func (d *Difference) String() string {
	return fmt.Sprintf("%s: %s left: <%s> right: <%s>",
		d.FieldPathString(), d.message, FormatValue(d.left), FormatValue(d.right))
}
