package refeq

import (
	"reflect"

	"reflection-assert/primitive"
)

// IgnoreDefaultsComparator treats a right value holding the default of its
// type (nil, zero, empty string, slice or map) as equal to anything.
type IgnoreDefaultsComparator struct{}

func (IgnoreDefaultsComparator) Compare(c *Comparison) (Result, error) {
	if primitive.IsDefault(c.Right()) {
		return Equal(), nil
	}

	return Forward(), nil
}

// LenientDatesComparator only checks that dates are present on both sides
// or on neither; the instants themselves are not compared.
type LenientDatesComparator struct{}

func (LenientDatesComparator) Compare(c *Comparison) (Result, error) {
	l, r := c.Left(), c.Right()

	lDate, rDate := isDate(l), isDate(r)
	lNil, rNil := primitive.IsNil(l), primitive.IsNil(r)

	switch {
	case lDate && rDate && !lNil && !rNil:
		return Equal(), nil
	case (lDate && !lNil && rNil) || (rDate && !rNil && lNil):
		return c.Differ("Lenient dates, but not both value or both null."), nil
	default:
		return Forward(), nil
	}
}

func isDate(v reflect.Value) bool {
	return v.IsValid() && primitive.IsTime(v.Type())
}

// LenientNumbersComparator compares any two numbers by value, including
// values of named numeric types.
type LenientNumbersComparator struct{}

func (LenientNumbersComparator) Compare(c *Comparison) (Result, error) {
	l, r := c.Left(), c.Right()
	if !l.IsValid() || !r.IsValid() || !primitive.IsNumericKind(l.Kind()) || !primitive.IsNumericKind(r.Kind()) {
		return Forward(), nil
	}

	if numbersEqual(l, r) {
		return Equal(), nil
	}

	return c.Differ("Different primitive values."), nil
}
