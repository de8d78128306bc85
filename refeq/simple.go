package refeq

import (
	"math"
	"reflect"

	"reflection-assert/fields"
	"reflection-assert/primitive"
)

// SimpleCasesComparator resolves pairs that never need recursion:
//
//  1. the same reference, or both values absent: equal;
//  2. exactly one value absent;
//  3. two unnamed builtin numbers, compared as float64 across types;
//  4. two values of the same builtin string, bool or complex type, or of a
//     platform type with an Equal or Cmp method, compared by that equality;
//  5. two values of the same named basic type, compared with ==.
//
// Everything else is forwarded.
type SimpleCasesComparator struct{}

func (SimpleCasesComparator) Compare(c *Comparison) (Result, error) {
	l, r := c.Left(), c.Right()

	lNil, rNil := primitive.IsNil(l), primitive.IsNil(r)

	switch {
	case lNil && rNil:
		return Equal(), nil
	case lNil:
		return c.Differ("Left value null."), nil
	case rNil:
		return c.Differ("Right value null."), nil
	case identical(l, r):
		return Equal(), nil
	}

	lt, rt := l.Type(), r.Type()
	lKind, rKind := primitive.FromReflectType(lt), primitive.FromReflectType(rt)

	if lKind.IsNumber() && rKind.IsNumber() {
		if numbersEqual(l, r) {
			return Equal(), nil
		}

		return c.Differ("Different primitive values."), nil
	}

	if lt != rt {
		return Forward(), nil
	}

	if lKind.IsBuiltin() || lKind == primitive.KindDuration {
		if l.Equal(r) {
			return Equal(), nil
		}

		return c.Differ("Different values."), nil
	}

	if c.Engine().Registry().IsPlatformType(lt) {
		if eq, ok := platformEqual(l, r); ok {
			if eq {
				return Equal(), nil
			}

			return c.Differ("Different values."), nil
		}
	}

	if lKind == primitive.KindPrimitiveEnum {
		if l.Equal(r) || bothNaN(l, r) {
			return Equal(), nil
		}

		return c.Differ("Different enum values."), nil
	}

	return Forward(), nil
}

// identical reports whether both values refer to the same memory with the
// same type. Functions are identical when they share their code pointer.
func identical(l, r reflect.Value) bool {
	if l.Type() != r.Type() {
		return false
	}

	switch l.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return l.Pointer() == r.Pointer()
	case reflect.Slice:
		return l.Pointer() == r.Pointer() && l.Len() == r.Len()
	default:
		return false
	}
}

// numbersEqual compares two numeric values coerced to float64, so integer
// and floating point types interoperate. Two NaNs are equal.
func numbersEqual(l, r reflect.Value) bool {
	lf, lok := primitive.ToFloat64(l)
	rf, rok := primitive.ToFloat64(r)

	if !lok || !rok {
		return false
	}

	return lf == rf || (math.IsNaN(lf) && math.IsNaN(rf))
}

func bothNaN(l, r reflect.Value) bool {
	if !primitive.IsFloatKind(l.Kind()) {
		return false
	}

	return math.IsNaN(l.Float()) && math.IsNaN(r.Float())
}

var (
	boolType = reflect.TypeFor[bool]()
	intKinds = []reflect.Kind{reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64}
)

// platformEqual compares l and r of the same type through an
// Equal(T) bool or Cmp(T) int method declared on T or *T. ok is false when
// there is no such method or when the values were read through unexported
// fields and cannot be addressed.
func platformEqual(l, r reflect.Value) (equal, ok bool) {
	l, r = fields.Readable(l), fields.Readable(r)
	if !l.CanInterface() || !r.CanInterface() {
		return false, false
	}

	t := l.Type()

	for _, recv := range []reflect.Type{t, reflect.PointerTo(t)} {
		for _, name := range []string{"Equal", "Cmp"} {
			m, found := recv.MethodByName(name)
			if !found || !equalitySignature(m.Type, recv, name) {
				continue
			}

			lv, rv := l, r
			if recv != t {
				lv, rv = fields.Addressable(l).Addr(), fields.Addressable(r).Addr()
			}

			out := m.Func.Call([]reflect.Value{lv, rv})[0]
			if name == "Equal" {
				return out.Bool(), true
			}

			return out.Int() == 0, true
		}
	}

	return false, false
}

// equalitySignature checks func(recv, recv) bool for Equal and
// func(recv, recv) int for Cmp.
func equalitySignature(ft, recv reflect.Type, name string) bool {
	if ft.NumIn() != 2 || ft.In(1) != recv || ft.NumOut() != 1 {
		return false
	}

	out := ft.Out(0)

	if name == "Equal" {
		return out == boolType
	}

	for _, k := range intKinds {
		if out.Kind() == k {
			return true
		}
	}

	return false
}
