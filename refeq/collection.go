package refeq

import (
	"reflect"
	"strconv"
)

// CollectionComparator compares slices and arrays, a slice may be compared
// with an array. With LenientOrder both sides are treated as multisets.
type CollectionComparator struct {
	LenientOrder bool
}

func (cc CollectionComparator) Compare(c *Comparison) (Result, error) {
	l, r := c.Left(), c.Right()
	if Dispatch(l, r) != DispatchCollection {
		return Forward(), nil
	}

	if l.Len() != r.Len() {
		return c.Differ("Different collection sizes. Left size: %d, right size: %d.", l.Len(), r.Len()), nil
	}

	if cc.LenientOrder {
		return compareUnordered(c, l, r)
	}

	if bulkEqual(l, r) {
		return Equal(), nil
	}

	for i := range l.Len() {
		c.PushPath(strconv.Itoa(i))

		d, err := c.RecurseSamePath(l.Index(i), r.Index(i))

		c.PopPath()

		if err != nil {
			return Result{}, err
		}

		if d != nil {
			return Resolved(d), nil
		}
	}

	return Equal(), nil
}

// compareUnordered matches every left element with the first remaining right
// element equal to it. Matching runs on a fresh path, only the failure is
// reported at the collection path.
func compareUnordered(c *Comparison, l, r reflect.Value) (Result, error) {
	remaining := make([]reflect.Value, r.Len())
	for i := range remaining {
		remaining[i] = r.Index(i)
	}

	for i := range l.Len() {
		le := l.Index(i)

		found := -1

		for j, re := range remaining {
			d, err := c.RecurseNewPath(le, re)
			if err != nil {
				return Result{}, err
			}

			if d == nil {
				found = j

				break
			}
		}

		if found < 0 {
			return c.Differ("Left value not found in right collection. Left value: %s", formatReflect(le)), nil
		}

		remaining = append(remaining[:found], remaining[found+1:]...)
	}

	return Equal(), nil
}

// bulkEqual compares collections of the same type holding non-float basic
// elements without recursing. A false result only means the element walk is
// needed to locate the difference.
func bulkEqual(l, r reflect.Value) bool {
	if l.Type() != r.Type() || !bulkElem(l.Type().Elem()) {
		return false
	}

	for i := range l.Len() {
		if !l.Index(i).Equal(r.Index(i)) {
			return false
		}
	}

	return true
}

func bulkElem(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}
