package refeq

import (
	"reflect"

	"reflection-assert/fields"
	"reflection-assert/primitive"
)

// FieldsComparator is the fallback of the chain and resolves every pair it
// receives. Values must have identical types. Structs are compared field by
// field using the descriptors of the engine registry: own fields first, then
// embedded structs declared outside the platform boundary. Other values are
// compared with == when their type allows it.
type FieldsComparator struct{}

func (FieldsComparator) Compare(c *Comparison) (Result, error) {
	l, r := c.Left(), c.Right()

	if !l.IsValid() || !r.IsValid() {
		if l.IsValid() == r.IsValid() {
			return Equal(), nil
		}

		return c.Differ("Different values."), nil
	}

	if l.Type() != r.Type() {
		return c.Differ("Different types. Left: %s, right: %s.", l.Type(), r.Type()), nil
	}

	if l.Kind() == reflect.Struct {
		reg := c.Engine().Registry()

		if reg.IsPlatformType(l.Type()) && l.Type().Comparable() {
			return compareComparable(c, l, r), nil
		}

		d, err := compareStruct(c, reg, l, r)
		if err != nil {
			return Result{}, err
		}

		return Resolved(d), nil
	}

	if l.Type().Comparable() {
		return compareComparable(c, l, r), nil
	}

	return c.Differ("Different values."), nil
}

func compareComparable(c *Comparison, l, r reflect.Value) Result {
	if safeEqual(l, r) {
		return Equal()
	}

	return c.Differ("Different values.")
}

// safeEqual is l == r, false when the dynamic values are not comparable.
func safeEqual(l, r reflect.Value) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return l.Equal(r)
}

func compareStruct(c *Comparison, reg *fields.Registry, l, r reflect.Value) (*Difference, error) {
	desc, _, err := reg.Lookup(l.Type())
	if err != nil {
		return nil, err
	}

	// fields are read by address, unexported ones included
	l, r = fields.Addressable(l), fields.Addressable(r)

	ignoreDefaults := c.Engine().Options().IgnoreDefaults

	for _, f := range desc.Own() {
		lv, rv, err := read(f, l, r)
		if err != nil {
			return nil, err
		}

		if ignoreDefaults && primitive.IsDefault(rv) {
			continue
		}

		c.PushPath(f.Name)

		d, err := c.RecurseSamePath(lv, rv)

		c.PopPath()

		if err != nil || d != nil {
			return d, err
		}
	}

	for _, f := range desc.Embeds() {
		if reg.IsPlatformType(f.Type) {
			continue
		}

		lv, rv, err := read(f, l, r)
		if err != nil {
			return nil, err
		}

		// embedded fields are part of the owner, no path segment
		d, err := c.RecurseSamePath(lv, rv)
		if err != nil || d != nil {
			return d, err
		}
	}

	return nil, nil
}

func read(f fields.Field, l, r reflect.Value) (reflect.Value, reflect.Value, error) {
	lv, err := f.Get(l)
	if err != nil {
		return reflect.Value{}, reflect.Value{}, err
	}

	rv, err := f.Get(r)
	if err != nil {
		return reflect.Value{}, reflect.Value{}, err
	}

	return lv, rv, nil
}
