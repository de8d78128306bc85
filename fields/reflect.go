package fields

import (
	"fmt"
	"reflect"
	"unsafe"
)

// derive builds a descriptor from the fields of struct type t, unexported
// ones included. Blank fields are skipped.
func derive(t reflect.Type) (Descriptor, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return Descriptor{}, fmt.Errorf("%w: %v is not a struct type", ErrIntrospection, t)
	}

	d := Descriptor{Type: t, Fields: make([]Field, 0, t.NumField())}

	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}

		d.Fields = append(d.Fields, Field{
			Name:      sf.Name,
			Type:      sf.Type,
			Get:       fieldGetter(t, i),
			Transient: sf.Tag.Get(TagName) == "-",
			Embedded:  sf.Anonymous && embeddedStruct(sf.Type),
		})
	}

	return d, nil
}

func fieldGetter(t reflect.Type, index int) Getter {
	return func(owner reflect.Value) (reflect.Value, error) {
		if !owner.IsValid() || owner.Type() != t {
			return reflect.Value{}, fmt.Errorf("%w: owner of %s.%s has type %v",
				ErrIntrospection, t, t.Field(index).Name, typeOf(owner))
		}

		return Readable(owner.Field(index)), nil
	}
}

// Readable returns a value that can be passed to Interface. Values obtained
// through unexported fields are rebuilt from their address; a value that
// is neither addressable nor exported is returned as is.
func Readable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanInterface() || !v.CanAddr() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// Addressable returns v itself when it is addressable and a readable copy
// otherwise, so that the fields of a struct value can be read by address.
func Addressable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanAddr() {
		return Readable(v)
	}

	if !v.CanInterface() {
		return v
	}

	p := reflect.New(v.Type()).Elem()
	p.Set(v)

	return p
}

func typeOf(v reflect.Value) reflect.Type {
	if !v.IsValid() {
		return nil
	}

	return v.Type()
}
