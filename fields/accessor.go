package fields

import (
	"fmt"
	"reflect"
)

// Accessor reads one field of a *T. It is the building block of the
// registration code emitted by refeq-gen.
type Accessor[T any] struct {
	Name string
	Get  func(*T) any
	// Embedded is implied when the field is declared as an embedded struct.
	Embedded  bool
	Transient bool
}

// RegisterAccessors registers a descriptor for T built from accessors.
// Declared field types are resolved from T by name; an unknown name is an
// error.
func RegisterAccessors[T any](r *Registry, accessors ...Accessor[T]) error {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v is not a struct type", ErrIntrospection, t)
	}

	d := Descriptor{Type: t, Fields: make([]Field, 0, len(accessors))}

	for _, a := range accessors {
		if a.Get == nil {
			return fmt.Errorf("%w: %s.%s has no accessor", ErrIntrospection, t, a.Name)
		}

		sf, ok := directField(t, a.Name)
		if !ok {
			return fmt.Errorf("%w: %s has no field %q", ErrIntrospection, t, a.Name)
		}

		d.Fields = append(d.Fields, Field{
			Name:      a.Name,
			Type:      sf.Type,
			Get:       accessorGetter(t, sf.Type, a.Name, a.Get),
			Transient: a.Transient,
			Embedded:  a.Embedded || (sf.Anonymous && embeddedStruct(sf.Type)),
		})
	}

	return r.Register(d)
}

// MustRegister is like RegisterAccessors but panics on error. It is meant
// for package initialization.
func MustRegister[T any](r *Registry, accessors ...Accessor[T]) {
	if err := RegisterAccessors(r, accessors...); err != nil {
		panic(err)
	}
}

func directField(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := range t.NumField() {
		if sf := t.Field(i); sf.Name == name {
			return sf, true
		}
	}

	return reflect.StructField{}, false
}

func accessorGetter[T any](t, declared reflect.Type, name string, get func(*T) any) Getter {
	return func(owner reflect.Value) (out reflect.Value, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: accessor of %s.%s panicked: %v", ErrIntrospection, t, name, r)
			}
		}()

		if !owner.IsValid() || owner.Type() != t {
			return reflect.Value{}, fmt.Errorf("%w: owner of %s.%s has type %v",
				ErrIntrospection, t, name, typeOf(owner))
		}

		owner = Readable(owner)
		if !owner.CanInterface() {
			return reflect.Value{}, fmt.Errorf("%w: owner of %s.%s is not readable", ErrIntrospection, t, name)
		}

		var p *T
		if owner.CanAddr() {
			p = owner.Addr().Interface().(*T)
		} else {
			p = new(T)
			reflect.ValueOf(p).Elem().Set(owner)
		}

		res := get(p)

		out = reflect.New(declared).Elem()
		if res == nil {
			return out, nil
		}

		rv := reflect.ValueOf(res)
		if !rv.Type().AssignableTo(declared) {
			return reflect.Value{}, fmt.Errorf("%w: accessor of %s.%s returned %v, want %v",
				ErrIntrospection, t, name, rv.Type(), declared)
		}

		out.Set(rv)

		return out, nil
	}
}
