package fields

import (
	"errors"
	"reflect"
)

// ErrIntrospection reports a fault while reading a field that should be
// readable: a panicking or mistyped accessor, or a descriptor requested for
// an unsupported type.
var ErrIntrospection = errors.New("field introspection failed")

// TagName is the struct tag key read by reflection derivation. The only
// recognized value is "-", marking the field transient.
const TagName = "refeq"

// Getter reads one field from an owner struct value.
type Getter func(owner reflect.Value) (reflect.Value, error)

// Field describes one field of a struct type.
type Field struct {
	Name string
	// Type is the declared type of the field. Values returned by Get always
	// have this type, interface typed fields included.
	Type reflect.Type
	Get  Getter
	// Transient fields are never compared.
	Transient bool
	// Embedded marks an embedded struct, walked as part of its owner.
	Embedded bool
}

// Descriptor lists the fields of a struct type in declaration order.
type Descriptor struct {
	Type   reflect.Type
	Fields []Field
}

// Own returns the non-embedded, non-transient fields.
func (d Descriptor) Own() []Field {
	return d.filter(func(f Field) bool { return !f.Embedded })
}

// Embeds returns the embedded, non-transient struct fields.
func (d Descriptor) Embeds() []Field {
	return d.filter(func(f Field) bool { return f.Embedded })
}

// Transient returns the names of the transient fields.
func (d Descriptor) Transient() []string {
	var out []string

	for _, f := range d.Fields {
		if f.Transient {
			out = append(out, f.Name)
		}
	}

	return out
}

// Field returns the field with the given name.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

func (d Descriptor) filter(keep func(Field) bool) []Field {
	out := make([]Field, 0, len(d.Fields))

	for _, f := range d.Fields {
		if !f.Transient && keep(f) {
			out = append(out, f)
		}
	}

	return out
}

func embeddedStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}
