package primitive

import (
	"reflect"
)

// ToFloat64 coerces any integer or floating point value to float64.
// The second result is false for values of any other kind.
func ToFloat64(v reflect.Value) (float64, bool) {
	if !v.IsValid() {
		return 0, false
	}

	switch k := v.Kind(); {
	case IsSignedKind(k):
		return float64(v.Int()), true
	case IsUnsignedKind(k):
		return float64(v.Uint()), true
	case IsFloatKind(k):
		return v.Float(), true
	default:
		return 0, false
	}
}

// IsNil reports whether v is absent: an invalid value or a nil reference.
func IsNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// IsDefault reports whether v holds the default value of its type: absent,
// zero, or an empty string, slice or map.
func IsDefault(v reflect.Value) bool {
	if IsNil(v) {
		return true
	}

	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

// Indirect unwraps interface values until a concrete value or an invalid
// value is reached. Pointers are left alone.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	return v
}
