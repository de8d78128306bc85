package refeq

import (
	"reflect"

	"reflection-assert/primitive"
)

//go:generate go tool stringer -type=DispatchEnum -output=dispatch_string.go

// DispatchEnum classifies a pair of values by the comparator family able to
// handle both sides.
type DispatchEnum int

const (
	DispatchUnknown    DispatchEnum = iota
	DispatchAbsent                  // at least one side is nil
	DispatchPrimitive               // numbers, strings, booleans, enums, time values
	DispatchPointer                 // two non-nil pointers
	DispatchCollection              // slices and arrays, in any combination
	DispatchMap
	DispatchStruct
)

// Dispatch classifies the pair l, r. Interface values must be unwrapped
// beforehand.
func Dispatch(l, r reflect.Value) DispatchEnum {
	if primitive.IsNil(l) || primitive.IsNil(r) {
		return DispatchAbsent
	}

	lk, rk := l.Kind(), r.Kind()

	if isCollection(lk) && isCollection(rk) {
		return DispatchCollection
	}

	if lk == reflect.Map && rk == reflect.Map {
		return DispatchMap
	}

	if lk == reflect.Pointer && rk == reflect.Pointer {
		return DispatchPointer
	}

	if primitive.FromReflectType(l.Type()) != 0 && primitive.FromReflectType(r.Type()) != 0 {
		return DispatchPrimitive
	}

	if lk == reflect.Struct && rk == reflect.Struct {
		return DispatchStruct
	}

	return DispatchUnknown
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}
