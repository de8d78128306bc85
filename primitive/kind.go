package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named type over any integer, float, boolean or string
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsComplex() bool {
	switch k {
	default:
		return false
	case KindComplex64, KindComplex128:
		return true
	}
}

// IsBuiltin reports whether the kind stands for an unnamed predeclared type.
func (k KindEnum) IsBuiltin() bool {
	return k.IsNumber() || k.IsComplex() || k == KindBool || k == KindString
}

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check if true primitive type
	switch rtype {
	case reflect.TypeOf(int(0)):
		return KindInt
	case reflect.TypeOf(int8(0)):
		return KindInt8
	case reflect.TypeOf(int16(0)):
		return KindInt16
	case reflect.TypeOf(int32(0)):
		return KindInt32
	case reflect.TypeOf(int64(0)):
		return KindInt64
	case reflect.TypeOf(uint(0)):
		return KindUint
	case reflect.TypeOf(uint8(0)):
		return KindUint8
	case reflect.TypeOf(uint16(0)):
		return KindUint16
	case reflect.TypeOf(uint32(0)):
		return KindUint32
	case reflect.TypeOf(uint64(0)):
		return KindUint64
	case reflect.TypeOf(uintptr(0)):
		return KindUintptr
	case reflect.TypeOf(float32(0)):
		return KindFloat32
	case reflect.TypeOf(float64(0)):
		return KindFloat64
	case reflect.TypeOf(complex64(0)):
		return KindComplex64
	case reflect.TypeOf(complex128(0)):
		return KindComplex128
	case reflect.TypeOf(false):
		return KindBool
	case reflect.TypeOf(""):
		return KindString
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	}

	// check if it's a primitive enum type
	if IsNumericKind(rtype.Kind()) {
		return KindPrimitiveEnum
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool, reflect.String:
		return KindPrimitiveEnum
	}
}

// IsNumericKind reports whether values of kind k can be coerced to float64.
func IsNumericKind(k reflect.Kind) bool {
	return IsSignedKind(k) || IsUnsignedKind(k) || IsFloatKind(k)
}

func IsSignedKind(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
}

func IsUnsignedKind(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
}

func IsFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// IsTime reports whether t is time.Time or a pointer to it.
func IsTime(t reflect.Type) bool {
	if t == nil {
		return false
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t == timeType
}
