package property

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

var (
	// ErrNotFound is returned when a segment names no readable field, entry
	// or element.
	ErrNotFound = errors.New("property not found")
	// ErrNil is returned when a nil value is met before the path ends.
	ErrNil = errors.New("nil value in property path")
)

// Get reads the property at path from v. A path with an Each segment
// returns a []any with one value per element.
func Get(v any, path Path) (any, error) {
	out, err := get(reflect.ValueOf(v), path.Segments, nil)
	if err != nil {
		return nil, err
	}

	if !out.IsValid() {
		return nil, nil
	}

	return out.Interface(), nil
}

// GetString parses path and reads it from v.
func GetString(v any, path string) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	return Get(v, p)
}

func get(v reflect.Value, segments []Segment, done []Segment) (reflect.Value, error) {
	for i, s := range segments {
		at := Path{Segments: slices.Concat(done, segments[:i+1])}

		var err error

		v, err = indirect(v, at)
		if err != nil {
			return reflect.Value{}, err
		}

		switch {
		case s.Each:
			return each(v, segments[i+1:], at)
		case s.Index >= 0:
			v, err = index(v, s.Index, at)
		default:
			v, err = field(v, s.Name, at)
		}

		if err != nil {
			return reflect.Value{}, err
		}
	}

	return v, nil
}

func indirect(v reflect.Value, at Path) (reflect.Value, error) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			break
		}

		v = v.Elem()
	}

	if !v.IsValid() || ((v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil()) {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNil, at)
	}

	return v, nil
}

func each(v reflect.Value, rest []Segment, at Path) (reflect.Value, error) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return reflect.Value{}, fmt.Errorf("%w: %s is a %s, not a collection", ErrNotFound, at, v.Kind())
	}

	out := make([]any, 0, v.Len())

	for i := range v.Len() {
		elemAt := slices.Concat(at.Segments[:len(at.Segments)-1], []Segment{{Index: i}})

		ev, err := get(v.Index(i), rest, elemAt)
		if err != nil {
			return reflect.Value{}, err
		}

		if ev.IsValid() {
			out = append(out, ev.Interface())
		} else {
			out = append(out, nil)
		}
	}

	return reflect.ValueOf(out), nil
}

func index(v reflect.Value, i int, at Path) (reflect.Value, error) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return reflect.Value{}, fmt.Errorf("%w: %s is a %s, not a collection", ErrNotFound, at, v.Kind())
	}

	if i >= v.Len() {
		return reflect.Value{}, fmt.Errorf("%w: %s out of range, length %d", ErrNotFound, at, v.Len())
	}

	return v.Index(i), nil
}

func field(v reflect.Value, name string, at Path) (reflect.Value, error) {
	switch v.Kind() {
	case reflect.Struct:
		sf, ok := v.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			return reflect.Value{}, fmt.Errorf("%w: %s has no exported field %s", ErrNotFound, v.Type(), at)
		}

		// promoted fields may sit behind a nil embedded pointer
		fv, err := v.FieldByIndexErr(sf.Index)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrNil, at, err)
		}

		return fv, nil
	case reflect.Map:
		key, err := mapKey(v.Type().Key(), name)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrNotFound, at, err)
		}

		e := v.MapIndex(key)
		if !e.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: no entry %s", ErrNotFound, at)
		}

		return e, nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: cannot read %s from a %s", ErrNotFound, at, v.Kind())
	}
}

func mapKey(t reflect.Type, name string) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(name).Convert(t), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(name, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(n).Convert(t), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(name, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(n).Convert(t), nil
	case reflect.Interface:
		return reflect.ValueOf(name), nil
	default:
		return reflect.Value{}, fmt.Errorf("unsupported key type %s", t)
	}
}
