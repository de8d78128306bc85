package options

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"reflection-assert/internal/match"
)

var (
	// ErrUnknownOption is returned for an option key that is not recognized.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidOption is returned for a recognized key holding a value of
	// the wrong type.
	ErrInvalidOption = errors.New("invalid option value")
)

// Recognized option keys.
const (
	KeyIgnoreDefaults   = "ignoreDefaults"
	KeyLenientDates     = "lenientDates"
	KeyLenientOrder     = "lenientOrder"
	KeyLenientNumbers   = "lenientNumbers"
	KeyPlatformPackages = "platformPackages"
)

// Keys lists every recognized option key.
func Keys() []string {
	return []string{KeyIgnoreDefaults, KeyLenientDates, KeyLenientOrder, KeyLenientNumbers, KeyPlatformPackages}
}

// Options configures a comparison. The zero value is strict comparison with
// the default platform boundary.
type Options struct {
	IgnoreDefaults bool
	LenientDates   bool
	LenientOrder   bool
	LenientNumbers bool

	// PlatformPackages lists import path prefixes of packages treated as
	// platform code: their embedded structs are not walked. Nil selects the
	// default list of the fields package.
	PlatformPackages []string
}

// FromModes builds options with the given leniency flags set.
func FromModes(modes ...Mode) Options {
	m := Combine(modes...)

	return Options{
		IgnoreDefaults: m.Has(ModeIgnoreDefaults),
		LenientDates:   m.Has(ModeLenientDates),
		LenientOrder:   m.Has(ModeLenientOrder),
		LenientNumbers: m.Has(ModeLenientNumbers),
	}
}

// Modes returns the leniency flags of o.
func (o Options) Modes() Mode {
	var m Mode

	if o.IgnoreDefaults {
		m |= ModeIgnoreDefaults
	}

	if o.LenientDates {
		m |= ModeLenientDates
	}

	if o.LenientOrder {
		m |= ModeLenientOrder
	}

	if o.LenientNumbers {
		m |= ModeLenientNumbers
	}

	return m
}

// Equal reports whether both option sets select the same comparison.
func (o Options) Equal(other Options) bool {
	return o.Modes() == other.Modes() && slices.Equal(o.PlatformPackages, other.PlatformPackages)
}

// FromMap builds options from an untyped key/value map. Flags must be
// booleans and platformPackages a list of strings. Keys are checked in
// sorted order so the reported error is deterministic.
func FromMap(m map[string]any) (Options, error) {
	var o Options

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		v := m[k]

		var err error

		switch k {
		case KeyIgnoreDefaults:
			o.IgnoreDefaults, err = boolValue(k, v)
		case KeyLenientDates:
			o.LenientDates, err = boolValue(k, v)
		case KeyLenientOrder:
			o.LenientOrder, err = boolValue(k, v)
		case KeyLenientNumbers:
			o.LenientNumbers, err = boolValue(k, v)
		case KeyPlatformPackages:
			o.PlatformPackages, err = stringsValue(k, v)
		default:
			err = unknownKey(k)
		}

		if err != nil {
			return Options{}, err
		}
	}

	return o, nil
}

func unknownKey(k string) error {
	if s := match.Suggest(k, Keys()); s != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownOption, k, s)
	}

	return fmt.Errorf("%w: %q", ErrUnknownOption, k)
}

func boolValue(k string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidOption, k, v)
	}

	return b, nil
}

func stringsValue(k string, v any) ([]string, error) {
	switch vv := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return slices.Clone(vv), nil
	case []any:
		out := make([]string, 0, len(vv))

		for i, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a string, got %T", ErrInvalidOption, k, i, item)
			}

			out = append(out, s)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a list of strings, got %T", ErrInvalidOption, k, v)
	}
}
