package options

import (
	"strconv"
	"strings"
)

// Mode is a set of leniency flags accepted by the variadic assertion and
// matcher helpers.
type Mode int

const (
	ModeIgnoreDefaults Mode = 1 << iota // right-hand default values (nil, zero, empty) match anything
	ModeLenientDates                    // two dates are equal when both are present, the instant is not compared
	ModeLenientOrder                    // slices and arrays are compared as multisets
	ModeLenientNumbers                  // any two numbers, named types included, are compared as float64

	ModeAll  = (1 << iota) - 1 // all modes combined
	ModeNone = 0               // strict comparison
)

var modeNames = []struct {
	mode Mode
	name string
}{
	{ModeIgnoreDefaults, "IgnoreDefaults"},
	{ModeLenientDates, "LenientDates"},
	{ModeLenientOrder, "LenientOrder"},
	{ModeLenientNumbers, "LenientNumbers"},
}

// Has reports whether all flags of other are set in m.
func (m Mode) Has(other Mode) bool {
	return m&other == other
}

func (m Mode) String() string {
	if m == ModeNone {
		return "None"
	}

	var parts []string

	for _, mn := range modeNames {
		if m.Has(mn.mode) {
			parts = append(parts, mn.name)
			m &^= mn.mode
		}
	}

	if m != 0 {
		parts = append(parts, "Mode("+strconv.Itoa(int(m))+")")
	}

	return strings.Join(parts, "|")
}

// Combine merges a list of modes into one set.
func Combine(modes ...Mode) Mode {
	var out Mode
	for _, m := range modes {
		out |= m
	}

	return out
}
