package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeNone, "None"},
		{ModeLenientOrder, "LenientOrder"},
		{ModeIgnoreDefaults | ModeLenientOrder, "IgnoreDefaults|LenientOrder"},
		{ModeAll, "IgnoreDefaults|LenientDates|LenientOrder|LenientNumbers"},
		{ModeLenientDates | Mode(1<<5), "LenientDates|Mode(32)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.String())
		})
	}
}

func TestMode_Has(t *testing.T) {
	m := Combine(ModeIgnoreDefaults, ModeLenientOrder)

	assert.True(t, m.Has(ModeIgnoreDefaults))
	assert.True(t, m.Has(ModeLenientOrder))
	assert.True(t, m.Has(ModeIgnoreDefaults|ModeLenientOrder))
	assert.False(t, m.Has(ModeLenientDates))
	assert.True(t, m.Has(ModeNone))
}

func TestFromModes(t *testing.T) {
	o := FromModes(ModeLenientOrder, ModeLenientNumbers)

	assert.Equal(t, Options{LenientOrder: true, LenientNumbers: true}, o)
	assert.Equal(t, ModeLenientOrder|ModeLenientNumbers, o.Modes())
	assert.Equal(t, Options{}, FromModes())
	assert.Equal(t, Mode(ModeAll), FromModes(ModeAll).Modes())
}
