package refeq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflection-assert/options"
)

// diffCase expects no difference when message is empty.
type diffCase struct {
	name        string
	left, right any
	opts        options.Options
	message     string
	path        string
}

func runDiffCases(t *testing.T, cases []diffCase) {
	t.Helper()

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FindDifference(tt.left, tt.right, tt.opts)
			require.NoError(t, err)

			if tt.message == "" {
				assert.Nil(t, d, "unexpected difference: %v", d)

				return
			}

			require.NotNil(t, d, "difference expected")
			assert.Equal(t, tt.message, d.Message())

			path := tt.path
			if path == "" {
				path = TopLevel
			}

			assert.Equal(t, path, d.FieldPathString())
		})
	}
}

var (
	optionsStrict         = options.Options{}
	optionsLenientOrder   = options.FromModes(options.ModeLenientOrder)
	optionsIgnoreDefaults = options.FromModes(options.ModeIgnoreDefaults)
)

var optionsLenientNumbers = options.FromModes(options.ModeLenientNumbers)
