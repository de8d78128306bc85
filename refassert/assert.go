package refassert

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"

	"reflection-assert/internal/property"
	"reflection-assert/options"
	"reflection-assert/refeq"
)

// TestingT is the subset of *testing.T used to report failures.
type TestingT = assert.TestingT

type tHelper interface {
	Helper()
}

// lenient are the modes of the Lenient assertions.
var lenient = []options.Mode{options.ModeLenientOrder, options.ModeIgnoreDefaults}

// ReflectionEquals asserts that expected and actual are equivalent under the
// given modes, strictly when none are given.
func ReflectionEquals(t TestingT, expected, actual any, modes ...options.Mode) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return New(t, modes...).Equals(expected, actual)
}

// LenientEquals asserts equivalence ignoring collection order and the
// fields left at their zero value in actual.
func LenientEquals(t TestingT, expected, actual any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return New(t, lenient...).Equals(expected, actual)
}

// PropertyReflectionEquals asserts that the property at path in actual is
// equivalent to expected.
func PropertyReflectionEquals(t TestingT, path string, expected, actual any, modes ...options.Mode) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return New(t, modes...).PropertyEquals(path, expected, actual)
}

// PropertyLenientEquals is PropertyReflectionEquals with the lenient modes.
func PropertyLenientEquals(t TestingT, path string, expected, actual any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return New(t, lenient...).PropertyEquals(path, expected, actual)
}

// PropertiesReflectionEquals asserts that the property at path, read from
// every element of the actualCollection, is equivalent to expectedValues.
func PropertiesReflectionEquals(t TestingT, path string, expectedValues, actualCollection any, modes ...options.Mode) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return New(t, modes...).PropertiesEquals(path, expectedValues, actualCollection)
}

// PropertiesLenientEquals is PropertiesReflectionEquals with the lenient
// modes, the order of the collection does not matter.
func PropertiesLenientEquals(t TestingT, path string, expectedValues, actualCollection any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return New(t, lenient...).PropertiesEquals(path, expectedValues, actualCollection)
}

// Assertions runs assertions with fixed options against one TestingT.
type Assertions struct {
	t       TestingT
	opts    options.Options
	message string
}

// New returns assertions for t using modes.
func New(t TestingT, modes ...options.Mode) *Assertions {
	return &Assertions{t: t, opts: options.FromModes(modes...)}
}

// WithOptions returns a copy of a using opts.
func (a *Assertions) WithOptions(opts options.Options) *Assertions {
	c := *a
	c.opts = opts

	return &c
}

// WithMessage returns a copy of a that starts every failure with the
// formatted message.
func (a *Assertions) WithMessage(format string, args ...any) *Assertions {
	c := *a
	c.message = fmt.Sprintf(format, args...)

	return &c
}

// Equals asserts that expected and actual are equivalent.
func (a *Assertions) Equals(expected, actual any) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	return a.compare(expected, actual, "")
}

// PropertyEquals asserts that the property at path in actual is equivalent
// to expected.
func (a *Assertions) PropertyEquals(path string, expected, actual any) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	value, err := property.GetString(actual, path)
	if err != nil {
		return a.fail(fmt.Sprintf("Property %q could not be read: %v", path, err))
	}

	return a.compare(expected, value, path)
}

// PropertiesEquals asserts that the property at path, read from every
// element of actualCollection, is equivalent to expectedValues.
func (a *Assertions) PropertiesEquals(path string, expectedValues, actualCollection any) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	p, err := property.ParsePath(path)
	if err != nil {
		return a.fail(fmt.Sprintf("Property %q could not be read: %v", path, err))
	}

	values, err := property.Get(actualCollection, p.Each())
	if err != nil {
		return a.fail(fmt.Sprintf("Property %q could not be read: %v", path, err))
	}

	return a.compare(expectedValues, values, path)
}

func (a *Assertions) compare(expected, actual any, path string) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	d, err := refeq.FindDifference(expected, actual, a.opts)
	if err != nil {
		return a.fail(fmt.Sprintf("Comparison could not be completed: %v", err))
	}

	if d == nil {
		return true
	}

	return a.fail(failureMessage(d, expected, actual, path))
}

func (a *Assertions) fail(msg string) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	if a.message != "" {
		msg = a.message + "\n" + msg
	}

	return assert.Fail(a.t, msg)
}

func failureMessage(d *refeq.Difference, expected, actual any, path string) string {
	var b strings.Builder

	if path != "" {
		fmt.Fprintf(&b, "Property: %s\n", path)
	}

	fmt.Fprintf(&b, "%s\nField: %s expected: <%s> but was: <%s>",
		d.Message(), d.FieldPathString(),
		refeq.FormatValue(d.LeftValue()), refeq.FormatValue(d.RightValue()))

	if diff := Diff(expected, actual); diff != "" {
		b.WriteString("\n\nDiff:\n")
		b.WriteString(diff)
	}

	return b.String()
}

// Diff renders a unified diff of the dumps of expected and actual, empty
// when both dumps are identical.
func Diff(expected, actual any) string {
	text, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(refeq.DumpValue(expected)),
		B:        difflib.SplitLines(refeq.DumpValue(actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})

	return text
}
