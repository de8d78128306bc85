// Package argmatch provides argument matchers for mocks that compare
// arguments with the refeq engine instead of ==.
package argmatch

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/stretchr/testify/mock"

	"reflection-assert/options"
	"reflection-assert/primitive"
	"reflection-assert/refeq"
)

// Matcher decides whether an actual argument is acceptable.
type Matcher interface {
	Matches(actual any) bool
	String() string
}

// EqMatcher matches arguments equivalent to an expected value.
type EqMatcher struct {
	name     string
	expected any
	opts     options.Options

	mu   sync.Mutex
	err  error
	diff *refeq.Difference
}

// RefEq matches arguments equivalent to expected, ignoring the order of
// collections. Extra modes are added to the lenient order.
func RefEq(expected any, modes ...options.Mode) *EqMatcher {
	return &EqMatcher{
		name:     "refEq",
		expected: expected,
		opts:     options.FromModes(options.Combine(modes...) | options.ModeLenientOrder),
	}
}

// LenEq is RefEq that also ignores the zero valued fields of the argument.
func LenEq(expected any) *EqMatcher {
	return &EqMatcher{
		name:     "lenEq",
		expected: expected,
		opts:     options.FromModes(options.ModeLenientOrder, options.ModeIgnoreDefaults),
	}
}

// Matches compares actual with the expected value. A comparison that fails
// with an error does not match, the error is kept for Err.
func (m *EqMatcher) Matches(actual any) bool {
	d, err := refeq.FindDifference(m.expected, actual, m.opts)

	m.mu.Lock()
	m.err, m.diff = err, d
	m.mu.Unlock()

	return err == nil && d == nil
}

// Err returns the error of the last comparison, if any.
func (m *EqMatcher) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.err
}

// Difference returns the difference found by the last comparison, nil after
// a match.
func (m *EqMatcher) Difference() *refeq.Difference {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.diff
}

func (m *EqMatcher) String() string {
	return fmt.Sprintf("%s(%s)", m.name, refeq.FormatValue(m.expected))
}

type funcMatcher struct {
	name  string
	match func(actual any) bool
}

func (m funcMatcher) Matches(actual any) bool { return m.match(actual) }
func (m funcMatcher) String() string          { return m.name }

// Any matches every argument.
func Any() Matcher {
	return funcMatcher{name: "any()", match: func(any) bool { return true }}
}

// IsNil matches nil and nil references.
func IsNil() Matcher {
	return funcMatcher{name: "isNil()", match: func(actual any) bool {
		return primitive.IsNil(reflect.ValueOf(actual))
	}}
}

// NotNil matches everything IsNil does not.
func NotNil() Matcher {
	return funcMatcher{name: "notNil()", match: func(actual any) bool {
		return !primitive.IsNil(reflect.ValueOf(actual))
	}}
}

// MatchAll checks args against matchers pairwise. It returns the index of
// the first argument not matched and false, or -1 and true. A missing or
// extra argument fails at the shorter length.
func MatchAll(matchers []Matcher, args []any) (int, bool) {
	n := min(len(matchers), len(args))

	for i := range n {
		if !matchers[i].Matches(args[i]) {
			return i, false
		}
	}

	if len(matchers) != len(args) {
		return n, false
	}

	return -1, true
}

// Arg adapts m for the expectations of a testify mock.
//
//	repo.On("Save", argmatch.Arg(argmatch.LenEq(want))).Return(nil)
func Arg(m Matcher) any {
	return mock.MatchedBy(m.Matches)
}

// Args adapts every matcher with Arg.
func Args(matchers ...Matcher) []any {
	out := make([]any, len(matchers))
	for i, m := range matchers {
		out[i] = Arg(m)
	}

	return out
}
