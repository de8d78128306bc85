package refeq

import (
	"errors"
)

// ErrUnresolved is returned when no comparator of a chain resolves a pair.
// The default chain always ends with a comparator that resolves, so this only
// happens with a custom chain.
var ErrUnresolved = errors.New("no comparator resolved the pair")

// Comparator is one link of the comparison chain.
//
// Compare either resolves the pair held by c, returning Equal or a
// Difference, or returns Forward to let the next comparator try. Composite
// comparators recurse through c.RecurseSamePath and c.RecurseNewPath.
type Comparator interface {
	Compare(c *Comparison) (Result, error)
}

// ComparatorFunc adapts a function to the Comparator interface.
type ComparatorFunc func(c *Comparison) (Result, error)

func (f ComparatorFunc) Compare(c *Comparison) (Result, error) {
	return f(c)
}

// Result is the outcome of a single comparator.
type Result struct {
	resolved bool
	diff     *Difference
}

// Forward passes the pair to the next comparator.
func Forward() Result { return Result{} }

// Equal resolves the pair as equivalent.
func Equal() Result { return Result{resolved: true} }

// Resolved resolves the pair with d, nil meaning equivalent.
func Resolved(d *Difference) Result { return Result{resolved: true, diff: d} }

// IsResolved reports whether the comparator decided the pair.
func (r Result) IsResolved() bool { return r.resolved }

// Difference returns the difference of a resolved pair, nil when equal.
func (r Result) Difference() *Difference { return r.diff }
