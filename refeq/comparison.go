package refeq

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unsafe"

	"github.com/sirupsen/logrus"

	"reflection-assert/primitive"
)

//go:generate go tool stringer -type=pairState -trimprefix=pair -output=pairstate_string.go

type pairState int

const (
	pairUnseen pairState = iota
	pairInProgress
	pairEqual
	pairNotEqual
)

// ref identifies a reference value: two refs are equal when they denote the
// same memory viewed with the same type.
type ref struct {
	typ reflect.Type
	ptr unsafe.Pointer
	len int
}

type pairKey struct {
	left, right ref
}

func refOf(v reflect.Value) (ref, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return ref{}, false
		}

		return ref{typ: v.Type(), ptr: v.UnsafePointer()}, true
	case reflect.Slice:
		if v.Len() == 0 {
			return ref{}, false
		}

		return ref{typ: v.Type(), ptr: v.UnsafePointer(), len: v.Len()}, true
	default:
		return ref{}, false
	}
}

func newPairKey(l, r reflect.Value) (pairKey, bool) {
	lr, ok := refOf(l)
	if !ok {
		return pairKey{}, false
	}

	rr, ok := refOf(r)
	if !ok {
		return pairKey{}, false
	}

	return pairKey{left: lr, right: rr}, true
}

// session holds the state of one top-level comparison.
type session struct {
	engine    *Engine
	path      []string
	traversed map[pairKey]pairState
}

func newSession(e *Engine) *session {
	return &session{engine: e, traversed: make(map[pairKey]pairState)}
}

func (s *session) compare(l, r reflect.Value) (*Difference, error) {
	l, r = primitive.Indirect(l), primitive.Indirect(r)

	key, ok := newPairKey(l, r)
	if !ok {
		return s.dispatch(l, r)
	}

	switch s.traversed[key] {
	case pairEqual:
		return nil, nil
	case pairInProgress:
		s.trace(l, r).Debug("cycle detected, pair assumed equal")

		return nil, nil
	}

	s.traversed[key] = pairInProgress

	d, err := s.dispatch(l, r)
	if err != nil {
		delete(s.traversed, key)

		return nil, err
	}

	if d != nil {
		s.traversed[key] = pairNotEqual
	} else {
		s.traversed[key] = pairEqual
	}

	return d, nil
}

func (s *session) dispatch(l, r reflect.Value) (*Difference, error) {
	c := &Comparison{left: l, right: r, s: s, cursor: -1}

	return c.InvokeNext()
}

func (s *session) trace(l, r reflect.Value) logrus.FieldLogger {
	log := s.engine.log
	if log == nil {
		return discard
	}

	return log.WithFields(logrus.Fields{
		"path":  pathString(s.path),
		"left":  typeName(l),
		"right": typeName(r),
	})
}

// Comparison is the pair currently offered to the chain together with the
// state of the whole top-level comparison.
type Comparison struct {
	left, right reflect.Value
	s           *session
	cursor      int
}

// Left returns the left value. Interface values are already unwrapped.
func (c *Comparison) Left() reflect.Value { return c.left }

// Right returns the right value. Interface values are already unwrapped.
func (c *Comparison) Right() reflect.Value { return c.right }

// Path returns a copy of the current field path.
func (c *Comparison) Path() []string { return slices.Clone(c.s.path) }

// Engine returns the engine running the comparison.
func (c *Comparison) Engine() *Engine { return c.s.engine }

// PushPath appends a segment to the field path.
func (c *Comparison) PushPath(segment string) {
	c.s.path = append(c.s.path, segment)
}

// PopPath removes the last segment of the field path.
func (c *Comparison) PopPath() {
	if n := len(c.s.path); n > 0 {
		c.s.path = c.s.path[:n-1]
	}
}

// Difference builds a difference for the current pair at the current path.
func (c *Comparison) Difference(message string) *Difference {
	return NewDifference(message, valueOf(c.left), valueOf(c.right), c.s.path)
}

// Differ is a shorthand for Resolved(c.Difference(fmt.Sprintf(format, args...))).
func (c *Comparison) Differ(format string, args ...any) Result {
	return Resolved(c.Difference(fmt.Sprintf(format, args...)))
}

// InvokeNext offers the pair to the comparators following the current one
// until one of them resolves it.
func (c *Comparison) InvokeNext() (*Difference, error) {
	chain := c.s.engine.chain

	for c.cursor+1 < len(chain) {
		c.cursor++

		res, err := chain[c.cursor].Compare(c)
		if err != nil {
			return nil, err
		}

		if res.IsResolved() {
			if c.s.engine.log != nil {
				c.s.trace(c.left, c.right).WithFields(logrus.Fields{
					"comparator": fmt.Sprintf("%T", chain[c.cursor]),
					"equal":      res.diff == nil,
				}).Debug("pair resolved")
			}

			return res.diff, nil
		}
	}

	return nil, fmt.Errorf("%w: %s and %s at %s",
		ErrUnresolved, typeName(c.left), typeName(c.right), pathString(c.s.path))
}

// RecurseSamePath compares a nested pair, differences are reported below
// the current path.
func (c *Comparison) RecurseSamePath(l, r reflect.Value) (*Difference, error) {
	return c.s.compare(l, r)
}

// RecurseNewPath compares a nested pair starting from an empty path. The
// current path is restored afterwards; pairs already traversed stay known.
func (c *Comparison) RecurseNewPath(l, r reflect.Value) (*Difference, error) {
	saved := c.s.path
	c.s.path = nil

	defer func() { c.s.path = saved }()

	return c.s.compare(l, r)
}

func pathString(path []string) string {
	if len(path) == 0 {
		return TopLevel
	}

	return strings.Join(path, ".")
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	return v.Type().String()
}

// valueOf returns the value held by v, nil for an invalid value.
func valueOf(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	if !v.CanInterface() {
		return formatReflect(v)
	}

	return v.Interface()
}
