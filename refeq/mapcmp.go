package refeq

import (
	"reflect"
	"sort"
)

// MapComparator compares two maps entry by entry regardless of iteration
// order. Keys are matched strictly, values with the full chain.
type MapComparator struct{}

func (MapComparator) Compare(c *Comparison) (Result, error) {
	l, r := c.Left(), c.Right()
	if Dispatch(l, r) != DispatchMap {
		return Forward(), nil
	}

	if l.Len() != r.Len() {
		return c.Differ("Different map sizes. Left size: %d, right size: %d.", l.Len(), r.Len()), nil
	}

	right := sortedEntries(r)
	consumed := make([]bool, len(right))

	for _, le := range sortedEntries(l) {
		segment := le.form
		c.PushPath(segment)

		idx, err := findKey(c.Engine().strictEngine(), le.key, r, right, consumed)
		if err != nil {
			return Result{}, err
		}

		if idx < 0 {
			c.PopPath()

			return c.Differ("Left key not found in right map. Left key: %s", segment), nil
		}

		consumed[idx] = true

		// values come from iteration, MapIndex cannot reach NaN keys
		d, err := c.RecurseSamePath(le.value, right[idx].value)

		c.PopPath()

		if err != nil {
			return Result{}, err
		}

		if d != nil {
			return Resolved(d), nil
		}
	}

	return Equal(), nil
}

// findKey returns the index in entries of the first unconsumed key strictly
// equal to lk, or -1.
func findKey(strict *Engine, lk, m reflect.Value, entries []mapEntry, consumed []bool) (int, error) {
	// direct hit
	if lk.Type().AssignableTo(m.Type().Key()) && m.MapIndex(lk).IsValid() {
		for i, e := range entries {
			if !consumed[i] && e.key.Equal(lk) {
				return i, nil
			}
		}
	}

	for i, e := range entries {
		if consumed[i] {
			continue
		}

		d, err := strict.findDifference(lk, e.key)
		if err != nil {
			return -1, err
		}

		if d == nil {
			return i, nil
		}
	}

	return -1, nil
}

type mapEntry struct {
	key   reflect.Value
	value reflect.Value
	form  string
}

// sortedEntries returns the entries of m ordered by the string form of
// their keys.
func sortedEntries(m reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, m.Len())

	for it := m.MapRange(); it.Next(); {
		k := it.Key()
		entries = append(entries, mapEntry{key: k, value: it.Value(), form: formatReflect(k)})
	}

	sort.SliceStable(entries, func(a, b int) bool { return entries[a].form < entries[b].form })

	return entries
}
