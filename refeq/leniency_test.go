package refeq

import (
	"testing"
	"time"

	"reflection-assert/options"
)

type event struct {
	Name string
	At   time.Time
	Due  *time.Time
}

func TestLenientDates(t *testing.T) {
	lenient := options.FromModes(options.ModeLenientDates)

	t1 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	var nilTime *time.Time

	runDiffCases(t, []diffCase{
		{name: "different instants", left: t1, right: t2, opts: lenient},
		{name: "strict", left: t1, right: t2, message: "Different values."},
		{name: "pointers", left: &t1, right: &t2, opts: lenient},
		{name: "value and pointer", left: t1, right: &t2, opts: lenient},
		{name: "right absent", left: t1, right: nilTime, opts: lenient, message: "Lenient dates, but not both value or both null."},
		{name: "left absent", left: nil, right: t2, opts: lenient, message: "Lenient dates, but not both value or both null."},
		{name: "both absent", left: nilTime, right: nilTime, opts: lenient},
		{name: "fields", left: event{Name: "e", At: t1, Due: &t1}, right: event{Name: "e", At: t2, Due: &t2}, opts: lenient},
		{
			name: "field absent", left: event{Due: &t1}, right: event{}, opts: lenient,
			message: "Lenient dates, but not both value or both null.", path: "Due",
		},
		{name: "other values", left: "a", right: "b", opts: lenient, message: "Different values."},
	})
}

func TestLenientNumbers(t *testing.T) {
	lenient := options.FromModes(options.ModeLenientNumbers)

	runDiffCases(t, []diffCase{
		{name: "named and builtin", left: Cents(5), right: int64(5), opts: lenient},
		{name: "named and float", left: Cents(5), right: 5.0, opts: lenient},
		{name: "strict named and builtin", left: Cents(5), right: int64(5), message: "Different types. Left: refeq.Cents, right: int64."},
		{name: "different", left: Cents(5), right: 5.5, opts: lenient, message: "Different primitive values."},
		{name: "enums", left: Color(1), right: Cents(1), opts: lenient},
		{name: "not numbers", left: "5", right: 5, opts: lenient, message: "Different types. Left: string, right: int."},
		{name: "in slices", left: []Cents{1, 2}, right: []int{1, 2}, opts: lenient},
	})
}

// The first comparator of the chain able to decide a pair wins; later
// comparators are not consulted even if they would accept the pair.
func TestFirstApplicableWins(t *testing.T) {
	var nilTime *time.Time

	now := time.Date(2021, 5, 6, 7, 8, 9, 0, time.UTC)

	runDiffCases(t, []diffCase{
		{name: "ignore defaults alone", left: now, right: nilTime, opts: optionsIgnoreDefaults},
		{
			name: "lenient dates first", left: now, right: nilTime,
			opts:    options.FromModes(options.ModeIgnoreDefaults, options.ModeLenientDates),
			message: "Lenient dates, but not both value or both null.",
		},
		{
			name: "ignore defaults before numbers", left: 5, right: 0,
			opts: options.FromModes(options.ModeIgnoreDefaults, options.ModeLenientNumbers),
		},
		{
			name: "numbers before simple cases", left: Color(1), right: Color(2),
			opts:    options.FromModes(options.ModeLenientNumbers),
			message: "Different primitive values.",
		},
	})
}

func TestDefaultChain_Order(t *testing.T) {
	chain := DefaultChain(options.FromModes(options.ModeAll))

	want := []Comparator{
		LenientDatesComparator{},
		IgnoreDefaultsComparator{},
		LenientNumbersComparator{},
		SimpleCasesComparator{},
		PointerComparator{},
		CollectionComparator{LenientOrder: true},
		MapComparator{},
		FieldsComparator{},
	}

	if len(chain) != len(want) {
		t.Fatalf("chain length = %d, want %d", len(chain), len(want))
	}

	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d] = %T%+v, want %T%+v", i, chain[i], chain[i], want[i], want[i])
		}
	}

	if n := len(DefaultChain(options.Options{})); n != 5 {
		t.Errorf("strict chain length = %d, want 5", n)
	}
}
