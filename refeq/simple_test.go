package refeq

import (
	"math"
	"math/big"
	"net"
	"testing"
	"time"
)

func TestSimpleCases(t *testing.T) {
	var nilInt *int

	utc := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	plus2 := time.FixedZone("UTC+2", 2*60*60)

	fn := func() int { return 1 }
	ch := make(chan int)

	runDiffCases(t, []diffCase{
		{name: "both nil", left: nil, right: nil},
		{name: "typed and untyped nil", left: nilInt, right: nil},
		{name: "left nil", left: nil, right: 1, message: "Left value null."},
		{name: "right nil", left: 1, right: nilInt, message: "Right value null."},
		{name: "int and float", left: 5, right: 5.0},
		{name: "int8 and uint64", left: int8(5), right: uint64(5)},
		{name: "rune and int", left: 'a', right: 97},
		{name: "different ints", left: 5, right: 6, message: "Different primitive values."},
		{name: "negative and unsigned", left: -1, right: uint64(math.MaxUint64), message: "Different primitive values."},
		{name: "large ints coerced", left: int64(1<<53 + 1), right: int64(1 << 53)},
		{name: "large uint and float", left: uint64(1 << 60), right: float64(1 << 60)},
		{name: "int and fraction", left: 5, right: 5.5, message: "Different primitive values."},
		{name: "NaN", left: math.NaN(), right: math.NaN()},
		{name: "strings", left: "a", right: "a"},
		{name: "different strings", left: "a", right: "b", message: "Different values."},
		{name: "bools", left: true, right: false, message: "Different values."},
		{name: "complex", left: complex(1, 2), right: complex(1, 2)},
		{name: "enum", left: Color(1), right: Color(1)},
		{name: "different enum", left: Color(1), right: Color(2), message: "Different enum values."},
		{name: "different string enum", left: Status("on"), right: Status("off"), message: "Different enum values."},
		{name: "enum and int", left: Color(1), right: 1, message: "Different types. Left: refeq.Color, right: int."},
		{name: "string and int", left: "1", right: 1, message: "Different types. Left: string, right: int."},
		{name: "same instant", left: utc, right: utc.In(plus2)},
		{name: "different instant", left: utc, right: utc.Add(time.Second), message: "Different values."},
		{name: "durations", left: time.Second, right: time.Minute, message: "Different values."},
		{name: "big ints", left: big.NewInt(5), right: big.NewInt(5)},
		{name: "different big ints", left: big.NewInt(5), right: big.NewInt(6), message: "Different values."},
		{name: "ip forms", left: net.IP{127, 0, 0, 1}, right: net.ParseIP("127.0.0.1")},
		{name: "same func", left: fn, right: fn},
		{name: "same chan", left: ch, right: ch},
		{name: "different chan", left: ch, right: make(chan int), message: "Different values."},
	})
}

func TestNumbersEqual_Symmetric(t *testing.T) {
	values := []any{0, 1, -1, int8(-1), uint8(1), uint64(math.MaxUint64), 1.0, float32(0.5), 0.5, math.Inf(1)}

	for _, l := range values {
		for _, r := range values {
			lr, err := IsEqual(l, r, optionsStrict)
			if err != nil {
				t.Fatal(err)
			}

			rl, err := IsEqual(r, l, optionsStrict)
			if err != nil {
				t.Fatal(err)
			}

			if lr != rl {
				t.Errorf("IsEqual(%v, %v) = %v but IsEqual(%v, %v) = %v", l, r, lr, r, l, rl)
			}
		}
	}
}
