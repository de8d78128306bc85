package refeq

import (
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

// printer renders values in difference messages. Pointer addresses and
// capacities are left out so messages are stable between runs.
var printer = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                8,
}

// dumper renders values over several lines for failure reports.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                32,
}

// FormatValue renders v on a single line. Cyclic values are cut at the
// first repeated pointer.
func FormatValue(v any) string {
	if v == nil {
		return "nil"
	}

	return printer.Sprintf("%v", v)
}

// DumpValue renders v over several lines with types and nesting.
func DumpValue(v any) string {
	return dumper.Sdump(v)
}

// formatReflect renders a reflected value, including values read through
// unexported fields.
func formatReflect(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	if !v.CanInterface() {
		return fmt.Sprintf("%v", v)
	}

	return FormatValue(v.Interface())
}
