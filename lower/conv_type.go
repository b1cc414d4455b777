package lower

import (
	"strings"

	"lumen/report"

	"github.com/llir/llvm/ir/types"
)

// mapType maps a MIR surface type name to its backend primitive type.  The
// mapping is deliberately narrow: fixed-width scalars and opaque pointers.
// Strings and pointers of any pointee type are pointer-width integers; there
// is no notion of aggregates.
func mapType(name string) (types.Type, error) {
	switch name {
	case "int":
		return types.I32, nil
	case "float", "double":
		return types.Double, nil
	case "bool":
		return types.I8, nil
	case "void":
		// Placeholder for value positions: void has no value representation,
		// so a void typed operand slot is carried as a 32-bit integer.
		return types.I32, nil
	case "string", "void*":
		return types.I64, nil
	}

	if strings.HasPrefix(name, "*") {
		return types.I64, nil
	}

	return nil, report.Raise(report.KindCodegen, "unsupported type: %s", name)
}

// mapReturnType maps a MIR type name used in return position.  Unlike value
// positions, a `void` return has a true unit representation: the function
// returns nothing and `ret` takes no operand.
func mapReturnType(name string) (types.Type, error) {
	if name == "void" {
		return types.Void, nil
	}

	return mapType(name)
}
