package mir

import (
	"encoding/json"

	"lumen/report"
)

// Decode decodes a serialized MIR document into a module.  The structure of
// the document is checked as far as the decoder can see: every function must
// have at least one block, every block must carry a terminator, and every
// operand must be a well-formed value or literal reference.  Decode performs
// no lowering and allocates no backend state.
func Decode(text string) (*Module, error) {
	mod := &Module{}
	if err := json.Unmarshal([]byte(text), mod); err != nil {
		return nil, report.Raise(report.KindInvalidMir, "invalid MIR document: %s", err.Error())
	}

	for _, fn := range mod.Functions {
		if err := checkFunction(&fn); err != nil {
			return nil, err
		}
	}

	return mod, nil
}

// Validate decodes a serialized MIR document and discards the result.  It is
// the cheap well-formedness check callers can run before committing to a full
// compile.
func Validate(text string) error {
	_, err := Decode(text)
	return err
}

// ToJSON serializes the module back into its wire form.
func (m *Module) ToJSON() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, report.Raise(report.KindInvalidMir, "failed to serialize MIR module: %s", err.Error())
	}

	return data, nil
}

// checkFunction validates the parts of a function's structure that are
// independent of lowering order.
func checkFunction(fn *Function) error {
	if fn.Name == "" {
		return report.Raise(report.KindInvalidMir, "function missing name")
	}

	if len(fn.Blocks) == 0 {
		return report.Raise(report.KindInvalidMir, "function `%s` has no blocks", fn.Name)
	}

	for _, block := range fn.Blocks {
		if block.Name == "" {
			return report.Raise(report.KindInvalidMir, "function `%s` contains an unnamed block", fn.Name)
		}

		if block.Terminator.Op == "" {
			return report.Raise(report.KindInvalidMir, "block `%s` of function `%s` has no terminator", block.Name, fn.Name)
		}

		for _, inst := range block.Instructions {
			if err := checkOperands(fn, inst.Operands); err != nil {
				return err
			}
		}

		if err := checkOperands(fn, block.Terminator.Operands); err != nil {
			return err
		}
	}

	return nil
}

// checkOperands validates that each operand has a recognized kind and carries
// the payload matching that kind.
func checkOperands(fn *Function, operands []Operand) error {
	for _, operand := range operands {
		switch operand.Kind {
		case OperandValue:
			if operand.Value == nil {
				return report.Raise(report.KindInvalidMir, "value operand in function `%s` missing id", fn.Name)
			}
		case OperandLiteral:
			if operand.Literal == nil {
				return report.Raise(report.KindInvalidMir, "literal operand in function `%s` missing literal text", fn.Name)
			}
		default:
			return report.Raise(report.KindInvalidMir, "unknown operand kind `%s` in function `%s`", operand.Kind, fn.Name)
		}
	}

	return nil
}
