package lower

import (
	"lumen/mir"
	"lumen/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// lowerTerm lowers the terminator ending the current block.  Every path out
// of a block is an explicit transfer: returns, jumps, conditional jumps with
// both sides named, or a trap.
func (l *Lowerer) lowerTerm(term *mir.Terminator) error {
	switch term.Op {
	case mir.OpRet:
		return l.lowerRet(term)
	case mir.OpBr:
		return l.lowerBr(term)
	case mir.OpBrz, mir.OpBrnz:
		return l.lowerCondBr(term)
	case mir.OpTrap:
		l.block.NewUnreachable()
		return nil
	default:
		return report.Raise(report.KindCodegen, "unsupported terminator: %s", term.Op)
	}
}

// lowerRet lowers a `ret` terminator.  A bare `ret` in a function with a
// non-void return type returns the zero value of that type so every return
// path stays well formed.
func (l *Lowerer) lowerRet(term *mir.Terminator) error {
	if len(term.Operands) == 0 {
		returnType := l.fn.Sig.RetType
		if returnType.Equal(types.Void) {
			l.block.NewRet(nil)
			return nil
		}

		zero, err := zeroValue(returnType)
		if err != nil {
			return err
		}

		l.block.NewRet(zero)
		return nil
	}

	result, err := l.operandValue(&term.Operands[0])
	if err != nil {
		return err
	}

	if !result.Type().Equal(l.fn.Sig.RetType) {
		return report.Raise(report.KindCodegen, "ret value type %s does not match return type %s",
			result.Type(), l.fn.Sig.RetType)
	}

	l.block.NewRet(result)
	return nil
}

// lowerBr lowers an unconditional jump.  The first operand names the target
// block.  Any further value operands are resolved so that def-before-use
// still holds for them, but MIR blocks declare no entry-value slots to bind
// them to.
func (l *Lowerer) lowerBr(term *mir.Terminator) error {
	if len(term.Operands) == 0 {
		return report.Raise(report.KindCodegen, "br terminator requires a target block")
	}

	target, err := l.branchTarget(&term.Operands[0])
	if err != nil {
		return err
	}

	for i := 1; i < len(term.Operands); i++ {
		if _, err := l.operandValue(&term.Operands[i]); err != nil {
			return err
		}
	}

	l.block.NewBr(target)
	return nil
}

// lowerCondBr lowers `brz` and `brnz`.  The first operand is the condition
// value, the second names the block taken when the condition matches the
// opcode (zero for brz, non-zero for brnz), and the third names the block for
// the untaken side: the fall through is itself an explicit jump.
func (l *Lowerer) lowerCondBr(term *mir.Terminator) error {
	if len(term.Operands) < 3 {
		return report.Raise(report.KindCodegen,
			"%s terminator requires a condition, a target, and a fall-through target", term.Op)
	}

	cond, err := l.operandValue(&term.Operands[0])
	if err != nil {
		return err
	}

	condType, ok := cond.Type().(*types.IntType)
	if !ok {
		return report.Raise(report.KindCodegen, "%s condition must be an integer value, not %s", term.Op, cond.Type())
	}

	taken, err := l.branchTarget(&term.Operands[1])
	if err != nil {
		return err
	}

	fallThrough, err := l.branchTarget(&term.Operands[2])
	if err != nil {
		return err
	}

	nonZero := l.block.NewICmp(enum.IPredNE, cond, constant.NewInt(condType, 0))

	if term.Op == mir.OpBrz {
		l.block.NewCondBr(nonZero, fallThrough, taken)
	} else {
		l.block.NewCondBr(nonZero, taken, fallThrough)
	}

	return nil
}

// branchTarget resolves an operand naming a block through the CFG lookup.
func (l *Lowerer) branchTarget(operand *mir.Operand) (*ir.Block, error) {
	if operand.Kind != mir.OperandLiteral || operand.Literal == nil {
		return nil, report.Raise(report.KindCodegen, "branch target must be a literal block name")
	}

	return l.lookupBlock(*operand.Literal)
}

// zeroValue produces the zero constant of a scalar type.
func zeroValue(typ types.Type) (value.Value, error) {
	switch t := typ.(type) {
	case *types.IntType:
		return constant.NewInt(t, 0), nil
	case *types.FloatType:
		return constant.NewFloat(t, 0), nil
	default:
		return nil, report.Raise(report.KindCodegen, "type %s has no zero value", typ)
	}
}
