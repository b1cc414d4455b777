package lower

import (
	"strconv"

	"lumen/mir"
	"lumen/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// lowerInst lowers a single MIR instruction against the current block and
// records the produced value under the instruction's id.  Each instruction is
// lowered independently given the values its predecessors already recorded.
func (l *Lowerer) lowerInst(inst *mir.Instruction) error {
	var result value.Value
	var err error

	switch inst.Op {
	case mir.OpConst:
		result, err = l.lowerConst(inst)
	case mir.OpAdd, mir.OpSub, mir.OpMul, mir.OpDiv:
		result, err = l.lowerArith(inst)
	case mir.OpCall:
		result, err = l.lowerCall(inst)
	case mir.OpCast:
		result, err = l.lowerCast(inst)
	default:
		return report.Raise(report.KindCodegen, "unsupported instruction: %s", inst.Op)
	}

	if err != nil {
		return err
	}

	return l.env.record(inst.ID, result)
}

// lowerConst lowers a `const` instruction: exactly one literal operand parsed
// under the instruction's result type.
func (l *Lowerer) lowerConst(inst *mir.Instruction) (value.Value, error) {
	if len(inst.Operands) != 1 {
		return nil, report.Raise(report.KindCodegen, "const instruction %d requires exactly one operand", inst.ID)
	}

	operand := &inst.Operands[0]
	if operand.Kind != mir.OperandLiteral || operand.Literal == nil {
		return nil, report.Raise(report.KindCodegen, "const instruction %d requires a literal operand", inst.ID)
	}

	switch inst.Type {
	case "int", "float", "double", "bool":
		return literalConstant(*operand.Literal, inst.Type)
	default:
		return nil, report.Raise(report.KindCodegen, "unsupported const type: %s", inst.Type)
	}
}

// lowerArith lowers the binary arithmetic instructions.  Both operands are
// materialized through the value environment (or as parsed literals) and
// combined with the instruction matching the operand type: integer forms for
// integer operands, floating-point forms for floats.
func (l *Lowerer) lowerArith(inst *mir.Instruction) (value.Value, error) {
	if len(inst.Operands) != 2 {
		return nil, report.Raise(report.KindCodegen, "%s instruction %d requires exactly two operands", inst.Op, inst.ID)
	}

	x, err := l.operandValue(&inst.Operands[0])
	if err != nil {
		return nil, err
	}

	y, err := l.operandValue(&inst.Operands[1])
	if err != nil {
		return nil, err
	}

	if !x.Type().Equal(y.Type()) {
		return nil, report.Raise(report.KindCodegen, "%s instruction %d has mismatched operand types: %s and %s",
			inst.Op, inst.ID, x.Type(), y.Type())
	}

	if types.IsFloat(x.Type()) {
		switch inst.Op {
		case mir.OpAdd:
			return l.block.NewFAdd(x, y), nil
		case mir.OpSub:
			return l.block.NewFSub(x, y), nil
		case mir.OpMul:
			return l.block.NewFMul(x, y), nil
		default:
			return l.block.NewFDiv(x, y), nil
		}
	}

	switch inst.Op {
	case mir.OpAdd:
		return l.block.NewAdd(x, y), nil
	case mir.OpSub:
		return l.block.NewSub(x, y), nil
	case mir.OpMul:
		return l.block.NewMul(x, y), nil
	default:
		return l.block.NewSDiv(x, y), nil
	}
}

// lowerCall lowers a `call` instruction.  The first operand is the callee:
// either a literal naming a function symbol or a value reference resolving to
// a callable.  The remaining operands are the arguments.
func (l *Lowerer) lowerCall(inst *mir.Instruction) (value.Value, error) {
	if len(inst.Operands) == 0 {
		return nil, report.Raise(report.KindCodegen, "call instruction %d requires a callee operand", inst.ID)
	}

	var args []value.Value
	for i := 1; i < len(inst.Operands); i++ {
		arg, err := l.operandValue(&inst.Operands[i])
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	callee, err := l.calleeValue(inst, args)
	if err != nil {
		return nil, err
	}

	return l.block.NewCall(callee, args...), nil
}

// calleeValue resolves the callee operand of a call instruction.  Literal
// callees resolve against the module function table; names the module does
// not define are declared as external functions with a signature derived from
// the call site.
func (l *Lowerer) calleeValue(inst *mir.Instruction, args []value.Value) (value.Value, error) {
	operand := &inst.Operands[0]

	switch operand.Kind {
	case mir.OperandValue:
		return l.env.resolve(*operand.Value)
	case mir.OperandLiteral:
		name := *operand.Literal
		if fn, ok := l.funcs[name]; ok {
			return fn, nil
		}

		return l.declareExtern(name, inst, args)
	default:
		return nil, report.Raise(report.KindCodegen, "call instruction %d has malformed callee operand", inst.ID)
	}
}

// declareExtern declares an external function for a callee the module does
// not define.  The return type comes from the call's result type and the
// parameter types from the argument values at the call site.
func (l *Lowerer) declareExtern(name string, inst *mir.Instruction, args []value.Value) (*ir.Func, error) {
	returnType, err := mapReturnType(inst.Type)
	if err != nil {
		return nil, err
	}

	var params []*ir.Param
	for _, arg := range args {
		params = append(params, ir.NewParam("", arg.Type()))
	}

	fn := l.mod.NewFunc(name, returnType, params...)
	fn.CallingConv = l.callConv
	l.funcs[name] = fn

	return fn, nil
}

// lowerCast lowers a `cast` instruction: a conversion from the operand's
// backend type to the instruction's declared result type.
func (l *Lowerer) lowerCast(inst *mir.Instruction) (value.Value, error) {
	if len(inst.Operands) != 1 {
		return nil, report.Raise(report.KindCodegen, "cast instruction %d requires exactly one operand", inst.ID)
	}

	src, err := l.operandValue(&inst.Operands[0])
	if err != nil {
		return nil, err
	}

	dst, err := mapType(inst.Type)
	if err != nil {
		return nil, err
	}

	return l.convertValue(src, dst, inst.ID)
}

// convertValue emits the conversion from the source value's type to the
// destination type.  Identical types are a no-op.  Integer narrowing
// truncates; integer widening sign extends, except from the 8-bit boolean
// carrier which zero extends.
func (l *Lowerer) convertValue(src value.Value, dst types.Type, id uint32) (value.Value, error) {
	if src.Type().Equal(dst) {
		return src, nil
	}

	switch st := src.Type().(type) {
	case *types.IntType:
		if dt, ok := dst.(*types.IntType); ok {
			if st.BitSize > dt.BitSize {
				return l.block.NewTrunc(src, dt), nil
			}

			if st.BitSize == 8 {
				// booleans are never signed
				return l.block.NewZExt(src, dt), nil
			}

			return l.block.NewSExt(src, dt), nil
		}

		if types.IsFloat(dst) {
			return l.block.NewSIToFP(src, dst), nil
		}
	case *types.FloatType:
		if _, ok := dst.(*types.IntType); ok {
			return l.block.NewFPToSI(src, dst), nil
		}
	}

	return nil, report.Raise(report.KindCodegen, "cast instruction %d cannot convert %s to %s", id, src.Type(), dst)
}

// operandValue materializes an operand: value references resolve through the
// value environment, literals parse as constants under their declared operand
// type.
func (l *Lowerer) operandValue(operand *mir.Operand) (value.Value, error) {
	switch operand.Kind {
	case mir.OperandValue:
		return l.env.resolve(*operand.Value)
	case mir.OperandLiteral:
		return literalConstant(*operand.Literal, operand.Type)
	default:
		return nil, report.Raise(report.KindCodegen, "unknown operand kind: %s", operand.Kind)
	}
}

// literalConstant parses a literal under its declared type and produces the
// matching constant.
func literalConstant(literal, typeName string) (constant.Constant, error) {
	typ, err := mapType(typeName)
	if err != nil {
		return nil, err
	}

	if typeName == "bool" {
		// only the canonical spellings count as bool literals
		switch literal {
		case "true":
			return constant.NewInt(types.I8, 1), nil
		case "false":
			return constant.NewInt(types.I8, 0), nil
		default:
			return nil, report.Raise(report.KindCodegen, "invalid bool literal: %s", literal)
		}
	}

	switch t := typ.(type) {
	case *types.FloatType:
		x, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, report.Raise(report.KindCodegen, "invalid float literal: %s", literal)
		}

		return constant.NewFloat(t, x), nil
	case *types.IntType:
		// parse at the mapped type's width so out-of-range literals fail
		// here instead of producing a malformed module
		x, err := strconv.ParseInt(literal, 10, int(t.BitSize))
		if err != nil {
			return nil, report.Raise(report.KindCodegen, "invalid integer literal: %s", literal)
		}

		return constant.NewInt(t, x), nil
	default:
		return nil, report.Raise(report.KindCodegen, "literal `%s` has no constant representation for type %s", literal, typeName)
	}
}
