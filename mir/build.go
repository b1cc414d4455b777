package mir

// Construction helpers for front ends (and tests) that assemble MIR modules
// in memory before handing them to the backend.

// NewFunction creates a function with the given name, return type, and
// parameters.  Parameter ids are assigned in declaration order starting at
// zero; instruction ids allocated with NextValue continue after them.
func NewFunction(name, returnType string, params []Param) *Function {
	for i := range params {
		params[i].ID = uint32(i)
	}

	return &Function{
		Name:       name,
		ReturnType: returnType,
		Params:     params,
	}
}

// NewBlock appends an empty block with the given name to the function and
// returns it.  The first block added is the function's entry block.
func (fn *Function) NewBlock(name string) *Block {
	fn.Blocks = append(fn.Blocks, Block{Name: name})
	return &fn.Blocks[len(fn.Blocks)-1]
}

// NextValue allocates the next unused instruction id for the function.
func (fn *Function) NextValue() uint32 {
	next := uint32(len(fn.Params))
	for _, block := range fn.Blocks {
		next += uint32(len(block.Instructions))
	}

	return next
}

// ValueOperand creates an operand referencing a previously produced value.
func ValueOperand(id uint32, typeName string) Operand {
	return Operand{Kind: OperandValue, Value: &id, Type: typeName}
}

// LiteralOperand creates a literal operand with the given text and type.
func LiteralOperand(literal, typeName string) Operand {
	return Operand{Kind: OperandLiteral, Literal: &literal, Type: typeName}
}
