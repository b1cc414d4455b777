package mir

// This package defines the wire model for MIR modules: the mid-level
// intermediate representation handed to the backend by a front end.  A module
// is an ordered sequence of functions; each function is a list of basic
// blocks; each block is a list of id-addressed instructions ended by exactly
// one terminator.  Instruction ids double as SSA value names: an id may only
// be referenced after the instruction producing it has been lowered.

// Module is the root of a MIR document.
type Module struct {
	Functions []Function `json:"functions"`
}

// Function is a single exported function: its name becomes the exported
// symbol in the output object.  The first block in source order is the entry
// block and receives the function's parameters as its entry values.
type Function struct {
	Name       string  `json:"name"`
	ReturnType string  `json:"return_type"`
	Params     []Param `json:"params"`
	Blocks     []Block `json:"blocks"`
}

// Param is a declared function parameter.  Its id is unique within the
// enclosing function and addresses the parameter's value once bound.
type Param struct {
	Name string `json:"name"`
	Type string `json:"param_type"`
	ID   uint32 `json:"id"`
}

// Block is a basic block: a straight-line instruction sequence ended by
// exactly one terminator.  Block names are unique within their function.
type Block struct {
	Name         string        `json:"name"`
	Instructions []Instruction `json:"instructions"`
	Terminator   Terminator    `json:"terminator"`
}

// Instruction is a single id-addressed MIR instruction.
type Instruction struct {
	ID       uint32    `json:"id"`
	Op       string    `json:"op"`
	Type     string    `json:"inst_type"`
	Operands []Operand `json:"operands"`
}

// Terminator ends a block and determines control transfer.
type Terminator struct {
	Op       string    `json:"op"`
	Operands []Operand `json:"operands"`
}

// Operand is either a reference to a previously produced value by id or a
// textual literal to be parsed under its declared operand type.
type Operand struct {
	Kind    string  `json:"kind"`
	Value   *uint32 `json:"value,omitempty"`
	Literal *string `json:"literal,omitempty"`
	Type    string  `json:"operand_type"`
}

// Enumeration of operand kinds.
const (
	OperandValue   = "value"
	OperandLiteral = "literal"
)

// Enumeration of instruction opcodes.
const (
	OpConst = "const"
	OpAdd   = "add"
	OpSub   = "sub"
	OpMul   = "mul"
	OpDiv   = "div"
	OpCall  = "call"
	OpCast  = "cast"
)

// Enumeration of terminator opcodes.
const (
	OpRet  = "ret"
	OpBr   = "br"
	OpBrz  = "brz"
	OpBrnz = "brnz"
	OpTrap = "trap"
)
