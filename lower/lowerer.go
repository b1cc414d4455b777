package lower

import (
	"lumen/mir"
	"lumen/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
)

// Lowerer is responsible for converting a decoded MIR module into an LLVM IR
// module.  Each MIR function is lowered independently: the value environment
// and block map live only for the duration of one function's lowering.
type Lowerer struct {
	// mod is the LLVM module being generated.
	mod *ir.Module

	// funcs is the module-level function table.  Every MIR function is
	// declared here before any body is lowered so that calls between the
	// module's functions resolve regardless of source order.  Callees that
	// are not defined in the module are declared external on first use.
	funcs map[string]*ir.Func

	// callConv is the calling convention applied to every declared function.
	callConv enum.CallingConv

	// fn is the function currently being lowered.
	fn *ir.Func

	// env is the value environment of the current function: the table from
	// instruction and parameter ids to the LLVM values they produced.
	env *valueEnv

	// blocks is the name keyed block lookup of the current function.
	blocks map[string]*ir.Block

	// block is the block instructions are currently being appended to.
	block *ir.Block
}

// NewLowerer creates a new lowerer targeting the C calling convention.
func NewLowerer() *Lowerer {
	return &Lowerer{
		mod:      ir.NewModule(),
		funcs:    make(map[string]*ir.Func),
		callConv: enum.CallingConvC,
	}
}

// SetCallingConv overrides the calling convention used for declared
// functions.
func (l *Lowerer) SetCallingConv(cc enum.CallingConv) {
	l.callConv = cc
}

// Lower lowers a full MIR module.  All functions are declared up front, then
// lowered in source order.  Any failure aborts the whole module: no partial
// module is ever returned.
func (l *Lowerer) Lower(m *mir.Module) (*ir.Module, error) {
	for i := range m.Functions {
		if err := l.declareFunc(&m.Functions[i]); err != nil {
			return nil, err
		}
	}

	for i := range m.Functions {
		if err := l.lowerFunc(&m.Functions[i]); err != nil {
			return nil, err
		}
	}

	return l.mod, nil
}

// declareFunc builds a function's signature from its declared parameter and
// return types and registers it for export under its declared name.
func (l *Lowerer) declareFunc(mf *mir.Function) error {
	if _, ok := l.funcs[mf.Name]; ok {
		return report.Raise(report.KindCodegen, "duplicate function name: %s", mf.Name)
	}

	var params []*ir.Param
	for _, p := range mf.Params {
		paramType, err := mapType(p.Type)
		if err != nil {
			return err
		}

		params = append(params, ir.NewParam(p.Name, paramType))
	}

	returnType, err := mapReturnType(mf.ReturnType)
	if err != nil {
		return err
	}

	fn := l.mod.NewFunc(mf.Name, returnType, params...)
	fn.Linkage = enum.LinkageExternal
	fn.CallingConv = l.callConv
	l.funcs[mf.Name] = fn

	return nil
}

// lowerFunc lowers the body of a single declared function: it binds the
// parameters into a fresh value environment, allocates the control-flow
// graph, and then lowers each block's instructions and terminator in source
// order.
func (l *Lowerer) lowerFunc(mf *mir.Function) error {
	l.fn = l.funcs[mf.Name]
	l.env = newValueEnv()

	// Parameters are the entry block's incoming values; bind them under
	// their declared ids before any instruction can reference them.
	for i, p := range mf.Params {
		if err := l.env.record(p.ID, l.fn.Params[i]); err != nil {
			return err
		}
	}

	if err := l.buildCFG(mf); err != nil {
		return err
	}

	for i := range mf.Blocks {
		mb := &mf.Blocks[i]
		l.block = l.blocks[mb.Name]

		for j := range mb.Instructions {
			if err := l.lowerInst(&mb.Instructions[j]); err != nil {
				return err
			}
		}

		if err := l.lowerTerm(&mb.Terminator); err != nil {
			return err
		}
	}

	return nil
}
