package lower

import (
	"lumen/mir"
	"lumen/report"

	"github.com/llir/llvm/ir"
)

// buildCFG allocates one LLVM block per MIR block, preserving source order,
// and populates the name keyed block lookup used to resolve jump targets.
// The first MIR block becomes the function's entry block; LLVM functions
// receive their parameters as values of the entry block by construction, so
// no extra wiring is needed beyond the parameter bindings in the value
// environment.  The builder computes no predecessors or dominance: it only
// allocates blocks.
func (l *Lowerer) buildCFG(mf *mir.Function) error {
	l.blocks = make(map[string]*ir.Block, len(mf.Blocks))

	for _, mb := range mf.Blocks {
		if _, ok := l.blocks[mb.Name]; ok {
			return report.Raise(report.KindCodegen, "duplicate block name `%s` in function `%s`", mb.Name, mf.Name)
		}

		l.blocks[mb.Name] = l.fn.NewBlock(mb.Name)
	}

	return nil
}

// lookupBlock resolves a branch target name through the block lookup.
func (l *Lowerer) lookupBlock(name string) (*ir.Block, error) {
	block, ok := l.blocks[name]
	if !ok {
		return nil, report.Raise(report.KindCodegen, "unknown branch target: %s", name)
	}

	return block, nil
}
