package lower

import (
	"lumen/report"

	"github.com/llir/llvm/ir/value"
)

// valueEnv is the per-function table mapping MIR instruction ids (and bound
// parameter ids) to the LLVM values they produced.  It is the device that
// reconstructs SSA linkage from the id-addressed instruction stream: it is
// populated strictly in lowering order, so a lookup can only ever see values
// defined before the point of use.
type valueEnv struct {
	vals map[uint32]value.Value
}

func newValueEnv() *valueEnv {
	return &valueEnv{vals: make(map[uint32]value.Value)}
}

// record inserts the value produced under the given id.  Ids are single
// assignment: recording an id twice is an error.
func (e *valueEnv) record(id uint32, v value.Value) error {
	if _, ok := e.vals[id]; ok {
		return report.Raise(report.KindCodegen, "value id %d defined more than once", id)
	}

	e.vals[id] = v
	return nil
}

// resolve returns the value recorded under the given id.  Referencing an id
// that has not been defined yet fails loudly: forward references are illegal.
func (e *valueEnv) resolve(id uint32) (value.Value, error) {
	v, ok := e.vals[id]
	if !ok {
		return nil, report.Raise(report.KindCodegen, "unresolved value reference: %d", id)
	}

	return v, nil
}
