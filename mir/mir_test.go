package mir

import (
	"testing"

	"lumen/report"
)

func TestDecodeSimpleModule(t *testing.T) {
	text := `{
		"functions": [
			{
				"name": "id",
				"return_type": "int",
				"params": [],
				"blocks": [
					{
						"name": "entry",
						"instructions": [],
						"terminator": {"op": "ret", "operands": []}
					}
				]
			}
		]
	}`

	mod, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(mod.Functions) != 1 {
		t.Fatalf("Expected 1 function, got %d", len(mod.Functions))
	}

	fn := mod.Functions[0]
	if fn.Name != "id" || fn.ReturnType != "int" {
		t.Errorf("Unexpected function signature: %s %s", fn.Name, fn.ReturnType)
	}

	if len(fn.Blocks) != 1 || fn.Blocks[0].Terminator.Op != OpRet {
		t.Errorf("Unexpected block structure: %+v", fn.Blocks)
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode(`{"functions": [`)
	if err == nil {
		t.Fatal("Expected error for malformed JSON")
	}

	if report.KindOf(err) != report.KindInvalidMir {
		t.Errorf("Expected invalid MIR kind, got %d", report.KindOf(err))
	}
}

func TestDecodeWrongShape(t *testing.T) {
	// functions must be an array of objects
	_, err := Decode(`{"functions": "id"}`)
	if err == nil {
		t.Fatal("Expected error for wrong document shape")
	}
}

func TestDecodeFunctionWithoutBlocks(t *testing.T) {
	text := `{"functions": [{"name": "empty", "return_type": "void", "params": [], "blocks": []}]}`

	_, err := Decode(text)
	if err == nil {
		t.Fatal("Expected error for function without blocks")
	}

	if report.KindOf(err) != report.KindInvalidMir {
		t.Errorf("Expected invalid MIR kind, got %d", report.KindOf(err))
	}
}

func TestDecodeBlockWithoutTerminator(t *testing.T) {
	text := `{
		"functions": [
			{
				"name": "f",
				"return_type": "void",
				"params": [],
				"blocks": [{"name": "entry", "instructions": []}]
			}
		]
	}`

	_, err := Decode(text)
	if err == nil {
		t.Fatal("Expected error for block without terminator")
	}
}

func TestDecodeUnknownOperandKind(t *testing.T) {
	text := `{
		"functions": [
			{
				"name": "f",
				"return_type": "int",
				"params": [],
				"blocks": [
					{
						"name": "entry",
						"instructions": [],
						"terminator": {
							"op": "ret",
							"operands": [{"kind": "register", "operand_type": "int"}]
						}
					}
				]
			}
		]
	}`

	_, err := Decode(text)
	if err == nil {
		t.Fatal("Expected error for unknown operand kind")
	}
}

func TestValidateOnly(t *testing.T) {
	if err := Validate(`{"functions": []}`); err != nil {
		t.Errorf("Validate failed on empty module: %v", err)
	}

	if err := Validate(`not json`); err == nil {
		t.Error("Expected error for invalid document")
	}
}

func TestRoundTrip(t *testing.T) {
	fn := NewFunction("answer", "int", nil)
	entry := fn.NewBlock("entry")
	entry.Instructions = []Instruction{
		{
			ID:       fn.NextValue(),
			Op:       OpConst,
			Type:     "int",
			Operands: []Operand{LiteralOperand("42", "int")},
		},
	}
	entry.Terminator = Terminator{Op: OpRet, Operands: []Operand{ValueOperand(0, "int")}}

	mod := &Module{Functions: []Function{*fn}}

	data, err := mod.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	decoded, err := Decode(string(data))
	if err != nil {
		t.Fatalf("Decode of round-tripped module failed: %v", err)
	}

	if len(decoded.Functions) != 1 || decoded.Functions[0].Name != "answer" {
		t.Errorf("Round trip lost function: %+v", decoded.Functions)
	}

	inst := decoded.Functions[0].Blocks[0].Instructions[0]
	if inst.Op != OpConst || inst.Operands[0].Literal == nil || *inst.Operands[0].Literal != "42" {
		t.Errorf("Round trip lost instruction payload: %+v", inst)
	}
}

func TestBuilderParamIDs(t *testing.T) {
	fn := NewFunction("sum", "int", []Param{
		{Name: "a", Type: "int"},
		{Name: "b", Type: "int"},
	})

	if fn.Params[0].ID != 0 || fn.Params[1].ID != 1 {
		t.Errorf("Unexpected param ids: %+v", fn.Params)
	}

	if next := fn.NextValue(); next != 2 {
		t.Errorf("Expected next value id 2, got %d", next)
	}
}
