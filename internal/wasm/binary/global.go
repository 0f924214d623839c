package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeGlobalSection(m *wasm.Module) []byte {
	var body []byte
	for _, g := range m.GlobalSection {
		body = append(body, encodeGlobal(g)...)
	}
	return encodeSection(wasm.SectionIDGlobal, encodeVector(len(m.GlobalSection), body))
}

func encodeGlobal(g wasm.Global) []byte {
	out := encodeGlobalType(g.Type)
	out = append(out, encodeConstExpr(g.Init)...)
	return out
}

func encodeGlobalType(t wasm.GlobalType) []byte {
	out := encodeValueType(t.ValType)
	if t.Mutable {
		return append(out, 0x01)
	}
	return append(out, 0x00)
}

// encodeConstExpr encodes a constant expression's single instruction
// followed by the terminating end opcode.
func encodeConstExpr(e wasm.ConstantExpression) []byte {
	out := encodeInstruction(e.Instruction)
	return append(out, wasm.OpcodeEnd)
}
