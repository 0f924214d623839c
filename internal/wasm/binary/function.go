package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeFunctionSection(m *wasm.Module) []byte {
	var body []byte
	for _, typeIdx := range m.FunctionSection {
		body = append(body, encodeU32Index(typeIdx)...)
	}
	return encodeSection(wasm.SectionIDFunction, encodeVector(len(m.FunctionSection), body))
}
