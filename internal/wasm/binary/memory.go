package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeMemorySection(m *wasm.Module) []byte {
	var body []byte
	for _, mem := range m.MemorySection {
		body = append(body, encodeMemoryType(mem)...)
	}
	return encodeSection(wasm.SectionIDMemory, encodeVector(len(m.MemorySection), body))
}

func encodeMemoryType(t wasm.MemoryType) []byte {
	return encodeLimits(t.Limits.Min, t.Limits.Max, t.Limits.Shared)
}
