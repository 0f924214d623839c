package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeStartSection(m *wasm.Module) []byte {
	if m.StartSection == nil {
		return nil
	}
	return encodeSection(wasm.SectionIDStart, encodeU32Index(*m.StartSection))
}
