package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeTableSection(m *wasm.Module) []byte {
	var body []byte
	for _, t := range m.TableSection {
		body = append(body, encodeTableType(t)...)
	}
	return encodeSection(wasm.SectionIDTable, encodeVector(len(m.TableSection), body))
}

func encodeTableType(t wasm.TableType) []byte {
	out := encodeRefType(t.ElemRefType)
	return append(out, encodeLimits(t.Limits.Min, t.Limits.Max, t.Limits.Shared)...)
}
