package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeExportSection(m *wasm.Module) []byte {
	var body []byte
	for _, e := range m.ExportSection {
		body = append(body, encodeExport(e)...)
	}
	return encodeSection(wasm.SectionIDExport, encodeVector(len(m.ExportSection), body))
}

func encodeExport(e wasm.Export) []byte {
	out := encodeString(e.Name)
	out = append(out, e.Kind)
	return append(out, encodeU32Index(e.Index)...)
}
