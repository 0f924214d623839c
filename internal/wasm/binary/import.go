package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeImportSection(m *wasm.Module) []byte {
	var body []byte
	for _, imp := range m.ImportSection {
		body = append(body, encodeImport(imp)...)
	}
	return encodeSection(wasm.SectionIDImport, encodeVector(len(m.ImportSection), body))
}

func encodeImport(imp wasm.Import) []byte {
	out := encodeString(imp.Module)
	out = append(out, encodeString(imp.Name)...)
	out = append(out, imp.Kind)
	switch imp.Kind {
	case wasm.ExternalKindFunc:
		out = append(out, encodeU32Index(imp.DescFunc)...)
	case wasm.ExternalKindTable:
		out = append(out, encodeTableType(imp.DescTable)...)
	case wasm.ExternalKindMemory:
		out = append(out, encodeMemoryType(imp.DescMemory)...)
	case wasm.ExternalKindGlobal:
		out = append(out, encodeGlobalType(imp.DescGlobal)...)
	}
	return out
}
