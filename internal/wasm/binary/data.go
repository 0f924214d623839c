package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeDataSection(m *wasm.Module) []byte {
	var body []byte
	for _, d := range m.DataSection {
		body = append(body, encodeDataSegment(d)...)
	}
	return encodeSection(wasm.SectionIDData, encodeVector(len(m.DataSection), body))
}

func encodeDataSegment(d wasm.DataSegment) []byte {
	switch {
	case d.Mode == wasm.DataModeActive && d.MemoryIndex == 0:
		out := []byte{0x00}
		out = append(out, encodeConstExpr(d.Offset)...)
		return append(out, encodeVector(len(d.Init), d.Init)...)
	case d.Mode == wasm.DataModePassive:
		out := []byte{0x01}
		return append(out, encodeVector(len(d.Init), d.Init)...)
	default: // active, non-zero memory index (multi-memory)
		out := []byte{0x02}
		out = append(out, encodeU32Index(d.MemoryIndex)...)
		out = append(out, encodeConstExpr(d.Offset)...)
		return append(out, encodeVector(len(d.Init), d.Init)...)
	}
}

func encodeDataCountSection(m *wasm.Module) []byte {
	if !m.DataCountPresent {
		return nil
	}
	return encodeSection(wasm.SectionIDDataCount, encodeU32Index(wasm.Index(len(m.DataSection))))
}
