package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

// EncodeModule serializes m into the WebAssembly binary format: the
// 8-byte preamble (magic + version) followed by each non-empty section in
// the canonical order required by the core specification. m is assumed to
// already be validated (see wasm.Module.Validate); this function does not
// re-validate it.
func EncodeModule(m *wasm.Module) ([]byte, error) {
	out := make([]byte, 0, 256)
	out = append(out, magic...)
	out = append(out, version...)

	// A vector section with no entries would still frame a zero count, so
	// it is only appended when the module has entries for it.
	appendSection := func(count int, section []byte) {
		if count > 0 {
			out = append(out, section...)
		}
	}

	appendSection(len(m.TypeSection), encodeSection(wasm.SectionIDType, encodeTypeSection(m)))
	appendSection(len(m.ImportSection), encodeImportSection(m))
	appendSection(len(m.FunctionSection), encodeFunctionSection(m))
	appendSection(len(m.TableSection), encodeTableSection(m))
	appendSection(len(m.MemorySection), encodeMemorySection(m))
	out = append(out, encodeSection(wasm.SectionIDTag, encodeTagSectionBody(m))...)
	appendSection(len(m.GlobalSection), encodeGlobalSection(m))
	appendSection(len(m.ExportSection), encodeExportSection(m))
	out = append(out, encodeStartSection(m)...)
	appendSection(len(m.ElementSection), encodeElementSection(m))
	out = append(out, encodeDataCountSection(m)...)
	appendSection(len(m.CodeSection), encodeCodeSection(m))
	appendSection(len(m.DataSection), encodeDataSection(m))
	out = append(out, encodeNameSection(m)...)

	return out, nil
}

// encodeTagSectionBody returns nil when TagSection is empty, which is
// always the case for modules made by the Builder: wasmkit carries the tag
// section's id slot (see SPEC_FULL §4) but has no API that populates it.
func encodeTagSectionBody(m *wasm.Module) []byte {
	if len(m.TagSection) == 0 {
		return nil
	}
	return encodeVector(len(m.TagSection), encodeIndices(m.TagSection))
}
