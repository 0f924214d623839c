package binary

import (
	"sort"

	"github.com/wasmkit/wasmkit/internal/leb128"
	"github.com/wasmkit/wasmkit/internal/wasm"
)

const (
	nameSubsectionModule   = 0
	nameSubsectionFunction = 1
	nameSubsectionLocal    = 2
)

// encodeNameSection encodes the optional custom "name" section. Like all
// custom sections it is framed as id 0, a name string, then its payload;
// each of the three subsections is itself framed as an id byte followed
// by its own LEB128-encoded byte length.
func encodeNameSection(m *wasm.Module) []byte {
	if m.Names.Empty() {
		return nil
	}
	n := m.Names

	var body []byte
	if n.ModuleName != "" {
		body = append(body, framedSubsection(nameSubsectionModule, encodeString(n.ModuleName))...)
	}
	if len(n.FunctionNames) > 0 {
		body = append(body, framedSubsection(nameSubsectionFunction, encodeNameMap(n.FunctionNames))...)
	}
	if len(n.LocalNames) > 0 {
		body = append(body, framedSubsection(nameSubsectionLocal, encodeIndirectNameMap(n.LocalNames))...)
	}

	custom := encodeString("name")
	custom = append(custom, body...)
	return encodeSection(wasm.SectionIDCustom, custom)
}

func framedSubsection(id byte, payload []byte) []byte {
	out := []byte{id}
	out = append(out, leb128.EncodeUint32(uint32(len(payload)))...)
	return append(out, payload...)
}

func encodeNameMap(m wasm.NameMap) []byte {
	indices := sortedKeys(m)
	var body []byte
	for _, idx := range indices {
		body = append(body, encodeU32Index(idx)...)
		body = append(body, encodeString(m[idx])...)
	}
	return encodeVector(len(indices), body)
}

func encodeIndirectNameMap(m wasm.IndirectNameMap) []byte {
	indices := sortedKeys(m)
	var body []byte
	for _, idx := range indices {
		body = append(body, encodeU32Index(idx)...)
		body = append(body, encodeNameMap(m[idx])...)
	}
	return encodeVector(len(indices), body)
}

func sortedKeys[V any](m map[wasm.Index]V) []wasm.Index {
	keys := make([]wasm.Index, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
