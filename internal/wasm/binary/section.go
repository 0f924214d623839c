// Package binary encodes an internal/wasm.Module into the WebAssembly
// binary format.
package binary

import (
	"github.com/wasmkit/wasmkit/internal/leb128"
	"github.com/wasmkit/wasmkit/internal/wasm"
)

// magic is the four-byte WebAssembly preamble, the ASCII bytes "\0asm".
var magic = []byte{0x00, 0x61, 0x73, 0x6d}

// version is the binary format version this package emits: version 1.
var version = []byte{0x01, 0x00, 0x00, 0x00}

// encodeVector prefixes n length-encoded elements, already concatenated
// into body, with their count as an unsigned LEB128 varint.
func encodeVector(count int, body []byte) []byte {
	out := leb128.EncodeUint32(uint32(count))
	return append(out, body...)
}

// encodeSection frames body as a section: one id byte, the body's
// LEB128-encoded byte length, then body itself. Returns nil for an empty
// body, since empty sections are omitted rather than encoded as
// zero-length.
func encodeSection(id wasm.SectionID, body []byte) []byte {
	if len(body) == 0 {
		return nil
	}
	out := []byte{id}
	out = append(out, leb128.EncodeUint32(uint32(len(body)))...)
	return append(out, body...)
}

func encodeString(s string) []byte {
	out := leb128.EncodeUint32(uint32(len(s)))
	return append(out, []byte(s)...)
}

// encodeU32Index encodes an index-space reference as an unsigned LEB128
// varint; every index space (type, function, table, memory, global,
// element, data, local, label) uses this encoding.
func encodeU32Index(i wasm.Index) []byte {
	return leb128.EncodeUint32(i)
}
