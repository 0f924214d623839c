package wasm

// MemoryType describes a linear memory's size limits, measured in 64KiB
// pages.
//
// See https://webassembly.github.io/spec/core/binary/types.html#memory-types
type MemoryType struct {
	Limits Limits
}

// MaxMemoryPages is the absolute ceiling on memory size imposed by the
// 32-bit address space: 2^16 pages of 64KiB each (4GiB).
const MaxMemoryPages uint32 = 65536
