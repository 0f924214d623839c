package wasm

// MemArg is the alignment hint and offset immediate carried by memory
// load/store and atomic memory instructions.
type MemArg struct {
	Align uint32
	Offset uint32
	// MemoryIndex is always 0 unless the multi-memory proposal is in use.
	// The encoders emit only Align and Offset; MemoryIndex is not encoded,
	// so every memory access in the output targets memory 0.
	MemoryIndex Index
}
