package wasm

// DataMode distinguishes an actively-initialized memory region (Active)
// from a passive blob only reachable via memory.init (Passive).
type DataMode int

const (
	DataModeActive DataMode = iota
	DataModePassive
)

// DataSegment initializes a range of linear memory with a byte blob.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#data-section
type DataSegment struct {
	Mode DataMode

	// MemoryIndex and Offset apply only when Mode is DataModeActive.
	MemoryIndex Index
	Offset      ConstantExpression

	Init []byte
}
