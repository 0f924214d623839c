package wasm

// Import declares one value the module expects its embedder to supply.
// Exactly one of the Desc* fields is populated, selected by Kind.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#import-section
type Import struct {
	Module string
	Name   string
	Kind   ExternalKind

	DescFunc   Index // index into the type section
	DescTable  TableType
	DescMemory MemoryType
	DescGlobal GlobalType
}
