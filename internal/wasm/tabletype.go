package wasm

// TableType describes a table: its element reference type and size limits.
//
// See https://webassembly.github.io/spec/core/binary/types.html#table-types
type TableType struct {
	ElemRefType RefType
	Limits      Limits
}
