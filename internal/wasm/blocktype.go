package wasm

// BlockTypeKind distinguishes the three ways a block/loop/if signature can
// be encoded in the binary format.
type BlockTypeKind int

const (
	// BlockTypeEmpty carries no params and no results (encoded as 0x40).
	BlockTypeEmpty BlockTypeKind = iota
	// BlockTypeValue carries no params and exactly one result (encoded as
	// that result's ValueType byte).
	BlockTypeValue
	// BlockTypeIndex references a multi-value signature in the type
	// section (encoded as a signed LEB128 type index).
	BlockTypeIndex
)

// BlockType is the signature attached to a block, loop, or if instruction.
type BlockType struct {
	Kind      BlockTypeKind
	ValueType ValueType
	TypeIndex Index
}
