package wasm

// ValueType is a WebAssembly value type: a number, vector, or reference
// type that can appear in a function signature, local, or global.
//
// See https://webassembly.github.io/spec/core/binary/types.html#value-types
type ValueType = byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c
	ValueTypeV128 ValueType = 0x7b

	// ValueTypeFuncref is a reference to a function, regardless of its type.
	ValueTypeFuncref ValueType = 0x70
	// ValueTypeExternref is an opaque reference supplied by the host.
	ValueTypeExternref ValueType = 0x6f
)

// RefType distinguishes the built-in reference types from a GC proposal
// indexed heap type (struct/array) reference.
type RefType struct {
	// Nullable is true when the reference may be null (the common case;
	// the binary format's "abstract" heap types funcref/externref are
	// always nullable, while (ref $t) forms are not).
	Nullable bool
	// Heap names the referenced heap type. Its zero value (Abstract 0)
	// names no valid heap type, so it must always be set.
	Heap HeapType
}

// HeapType identifies what a reference points to. Abstract heap types use
// the negative-LEB128 encoded single-byte forms from the GC/reference-types
// proposals; concrete heap types index into the type section.
type HeapType struct {
	// Abstract is one of the HeapTypeFunc/.../HeapTypeNone values below,
	// used when TypeIndex is not set.
	Abstract byte
	// IsTypeIndex is true when this heap type names a concrete type
	// defined in the module's type section, via TypeIndex.
	IsTypeIndex bool
	TypeIndex   Index
}

const (
	HeapTypeFunc    byte = 0x70
	HeapTypeExtern  byte = 0x6f
	HeapTypeAny     byte = 0x6e
	HeapTypeEq      byte = 0x6d
	HeapTypeI31     byte = 0x6c
	HeapTypeNoFunc  byte = 0x73
	HeapTypeNoExtern byte = 0x72
	HeapTypeStruct  byte = 0x6b
	HeapTypeArray   byte = 0x6a
	HeapTypeNone    byte = 0x71
)

// ValueTypeName returns the WebAssembly text format field name of t.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	}
	return "unknown"
}
