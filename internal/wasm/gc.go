package wasm

// StorageType is either a ValueType or, for struct/array fields, one of
// the packed storage types introduced by the GC proposal.
type StorageType struct {
	// Packed is true when this field is stored packed (i8/i16) rather than
	// as a full ValueType, in which case Value is unset.
	Packed bool
	// PackedType is 0x78 (i8) or 0x77 (i16) when Packed is true.
	PackedType byte
	Value      ValueType
}

const (
	StorageTypeI8  byte = 0x78
	StorageTypeI16 byte = 0x77
)

// FieldType is one field of a struct or array type (GC proposal).
type FieldType struct {
	Storage   StorageType
	Mutable   bool
}

// StructType is a GC composite type with named (index-addressed) fields.
//
// See https://github.com/WebAssembly/gc/blob/main/proposals/gc/MVP.md
type StructType struct {
	Fields []FieldType
}

// ArrayType is a GC composite type: a single, arbitrarily-sized field.
type ArrayType struct {
	Element FieldType
}

// CompositeTypeKind distinguishes the three shapes a CompositeType can take.
type CompositeTypeKind int

const (
	CompositeTypeFunc CompositeTypeKind = iota
	CompositeTypeStruct
	CompositeTypeArray
)

// CompositeType is one entry of the type section. Before the GC proposal
// every type-section entry was a FunctionType; CompositeType generalizes
// this to also allow struct and array types, each tagged so an encoder can
// dispatch without a type switch on interface values.
type CompositeType struct {
	Kind   CompositeTypeKind
	Func   *FunctionType
	Struct *StructType
	Array  *ArrayType

	// Sub marks this type as a GC "sub" declaration: it may (Final=false)
	// or may not (Final=true) be further refined by other types in the
	// module, and SuperTypes names the types it extends.
	Sub        bool
	Final      bool
	SuperTypes []Index
}

// RecursionGroup marks a contiguous run of TypeSection entries, starting at
// Start and Size long, as one GC proposal "rec" group: types that may refer
// to each other circularly. It is a range over TypeSection rather than a
// copy of its contents, so TypeSection stays the single source of type
// indices the rest of the module (instructions, other types' SuperTypes)
// counts against. A module with no explicit rec groups still has one
// implicit single-type group per entry; the binary encoder only emits the
// explicit rec-group wrapper for groups registered here with more than one
// member, matching the MVP encoding's backward-compatible single-type
// shorthand.
type RecursionGroup struct {
	Start Index
	Size  Index
}
