package wasm

// Instruction is a single WebAssembly instruction, modeled as one tagged
// variant rather than a type hierarchy: every instruction shares this one
// struct, and only the fields relevant to Opcode (and, for prefixed
// instructions, SubOpcode) are populated. An encoder dispatches on Opcode
// with a plain switch; there is no virtual call or reflection involved in
// walking an instruction tree.
//
// Prefix is zero for base (single-byte) opcodes, and one of
// OpcodeMiscPrefix / OpcodeGCPrefix / OpcodeAtomicPrefix /
// OpcodeVectorPrefix when Opcode should be read as a LEB128 sub-opcode
// under that prefix byte (SubOpcode, not Opcode, carries the value in that
// case).
type Instruction struct {
	Prefix    byte
	Opcode    Opcode
	SubOpcode Index

	// Control flow.
	Block    *BlockType
	Label    Index
	Labels   []Index // br_table
	Default  Index   // br_table

	// Index-space references.
	LocalIndex  Index
	GlobalIndex Index
	FuncIndex   Index
	TypeIndex   Index
	TableIndex  Index
	ElemIndex   Index
	DataIndex   Index
	FieldIndex  Index

	// Memory/table access.
	MemArg MemArg

	// Constants.
	I32 int32
	I64 int64
	F32 float32
	F64 float64

	// Reference types. RefType2 is populated only for br_on_cast/
	// br_on_cast_fail, which carry a source and a target ref type.
	RefType     *RefType
	RefType2    *RefType
	SelectTypes []ValueType

	// GC array.new_fixed length; array.fill/copy/init length operand is a
	// runtime value (pushed on the stack), not an immediate, so no field
	// is needed for it here.
	ArrayFixedLength uint32
}

// Plain returns a zero-immediate instruction, e.g. end, nop, i32.add.
func Plain(opcode Opcode) Instruction {
	return Instruction{Opcode: opcode}
}

// LocalGet, LocalSet, and LocalTee reference a function-local by index.
func LocalGet(index Index) Instruction { return Instruction{Opcode: OpcodeLocalGet, LocalIndex: index} }
func LocalSet(index Index) Instruction { return Instruction{Opcode: OpcodeLocalSet, LocalIndex: index} }
func LocalTee(index Index) Instruction { return Instruction{Opcode: OpcodeLocalTee, LocalIndex: index} }

// GlobalGet and GlobalSet reference a module global by index.
func GlobalGet(index Index) Instruction {
	return Instruction{Opcode: OpcodeGlobalGet, GlobalIndex: index}
}
func GlobalSet(index Index) Instruction {
	return Instruction{Opcode: OpcodeGlobalSet, GlobalIndex: index}
}

// Call invokes a function by index.
func Call(funcIndex Index) Instruction { return Instruction{Opcode: OpcodeCall, FuncIndex: funcIndex} }

// CallIndirect invokes a function looked up in a table through a type
// signature check.
func CallIndirect(typeIndex, tableIndex Index) Instruction {
	return Instruction{Opcode: OpcodeCallIndirect, TypeIndex: typeIndex, TableIndex: tableIndex}
}

// ReturnCall and ReturnCallIndirect are the tail-call proposal's
// non-returning variants of Call/CallIndirect.
func ReturnCall(funcIndex Index) Instruction {
	return Instruction{Opcode: OpcodeReturnCall, FuncIndex: funcIndex}
}
func ReturnCallIndirect(typeIndex, tableIndex Index) Instruction {
	return Instruction{Opcode: OpcodeReturnCallIndirect, TypeIndex: typeIndex, TableIndex: tableIndex}
}

// Block, Loop, and If open a structured control-flow region; the matching
// End instruction closes it, and for If an Else may appear in between.
func Block(bt BlockType) Instruction { return Instruction{Opcode: OpcodeBlock, Block: &bt} }
func Loop(bt BlockType) Instruction  { return Instruction{Opcode: OpcodeLoop, Block: &bt} }
func If(bt BlockType) Instruction    { return Instruction{Opcode: OpcodeIf, Block: &bt} }
func Else() Instruction              { return Instruction{Opcode: OpcodeElse} }
func End() Instruction               { return Instruction{Opcode: OpcodeEnd} }

// Br, BrIf, and BrTable transfer control to an enclosing label.
func Br(label Index) Instruction   { return Instruction{Opcode: OpcodeBr, Label: label} }
func BrIf(label Index) Instruction { return Instruction{Opcode: OpcodeBrIf, Label: label} }
func BrTable(labels []Index, def Index) Instruction {
	return Instruction{Opcode: OpcodeBrTable, Labels: labels, Default: def}
}

// I32Const, I64Const, F32Const, and F64Const push a literal value.
func I32Const(v int32) Instruction  { return Instruction{Opcode: OpcodeI32Const, I32: v} }
func I64Const(v int64) Instruction  { return Instruction{Opcode: OpcodeI64Const, I64: v} }
func F32Const(v float32) Instruction { return Instruction{Opcode: OpcodeF32Const, F32: v} }
func F64Const(v float64) Instruction { return Instruction{Opcode: OpcodeF64Const, F64: v} }

// Load and Store build a memory access instruction for the given base
// opcode (e.g. OpcodeI32Load, OpcodeI64Store8) with the given alignment
// hint and offset.
func Load(opcode Opcode, arg MemArg) Instruction  { return Instruction{Opcode: opcode, MemArg: arg} }
func Store(opcode Opcode, arg MemArg) Instruction { return Instruction{Opcode: opcode, MemArg: arg} }

// RefNull pushes the null reference of the given heap type.
func RefNull(heap HeapType) Instruction {
	return Instruction{Opcode: OpcodeRefNull, RefType: &RefType{Nullable: true, Heap: heap}}
}

// RefFunc pushes a reference to the function at funcIndex.
func RefFunc(funcIndex Index) Instruction {
	return Instruction{Opcode: OpcodeRefFunc, FuncIndex: funcIndex}
}

// Misc builds a bulk-memory/reference-types instruction (0xFC prefix).
func Misc(sub Index) Instruction {
	return Instruction{Prefix: OpcodeMiscPrefix, SubOpcode: sub}
}

// MemoryInit builds memory.init dataIndex (0xFC 8).
func MemoryInit(dataIndex Index) Instruction {
	i := Misc(MiscOpcodeMemoryInit)
	i.DataIndex = dataIndex
	return i
}

// TableInit builds table.init tableIndex elemIndex (0xFC 12).
func TableInit(tableIndex, elemIndex Index) Instruction {
	i := Misc(MiscOpcodeTableInit)
	i.TableIndex = tableIndex
	i.ElemIndex = elemIndex
	return i
}

// GC builds a garbage-collection proposal instruction (0xFB prefix).
func GC(sub Index) Instruction {
	return Instruction{Prefix: OpcodeGCPrefix, SubOpcode: sub}
}

// StructNew and StructNewDefault allocate a struct of the given type.
func StructNew(typeIndex Index) Instruction {
	i := GC(GCOpcodeStructNew)
	i.TypeIndex = typeIndex
	return i
}
func StructNewDefault(typeIndex Index) Instruction {
	i := GC(GCOpcodeStructNewDefault)
	i.TypeIndex = typeIndex
	return i
}

// StructGet, StructGetS, StructGetU, and StructSet access a struct field.
func StructGet(typeIndex, fieldIndex Index) Instruction {
	i := GC(GCOpcodeStructGet)
	i.TypeIndex, i.FieldIndex = typeIndex, fieldIndex
	return i
}
func StructGetS(typeIndex, fieldIndex Index) Instruction {
	i := GC(GCOpcodeStructGetS)
	i.TypeIndex, i.FieldIndex = typeIndex, fieldIndex
	return i
}
func StructGetU(typeIndex, fieldIndex Index) Instruction {
	i := GC(GCOpcodeStructGetU)
	i.TypeIndex, i.FieldIndex = typeIndex, fieldIndex
	return i
}
func StructSet(typeIndex, fieldIndex Index) Instruction {
	i := GC(GCOpcodeStructSet)
	i.TypeIndex, i.FieldIndex = typeIndex, fieldIndex
	return i
}

// ArrayNew, ArrayNewDefault, and ArrayNewFixed allocate an array of the
// given type.
func ArrayNew(typeIndex Index) Instruction {
	i := GC(GCOpcodeArrayNew)
	i.TypeIndex = typeIndex
	return i
}
func ArrayNewDefault(typeIndex Index) Instruction {
	i := GC(GCOpcodeArrayNewDefault)
	i.TypeIndex = typeIndex
	return i
}
func ArrayNewFixed(typeIndex Index, length uint32) Instruction {
	i := GC(GCOpcodeArrayNewFixed)
	i.TypeIndex, i.ArrayFixedLength = typeIndex, length
	return i
}

// ArrayGet, ArrayGetS, ArrayGetU, ArraySet, and ArrayFill access or
// populate an array's elements.
func ArrayGet(typeIndex Index) Instruction {
	i := GC(GCOpcodeArrayGet)
	i.TypeIndex = typeIndex
	return i
}
func ArrayGetS(typeIndex Index) Instruction {
	i := GC(GCOpcodeArrayGetS)
	i.TypeIndex = typeIndex
	return i
}
func ArrayGetU(typeIndex Index) Instruction {
	i := GC(GCOpcodeArrayGetU)
	i.TypeIndex = typeIndex
	return i
}
func ArraySet(typeIndex Index) Instruction {
	i := GC(GCOpcodeArraySet)
	i.TypeIndex = typeIndex
	return i
}
func ArrayFill(typeIndex Index) Instruction {
	i := GC(GCOpcodeArrayFill)
	i.TypeIndex = typeIndex
	return i
}

// RefTest and RefCast build the GC proposal's downcasting instructions.
// nullable selects the null-accepting sub-opcode (ref.test null / ref.cast
// null) over the non-null one.
func RefTest(heap HeapType, nullable bool) Instruction {
	sub := GCOpcodeRefTest
	if nullable {
		sub = GCOpcodeRefTestNull
	}
	i := GC(sub)
	i.RefType = &RefType{Nullable: nullable, Heap: heap}
	return i
}
func RefCast(heap HeapType, nullable bool) Instruction {
	sub := GCOpcodeRefCast
	if nullable {
		sub = GCOpcodeRefCastNull
	}
	i := GC(sub)
	i.RefType = &RefType{Nullable: nullable, Heap: heap}
	return i
}

// BrOnCast and BrOnCastFail branch to label depending on whether the
// top-of-stack reference from matches the to ref type (BrOnCast) or does
// not (BrOnCastFail).
func BrOnCast(label Index, from, to RefType) Instruction {
	i := GC(GCOpcodeBrOnCast)
	i.Label = label
	i.RefType, i.RefType2 = &from, &to
	return i
}
func BrOnCastFail(label Index, from, to RefType) Instruction {
	i := GC(GCOpcodeBrOnCastFail)
	i.Label = label
	i.RefType, i.RefType2 = &from, &to
	return i
}

// AnyConvertExtern and ExternConvertAny convert between the any and
// extern heap type hierarchies.
func AnyConvertExtern() Instruction { return GC(GCOpcodeAnyConvertExtern) }
func ExternConvertAny() Instruction { return GC(GCOpcodeExternConvertAny) }

// I31New, I31GetS, and I31GetU build and unpack an unboxed i31ref.
func I31New() Instruction   { return GC(GCOpcodeI31New) }
func I31GetS() Instruction  { return GC(GCOpcodeI31GetS) }
func I31GetU() Instruction  { return GC(GCOpcodeI31GetU) }

// Atomic builds a threads/atomics proposal instruction (0xFE prefix).
func Atomic(sub Index, arg MemArg) Instruction {
	return Instruction{Prefix: OpcodeAtomicPrefix, SubOpcode: sub, MemArg: arg}
}

// AtomicFence builds atomic.fence (0xFE 3), the one atomic instruction
// with no memory argument.
func AtomicFence() Instruction {
	return Instruction{Prefix: OpcodeAtomicPrefix, SubOpcode: AtomicOpcodeFence}
}
