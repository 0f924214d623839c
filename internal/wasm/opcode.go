package wasm

// Opcode is a single-byte base instruction opcode. Instructions from the
// GC, threads/atomics, and bulk-memory/reference-types proposals are
// encoded as one of the prefix bytes below followed by a LEB128 sub-opcode;
// those sub-opcodes are modeled as plain uint32 values, not Opcode.
type Opcode = byte

// Prefix bytes that introduce a LEB128-encoded sub-opcode.
const (
	OpcodeMiscPrefix   Opcode = 0xfc // bulk-memory & reference-types
	OpcodeGCPrefix     Opcode = 0xfb // garbage collection proposal
	OpcodeAtomicPrefix Opcode = 0xfe // threads & atomics proposal
	OpcodeVectorPrefix Opcode = 0xfd // fixed-width SIMD (v128)
)

// Control instructions.
const (
	OpcodeUnreachable Opcode = 0x00
	OpcodeNop         Opcode = 0x01
	OpcodeBlock       Opcode = 0x02
	OpcodeLoop        Opcode = 0x03
	OpcodeIf          Opcode = 0x04
	OpcodeElse        Opcode = 0x05
	OpcodeTry         Opcode = 0x06
	OpcodeCatch       Opcode = 0x07
	OpcodeThrow       Opcode = 0x08
	OpcodeRethrow     Opcode = 0x09
	OpcodeEnd         Opcode = 0x0b
	OpcodeBr          Opcode = 0x0c
	OpcodeBrIf        Opcode = 0x0d
	OpcodeBrTable     Opcode = 0x0e
	OpcodeReturn      Opcode = 0x0f
	OpcodeCall        Opcode = 0x10
	OpcodeCallIndirect Opcode = 0x11
	OpcodeReturnCall   Opcode = 0x12 // tail-call proposal
	OpcodeReturnCallIndirect Opcode = 0x13 // tail-call proposal
	OpcodeDelegate     Opcode = 0x18
	OpcodeCatchAll     Opcode = 0x19
)

// Reference instructions.
const (
	OpcodeRefNull   Opcode = 0xd0
	OpcodeRefIsNull Opcode = 0xd1
	OpcodeRefFunc   Opcode = 0xd2
	OpcodeRefAsNonNull Opcode = 0xd3 // GC proposal
	OpcodeBrOnNull     Opcode = 0xd4 // GC proposal
	OpcodeRefEq        Opcode = 0xd5 // GC proposal
	OpcodeBrOnNonNull  Opcode = 0xd6 // GC proposal
)

// Parametric instructions.
const (
	OpcodeDrop     Opcode = 0x1a
	OpcodeSelect   Opcode = 0x1b
	OpcodeSelectT  Opcode = 0x1c
)

// Variable instructions.
const (
	OpcodeLocalGet  Opcode = 0x20
	OpcodeLocalSet  Opcode = 0x21
	OpcodeLocalTee  Opcode = 0x22
	OpcodeGlobalGet Opcode = 0x23
	OpcodeGlobalSet Opcode = 0x24
	OpcodeTableGet  Opcode = 0x25
	OpcodeTableSet  Opcode = 0x26
)

// Memory instructions.
const (
	OpcodeI32Load    Opcode = 0x28
	OpcodeI64Load    Opcode = 0x29
	OpcodeF32Load    Opcode = 0x2a
	OpcodeF64Load    Opcode = 0x2b
	OpcodeI32Load8S  Opcode = 0x2c
	OpcodeI32Load8U  Opcode = 0x2d
	OpcodeI32Load16S Opcode = 0x2e
	OpcodeI32Load16U Opcode = 0x2f
	OpcodeI64Load8S  Opcode = 0x30
	OpcodeI64Load8U  Opcode = 0x31
	OpcodeI64Load16S Opcode = 0x32
	OpcodeI64Load16U Opcode = 0x33
	OpcodeI64Load32S Opcode = 0x34
	OpcodeI64Load32U Opcode = 0x35
	OpcodeI32Store   Opcode = 0x36
	OpcodeI64Store   Opcode = 0x37
	OpcodeF32Store   Opcode = 0x38
	OpcodeF64Store   Opcode = 0x39
	OpcodeI32Store8  Opcode = 0x3a
	OpcodeI32Store16 Opcode = 0x3b
	OpcodeI64Store8  Opcode = 0x3c
	OpcodeI64Store16 Opcode = 0x3d
	OpcodeI64Store32 Opcode = 0x3e
	OpcodeMemorySize Opcode = 0x3f
	OpcodeMemoryGrow Opcode = 0x40
)

// Numeric constant and arithmetic instructions (non-exhaustive set
// sufficient for the module-builder surface; the dispatch table in
// internal/wasm/binary follows the same grouping).
const (
	OpcodeI32Const Opcode = 0x41
	OpcodeI64Const Opcode = 0x42
	OpcodeF32Const Opcode = 0x43
	OpcodeF64Const Opcode = 0x44

	OpcodeI32Eqz  Opcode = 0x45
	OpcodeI32Eq   Opcode = 0x46
	OpcodeI32Ne   Opcode = 0x47
	OpcodeI32LtS  Opcode = 0x48
	OpcodeI32LtU  Opcode = 0x49
	OpcodeI32GtS  Opcode = 0x4a
	OpcodeI32GtU  Opcode = 0x4b
	OpcodeI32LeS  Opcode = 0x4c
	OpcodeI32LeU  Opcode = 0x4d
	OpcodeI32GeS  Opcode = 0x4e
	OpcodeI32GeU  Opcode = 0x4f

	OpcodeI32Add Opcode = 0x6a
	OpcodeI32Sub Opcode = 0x6b
	OpcodeI32Mul Opcode = 0x6c
	OpcodeI32DivS Opcode = 0x6d
	OpcodeI32DivU Opcode = 0x6e
	OpcodeI32RemS Opcode = 0x6f
	OpcodeI32RemU Opcode = 0x70
	OpcodeI32And Opcode = 0x71
	OpcodeI32Or  Opcode = 0x72
	OpcodeI32Xor Opcode = 0x73
	OpcodeI32Shl Opcode = 0x74
	OpcodeI32ShrS Opcode = 0x75
	OpcodeI32ShrU Opcode = 0x76
	OpcodeI32Rotl Opcode = 0x77
	OpcodeI32Rotr Opcode = 0x78

	OpcodeI64Add Opcode = 0x7c
	OpcodeI64Sub Opcode = 0x7d
	OpcodeI64Mul Opcode = 0x7e

	OpcodeF32Add Opcode = 0x92
	OpcodeF32Sub Opcode = 0x93
	OpcodeF32Mul Opcode = 0x94
	OpcodeF32Div Opcode = 0x95

	OpcodeF64Add Opcode = 0xa0
	OpcodeF64Sub Opcode = 0xa1
	OpcodeF64Mul Opcode = 0xa2
	OpcodeF64Div Opcode = 0xa3

	OpcodeI32WrapI64       Opcode = 0xa7
	OpcodeI64ExtendI32S    Opcode = 0xac
	OpcodeI64ExtendI32U    Opcode = 0xad

	// Sign-extension proposal (finished in the 2.0 core spec).
	OpcodeI32Extend8S  Opcode = 0xc0
	OpcodeI32Extend16S Opcode = 0xc1
	OpcodeI64Extend8S  Opcode = 0xc2
	OpcodeI64Extend16S Opcode = 0xc3
	OpcodeI64Extend32S Opcode = 0xc4
)

// Sub-opcodes under the 0xFC (bulk-memory & reference-types) prefix.
const (
	MiscOpcodeI32TruncSatF32S Index = 0
	MiscOpcodeI32TruncSatF32U Index = 1
	MiscOpcodeI32TruncSatF64S Index = 2
	MiscOpcodeI32TruncSatF64U Index = 3
	MiscOpcodeI64TruncSatF32S Index = 4
	MiscOpcodeI64TruncSatF32U Index = 5
	MiscOpcodeI64TruncSatF64S Index = 6
	MiscOpcodeI64TruncSatF64U Index = 7
	MiscOpcodeMemoryInit Index = 8
	MiscOpcodeDataDrop   Index = 9
	MiscOpcodeMemoryCopy Index = 10
	MiscOpcodeMemoryFill Index = 11
	MiscOpcodeTableInit  Index = 12
	MiscOpcodeElemDrop   Index = 13
	MiscOpcodeTableCopy  Index = 14
	MiscOpcodeTableGrow  Index = 15
	MiscOpcodeTableSize  Index = 16
	MiscOpcodeTableFill  Index = 17
)

// Sub-opcodes under the 0xFB (GC) prefix (subset covering struct/array
// construction and field access).
const (
	GCOpcodeStructNew       Index = 0x00
	GCOpcodeStructNewDefault Index = 0x01
	GCOpcodeStructGet       Index = 0x02
	GCOpcodeStructGetS      Index = 0x03
	GCOpcodeStructGetU      Index = 0x04
	GCOpcodeStructSet       Index = 0x05
	GCOpcodeArrayNew        Index = 0x06
	GCOpcodeArrayNewDefault Index = 0x07
	GCOpcodeArrayNewFixed   Index = 0x08
	GCOpcodeArrayGet        Index = 0x0b
	GCOpcodeArrayGetS       Index = 0x0c
	GCOpcodeArrayGetU       Index = 0x0d
	GCOpcodeArraySet        Index = 0x0e
	GCOpcodeArrayLen        Index = 0x0f
	GCOpcodeArrayFill       Index = 0x10
	GCOpcodeRefTest         Index = 0x14
	GCOpcodeRefTestNull     Index = 0x15
	GCOpcodeRefCast         Index = 0x16
	GCOpcodeRefCastNull     Index = 0x17
	GCOpcodeBrOnCast        Index = 0x18
	GCOpcodeBrOnCastFail    Index = 0x19
	GCOpcodeAnyConvertExtern Index = 0x1a
	GCOpcodeExternConvertAny Index = 0x1b
	GCOpcodeI31New           Index = 0x1c
	GCOpcodeI31GetS          Index = 0x1d
	GCOpcodeI31GetU          Index = 0x1e
)

// Sub-opcodes under the 0xFE (threads/atomics) prefix (subset covering
// fence and the i32/i64 read-modify-write family).
const (
	AtomicOpcodeNotify      Index = 0x00
	AtomicOpcodeWait32      Index = 0x01
	AtomicOpcodeWait64      Index = 0x02
	AtomicOpcodeFence       Index = 0x03
	AtomicOpcodeI32Load     Index = 0x10
	AtomicOpcodeI64Load     Index = 0x11
	AtomicOpcodeI32Store    Index = 0x17
	AtomicOpcodeI64Store    Index = 0x18
	AtomicOpcodeI32RmwAdd   Index = 0x1e
	AtomicOpcodeI64RmwAdd   Index = 0x1f
	AtomicOpcodeI32RmwSub   Index = 0x25
	AtomicOpcodeI64RmwSub   Index = 0x26
	AtomicOpcodeI32RmwCmpxchg Index = 0x48
	AtomicOpcodeI64RmwCmpxchg Index = 0x49
)
