package wasmkit

import "github.com/wasmkit/wasmkit/internal/wasm"

// Instruction constructors. Each builds an Instruction value for use in a
// FunctionBuilder.WithBody call or a ConstantExpression; they do not
// append anything to a module themselves.
var (
	Plain  = wasm.Plain
	Block  = wasm.Block
	Loop   = wasm.Loop
	If     = wasm.If
	Else   = wasm.Else
	End    = wasm.End
	Br     = wasm.Br
	BrIf   = wasm.BrIf
	BrTable = wasm.BrTable

	LocalGet  = wasm.LocalGet
	LocalSet  = wasm.LocalSet
	LocalTee  = wasm.LocalTee
	GlobalGet = wasm.GlobalGet
	GlobalSet = wasm.GlobalSet

	Call               = wasm.Call
	CallIndirect       = wasm.CallIndirect
	ReturnCall         = wasm.ReturnCall
	ReturnCallIndirect = wasm.ReturnCallIndirect

	I32Const = wasm.I32Const
	I64Const = wasm.I64Const
	F32Const = wasm.F32Const
	F64Const = wasm.F64Const

	Load  = wasm.Load
	Store = wasm.Store

	RefNull = wasm.RefNull
	RefFunc = wasm.RefFunc

	Misc       = wasm.Misc
	MemoryInit = wasm.MemoryInit
	TableInit  = wasm.TableInit

	GC               = wasm.GC
	StructNew        = wasm.StructNew
	StructNewDefault = wasm.StructNewDefault
	StructGet        = wasm.StructGet
	StructGetS       = wasm.StructGetS
	StructGetU       = wasm.StructGetU
	StructSet        = wasm.StructSet
	ArrayNew         = wasm.ArrayNew
	ArrayNewDefault  = wasm.ArrayNewDefault
	ArrayNewFixed    = wasm.ArrayNewFixed
	ArrayGet         = wasm.ArrayGet
	ArrayGetS        = wasm.ArrayGetS
	ArrayGetU        = wasm.ArrayGetU
	ArraySet         = wasm.ArraySet
	ArrayFill        = wasm.ArrayFill
	RefTest          = wasm.RefTest
	RefCast          = wasm.RefCast
	BrOnCast         = wasm.BrOnCast
	BrOnCastFail     = wasm.BrOnCastFail
	AnyConvertExtern = wasm.AnyConvertExtern
	ExternConvertAny = wasm.ExternConvertAny
	I31New           = wasm.I31New
	I31GetS          = wasm.I31GetS
	I31GetU          = wasm.I31GetU

	Atomic      = wasm.Atomic
	AtomicFence = wasm.AtomicFence
)

// Base opcodes, for use with Plain, Load, and Store.
const (
	OpcodeUnreachable = wasm.OpcodeUnreachable
	OpcodeNop         = wasm.OpcodeNop
	OpcodeReturn      = wasm.OpcodeReturn
	OpcodeDrop        = wasm.OpcodeDrop
	OpcodeSelect      = wasm.OpcodeSelect

	OpcodeI32Eqz = wasm.OpcodeI32Eqz
	OpcodeI32Eq  = wasm.OpcodeI32Eq
	OpcodeI32Ne  = wasm.OpcodeI32Ne
	OpcodeI32Add = wasm.OpcodeI32Add
	OpcodeI32Sub = wasm.OpcodeI32Sub
	OpcodeI32Mul = wasm.OpcodeI32Mul

	OpcodeI64Add = wasm.OpcodeI64Add
	OpcodeI64Sub = wasm.OpcodeI64Sub
	OpcodeI64Mul = wasm.OpcodeI64Mul

	OpcodeF32Add = wasm.OpcodeF32Add
	OpcodeF64Add = wasm.OpcodeF64Add

	OpcodeI32Load    = wasm.OpcodeI32Load
	OpcodeI64Load    = wasm.OpcodeI64Load
	OpcodeI32Store   = wasm.OpcodeI32Store
	OpcodeI64Store   = wasm.OpcodeI64Store
	OpcodeMemorySize = wasm.OpcodeMemorySize
	OpcodeMemoryGrow = wasm.OpcodeMemoryGrow
)

// GC sub-opcodes, for use with GC.
const (
	GCOpcodeStructNew        = wasm.GCOpcodeStructNew
	GCOpcodeStructNewDefault = wasm.GCOpcodeStructNewDefault
	GCOpcodeStructGet        = wasm.GCOpcodeStructGet
	GCOpcodeStructGetS       = wasm.GCOpcodeStructGetS
	GCOpcodeStructGetU       = wasm.GCOpcodeStructGetU
	GCOpcodeStructSet        = wasm.GCOpcodeStructSet
	GCOpcodeArrayNew         = wasm.GCOpcodeArrayNew
	GCOpcodeArrayNewDefault  = wasm.GCOpcodeArrayNewDefault
	GCOpcodeArrayNewFixed    = wasm.GCOpcodeArrayNewFixed
	GCOpcodeArrayGet         = wasm.GCOpcodeArrayGet
	GCOpcodeArrayGetS        = wasm.GCOpcodeArrayGetS
	GCOpcodeArrayGetU        = wasm.GCOpcodeArrayGetU
	GCOpcodeArraySet         = wasm.GCOpcodeArraySet
	GCOpcodeArrayLen         = wasm.GCOpcodeArrayLen
	GCOpcodeArrayFill        = wasm.GCOpcodeArrayFill
	GCOpcodeRefTest          = wasm.GCOpcodeRefTest
	GCOpcodeRefTestNull      = wasm.GCOpcodeRefTestNull
	GCOpcodeRefCast          = wasm.GCOpcodeRefCast
	GCOpcodeRefCastNull      = wasm.GCOpcodeRefCastNull
	GCOpcodeBrOnCast         = wasm.GCOpcodeBrOnCast
	GCOpcodeBrOnCastFail     = wasm.GCOpcodeBrOnCastFail
	GCOpcodeAnyConvertExtern = wasm.GCOpcodeAnyConvertExtern
	GCOpcodeExternConvertAny = wasm.GCOpcodeExternConvertAny
	GCOpcodeI31New           = wasm.GCOpcodeI31New
	GCOpcodeI31GetS          = wasm.GCOpcodeI31GetS
	GCOpcodeI31GetU          = wasm.GCOpcodeI31GetU
)

// Atomic sub-opcodes, for use with Atomic.
const (
	AtomicOpcodeNotify        = wasm.AtomicOpcodeNotify
	AtomicOpcodeWait32        = wasm.AtomicOpcodeWait32
	AtomicOpcodeWait64        = wasm.AtomicOpcodeWait64
	AtomicOpcodeFence         = wasm.AtomicOpcodeFence
	AtomicOpcodeI32Load       = wasm.AtomicOpcodeI32Load
	AtomicOpcodeI64Load       = wasm.AtomicOpcodeI64Load
	AtomicOpcodeI32Store      = wasm.AtomicOpcodeI32Store
	AtomicOpcodeI64Store      = wasm.AtomicOpcodeI64Store
	AtomicOpcodeI32RmwAdd     = wasm.AtomicOpcodeI32RmwAdd
	AtomicOpcodeI64RmwAdd     = wasm.AtomicOpcodeI64RmwAdd
	AtomicOpcodeI32RmwSub     = wasm.AtomicOpcodeI32RmwSub
	AtomicOpcodeI64RmwSub     = wasm.AtomicOpcodeI64RmwSub
	AtomicOpcodeI32RmwCmpxchg = wasm.AtomicOpcodeI32RmwCmpxchg
	AtomicOpcodeI64RmwCmpxchg = wasm.AtomicOpcodeI64RmwCmpxchg
)

// CompositeTypeKind values, for use with AddType.
const (
	CompositeTypeFunc   = wasm.CompositeTypeFunc
	CompositeTypeStruct = wasm.CompositeTypeStruct
	CompositeTypeArray  = wasm.CompositeTypeArray
)

// ValueType constants.
const (
	ValueTypeI32       = wasm.ValueTypeI32
	ValueTypeI64       = wasm.ValueTypeI64
	ValueTypeF32       = wasm.ValueTypeF32
	ValueTypeF64       = wasm.ValueTypeF64
	ValueTypeFuncref   = wasm.ValueTypeFuncref
	ValueTypeExternref = wasm.ValueTypeExternref
)

// Abstract heap types, for use with RefNull/RefType.
const (
	HeapTypeFunc   = wasm.HeapTypeFunc
	HeapTypeExtern = wasm.HeapTypeExtern
	HeapTypeAny    = wasm.HeapTypeAny
	HeapTypeEq     = wasm.HeapTypeEq
	HeapTypeStruct = wasm.HeapTypeStruct
	HeapTypeArray  = wasm.HeapTypeArray
)

// BlockType kinds, for use with Block/Loop/If.
const (
	BlockTypeEmpty = wasm.BlockTypeEmpty
	BlockTypeValue = wasm.BlockTypeValue
	BlockTypeIndex = wasm.BlockTypeIndex
)

// ElementMode and DataMode values.
const (
	ElementModeActive      = wasm.ElementModeActive
	ElementModePassive     = wasm.ElementModePassive
	ElementModeDeclarative = wasm.ElementModeDeclarative

	DataModeActive  = wasm.DataModeActive
	DataModePassive = wasm.DataModePassive
)

type (
	ElementMode = wasm.ElementMode
	DataMode    = wasm.DataMode
)
