package binary

import (
	"github.com/wasmkit/wasmkit/internal/leb128"
	"github.com/wasmkit/wasmkit/internal/u32"
	"github.com/wasmkit/wasmkit/internal/u64"
	"github.com/wasmkit/wasmkit/internal/wasm"
)

// encodeInstruction encodes one instruction, including its prefix byte
// (if any) and immediates. Dispatch is a flat switch over Opcode/SubOpcode
// rather than a method on a per-instruction type, matching the tagged
// variant representation in internal/wasm: one function, one table of
// cases, no virtual calls.
func encodeInstruction(ins wasm.Instruction) []byte {
	switch ins.Prefix {
	case wasm.OpcodeMiscPrefix:
		return encodeMiscInstruction(ins)
	case wasm.OpcodeGCPrefix:
		return encodeGCInstruction(ins)
	case wasm.OpcodeAtomicPrefix:
		return encodeAtomicInstruction(ins)
	}
	return encodeBaseInstruction(ins)
}

func encodeBaseInstruction(ins wasm.Instruction) []byte {
	op := ins.Opcode
	switch op {
	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf:
		return append([]byte{op}, encodeBlockType(ins.Block)...)

	case wasm.OpcodeBr, wasm.OpcodeBrIf:
		return append([]byte{op}, encodeU32Index(ins.Label)...)

	case wasm.OpcodeBrTable:
		out := []byte{op}
		out = append(out, encodeVector(len(ins.Labels), encodeIndices(ins.Labels))...)
		return append(out, encodeU32Index(ins.Default)...)

	case wasm.OpcodeCall, wasm.OpcodeReturnCall:
		return append([]byte{op}, encodeU32Index(ins.FuncIndex)...)

	case wasm.OpcodeCallIndirect, wasm.OpcodeReturnCallIndirect:
		out := []byte{op}
		out = append(out, encodeU32Index(ins.TypeIndex)...)
		return append(out, encodeU32Index(ins.TableIndex)...)

	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee:
		return append([]byte{op}, encodeU32Index(ins.LocalIndex)...)

	case wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet:
		return append([]byte{op}, encodeU32Index(ins.GlobalIndex)...)

	case wasm.OpcodeTableGet, wasm.OpcodeTableSet:
		return append([]byte{op}, encodeU32Index(ins.TableIndex)...)

	case wasm.OpcodeRefNull:
		return append([]byte{op}, encodeHeapType(ins.RefType.Heap)...)

	case wasm.OpcodeRefFunc:
		return append([]byte{op}, encodeU32Index(ins.FuncIndex)...)

	case wasm.OpcodeSelectT:
		out := []byte{op}
		return append(out, encodeVector(len(ins.SelectTypes), encodeValueTypes(ins.SelectTypes))...)

	case wasm.OpcodeI32Const:
		return append([]byte{op}, leb128.EncodeInt32(ins.I32)...)
	case wasm.OpcodeI64Const:
		return append([]byte{op}, leb128.EncodeInt64(ins.I64)...)
	case wasm.OpcodeF32Const:
		return append([]byte{op}, u32.LeBytesF32(ins.F32)...)
	case wasm.OpcodeF64Const:
		return append([]byte{op}, u64.LeBytesF64(ins.F64)...)

	case wasm.OpcodeMemorySize, wasm.OpcodeMemoryGrow:
		return []byte{op, 0x00} // reserved byte, always 0 until multi-memory needs it

	default:
		if isMemoryAccessOpcode(op) {
			out := []byte{op}
			out = append(out, leb128.EncodeUint32(ins.MemArg.Align)...)
			return append(out, leb128.EncodeUint32(ins.MemArg.Offset)...)
		}
		// Every other opcode (arithmetic, comparison, drop, end, nop,
		// unreachable, return, else, ...) has no immediate.
		return []byte{op}
	}
}

func isMemoryAccessOpcode(op wasm.Opcode) bool {
	return op >= wasm.OpcodeI32Load && op <= wasm.OpcodeI64Store32
}

func encodeMiscInstruction(ins wasm.Instruction) []byte {
	out := []byte{wasm.OpcodeMiscPrefix}
	out = append(out, leb128.EncodeUint32(ins.SubOpcode)...)
	switch ins.SubOpcode {
	case wasm.MiscOpcodeMemoryInit:
		out = append(out, encodeU32Index(ins.DataIndex)...)
		out = append(out, 0x00) // memory index, reserved
	case wasm.MiscOpcodeDataDrop:
		out = append(out, encodeU32Index(ins.DataIndex)...)
	case wasm.MiscOpcodeMemoryCopy:
		out = append(out, 0x00, 0x00) // dst, src memory indices, reserved
	case wasm.MiscOpcodeMemoryFill:
		out = append(out, 0x00)
	case wasm.MiscOpcodeTableInit:
		out = append(out, encodeU32Index(ins.TableIndex)...)
		out = append(out, encodeU32Index(ins.ElemIndex)...)
	case wasm.MiscOpcodeElemDrop:
		out = append(out, encodeU32Index(ins.ElemIndex)...)
	case wasm.MiscOpcodeTableCopy:
		out = append(out, encodeU32Index(ins.TableIndex)...)
		out = append(out, encodeU32Index(ins.ElemIndex)...)
	case wasm.MiscOpcodeTableGrow, wasm.MiscOpcodeTableSize, wasm.MiscOpcodeTableFill:
		out = append(out, encodeU32Index(ins.TableIndex)...)
	}
	return out
}

func encodeGCInstruction(ins wasm.Instruction) []byte {
	out := []byte{wasm.OpcodeGCPrefix}
	out = append(out, leb128.EncodeUint32(ins.SubOpcode)...)
	switch ins.SubOpcode {
	case wasm.GCOpcodeStructNew, wasm.GCOpcodeStructNewDefault:
		out = append(out, encodeU32Index(ins.TypeIndex)...)
	case wasm.GCOpcodeStructGet, wasm.GCOpcodeStructGetS, wasm.GCOpcodeStructGetU, wasm.GCOpcodeStructSet:
		out = append(out, encodeU32Index(ins.TypeIndex)...)
		out = append(out, encodeU32Index(ins.FieldIndex)...)
	case wasm.GCOpcodeArrayNew, wasm.GCOpcodeArrayNewDefault, wasm.GCOpcodeArrayGet, wasm.GCOpcodeArrayGetS,
		wasm.GCOpcodeArrayGetU, wasm.GCOpcodeArraySet, wasm.GCOpcodeArrayFill:
		out = append(out, encodeU32Index(ins.TypeIndex)...)
	case wasm.GCOpcodeArrayNewFixed:
		out = append(out, encodeU32Index(ins.TypeIndex)...)
		out = append(out, leb128.EncodeUint32(ins.ArrayFixedLength)...)
	case wasm.GCOpcodeRefTest, wasm.GCOpcodeRefTestNull, wasm.GCOpcodeRefCast, wasm.GCOpcodeRefCastNull:
		out = append(out, encodeHeapType(ins.RefType.Heap)...)
	case wasm.GCOpcodeBrOnCast, wasm.GCOpcodeBrOnCastFail:
		var flags byte
		if ins.RefType.Nullable {
			flags |= 0x01
		}
		if ins.RefType2.Nullable {
			flags |= 0x02
		}
		out = append(out, flags)
		out = append(out, encodeU32Index(ins.Label)...)
		out = append(out, encodeHeapType(ins.RefType.Heap)...)
		out = append(out, encodeHeapType(ins.RefType2.Heap)...)
	}
	return out
}

func encodeAtomicInstruction(ins wasm.Instruction) []byte {
	out := []byte{wasm.OpcodeAtomicPrefix}
	out = append(out, leb128.EncodeUint32(ins.SubOpcode)...)
	if ins.SubOpcode == wasm.AtomicOpcodeFence {
		return append(out, 0x00) // reserved byte
	}
	out = append(out, leb128.EncodeUint32(ins.MemArg.Align)...)
	return append(out, leb128.EncodeUint32(ins.MemArg.Offset)...)
}
