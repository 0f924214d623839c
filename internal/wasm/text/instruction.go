package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wasmkit/wasmkit/internal/wasm"
)

// writeInstructions emits one line per instruction in body, managing
// indentation for block/loop/if/else/end the way the rest of this package
// writes flat, non-folded WAT.
func writeInstructions(w *writer, body []wasm.Instruction) {
	for _, ins := range body {
		switch ins.Opcode {
		case wasm.OpcodeElse:
			w.pop()
			w.line("else")
			w.push()
			continue
		case wasm.OpcodeEnd:
			w.pop()
			w.line("end")
			continue
		}

		w.line(instructionText(ins))

		switch ins.Opcode {
		case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf:
			w.push()
		}
	}
}

func instructionText(ins wasm.Instruction) string {
	switch ins.Prefix {
	case wasm.OpcodeMiscPrefix:
		return miscInstructionText(ins)
	case wasm.OpcodeGCPrefix:
		return gcInstructionText(ins)
	case wasm.OpcodeAtomicPrefix:
		return atomicInstructionText(ins)
	}
	return baseInstructionText(ins)
}

func baseInstructionText(ins wasm.Instruction) string {
	name, ok := baseMnemonics[ins.Opcode]
	if !ok {
		name = fmt.Sprintf("unknown-opcode-0x%02x", ins.Opcode)
	}

	switch ins.Opcode {
	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf:
		return name + blockTypeText(ins.Block)
	case wasm.OpcodeBr, wasm.OpcodeBrIf:
		return fmt.Sprintf("%s %d", name, ins.Label)
	case wasm.OpcodeBrTable:
		var sb strings.Builder
		sb.WriteString(name)
		for _, l := range ins.Labels {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatUint(uint64(l), 10))
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(uint64(ins.Default), 10))
		return sb.String()
	case wasm.OpcodeCall, wasm.OpcodeReturnCall:
		return fmt.Sprintf("%s %d", name, ins.FuncIndex)
	case wasm.OpcodeCallIndirect, wasm.OpcodeReturnCallIndirect:
		return fmt.Sprintf("%s %d (type %d)", name, ins.TableIndex, ins.TypeIndex)
	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee:
		return fmt.Sprintf("%s %d", name, ins.LocalIndex)
	case wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet:
		return fmt.Sprintf("%s %d", name, ins.GlobalIndex)
	case wasm.OpcodeTableGet, wasm.OpcodeTableSet:
		return fmt.Sprintf("%s %d", name, ins.TableIndex)
	case wasm.OpcodeRefNull:
		return fmt.Sprintf("%s %s", name, heapTypeText(ins.RefType.Heap))
	case wasm.OpcodeRefFunc:
		return fmt.Sprintf("%s %d", name, ins.FuncIndex)
	case wasm.OpcodeI32Const:
		return fmt.Sprintf("%s %d", name, ins.I32)
	case wasm.OpcodeI64Const:
		return fmt.Sprintf("%s %d", name, ins.I64)
	case wasm.OpcodeF32Const:
		return fmt.Sprintf("%s %s", name, strconv.FormatFloat(float64(ins.F32), 'g', -1, 32))
	case wasm.OpcodeF64Const:
		return fmt.Sprintf("%s %s", name, strconv.FormatFloat(ins.F64, 'g', -1, 64))
	}

	if isMemoryAccessOpcode(ins.Opcode) {
		s := name
		if ins.MemArg.Offset != 0 {
			s += fmt.Sprintf(" offset=%d", ins.MemArg.Offset)
		}
		if ins.MemArg.Align != 0 {
			s += fmt.Sprintf(" align=%d", uint32(1)<<ins.MemArg.Align)
		}
		return s
	}

	return name
}

func isMemoryAccessOpcode(op wasm.Opcode) bool {
	return op >= wasm.OpcodeI32Load && op <= wasm.OpcodeI64Store32
}

func miscInstructionText(ins wasm.Instruction) string {
	name, ok := miscMnemonics[ins.SubOpcode]
	if !ok {
		name = fmt.Sprintf("unknown-misc-0x%02x", ins.SubOpcode)
	}
	switch ins.SubOpcode {
	case wasm.MiscOpcodeMemoryInit:
		return fmt.Sprintf("%s %d", name, ins.DataIndex)
	case wasm.MiscOpcodeDataDrop:
		return fmt.Sprintf("%s %d", name, ins.DataIndex)
	case wasm.MiscOpcodeTableInit:
		return fmt.Sprintf("%s %d %d", name, ins.TableIndex, ins.ElemIndex)
	case wasm.MiscOpcodeElemDrop:
		return fmt.Sprintf("%s %d", name, ins.ElemIndex)
	case wasm.MiscOpcodeTableCopy:
		return fmt.Sprintf("%s %d %d", name, ins.TableIndex, ins.ElemIndex)
	case wasm.MiscOpcodeTableGrow, wasm.MiscOpcodeTableSize, wasm.MiscOpcodeTableFill:
		return fmt.Sprintf("%s %d", name, ins.TableIndex)
	}
	return name
}

func gcInstructionText(ins wasm.Instruction) string {
	name, ok := gcMnemonics[ins.SubOpcode]
	if !ok {
		name = fmt.Sprintf("unknown-gc-0x%02x", ins.SubOpcode)
	}
	switch ins.SubOpcode {
	case wasm.GCOpcodeStructNew, wasm.GCOpcodeStructNewDefault, wasm.GCOpcodeArrayNew,
		wasm.GCOpcodeArrayNewDefault, wasm.GCOpcodeArrayGet, wasm.GCOpcodeArrayGetS,
		wasm.GCOpcodeArrayGetU, wasm.GCOpcodeArraySet, wasm.GCOpcodeArrayFill:
		return fmt.Sprintf("%s %d", name, ins.TypeIndex)
	case wasm.GCOpcodeStructGet, wasm.GCOpcodeStructGetS, wasm.GCOpcodeStructGetU, wasm.GCOpcodeStructSet:
		return fmt.Sprintf("%s %d %d", name, ins.TypeIndex, ins.FieldIndex)
	case wasm.GCOpcodeArrayNewFixed:
		return fmt.Sprintf("%s %d %d", name, ins.TypeIndex, ins.ArrayFixedLength)
	case wasm.GCOpcodeRefTest, wasm.GCOpcodeRefTestNull, wasm.GCOpcodeRefCast, wasm.GCOpcodeRefCastNull:
		return fmt.Sprintf("%s %s", name, heapTypeText(ins.RefType.Heap))
	case wasm.GCOpcodeBrOnCast, wasm.GCOpcodeBrOnCastFail:
		return fmt.Sprintf("%s %d %s %s", name, ins.Label, refTypeText(*ins.RefType), refTypeText(*ins.RefType2))
	}
	return name
}

func atomicInstructionText(ins wasm.Instruction) string {
	name, ok := atomicMnemonics[ins.SubOpcode]
	if !ok {
		name = fmt.Sprintf("unknown-atomic-0x%02x", ins.SubOpcode)
	}
	if ins.SubOpcode == wasm.AtomicOpcodeFence {
		return name
	}
	s := name
	if ins.MemArg.Offset != 0 {
		s += fmt.Sprintf(" offset=%d", ins.MemArg.Offset)
	}
	return s
}

var baseMnemonics = map[wasm.Opcode]string{
	wasm.OpcodeUnreachable: "unreachable",
	wasm.OpcodeNop:         "nop",
	wasm.OpcodeBlock:       "block",
	wasm.OpcodeLoop:        "loop",
	wasm.OpcodeIf:          "if",
	wasm.OpcodeBr:          "br",
	wasm.OpcodeBrIf:        "br_if",
	wasm.OpcodeBrTable:     "br_table",
	wasm.OpcodeReturn:      "return",
	wasm.OpcodeCall:        "call",
	wasm.OpcodeCallIndirect: "call_indirect",
	wasm.OpcodeReturnCall:   "return_call",
	wasm.OpcodeReturnCallIndirect: "return_call_indirect",
	wasm.OpcodeDrop:   "drop",
	wasm.OpcodeSelect: "select",
	wasm.OpcodeSelectT: "select",
	wasm.OpcodeLocalGet:  "local.get",
	wasm.OpcodeLocalSet:  "local.set",
	wasm.OpcodeLocalTee:  "local.tee",
	wasm.OpcodeGlobalGet: "global.get",
	wasm.OpcodeGlobalSet: "global.set",
	wasm.OpcodeTableGet:  "table.get",
	wasm.OpcodeTableSet:  "table.set",
	wasm.OpcodeRefNull:   "ref.null",
	wasm.OpcodeRefIsNull: "ref.is_null",
	wasm.OpcodeRefFunc:   "ref.func",
	wasm.OpcodeRefAsNonNull: "ref.as_non_null",
	wasm.OpcodeRefEq:        "ref.eq",
	wasm.OpcodeMemorySize: "memory.size",
	wasm.OpcodeMemoryGrow: "memory.grow",
	wasm.OpcodeI32Const: "i32.const",
	wasm.OpcodeI64Const: "i64.const",
	wasm.OpcodeF32Const: "f32.const",
	wasm.OpcodeF64Const: "f64.const",
	wasm.OpcodeI32Load: "i32.load", wasm.OpcodeI64Load: "i64.load",
	wasm.OpcodeF32Load: "f32.load", wasm.OpcodeF64Load: "f64.load",
	wasm.OpcodeI32Load8S: "i32.load8_s", wasm.OpcodeI32Load8U: "i32.load8_u",
	wasm.OpcodeI32Load16S: "i32.load16_s", wasm.OpcodeI32Load16U: "i32.load16_u",
	wasm.OpcodeI64Load8S: "i64.load8_s", wasm.OpcodeI64Load8U: "i64.load8_u",
	wasm.OpcodeI64Load16S: "i64.load16_s", wasm.OpcodeI64Load16U: "i64.load16_u",
	wasm.OpcodeI64Load32S: "i64.load32_s", wasm.OpcodeI64Load32U: "i64.load32_u",
	wasm.OpcodeI32Store: "i32.store", wasm.OpcodeI64Store: "i64.store",
	wasm.OpcodeF32Store: "f32.store", wasm.OpcodeF64Store: "f64.store",
	wasm.OpcodeI32Store8: "i32.store8", wasm.OpcodeI32Store16: "i32.store16",
	wasm.OpcodeI64Store8: "i64.store8", wasm.OpcodeI64Store16: "i64.store16",
	wasm.OpcodeI64Store32: "i64.store32",
	wasm.OpcodeI32Eqz: "i32.eqz", wasm.OpcodeI32Eq: "i32.eq", wasm.OpcodeI32Ne: "i32.ne",
	wasm.OpcodeI32LtS: "i32.lt_s", wasm.OpcodeI32LtU: "i32.lt_u",
	wasm.OpcodeI32GtS: "i32.gt_s", wasm.OpcodeI32GtU: "i32.gt_u",
	wasm.OpcodeI32LeS: "i32.le_s", wasm.OpcodeI32LeU: "i32.le_u",
	wasm.OpcodeI32GeS: "i32.ge_s", wasm.OpcodeI32GeU: "i32.ge_u",
	wasm.OpcodeI32Add: "i32.add", wasm.OpcodeI32Sub: "i32.sub", wasm.OpcodeI32Mul: "i32.mul",
	wasm.OpcodeI32DivS: "i32.div_s", wasm.OpcodeI32DivU: "i32.div_u",
	wasm.OpcodeI32RemS: "i32.rem_s", wasm.OpcodeI32RemU: "i32.rem_u",
	wasm.OpcodeI32And: "i32.and", wasm.OpcodeI32Or: "i32.or", wasm.OpcodeI32Xor: "i32.xor",
	wasm.OpcodeI32Shl: "i32.shl", wasm.OpcodeI32ShrS: "i32.shr_s", wasm.OpcodeI32ShrU: "i32.shr_u",
	wasm.OpcodeI32Rotl: "i32.rotl", wasm.OpcodeI32Rotr: "i32.rotr",
	wasm.OpcodeI64Add: "i64.add", wasm.OpcodeI64Sub: "i64.sub", wasm.OpcodeI64Mul: "i64.mul",
	wasm.OpcodeF32Add: "f32.add", wasm.OpcodeF32Sub: "f32.sub", wasm.OpcodeF32Mul: "f32.mul", wasm.OpcodeF32Div: "f32.div",
	wasm.OpcodeF64Add: "f64.add", wasm.OpcodeF64Sub: "f64.sub", wasm.OpcodeF64Mul: "f64.mul", wasm.OpcodeF64Div: "f64.div",
	wasm.OpcodeI32WrapI64: "i32.wrap_i64",
	wasm.OpcodeI64ExtendI32S: "i64.extend_i32_s", wasm.OpcodeI64ExtendI32U: "i64.extend_i32_u",
	wasm.OpcodeI32Extend8S: "i32.extend8_s", wasm.OpcodeI32Extend16S: "i32.extend16_s",
	wasm.OpcodeI64Extend8S: "i64.extend8_s", wasm.OpcodeI64Extend16S: "i64.extend16_s", wasm.OpcodeI64Extend32S: "i64.extend32_s",
}

var miscMnemonics = map[wasm.Index]string{
	wasm.MiscOpcodeI32TruncSatF32S: "i32.trunc_sat_f32_s",
	wasm.MiscOpcodeI32TruncSatF32U: "i32.trunc_sat_f32_u",
	wasm.MiscOpcodeI32TruncSatF64S: "i32.trunc_sat_f64_s",
	wasm.MiscOpcodeI32TruncSatF64U: "i32.trunc_sat_f64_u",
	wasm.MiscOpcodeI64TruncSatF32S: "i64.trunc_sat_f32_s",
	wasm.MiscOpcodeI64TruncSatF32U: "i64.trunc_sat_f32_u",
	wasm.MiscOpcodeI64TruncSatF64S: "i64.trunc_sat_f64_s",
	wasm.MiscOpcodeI64TruncSatF64U: "i64.trunc_sat_f64_u",
	wasm.MiscOpcodeMemoryInit: "memory.init",
	wasm.MiscOpcodeDataDrop:   "data.drop",
	wasm.MiscOpcodeMemoryCopy: "memory.copy",
	wasm.MiscOpcodeMemoryFill: "memory.fill",
	wasm.MiscOpcodeTableInit:  "table.init",
	wasm.MiscOpcodeElemDrop:   "elem.drop",
	wasm.MiscOpcodeTableCopy:  "table.copy",
	wasm.MiscOpcodeTableGrow:  "table.grow",
	wasm.MiscOpcodeTableSize:  "table.size",
	wasm.MiscOpcodeTableFill:  "table.fill",
}

var gcMnemonics = map[wasm.Index]string{
	wasm.GCOpcodeStructNew:        "struct.new",
	wasm.GCOpcodeStructNewDefault: "struct.new_default",
	wasm.GCOpcodeStructGet:        "struct.get",
	wasm.GCOpcodeStructGetS:       "struct.get_s",
	wasm.GCOpcodeStructGetU:       "struct.get_u",
	wasm.GCOpcodeStructSet:        "struct.set",
	wasm.GCOpcodeArrayNew:         "array.new",
	wasm.GCOpcodeArrayNewDefault:  "array.new_default",
	wasm.GCOpcodeArrayNewFixed:    "array.new_fixed",
	wasm.GCOpcodeArrayGet:         "array.get",
	wasm.GCOpcodeArrayGetS:        "array.get_s",
	wasm.GCOpcodeArrayGetU:        "array.get_u",
	wasm.GCOpcodeArraySet:         "array.set",
	wasm.GCOpcodeArrayLen:         "array.len",
	wasm.GCOpcodeArrayFill:        "array.fill",
	wasm.GCOpcodeRefTest:          "ref.test",
	wasm.GCOpcodeRefTestNull:      "ref.test null",
	wasm.GCOpcodeRefCast:          "ref.cast",
	wasm.GCOpcodeRefCastNull:      "ref.cast null",
	wasm.GCOpcodeBrOnCast:         "br_on_cast",
	wasm.GCOpcodeBrOnCastFail:     "br_on_cast_fail",
	wasm.GCOpcodeAnyConvertExtern: "any.convert_extern",
	wasm.GCOpcodeExternConvertAny: "extern.convert_any",
	wasm.GCOpcodeI31New:           "i31.new",
	wasm.GCOpcodeI31GetS:          "i31.get_s",
	wasm.GCOpcodeI31GetU:          "i31.get_u",
}

var atomicMnemonics = map[wasm.Index]string{
	wasm.AtomicOpcodeNotify:   "memory.atomic.notify",
	wasm.AtomicOpcodeWait32:   "memory.atomic.wait32",
	wasm.AtomicOpcodeWait64:   "memory.atomic.wait64",
	wasm.AtomicOpcodeFence:    "atomic.fence",
	wasm.AtomicOpcodeI32Load:  "i32.atomic.load",
	wasm.AtomicOpcodeI64Load:  "i64.atomic.load",
	wasm.AtomicOpcodeI32Store: "i32.atomic.store",
	wasm.AtomicOpcodeI64Store: "i64.atomic.store",
	wasm.AtomicOpcodeI32RmwAdd: "i32.atomic.rmw.add",
	wasm.AtomicOpcodeI64RmwAdd: "i64.atomic.rmw.add",
	wasm.AtomicOpcodeI32RmwSub: "i32.atomic.rmw.sub",
	wasm.AtomicOpcodeI64RmwSub: "i64.atomic.rmw.sub",
	wasm.AtomicOpcodeI32RmwCmpxchg: "i32.atomic.rmw.cmpxchg",
	wasm.AtomicOpcodeI64RmwCmpxchg: "i64.atomic.rmw.cmpxchg",
}
