package wasm

import "fmt"

// Validate checks the invariants a Module must hold before it can be
// encoded: function type indices, table and memory limits, global
// initializers, the local, function, type, table, global, element, data
// and label indices of every function body (and the type index of GC
// instructions), export kinds, indices and name uniqueness, the start
// function, the table of active element segments and the memory of active
// data segments. It does not check import descriptors, element-segment
// initializers and offsets, data offsets, super-type lists, heap-type
// indices, GC field indices, or the memory of load/store/atomic
// instructions. It does not
// perform full WebAssembly validation (e.g. stack-effect type checking of
// instruction sequences) — that is the responsibility of the external
// validator referenced in SPEC_FULL §2.4; this function only catches the
// mistakes a Builder could otherwise bake into malformed bytes.
func (m *Module) Validate() error {
	typeCount := Index(len(m.TypeSection))
	funcCount := m.FuncCount()
	tableCount := m.TableCount()
	memoryCount := m.MemoryCount()
	globalCount := m.GlobalCount()

	if len(m.FunctionSection) != len(m.CodeSection) {
		return &EncodeError{
			Kind:    EncodeErrorKindSectionCountMismatch,
			Section: SectionIDCode,
			Index:   -1,
			Message: fmt.Sprintf("function section has %d entries but code section has %d", len(m.FunctionSection), len(m.CodeSection)),
		}
	}

	for i, typeIdx := range m.FunctionSection {
		if typeIdx >= typeCount {
			return newIndexError(SectionIDFunction, i, "type")
		}
	}

	for i, tbl := range m.TableSection {
		if err := tbl.Limits.Validate(); err != nil {
			return wrapIndex(err, SectionIDTable, i)
		}
	}

	for i, mem := range m.MemorySection {
		if err := mem.Limits.Validate(); err != nil {
			return wrapIndex(err, SectionIDMemory, i)
		}
		if mem.Limits.Max != nil && *mem.Limits.Max > MaxMemoryPages {
			return &EncodeError{Kind: EncodeErrorKindInvalidLimits, Section: SectionIDMemory, Index: i, Message: "max exceeds 65536 pages"}
		}
	}

	for i, g := range m.GlobalSection {
		if err := validateConstExpr(g.Init, typeCount, funcCount, globalCount); err != nil {
			return wrapIndex(err, SectionIDGlobal, i)
		}
	}

	elemCount := Index(len(m.ElementSection))
	dataCount := Index(len(m.DataSection))
	for i, c := range m.CodeSection {
		localCount := Index(len(c.Locals))
		if t := m.TypeSection[m.FunctionSection[i]]; t.Kind == CompositeTypeFunc && t.Func != nil {
			localCount += Index(len(t.Func.Params))
		}
		if err := validateInstructions(c.Body, localCount, typeCount, funcCount, tableCount, globalCount, elemCount, dataCount); err != nil {
			return wrapIndex(err, SectionIDCode, i)
		}
	}

	seenExport := map[string]bool{}
	for i, exp := range m.ExportSection {
		if seenExport[exp.Name] {
			return &EncodeError{Kind: EncodeErrorKindInvalidName, Section: SectionIDExport, Index: i, Message: fmt.Sprintf("duplicate export name %q", exp.Name)}
		}
		seenExport[exp.Name] = true

		var idxSpace Index
		switch exp.Kind {
		case ExternalKindFunc:
			idxSpace = funcCount
		case ExternalKindTable:
			idxSpace = tableCount
		case ExternalKindMemory:
			idxSpace = memoryCount
		case ExternalKindGlobal:
			idxSpace = globalCount
		default:
			return &EncodeError{Kind: EncodeErrorKindInvalidType, Section: SectionIDExport, Index: i, Message: fmt.Sprintf("unknown export kind %d", exp.Kind)}
		}
		if exp.Index >= idxSpace {
			return newIndexError(SectionIDExport, i, externalKindName(exp.Kind))
		}
	}

	if m.StartSection != nil && *m.StartSection >= funcCount {
		return newIndexError(SectionIDStart, -1, "function")
	}

	for i, elem := range m.ElementSection {
		if elem.Mode == ElementModeActive && elem.TableIndex >= tableCount {
			return newIndexError(SectionIDElement, i, "table")
		}
	}

	for i, data := range m.DataSection {
		if data.Mode == DataModeActive && data.MemoryIndex >= memoryCount {
			return newIndexError(SectionIDData, i, "memory")
		}
	}

	return nil
}

func validateConstExpr(expr ConstantExpression, typeCount, funcCount, globalCount Index) error {
	ins := expr.Instruction
	switch ins.Opcode {
	case OpcodeI32Const, OpcodeI64Const, OpcodeF32Const, OpcodeF64Const, OpcodeRefNull:
		return nil
	case OpcodeGlobalGet:
		if ins.GlobalIndex >= globalCount {
			return &EncodeError{Kind: EncodeErrorKindIndexOutOfRange, Index: -1, Message: "global.get index out of range in constant expression"}
		}
		return nil
	case OpcodeRefFunc:
		if ins.FuncIndex >= funcCount {
			return &EncodeError{Kind: EncodeErrorKindIndexOutOfRange, Index: -1, Message: "ref.func index out of range in constant expression"}
		}
		return nil
	}
	if ins.Prefix == OpcodeGCPrefix && (ins.SubOpcode == GCOpcodeStructNew || ins.SubOpcode == GCOpcodeStructNewDefault || ins.SubOpcode == GCOpcodeArrayNew || ins.SubOpcode == GCOpcodeArrayNewFixed || ins.SubOpcode == GCOpcodeArrayNewDefault) {
		if ins.TypeIndex >= typeCount {
			return newIndexError(SectionIDGlobal, -1, "type")
		}
		return nil
	}
	return &EncodeError{Kind: EncodeErrorKindUnsupportedOpcode, Index: -1, Message: "instruction is not valid in a constant expression"}
}

// validateInstructions walks one function body (or any instruction
// sequence sharing its index spaces) checking that every index an
// instruction carries resolves within its index space, mirroring what
// validateConstExpr already does for the constant-expression subset.
func validateInstructions(body []Instruction, localCount, typeCount, funcCount, tableCount, globalCount, elemCount, dataCount Index) error {
	depth := Index(1) // the implicit function-body block
	for _, ins := range body {
		switch ins.Prefix {
		case OpcodeMiscPrefix:
			if err := validateMiscInstructionIndices(ins, tableCount, elemCount, dataCount); err != nil {
				return err
			}
			continue
		case OpcodeGCPrefix:
			if err := validateGCInstructionIndices(ins, typeCount); err != nil {
				return err
			}
			continue
		case OpcodeAtomicPrefix:
			continue
		}

		switch ins.Opcode {
		case OpcodeBlock, OpcodeLoop, OpcodeIf:
			if ins.Block != nil && ins.Block.Kind == BlockTypeIndex && ins.Block.TypeIndex >= typeCount {
				return newIndexError(SectionIDCode, -1, "type")
			}
			depth++
		case OpcodeEnd:
			depth--
		case OpcodeBr, OpcodeBrIf:
			if ins.Label >= depth {
				return newIndexError(SectionIDCode, -1, "label")
			}
		case OpcodeBrTable:
			for _, l := range ins.Labels {
				if l >= depth {
					return newIndexError(SectionIDCode, -1, "label")
				}
			}
			if ins.Default >= depth {
				return newIndexError(SectionIDCode, -1, "label")
			}
		case OpcodeCall, OpcodeReturnCall:
			if ins.FuncIndex >= funcCount {
				return newIndexError(SectionIDCode, -1, "function")
			}
		case OpcodeRefFunc:
			if ins.FuncIndex >= funcCount {
				return newIndexError(SectionIDCode, -1, "function")
			}
		case OpcodeCallIndirect, OpcodeReturnCallIndirect:
			if ins.TypeIndex >= typeCount {
				return newIndexError(SectionIDCode, -1, "type")
			}
			if ins.TableIndex >= tableCount {
				return newIndexError(SectionIDCode, -1, "table")
			}
		case OpcodeLocalGet, OpcodeLocalSet, OpcodeLocalTee:
			if ins.LocalIndex >= localCount {
				return newIndexError(SectionIDCode, -1, "local")
			}
		case OpcodeGlobalGet, OpcodeGlobalSet:
			if ins.GlobalIndex >= globalCount {
				return newIndexError(SectionIDCode, -1, "global")
			}
		case OpcodeTableGet, OpcodeTableSet:
			if ins.TableIndex >= tableCount {
				return newIndexError(SectionIDCode, -1, "table")
			}
		}
	}
	return nil
}

func validateGCInstructionIndices(ins Instruction, typeCount Index) error {
	switch ins.SubOpcode {
	case GCOpcodeStructNew, GCOpcodeStructNewDefault, GCOpcodeStructGet, GCOpcodeStructGetS,
		GCOpcodeStructGetU, GCOpcodeStructSet, GCOpcodeArrayNew, GCOpcodeArrayNewDefault,
		GCOpcodeArrayNewFixed, GCOpcodeArrayGet, GCOpcodeArrayGetS, GCOpcodeArrayGetU,
		GCOpcodeArraySet, GCOpcodeArrayFill:
		if ins.TypeIndex >= typeCount {
			return newIndexError(SectionIDCode, -1, "type")
		}
	}
	return nil
}

// validateMiscInstructionIndices checks the index immediates of the 0xFC
// (bulk-memory/reference-types) instructions. table.copy reuses ElemIndex
// to carry a second table index rather than an element-segment index (see
// encodeMiscInstruction), so it is checked against tableCount, not
// elemCount.
func validateMiscInstructionIndices(ins Instruction, tableCount, elemCount, dataCount Index) error {
	switch ins.SubOpcode {
	case MiscOpcodeMemoryInit, MiscOpcodeDataDrop:
		if ins.DataIndex >= dataCount {
			return newIndexError(SectionIDCode, -1, "data")
		}
	case MiscOpcodeTableInit:
		if ins.TableIndex >= tableCount {
			return newIndexError(SectionIDCode, -1, "table")
		}
		if ins.ElemIndex >= elemCount {
			return newIndexError(SectionIDCode, -1, "element")
		}
	case MiscOpcodeElemDrop:
		if ins.ElemIndex >= elemCount {
			return newIndexError(SectionIDCode, -1, "element")
		}
	case MiscOpcodeTableCopy:
		if ins.TableIndex >= tableCount {
			return newIndexError(SectionIDCode, -1, "table")
		}
		if ins.ElemIndex >= tableCount {
			return newIndexError(SectionIDCode, -1, "table")
		}
	case MiscOpcodeTableGrow, MiscOpcodeTableSize, MiscOpcodeTableFill:
		if ins.TableIndex >= tableCount {
			return newIndexError(SectionIDCode, -1, "table")
		}
	}
	return nil
}

func wrapIndex(err error, section SectionID, index int) error {
	if ee, ok := err.(*EncodeError); ok {
		ee.Section = section
		if ee.Index < 0 {
			ee.Index = index
		}
		return ee
	}
	return err
}
