package wasm

// Feature names gated by CheckFeatures. These mirror internal/features'
// constants; wasm does not import that package directly so the core data
// model stays independent of the process-global flag store, but the two
// sets of names must be kept in sync (see DESIGN.md).
const (
	FeatureGC             = "gc"
	FeatureThreads        = "threads"
	FeatureTailCall       = "tail-call"
	FeatureReferenceTypes = "reference-types"
)

// CheckFeatures walks m looking for constructs that belong to a proposal
// family absent from enabled, returning an EncodeError of kind
// EncodeErrorKindUnsupportedOpcode for the first one found.
func CheckFeatures(m *Module, enabled map[string]bool) error {
	for i, t := range m.TypeSection {
		if t.Kind != CompositeTypeFunc && !enabled[FeatureGC] {
			return &EncodeError{Kind: EncodeErrorKindUnsupportedOpcode, Section: SectionIDType, Index: i,
				Message: "struct/array type requires the gc feature"}
		}
	}
	for i, mt := range m.MemorySection {
		if mt.Limits.Shared && !enabled[FeatureThreads] {
			return &EncodeError{Kind: EncodeErrorKindUnsupportedOpcode, Section: SectionIDMemory, Index: i,
				Message: "shared memory requires the threads feature"}
		}
	}
	for i, tbl := range m.TableSection {
		if !refTypeIsFuncref(tbl.ElemRefType) && !enabled[FeatureReferenceTypes] {
			return &EncodeError{Kind: EncodeErrorKindUnsupportedOpcode, Section: SectionIDTable, Index: i,
				Message: "non-funcref table requires the reference-types feature"}
		}
	}
	for i, c := range m.CodeSection {
		if err := checkInstructions(c.Body, enabled, SectionIDCode, i); err != nil {
			return err
		}
	}
	for i, g := range m.GlobalSection {
		if err := checkInstructions([]Instruction{g.Init.Instruction}, enabled, SectionIDGlobal, i); err != nil {
			return err
		}
	}
	for i, e := range m.ElementSection {
		if e.Mode != ElementModeActive && !enabled[FeatureReferenceTypes] {
			return &EncodeError{Kind: EncodeErrorKindUnsupportedOpcode, Section: SectionIDElement, Index: i,
				Message: "passive/declarative element segments require the reference-types feature"}
		}
	}
	for i, d := range m.DataSection {
		if d.Mode == DataModePassive && !enabled[FeatureReferenceTypes] {
			return &EncodeError{Kind: EncodeErrorKindUnsupportedOpcode, Section: SectionIDData, Index: i,
				Message: "passive data segments require the reference-types feature"}
		}
	}
	return nil
}

func refTypeIsFuncref(r RefType) bool {
	return !r.Heap.IsTypeIndex && r.Heap.Abstract == HeapTypeFunc
}

func checkInstructions(body []Instruction, enabled map[string]bool, section SectionID, index int) error {
	for _, ins := range body {
		var feature string
		switch {
		case ins.Prefix == OpcodeGCPrefix:
			feature = FeatureGC
		case ins.Prefix == OpcodeAtomicPrefix:
			feature = FeatureThreads
		case ins.Prefix == OpcodeMiscPrefix:
			feature = FeatureReferenceTypes
		case ins.Opcode == OpcodeReturnCall || ins.Opcode == OpcodeReturnCallIndirect:
			feature = FeatureTailCall
		case ins.Opcode == OpcodeRefNull || ins.Opcode == OpcodeRefFunc || ins.Opcode == OpcodeRefIsNull ||
			ins.Opcode == OpcodeTableGet || ins.Opcode == OpcodeTableSet:
			feature = FeatureReferenceTypes
		default:
			continue
		}
		if !enabled[feature] {
			return &EncodeError{Kind: EncodeErrorKindUnsupportedOpcode, Section: section, Index: index,
				Message: "instruction requires the " + feature + " feature"}
		}
	}
	return nil
}
