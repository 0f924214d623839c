package wasm

// Module is the immutable, in-memory representation of a complete
// WebAssembly module: every section the binary and text encoders need,
// already validated and ready to serialize. It is produced by Builder and
// never mutated afterward — encoders can therefore be called concurrently
// from multiple goroutines on the same Module.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#modules
type Module struct {
	TypeSection     []CompositeType
	RecursionGroups []RecursionGroup // non-nil only when types were declared in explicit rec groups

	ImportSection []Import

	// FunctionSection maps each module-defined (non-imported) function to
	// its signature's index into TypeSection.
	FunctionSection []Index
	CodeSection     []Code // parallel to FunctionSection

	TableSection  []TableType
	MemorySection []MemoryType
	GlobalSection []Global

	ExportSection []Export

	// StartSection is the function index to invoke at instantiation, or
	// nil if the module has no start function.
	StartSection *Index

	ElementSection []ElementSegment
	DataSection    []DataSegment

	// DataCountPresent marks whether a data-count section should be
	// emitted ahead of the code section, required by the bulk-memory
	// proposal whenever a memory.init or data.drop instruction appears.
	DataCountPresent bool

	TagSection []Index // reserved: always empty, see SPEC_FULL §4

	Names *NameSection
}

// ImportFuncCount returns the number of imported functions, which precede
// module-defined functions in the function index space.
func (m *Module) ImportFuncCount() (n uint32) {
	for _, i := range m.ImportSection {
		if i.Kind == ExternalKindFunc {
			n++
		}
	}
	return
}

// ImportTableCount returns the number of imported tables.
func (m *Module) ImportTableCount() (n uint32) {
	for _, i := range m.ImportSection {
		if i.Kind == ExternalKindTable {
			n++
		}
	}
	return
}

// ImportMemoryCount returns the number of imported memories.
func (m *Module) ImportMemoryCount() (n uint32) {
	for _, i := range m.ImportSection {
		if i.Kind == ExternalKindMemory {
			n++
		}
	}
	return
}

// ImportGlobalCount returns the number of imported globals.
func (m *Module) ImportGlobalCount() (n uint32) {
	for _, i := range m.ImportSection {
		if i.Kind == ExternalKindGlobal {
			n++
		}
	}
	return
}

// FuncCount is the size of the function index space: imports plus
// module-defined functions.
func (m *Module) FuncCount() uint32 {
	return m.ImportFuncCount() + uint32(len(m.FunctionSection))
}

// TableCount is the size of the table index space.
func (m *Module) TableCount() uint32 {
	return m.ImportTableCount() + uint32(len(m.TableSection))
}

// MemoryCount is the size of the memory index space.
func (m *Module) MemoryCount() uint32 {
	return m.ImportMemoryCount() + uint32(len(m.MemorySection))
}

// GlobalCount is the size of the global index space.
func (m *Module) GlobalCount() uint32 {
	return m.ImportGlobalCount() + uint32(len(m.GlobalSection))
}

// SectionElementCount returns the vector length that would be encoded for
// the given section id. For the type section each explicit rec group
// counts as one entry.
func (m *Module) SectionElementCount(id SectionID) uint32 {
	switch id {
	case SectionIDType:
		n := uint32(len(m.TypeSection))
		for _, g := range m.RecursionGroups {
			if g.Size > 1 {
				n -= uint32(g.Size) - 1
			}
		}
		return n
	case SectionIDImport:
		return uint32(len(m.ImportSection))
	case SectionIDFunction:
		return uint32(len(m.FunctionSection))
	case SectionIDTable:
		return uint32(len(m.TableSection))
	case SectionIDMemory:
		return uint32(len(m.MemorySection))
	case SectionIDGlobal:
		return uint32(len(m.GlobalSection))
	case SectionIDExport:
		return uint32(len(m.ExportSection))
	case SectionIDElement:
		return uint32(len(m.ElementSection))
	case SectionIDCode:
		return uint32(len(m.CodeSection))
	case SectionIDData:
		return uint32(len(m.DataSection))
	case SectionIDTag:
		return uint32(len(m.TagSection))
	}
	return 0
}
