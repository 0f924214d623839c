package wasm

// Builder assembles a Module incrementally. Unlike Module, a Builder is
// mutable and not safe for concurrent use; call Build to obtain the
// immutable, validated Module once assembly is complete.
type Builder struct {
	m Module
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddType appends a composite type (function, struct, or array) and
// returns its index.
func (b *Builder) AddType(t CompositeType) Index {
	b.m.TypeSection = append(b.m.TypeSection, t)
	return Index(len(b.m.TypeSection) - 1)
}

// AddFuncType is a convenience for the common case of a plain function
// signature.
func (b *Builder) AddFuncType(params, results []ValueType) Index {
	return b.AddType(CompositeType{Kind: CompositeTypeFunc, Func: &FunctionType{Params: params, Results: results}})
}

// AddRecursionGroup appends a run of composite types as one explicit GC
// proposal "rec" group, so they may refer to each other circularly, and
// returns each member's type index.
func (b *Builder) AddRecursionGroup(types ...CompositeType) []Index {
	start := Index(len(b.m.TypeSection))
	indices := make([]Index, len(types))
	for i, t := range types {
		indices[i] = b.AddType(t)
	}
	b.m.RecursionGroups = append(b.m.RecursionGroups, RecursionGroup{Start: start, Size: Index(len(types))})
	return indices
}

// AddImport appends an import and returns its index within its kind's
// index space.
func (b *Builder) AddImport(imp Import) Index {
	b.m.ImportSection = append(b.m.ImportSection, imp)
	switch imp.Kind {
	case ExternalKindFunc:
		return b.m.ImportFuncCount() - 1
	case ExternalKindTable:
		return b.m.ImportTableCount() - 1
	case ExternalKindMemory:
		return b.m.ImportMemoryCount() - 1
	default:
		return b.m.ImportGlobalCount() - 1
	}
}

// AddFunction declares a module-defined function: its signature (by type
// index) and body. Returns the function's index in the function index
// space (imports first).
func (b *Builder) AddFunction(typeIndex Index, code Code) Index {
	b.m.FunctionSection = append(b.m.FunctionSection, typeIndex)
	b.m.CodeSection = append(b.m.CodeSection, code)
	return b.m.ImportFuncCount() + Index(len(b.m.FunctionSection)) - 1
}

// AddTable appends a table definition.
func (b *Builder) AddTable(t TableType) Index {
	b.m.TableSection = append(b.m.TableSection, t)
	return b.m.ImportTableCount() + Index(len(b.m.TableSection)) - 1
}

// AddMemory appends a memory definition.
func (b *Builder) AddMemory(t MemoryType) Index {
	b.m.MemorySection = append(b.m.MemorySection, t)
	return b.m.ImportMemoryCount() + Index(len(b.m.MemorySection)) - 1
}

// AddGlobal appends a global definition.
func (b *Builder) AddGlobal(g Global) Index {
	b.m.GlobalSection = append(b.m.GlobalSection, g)
	return b.m.ImportGlobalCount() + Index(len(b.m.GlobalSection)) - 1
}

// AddExport appends an export entry.
func (b *Builder) AddExport(e Export) {
	b.m.ExportSection = append(b.m.ExportSection, e)
}

// SetStart sets the module's start function.
func (b *Builder) SetStart(funcIndex Index) {
	idx := funcIndex
	b.m.StartSection = &idx
}

// AddElement appends an element segment and returns its index.
func (b *Builder) AddElement(e ElementSegment) Index {
	b.m.ElementSection = append(b.m.ElementSection, e)
	return Index(len(b.m.ElementSection) - 1)
}

// AddData appends a data segment. Passive segments require the data-count
// section, emitted automatically by the binary encoder once any such
// segment or a memory.init/data.drop instruction is present.
func (b *Builder) AddData(d DataSegment) Index {
	b.m.DataSection = append(b.m.DataSection, d)
	if d.Mode == DataModePassive {
		b.m.DataCountPresent = true
	}
	return Index(len(b.m.DataSection) - 1)
}

// SetNames attaches a custom name section.
func (b *Builder) SetNames(n *NameSection) {
	b.m.Names = n
}

// Build finalizes the Module, validating it, and returns the immutable
// result. The Builder must not be reused afterward.
func (b *Builder) Build() (*Module, error) {
	m := b.m
	if usesMemoryInit(&m) {
		m.DataCountPresent = true
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func usesMemoryInit(m *Module) bool {
	for _, c := range m.CodeSection {
		for _, ins := range c.Body {
			if ins.Prefix == OpcodeMiscPrefix && (ins.SubOpcode == MiscOpcodeMemoryInit || ins.SubOpcode == MiscOpcodeDataDrop) {
				return true
			}
		}
	}
	return false
}
