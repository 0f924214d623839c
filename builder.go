// Package wasmkit builds WebAssembly modules programmatically and
// serializes them to the binary format or to WebAssembly text format (WAT).
// It is a builder, not a decoder or executor: there is no parser for
// existing .wasm/.wat input and no instantiation or execution support.
package wasmkit

import (
	"github.com/wasmkit/wasmkit/api"
	"github.com/wasmkit/wasmkit/internal/wasm"
	"github.com/wasmkit/wasmkit/internal/wasm/binary"
	"github.com/wasmkit/wasmkit/internal/wasm/text"
)

// EncodeI32, EncodeI64, EncodeF32, DecodeF32, EncodeF64, DecodeF64,
// EncodeExternref, and DecodeExternref convert between Go values and the
// uint64 encoding used for I32Const/I64Const/F32Const/F64Const immediates.
var (
	EncodeI32        = api.EncodeI32
	EncodeI64        = api.EncodeI64
	EncodeF32        = api.EncodeF32
	DecodeF32        = api.DecodeF32
	EncodeF64        = api.EncodeF64
	DecodeF64        = api.DecodeF64
	EncodeExternref  = api.EncodeExternref
	DecodeExternref  = api.DecodeExternref
)

// Re-exported so callers never need to import internal/wasm directly.
type (
	Index              = wasm.Index
	ValueType          = api.ValueType
	RefType            = wasm.RefType
	HeapType           = wasm.HeapType
	Limits             = wasm.Limits
	FunctionType       = wasm.FunctionType
	CompositeType      = wasm.CompositeType
	StructType         = wasm.StructType
	ArrayType          = wasm.ArrayType
	FieldType          = wasm.FieldType
	StorageType        = wasm.StorageType
	TableType          = wasm.TableType
	MemoryType         = wasm.MemoryType
	GlobalType         = wasm.GlobalType
	Global             = wasm.Global
	Import             = wasm.Import
	Export             = wasm.Export
	ExternalKind       = wasm.ExternalKind
	ElementSegment     = wasm.ElementSegment
	DataSegment        = wasm.DataSegment
	Code               = wasm.Code
	Instruction        = wasm.Instruction
	BlockType          = wasm.BlockType
	MemArg             = wasm.MemArg
	ConstantExpression = wasm.ConstantExpression
	Module             = wasm.Module
)

const (
	ExternalKindFunc   = wasm.ExternalKindFunc
	ExternalKindTable  = wasm.ExternalKindTable
	ExternalKindMemory = wasm.ExternalKindMemory
	ExternalKindGlobal = wasm.ExternalKindGlobal
	ExternalKindTag    = wasm.ExternalKindTag
)

// ModuleBuilder assembles a Module declaration by declaration, finishing
// with EncodeBinary or EncodeText. AddExport, SetStart and WithModuleName
// return the builder itself so calls can be chained; the other Add methods
// return the index of the new entry. None of them return an error; any
// structural problem (a dangling index, mismatched limits) is deferred to
// Build/EncodeBinary/EncodeText, which validate the whole module at once.
//
// ModuleBuilder is not safe for concurrent use.
type ModuleBuilder struct {
	b          *wasm.Builder
	moduleName string

	functionNames wasm.NameMap
	localNames    wasm.IndirectNameMap
}

// NewModuleBuilder returns an empty ModuleBuilder.
func NewModuleBuilder() *ModuleBuilder {
	return &ModuleBuilder{b: wasm.NewBuilder()}
}

// WithModuleName sets the name recorded in the custom name section's
// module-name subsection. It has no effect on EncodeText output, which is
// always numeric-index-only.
func (b *ModuleBuilder) WithModuleName(name string) *ModuleBuilder {
	b.moduleName = name
	return b
}

// AddFuncType declares a plain function signature and returns its type
// index.
func (b *ModuleBuilder) AddFuncType(params, results []ValueType) Index {
	return b.b.AddFuncType(params, results)
}

// AddType declares a composite type (function, struct, or array) and
// returns its type index.
func (b *ModuleBuilder) AddType(t CompositeType) Index {
	return b.b.AddType(t)
}

// AddRecursionGroup declares an explicit GC proposal "rec" group: the given
// composite types are appended to the type section and may refer to each
// other circularly. Returns each member's type index, in order.
func (b *ModuleBuilder) AddRecursionGroup(types ...CompositeType) []Index {
	return b.b.AddRecursionGroup(types...)
}

// AddImport declares an import and returns its index within its kind's
// index space.
func (b *ModuleBuilder) AddImport(imp Import) Index {
	return b.b.AddImport(imp)
}

// AddTable declares a table and returns its index.
func (b *ModuleBuilder) AddTable(t TableType) Index {
	return b.b.AddTable(t)
}

// AddMemory declares a linear memory and returns its index.
func (b *ModuleBuilder) AddMemory(t MemoryType) Index {
	return b.b.AddMemory(t)
}

// AddGlobal declares a global and returns its index.
func (b *ModuleBuilder) AddGlobal(g Global) Index {
	return b.b.AddGlobal(g)
}

// AddExport makes a previously declared function, table, memory, or global
// visible under name.
func (b *ModuleBuilder) AddExport(e Export) *ModuleBuilder {
	b.b.AddExport(e)
	return b
}

// SetStart marks funcIndex as the function to invoke at instantiation.
func (b *ModuleBuilder) SetStart(funcIndex Index) *ModuleBuilder {
	b.b.SetStart(funcIndex)
	return b
}

// AddElement declares an element segment and returns its index.
func (b *ModuleBuilder) AddElement(e ElementSegment) Index {
	return b.b.AddElement(e)
}

// AddData declares a data segment and returns its index.
func (b *ModuleBuilder) AddData(d DataSegment) Index {
	return b.b.AddData(d)
}

// NewFunctionBuilder begins the definition of a module-defined function.
func (b *ModuleBuilder) NewFunctionBuilder() *FunctionBuilder {
	return &FunctionBuilder{b: b}
}

// Build finalizes the module: validates it and returns the immutable
// result. The ModuleBuilder must not be reused afterward.
func (b *ModuleBuilder) Build() (*Module, error) {
	if b.moduleName != "" || len(b.functionNames) != 0 || len(b.localNames) != 0 {
		b.b.SetNames(&wasm.NameSection{
			ModuleName:    b.moduleName,
			FunctionNames: b.functionNames,
			LocalNames:    b.localNames,
		})
	}
	return b.b.Build()
}

// EncodeBinary builds the module and serializes it to the WebAssembly
// binary format. cfg defaults to NewEncoderConfig(); passing more than one
// is a programmer error and only the first is used.
func (b *ModuleBuilder) EncodeBinary(cfg ...*EncoderConfig) ([]byte, error) {
	m, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := wasm.CheckFeatures(m, encoderConfigOf(cfg).enabledSet()); err != nil {
		return nil, err
	}
	return binary.EncodeModule(m)
}

// EncodeText builds the module and renders it as WebAssembly text format
// (WAT), as a flat instruction listing using only numeric indices.
func (b *ModuleBuilder) EncodeText(cfg ...*EncoderConfig) (string, error) {
	m, err := b.Build()
	if err != nil {
		return "", err
	}
	if err := wasm.CheckFeatures(m, encoderConfigOf(cfg).enabledSet()); err != nil {
		return "", err
	}
	return text.EncodeModule(m)
}

func encoderConfigOf(cfg []*EncoderConfig) *EncoderConfig {
	if len(cfg) > 0 && cfg[0] != nil {
		return cfg[0]
	}
	return NewEncoderConfig()
}

// FunctionBuilder defines one module-defined function: its signature (by
// type index), locals, body, and optional debug names. It is finished by
// calling either Export, which also adds an Export entry, or Define, which
// adds the function without exporting it (e.g. a callee reachable only via
// call/call_indirect).
type FunctionBuilder struct {
	b *ModuleBuilder

	typeIndex Index
	locals    []ValueType
	body      []Instruction

	name       string
	localNames []string
}

// WithType selects the function's signature by type index, as returned
// from AddFuncType or AddType.
func (f *FunctionBuilder) WithType(typeIndex Index) *FunctionBuilder {
	f.typeIndex = typeIndex
	return f
}

// WithLocals declares additional local variables beyond the function's
// parameters, in declaration order.
func (f *FunctionBuilder) WithLocals(types ...ValueType) *FunctionBuilder {
	f.locals = types
	return f
}

// WithBody sets the function's instruction sequence. The sequence must not
// include a trailing End; the encoders synthesize it.
func (f *FunctionBuilder) WithBody(instructions ...Instruction) *FunctionBuilder {
	f.body = instructions
	return f
}

// WithName attaches an optional debug name for the function, recorded in
// the custom name section.
func (f *FunctionBuilder) WithName(name string) *FunctionBuilder {
	f.name = name
	return f
}

// WithLocalNames attaches optional debug names for the function's locals,
// in index order (parameters first, then WithLocals' locals).
func (f *FunctionBuilder) WithLocalNames(names ...string) *FunctionBuilder {
	f.localNames = names
	return f
}

// Define adds the function to the module without exporting it, returning
// its function index.
func (f *FunctionBuilder) Define() Index {
	idx := f.b.b.AddFunction(f.typeIndex, Code{Locals: f.locals, Body: f.body})
	f.recordNames(idx)
	return idx
}

// Export adds the function to the module and exports it under exportName,
// returning the owning ModuleBuilder for further chaining.
func (f *FunctionBuilder) Export(exportName string) *ModuleBuilder {
	idx := f.Define()
	f.b.AddExport(Export{Name: exportName, Kind: ExternalKindFunc, Index: idx})
	return f.b
}

func (f *FunctionBuilder) recordNames(idx Index) {
	if f.name != "" {
		if f.b.functionNames == nil {
			f.b.functionNames = wasm.NameMap{}
		}
		f.b.functionNames[idx] = f.name
	}
	if len(f.localNames) != 0 {
		if f.b.localNames == nil {
			f.b.localNames = wasm.IndirectNameMap{}
		}
		locals := wasm.NameMap{}
		for i, n := range f.localNames {
			if n != "" {
				locals[Index(i)] = n
			}
		}
		f.b.localNames[idx] = locals
	}
}
