package wasm

// ElementMode distinguishes the three ways an element segment can be
// realized: eagerly written into a table at instantiation (Active), left
// for table.init to copy on demand (Passive), or present only for
// ref.func/validation purposes with no runtime effect (Declarative).
type ElementMode int

const (
	ElementModeActive ElementMode = iota
	ElementModePassive
	ElementModeDeclarative
)

// ElementSegment initializes a range of a table with function or other
// reference values.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#element-section
type ElementSegment struct {
	Mode ElementMode

	// TableIndex and Offset apply only when Mode is ElementModeActive.
	TableIndex Index
	Offset     ConstantExpression

	RefType RefType

	// Init lists, per element, either a function index (the common case)
	// or a full constant expression (ref.null / ref.func), mirroring the
	// binary format's two encodings. FuncIndices is used when non-nil;
	// otherwise Exprs is used and must be the same length.
	FuncIndices []Index
	Exprs       []ConstantExpression
}
