package wasm

// NameMap associates an index-space position with a debug name. It is
// encoded as a vector of (index, name) pairs sorted by index.
type NameMap map[Index]string

// IndirectNameMap associates, per outer index (e.g. a function), a NameMap
// of inner indices (e.g. that function's locals).
type IndirectNameMap map[Index]NameMap

// NameSection is the optional custom section named "name" that attaches
// debug names to a module and its index spaces. It has no effect on
// module semantics; it exists purely to make stack traces and external
// tooling readable.
//
// See https://webassembly.github.io/spec/core/appendix/custom.html#name-section
type NameSection struct {
	ModuleName    string
	FunctionNames NameMap
	LocalNames    IndirectNameMap
}

// Empty reports whether the name section would encode to nothing.
func (n *NameSection) Empty() bool {
	return n == nil || (n.ModuleName == "" && len(n.FunctionNames) == 0 && len(n.LocalNames) == 0)
}
