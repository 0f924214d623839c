package wasm

// GlobalType describes a global variable's value type and mutability.
//
// See https://webassembly.github.io/spec/core/binary/types.html#global-types
type GlobalType struct {
	ValType ValueType
	Mutable bool
}

// Global is a module-defined global variable: its type plus the constant
// expression that initializes it.
type Global struct {
	Type GlobalType
	Init ConstantExpression
}
