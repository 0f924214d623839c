package wasm

// Code is one function body: its locals (beyond the parameters already
// named in its FunctionType) and its instruction sequence. The sequence
// does not include a trailing End; the encoder synthesizes the
// function-terminating 0x0b byte, since every Code's body is implicitly
// one top-level block and the model should not require callers to
// remember to close it.
type Code struct {
	// Locals declares additional local variables beyond the function's
	// parameters, in declaration order; the binary encoder groups
	// consecutive equal types into the run-length-encoded local-vector
	// form the format requires.
	Locals []ValueType

	Body []Instruction
}
