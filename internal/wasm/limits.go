package wasm

// Limits bounds the size of a table or memory: at least Min units, and at
// most Max units if Max is non-nil.
//
// See https://webassembly.github.io/spec/core/binary/types.html#limits
type Limits struct {
	Min uint32
	Max *uint32
	// Shared marks a memory as shared (threads proposal). Ignored for tables.
	Shared bool
}

// Validate returns an error if the limits are internally inconsistent.
func (l Limits) Validate() error {
	if l.Max != nil && l.Min > *l.Max {
		return &EncodeError{Kind: EncodeErrorKindInvalidLimits, Index: -1, Message: "min exceeds max"}
	}
	if l.Shared && l.Max == nil {
		return &EncodeError{Kind: EncodeErrorKindInvalidLimits, Index: -1, Message: "shared memory requires a max"}
	}
	return nil
}
