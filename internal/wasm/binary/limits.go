package binary

import "github.com/wasmkit/wasmkit/internal/leb128"

// encodeLimits encodes a Limits value. The flags byte follows the
// shared-memory proposal's extension of the original 0x00/0x01
// has-max-or-not encoding: 0x02/0x03 additionally mark the memory shared.
func encodeLimits(min uint32, max *uint32, shared bool) []byte {
	var flags byte
	if max != nil {
		flags |= 0x01
	}
	if shared {
		flags |= 0x02
	}
	out := []byte{flags}
	out = append(out, leb128.EncodeUint32(min)...)
	if max != nil {
		out = append(out, leb128.EncodeUint32(*max)...)
	}
	return out
}
