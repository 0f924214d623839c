package binary

import (
	"fmt"

	"github.com/wasmkit/wasmkit/internal/leb128"
	"github.com/wasmkit/wasmkit/internal/wasm"
)

func encodeValueType(t wasm.ValueType) []byte {
	return []byte{t}
}

// encodeHeapType encodes a heap type as the negative-LEB128 abstract-type
// byte, or as a signed LEB128 type index for concrete (struct/array/func)
// heap types.
func encodeHeapType(h wasm.HeapType) []byte {
	if h.IsTypeIndex {
		return leb128.EncodeInt64(int64(h.TypeIndex))
	}
	return []byte{h.Abstract}
}

// encodeRefType encodes a reference type. Non-nullable, non-abstract
// references use the (ref $t) long form (0x64); the common nullable
// abstract cases (funcref, externref) use their single-byte shorthand.
func encodeRefType(r wasm.RefType) []byte {
	if r.Nullable {
		switch r.Heap.Abstract {
		case wasm.HeapTypeFunc:
			return []byte{wasm.ValueTypeFuncref}
		case wasm.HeapTypeExtern:
			return []byte{wasm.ValueTypeExternref}
		}
		out := []byte{0x63} // (ref null ht)
		return append(out, encodeHeapType(r.Heap)...)
	}
	out := []byte{0x64} // (ref ht)
	return append(out, encodeHeapType(r.Heap)...)
}

func encodeBlockType(bt *wasm.BlockType) []byte {
	if bt == nil {
		return []byte{0x40}
	}
	switch bt.Kind {
	case wasm.BlockTypeEmpty:
		return []byte{0x40}
	case wasm.BlockTypeValue:
		return []byte{bt.ValueType}
	case wasm.BlockTypeIndex:
		return leb128.EncodeInt64(int64(bt.TypeIndex))
	}
	panic(fmt.Sprintf("unknown block type kind %d", bt.Kind))
}
