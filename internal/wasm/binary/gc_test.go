package binary_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmkit/wasmkit/internal/wasm"
	"github.com/wasmkit/wasmkit/internal/wasm/binary"
)

// S3: a GC struct type and struct.new instruction.
func TestEncodeModule_GCStruct(t *testing.T) {
	b := wasm.NewBuilder()
	structIdx := b.AddType(wasm.CompositeType{
		Kind: wasm.CompositeTypeStruct,
		Struct: &wasm.StructType{
			Fields: []wasm.FieldType{
				{Storage: wasm.StorageType{Value: wasm.ValueTypeI32}, Mutable: true},
			},
		},
	})
	funcTypeIdx := b.AddFuncType(nil, []wasm.ValueType{wasm.ValueTypeExternref})
	b.AddFunction(funcTypeIdx, wasm.Code{
		Body: []wasm.Instruction{
			wasm.I32Const(42),
			wasm.StructNew(structIdx),
			wasm.Plain(wasm.OpcodeDrop),
			wasm.RefNull(wasm.HeapType{Abstract: wasm.HeapTypeExtern}),
		},
	})

	m, err := b.Build()
	require.NoError(t, err)

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)
	// type section tag for struct (0x5f) with one mutable i32 field.
	require.Contains(t, string(out), string([]byte{0x5f, 0x01, 0x7f, 0x01}))
	// struct.new: 0xfb 0x00 <type index 0>
	require.Contains(t, string(out), string([]byte{0xfb, 0x00, 0x00}))
}

// Two struct types declared in the same explicit rec group, the first of
// them used by struct.new; the type section must emit the 0x4e wrapper
// around both rather than two standalone type entries.
func TestEncodeModule_RecursionGroup(t *testing.T) {
	b := wasm.NewBuilder()
	indices := b.AddRecursionGroup(
		wasm.CompositeType{
			Kind: wasm.CompositeTypeStruct,
			Struct: &wasm.StructType{
				Fields: []wasm.FieldType{
					{Storage: wasm.StorageType{Value: wasm.ValueTypeI32}, Mutable: false},
				},
			},
		},
		wasm.CompositeType{
			Kind: wasm.CompositeTypeStruct,
			Struct: &wasm.StructType{
				Fields: []wasm.FieldType{
					{Storage: wasm.StorageType{Value: wasm.ValueTypeI32}, Mutable: false},
				},
			},
		},
	)
	require.Len(t, indices, 2)

	funcTypeIdx := b.AddFuncType(nil, nil)
	b.AddFunction(funcTypeIdx, wasm.Code{
		Body: []wasm.Instruction{
			wasm.StructNew(indices[0]),
			wasm.Plain(wasm.OpcodeDrop),
		},
	})

	m, err := b.Build()
	require.NoError(t, err)
	require.Len(t, m.TypeSection, 3) // the two rec-group members plus the function type

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)
	// type section vector count is 2: one rec group (0x4e, vec of 2) plus
	// the plain function type, not 3 (the raw TypeSection length).
	require.Contains(t, string(out), string([]byte{0x4e, 0x02, 0x5f, 0x01, 0x7f, 0x00, 0x5f, 0x01, 0x7f, 0x00}))
}

// br_on_cast encodes a castflags byte (source then target nullability),
// the branch label, and both heap types.
func TestEncodeModule_BrOnCast(t *testing.T) {
	b := wasm.NewBuilder()
	typeIdx := b.AddFuncType(nil, nil)
	b.AddFunction(typeIdx, wasm.Code{
		Body: []wasm.Instruction{
			wasm.Block(wasm.BlockType{Kind: wasm.BlockTypeEmpty}),
			wasm.RefNull(wasm.HeapType{Abstract: wasm.HeapTypeAny}),
			wasm.BrOnCast(0,
				wasm.RefType{Nullable: true, Heap: wasm.HeapType{Abstract: wasm.HeapTypeAny}},
				wasm.RefType{Nullable: false, Heap: wasm.HeapType{Abstract: wasm.HeapTypeStruct}},
			),
			wasm.Plain(wasm.OpcodeDrop),
			wasm.Plain(wasm.OpcodeEnd),
		},
	})

	m, err := b.Build()
	require.NoError(t, err)

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)
	// 0xfb 0x18 (br_on_cast), flags 0x01 (source nullable, target not),
	// label 0, heaptype any (0x6e), heaptype struct (0x6b).
	require.Contains(t, string(out), string([]byte{0xfb, 0x18, 0x01, 0x00, 0x6e, 0x6b}))
}

// S5: return_call encodes the tail-call proposal's opcode with a function
// index immediate, same shape as call.
func TestEncodeModule_TailCall(t *testing.T) {
	b := wasm.NewBuilder()
	typeIdx := b.AddFuncType(nil, nil)
	calleeIdx := b.AddFunction(typeIdx, wasm.Code{})
	b.AddFunction(typeIdx, wasm.Code{
		Body: []wasm.Instruction{
			wasm.ReturnCall(calleeIdx),
		},
	})

	m, err := b.Build()
	require.NoError(t, err)

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, string(out), string([]byte{0x12, 0x00, 0x0b}))
}
