package binary_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmkit/wasmkit/internal/wasm"
	"github.com/wasmkit/wasmkit/internal/wasm/binary"
)

func preamble() []byte {
	return []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
}

// S1: an empty module encodes to just the preamble.
func TestEncodeModule_Empty(t *testing.T) {
	m, err := wasm.NewBuilder().Build()
	require.NoError(t, err)

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)
	require.Equal(t, preamble(), out)
}

// S2: a module with one exported add function encodes type, function,
// export, and code sections.
func TestEncodeModule_AddFunction(t *testing.T) {
	b := wasm.NewBuilder()
	typeIdx := b.AddFuncType([]wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, []wasm.ValueType{wasm.ValueTypeI32})
	funcIdx := b.AddFunction(typeIdx, wasm.Code{
		Body: []wasm.Instruction{
			wasm.LocalGet(0),
			wasm.LocalGet(1),
			wasm.Plain(wasm.OpcodeI32Add),
		},
	})
	b.AddExport(wasm.Export{Name: "add", Kind: wasm.ExternalKindFunc, Index: funcIdx})

	m, err := b.Build()
	require.NoError(t, err)

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)

	expected := append([]byte{}, preamble()...)
	// type section: 1 type, (i32 i32) -> (i32)
	expected = append(expected, 0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f)
	// function section: 1 entry, type 0
	expected = append(expected, 0x03, 0x02, 0x01, 0x00)
	// export section: 1 entry "add" func 0
	expected = append(expected, 0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x00)
	// code section: 1 body, no locals, local.get 0, local.get 1, i32.add, end
	expected = append(expected, 0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b)

	require.Equal(t, expected, out)
}

// S4: a shared memory with atomic instructions encodes the threads
// proposal's flag byte and 0xFE-prefixed instruction.
func TestEncodeModule_SharedMemoryAtomics(t *testing.T) {
	b := wasm.NewBuilder()
	max := uint32(4)
	b.AddMemory(wasm.MemoryType{Limits: wasm.Limits{Min: 1, Max: &max, Shared: true}})
	typeIdx := b.AddFuncType(nil, nil)
	b.AddFunction(typeIdx, wasm.Code{
		Body: []wasm.Instruction{
			wasm.I32Const(0),
			wasm.I32Const(1),
			wasm.Atomic(wasm.AtomicOpcodeI32RmwAdd, wasm.MemArg{Align: 2, Offset: 0}),
			wasm.Plain(wasm.OpcodeDrop),
		},
	})

	m, err := b.Build()
	require.NoError(t, err)

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, string(out), string([]byte{0xfe, 0x1e, 0x02, 0x00}))
}

// S6: br_table encodes its label vector and default label.
func TestEncodeModule_BrTable(t *testing.T) {
	ins := wasm.BrTable([]wasm.Index{0, 1, 2}, 3)
	b := wasm.NewBuilder()
	typeIdx := b.AddFuncType([]wasm.ValueType{wasm.ValueTypeI32}, nil)
	b.AddFunction(typeIdx, wasm.Code{
		Body: []wasm.Instruction{
			wasm.Block(wasm.BlockType{Kind: wasm.BlockTypeEmpty}),
			wasm.Block(wasm.BlockType{Kind: wasm.BlockTypeEmpty}),
			wasm.Block(wasm.BlockType{Kind: wasm.BlockTypeEmpty}),
			wasm.Block(wasm.BlockType{Kind: wasm.BlockTypeEmpty}),
			wasm.LocalGet(0),
			ins,
			wasm.End(), wasm.End(), wasm.End(), wasm.End(),
		},
	})
	m, err := b.Build()
	require.NoError(t, err)

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, string(out), string([]byte{0x0e, 0x03, 0x00, 0x01, 0x02, 0x03}))
}

func TestEncodeModule_StartSection(t *testing.T) {
	b := wasm.NewBuilder()
	typeIdx := b.AddFuncType(nil, nil)
	funcIdx := b.AddFunction(typeIdx, wasm.Code{})
	b.SetStart(funcIdx)

	m, err := b.Build()
	require.NoError(t, err)

	out, err := binary.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, string(out), string([]byte{0x08, 0x01, 0x00}))
}
