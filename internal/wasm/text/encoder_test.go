package text_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmkit/wasmkit/internal/wasm"
	"github.com/wasmkit/wasmkit/internal/wasm/text"
)

// S1: an empty module encodes to a bare (module) form.
func TestEncodeModule_Empty(t *testing.T) {
	m, err := wasm.NewBuilder().Build()
	require.NoError(t, err)

	out, err := text.EncodeModule(m)
	require.NoError(t, err)
	require.Equal(t, "(module\n)\n", out)
}

// S2: a module with one exported add function renders its type, function
// body, and export as flat, numeric-index-only lines.
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

	out, err := text.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, out, "(type (;0;) (func (param i32) (param i32) (result i32)))")
	require.Contains(t, out, "local.get 0")
	require.Contains(t, out, "local.get 1")
	require.Contains(t, out, "i32.add")
	require.Contains(t, out, `(export "add" (func 0))`)
}

// S3: a GC struct type and struct.new instruction render with numeric type
// indices, never symbolic names.
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

	out, err := text.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, out, "(struct (field (mut i32)))")
	require.Contains(t, out, "struct.new 0")
	require.Contains(t, out, "ref.null extern")
}

// S5: return_call renders with the callee's numeric function index.
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

	out, err := text.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, out, "return_call 0")
}

// S6: a nested block/br_table renders indentation that deepens on block
// and resets on end, with the label vector flattened onto one line.
func TestEncodeModule_BrTable(t *testing.T) {
	ins := wasm.BrTable([]wasm.Index{0, 1, 2}, 3)
	b := wasm.NewBuilder()
	typeIdx := b.AddFuncType([]wasm.ValueType{wasm.ValueTypeI32}, nil)
	b.AddFunction(typeIdx, wasm.Code{
		Body: []wasm.Instruction{
			wasm.Block(wasm.BlockType{Kind: wasm.BlockTypeEmpty}),
			wasm.Block(wasm.BlockType{Kind: wasm.BlockTypeEmpty}),
			wasm.Block(wasm.BlockType{Kind: wasm.BlockTypeEmpty}),
			wasm.LocalGet(0),
			ins,
			wasm.End(), wasm.End(), wasm.End(),
		},
	})
	m, err := b.Build()
	require.NoError(t, err)

	out, err := text.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, out, "br_table 0 1 2 3")
	lines := strings.Split(out, "\n")
	var sawBlock, sawEnd bool
	for _, l := range lines {
		if strings.Contains(l, "block") {
			sawBlock = true
			require.True(t, strings.HasPrefix(l, "    "))
		}
		if strings.TrimSpace(l) == "end" {
			sawEnd = true
		}
	}
	require.True(t, sawBlock)
	require.True(t, sawEnd)
}

func TestEncodeModule_StartSection(t *testing.T) {
	b := wasm.NewBuilder()
	typeIdx := b.AddFuncType(nil, nil)
	funcIdx := b.AddFunction(typeIdx, wasm.Code{})
	b.SetStart(funcIdx)

	m, err := b.Build()
	require.NoError(t, err)

	out, err := text.EncodeModule(m)
	require.NoError(t, err)
	require.Contains(t, out, "(start 0)")
}
