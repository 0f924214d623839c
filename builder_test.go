package wasmkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	wasmkit "github.com/wasmkit/wasmkit"
)

func TestModuleBuilder_AddFunction(t *testing.T) {
	b := wasmkit.NewModuleBuilder().WithModuleName("arith")
	typeIdx := b.AddFuncType([]wasmkit.ValueType{wasmkit.ValueTypeI32, wasmkit.ValueTypeI32}, []wasmkit.ValueType{wasmkit.ValueTypeI32})
	b.NewFunctionBuilder().
		WithType(typeIdx).
		WithBody(
			wasmkit.LocalGet(0),
			wasmkit.LocalGet(1),
			wasmkit.Plain(wasmkit.OpcodeI32Add),
		).
		WithName("add").
		WithLocalNames("a", "b").
		Export("add")

	bin, err := b.EncodeBinary()
	require.NoError(t, err)
	require.NotEmpty(t, bin)
	require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, bin[:8])

	wat, err := b.EncodeText()
	require.NoError(t, err)
	require.Contains(t, wat, `(export "add" (func 0))`)
	require.Contains(t, wat, "local.get 0")
	require.Contains(t, wat, "i32.add")
}

func TestModuleBuilder_DefineWithoutExport(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	typeIdx := b.AddFuncType(nil, nil)
	calleeIdx := b.NewFunctionBuilder().WithType(typeIdx).Define()
	b.NewFunctionBuilder().
		WithType(typeIdx).
		WithBody(wasmkit.Call(calleeIdx)).
		Export("run")

	wat, err := b.EncodeText()
	require.NoError(t, err)
	require.Contains(t, wat, "call 0")
}

func TestModuleBuilder_MemoryAndGlobal(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	memIdx := b.AddMemory(wasmkit.MemoryType{Limits: wasmkit.Limits{Min: 1}})
	b.AddExport(wasmkit.Export{Name: "memory", Kind: wasmkit.ExternalKindMemory, Index: memIdx})
	globalIdx := b.AddGlobal(wasmkit.Global{
		Type: wasmkit.GlobalType{ValType: wasmkit.ValueTypeI32, Mutable: true},
		Init: wasmkit.ConstantExpression{Instruction: wasmkit.I32Const(0)},
	})
	b.AddExport(wasmkit.Export{Name: "counter", Kind: wasmkit.ExternalKindGlobal, Index: globalIdx})

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, uint32(1), m.MemoryCount())
	require.Equal(t, uint32(1), m.GlobalCount())
}

// A GC feature used without enabling it surfaces EncodeErrorKindUnsupportedOpcode.
func TestModuleBuilder_EncodeBinary_DisabledFeature(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	b.AddType(wasmkit.CompositeType{
		Kind:   wasmkit.CompositeTypeStruct,
		Struct: &wasmkit.StructType{Fields: []wasmkit.FieldType{{Storage: wasmkit.StorageType{Value: wasmkit.ValueTypeI32}}}},
	})

	_, err := b.EncodeBinary(wasmkit.NewEncoderConfig())
	require.Error(t, err)

	_, err = b.EncodeBinary(wasmkit.NewEncoderConfig().WithGC(true))
	require.NoError(t, err)
}
