package wasmkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	wasmkit "github.com/wasmkit/wasmkit"
)

func TestEncoderConfig_ImmutableChaining(t *testing.T) {
	base := wasmkit.NewEncoderConfig()
	withGC := base.WithGC(true)

	b := wasmkit.NewModuleBuilder()
	b.AddType(wasmkit.CompositeType{
		Kind:   wasmkit.CompositeTypeStruct,
		Struct: &wasmkit.StructType{Fields: []wasmkit.FieldType{{Storage: wasmkit.StorageType{Value: wasmkit.ValueTypeI32}}}},
	})

	_, err := b.EncodeBinary(base)
	require.Error(t, err, "base config must be unaffected by the WithGC(true) derivation")

	_, err = b.EncodeBinary(withGC)
	require.NoError(t, err)
}

func TestEncoderConfig_TailCallGating(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	typeIdx := b.AddFuncType(nil, nil)
	calleeIdx := b.NewFunctionBuilder().WithType(typeIdx).Define()
	b.NewFunctionBuilder().WithType(typeIdx).WithBody(wasmkit.ReturnCall(calleeIdx)).Export("run")

	_, err := b.EncodeText(wasmkit.NewEncoderConfig())
	require.Error(t, err)

	_, err = b.EncodeText(wasmkit.NewEncoderConfig().WithTailCall(true))
	require.NoError(t, err)
}
