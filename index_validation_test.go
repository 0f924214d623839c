package wasmkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	wasmkit "github.com/wasmkit/wasmkit"
)

// A call to a function index with no corresponding entry must be rejected
// by Build/Validate, not silently encoded.
func TestModuleBuilder_Build_CallIndexOutOfRange(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	typeIdx := b.AddFuncType(nil, nil)
	b.NewFunctionBuilder().
		WithType(typeIdx).
		WithBody(wasmkit.Call(9999)).
		Export("run")

	_, err := b.Build()
	require.Error(t, err)
}

// local.get past the function's params+locals count is rejected.
func TestModuleBuilder_Build_LocalIndexOutOfRange(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	typeIdx := b.AddFuncType([]wasmkit.ValueType{wasmkit.ValueTypeI32}, nil)
	b.NewFunctionBuilder().
		WithType(typeIdx).
		WithBody(wasmkit.LocalGet(50), wasmkit.Plain(wasmkit.OpcodeDrop)).
		Export("run")

	_, err := b.Build()
	require.Error(t, err)
}

// br to a label deeper than the enclosing block nesting is rejected.
func TestModuleBuilder_Build_BranchLabelOutOfRange(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	typeIdx := b.AddFuncType(nil, nil)
	b.NewFunctionBuilder().
		WithType(typeIdx).
		WithBody(wasmkit.Br(7)).
		Export("run")

	_, err := b.Build()
	require.Error(t, err)
}

// struct.get referencing a nonexistent type index is rejected even though
// the GC feature is disabled; index validation runs before feature gating.
func TestModuleBuilder_Build_GCTypeIndexOutOfRange(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	typeIdx := b.AddFuncType(nil, []wasmkit.ValueType{wasmkit.ValueTypeI32})
	b.NewFunctionBuilder().
		WithType(typeIdx).
		WithBody(wasmkit.StructGet(99, 0)).
		Export("run")

	_, err := b.Build()
	require.Error(t, err)
}

// table.init referencing an element segment that doesn't exist is rejected,
// even though its table index is in range.
func TestModuleBuilder_Build_TableInitElemIndexOutOfRange(t *testing.T) {
	b := wasmkit.NewModuleBuilder()
	tableIdx := b.AddTable(wasmkit.TableType{
		ElemRefType: wasmkit.RefType{Nullable: true, Heap: wasmkit.HeapType{Abstract: wasmkit.HeapTypeFunc}},
		Limits:      wasmkit.Limits{Min: 1},
	})
	typeIdx := b.AddFuncType(nil, nil)
	b.NewFunctionBuilder().
		WithType(typeIdx).
		WithBody(wasmkit.TableInit(tableIdx, 3)).
		Export("bad")

	_, err := b.Build()
	require.Error(t, err)
}
