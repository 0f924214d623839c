package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wasmkit/wasmkit/internal/wasm"
)

func valueTypeText(t wasm.ValueType) string {
	return wasm.ValueTypeName(t)
}

func heapTypeText(h wasm.HeapType) string {
	if h.IsTypeIndex {
		return strconv.FormatUint(uint64(h.TypeIndex), 10)
	}
	switch h.Abstract {
	case wasm.HeapTypeFunc:
		return "func"
	case wasm.HeapTypeExtern:
		return "extern"
	case wasm.HeapTypeAny:
		return "any"
	case wasm.HeapTypeEq:
		return "eq"
	case wasm.HeapTypeI31:
		return "i31"
	case wasm.HeapTypeStruct:
		return "struct"
	case wasm.HeapTypeArray:
		return "array"
	case wasm.HeapTypeNone:
		return "none"
	case wasm.HeapTypeNoFunc:
		return "nofunc"
	case wasm.HeapTypeNoExtern:
		return "noextern"
	}
	return fmt.Sprintf("0x%x", h.Abstract)
}

func refTypeText(r wasm.RefType) string {
	if r.Nullable {
		switch r.Heap.Abstract {
		case wasm.HeapTypeFunc:
			return "funcref"
		case wasm.HeapTypeExtern:
			return "externref"
		}
		return fmt.Sprintf("(ref null %s)", heapTypeText(r.Heap))
	}
	return fmt.Sprintf("(ref %s)", heapTypeText(r.Heap))
}

func blockTypeText(bt *wasm.BlockType) string {
	if bt == nil {
		return ""
	}
	switch bt.Kind {
	case wasm.BlockTypeEmpty:
		return ""
	case wasm.BlockTypeValue:
		return fmt.Sprintf(" (result %s)", valueTypeText(bt.ValueType))
	case wasm.BlockTypeIndex:
		return fmt.Sprintf(" (type %d)", bt.TypeIndex)
	}
	return ""
}

func limitsText(l wasm.Limits) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(l.Min), 10))
	if l.Max != nil {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(uint64(*l.Max), 10))
	}
	if l.Shared {
		sb.WriteString(" shared")
	}
	return sb.String()
}

func functionTypeText(f *wasm.FunctionType) string {
	var sb strings.Builder
	for _, p := range f.Params {
		sb.WriteString(" (param ")
		sb.WriteString(valueTypeText(p))
		sb.WriteByte(')')
	}
	for _, r := range f.Results {
		sb.WriteString(" (result ")
		sb.WriteString(valueTypeText(r))
		sb.WriteByte(')')
	}
	return sb.String()
}

func fieldTypeText(f wasm.FieldType) string {
	var s string
	if f.Storage.Packed {
		if f.Storage.PackedType == wasm.StorageTypeI8 {
			s = "i8"
		} else {
			s = "i16"
		}
	} else {
		s = valueTypeText(f.Storage.Value)
	}
	if f.Mutable {
		return fmt.Sprintf("(mut %s)", s)
	}
	return s
}

func compositeTypeText(t wasm.CompositeType) string {
	switch t.Kind {
	case wasm.CompositeTypeFunc:
		return fmt.Sprintf("(func%s)", functionTypeText(t.Func))
	case wasm.CompositeTypeStruct:
		var sb strings.Builder
		sb.WriteString("(struct")
		for _, f := range t.Struct.Fields {
			sb.WriteString(" (field ")
			sb.WriteString(fieldTypeText(f))
			sb.WriteByte(')')
		}
		sb.WriteByte(')')
		return sb.String()
	case wasm.CompositeTypeArray:
		return fmt.Sprintf("(array %s)", fieldTypeText(t.Array.Element))
	}
	return ""
}
