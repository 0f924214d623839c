package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

const (
	typeTagFunc      = 0x60
	typeTagStruct    = 0x5f
	typeTagArray     = 0x5e
	typeTagSub       = 0x50
	typeTagSubFinal  = 0x4f
	typeTagRecGroup  = 0x4e
)

// encodeTypeSection emits the type section. Its outer vector count is the
// number of rec groups (explicit or implicit one-member groups), not
// len(m.TypeSection): the GC proposal's rectype grammar is
// 0x4E vec(subtype) | subtype, so mixing explicit groups with plain types
// requires partitioning TypeSection by the group boundaries in
// m.RecursionGroups rather than just counting entries.
func encodeTypeSection(m *wasm.Module) []byte {
	groupSizeAt := make(map[wasm.Index]wasm.Index, len(m.RecursionGroups))
	for _, g := range m.RecursionGroups {
		groupSizeAt[g.Start] = g.Size
	}

	var body []byte
	groupCount := 0
	for i := wasm.Index(0); i < wasm.Index(len(m.TypeSection)); groupCount++ {
		if size, ok := groupSizeAt[i]; ok && size > 0 {
			body = append(body, encodeRecursionGroup(m.TypeSection[i:i+size])...)
			i += size
			continue
		}
		body = append(body, encodeCompositeType(m.TypeSection[i])...)
		i++
	}
	return encodeVector(groupCount, body)
}

func encodeRecursionGroup(types []wasm.CompositeType) []byte {
	if len(types) == 1 {
		return encodeCompositeType(types[0])
	}
	out := []byte{typeTagRecGroup}
	return append(out, encodeVector(len(types), encodeCompositeTypes(types))...)
}

func encodeCompositeTypes(types []wasm.CompositeType) []byte {
	var body []byte
	for _, t := range types {
		body = append(body, encodeCompositeType(t)...)
	}
	return body
}

func encodeCompositeType(t wasm.CompositeType) []byte {
	def := encodeCompositeTypeDef(t)
	if !t.Sub {
		return def
	}
	tag := byte(typeTagSub)
	if t.Final {
		tag = typeTagSubFinal
	}
	out := []byte{tag}
	out = append(out, encodeVector(len(t.SuperTypes), encodeIndices(t.SuperTypes))...)
	return append(out, def...)
}

func encodeIndices(indices []wasm.Index) []byte {
	var out []byte
	for _, i := range indices {
		out = append(out, encodeU32Index(i)...)
	}
	return out
}

func encodeCompositeTypeDef(t wasm.CompositeType) []byte {
	switch t.Kind {
	case wasm.CompositeTypeFunc:
		return encodeFunctionType(t.Func)
	case wasm.CompositeTypeStruct:
		return encodeStructType(t.Struct)
	case wasm.CompositeTypeArray:
		return encodeArrayType(t.Array)
	}
	return nil
}

func encodeFunctionType(f *wasm.FunctionType) []byte {
	out := []byte{typeTagFunc}
	out = append(out, encodeVector(len(f.Params), encodeValueTypes(f.Params))...)
	out = append(out, encodeVector(len(f.Results), encodeValueTypes(f.Results))...)
	return out
}

func encodeValueTypes(types []wasm.ValueType) []byte {
	var out []byte
	for _, t := range types {
		out = append(out, encodeValueType(t)...)
	}
	return out
}

func encodeStructType(s *wasm.StructType) []byte {
	out := []byte{typeTagStruct}
	var fields []byte
	for _, f := range s.Fields {
		fields = append(fields, encodeFieldType(f)...)
	}
	return append(out, encodeVector(len(s.Fields), fields)...)
}

func encodeArrayType(a *wasm.ArrayType) []byte {
	out := []byte{typeTagArray}
	return append(out, encodeFieldType(a.Element)...)
}

func encodeFieldType(f wasm.FieldType) []byte {
	var out []byte
	if f.Storage.Packed {
		out = append(out, f.Storage.PackedType)
	} else {
		out = append(out, encodeValueType(f.Storage.Value)...)
	}
	if f.Mutable {
		out = append(out, 0x01)
	} else {
		out = append(out, 0x00)
	}
	return out
}
