package binary

import "github.com/wasmkit/wasmkit/internal/wasm"

func encodeElementSection(m *wasm.Module) []byte {
	var body []byte
	for _, e := range m.ElementSection {
		body = append(body, encodeElementSegment(e)...)
	}
	return encodeSection(wasm.SectionIDElement, encodeVector(len(m.ElementSection), body))
}

// encodeElementSegment picks one of the eight flag-byte forms defined by
// the bulk-memory/reference-types proposal, preferring the compact
// funcref-index form (flags 0/1/2/3) when the segment's initializers are
// plain function indices and its elements are funcref, falling back to
// the general expression form (flags 4/5/6/7) otherwise.
func encodeElementSegment(e wasm.ElementSegment) []byte {
	funcrefIndices := e.FuncIndices != nil && !e.RefType.Heap.IsTypeIndex && e.RefType.Heap.Abstract == wasm.HeapTypeFunc

	switch e.Mode {
	case wasm.ElementModeActive:
		if e.TableIndex == 0 && funcrefIndices {
			out := []byte{0x00}
			out = append(out, encodeConstExpr(e.Offset)...)
			return append(out, encodeVector(len(e.FuncIndices), encodeIndices(e.FuncIndices))...)
		}
		if funcrefIndices {
			out := []byte{0x02}
			out = append(out, encodeU32Index(e.TableIndex)...)
			out = append(out, encodeConstExpr(e.Offset)...)
			out = append(out, elemKindFuncref)
			return append(out, encodeVector(len(e.FuncIndices), encodeIndices(e.FuncIndices))...)
		}
		if e.TableIndex == 0 {
			out := []byte{0x04}
			out = append(out, encodeConstExpr(e.Offset)...)
			return append(out, encodeVector(len(e.Exprs), encodeConstExprs(e.Exprs))...)
		}
		out := []byte{0x06}
		out = append(out, encodeU32Index(e.TableIndex)...)
		out = append(out, encodeConstExpr(e.Offset)...)
		out = append(out, encodeRefType(e.RefType)...)
		return append(out, encodeVector(len(e.Exprs), encodeConstExprs(e.Exprs))...)

	case wasm.ElementModePassive:
		if funcrefIndices {
			out := []byte{0x01, elemKindFuncref}
			return append(out, encodeVector(len(e.FuncIndices), encodeIndices(e.FuncIndices))...)
		}
		out := []byte{0x05}
		out = append(out, encodeRefType(e.RefType)...)
		return append(out, encodeVector(len(e.Exprs), encodeConstExprs(e.Exprs))...)

	default: // ElementModeDeclarative
		if funcrefIndices {
			out := []byte{0x03, elemKindFuncref}
			return append(out, encodeVector(len(e.FuncIndices), encodeIndices(e.FuncIndices))...)
		}
		out := []byte{0x07}
		out = append(out, encodeRefType(e.RefType)...)
		return append(out, encodeVector(len(e.Exprs), encodeConstExprs(e.Exprs))...)
	}
}

const elemKindFuncref = 0x00

func encodeConstExprs(exprs []wasm.ConstantExpression) []byte {
	var out []byte
	for _, e := range exprs {
		out = append(out, encodeConstExpr(e)...)
	}
	return out
}
