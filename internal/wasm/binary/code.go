package binary

import (
	"github.com/wasmkit/wasmkit/internal/leb128"
	"github.com/wasmkit/wasmkit/internal/wasm"
)

func encodeCodeSection(m *wasm.Module) []byte {
	var body []byte
	for _, c := range m.CodeSection {
		encoded := encodeFunctionBody(c)
		body = append(body, leb128.EncodeUint32(uint32(len(encoded)))...)
		body = append(body, encoded...)
	}
	return encodeSection(wasm.SectionIDCode, encodeVector(len(m.CodeSection), body))
}

// encodeFunctionBody encodes one Code's locals (run-length encoded by
// consecutive equal type) and instruction stream, followed by the
// function-terminating end opcode the Code model leaves implicit.
func encodeFunctionBody(c wasm.Code) []byte {
	out := encodeLocals(c.Locals)
	for _, ins := range c.Body {
		out = append(out, encodeInstruction(ins)...)
	}
	return append(out, wasm.OpcodeEnd)
}

type localRun struct {
	count uint32
	typ   wasm.ValueType
}

func encodeLocals(locals []wasm.ValueType) []byte {
	var runs []localRun
	for _, t := range locals {
		if n := len(runs); n > 0 && runs[n-1].typ == t {
			runs[n-1].count++
		} else {
			runs = append(runs, localRun{count: 1, typ: t})
		}
	}
	var body []byte
	for _, r := range runs {
		body = append(body, leb128.EncodeUint32(r.count)...)
		body = append(body, encodeValueType(r.typ)...)
	}
	return encodeVector(len(runs), body)
}
