package text

import (
	"fmt"
	"strconv"

	"github.com/wasmkit/wasmkit/internal/wasm"
)

// EncodeModule renders m as a single top-level (module ...) form. Every
// reference is numeric — function, type, table, memory, global, and local
// indices — even when a name section is present; debug names are a binary
// custom-section concern, not a text-format one, so Names is not consulted
// here.
func EncodeModule(m *wasm.Module) (string, error) {
	w := &writer{}
	w.line("(module")
	w.push()

	writeTypeSection(w, m)
	writeImportSection(w, m)
	writeTableSection(w, m)
	writeMemorySection(w, m)
	writeGlobalSection(w, m)
	writeFunctionSection(w, m)
	writeExportSection(w, m)
	writeStartSection(w, m)
	writeElementSection(w, m)
	writeDataSection(w, m)

	w.pop()
	w.line(")")
	return w.String(), nil
}

func writeTypeSection(w *writer, m *wasm.Module) {
	for i, t := range m.TypeSection {
		w.line(fmt.Sprintf("(type (;%d;) %s)", i, compositeTypeText(t)))
	}
}

func writeImportSection(w *writer, m *wasm.Module) {
	for _, imp := range m.ImportSection {
		w.line(fmt.Sprintf("(import %s %s %s)", quoteString(imp.Module), quoteString(imp.Name), importDescText(imp)))
	}
}

func importDescText(imp wasm.Import) string {
	switch imp.Kind {
	case wasm.ExternalKindFunc:
		return fmt.Sprintf("(func (type %d))", imp.DescFunc)
	case wasm.ExternalKindTable:
		return fmt.Sprintf("(table %s %s)", limitsText(imp.DescTable.Limits), refTypeText(imp.DescTable.ElemRefType))
	case wasm.ExternalKindMemory:
		return fmt.Sprintf("(memory %s)", limitsText(imp.DescMemory.Limits))
	case wasm.ExternalKindGlobal:
		return fmt.Sprintf("(global %s)", globalTypeText(imp.DescGlobal))
	}
	return ""
}

func globalTypeText(t wasm.GlobalType) string {
	if t.Mutable {
		return fmt.Sprintf("(mut %s)", valueTypeText(t.ValType))
	}
	return valueTypeText(t.ValType)
}

func writeTableSection(w *writer, m *wasm.Module) {
	base := m.ImportTableCount()
	for i, t := range m.TableSection {
		w.line(fmt.Sprintf("(table (;%d;) %s %s)", base+uint32(i), limitsText(t.Limits), refTypeText(t.ElemRefType)))
	}
}

func writeMemorySection(w *writer, m *wasm.Module) {
	base := m.ImportMemoryCount()
	for i, mt := range m.MemorySection {
		w.line(fmt.Sprintf("(memory (;%d;) %s)", base+uint32(i), limitsText(mt.Limits)))
	}
}

func writeGlobalSection(w *writer, m *wasm.Module) {
	base := m.ImportGlobalCount()
	for i, g := range m.GlobalSection {
		w.line(fmt.Sprintf("(global (;%d;) %s (%s))", base+uint32(i), globalTypeText(g.Type), instructionText(g.Init.Instruction)))
	}
}

func writeFunctionSection(w *writer, m *wasm.Module) {
	base := m.ImportFuncCount()
	for i, typeIdx := range m.FunctionSection {
		idx := base + uint32(i)
		w.line(fmt.Sprintf("(func (;%d;) (type %d)", idx, typeIdx))
		w.push()
		code := m.CodeSection[i]
		writeLocals(w, code.Locals)
		writeInstructions(w, code.Body)
		w.pop()
		w.line(")")
	}
}

func writeLocals(w *writer, locals []wasm.ValueType) {
	i := 0
	for i < len(locals) {
		j := i + 1
		for j < len(locals) && locals[j] == locals[i] {
			j++
		}
		w.line(fmt.Sprintf("(local %s)", localRepeat(locals[i], j-i)))
		i = j
	}
}

func localRepeat(t wasm.ValueType, count int) string {
	s := valueTypeText(t)
	out := s
	for i := 1; i < count; i++ {
		out += " " + s
	}
	return out
}

func writeExportSection(w *writer, m *wasm.Module) {
	for _, e := range m.ExportSection {
		kind := exportKindText(e.Kind)
		w.line(fmt.Sprintf("(export %s (%s %d))", quoteString(e.Name), kind, e.Index))
	}
}

func exportKindText(k wasm.ExternalKind) string {
	switch k {
	case wasm.ExternalKindFunc:
		return "func"
	case wasm.ExternalKindTable:
		return "table"
	case wasm.ExternalKindMemory:
		return "memory"
	case wasm.ExternalKindGlobal:
		return "global"
	case wasm.ExternalKindTag:
		return "tag"
	}
	return "func"
}

func writeStartSection(w *writer, m *wasm.Module) {
	if m.StartSection != nil {
		w.line(fmt.Sprintf("(start %d)", *m.StartSection))
	}
}

func writeElementSection(w *writer, m *wasm.Module) {
	for _, e := range m.ElementSection {
		switch e.Mode {
		case wasm.ElementModeActive:
			w.line(fmt.Sprintf("(elem (;;) (table %d) (%s) %s)", e.TableIndex, instructionText(e.Offset.Instruction), elementInitText(e)))
		case wasm.ElementModePassive:
			w.line(fmt.Sprintf("(elem (;;) %s %s)", refTypeText(e.RefType), elementInitText(e)))
		case wasm.ElementModeDeclarative:
			w.line(fmt.Sprintf("(elem (;;) declare %s %s)", refTypeText(e.RefType), elementInitText(e)))
		}
	}
}

func elementInitText(e wasm.ElementSegment) string {
	if e.FuncIndices != nil {
		s := "func"
		for _, f := range e.FuncIndices {
			s += " " + strconv.FormatUint(uint64(f), 10)
		}
		return s
	}
	s := ""
	for i, ex := range e.Exprs {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%s)", instructionText(ex.Instruction))
	}
	return s
}

func writeDataSection(w *writer, m *wasm.Module) {
	for _, d := range m.DataSection {
		switch d.Mode {
		case wasm.DataModeActive:
			w.line(fmt.Sprintf("(data (;;) (memory %d) (%s) %s)", d.MemoryIndex, instructionText(d.Offset.Instruction), quoteString(string(d.Init))))
		case wasm.DataModePassive:
			w.line(fmt.Sprintf("(data (;;) %s)", quoteString(string(d.Init))))
		}
	}
}
