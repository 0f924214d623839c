package wasm

// SectionID identifies one of the binary format's top-level sections. The
// numeric values are part of the wire format and must match the canonical
// ordering in which sections appear in an encoded module.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#sections
type SectionID = byte

const (
	SectionIDCustom SectionID = iota
	SectionIDType
	SectionIDImport
	SectionIDFunction
	SectionIDTable
	SectionIDMemory
	SectionIDGlobal
	SectionIDExport
	SectionIDStart
	SectionIDElement
	SectionIDCode
	SectionIDData
	SectionIDDataCount
	SectionIDTag
)

func sectionName(id SectionID) string {
	switch id {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	case SectionIDDataCount:
		return "data count"
	case SectionIDTag:
		return "tag"
	}
	return "unknown"
}

// Index is a position within one of a module's index spaces (types,
// functions, tables, memories, globals, elements, data).
type Index = uint32
