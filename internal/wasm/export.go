package wasm

// ExternalKind classifies an Import or Export's referent. A single enum
// shared between both keeps the two index spaces' tagging consistent,
// rather than wazero's separate ExternTypeXxx/ImportKindXxx/ExportKindXxx
// naming.
type ExternalKind = byte

const (
	ExternalKindFunc ExternalKind = iota
	ExternalKindTable
	ExternalKindMemory
	ExternalKindGlobal
	ExternalKindTag
)

func externalKindName(k ExternalKind) string {
	switch k {
	case ExternalKindFunc:
		return "func"
	case ExternalKindTable:
		return "table"
	case ExternalKindMemory:
		return "memory"
	case ExternalKindGlobal:
		return "global"
	case ExternalKindTag:
		return "tag"
	}
	return "unknown"
}

// Export makes one of the module's definitions visible under a name.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#export-section
type Export struct {
	Name  string
	Kind  ExternalKind
	Index Index
}
