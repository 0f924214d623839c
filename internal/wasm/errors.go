package wasm

import "fmt"

// EncodeErrorKind classifies why constructing or encoding a Module failed.
type EncodeErrorKind int

const (
	EncodeErrorKindIndexOutOfRange EncodeErrorKind = iota
	EncodeErrorKindSectionCountMismatch
	EncodeErrorKindInvalidLimits
	EncodeErrorKindInvalidType
	EncodeErrorKindInvalidName
	EncodeErrorKindUnsupportedOpcode
	EncodeErrorKindDuplicateSection
)

func (k EncodeErrorKind) String() string {
	switch k {
	case EncodeErrorKindIndexOutOfRange:
		return "index out of range"
	case EncodeErrorKindSectionCountMismatch:
		return "section count mismatch"
	case EncodeErrorKindInvalidLimits:
		return "invalid limits"
	case EncodeErrorKindInvalidType:
		return "invalid type"
	case EncodeErrorKindInvalidName:
		return "invalid name"
	case EncodeErrorKindUnsupportedOpcode:
		return "unsupported opcode"
	case EncodeErrorKindDuplicateSection:
		return "duplicate section"
	}
	return "unknown"
}

// EncodeError is returned by Module construction and encoding operations.
// It carries enough structure for callers to branch on Kind without
// parsing Error()'s text.
type EncodeError struct {
	Kind    EncodeErrorKind
	Section SectionID
	// Index is the section-relative index implicated, or -1 if not
	// applicable.
	Index   int
	Message string
	Err     error
}

func (e *EncodeError) Error() string {
	var loc string
	if e.Index >= 0 {
		loc = fmt.Sprintf("section %s[%d]", sectionName(e.Section), e.Index)
	} else {
		loc = fmt.Sprintf("section %s", sectionName(e.Section))
	}
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", loc, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", loc, msg)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func newIndexError(section SectionID, index int, name string) *EncodeError {
	return &EncodeError{
		Kind:    EncodeErrorKindIndexOutOfRange,
		Section: section,
		Index:   index,
		Message: fmt.Sprintf("%s index out of range", name),
	}
}
