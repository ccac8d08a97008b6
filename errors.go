package dcbor

import "fmt"

// ErrorKind is the closed set of decode failures (spec §7). Unlike the
// teacher library this is consolidated from two parallel error families (a
// narrow sentinel-error set and a broader offset-carrying struct) into the
// single taxonomy the spec calls for.
type ErrorKind int

const (
	// UnderflowBytes means the input ended mid-item.
	UnderflowBytes ErrorKind = iota
	// UnusedData means a top-level decode left trailing bytes.
	UnusedData
	// NotWellFormed means a reserved or indefinite-length construct was
	// seen, or a reserved simple value (24-31).
	NotWellFormed
	// NonCanonicalNumeric means a head used a wider-than-minimal length.
	NonCanonicalNumeric
	// NonCanonicalFloat means a float admits a shorter, or integer,
	// representation.
	NonCanonicalFloat
	// InvalidString means a text payload is not valid UTF-8.
	InvalidString
	// MisorderedMapKey means map keys are not strictly ascending by
	// canonical bytes.
	MisorderedMapKey
	// DuplicateMapKey means two map keys are canonically equal.
	DuplicateMapKey
	// OutOfRange means an integer falls outside the addressable in-model
	// range.
	OutOfRange
	// WrongType means a conversion asked for a case the Value does not
	// hold.
	WrongType
	// WrongTag means a tagged decoder saw an unexpected tag.
	WrongTag
	// TooDeep means nesting exceeded the implementation limit.
	TooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case UnderflowBytes:
		return "UnderflowBytes"
	case UnusedData:
		return "UnusedData"
	case NotWellFormed:
		return "NotWellFormed"
	case NonCanonicalNumeric:
		return "NonCanonicalNumeric"
	case NonCanonicalFloat:
		return "NonCanonicalFloat"
	case InvalidString:
		return "InvalidString"
	case MisorderedMapKey:
		return "MisorderedMapKey"
	case DuplicateMapKey:
		return "DuplicateMapKey"
	case OutOfRange:
		return "OutOfRange"
	case WrongType:
		return "WrongType"
	case WrongTag:
		return "WrongTag"
	case TooDeep:
		return "TooDeep"
	default:
		return "Unknown"
	}
}

// DecodeError reports a decode failure together with the byte offset it was
// first detected at, and (for WrongTag) the tag values involved.
type DecodeError struct {
	Kind     ErrorKind
	Offset   int
	Expected uint64 // meaningful only for WrongTag
	Got      uint64 // meaningful only for WrongTag
}

func (e *DecodeError) Error() string {
	if e.Kind == WrongTag {
		return fmt.Sprintf("dcbor: %s at offset %d (expected tag %d, got %d)", e.Kind, e.Offset, e.Expected, e.Got)
	}
	return fmt.Sprintf("dcbor: %s at offset %d", e.Kind, e.Offset)
}

func newErr(kind ErrorKind, offset int) error {
	return &DecodeError{Kind: kind, Offset: offset}
}

func newWrongTag(expected, got uint64) error {
	return &DecodeError{Kind: WrongTag, Expected: expected, Got: got}
}

// NewWrongTagError constructs the WrongTag error a Taggable wrapper raises
// when it decodes a Tagged value carrying a different tag than expected
// (spec §4.F). Exported so the tag package's generic decode helper can
// raise it without duplicating the taxonomy.
func NewWrongTagError(expected, got uint64) error {
	return newWrongTag(expected, got)
}
