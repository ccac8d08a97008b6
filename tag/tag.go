// Package tag implements the CBOR tag registry and the Taggable protocol
// domain types use to wrap/unwrap through a dcbor.Value (spec §4.F).
package tag

import "sync"

// Tag associates a numeric CBOR tag with an optional display name.
type Tag struct {
	Value uint64
	Name  string
}

// New constructs a Tag. name may be empty.
func New(value uint64, name string) Tag {
	return Tag{Value: value, Name: name}
}

// registry is the one process-wide mutable object in this module (spec §5):
// read-only from encoders/decoders/printers during normal operation, it is
// expected to be populated at startup and then shared freely across
// goroutines behind this RWMutex.
var registry = struct {
	mu sync.RWMutex
	m  map[uint64]Tag
}{m: make(map[uint64]Tag)}

// Register adds t to the process-wide registry, overwriting any existing
// entry for the same tag value.
func Register(t Tag) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.m[t.Value] = t
}

// Lookup returns the registered Tag for value, if any.
func Lookup(value uint64) (Tag, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	t, ok := registry.m[value]
	return t, ok
}

// Well-known tags named directly in the teacher library's tag table,
// registered at init so Lookup/printers can name them without every caller
// needing to import dtypes first.
var (
	DateTimeString   = New(0, "datetime-string")
	UnixTime         = New(1, "unix-time")
	UnsignedBignum   = New(2, "unsigned-bignum")
	NegativeBignum   = New(3, "negative-bignum")
	DecimalFraction  = New(4, "decimal-fraction")
	BigFloat         = New(5, "bigfloat")
	ExpectedBase64URL = New(21, "expected-base64url")
	ExpectedBase64   = New(22, "expected-base64")
	ExpectedBase16   = New(23, "expected-base16")
	EncodedCbor      = New(24, "encoded-cbor")
	URI              = New(32, "uri")
	Base64URL        = New(33, "base64url")
	Base64           = New(34, "base64")
	RegularExpr      = New(35, "regex")
	MIMEMessage      = New(36, "mime-message")
	BinaryUUID       = New(37, "uuid")
	SelfDescribedCbor = New(55799, "self-described-cbor")
)

func init() {
	for _, t := range []Tag{
		DateTimeString, UnixTime, UnsignedBignum, NegativeBignum,
		DecimalFraction, BigFloat, ExpectedBase64URL, ExpectedBase64,
		ExpectedBase16, EncodedCbor, URI, Base64URL, Base64, RegularExpr,
		MIMEMessage, BinaryUUID, SelfDescribedCbor,
	} {
		Register(t)
	}
}
