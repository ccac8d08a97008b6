// Package dcbor implements deterministic CBOR: a strict subset of RFC 8949
// in which every value has exactly one canonical byte representation. It
// provides the value model, a total encoder, and a strict decoder that
// rejects any legal-CBOR input that isn't already in canonical form.
package dcbor

import (
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/brinecore/dcbor/internal/ieee754"
)

// Kind identifies which of the eight value-model cases a Value holds.
type Kind byte

const (
	KindUnsigned Kind = iota
	KindNegative
	KindBytes
	KindText
	KindArray
	KindMap
	KindTagged
	KindSimple
)

func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "Unsigned"
	case KindNegative:
		return "Negative"
	case KindBytes:
		return "ByteString"
	case KindText:
		return "Text"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindTagged:
		return "Tagged"
	case KindSimple:
		return "Simple"
	default:
		return "Unknown"
	}
}

// Named simple values, per RFC 8949 section 3.3.
const (
	SimpleFalse     uint64 = 20
	SimpleTrue      uint64 = 21
	SimpleNull      uint64 = 22
	SimpleUndefined uint64 = 23
)

// Value is an immutable CBOR value: a tagged union over the eight cases of
// the deterministic data model. The zero Value is Unsigned(0); build any
// other value with one of the constructors below.
type Value struct {
	kind Kind

	u uint64 // Unsigned payload, or Simple's raw argument when !isFloat.
	n int64  // Negative payload.

	bytes []byte
	text  string

	items []Value
	m     *Map

	tag     uint64
	content *Value

	isFloat    bool
	floatWidth ieee754.Width
	floatBits  uint64
}

// Kind reports which case the Value holds.
func (v Value) Kind() Kind { return v.kind }

// NewUnsigned constructs an Unsigned value.
func NewUnsigned(u uint64) Value {
	return Value{kind: KindUnsigned, u: u}
}

// NewInt constructs an Unsigned or Negative value depending on sign,
// implementing the model's integer-merging rule (spec §3): the constructor
// chooses Unsigned iff the value is >= 0.
func NewInt(n int64) Value {
	if n >= 0 {
		return Value{kind: KindUnsigned, u: uint64(n)}
	}
	return Value{kind: KindNegative, n: n}
}

// NewNegative constructs a Negative value directly. n must be in
// [-2^63, -1]; values outside that range belong to NewUnsigned/NewInt.
func NewNegative(n int64) (Value, error) {
	if n >= 0 {
		return Value{}, &ModelError{Msg: "Negative payload must be < 0"}
	}
	return Value{kind: KindNegative, n: n}, nil
}

// NewBytes constructs a ByteString value. The slice is retained, not copied;
// callers must not mutate it afterward (spec §3 lifecycle: Values are
// immutable after construction).
func NewBytes(b []byte) Value {
	return Value{kind: KindBytes, bytes: b}
}

// NewText constructs a Text value, enforcing invariant 1 (valid UTF-8).
func NewText(s string) (Value, error) {
	if !utf8.ValidString(s) {
		return Value{}, &ModelError{Msg: "Text payload is not valid UTF-8"}
	}
	return Value{kind: KindText, text: s}, nil
}

// NewArray constructs an Array value from an ordered slice of children.
// The slice is retained, not copied.
func NewArray(items []Value) Value {
	return Value{kind: KindArray, items: items}
}

// NewMap wraps a *Map as a Value. A nil m is treated as an empty map.
func NewMap(m *Map) Value {
	if m == nil {
		m = NewEmptyMap()
	}
	return Value{kind: KindMap, m: m}
}

// NewTagged constructs a Tagged value wrapping content under the given tag
// number, satisfying invariant 5 (content is itself a valid Value) by
// construction: content was already built through one of these
// constructors.
func NewTagged(tag uint64, content Value) Value {
	c := content
	return Value{kind: KindTagged, tag: tag, content: &c}
}

// NewSimple constructs a raw Simple value. raw must be in {0..23} \ nothing
// (0-19 unnamed/named) or {32..255}; the reserved range 24-31 is forbidden
// in-model (spec §4.C) even though the wire format uses additional-info 24
// to extend into 32-255.
func NewSimple(raw uint64) (Value, error) {
	if raw >= 24 && raw <= 31 {
		return Value{}, &ModelError{Msg: "simple values 24-31 are reserved"}
	}
	if raw > 255 {
		return Value{}, &ModelError{Msg: "simple value out of range"}
	}
	return Value{kind: KindSimple, u: raw}, nil
}

// NewBool constructs the Simple(false)/Simple(true) value.
func NewBool(b bool) Value {
	if b {
		return Value{kind: KindSimple, u: SimpleTrue}
	}
	return Value{kind: KindSimple, u: SimpleFalse}
}

// Null constructs the Simple(null) value.
func Null() Value { return Value{kind: KindSimple, u: SimpleNull} }

// Undefined constructs the Simple(undefined) value.
func Undefined() Value { return Value{kind: KindSimple, u: SimpleUndefined} }

// NewFloat constructs the canonical (shortest-legal) encoding of a double,
// per spec §4.B. This is total: every float64, including NaN and the
// infinities, produces some Value. Invariants 2 and 3 hold by construction:
// a fractionless float in range fuses into Unsigned/Negative here rather
// than ever becoming a float-bearing Simple.
func NewFloat(d float64) Value {
	c := ieee754.Canonicalize(d)
	if c.Width == ieee754.AsInteger {
		if c.NegInt {
			return NewInt(-1 - int64(c.IntVal))
		}
		return NewUnsigned(c.IntVal)
	}
	return Value{kind: KindSimple, isFloat: true, floatWidth: c.Width, floatBits: c.Bits}
}

// IsFloat reports whether a Simple value holds a floating-point payload.
func (v Value) IsFloat() bool { return v.kind == KindSimple && v.isFloat }

// ModelError reports a violation of a value-model invariant at construction
// time (as opposed to DecodeError, which reports a wire-format violation).
type ModelError struct{ Msg string }

func (e *ModelError) Error() string { return "dcbor: " + e.Msg }

// Bytes returns the canonical encoding of v. It is total and deterministic:
// equal Values (per Equal) always produce identical bytes, and distinct
// Values always produce distinct bytes (spec §8 law 3).
func (v Value) Bytes() []byte {
	return Encode(v)
}

// Equal reports whether a and b are the same value under canonical-bytes
// equality (spec §3 lifecycle).
func (a Value) Equal(b Value) bool {
	ab, bb := a.Bytes(), b.Bytes()
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit hash of v's canonical encoding, suitable for use as
// a map key or content-addressed identity check. It is consistent with
// Equal: a.Equal(b) implies a.Hash() == b.Hash().
func (v Value) Hash() uint64 {
	return xxhash.Sum64(v.Bytes())
}
