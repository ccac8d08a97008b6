package dcbor

import (
	"math"
	"unicode/utf8"

	"github.com/brinecore/dcbor/internal/head"
	"github.com/brinecore/dcbor/internal/ieee754"
)

// DefaultMaxDepth is the nesting-depth guard used when no DecodeOption
// overrides it (spec §4.E).
const DefaultMaxDepth = 256

// DecodeOption configures a single Decode call.
type DecodeOption func(*decoder)

// WithMaxDepth overrides the nesting-depth guard.
func WithMaxDepth(depth int) DecodeOption {
	return func(d *decoder) { d.maxDepth = depth }
}

type decoder struct {
	data     []byte
	maxDepth int
}

// Decode parses data as a single canonical CBOR item, enforcing every
// determinism rule in spec §4.E, and returns the decoded Value. Trailing
// bytes after the root value are an error (UnusedData); the decoder never
// partially constructs a Value; on error it returns the zero Value.
func Decode(data []byte, opts ...DecodeOption) (Value, error) {
	d := &decoder{data: data, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(d)
	}

	v, consumed, err := d.decodeAt(0, 0)
	if err != nil {
		return Value{}, err
	}
	if consumed != len(data) {
		return Value{}, newErr(UnusedData, consumed)
	}
	return v, nil
}

// decodeAt decodes one item starting at offset, returning the item, the new
// offset (offset + bytes consumed), and an error.
func (d *decoder) decodeAt(offset, depth int) (Value, int, error) {
	if depth > d.maxDepth {
		return Value{}, 0, newErr(TooDeep, offset)
	}

	major, arg, n, err := head.Read(d.data[offset:])
	if err != nil {
		return Value{}, 0, mapHeadErr(err, offset)
	}
	pos := offset + n

	switch major {
	case head.Unsigned:
		return NewUnsigned(arg), pos, nil

	case head.Negative:
		// The in-model Negative payload is restricted to i64 (spec §4.E,
		// §9 "Extended negative range"): arguments >= 2^63 decode to a
		// value below -2^63, outside the range this implementation
		// represents, so they are rejected rather than silently widened.
		if arg > math.MaxInt64 {
			return Value{}, 0, newErr(OutOfRange, offset)
		}
		n64 := -1 - int64(arg)
		return Value{kind: KindNegative, n: n64}, pos, nil

	case head.Bytes:
		end := pos + int(arg)
		if end < pos || end > len(d.data) {
			return Value{}, 0, newErr(UnderflowBytes, offset)
		}
		b := make([]byte, arg)
		copy(b, d.data[pos:end])
		return NewBytes(b), end, nil

	case head.Text:
		end := pos + int(arg)
		if end < pos || end > len(d.data) {
			return Value{}, 0, newErr(UnderflowBytes, offset)
		}
		s := string(d.data[pos:end])
		if !utf8.ValidString(s) {
			return Value{}, 0, newErr(InvalidString, offset)
		}
		return Value{kind: KindText, text: s}, end, nil

	case head.Array:
		items := make([]Value, 0, arg)
		cur := pos
		for i := uint64(0); i < arg; i++ {
			item, next, err := d.decodeAt(cur, depth+1)
			if err != nil {
				return Value{}, 0, err
			}
			items = append(items, item)
			cur = next
		}
		return NewArray(items), cur, nil

	case head.Map:
		m := NewEmptyMap()
		cur := pos
		var prevKeyBytes []byte
		for i := uint64(0); i < arg; i++ {
			keyStart := cur
			key, afterKey, err := d.decodeAt(cur, depth+1)
			if err != nil {
				return Value{}, 0, err
			}
			keyBytes := d.data[keyStart:afterKey]

			value, afterValue, err := d.decodeAt(afterKey, depth+1)
			if err != nil {
				return Value{}, 0, err
			}

			if prevKeyBytes != nil {
				switch cmpBytes(prevKeyBytes, keyBytes) {
				case 0:
					return Value{}, 0, newErr(DuplicateMapKey, keyStart)
				case 1:
					return Value{}, 0, newErr(MisorderedMapKey, keyStart)
				}
			}
			prevKeyBytes = keyBytes

			m.entries = append(m.entries, mapEntry{
				keyBytes: append([]byte(nil), keyBytes...),
				key:      key,
				value:    value,
			})
			cur = afterValue
		}
		return NewMap(m), cur, nil

	case head.Tag:
		content, next, err := d.decodeAt(pos, depth+1)
		if err != nil {
			return Value{}, 0, err
		}
		return NewTagged(arg, content), next, nil

	case head.Simple:
		return d.decodeSimple(offset, pos, arg, n)

	default:
		return Value{}, 0, newErr(NotWellFormed, offset)
	}
}

// decodeSimple handles major type 7: booleans, null, undefined, raw simple
// values, and the three float widths, each independently checked for
// canonicity.
func (d *decoder) decodeSimple(start, pos int, arg uint64, headLen int) (Value, int, error) {
	// head.Read already rejected ai in {28,29,30,31} as NotWellFormed and
	// enforced the minimal-argument-length rule for ai in {24,25,26,27}.
	// What remains here is CBOR-specific to major 7: ai<24 carries the
	// simple value directly; ai==24 is an 8-bit simple value that must be
	// >= 32 (the model forbids the reserved 24-31 range); ai in
	// {25,26,27} select a float width whose value must canonicalize to
	// exactly that width.
	ib := d.data[start]
	ai := ib & 0x1F

	switch {
	case ai < 24:
		return Value{kind: KindSimple, u: arg}, pos, nil
	case ai == 24:
		if arg < 32 {
			return Value{}, 0, newErr(NotWellFormed, start)
		}
		return Value{kind: KindSimple, u: arg}, pos, nil
	case ai == 25:
		bits := uint16(arg)
		d64 := ieee754.ExpandHalf(bits)
		if err := d.checkFloatCanonical(start, d64, ieee754.Half, uint64(bits)); err != nil {
			return Value{}, 0, err
		}
		return Value{kind: KindSimple, isFloat: true, floatWidth: ieee754.Half, floatBits: uint64(bits)}, pos, nil
	case ai == 26:
		bits := uint32(arg)
		d64 := float64(math.Float32frombits(bits))
		if err := d.checkFloatCanonical(start, d64, ieee754.Single, uint64(bits)); err != nil {
			return Value{}, 0, err
		}
		return Value{kind: KindSimple, isFloat: true, floatWidth: ieee754.Single, floatBits: uint64(bits)}, pos, nil
	case ai == 27:
		bits := arg
		d64 := math.Float64frombits(bits)
		if err := d.checkFloatCanonical(start, d64, ieee754.Double, bits); err != nil {
			return Value{}, 0, err
		}
		return Value{kind: KindSimple, isFloat: true, floatWidth: ieee754.Double, floatBits: bits}, pos, nil
	default:
		return Value{}, 0, newErr(NotWellFormed, start)
	}
}

// checkFloatCanonical re-derives the canonical encoding of the synthesized
// double and rejects wide if it isn't exactly what the spec's
// canonicalizer would have produced: a narrower width, or fusion into an
// integer, both mean the input wasn't canonical (spec §4.B).
func (d *decoder) checkFloatCanonical(offset int, synthesized float64, wide ieee754.Width, bits uint64) error {
	c := ieee754.Canonicalize(synthesized)
	if c.Width != wide {
		return newErr(NonCanonicalFloat, offset)
	}
	if c.Bits != bits {
		// Shouldn't happen alongside Width equality except via a NaN
		// payload that isn't the canonical quiet NaN at this width.
		return newErr(NonCanonicalFloat, offset)
	}
	return nil
}

func mapHeadErr(err error, offset int) error {
	switch err {
	case head.ErrUnderflow:
		return newErr(UnderflowBytes, offset)
	case head.ErrNonCanonical:
		return newErr(NonCanonicalNumeric, offset)
	case head.ErrNotWellFormed:
		return newErr(NotWellFormed, offset)
	default:
		return newErr(NotWellFormed, offset)
	}
}
