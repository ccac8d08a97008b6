package dcbor

import (
	"github.com/brinecore/dcbor/internal/head"
	"github.com/brinecore/dcbor/internal/ieee754"
)

// Encode serializes v to its canonical byte representation. It is total:
// every well-constructed Value (one built through the constructors in
// value.go) produces a finite byte string, and the encoder has no failure
// modes (spec §4.D).
func Encode(v Value) []byte {
	return appendValue(nil, v)
}

func appendValue(dst []byte, v Value) []byte {
	switch v.kind {
	case KindUnsigned:
		return head.Write(dst, head.Unsigned, v.u)
	case KindNegative:
		// CBOR's negative-integer argument encodes -1-n so 0 maps to -1.
		return head.Write(dst, head.Negative, uint64(-1-v.n))
	case KindBytes:
		dst = head.Write(dst, head.Bytes, uint64(len(v.bytes)))
		return append(dst, v.bytes...)
	case KindText:
		dst = head.Write(dst, head.Text, uint64(len(v.text)))
		return append(dst, v.text...)
	case KindArray:
		dst = head.Write(dst, head.Array, uint64(len(v.items)))
		for _, item := range v.items {
			dst = appendValue(dst, item)
		}
		return dst
	case KindMap:
		entries := v.m.entries
		dst = head.Write(dst, head.Map, uint64(len(entries)))
		for _, e := range entries {
			dst = append(dst, e.keyBytes...)
			dst = appendValue(dst, e.value)
		}
		return dst
	case KindTagged:
		dst = head.Write(dst, head.Tag, v.tag)
		return appendValue(dst, *v.content)
	case KindSimple:
		return appendSimple(dst, v)
	default:
		panic("dcbor: invalid Value (unreachable)")
	}
}

func appendSimple(dst []byte, v Value) []byte {
	if !v.isFloat {
		return head.Write(dst, head.Simple, v.u)
	}
	ib := head.Simple << 5
	switch v.floatWidth {
	case ieee754.Half:
		dst = append(dst, ib|25, byte(v.floatBits>>8), byte(v.floatBits))
	case ieee754.Single:
		dst = append(dst, ib|26,
			byte(v.floatBits>>24), byte(v.floatBits>>16), byte(v.floatBits>>8), byte(v.floatBits))
	default: // ieee754.Double
		dst = append(dst, ib|27,
			byte(v.floatBits>>56), byte(v.floatBits>>48), byte(v.floatBits>>40), byte(v.floatBits>>32),
			byte(v.floatBits>>24), byte(v.floatBits>>16), byte(v.floatBits>>8), byte(v.floatBits))
	}
	return dst
}
