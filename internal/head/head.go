// Package head encodes and decodes the CBOR "head": the 1-to-9-byte prefix
// of every data item, consisting of a 3-bit major type and an unsigned
// argument. It enforces shortest-form encoding on decode, the foundation of
// every other determinism rule in the codec.
package head

import "encoding/binary"

// Major type values, as assigned by RFC 8949 section 3.
const (
	Unsigned byte = 0
	Negative byte = 1
	Bytes    byte = 2
	Text     byte = 3
	Array    byte = 4
	Map      byte = 5
	Tag      byte = 6
	Simple   byte = 7
)

// Additional-info values that select a multi-byte argument instead of
// encoding it directly in the initial byte.
const (
	info8  byte = 24
	info16 byte = 25
	info32 byte = 26
	info64 byte = 27
)

// Write appends the canonical (shortest-form) head for the given major type
// and argument to dst, returning the extended slice.
func Write(dst []byte, major byte, n uint64) []byte {
	ib := major << 5
	switch {
	case n <= 23:
		return append(dst, ib|byte(n))
	case n <= 0xFF:
		dst = append(dst, ib|info8, byte(n))
		return dst
	case n <= 0xFFFF:
		dst = append(dst, ib|info16)
		return binary.BigEndian.AppendUint16(dst, uint16(n))
	case n <= 0xFFFFFFFF:
		dst = append(dst, ib|info32)
		return binary.BigEndian.AppendUint32(dst, uint32(n))
	default:
		dst = append(dst, ib|info64)
		return binary.BigEndian.AppendUint64(dst, n)
	}
}

// Len reports the number of bytes Write would emit for n, without writing.
func Len(n uint64) int {
	switch {
	case n <= 23:
		return 1
	case n <= 0xFF:
		return 2
	case n <= 0xFFFF:
		return 3
	case n <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// Error is the closed set of head-decoding failures. Callers map these to
// the public dcbor error taxonomy; the package itself has no dependency on
// it so it stays reusable from both the encoder and decoder.
type Error int

const (
	// ErrNone is the zero value; never returned.
	ErrNone Error = iota
	// ErrUnderflow means the input ended before a complete head was read.
	ErrUnderflow
	// ErrNonCanonical means a wider-than-necessary argument form was used.
	ErrNonCanonical
	// ErrNotWellFormed means additional-info 28-31 (reserved or indefinite).
	ErrNotWellFormed
)

func (e Error) Error() string {
	switch e {
	case ErrUnderflow:
		return "head: unexpected end of input"
	case ErrNonCanonical:
		return "head: argument uses a non-minimal length"
	case ErrNotWellFormed:
		return "head: reserved or indefinite-length additional info"
	default:
		return "head: no error"
	}
}

// Read parses the head at the start of data, returning the major type, the
// argument, and the number of bytes consumed. It enforces RFC 8949's
// deterministic-encoding requirement: argument n must use the shortest of
// the five forms (direct/8/16/32/64-bit) able to hold it, and additional-info
// values 28-31 are always rejected (they select reserved or indefinite-length
// constructs, both outside the deterministic subset).
func Read(data []byte) (major byte, arg uint64, consumed int, err error) {
	if len(data) < 1 {
		return 0, 0, 0, ErrUnderflow
	}
	ib := data[0]
	major = ib >> 5
	ai := ib & 0x1F

	switch {
	case ai < info8:
		return major, uint64(ai), 1, nil
	case ai == info8:
		if len(data) < 2 {
			return 0, 0, 0, ErrUnderflow
		}
		v := uint64(data[1])
		if v < 24 {
			return 0, 0, 0, ErrNonCanonical
		}
		return major, v, 2, nil
	case ai == info16:
		if len(data) < 3 {
			return 0, 0, 0, ErrUnderflow
		}
		v := uint64(binary.BigEndian.Uint16(data[1:3]))
		if v <= 0xFF {
			return 0, 0, 0, ErrNonCanonical
		}
		return major, v, 3, nil
	case ai == info32:
		if len(data) < 5 {
			return 0, 0, 0, ErrUnderflow
		}
		v := uint64(binary.BigEndian.Uint32(data[1:5]))
		if v <= 0xFFFF {
			return 0, 0, 0, ErrNonCanonical
		}
		return major, v, 5, nil
	case ai == info64:
		if len(data) < 9 {
			return 0, 0, 0, ErrUnderflow
		}
		v := binary.BigEndian.Uint64(data[1:9])
		if v <= 0xFFFFFFFF {
			return 0, 0, 0, ErrNonCanonical
		}
		return major, v, 9, nil
	default:
		// 28, 29, 30 are reserved; 31 is indefinite-length. Determinism
		// excludes both.
		return 0, 0, 0, ErrNotWellFormed
	}
}
