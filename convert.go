package dcbor

import (
	"math"

	"github.com/brinecore/dcbor/internal/ieee754"
)

// Spec §6: "convenience conversions for individual host-language scalar
// types" are out of the core's conceptual scope, but a repo built around
// this value model is unusable without *some* way on and off it — these
// are the minimal, total-on-encode / fallible-on-decode conversions the
// spec's AsUint64/From pair names.

// AsUint64 extracts an unsigned integer, failing with WrongType for any
// other Kind and OutOfRange if the value is Negative.
func (v Value) AsUint64() (uint64, error) {
	switch v.kind {
	case KindUnsigned:
		return v.u, nil
	case KindNegative:
		return 0, newErr(OutOfRange, 0)
	default:
		return 0, newErr(WrongType, 0)
	}
}

// AsInt64 extracts a signed integer, failing with an error if the
// Unsigned payload doesn't fit in int64.
func (v Value) AsInt64() (int64, error) {
	switch v.kind {
	case KindUnsigned:
		if v.u > math.MaxInt64 {
			return 0, &ModelError{Msg: "unsigned value out of int64 range"}
		}
		return int64(v.u), nil
	case KindNegative:
		return v.n, nil
	default:
		return 0, &ModelError{Msg: "value is not an integer"}
	}
}

// AsFloat64 extracts a float. Integer Values convert to the nearest double,
// which rounds magnitudes above 2^53 (spec §6: "float-from-integer
// succeeds"); a
// float-bearing Simple reconstructs its double.
func (v Value) AsFloat64() (float64, error) {
	switch v.kind {
	case KindUnsigned:
		return float64(v.u), nil
	case KindNegative:
		return float64(v.n), nil
	case KindSimple:
		if v.isFloat {
			return v.expandFloat(), nil
		}
		return 0, &ModelError{Msg: "simple value is not a float"}
	default:
		return 0, &ModelError{Msg: "value is not numeric"}
	}
}

func (v Value) expandFloat() float64 {
	switch v.floatWidth {
	case ieee754.Half:
		return ieee754.ExpandHalf(uint16(v.floatBits))
	case ieee754.Single:
		return float64(math.Float32frombits(uint32(v.floatBits)))
	default: // ieee754.Double
		return math.Float64frombits(v.floatBits)
	}
}

// AsBytes extracts a ByteString payload.
func (v Value) AsBytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, &ModelError{Msg: "value is not a byte string"}
	}
	return v.bytes, nil
}

// AsText extracts a Text payload.
func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", &ModelError{Msg: "value is not text"}
	}
	return v.text, nil
}

// AsArray extracts an Array payload.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, &ModelError{Msg: "value is not an array"}
	}
	return v.items, nil
}

// AsMap extracts a Map payload.
func (v Value) AsMap() (*Map, error) {
	if v.kind != KindMap {
		return nil, &ModelError{Msg: "value is not a map"}
	}
	return v.m, nil
}

// AsBool extracts a boolean Simple payload.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindSimple || v.isFloat {
		return false, &ModelError{Msg: "value is not a boolean"}
	}
	switch v.u {
	case SimpleFalse:
		return false, nil
	case SimpleTrue:
		return true, nil
	default:
		return false, &ModelError{Msg: "value is not a boolean"}
	}
}

// IsNull reports whether v is the Simple(null) value.
func (v Value) IsNull() bool {
	return v.kind == KindSimple && !v.isFloat && v.u == SimpleNull
}

// Tag returns the tag number and content of a Tagged value.
func (v Value) Tag() (uint64, Value, error) {
	if v.kind != KindTagged {
		return 0, Value{}, &ModelError{Msg: "value is not tagged"}
	}
	return v.tag, *v.content, nil
}

// From converts a handful of common host-language scalar and container
// types into a Value, the inverse of the As* accessors (spec §6's
// Value::from/try_from pair). Unsupported types fail with a *ModelError
// rather than panicking.
func From(x any) (Value, error) {
	switch t := x.(type) {
	case bool:
		return NewBool(t), nil
	case int:
		return NewInt(int64(t)), nil
	case int8:
		return NewInt(int64(t)), nil
	case int16:
		return NewInt(int64(t)), nil
	case int32:
		return NewInt(int64(t)), nil
	case int64:
		return NewInt(t), nil
	case uint:
		return NewUnsigned(uint64(t)), nil
	case uint8:
		return NewUnsigned(uint64(t)), nil
	case uint16:
		return NewUnsigned(uint64(t)), nil
	case uint32:
		return NewUnsigned(uint64(t)), nil
	case uint64:
		return NewUnsigned(t), nil
	case float32:
		return NewFloat(float64(t)), nil
	case float64:
		return NewFloat(t), nil
	case []byte:
		return NewBytes(t), nil
	case string:
		return NewText(t)
	case []Value:
		return NewArray(t), nil
	case *Map:
		return NewMap(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, &ModelError{Msg: "unsupported type for From"}
	}
}
