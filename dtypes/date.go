// Package dtypes provides domain types built on the tag-wrapping protocol:
// Date (tag 1, epoch-based date/time) and UUID (tag 37, binary UUID).
// Neither is part of the deterministic core; both are ordinary consumers
// of its public contract (spec §1, §4.F).
package dtypes

import (
	"time"

	"github.com/brinecore/dcbor"
	"github.com/brinecore/dcbor/tag"
)

// DateTag is the CBOR tag for an epoch-based date/time (RFC 8949 §3.4.2),
// named TagUnixTime in the teacher library's tag table.
const DateTag uint64 = 1

// Date is a CBOR-friendly wrapper around time.Time, grounded on
// original_source/src/date.rs: it round-trips through Tagged(1, seconds),
// where seconds may be an Unsigned, Negative, or float Value depending on
// whether the instant has sub-second precision.
type Date struct {
	t time.Time
}

// NewDate wraps t (converted to UTC, matching date.rs's Utc-only model).
func NewDate(t time.Time) Date { return Date{t: t.UTC()} }

// DateFromUnix constructs a Date from seconds since the Unix epoch.
func DateFromUnix(seconds int64) Date {
	return Date{t: time.Unix(seconds, 0).UTC()}
}

// Now returns a Date for the current instant.
func Now() Date { return Date{t: time.Now().UTC()} }

// Time returns the underlying time.Time.
func (d Date) Time() time.Time { return d.t }

// Unix returns the number of seconds since the Unix epoch.
func (d Date) Unix() int64 { return d.t.Unix() }

// String renders the RFC 3339 form, matching date.rs's to_string.
func (d Date) String() string {
	return d.t.Format(time.RFC3339)
}

// TagValue implements tag.Taggable.
func (d Date) TagValue() uint64 { return DateTag }

// ToUntagged implements tag.Taggable: seconds since the epoch, as a float
// when there's sub-second precision, else an Unsigned/Negative integer —
// exactly the three-way encoding original_source/src/date.rs produces.
func (d Date) ToUntagged() dcbor.Value {
	if ns := d.t.Nanosecond(); ns != 0 {
		seconds := float64(d.t.Unix()) + float64(ns)/1e9
		return dcbor.NewFloat(seconds)
	}
	return dcbor.NewInt(d.t.Unix())
}

// Encode wraps d as Tagged(1, ToUntagged(d)).
func (d Date) Encode() dcbor.Value { return tag.Encode(d) }

// DecodeDate matches v against Tagged(1, inner) and decodes inner as a
// Date, mirroring date.rs's from_untagged_cbor three-way match over
// Unsigned/Negative/float.
func DecodeDate(v dcbor.Value) (Date, error) {
	return tag.Decode(v, DateTag, dateFromUntagged)
}

func dateFromUntagged(v dcbor.Value) (Date, error) {
	switch v.Kind() {
	case dcbor.KindUnsigned:
		n, err := v.AsInt64()
		if err != nil {
			return Date{}, err
		}
		return DateFromUnix(n), nil
	case dcbor.KindNegative:
		n, _ := v.AsInt64()
		return DateFromUnix(n), nil
	case dcbor.KindSimple:
		if !v.IsFloat() {
			return Date{}, &dcbor.ModelError{Msg: "date content is not numeric"}
		}
		f, err := v.AsFloat64()
		if err != nil {
			return Date{}, err
		}
		sec := int64(f)
		nsec := int64((f - float64(sec)) * 1e9)
		return Date{t: time.Unix(sec, nsec).UTC()}, nil
	default:
		return Date{}, &dcbor.ModelError{Msg: "date content has the wrong type"}
	}
}
