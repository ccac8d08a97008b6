package tag

import "github.com/brinecore/dcbor"

// Taggable is the protocol a domain type implements to round-trip through
// the core value model under a fixed tag (spec §4.F): declare a TagValue,
// and provide ToUntagged.
type Taggable interface {
	TagValue() uint64
	ToUntagged() dcbor.Value
}

// Encode wraps t as Tagged(t.TagValue(), t.ToUntagged()), the derived
// tagged encoding spec §4.F describes.
func Encode(t Taggable) dcbor.Value {
	return dcbor.NewTagged(t.TagValue(), t.ToUntagged())
}

// Decode matches v against Tagged(tagValue, inner), failing with WrongTag
// if v carries a different tag, and otherwise delegates to fromUntagged —
// the derived tagged decoding spec §4.F describes.
func Decode[T any](v dcbor.Value, tagValue uint64, fromUntagged func(dcbor.Value) (T, error)) (T, error) {
	var zero T
	got, content, err := v.Tag()
	if err != nil {
		return zero, err
	}
	if got != tagValue {
		return zero, dcbor.NewWrongTagError(tagValue, got)
	}
	return fromUntagged(content)
}
