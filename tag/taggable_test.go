package tag

import (
	"testing"

	"github.com/brinecore/dcbor"
)

type stubTag struct{ n uint64 }

func (s stubTag) TagValue() uint64          { return 1234 }
func (s stubTag) ToUntagged() dcbor.Value   { return dcbor.NewUnsigned(s.n) }

func stubFromUntagged(v dcbor.Value) (stubTag, error) {
	n, err := v.AsUint64()
	if err != nil {
		return stubTag{}, err
	}
	return stubTag{n: n}, nil
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := Encode(stubTag{n: 42})
	got, err := Decode(v, 1234, stubFromUntagged)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.n != 42 {
		t.Errorf("got %d, want 42", got.n)
	}
}

func TestDecodeWrongTag(t *testing.T) {
	v := dcbor.NewTagged(9999, dcbor.NewUnsigned(1))
	_, err := Decode(v, 1234, stubFromUntagged)
	if err == nil {
		t.Fatalf("expected a WrongTag error")
	}
	de, ok := err.(*dcbor.DecodeError)
	if !ok {
		t.Fatalf("err = %v, want *dcbor.DecodeError", err)
	}
	if de.Kind != dcbor.WrongTag {
		t.Errorf("Kind = %v, want WrongTag", de.Kind)
	}
}

func TestDecodeNotTagged(t *testing.T) {
	_, err := Decode(dcbor.NewUnsigned(1), 1234, stubFromUntagged)
	if err == nil {
		t.Fatalf("expected an error decoding a non-tagged value")
	}
}
