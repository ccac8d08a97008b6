package dcbor

import (
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, v Value) string {
	t.Helper()
	return hex.EncodeToString(v.Bytes())
}

func TestNewIntMergesSign(t *testing.T) {
	if NewInt(5).Kind() != KindUnsigned {
		t.Errorf("NewInt(5) should be Unsigned")
	}
	if NewInt(-5).Kind() != KindNegative {
		t.Errorf("NewInt(-5) should be Negative")
	}
	if NewInt(0).Kind() != KindUnsigned {
		t.Errorf("NewInt(0) should be Unsigned")
	}
}

func TestNewNegativeRejectsNonNegative(t *testing.T) {
	if _, err := NewNegative(0); err == nil {
		t.Errorf("NewNegative(0) should fail")
	}
	if _, err := NewNegative(5); err == nil {
		t.Errorf("NewNegative(5) should fail")
	}
	v, err := NewNegative(-1)
	if err != nil {
		t.Fatalf("NewNegative(-1) failed: %v", err)
	}
	if v.Kind() != KindNegative {
		t.Errorf("Kind = %v, want KindNegative", v.Kind())
	}
}

func TestNewTextRejectsInvalidUTF8(t *testing.T) {
	if _, err := NewText(string([]byte{0xff, 0xfe})); err == nil {
		t.Errorf("expected invalid UTF-8 to be rejected")
	}
	v, err := NewText("hello")
	if err != nil {
		t.Fatalf("NewText(hello) failed: %v", err)
	}
	s, _ := v.AsText()
	if s != "hello" {
		t.Errorf("AsText() = %q, want hello", s)
	}
}

func TestNewSimpleRejectsReservedRange(t *testing.T) {
	for raw := uint64(24); raw <= 31; raw++ {
		if _, err := NewSimple(raw); err == nil {
			t.Errorf("NewSimple(%d) should be rejected", raw)
		}
	}
	if _, err := NewSimple(256); err == nil {
		t.Errorf("NewSimple(256) should be rejected")
	}
	for _, raw := range []uint64{0, 19, 20, 23, 32, 255} {
		if _, err := NewSimple(raw); err != nil {
			t.Errorf("NewSimple(%d) should succeed: %v", raw, err)
		}
	}
}

func TestNamedSimples(t *testing.T) {
	if Null().Kind() != KindSimple || !Null().IsNull() {
		t.Errorf("Null() should be a null Simple")
	}
	if Undefined().IsNull() {
		t.Errorf("Undefined() should not report IsNull")
	}
	b, err := NewBool(true).AsBool()
	if err != nil || !b {
		t.Errorf("NewBool(true).AsBool() = %v, %v", b, err)
	}
}

func TestNewFloatFusesIntegral(t *testing.T) {
	v := NewFloat(17.0)
	if v.Kind() != KindUnsigned {
		t.Fatalf("NewFloat(17.0).Kind() = %v, want KindUnsigned", v.Kind())
	}
	n, _ := v.AsUint64()
	if n != 17 {
		t.Errorf("AsUint64() = %d, want 17", n)
	}
}

func TestNewFloatKeepsFractional(t *testing.T) {
	v := NewFloat(1.2)
	if v.Kind() != KindSimple || !v.IsFloat() {
		t.Fatalf("NewFloat(1.2) should remain a float Simple")
	}
	if mustHex(t, v) != "fb3ff3333333333333" {
		t.Errorf("Bytes() = %s, want fb3ff3333333333333", mustHex(t, v))
	}
}

func TestNegativeFloatEncoding(t *testing.T) {
	v := NewFloat(-2345678.0)
	if mustHex(t, v) != "3a0023cacd" {
		t.Errorf("Bytes() = %s, want 3a0023cacd", mustHex(t, v))
	}
}

func TestEqualAndHash(t *testing.T) {
	a := NewInt(42)
	b := NewInt(42)
	if !a.Equal(b) {
		t.Errorf("NewInt(42) should equal itself")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal values should hash equally")
	}
	if a.Equal(NewInt(43)) {
		t.Errorf("distinct values should not be equal")
	}
}

func TestTagRoundTrip(t *testing.T) {
	content := NewInt(1675854714)
	v := NewTagged(1, content)
	tagVal, inner, err := v.Tag()
	if err != nil {
		t.Fatalf("Tag() failed: %v", err)
	}
	if tagVal != 1 {
		t.Errorf("tag = %d, want 1", tagVal)
	}
	if !inner.Equal(content) {
		t.Errorf("tag content mismatch")
	}
	if mustHex(t, v) != "c11a63e3837a" {
		t.Errorf("Bytes() = %s, want c11a63e3837a", mustHex(t, v))
	}
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"bool", true},
		{"int", int(5)},
		{"uint64", uint64(5)},
		{"float64", 1.5},
		{"bytes", []byte{1, 2, 3}},
		{"string", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := From(tt.in); err != nil {
				t.Errorf("From(%v) failed: %v", tt.in, err)
			}
		})
	}
	if _, err := From(struct{}{}); err == nil {
		t.Errorf("From(unsupported) should fail")
	}
}
