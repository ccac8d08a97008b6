package ieee754

import (
	"math"
	"testing"
)

func TestCanonicalizeIntegerFusion(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		neg    bool
		intVal uint64
	}{
		{"positive-zero", 0.0, false, 0},
		{"negative-zero", math.Copysign(0, -1), false, 0},
		{"small-positive", 17.0, false, 17},
		{"small-negative", -1.0, true, 0},
		{"small-negative-2", -5.0, true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Canonicalize(tt.in)
			if c.Width != AsInteger {
				t.Fatalf("Width = %v, want AsInteger", c.Width)
			}
			if c.NegInt != tt.neg || c.IntVal != tt.intVal {
				t.Errorf("got (neg=%v, val=%d), want (neg=%v, val=%d)", c.NegInt, c.IntVal, tt.neg, tt.intVal)
			}
		})
	}
}

func TestCanonicalizeFractional(t *testing.T) {
	c := Canonicalize(1.2)
	if c.Width != Double {
		t.Fatalf("Width = %v, want Double", c.Width)
	}
	if c.Bits != math.Float64bits(1.2) {
		t.Errorf("Bits = %x, want %x", c.Bits, math.Float64bits(1.2))
	}
}

func TestCanonicalizeHalf(t *testing.T) {
	c := Canonicalize(1.5)
	if c.Width != Half {
		t.Fatalf("Width = %v, want Half", c.Width)
	}
	if ExpandHalf(uint16(c.Bits)) != 1.5 {
		t.Errorf("round trip mismatch: got %v", ExpandHalf(uint16(c.Bits)))
	}
}

func TestCanonicalizeSingle(t *testing.T) {
	// 100000.5 is not integral, is exactly representable in single
	// precision, and is beyond half precision's range.
	c := Canonicalize(100000.5)
	if c.Width != Single {
		t.Fatalf("Width = %v, want Single", c.Width)
	}
	f := math.Float32frombits(uint32(c.Bits))
	if float64(f) != 100000.5 {
		t.Errorf("round trip mismatch: got %v", f)
	}
}

func TestCanonicalizeNaN(t *testing.T) {
	c := Canonicalize(math.NaN())
	if c.Width != Half {
		t.Fatalf("Width = %v, want Half", c.Width)
	}
	if c.Bits != 0x7e00 {
		t.Errorf("Bits = %x, want 0x7e00", c.Bits)
	}
}

func TestCanonicalizeInfinity(t *testing.T) {
	for _, inf := range []float64{math.Inf(1), math.Inf(-1)} {
		c := Canonicalize(inf)
		if c.Width != Half {
			t.Fatalf("Width = %v, want Half", c.Width)
		}
		got := ExpandHalf(uint16(c.Bits))
		if math.IsInf(got, 0) == false {
			t.Errorf("expanded bits are not infinite: %v", got)
		}
	}
}

func TestCanonicalizeLargeOutOfInt64Range(t *testing.T) {
	// Beyond int64/uint64 range but still integral: must not fuse.
	d := 1.0e20
	c := Canonicalize(d)
	if c.Width == AsInteger {
		t.Fatalf("should not fuse %v into an integer", d)
	}
}

func TestExpandHalfRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 1.5, -1.5, 2, 65504} {
		c := Canonicalize(f)
		if c.Width != Half {
			continue
		}
		if ExpandHalf(uint16(c.Bits)) != f {
			t.Errorf("ExpandHalf round trip failed for %v", f)
		}
	}
}
