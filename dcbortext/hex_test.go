package dcbortext

import (
	"strings"
	"testing"

	"github.com/brinecore/dcbor"
)

func TestHexMatchesCanonicalBytes(t *testing.T) {
	v := dcbor.NewArray([]dcbor.Value{dcbor.NewInt(1), dcbor.NewInt(2), dcbor.NewInt(3)})
	if got := Hex(v); got != "83010203" {
		t.Errorf("Hex() = %s, want 83010203", got)
	}
}

func TestHexAnnotatedCoversEveryItem(t *testing.T) {
	v := dcbor.NewArray([]dcbor.Value{dcbor.NewInt(1), dcbor.NewInt(2)})
	out := HexAnnotated(v)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (enter array + two scalars):\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "array(2)") {
		t.Errorf("first line missing array(2) note: %q", lines[0])
	}
}

func TestHexAnnotatedNamesTags(t *testing.T) {
	v := dcbor.NewTagged(1, dcbor.NewUnsigned(5))
	out := HexAnnotated(v)
	if !strings.Contains(out, "unix-time") {
		t.Errorf("expected tag name unix-time in output, got:\n%s", out)
	}
}
