package dcbortext

import (
	"testing"

	"github.com/brinecore/dcbor"
)

func TestDiagnosticScalars(t *testing.T) {
	tests := []struct {
		name string
		v    dcbor.Value
		want string
	}{
		{"unsigned", dcbor.NewInt(5), "5"},
		{"negative", dcbor.NewInt(-5), "-5"},
		{"text", mustText(t, "hi"), `"hi"`},
		{"bool", dcbor.NewBool(true), "true"},
		{"null", dcbor.Null(), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diagnostic(tt.v); got != tt.want {
				t.Errorf("Diagnostic() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnosticArrayAndMap(t *testing.T) {
	arr := dcbor.NewArray([]dcbor.Value{dcbor.NewInt(1), dcbor.NewInt(2), dcbor.NewInt(3)})
	if got := Diagnostic(arr); got != "[1, 2, 3]" {
		t.Errorf("Diagnostic(array) = %q, want [1, 2, 3]", got)
	}

	m := dcbor.MapOf(dcbor.Pair{Key: mustText(t, "a"), Value: dcbor.NewInt(1)})
	want := `{"a": 1}`
	if got := Diagnostic(dcbor.NewMap(m)); got != want {
		t.Errorf("Diagnostic(map) = %q, want %q", got, want)
	}
}

func TestDiagnosticTaggedUsesName(t *testing.T) {
	v := dcbor.NewTagged(1, dcbor.NewUnsigned(5))
	if got := Diagnostic(v); got != "unix-time(5)" {
		t.Errorf("Diagnostic(tagged) = %q, want unix-time(5)", got)
	}
}

func mustText(t *testing.T, s string) dcbor.Value {
	t.Helper()
	v, err := dcbor.NewText(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}
