package tag

import "testing"

func TestWellKnownTagsRegistered(t *testing.T) {
	tests := []struct {
		value uint64
		name  string
	}{
		{0, "datetime-string"},
		{1, "unix-time"},
		{37, "uuid"},
		{55799, "self-described-cbor"},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.value)
		if !ok {
			t.Errorf("Lookup(%d) not found", tt.value)
			continue
		}
		if got.Name != tt.name {
			t.Errorf("Lookup(%d).Name = %q, want %q", tt.value, got.Name, tt.name)
		}
	}
}

func TestRegisterOverwrites(t *testing.T) {
	Register(New(9000, "custom"))
	got, ok := Lookup(9000)
	if !ok || got.Name != "custom" {
		t.Fatalf("Lookup(9000) = %v, %v, want custom, true", got, ok)
	}
	Register(New(9000, "renamed"))
	got, ok = Lookup(9000)
	if !ok || got.Name != "renamed" {
		t.Errorf("Lookup(9000) after overwrite = %v, want renamed", got)
	}
}

func TestLookupMissing(t *testing.T) {
	if _, ok := Lookup(123456); ok {
		t.Errorf("Lookup(123456) should miss")
	}
}
