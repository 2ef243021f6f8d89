package id

import (
	"strings"
	"testing"
)

func TestRandomGenerator_NewID(t *testing.T) {
	g := NewRandomGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		v, err := g.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if len(v) != 2*defaultSize || !Valid(v) {
			t.Fatalf("unexpected id %q", v)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = struct{}{}
	}

	var zero RandomGenerator
	if v, err := zero.NewID(); err != nil || len(v) != 2*defaultSize {
		t.Fatalf("zero value generator should use default size, got %q err=%v", v, err)
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"":                        false,
		"abc-123_DEF":             true,
		"has space":               false,
		"line\nbreak":             false,
		strings.Repeat("a", 64):   true,
		strings.Repeat("a", 65):   false,
		"0f8fad5b-d9cb-469f-a165": true,
	}
	for in, want := range cases {
		if got := Valid(in); got != want {
			t.Fatalf("Valid(%q) = %t, want %t", in, got, want)
		}
	}
}
