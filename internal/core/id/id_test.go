package id

import (
	"sort"
	"testing"
)

func TestNew_TimeOrdered(t *testing.T) {
	ids := make([]ID, 20)
	for i := range ids {
		ids[i] = New()
	}

	for i, v := range ids {
		if v.Version() != 7 {
			t.Fatalf("ids[%d] version = %d, want 7", i, v.Version())
		}
	}

	// Generation order and byte order agree for V7.
	if !sort.SliceIsSorted(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	}) {
		t.Error("ids generated in sequence are not byte-ordered")
	}
}

func TestParse_RoundTrip(t *testing.T) {
	original := New()

	parsed, err := Parse(original.String())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed != original {
		t.Errorf("round trip changed value: %s", parsed)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestIsNil(t *testing.T) {
	if !IsNil(Nil()) {
		t.Error("Nil() should be nil")
	}
	if IsNil(New()) {
		t.Error("fresh id should not be nil")
	}
}
