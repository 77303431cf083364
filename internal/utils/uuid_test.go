package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GenerateIsValidUUID(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.Generate()
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a parseable UUID, got %q: %v", id, err)
	}

	if v := parsed.Version(); v != 7 && v != 4 {
		t.Fatalf("expected UUID v7 (or the v4 fallback), got v%d", v)
	}
}

func TestUUIDGenerator_GenerateIsUnique(t *testing.T) {
	gen := NewUUIDGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := gen.Generate()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
