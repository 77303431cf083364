package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !strings.HasPrefix(encoded, "argon2id$") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}

	if err := VerifyPassword("correct horse battery staple", encoded); err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatal("expected different hashes for the same password (random salt)")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	encoded, err := HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if err := VerifyPassword("wrong", encoded); err == nil {
		t.Fatal("expected error for wrong password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"no separators", "argon2id"},
		{"wrong scheme", "bcrypt$c2FsdA$aGFzaA"},
		{"bad salt base64", "argon2id$%%%$aGFzaA"},
		{"bad hash base64", "argon2id$c2FsdA$%%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := VerifyPassword("whatever", tt.encoded); err == nil {
				t.Fatal("expected error for malformed hash")
			}
		})
	}
}
