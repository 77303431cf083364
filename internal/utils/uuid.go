package utils

import "github.com/google/uuid"

// UUIDGenerator mints request-scoped identifiers such as trace ids. It
// prefers UUIDv7 so ids sort by creation time in logs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to v4 when the entropy source
// refuses.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
