package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for outbound sync
// messages, falling back to random UUIDs when the clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
