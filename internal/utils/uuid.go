package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for newly created records.
// Prefers time-ordered UUIDv7 so that primary keys sort by creation time.
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
