package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers (UUIDv7), falling back to
// random v4 when the clock source fails. Trace ids use it so that log lines
// sort by request start.
type UUIDGenerator struct{}

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
