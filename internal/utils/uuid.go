package utils

import "github.com/google/uuid"

// UUIDGenerator produces the trace ids attached to incoming requests.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate prefers version 7 so trace ids sort by arrival time in the logs.
// Version 4 is the fallback when the system clock misbehaves.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
