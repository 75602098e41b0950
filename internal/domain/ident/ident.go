// Package ident produces identifiers for new entities.
package ident

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out identifiers for newly created entities. Implementations
// must never return the same value twice within a process.
type Generator interface {
	NewID() string
}

// UUID generates random 128-bit identifiers. Unlike a wall-clock timestamp,
// two entities created within the same clock tick cannot collide.
type UUID struct{}

// NewUUID creates a UUID generator.
func NewUUID() UUID {
	return UUID{}
}

// NewID returns a random UUIDv4 string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates deterministic identifiers of the form "<prefix>-N".
// It exists for tests and seeded demo data where stable IDs matter.
type Sequence struct {
	prefix string
	n      atomic.Int64
}

// NewSequence creates a sequence generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier in the sequence, starting at 1.
func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

var (
	_ Generator = UUID{}
	_ Generator = (*Sequence)(nil)
)
