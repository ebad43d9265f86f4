// Package ids generates and matches task identifiers.
package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique identifiers. It is an interface so tests can
// supply deterministic IDs.
type Generator interface {
	NewID() string
}

// UUID generates random version-4 UUIDs. Unlike a timestamp-plus-random
// scheme, collisions are not a practical concern even for rapid calls
// within the same millisecond.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() UUID {
	return UUID{}
}

// NewID returns a fresh random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates deterministic IDs of the form "<prefix>-1",
// "<prefix>-2", ... for tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence returns a deterministic generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix, next: 1}
}

// NewID returns the next ID in the sequence.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s-%d", s.prefix, s.next)
	s.next++
	return id
}
