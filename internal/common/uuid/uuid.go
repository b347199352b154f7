package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator mints opaque unique ids, used for session handles
type Generator interface {
	NewUUID() string
}

// Random generates random v4 UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewUUID returns a new random UUID
func (r *Random) NewUUID() string {
	return uuid.New().String()
}

// Sequence generates predictable ids ("<prefix>-1", "<prefix>-2", ...)
// for tests and replays that need stable handles
type Sequence struct {
	Prefix string
	n      atomic.Uint64
}

// NewUUID returns the next id in the sequence
func (s *Sequence) NewUUID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}
