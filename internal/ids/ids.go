// Package ids provides injectable identifier generation so extraction output
// is reproducible in tests.
package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique, non-empty identifiers for resume list entries
type Generator interface {
	// NewID returns a new identifier with the given prefix (e.g. "exp", "edu")
	NewID(prefix string) string
}

// UUIDGenerator generates random UUID-based identifiers. This is the
// production default.
type UUIDGenerator struct{}

// NewID returns "<prefix>-<uuid>"
func (UUIDGenerator) NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}

// SequentialGenerator generates deterministic identifiers for tests
type SequentialGenerator struct {
	counter atomic.Uint64
}

// NewSequential creates a SequentialGenerator starting at 1
func NewSequential() *SequentialGenerator {
	return &SequentialGenerator{}
}

// NewID returns "<prefix>-<n>" with n incrementing per call
func (g *SequentialGenerator) NewID(prefix string) string {
	n := g.counter.Add(1)
	return fmt.Sprintf("%s-%d", prefix, n)
}
