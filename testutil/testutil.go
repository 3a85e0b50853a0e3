package testutil

import (
	"errors"
	"math/rand"
)

// ErrCloneRefused is the element error produced by instrumented fixtures
// whose scheduled clone failure has triggered.
var ErrCloneRefused = errors.New("testutil: clone refused")

// Counters aggregates element lifecycle events across a test.
type Counters struct {
	Clones    int // successful clones
	Disposals int
	FailAfter int // fail every clone once this many clones happened (0 = never)
}

// Tracked is a lifecycle-instrumented element. It duplicates through Clone
// and records disposals through Dispose; it is not Pinned, so relocation
// between storage blocks transfers it without cloning.
type Tracked struct {
	V int
	C *Counters
}

// Clone duplicates the element, counting against (and honoring) the shared
// failure schedule.
func (t Tracked) Clone() (Tracked, error) {
	if t.C != nil {
		if t.C.FailAfter > 0 && t.C.Clones >= t.C.FailAfter {
			return Tracked{}, ErrCloneRefused
		}
		t.C.Clones++
	}
	return Tracked{V: t.V, C: t.C}, nil
}

// Dispose records the destruction of a live element.
func (t *Tracked) Dispose() {
	if t.C != nil {
		t.C.Disposals++
	}
}

// PinnedTracked behaves like Tracked but carries the Pinned marker, forcing
// the clone-based relocation policy during growth.
type PinnedTracked struct {
	V int
	C *Counters
}

// Clone duplicates the element, counting against (and honoring) the shared
// failure schedule.
func (p PinnedTracked) Clone() (PinnedTracked, error) {
	if p.C != nil {
		if p.C.FailAfter > 0 && p.C.Clones >= p.C.FailAfter {
			return PinnedTracked{}, ErrCloneRefused
		}
		p.C.Clones++
	}
	return PinnedTracked{V: p.V, C: p.C}, nil
}

// Dispose records the destruction of a live element.
func (p *PinnedTracked) Dispose() {
	if p.C != nil {
		p.C.Disposals++
	}
}

// PinnedElement marks the type as not transferable between storage blocks.
func (PinnedTracked) PinnedElement() {}

// RNG wraps a seeded random source for reproducible randomized tests.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}
