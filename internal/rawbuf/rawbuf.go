// Package rawbuf provides the raw storage layer for the dynamic array.
//
// A Block owns a contiguous region of element slots of fixed capacity. The
// Block knows nothing about which slots hold live values; liveness is the
// caller's contract. Releasing a Block never runs element cleanup.
//
// # Ownership
//
// A Block has single ownership. Block values must not be duplicated by plain
// struct assignment, because two owners would alias the same region. Transfer
// ownership with Move or exchange two owners with Swap.
package rawbuf

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

var (
	// ErrNegativeCapacity is returned when a negative capacity is requested.
	ErrNegativeCapacity = errors.New("rawbuf: negative capacity")
	// ErrSizeOverflow is returned when capacity times element size does not
	// fit the addressable range.
	ErrSizeOverflow = errors.New("rawbuf: allocation size overflow")
)

// Block owns a contiguous region of Cap element slots. Every slot is
// addressable but not assumed to hold a live value. The zero Block is empty.
type Block[T any] struct {
	slots []T
}

// Alloc reserves a region for capacity elements. A zero capacity yields an
// empty Block and performs no allocation. The requested size is validated
// before the region is reserved; a request that cannot be represented is
// reported via ErrNegativeCapacity or ErrSizeOverflow.
func Alloc[T any](capacity int) (Block[T], error) {
	if capacity < 0 {
		return Block[T]{}, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	if capacity == 0 {
		return Block[T]{}, nil
	}
	if elemSize := uint64(unsafe.Sizeof(*new(T))); elemSize > 0 {
		hi, lo := bits.Mul64(uint64(capacity), elemSize)
		if hi != 0 || lo > math.MaxInt {
			return Block[T]{}, fmt.Errorf("%w: %d elements of %d bytes", ErrSizeOverflow, capacity, elemSize)
		}
	}
	return Block[T]{slots: make([]T, capacity)}, nil
}

// Cap returns the number of slots the region can hold.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// At returns the address of slot i. The slot is not assumed to hold a live
// value. i must be < Cap.
func (b *Block[T]) At(i int) *T {
	if debugAsserts && (i < 0 || i >= len(b.slots)) {
		panic(fmt.Sprintf("rawbuf: slot %d out of range [0, %d)", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Slot returns the addressable window starting at slot i. i may equal Cap,
// in which case the window is empty; addressing one past the last slot is
// legal, dereferencing it is not.
func (b *Block[T]) Slot(i int) []T {
	if debugAsserts && (i < 0 || i > len(b.slots)) {
		panic(fmt.Sprintf("rawbuf: slot offset %d out of range [0, %d]", i, len(b.slots)))
	}
	return b.slots[i:]
}

// Data returns the whole region as a slice of length Cap.
func (b *Block[T]) Data() []T {
	return b.slots
}

// Move transfers ownership of the region to the returned Block, leaving b
// empty. It never fails.
func (b *Block[T]) Move() Block[T] {
	out := Block[T]{slots: b.slots}
	b.slots = nil
	return out
}

// Swap exchanges the owned regions and capacities of b and other in constant
// time. No slot is touched.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release drops the region without running any element cleanup. It is a
// no-op on an empty Block; b is empty afterwards.
func (b *Block[T]) Release() {
	b.slots = nil
}
