package dynarray

import (
	"fmt"

	"github.com/hupe1980/dynarray/internal/rawbuf"
)

// Array is a growable sequence of T backed by a single contiguous storage
// block. Slots [0, Len) hold live elements; slots [Len, Cap) are vacant and
// never assumed live. Create Arrays with New, NewSized, Clone or Move; the
// zero Array is not ready for use.
//
// An Array is the sole owner of its storage. It is not safe for concurrent
// use: access from multiple goroutines without external synchronization is
// undefined behavior.
type Array[T any] struct {
	buf  rawbuf.Block[T]
	size int
	tr   traits[T]
}

// New returns an empty Array. No storage is allocated.
func New[T any]() *Array[T] {
	return &Array[T]{tr: resolveTraits[T]()}
}

// NewSized returns an Array of n live elements at the zero value of T, with
// capacity exactly n.
func NewSized[T any](n int) (*Array[T], error) {
	buf, err := rawbuf.Alloc[T](n)
	if err != nil {
		return nil, translateErr(err)
	}
	return &Array[T]{buf: buf.Move(), size: n, tr: resolveTraits[T]()}, nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated element slots, live or not.
func (a *Array[T]) Cap() int {
	return a.buf.Cap()
}

// At returns the address of the live element at index i. i must be in
// [0, Len); violating the precondition is undefined behavior (asserted in
// debug builds, unchecked otherwise).
func (a *Array[T]) At(i int) *T {
	if debugAsserts && (i < 0 || i >= a.size) {
		panic(fmt.Sprintf("dynarray: index %d out of range [0, %d)", i, a.size))
	}
	return a.buf.At(i)
}

// Front returns the address of the first live element. The Array must not be
// empty.
func (a *Array[T]) Front() *T {
	if debugAsserts && a.size == 0 {
		panic("dynarray: Front on empty array")
	}
	return a.buf.At(0)
}

// Back returns the address of the last live element. The Array must not be
// empty.
func (a *Array[T]) Back() *T {
	if debugAsserts && a.size == 0 {
		panic("dynarray: Back on empty array")
	}
	return a.buf.At(a.size - 1)
}

// Data returns the live prefix as a mutable slice view. The view is
// invalidated by any operation that reallocates or shifts storage.
func (a *Array[T]) Data() []T {
	return a.buf.Data()[:a.size]
}

// Clone returns an independent copy of a with capacity exactly a.Len().
// Elements are duplicated via Cloner when implemented, by value copy
// otherwise. On failure the partially built copy is destroyed, the reported
// element error propagates unmodified, and a is untouched.
func (a *Array[T]) Clone() (*Array[T], error) {
	buf, err := rawbuf.Alloc[T](a.size)
	if err != nil {
		return nil, translateErr(err)
	}
	out := &Array[T]{buf: buf.Move(), tr: a.tr}
	src := a.Data()
	dst := out.buf.Data()
	for i := range src {
		v, err := a.tr.clone(src[i])
		if err != nil {
			for j := 0; j < i; j++ {
				a.tr.destroy(&dst[j])
			}
			out.buf.Release()
			return nil, err
		}
		dst[i] = v
	}
	out.size = a.size
	return out, nil
}

// Move transfers ownership of a's storage and elements to a new Array,
// leaving a empty. It never fails.
func (a *Array[T]) Move() *Array[T] {
	out := &Array[T]{buf: a.buf.Move(), size: a.size, tr: a.tr}
	a.size = 0
	return out
}

// MoveFrom destroys a's own elements, takes ownership of src's storage and
// size, and leaves src empty. Moving from itself is a no-op. It never fails.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.clear()
	a.buf.Release()
	a.buf = src.buf.Move()
	a.size = src.size
	src.size = 0
}

// CopyFrom makes a an element-wise copy of src. Copying from itself is a
// no-op.
//
// When a's capacity already holds src.Len() elements the storage is reused:
// the overlapping prefix is overwritten element by element, then the surplus
// live tail is destroyed or the missing suffix is copy-constructed. A clone
// failure during the overwrite leaves already-overwritten prefix elements in
// place; the Array stays valid and destructible but is not rolled back.
//
// Otherwise a full independent copy of src is built first and swapped in, so
// a is left unchanged if building the copy fails.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if a == src {
		return nil
	}
	if a.Cap() >= src.size {
		dst := a.buf.Data()
		from := src.Data()
		n := min(a.size, src.size)
		for i := 0; i < n; i++ {
			v, err := a.tr.clone(from[i])
			if err != nil {
				return err
			}
			a.tr.destroy(&dst[i])
			dst[i] = v
		}
		switch {
		case a.size > src.size:
			for i := src.size; i < a.size; i++ {
				a.tr.destroy(&dst[i])
			}
		case a.size < src.size:
			for i := a.size; i < src.size; i++ {
				v, err := a.tr.clone(from[i])
				if err != nil {
					for j := a.size; j < i; j++ {
						a.tr.destroy(&dst[j])
					}
					return err
				}
				dst[i] = v
			}
		}
		a.size = src.size
		return nil
	}
	dup, err := src.Clone()
	if err != nil {
		return err
	}
	a.Swap(dup)
	dup.Close()
	return nil
}

// Swap exchanges the contents of a and other in constant time. No element is
// touched.
func (a *Array[T]) Swap(other *Array[T]) {
	a.buf.Swap(&other.buf)
	a.size, other.size = other.size, a.size
}

// Close destroys all live elements and releases storage. It is nil-safe and
// idempotent; the Array is empty afterwards and may be reused.
func (a *Array[T]) Close() {
	if a == nil {
		return
	}
	a.clear()
	a.buf.Release()
}

// clear destroys the live range [0, size) and resets size.
func (a *Array[T]) clear() {
	data := a.buf.Data()
	for i := 0; i < a.size; i++ {
		a.tr.destroy(&data[i])
	}
	a.size = 0
}
