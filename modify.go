package dynarray

import (
	"fmt"

	"github.com/hupe1980/dynarray/internal/rawbuf"
)

// PushBack appends v as the new last element, taking ownership of it.
// Capacity doubles when exhausted.
func (a *Array[T]) PushBack(v T) error {
	_, err := a.append(func() (T, error) { return v, nil })
	return err
}

// EmplaceBack constructs the new last element in place via ctor and returns
// its address. ctor runs exactly once, either directly for the final slot
// (capacity available) or for the freshly allocated storage (grow path); if
// it fails, the Array is untouched.
func (a *Array[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if debugAsserts && ctor == nil {
		panic("dynarray: nil constructor")
	}
	return a.append(ctor)
}

func (a *Array[T]) append(ctor func() (T, error)) (*T, error) {
	if a.size < a.Cap() {
		v, err := ctor()
		if err != nil {
			return nil, err
		}
		slot := a.buf.At(a.size)
		*slot = v
		a.size++
		return slot, nil
	}
	// Grow path: allocate first so a value aliasing the current elements is
	// constructed before anything is relocated.
	newBuf, err := rawbuf.Alloc[T](a.grownCapacity())
	if err != nil {
		return nil, translateErr(err)
	}
	v, err := ctor()
	if err != nil {
		newBuf.Release()
		return nil, err
	}
	*newBuf.At(a.size) = v
	if err := a.relocateRange(&newBuf, 0, a.size, 0); err != nil {
		a.tr.destroy(newBuf.At(a.size))
		newBuf.Release()
		return nil, err
	}
	a.retire()
	a.buf.Swap(&newBuf)
	newBuf.Release()
	slot := a.buf.At(a.size)
	a.size++
	return slot, nil
}

// Insert places v at index i, shifting later elements one slot toward the
// end. i must be in [0, Len]; i == Len appends.
func (a *Array[T]) Insert(i int, v T) error {
	_, err := a.emplace(i, func() (T, error) { return v, nil })
	return err
}

// Emplace constructs a new element at index i via ctor and returns its
// address. ctor runs exactly once. With capacity exhausted the successor
// sequence is built in fresh storage and the Array is observably unchanged
// on any failure (strong guarantee); with capacity available a failure of
// ctor itself leaves the Array untouched.
func (a *Array[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	if debugAsserts && ctor == nil {
		panic("dynarray: nil constructor")
	}
	return a.emplace(i, ctor)
}

func (a *Array[T]) emplace(i int, ctor func() (T, error)) (*T, error) {
	if debugAsserts && (i < 0 || i > a.size) {
		panic(fmt.Sprintf("dynarray: insert position %d out of range [0, %d]", i, a.size))
	}
	if i == a.size {
		return a.append(ctor)
	}
	if a.size < a.Cap() {
		// Fast path: stage the value, open the gap by shifting backward,
		// then drop the staged value in. Every transfer target is vacant,
		// so no slot is ever double-occupied.
		tmp, err := ctor()
		if err != nil {
			return nil, err
		}
		data := a.buf.Data()
		transfer(&data[a.size], &data[a.size-1])
		for j := a.size - 1; j > i; j-- {
			transfer(&data[j], &data[j-1])
		}
		data[i] = tmp
		a.size++
		return &data[i], nil
	}
	// Slow path: construct the new element at its final index in fresh
	// storage first, then relocate prefix and suffix around it.
	newBuf, err := rawbuf.Alloc[T](a.grownCapacity())
	if err != nil {
		return nil, translateErr(err)
	}
	v, err := ctor()
	if err != nil {
		newBuf.Release()
		return nil, err
	}
	*newBuf.At(i) = v
	if err := a.relocateRange(&newBuf, 0, i, 0); err != nil {
		a.tr.destroy(newBuf.At(i))
		newBuf.Release()
		return nil, err
	}
	if err := a.relocateRange(&newBuf, i, a.size, i+1); err != nil {
		a.tr.destroy(newBuf.At(i))
		out := newBuf.Data()
		for j := 0; j < i; j++ {
			a.tr.destroy(&out[j])
		}
		newBuf.Release()
		return nil, err
	}
	a.retire()
	a.buf.Swap(&newBuf)
	newBuf.Release()
	a.size++
	return a.buf.At(i), nil
}

// Erase removes the element at index i, shifting later elements one slot
// toward the beginning. It returns i, now the index of the erased element's
// successor. i must be in [0, Len).
func (a *Array[T]) Erase(i int) int {
	if debugAsserts && (i < 0 || i >= a.size) {
		panic(fmt.Sprintf("dynarray: erase position %d out of range [0, %d)", i, a.size))
	}
	data := a.buf.Data()
	a.tr.destroy(&data[i])
	for j := i; j < a.size-1; j++ {
		transfer(&data[j], &data[j+1])
	}
	a.size--
	return i
}

// Resize sets the number of live elements to n. Grown elements hold the zero
// value of T. Growing past capacity reserves storage of exactly n and
// relocates via the move-if-safe policy; shrinking destroys the excess tail.
// Capacity never shrinks. n must be non-negative.
func (a *Array[T]) Resize(n int) error {
	if debugAsserts && n < 0 {
		panic(fmt.Sprintf("dynarray: negative size %d", n))
	}
	switch {
	case n == a.size:
	case n > a.Cap():
		if err := a.Reserve(n); err != nil {
			return err
		}
		a.size = n
	case n > a.size:
		// Vacant slots within capacity already hold zero values.
		a.size = n
	default:
		data := a.buf.Data()
		for i := n; i < a.size; i++ {
			a.tr.destroy(&data[i])
		}
		a.size = n
	}
	return nil
}

// PopBack removes the last element. The Array must not be empty; popping an
// empty Array is a precondition violation, not a reported error.
func (a *Array[T]) PopBack() {
	if debugAsserts && a.size == 0 {
		panic("dynarray: PopBack on empty array")
	}
	a.tr.destroy(a.buf.At(a.size - 1))
	a.size--
}
