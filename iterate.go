package dynarray

import "iter"

// All returns an iterator over index/element pairs of the live sequence in
// ascending index order. The elements are yielded by value; use Data or At
// to mutate. Any operation that reallocates or shifts storage invalidates a
// running iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := a.Data()
		for i := range data {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs of the live
// sequence in descending index order.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := a.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		data := a.Data()
		for i := range data {
			if !yield(data[i]) {
				return
			}
		}
	}
}
