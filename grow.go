package dynarray

import (
	"github.com/hupe1980/dynarray/internal/rawbuf"
)

// Reserve grows capacity to at least n. It is a no-op when n is already
// covered; otherwise storage of exactly n slots is allocated and all live
// elements are relocated following the move-if-safe policy. Size, element
// values and order are unchanged. On failure the Array is untouched (strong
// guarantee); capacity never shrinks.
func (a *Array[T]) Reserve(n int) error {
	if n <= a.Cap() {
		return nil
	}
	newBuf, err := rawbuf.Alloc[T](n)
	if err != nil {
		return translateErr(err)
	}
	if err := a.relocateRange(&newBuf, 0, a.size, 0); err != nil {
		newBuf.Release()
		return err
	}
	a.retire()
	a.buf.Swap(&newBuf)
	newBuf.Release()
	return nil
}

// grownCapacity returns the doubled capacity used by the append and insert
// slow paths: max(1, 2*size).
func (a *Array[T]) grownCapacity() int {
	if a.size == 0 {
		return 1
	}
	return a.size * 2
}

// relocateRange places the live range [lo, hi) into dst starting at slot to,
// following the move-if-safe policy. On the transfer policy the source slots
// are vacated and nothing can fail. On the clone policy the sources stay
// live; a failure destroys dst's partially built output and reports the
// element error, leaving current storage untouched.
func (a *Array[T]) relocateRange(dst *rawbuf.Block[T], lo, hi, to int) error {
	src := a.buf.Data()
	out := dst.Data()
	if a.tr.moveSafe() {
		for i := lo; i < hi; i++ {
			transfer(&out[to+i-lo], &src[i])
		}
		return nil
	}
	for i := lo; i < hi; i++ {
		v, err := a.tr.clone(src[i])
		if err != nil {
			for j := lo; j < i; j++ {
				a.tr.destroy(&out[to+j-lo])
			}
			return err
		}
		out[to+i-lo] = v
	}
	return nil
}

// retire finishes a successful relocation. On the clone policy the originals
// were duplicated and must be destroyed before the storage swap; on the
// transfer policy the source slots are already vacant.
func (a *Array[T]) retire() {
	if a.tr.moveSafe() {
		return
	}
	data := a.buf.Data()
	for i := 0; i < a.size; i++ {
		a.tr.destroy(&data[i])
	}
}
