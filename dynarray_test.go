package dynarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynarray"
)

func TestNew(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Cap())
	assert.Empty(t, a.Data())
}

func TestNewSized(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		a, err := dynarray.NewSized[string](5)
		require.NoError(t, err)
		defer a.Close()

		assert.Equal(t, 5, a.Len())
		assert.Equal(t, 5, a.Cap())
		for _, v := range a.All() {
			assert.Equal(t, "", v)
		}
	})

	t.Run("zero", func(t *testing.T) {
		a, err := dynarray.NewSized[int](0)
		require.NoError(t, err)
		defer a.Close()

		assert.Equal(t, 0, a.Len())
		assert.Equal(t, 0, a.Cap())
	})

	t.Run("negative", func(t *testing.T) {
		_, err := dynarray.NewSized[int](-3)
		assert.ErrorIs(t, err, dynarray.ErrNegativeCapacity)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := dynarray.NewSized[uint64](math.MaxInt/2 + 1)
		assert.ErrorIs(t, err, dynarray.ErrCapacityOverflow)
	})
}

// TestArray_Scenario walks the canonical growth sequence: three appends with
// doubling, a positional insert, an erase and a shrink.
func TestArray_Scenario(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()

	wantCaps := []int{1, 2, 4}
	for i, v := range []int{1, 2, 3} {
		require.NoError(t, a.PushBack(v))
		assert.Equal(t, wantCaps[i], a.Cap())
	}
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []int{1, 2, 3}, a.Data())

	require.NoError(t, a.Insert(1, 9))
	assert.Equal(t, []int{1, 9, 2, 3}, a.Data())

	assert.Equal(t, 0, a.Erase(0))
	assert.Equal(t, []int{9, 2, 3}, a.Data())

	require.NoError(t, a.Resize(1))
	assert.Equal(t, []int{9}, a.Data())
	assert.Equal(t, 4, a.Cap())
}

func TestArray_Access(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()

	for v := 10; v < 14; v++ {
		require.NoError(t, a.PushBack(v))
	}

	assert.Equal(t, 12, *a.At(2))
	assert.Equal(t, 10, *a.Front())
	assert.Equal(t, 13, *a.Back())

	*a.At(2) = 99
	assert.Equal(t, []int{10, 11, 99, 13}, a.Data())

	a.Data()[0] = 1
	assert.Equal(t, 1, *a.Front())
}

func TestArray_Reserve(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()

	for v := 0; v < 3; v++ {
		require.NoError(t, a.PushBack(v))
	}

	require.NoError(t, a.Reserve(10))
	assert.Equal(t, 10, a.Cap())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []int{0, 1, 2}, a.Data())

	// Never shrinks.
	require.NoError(t, a.Reserve(2))
	assert.Equal(t, 10, a.Cap())

	require.NoError(t, a.Reserve(10))
	assert.Equal(t, 10, a.Cap())
}

func TestArray_Resize(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()

	for v := 1; v <= 3; v++ {
		require.NoError(t, a.PushBack(v))
	}
	require.NoError(t, a.Reserve(8))

	t.Run("noop", func(t *testing.T) {
		require.NoError(t, a.Resize(3))
		assert.Equal(t, []int{1, 2, 3}, a.Data())
	})

	t.Run("grow within capacity", func(t *testing.T) {
		require.NoError(t, a.Resize(5))
		assert.Equal(t, []int{1, 2, 3, 0, 0}, a.Data())
		assert.Equal(t, 8, a.Cap())
	})

	t.Run("grow past capacity", func(t *testing.T) {
		require.NoError(t, a.Resize(12))
		assert.Equal(t, 12, a.Len())
		assert.Equal(t, 12, a.Cap())
		assert.Equal(t, []int{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0}, a.Data())
	})

	t.Run("shrink", func(t *testing.T) {
		require.NoError(t, a.Resize(2))
		assert.Equal(t, []int{1, 2}, a.Data())
		assert.Equal(t, 12, a.Cap())
	})
}

func TestArray_PopBack(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()

	require.NoError(t, a.PushBack(1))
	require.NoError(t, a.PushBack(2))

	a.PopBack()
	assert.Equal(t, []int{1}, a.Data())
	a.PopBack()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 2, a.Cap())
}

func TestArray_Swap(t *testing.T) {
	a := dynarray.New[int]()
	b := dynarray.New[int]()
	defer a.Close()
	defer b.Close()

	require.NoError(t, a.PushBack(1))
	require.NoError(t, b.PushBack(2))
	require.NoError(t, b.PushBack(3))

	a.Swap(b)

	assert.Equal(t, []int{2, 3}, a.Data())
	assert.Equal(t, []int{1}, b.Data())
}

func TestArray_Clone(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()
	for v := 1; v <= 3; v++ {
		require.NoError(t, a.PushBack(v))
	}

	w, err := a.Clone()
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, a.Len(), w.Len())
	assert.Equal(t, 3, w.Cap()) // exactly source size
	assert.Equal(t, a.Data(), w.Data())

	// Independent storage: mutating the copy never affects the source.
	*w.At(0) = 42
	require.NoError(t, w.PushBack(4))
	assert.Equal(t, []int{1, 2, 3}, a.Data())
}

func TestArray_CopyFrom(t *testing.T) {
	newFilled := func(t *testing.T, vs ...int) *dynarray.Array[int] {
		t.Helper()
		a := dynarray.New[int]()
		for _, v := range vs {
			require.NoError(t, a.PushBack(v))
		}
		return a
	}

	t.Run("reuse with surplus tail", func(t *testing.T) {
		a := newFilled(t, 1, 2, 3, 4)
		src := newFilled(t, 7, 8)
		defer a.Close()
		defer src.Close()

		capBefore := a.Cap()
		require.NoError(t, a.CopyFrom(src))
		assert.Equal(t, []int{7, 8}, a.Data())
		assert.Equal(t, capBefore, a.Cap())
	})

	t.Run("reuse with missing suffix", func(t *testing.T) {
		a := newFilled(t, 1)
		src := newFilled(t, 7, 8)
		defer a.Close()
		defer src.Close()

		require.NoError(t, a.Reserve(4))
		require.NoError(t, a.CopyFrom(src))
		assert.Equal(t, []int{7, 8}, a.Data())
		assert.Equal(t, 4, a.Cap())
	})

	t.Run("copy and swap", func(t *testing.T) {
		a := newFilled(t, 1)
		src := newFilled(t, 7, 8, 9)
		defer a.Close()
		defer src.Close()

		require.NoError(t, a.CopyFrom(src))
		assert.Equal(t, []int{7, 8, 9}, a.Data())

		*a.At(0) = 42
		assert.Equal(t, []int{7, 8, 9}, src.Data())
	})

	t.Run("self", func(t *testing.T) {
		a := newFilled(t, 1, 2)
		defer a.Close()

		require.NoError(t, a.CopyFrom(a))
		assert.Equal(t, []int{1, 2}, a.Data())
	})
}

func TestArray_Move(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()
	require.NoError(t, a.PushBack(1))
	require.NoError(t, a.PushBack(2))

	b := a.Move()
	defer b.Close()

	assert.Equal(t, []int{1, 2}, b.Data())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Cap())
}

func TestArray_MoveFrom(t *testing.T) {
	a := dynarray.New[int]()
	b := dynarray.New[int]()
	defer a.Close()
	defer b.Close()

	require.NoError(t, a.PushBack(1))
	require.NoError(t, b.PushBack(7))
	require.NoError(t, b.PushBack(8))

	a.MoveFrom(b)
	assert.Equal(t, []int{7, 8}, a.Data())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())

	// Self-move is a no-op.
	a.MoveFrom(a)
	assert.Equal(t, []int{7, 8}, a.Data())
}

func TestArray_Iterate(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()
	for v := 10; v < 14; v++ {
		require.NoError(t, a.PushBack(v))
	}

	t.Run("all", func(t *testing.T) {
		var got []int
		for i, v := range a.All() {
			assert.Equal(t, v, *a.At(i))
			got = append(got, v)
		}
		assert.Equal(t, []int{10, 11, 12, 13}, got)
	})

	t.Run("backward", func(t *testing.T) {
		var got []int
		for _, v := range a.Backward() {
			got = append(got, v)
		}
		assert.Equal(t, []int{13, 12, 11, 10}, got)
	})

	t.Run("values", func(t *testing.T) {
		var got []int
		for v := range a.Values() {
			got = append(got, v)
		}
		assert.Equal(t, []int{10, 11, 12, 13}, got)
	})

	t.Run("early break", func(t *testing.T) {
		n := 0
		for range a.Values() {
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})

	t.Run("empty", func(t *testing.T) {
		e := dynarray.New[int]()
		defer e.Close()
		for range e.All() {
			t.Fatal("unexpected element")
		}
	})
}

func TestArray_GrowthPreservesOrder(t *testing.T) {
	a := dynarray.New[int]()
	defer a.Close()

	for v := 0; v < 100; v++ {
		require.NoError(t, a.PushBack(v))
		require.Equal(t, v+1, a.Len())
		for i := 0; i <= v; i++ {
			require.Equal(t, i, *a.At(i))
		}
	}
	assert.GreaterOrEqual(t, a.Cap(), 100)
}
