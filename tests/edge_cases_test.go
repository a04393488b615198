package vec_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/vec"
)

// TestEdgeCases covers boundary behavior through the public API only
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroAndNegativeCapacities", func(t *testing.T) {
		testCases := []struct {
			capacity int
			expected int
		}{
			{0, 0},
			{-1, 0},
			{-1000, 0},
			{1, 1},
			{4096, 4096},
		}

		for _, tc := range testCases {
			v := vec.NewCapacity[int](tc.capacity)
			assert.Equal(t, tc.expected, v.Cap(), "NewCapacity(%d)", tc.capacity)
			assert.Equal(t, 0, v.Len())
			v.Release()
		}
	})

	t.Run("ZeroValueVector", func(t *testing.T) {
		var v vec.Vector[string]
		assert.True(t, v.Empty())
		assert.Equal(t, 0, v.Cap())
		v.Append("a")
		assert.Equal(t, []string{"a"}, v.Data())
		v.Release()
	})

	t.Run("LargeAppendRun", func(t *testing.T) {
		v := vec.New[int]()
		defer v.Release()

		const n = 100000
		for i := 0; i < n; i++ {
			v.Append(i)
		}
		require.Equal(t, n, v.Len())
		require.GreaterOrEqual(t, v.Cap(), n)

		// Spot-check across the whole range
		for i := 0; i < n; i += 997 {
			require.Equal(t, i, v.Get(i))
		}
		assert.Equal(t, n-1, *v.Back())
	})

	t.Run("CheckedAccess", func(t *testing.T) {
		v := vec.Of(1, 2, 3)
		defer v.Release()

		_, err := v.At(100)
		require.Error(t, err)
		assert.True(t, errors.Is(err, vec.ErrOutOfRange))

		_, err = v.At(-1)
		assert.True(t, errors.Is(err, vec.ErrOutOfRange))

		p, err := v.At(2)
		require.NoError(t, err)
		assert.Equal(t, 3, *p)
	})

	t.Run("EmptyVectorPanics", func(t *testing.T) {
		v := vec.New[int]()
		assert.Panics(t, func() { v.Front() })
		assert.Panics(t, func() { v.Back() })
		assert.Panics(t, func() { v.RemoveLast() })
	})

	t.Run("InsertBounds", func(t *testing.T) {
		v := vec.Of(1, 2)
		defer v.Release()

		assert.NotPanics(t, func() { v.Insert(0, 0) })
		assert.NotPanics(t, func() { v.Insert(v.Len(), 9) })
		assert.Panics(t, func() { v.Insert(-1, 0) })
		assert.Panics(t, func() { v.Insert(v.Len()+1, 0) })
	})

	t.Run("InsertZeroCount", func(t *testing.T) {
		v := vec.Of(1, 2)
		defer v.Release()

		assert.Equal(t, 1, v.InsertN(1, 9, 0))
		assert.Equal(t, 1, v.InsertN(1, 9, -5))
		assert.Equal(t, []int{1, 2}, v.Data())
	})

	t.Run("EraseEmptyRange", func(t *testing.T) {
		v := vec.Of(1, 2, 3)
		defer v.Release()

		v.EraseRange(1, 1)
		assert.Equal(t, []int{1, 2, 3}, v.Data())

		v.EraseRange(0, v.Len())
		assert.True(t, v.Empty())
	})

	t.Run("RepeatedRelease", func(t *testing.T) {
		v := vec.Of(1, 2, 3)
		v.Release()
		v.Release()
		v.Release()
		assert.Equal(t, 0, v.Cap())

		// Still usable afterwards
		v.Append(42)
		assert.Equal(t, 42, v.Get(0))
	})

	t.Run("SelfOperations", func(t *testing.T) {
		v := vec.Of(1, 2, 3)
		defer v.Release()

		v.MoveFrom(v)
		assert.Equal(t, []int{1, 2, 3}, v.Data())

		v.CopyFrom(v)
		assert.Equal(t, []int{1, 2, 3}, v.Data())

		v.Swap(v)
		assert.Equal(t, []int{1, 2, 3}, v.Data())

		assert.True(t, v.Equal(v))
	})

	t.Run("ResizeExtremes", func(t *testing.T) {
		v := vec.New[int]()
		defer v.Release()

		v.Resize(0)
		assert.Equal(t, 0, v.Len())

		v.Resize(1000)
		assert.Equal(t, 1000, v.Len())
		for i := 0; i < 1000; i += 101 {
			require.Equal(t, 0, v.Get(i), "grown slots are zero-valued")
		}

		v.Resize(0)
		assert.Equal(t, 0, v.Len())
		assert.GreaterOrEqual(t, v.Cap(), 1000, "resize never shrinks capacity")
	})
}

// TestValueSemantics verifies copy/move behavior through the public API
func TestValueSemantics(t *testing.T) {
	t.Run("DeepCopyIndependence", func(t *testing.T) {
		v1 := vec.Of("a", "b", "c")
		defer v1.Release()
		v2 := v1.Clone()
		defer v2.Release()

		v1.Set(0, "changed")
		assert.Equal(t, "a", v2.Get(0))
		assert.Equal(t, "changed", v1.Get(0))
	})

	t.Run("MoveEmptiesSource", func(t *testing.T) {
		src := vec.Of(1, 2, 3)
		dst := vec.Move(src)
		defer dst.Release()

		assert.Equal(t, 0, src.Len())
		assert.Equal(t, 0, src.Cap())
		assert.Equal(t, []int{1, 2, 3}, dst.Data())

		// The drained source is still a working empty vector
		src.Append(9)
		assert.Equal(t, []int{9}, src.Data())
		src.Release()
	})

	t.Run("SwapScenario", func(t *testing.T) {
		v1 := vec.Of(1, 2, 3)
		v2 := vec.Of(4, 5)
		defer v1.Release()
		defer v2.Release()

		v1.Swap(v2)

		assert.Equal(t, []int{4, 5}, v1.Data())
		assert.Equal(t, []int{1, 2, 3}, v2.Data())
	})
}

// TestTypeVariety exercises the container across element type classes
func TestTypeVariety(t *testing.T) {
	t.Run("Strings", func(t *testing.T) {
		v := vec.New[string]()
		defer v.Release()

		v.Append("hello")
		v.Append("world")
		v.Insert(1, "generic")
		assert.Equal(t, []string{"hello", "generic", "world"}, v.Data())
	})

	t.Run("Structs", func(t *testing.T) {
		type point struct{ X, Y int32 }
		v := vec.NewFill(3, point{X: 1, Y: 2})
		defer v.Release()

		assert.Equal(t, []point{{1, 2}, {1, 2}, {1, 2}}, v.Data())
		assert.True(t, v.Equal(vec.Of(point{1, 2}, point{1, 2}, point{1, 2})))
	})

	t.Run("Pointers", func(t *testing.T) {
		a, b := 1, 2
		v := vec.Of(&a, &b)
		defer v.Release()

		assert.Equal(t, 1, *v.Get(0))
		v.Erase(0)
		assert.Equal(t, 2, *v.Get(0))
	})

	t.Run("Slices", func(t *testing.T) {
		v := vec.Of([]int{1}, []int{2, 3})
		defer v.Release()

		w := vec.Of([]int{1}, []int{2, 3})
		defer w.Release()

		assert.True(t, v.Equal(w), "non-comparable elements compare deeply")
	})
}
