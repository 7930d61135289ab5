package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlicePool_Get(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		p := NewSlicePool[uint32](0, false)
		slice, cleanup := p.Get(100)
		defer cleanup()

		require.Equal(t, 100, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("reuses pooled slice when capacity sufficient", func(t *testing.T) {
		p := NewSlicePool[uint64](0, false)

		slice1, cleanup1 := p.Get(50)
		slice1[0] = 7
		cleanup1()

		// sync.Pool may drop entries at any GC; only assert the size contract.
		slice2, cleanup2 := p.Get(40)
		defer cleanup2()

		require.Equal(t, 40, len(slice2))
		require.GreaterOrEqual(t, cap(slice2), 40)
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		p := NewSlicePool[uint16](0, false)

		_, cleanup1 := p.Get(10)
		cleanup1()

		slice2, cleanup2 := p.Get(1000)
		defer cleanup2()

		require.Equal(t, 1000, len(slice2))
		require.GreaterOrEqual(t, cap(slice2), 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		p := NewSlicePool[uint8](0, false)
		slice, cleanup := p.Get(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}

func TestSlicePool_ClearOnPut(t *testing.T) {
	p := NewSlicePool[string](0, true)

	slice, cleanup := p.Get(3)
	slice[0], slice[1], slice[2] = "a", "b", "c"
	cleanup()

	require.Equal(t, []string{"", "", ""}, slice, "released slice should be zeroed")
}

func TestSlicePool_MaxCap(t *testing.T) {
	p := NewSlicePool[int](8, true)

	slice, cleanup := p.Get(16)
	slice[0] = 42
	cleanup()

	// Oversized slices are dropped without clearing.
	require.Equal(t, 42, slice[0])
}

func TestGetHistograms(t *testing.T) {
	t.Run("returns zeroed histograms", func(t *testing.T) {
		hist, cleanup := GetHistograms(4)
		hist[0][3] = 10
		hist[3][255] = 1
		cleanup()

		hist2, cleanup2 := GetHistograms(4)
		defer cleanup2()

		require.Len(t, hist2, 4)
		for pos := range hist2 {
			for b, c := range hist2[pos] {
				require.Zerof(t, c, "position %d bucket %d", pos, b)
			}
		}
	})

	t.Run("zero positions", func(t *testing.T) {
		hist, cleanup := GetHistograms(0)
		defer cleanup()

		require.Empty(t, hist)
	})
}
