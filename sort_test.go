package radix

import (
	"cmp"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortInPlace_Examples(t *testing.T) {
	keys := []uint32{5, 3, 3, 1}
	require.NoError(t, SortInPlace(keys, 0, 4))
	require.Equal(t, []uint32{1, 3, 3, 5}, keys)

	sub := []uint32{9, 5, 3, 3, 1, 0}
	require.NoError(t, SortInPlace(sub, 1, 4))
	require.Equal(t, []uint32{9, 1, 3, 3, 5, 0}, sub, "elements outside the range must not move")
}

func TestSortInPlace_EmptyAndSingleton(t *testing.T) {
	var st Stats
	keys := []uint64{7, 3}

	require.NoError(t, SortInPlace(keys, 0, 0, WithStats(&st)))
	require.Equal(t, []uint64{7, 3}, keys)
	require.Equal(t, Stats{}, st)

	require.NoError(t, SortInPlace(keys, 1, 1))
	require.Equal(t, []uint64{7, 3}, keys)

	require.NoError(t, SortInPlace(keys, 2, 0), "empty range at the end is valid")
	require.NoError(t, Sort([]uint16(nil)))
}

func TestSortInPlace_SkipOptimization(t *testing.T) {
	var st Stats
	keys := []uint32{1000002, 1000000, 1000001}

	require.NoError(t, Sort(keys, WithSmallSortThreshold(0), WithStats(&st)))
	require.Equal(t, []uint32{1000000, 1000001, 1000002}, keys)
	require.Equal(t, 4, st.Positions)
	require.Equal(t, 1, st.Executed)
	require.Equal(t, 3, st.Skipped)
	require.False(t, st.SmallSort)
}

func TestSortInPlace_InvalidRange(t *testing.T) {
	tests := []struct {
		name          string
		offset, count int
	}{
		{"offset plus count past end", 2, 5},
		{"negative offset", -1, 2},
		{"negative count", 0, -1},
		{"offset past end", 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := []uint32{5, 4, 3, 2, 1}
			err := SortInPlace(keys, tt.offset, tt.count)
			require.ErrorIs(t, err, ErrInvalidRange)
			require.Equal(t, []uint32{5, 4, 3, 2, 1}, keys)
		})
	}
}

func TestSortInPlace_AllocationBudget(t *testing.T) {
	keys := make([]uint64, 1000)
	for i := range keys {
		keys[i] = uint64(len(keys) - i)
	}
	orig := slices.Clone(keys)

	err := Sort(keys, WithMaxScratchBytes(1024))
	require.ErrorIs(t, err, ErrAllocation)
	require.Equal(t, orig, keys, "failed call must not mutate keys")

	var st Stats
	require.NoError(t, Sort(keys, WithMaxScratchBytes(1<<20), WithStats(&st)))
	require.True(t, slices.IsSorted(keys))
	require.LessOrEqual(t, st.ScratchBytes, 1<<20)
	require.Positive(t, st.ScratchBytes)
}

func TestSortInPlace_InvalidOption(t *testing.T) {
	keys := []uint8{3, 1, 2}

	err := Sort(keys, WithMaxScratchBytes(-1))
	require.ErrorIs(t, err, ErrInvalidOption)

	err = Sort(keys, WithSmallSortThreshold(-5))
	require.ErrorIs(t, err, ErrInvalidOption)

	err = Sort(keys, WithWideByteOrder(nil))
	require.ErrorIs(t, err, ErrInvalidOption)

	require.Equal(t, []uint8{3, 1, 2}, keys)
	require.NoError(t, Sort(keys, nil), "nil options are ignored")
	require.Equal(t, []uint8{1, 2, 3}, keys)
}

func randomKeys[K Unsigned](rng *rand.Rand, n int) []K {
	keys := make([]K, n)
	for i := range keys {
		keys[i] = K(rng.Uint64())
	}

	return keys
}

func checkSort[K Unsigned](t *testing.T, keys []K, opts ...Option) {
	t.Helper()

	want := slices.Clone(keys)
	slices.Sort(want)

	require.NoError(t, Sort(keys, opts...))
	require.Equal(t, want, keys)
}

func TestSort_AllKeyTypes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{2, 63, 64, 65, 1000, 4097} {
		checkSort(t, randomKeys[uint8](rng, n))
		checkSort(t, randomKeys[uint16](rng, n))
		checkSort(t, randomKeys[uint32](rng, n))
		checkSort(t, randomKeys[uint64](rng, n))
		checkSort(t, randomKeys[uint](rng, n), WithSmallSortThreshold(0))
		checkSort(t, randomKeys[uintptr](rng, n), WithVerification(true))
	}
}

type ipv4 uint32

func TestSort_NamedKeyType(t *testing.T) {
	keys := []ipv4{0xC0A80001, 0x0A000001, 0x7F000001}
	require.NoError(t, Sort(keys, WithSmallSortThreshold(0)))
	require.Equal(t, []ipv4{0x0A000001, 0x7F000001, 0xC0A80001}, keys)
}

func TestSortKeyValue_Example(t *testing.T) {
	keys := []uint32{5, 3, 1}
	values := []string{"x", "y", "z"}

	require.NoError(t, SortKeyValueInPlace(keys, values, 0, 3))
	require.Equal(t, []uint32{1, 3, 5}, keys)
	require.Equal(t, []string{"z", "y", "x"}, values)
}

func TestSortKeyValue_PairingAndStability(t *testing.T) {
	type origin struct {
		key uint16
		pos int
	}

	rng := rand.New(rand.NewPCG(3, 4))
	const n = 5000
	keys := make([]uint16, n)
	values := make([]origin, n)
	for i := range keys {
		keys[i] = uint16(rng.IntN(200))
		values[i] = origin{key: keys[i], pos: i}
	}

	want := slices.Clone(values)
	slices.SortStableFunc(want, func(a, b origin) int { return cmp.Compare(a.key, b.key) })

	require.NoError(t, SortKeyValue(keys, values, WithVerification(true)))
	require.Equal(t, want, values)
	for i := range keys {
		require.Equal(t, values[i].key, keys[i])
	}
}

func TestSortKeyValue_Errors(t *testing.T) {
	keys := []uint32{3, 2, 1}

	err := SortKeyValue(keys, []int{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)

	values := []int{30, 20}
	err = SortKeyValueInPlace(keys, values, 1, 2)
	require.ErrorIs(t, err, ErrInvalidRange, "range must fit in values too")
	require.Equal(t, []uint32{3, 2, 1}, keys)
	require.Equal(t, []int{30, 20}, values)

	err = SortKeyValueInPlace(keys, []int{0, 0, 0}, 0, 3, WithMaxScratchBytes(1), WithSmallSortThreshold(0))
	require.ErrorIs(t, err, ErrAllocation)
	require.Equal(t, []uint32{3, 2, 1}, keys)
}

func TestSortKeyValueInPlace_SubRange(t *testing.T) {
	keys := []uint64{100, 3, 2, 1, 0}
	values := []byte("abcde")

	require.NoError(t, SortKeyValueInPlace(keys, values, 1, 3))
	require.Equal(t, []uint64{100, 1, 2, 3, 0}, keys)
	require.Equal(t, []byte("adcbe"), values)
}

func TestErrorsAreWrapped(t *testing.T) {
	err := SortInPlace([]uint32{1}, 1, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidRange))
	require.Contains(t, err.Error(), "offset 1, count 1, length 1")
}

func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewPCG(9, 9))
	src := randomKeys[uint32](rng, 1<<16)
	keys := make([]uint32, len(src))

	b.Run("radix", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			copy(keys, src)
			_ = Sort(keys)
		}
	})

	b.Run("slices", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			copy(keys, src)
			slices.Sort(keys)
		}
	})
}
