package engine

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/radix/internal/pool"
)

// Unsigned is the set of key types the engine sorts.
type Unsigned = constraints.Unsigned

// Width returns the number of byte digits in K.
func Width[K Unsigned]() int {
	var k K
	return int(unsafe.Sizeof(k))
}

// digit extracts byte pos of key by value, independent of memory layout.
func digit[K Unsigned](key K, pos int) byte {
	return byte(uint64(key) >> (8 * uint(pos)))
}

// viewDigit reads byte pos of a view, or 0 past its end.
func viewDigit(view []byte, pos int) byte {
	if pos < len(view) {
		return view[pos]
	}

	return 0
}

// buildHistograms counts the digits of every key at every position in one sweep.
// hist must hold Width[K]() zeroed histograms.
func buildHistograms[K Unsigned](keys []K, hist []pool.Histogram) {
	for _, k := range keys {
		v := uint64(k)
		for pos := range hist {
			hist[pos][v&0xFF]++
			v >>= 8
		}
	}
}

// buildViewHistograms counts the digits of every view at positions [0, len(hist)).
//
// Positions past a view's end count toward bucket 0. Rather than visiting them
// one by one, shorter views are tallied by length and folded into bucket 0 as a
// running total. lenCount must hold len(hist)+1 zeroed counters.
func buildViewHistograms(views [][]byte, hist []pool.Histogram, lenCount []int) {
	for _, v := range views {
		for pos, b := range v {
			hist[pos][b]++
		}
		lenCount[len(v)]++
	}

	shorter := 0
	for pos := range hist {
		shorter += lenCount[pos]
		hist[pos][0] += shorter
	}
}

// uniform reports whether one bucket holds all n elements, in which case a pass
// over this position cannot reorder anything.
func uniform(h *pool.Histogram, n int) bool {
	return uniformCounts(h[:], n)
}

// uniformCounts is uniform over an arbitrary counter slice.
func uniformCounts(counts []int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
		if c != 0 {
			return false
		}
	}

	return false
}
