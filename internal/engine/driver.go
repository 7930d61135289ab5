package engine

import "github.com/arloliu/radix/internal/pool"

// SortKeys sorts keys ascending with least-significant-digit passes.
//
// The result always ends in keys. Inputs of at most one element return before
// any scratch is acquired, and the scratch budget is checked before the first
// element moves, so an ErrAllocation leaves keys untouched.
func SortKeys[K Unsigned](keys []K, cfg Config) error {
	st := cfg.begin()
	n := len(keys)
	if n <= 1 {
		return nil
	}

	if n <= cfg.SmallSortThreshold {
		st.SmallSort = true
		insertionSort(keys)

		return nil
	}

	need := KeyScratchBytes[K](n)
	if err := cfg.Reserve(need); err != nil {
		return err
	}
	st.ScratchBytes = need

	width := Width[K]()
	st.Positions = width

	hist, releaseHist := pool.GetHistograms(width)
	defer releaseHist()
	buildHistograms(keys, hist)

	scratch, release := acquire[K](n)
	defer release()

	src, dst := keys, scratch
	inScratch := false
	for pos := 0; pos < width; pos++ {
		h := &hist[pos]
		if uniform(h, n) {
			st.Skipped++
			continue
		}

		prefixSums(h)
		scatterKeys(src, dst, pos, h)
		src, dst = dst, src
		inScratch = !inScratch
		st.Executed++
	}

	if inScratch {
		copy(keys, src)
	}

	return nil
}

// SortPairs sorts keys ascending and applies the same permutation to values.
// len(values) must equal len(keys).
func SortPairs[K Unsigned, V any](keys []K, values []V, cfg Config) error {
	st := cfg.begin()
	n := len(keys)
	if n <= 1 {
		return nil
	}

	if n <= cfg.SmallSortThreshold {
		st.SmallSort = true
		insertionSortPairs(keys, values)

		return nil
	}

	need := PairScratchBytes[K, V](n)
	if err := cfg.Reserve(need); err != nil {
		return err
	}
	st.ScratchBytes = need

	width := Width[K]()
	st.Positions = width

	hist, releaseHist := pool.GetHistograms(width)
	defer releaseHist()
	buildHistograms(keys, hist)

	keyScratch, releaseKeys := acquire[K](n)
	defer releaseKeys()
	valScratch, releaseVals := acquire[V](n)
	defer releaseVals()

	srcK, dstK := keys, keyScratch
	srcV, dstV := values, valScratch
	inScratch := false
	for pos := 0; pos < width; pos++ {
		h := &hist[pos]
		if uniform(h, n) {
			st.Skipped++
			continue
		}

		prefixSums(h)
		scatterPairs(srcK, dstK, srcV, dstV, pos, h)
		srcK, dstK = dstK, srcK
		srcV, dstV = dstV, srcV
		inScratch = !inScratch
		st.Executed++
	}

	if inScratch {
		copy(keys, srcK)
		copy(values, srcV)
	}

	return nil
}

// insertionSort is a stable sort for inputs too short to amortize the passes.
func insertionSort[K Unsigned](keys []K) {
	for i := 1; i < len(keys); i++ {
		k := keys[i]
		j := i - 1
		for j >= 0 && keys[j] > k {
			keys[j+1] = keys[j]
			j--
		}
		keys[j+1] = k
	}
}

func insertionSortPairs[K Unsigned, V any](keys []K, values []V) {
	for i := 1; i < len(keys); i++ {
		k, v := keys[i], values[i]
		j := i - 1
		for j >= 0 && keys[j] > k {
			keys[j+1] = keys[j]
			values[j+1] = values[j]
			j--
		}
		keys[j+1] = k
		values[j+1] = v
	}
}
