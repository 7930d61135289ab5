package engine

import (
	"unsafe"

	"github.com/arloliu/radix/endian"
	"github.com/arloliu/radix/internal/pool"
)

// SortStrings sorts s ascending by byte content.
//
// Each string is viewed in place through its backing bytes; no copy is made.
func SortStrings[S ~string](s []S, cfg Config) error {
	st := cfg.begin()
	n := len(s)
	if n <= 1 {
		return nil
	}

	maxLen := 0
	for _, v := range s {
		maxLen = max(maxLen, len(v))
	}

	need := ViewScratchBytes[S](n, maxLen, 0)
	if err := cfg.Reserve(need); err != nil {
		return err
	}
	st.ScratchBytes = need

	views, releaseViews := acquire[[]byte](n)
	defer releaseViews()
	for i, v := range s {
		str := string(v)
		views[i] = unsafe.Slice(unsafe.StringData(str), len(str))
	}

	sortViews(s, views, maxLen, st)

	return nil
}

// SortWideStrings sorts strings of 16-bit code units ascending by the content
// of their byte views, where order lays out each code unit as two bytes.
//
// With big-endian order the result matches code-unit order. Little-endian
// order reproduces the ordering of the units' in-memory layout on
// little-endian hosts.
func SortWideStrings(s [][]uint16, order endian.EndianEngine, cfg Config) error {
	st := cfg.begin()
	n := len(s)
	if n <= 1 {
		return nil
	}

	maxUnits, total := 0, 0
	for _, w := range s {
		maxUnits = max(maxUnits, len(w))
		total += len(w)
	}
	maxLen := 2 * maxUnits
	arenaLen := 2 * total

	need := ViewScratchBytes[[]uint16](n, maxLen, arenaLen)
	if err := cfg.Reserve(need); err != nil {
		return err
	}
	st.ScratchBytes = need

	arena, releaseArena := acquire[byte](arenaLen)
	defer releaseArena()
	views, releaseViews := acquire[[]byte](n)
	defer releaseViews()

	// arena has capacity for every unit, so appends never move earlier views.
	arena = arena[:0]
	for i, w := range s {
		start := len(arena)
		for _, u := range w {
			arena = order.AppendUint16(arena, u)
		}
		views[i] = arena[start:len(arena):len(arena)]
	}

	sortViews(s, views, maxLen, st)

	return nil
}

// sortViews orders items lexicographically by their views.
//
// A first stable pass orders the views by length. Byte positions are then
// visited from maxLen-1 down to 0, with bytes past a view's end reading as 0.
// Views that are equal under that padding differ only by trailing zero bytes,
// and the length pass leaves the shorter one first, so the result matches
// plain byte-wise comparison. The length pass is not counted in st.
func sortViews[S any](items []S, views [][]byte, maxLen int, st *Stats) {
	n := len(items)
	st.Positions = maxLen
	if maxLen == 0 {
		return
	}

	hist, releaseHist := pool.GetHistograms(maxLen)
	defer releaseHist()
	lenCount, releaseLens := acquire[int](maxLen + 1)
	defer releaseLens()
	clear(lenCount)
	buildViewHistograms(views, hist, lenCount)

	itemScratch, releaseItems := acquire[S](n)
	defer releaseItems()
	viewScratch, releaseScratchViews := acquire[[]byte](n)
	defer releaseScratchViews()

	srcI, dstI := items, itemScratch
	srcV, dstV := views, viewScratch
	inScratch := false

	// lenCount is no longer needed for the histograms and becomes the offsets
	// of the length pass.
	if !uniformCounts(lenCount, n) {
		sum := 0
		for l, c := range lenCount {
			lenCount[l] = sum
			sum += c
		}
		scatterViewsByLength(srcI, dstI, srcV, dstV, lenCount)
		srcI, dstI = dstI, srcI
		srcV, dstV = dstV, srcV
		inScratch = true
	}

	for pos := maxLen - 1; pos >= 0; pos-- {
		h := &hist[pos]
		if uniform(h, n) {
			st.Skipped++
			continue
		}

		prefixSums(h)
		scatterViews(srcI, dstI, srcV, dstV, pos, h)
		srcI, dstI = dstI, srcI
		srcV, dstV = dstV, srcV
		inScratch = !inScratch
		st.Executed++
	}

	if inScratch {
		copy(items, srcI)
	}
}
