package engine

import "github.com/arloliu/radix/internal/pool"

// prefixSums converts counts into exclusive start offsets, bucket 0 first.
func prefixSums(h *pool.Histogram) {
	sum := 0
	for b, c := range h {
		h[b] = sum
		sum += c
	}
}

// scatterKeys places src into dst ordered by the digit at pos.
// h must hold the offsets produced by prefixSums and is consumed.
func scatterKeys[K Unsigned](src, dst []K, pos int, h *pool.Histogram) {
	for _, k := range src {
		b := digit(k, pos)
		dst[h[b]] = k
		h[b]++
	}
}

// scatterPairs is scatterKeys with a companion slice moved to the same index.
func scatterPairs[K Unsigned, V any](srcK, dstK []K, srcV, dstV []V, pos int, h *pool.Histogram) {
	for i, k := range srcK {
		b := digit(k, pos)
		j := h[b]
		dstK[j] = k
		dstV[j] = srcV[i]
		h[b]++
	}
}

// scatterViews orders items by byte pos of their views, moving each view along
// with its item.
func scatterViews[S any](srcI, dstI []S, srcV, dstV [][]byte, pos int, h *pool.Histogram) {
	for i, v := range srcV {
		b := viewDigit(v, pos)
		j := h[b]
		dstI[j] = srcI[i]
		dstV[j] = v
		h[b]++
	}
}

// scatterViewsByLength orders items by the length of their views. offsets must
// hold exclusive start offsets indexed by length and is consumed.
func scatterViewsByLength[S any](srcI, dstI []S, srcV, dstV [][]byte, offsets []int) {
	for i, v := range srcV {
		j := offsets[len(v)]
		dstI[j] = srcI[i]
		dstV[j] = v
		offsets[len(v)]++
	}
}
