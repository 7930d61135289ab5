// Package hash computes order-independent fingerprints of key collections.
//
// A fingerprint is the wrapping sum of the xxHash64 of every element, so any
// permutation of the same multiset produces the same value. The verification
// mode of the radix package compares fingerprints taken before and after a sort.
package hash

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"

	"github.com/arloliu/radix/endian"
)

// Keys returns the multiset fingerprint of keys. Each key is hashed over its
// 8-byte little-endian form, so equal values hash equally regardless of K.
func Keys[K constraints.Unsigned](keys []K) uint64 {
	engine := endian.GetLittleEndianEngine()

	var buf [8]byte
	var sum uint64
	for _, k := range keys {
		engine.PutUint64(buf[:], uint64(k))
		sum += xxhash.Sum64(buf[:])
	}

	return sum
}

// Strings returns the multiset fingerprint of s.
func Strings[S ~string](s []S) uint64 {
	var sum uint64
	for _, v := range s {
		sum += xxhash.Sum64String(string(v))
	}

	return sum
}

// Wide returns the multiset fingerprint of wide strings, hashing each over its
// little-endian code units.
func Wide(s [][]uint16) uint64 {
	engine := endian.GetLittleEndianEngine()
	d := xxhash.New()

	var buf []byte
	var sum uint64
	for _, w := range s {
		buf = buf[:0]
		for _, u := range w {
			buf = engine.AppendUint16(buf, u)
		}
		d.Reset()
		_, _ = d.Write(buf)
		sum += d.Sum64()
	}

	return sum
}
