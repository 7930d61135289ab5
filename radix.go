// Package radix provides stable in-place radix sorts for unsigned integer keys,
// key-value pairs, and byte-derived string keys.
//
// Keys are split into byte digits by value (shift and mask), so results never
// depend on host byte order. Integer keys are sorted least significant digit
// first. Strings get one stable pass by length, then passes from their last
// byte position back to their first with missing bytes reading as zero, which
// yields plain byte-wise order with every prefix before its extensions.
// Digit positions where every key shares one value are skipped, which keeps the
// cost close to O(n · log256(range)) for narrow key ranges.
//
// # Core Features
//
//   - Any unsigned key type: uint8 through uint64, uint, and named types over them
//   - Companion values of any type permuted with their keys
//   - UTF-8 strings and 16-bit wide strings with configurable byte layout
//   - Projection sort of arbitrary elements by an extracted unsigned key
//   - Explicit range validation and scratch budgets that fail before any element moves
//
// # Basic Usage
//
// Sorting a sub-range of keys:
//
//	keys := []uint32{9, 5, 3, 3, 1}
//	if err := radix.SortInPlace(keys, 1, 4); err != nil {
//	    return err
//	}
//	// keys == [9 1 3 3 5]
//
// Sorting keys with values:
//
//	keys := []uint32{5, 3, 1}
//	names := []string{"x", "y", "z"}
//	_ = radix.SortKeyValue(keys, names)
//	// keys == [1 3 5], names == [z y x]
//
// Sorting strings:
//
//	words := []string{"ab", "a", "abc"}
//	_ = radix.SortStrings(words)
//	// words == [a ab abc]
//
// # Errors
//
// Every entry point returns an error wrapping one of the sentinels below; use
// errors.Is to test for them. A call that returns an error has not modified its
// buffers, except for ErrVerificationFailed which is reported after the sort.
//
// # Thread Safety
//
// Calls are independent and may run concurrently on distinct buffers. A buffer
// must not be mutated by anyone else while it is being sorted.
package radix

import (
	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/internal/engine"
)

// Unsigned is the constraint satisfied by every sortable key type.
type Unsigned = engine.Unsigned

// Stats describes the work done by one sort call. See WithStats.
type Stats = engine.Stats

// DefaultSmallSortThreshold is the input length at or below which integer sorts
// use insertion sort instead of radix passes.
const DefaultSmallSortThreshold = 64

// Sentinel errors returned (wrapped) by this package.
var (
	ErrInvalidRange       = errs.ErrInvalidRange
	ErrLengthMismatch     = errs.ErrLengthMismatch
	ErrAllocation         = errs.ErrAllocation
	ErrVerificationFailed = errs.ErrVerificationFailed
	ErrInvalidOption      = errs.ErrInvalidOption
)
