package radix

import (
	"fmt"

	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/internal/engine"
	"github.com/arloliu/radix/internal/hash"
)

// checkRange validates [offset, offset+count) against a buffer of length.
func checkRange(length, offset, count int) error {
	if offset < 0 || count < 0 || offset > length || count > length-offset {
		return fmt.Errorf("%w: offset %d, count %d, length %d", errs.ErrInvalidRange, offset, count, length)
	}

	return nil
}

// Sort sorts keys ascending in place.
func Sort[K Unsigned](keys []K, opts ...Option) error {
	return SortInPlace(keys, 0, len(keys), opts...)
}

// SortInPlace sorts keys[offset:offset+count] ascending in place.
//
// Parameters:
//   - keys: The key buffer
//   - offset: First index of the range
//   - count: Number of elements in the range; 0 and 1 are no-ops
//   - opts: Optional settings (WithStats, WithMaxScratchBytes, ...)
//
// Returns:
//   - error: ErrInvalidRange if the range does not fit in keys, ErrAllocation if
//     the scratch budget is too small, ErrInvalidOption for a bad option
//
// Example:
//
//	keys := []uint32{5, 3, 3, 1}
//	err := radix.SortInPlace(keys, 0, 4) // keys == [1 3 3 5]
func SortInPlace[K Unsigned](keys []K, offset, count int, opts ...Option) error {
	cfg, err := newSortConfig(opts)
	if err != nil {
		return err
	}

	if err := checkRange(len(keys), offset, count); err != nil {
		return err
	}

	sub := keys[offset : offset+count]

	var before uint64
	if cfg.verify {
		before = hash.Keys(sub)
	}

	if err := engine.SortKeys(sub, cfg.engine()); err != nil {
		return err
	}

	if cfg.verify {
		return verifyKeys(sub, before)
	}

	return nil
}

// SortKeyValue sorts keys ascending and reorders values identically.
// keys and values must have the same length and must not overlap.
func SortKeyValue[K Unsigned, V any](keys []K, values []V, opts ...Option) error {
	if len(keys) != len(values) {
		return fmt.Errorf("%w: %d keys, %d values", errs.ErrLengthMismatch, len(keys), len(values))
	}

	return SortKeyValueInPlace(keys, values, 0, len(keys), opts...)
}

// SortKeyValueInPlace sorts keys[offset:offset+count] ascending and applies the
// same index mapping to values[offset:offset+count].
//
// The sort is stable: values whose keys are equal keep their relative order.
// The range must fit in both buffers.
//
// Example:
//
//	keys := []uint32{5, 3, 1}
//	values := []string{"x", "y", "z"}
//	err := radix.SortKeyValueInPlace(keys, values, 0, 3)
//	// keys == [1 3 5], values == [z y x]
func SortKeyValueInPlace[K Unsigned, V any](keys []K, values []V, offset, count int, opts ...Option) error {
	cfg, err := newSortConfig(opts)
	if err != nil {
		return err
	}

	if err := checkRange(len(keys), offset, count); err != nil {
		return err
	}
	if err := checkRange(len(values), offset, count); err != nil {
		return err
	}

	subK := keys[offset : offset+count]
	subV := values[offset : offset+count]

	var before uint64
	if cfg.verify {
		before = hash.Keys(subK)
	}

	if err := engine.SortPairs(subK, subV, cfg.engine()); err != nil {
		return err
	}

	if cfg.verify {
		return verifyKeys(subK, before)
	}

	return nil
}
