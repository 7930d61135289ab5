package radix

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/internal/engine"
	"github.com/arloliu/radix/internal/hash"
)

// SortByKey sorts items in place by the unsigned key extracted from each item.
func SortByKey[T any, K Unsigned](items []T, key func(T) K, opts ...Option) error {
	return SortByKeyInPlace(items, key, 0, len(items), opts...)
}

// SortByKeyInPlace sorts items[offset:offset+count] by key(item), stably.
//
// key is called once per item in the range, before any item moves.
// The items are then gathered into their sorted positions in one final copy,
// so a failing call leaves items untouched.
//
// Example:
//
//	type host struct {
//	    name string
//	    ip   uint32
//	}
//	err := radix.SortByKey(hosts, func(h host) uint32 { return h.ip })
func SortByKeyInPlace[T any, K Unsigned](items []T, key func(T) K, offset, count int, opts ...Option) error {
	cfg, err := newSortConfig(opts)
	if err != nil {
		return err
	}

	if key == nil {
		return fmt.Errorf("%w: nil key function", errs.ErrInvalidOption)
	}

	if err := checkRange(len(items), offset, count); err != nil {
		return err
	}

	if count <= 1 {
		cfg.resetStats()
		return nil
	}

	var zeroT T
	var zeroK K
	projected := count * (int(unsafe.Sizeof(zeroK)) + int(unsafe.Sizeof(0)) + int(unsafe.Sizeof(zeroT)))

	ecfg := cfg.engine()
	if err := ecfg.Reserve(projected + engine.PairScratchBytes[K, int](count)); err != nil {
		return err
	}
	ecfg.MaxScratchBytes = 0

	sub := items[offset : offset+count]
	keys := make([]K, count)
	idx := make([]int, count)
	for i, it := range sub {
		keys[i] = key(it)
		idx[i] = i
	}

	var before uint64
	if cfg.verify {
		before = hash.Keys(keys)
	}

	if err := engine.SortPairs(keys, idx, ecfg); err != nil {
		return err
	}

	if cfg.verify {
		if err := verifyKeys(keys, before); err != nil {
			return err
		}
	}

	gathered := make([]T, count)
	for i, j := range idx {
		gathered[i] = sub[j]
	}
	copy(sub, gathered)

	if cfg.stats != nil {
		cfg.stats.ScratchBytes += projected
	}

	return nil
}
