package radix

import (
	"github.com/arloliu/radix/internal/engine"
	"github.com/arloliu/radix/internal/hash"
)

// SortStrings sorts s in place into ascending lexicographic order of its bytes,
// the order of the < operator on strings. A string sorts before every longer
// string it is a prefix of, including its extensions by trailing NUL bytes.
// Equal strings keep their relative order.
func SortStrings[S ~string](s []S, opts ...Option) error {
	return SortStringsInPlace(s, 0, len(s), opts...)
}

// SortStringsInPlace sorts s[offset:offset+count] by byte content.
//
// Example:
//
//	words := []string{"ab", "a", "abc"}
//	err := radix.SortStringsInPlace(words, 0, 3) // words == [a ab abc]
func SortStringsInPlace[S ~string](s []S, offset, count int, opts ...Option) error {
	cfg, err := newSortConfig(opts)
	if err != nil {
		return err
	}

	if err := checkRange(len(s), offset, count); err != nil {
		return err
	}

	sub := s[offset : offset+count]

	var before uint64
	if cfg.verify {
		before = hash.Strings(sub)
	}

	if err := engine.SortStrings(sub, cfg.engine()); err != nil {
		return err
	}

	if cfg.verify {
		return verifyStrings(sub, before)
	}

	return nil
}

// SortWideStrings sorts strings of 16-bit code units in place.
//
// Each string is compared lexicographically through a byte view with two bytes
// per code unit, laid out by the byte order from WithWideByteOrder. The default
// is big-endian, which sorts in code-unit order on every host. Pass
// endian.GetLittleEndianEngine() to reproduce a sort over the raw in-memory
// bytes of the units on little-endian machines, where for example U+0100
// sorts before U+00FF.
func SortWideStrings(s [][]uint16, opts ...Option) error {
	return SortWideStringsInPlace(s, 0, len(s), opts...)
}

// SortWideStringsInPlace sorts s[offset:offset+count] like SortWideStrings.
func SortWideStringsInPlace(s [][]uint16, offset, count int, opts ...Option) error {
	cfg, err := newSortConfig(opts)
	if err != nil {
		return err
	}

	if err := checkRange(len(s), offset, count); err != nil {
		return err
	}

	sub := s[offset : offset+count]

	var before uint64
	if cfg.verify {
		before = hash.Wide(sub)
	}

	if err := engine.SortWideStrings(sub, cfg.wideOrder, cfg.engine()); err != nil {
		return err
	}

	if cfg.verify {
		return verifyWide(sub, before, cfg.wideOrder)
	}

	return nil
}
