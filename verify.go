package radix

import (
	"bytes"
	"fmt"

	"github.com/arloliu/radix/endian"
	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/internal/hash"
)

func verifyKeys[K Unsigned](keys []K, before uint64) error {
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			return fmt.Errorf("%w: keys out of order at index %d", errs.ErrVerificationFailed, i)
		}
	}

	if after := hash.Keys(keys); after != before {
		return fmt.Errorf("%w: key fingerprint changed from %016x to %016x", errs.ErrVerificationFailed, before, after)
	}

	return nil
}

func verifyStrings[S ~string](s []S, before uint64) error {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return fmt.Errorf("%w: strings out of order at index %d", errs.ErrVerificationFailed, i)
		}
	}

	if after := hash.Strings(s); after != before {
		return fmt.Errorf("%w: string fingerprint changed from %016x to %016x", errs.ErrVerificationFailed, before, after)
	}

	return nil
}

func verifyWide(s [][]uint16, before uint64, order endian.EndianEngine) error {
	for i := 1; i < len(s); i++ {
		if compareWide(s[i-1], s[i], order) > 0 {
			return fmt.Errorf("%w: wide strings out of order at index %d", errs.ErrVerificationFailed, i)
		}
	}

	if after := hash.Wide(s); after != before {
		return fmt.Errorf("%w: wide string fingerprint changed from %016x to %016x", errs.ErrVerificationFailed, before, after)
	}

	return nil
}

// compareWide compares the byte views of a and b under order.
func compareWide(a, b []uint16, order endian.EndianEngine) int {
	var x, y [2]byte
	for i := range min(len(a), len(b)) {
		if a[i] == b[i] {
			continue
		}
		order.PutUint16(x[:], a[i])
		order.PutUint16(y[:], b[i])

		return bytes.Compare(x[:], y[:])
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
