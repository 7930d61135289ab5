package fixture

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/arloliu/radix/errs"
)

// Distribution selects how Generate draws keys.
type Distribution string

const (
	// Uniform draws keys uniformly over the full key width.
	Uniform Distribution = "uniform"
	// Narrow draws keys from a 256-value window, so only the lowest digit varies.
	Narrow Distribution = "narrow"
	// Sorted is Uniform sorted ascending.
	Sorted Distribution = "sorted"
	// Reversed is Uniform sorted descending.
	Reversed Distribution = "reversed"
)

// ParseDistribution maps a case-insensitive name to a Distribution.
func ParseDistribution(name string) (Distribution, error) {
	d := Distribution(strings.ToLower(name))
	switch d {
	case Uniform, Narrow, Sorted, Reversed:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown distribution %q", errs.ErrInvalidOption, name)
	}
}

// Generate returns n pseudo-random keys that fit in width bytes.
// The same seed always yields the same keys.
func Generate(n, width int, dist Distribution, seed uint64) ([]uint64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative key count %d", errs.ErrInvalidOption, n)
	}
	if err := checkKeyWidth(width); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidOption, err)
	}

	mask := ^uint64(0)
	if width < 8 {
		mask = uint64(1)<<(8*width) - 1
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	keys := make([]uint64, n)

	switch dist {
	case Uniform, Sorted, Reversed:
		for i := range keys {
			keys[i] = rng.Uint64() & mask
		}
	case Narrow:
		base := rng.Uint64() & mask &^ 0xff
		for i := range keys {
			keys[i] = base | rng.Uint64()&0xff&mask
		}
	default:
		return nil, fmt.Errorf("%w: unknown distribution %q", errs.ErrInvalidOption, dist)
	}

	switch dist {
	case Sorted:
		slices.Sort(keys)
	case Reversed:
		slices.Sort(keys)
		slices.Reverse(keys)
	}

	return keys, nil
}
