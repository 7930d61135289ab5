package radix

import (
	"fmt"

	"github.com/arloliu/radix/endian"
	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/internal/engine"
	"github.com/arloliu/radix/internal/options"
)

// sortConfig holds the settings of a single sort call.
type sortConfig struct {
	smallSortThreshold int
	maxScratchBytes    int
	stats              *Stats
	verify             bool
	wideOrder          endian.EndianEngine
}

// Option configures a sort call.
type Option = options.Option[*sortConfig]

func newSortConfig(opts []Option) (*sortConfig, error) {
	cfg := &sortConfig{
		smallSortThreshold: DefaultSmallSortThreshold,
		wideOrder:          endian.GetBigEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *sortConfig) engine() engine.Config {
	return engine.Config{
		SmallSortThreshold: c.smallSortThreshold,
		MaxScratchBytes:    c.maxScratchBytes,
		Stats:              c.stats,
	}
}

func (c *sortConfig) resetStats() {
	if c.stats != nil {
		*c.stats = Stats{}
	}
}

// WithMaxScratchBytes caps the scratch memory a call may reserve.
//
// A call whose scratch requirement exceeds the cap fails with ErrAllocation
// before touching its buffers. Zero, the default, means unlimited.
func WithMaxScratchBytes(n int) Option {
	return options.New(func(c *sortConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: negative scratch budget %d", errs.ErrInvalidOption, n)
		}
		c.maxScratchBytes = n

		return nil
	})
}

// WithSmallSortThreshold sets the input length at or below which integer and
// key-value sorts use a stable insertion sort. Zero disables the shortcut.
func WithSmallSortThreshold(n int) Option {
	return options.New(func(c *sortConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: negative small sort threshold %d", errs.ErrInvalidOption, n)
		}
		c.smallSortThreshold = n

		return nil
	})
}

// WithStats makes the call reset *st and record its pass statistics there.
func WithStats(st *Stats) Option {
	return options.NoError(func(c *sortConfig) {
		c.stats = st
	})
}

// WithVerification enables a post-sort check that the output is ordered and
// holds the same multiset of keys as the input.
func WithVerification(enabled bool) Option {
	return options.NoError(func(c *sortConfig) {
		c.verify = enabled
	})
}

// WithWideByteOrder selects how wide-string code units are laid out as bytes.
// The default big-endian layout sorts in code-unit order.
func WithWideByteOrder(order endian.EndianEngine) Option {
	return options.New(func(c *sortConfig) error {
		if order == nil {
			return fmt.Errorf("%w: nil byte order", errs.ErrInvalidOption)
		}
		c.wideOrder = order

		return nil
	})
}
