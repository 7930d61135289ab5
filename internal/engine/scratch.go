package engine

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/internal/pool"
)

// maxPooledLen bounds the scratch slices retained between calls.
const maxPooledLen = 1 << 20

var (
	uint8Pool  = pool.NewSlicePool[uint8](maxPooledLen, false)
	uint16Pool = pool.NewSlicePool[uint16](maxPooledLen, false)
	uint32Pool = pool.NewSlicePool[uint32](maxPooledLen, false)
	uint64Pool = pool.NewSlicePool[uint64](maxPooledLen, false)
	uintPool   = pool.NewSlicePool[uint](maxPooledLen, false)
	intPool    = pool.NewSlicePool[int](maxPooledLen, false)
	stringPool = pool.NewSlicePool[string](maxPooledLen, true)
	viewPool   = pool.NewSlicePool[[]byte](maxPooledLen, true)
)

// acquire returns a scratch slice of n elements and its release function.
// Types without a dedicated pool are freshly allocated and left to the GC.
func acquire[T any](n int) ([]T, func()) {
	var zero T
	var p any
	switch any(zero).(type) {
	case uint8:
		p = uint8Pool
	case uint16:
		p = uint16Pool
	case uint32:
		p = uint32Pool
	case uint64:
		p = uint64Pool
	case uint:
		p = uintPool
	case int:
		p = intPool
	case string:
		p = stringPool
	case []byte:
		p = viewPool
	}

	if sp, ok := p.(*pool.SlicePool[T]); ok {
		return sp.Get(n)
	}

	return make([]T, n), func() {}
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

const histogramBytes = 256 * int(unsafe.Sizeof(int(0)))

// KeyScratchBytes is the scratch a key-only sort of n keys needs.
func KeyScratchBytes[K Unsigned](n int) int {
	return n*sizeOf[K]() + Width[K]()*histogramBytes
}

// PairScratchBytes is the scratch a key-value sort of n pairs needs.
func PairScratchBytes[K Unsigned, V any](n int) int {
	return KeyScratchBytes[K](n) + n*sizeOf[V]()
}

// ViewScratchBytes is the scratch a string sort of n items needs when the
// longest byte view is maxLen bytes and arena bytes of views must be built.
func ViewScratchBytes[S any](n, maxLen, arena int) int {
	views := 2 * n * sizeOf[[]byte]()
	lenCount := (maxLen + 1) * sizeOf[int]()

	return views + n*sizeOf[S]() + maxLen*histogramBytes + lenCount + arena
}

// Stats describes the work done by one sort call.
type Stats struct {
	// Positions is the number of digit positions considered. The length pass
	// of a string sort is not a digit position and is not counted.
	Positions int
	// Executed is the number of positions that needed a scatter pass.
	Executed int
	// Skipped is the number of positions where all keys shared one digit.
	Skipped int
	// ScratchBytes is the scratch memory reserved for the call.
	ScratchBytes int
	// SmallSort is set when the input was short enough for insertion sort.
	SmallSort bool
}

// Config carries per-call settings.
type Config struct {
	// SmallSortThreshold selects insertion sort for integer inputs of at most
	// this many elements. 0 always runs the radix passes.
	SmallSortThreshold int
	// MaxScratchBytes caps the scratch a call may reserve. 0 is unlimited.
	MaxScratchBytes int
	// Stats, when non-nil, is reset and filled by the call.
	Stats *Stats
}

func (c Config) begin() *Stats {
	if c.Stats == nil {
		return &Stats{}
	}
	*c.Stats = Stats{}

	return c.Stats
}

// Reserve checks need against the budget. It must run before any element moves.
func (c Config) Reserve(need int) error {
	if c.MaxScratchBytes > 0 && need > c.MaxScratchBytes {
		return fmt.Errorf("%w: need %d bytes, budget %d", errs.ErrAllocation, need, c.MaxScratchBytes)
	}

	return nil
}
