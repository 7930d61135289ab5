package pool

import "sync"

// SlicePool pools slices of a single element type for reuse as sort scratch space.
//
// Slices whose capacity grows beyond maxCap are dropped on release instead of
// being retained, so a single very large sort does not pin its scratch forever.
// When clearOnPut is set the released slice is zeroed first, which matters for
// element types that hold pointers (strings, payload structs).
type SlicePool[T any] struct {
	pool       sync.Pool
	maxCap     int
	clearOnPut bool
}

// NewSlicePool creates a pool of []T.
//
// Parameters:
//   - maxCap: Largest capacity retained on release (0 retains everything)
//   - clearOnPut: Zero the slice contents before returning it to the pool
//
// Returns:
//   - *SlicePool[T]: The created pool
func NewSlicePool[T any](maxCap int, clearOnPut bool) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
		maxCap:     maxCap,
		clearOnPut: clearOnPut,
	}
}

// Get retrieves and resizes a slice from the pool.
//
// The returned slice has exactly size elements. Its contents are unspecified
// unless the pool clears on release. The caller must call the returned cleanup
// function exactly once, typically with defer.
//
// Example:
//
//	scratch, release := p.Get(len(keys))
//	defer release()
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	if ptr == nil {
		ptr = &[]T{}
	}

	slice := (*ptr)[:0]
	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.put(ptr) }
}

func (p *SlicePool[T]) put(ptr *[]T) {
	if p.maxCap > 0 && cap(*ptr) > p.maxCap {
		return
	}

	if p.clearOnPut {
		clear(*ptr)
	}
	p.pool.Put(ptr)
}

// Histogram is the counter array for one digit position.
type Histogram = [256]int

// MaxPooledHistograms bounds the histogram sets kept for reuse. Integer sorts
// need at most 8 positions; longer sets come from long string keys.
const MaxPooledHistograms = 1024

var histogramPool = NewSlicePool[Histogram](MaxPooledHistograms, false)

// GetHistograms retrieves a set of zeroed histograms, one per digit position.
//
// Parameters:
//   - positions: Number of digit positions
//
// Returns:
//   - []Histogram: Zeroed histograms, len(result) == positions
//   - func(): Cleanup function that returns the set to the pool
func GetHistograms(positions int) ([]Histogram, func()) {
	hist, release := histogramPool.Get(positions)
	clear(hist)

	return hist, release
}
