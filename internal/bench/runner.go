package bench

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/radix"
	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/fixture"
)

// Implementation names reported in results.
const (
	ImplRadix  = "radix"
	ImplStdlib = "slices"
)

// Result is the timing of one implementation on one workload.
type Result struct {
	Workload string
	Impl     string
	N        int
	Best     time.Duration
	Mean     time.Duration
	Stats    radix.Stats
}

// Runner executes suites.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a Runner that logs through logger. A nil logger discards output.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{logger: logger}
}

// Run executes every workload of s in order and returns two results per
// workload, radix first. It stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s Suite) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, 2*len(s.Workloads))
	for _, w := range s.Workloads {
		keys, err := loadKeys(w, s.Seed)
		if err != nil {
			return results, fmt.Errorf("workload %s: %w", w.Name, err)
		}

		c := newCase(w.Kind, keys)
		pair, err := r.runCase(ctx, w.Name, c, s.Repeat, s.Verify)
		if err != nil {
			return results, fmt.Errorf("workload %s: %w", w.Name, err)
		}
		results = append(results, pair...)

		if pair[0].Mean > 0 {
			r.logger.Info("workload finished",
				zap.String("workload", w.Name),
				zap.String("kind", string(w.Kind)),
				zap.Int("n", len(keys)),
				zap.Duration("radix_mean", pair[0].Mean),
				zap.Duration("slices_mean", pair[1].Mean),
				zap.Float64("speedup", float64(pair[1].Mean)/float64(pair[0].Mean)),
				zap.Int("passes_executed", pair[0].Stats.Executed),
				zap.Int("passes_skipped", pair[0].Stats.Skipped),
			)
		}
	}

	return results, nil
}

func loadKeys(w Workload, seed uint64) ([]uint64, error) {
	if w.Input != "" {
		data, err := os.ReadFile(w.Input)
		if err != nil {
			return nil, err
		}
		ds, err := fixture.Decode(data)
		if err != nil {
			return nil, err
		}
		if w.Kind.keyWidth() < int(ds.Header.KeyWidth) {
			return nil, fmt.Errorf("%w: %s holds %d-byte keys, too wide for kind %s",
				errs.ErrInvalidOption, w.Input, ds.Header.KeyWidth, w.Kind)
		}

		return ds.Keys, nil
	}

	dist := fixture.Uniform
	if w.Distribution != "" {
		d, err := fixture.ParseDistribution(w.Distribution)
		if err != nil {
			return nil, err
		}
		dist = d
	}

	return fixture.Generate(w.N, w.Kind.keyWidth(), dist, seed)
}

// sortCase prepares a fresh copy of the workload input and sorts it.
type sortCase interface {
	reset()
	sortRadix(opts ...radix.Option) error
	sortStdlib()
	equal() bool
}

func newCase(kind Kind, keys []uint64) sortCase {
	switch kind {
	case KindUint32:
		return newKeyCase(narrow[uint32](keys))
	case KindKV:
		return newPairCase(narrow[uint32](keys))
	case KindStrings:
		words := make([]string, len(keys))
		for i, k := range keys {
			words[i] = strconv.FormatUint(k, 36)
		}

		return newStringCase(words)
	default:
		return newKeyCase(keys)
	}
}

func (r *Runner) runCase(ctx context.Context, name string, c sortCase, repeat int, verify bool) ([]Result, error) {
	radixRes := Result{Workload: name, Impl: ImplRadix}
	stdRes := Result{Workload: name, Impl: ImplStdlib}

	var radixTotal, stdTotal time.Duration
	for i := range repeat {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.reset()
		start := time.Now()
		if err := c.sortRadix(radix.WithStats(&radixRes.Stats), radix.WithVerification(verify)); err != nil {
			return nil, err
		}
		elapsed := time.Since(start)
		radixRes.Best = best(radixRes.Best, elapsed, i)
		radixTotal += elapsed

		start = time.Now()
		c.sortStdlib()
		elapsed = time.Since(start)
		stdRes.Best = best(stdRes.Best, elapsed, i)
		stdTotal += elapsed

		if !c.equal() {
			return nil, fmt.Errorf("radix and %s results differ", ImplStdlib)
		}

		r.logger.Debug("repeat done", zap.String("workload", name), zap.Int("repeat", i))
	}

	radixRes.Mean = radixTotal / time.Duration(repeat)
	stdRes.Mean = stdTotal / time.Duration(repeat)

	return []Result{radixRes, stdRes}, nil
}

func best(cur, d time.Duration, i int) time.Duration {
	if i == 0 || d < cur {
		return d
	}

	return cur
}

func narrow[K uint32 | uint64](keys []uint64) []K {
	out := make([]K, len(keys))
	for i, k := range keys {
		out[i] = K(k)
	}

	return out
}

type keyCase[K radix.Unsigned] struct {
	src, a, b []K
}

func newKeyCase[K radix.Unsigned](src []K) *keyCase[K] {
	return &keyCase[K]{src: src, a: make([]K, len(src)), b: make([]K, len(src))}
}

func (c *keyCase[K]) reset() {
	copy(c.a, c.src)
	copy(c.b, c.src)
}

func (c *keyCase[K]) sortRadix(opts ...radix.Option) error { return radix.Sort(c.a, opts...) }
func (c *keyCase[K]) sortStdlib() { slices.Sort(c.b) }
func (c *keyCase[K]) equal() bool { return slices.Equal(c.a, c.b) }

// pairCase sorts uint32 keys carrying their original index as the value.
type pairCase struct {
	src   []uint32
	keys  []uint32
	pairs []kv
	vidx  []int
}

type kv struct {
	key uint32
	idx int
}

func newPairCase(src []uint32) *pairCase {
	n := len(src)

	return &pairCase{
		src:   src,
		keys:  make([]uint32, n),
		pairs: make([]kv, n),
		vidx:  make([]int, n),
	}
}

func (c *pairCase) reset() {
	copy(c.keys, c.src)
	for i, k := range c.src {
		c.vidx[i] = i
		c.pairs[i] = kv{key: k, idx: i}
	}
}

func (c *pairCase) sortRadix(opts ...radix.Option) error {
	return radix.SortKeyValue(c.keys, c.vidx, opts...)
}

func (c *pairCase) sortStdlib() {
	slices.SortStableFunc(c.pairs, func(a, b kv) int { return cmp.Compare(a.key, b.key) })
}

func (c *pairCase) equal() bool {
	for i, p := range c.pairs {
		if c.keys[i] != p.key || c.vidx[i] != p.idx {
			return false
		}
	}

	return true
}

type stringCase struct {
	src, a, b []string
}

func newStringCase(src []string) *stringCase {
	return &stringCase{src: src, a: make([]string, len(src)), b: make([]string, len(src))}
}

func (c *stringCase) reset() {
	copy(c.a, c.src)
	copy(c.b, c.src)
}

func (c *stringCase) sortRadix(opts ...radix.Option) error { return radix.SortStrings(c.a, opts...) }
func (c *stringCase) sortStdlib() { slices.Sort(c.b) }
func (c *stringCase) equal() bool { return slices.Equal(c.a, c.b) }
