package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/fixture"
	"github.com/arloliu/radix/format"
)

func smallSuite() Suite {
	return Suite{
		Repeat: 2,
		Verify: true,
		Seed:   11,
		Workloads: []Workload{
			{Name: "u32", Kind: KindUint32, N: 500, Distribution: "uniform"},
			{Name: "u64", Kind: KindUint64, N: 500, Distribution: "reversed"},
			{Name: "pairs", Kind: KindKV, N: 500, Distribution: "narrow"},
			{Name: "words", Kind: KindStrings, N: 300},
		},
	}
}

func TestRunner_Run(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := NewRunner(zap.New(core))

	results, err := r.Run(context.Background(), smallSuite())
	require.NoError(t, err)
	require.Len(t, results, 8)

	for i := 0; i < len(results); i += 2 {
		require.Equal(t, ImplRadix, results[i].Impl)
		require.Equal(t, ImplStdlib, results[i+1].Impl)
		require.Equal(t, results[i].Workload, results[i+1].Workload)
		require.LessOrEqual(t, results[i].Best, results[i].Mean)
	}

	for _, entry := range logs.FilterMessage("workload finished").All() {
		require.Contains(t, entry.ContextMap(), "speedup")
	}
}

func TestRunner_FixtureInput(t *testing.T) {
	keys, err := fixture.Generate(400, 4, fixture.Narrow, 3)
	require.NoError(t, err)
	data, err := fixture.Encode(keys, fixture.WithKeyWidth(4), fixture.WithEncoding(format.TypeDelta), fixture.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keys.rdxf")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s := Suite{Repeat: 1, Workloads: []Workload{{Name: "file", Kind: KindKV, Input: path}}}
	results, err := NewRunner(nil).Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestRunner_FixtureTooWideForKind(t *testing.T) {
	data, err := fixture.Encode([]uint64{1 << 40, 7, 1 << 33}, fixture.WithKeyWidth(8))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wide.rdxf")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	for _, kind := range []Kind{KindUint32, KindKV} {
		s := Suite{Repeat: 1, Workloads: []Workload{{Name: "wide", Kind: kind, Input: path}}}
		_, err := NewRunner(nil).Run(context.Background(), s)
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	}

	s := Suite{Repeat: 1, Workloads: []Workload{{Name: "wide", Kind: KindUint64, Input: path}}}
	results, err := NewRunner(nil).Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestRunner_Errors(t *testing.T) {
	r := NewRunner(nil)

	_, err := r.Run(context.Background(), Suite{Repeat: 1})
	require.Error(t, err)

	missing := Suite{Repeat: 1, Workloads: []Workload{{Name: "x", Kind: KindUint64, Input: "/nonexistent/keys.rdxf"}}}
	_, err = r.Run(context.Background(), missing)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, smallSuite())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "debug", Encoding: "json", OutputPaths: []string{filepath.Join(t.TempDir(), "bench.log")}})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())

	_, err = NewLogger(LogConfig{Level: "loud"})
	require.Error(t, err)
}
