package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/radix/compress"
	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/fixture"
	"github.com/arloliu/radix/format"
)

type genOptions struct {
	n           int
	width       int
	dist        string
	seed        uint64
	encoding    string
	compression string
	output      string
}

func newGenCmd(root *rootOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a key fixture",
		Long: `Generate pseudo-random keys and write them as a fixture file.

Example:
  radixbench gen --n 1000000 --width 4 --dist narrow --encoding delta --compression zstd -o ips.rdxf`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := root.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runGen(opts, logger)
		},
	}

	cmd.Flags().IntVar(&opts.n, "n", 1_000_000, "Number of keys")
	cmd.Flags().IntVar(&opts.width, "width", 4, "Key width in bytes (1, 2, 4 or 8)")
	cmd.Flags().StringVar(&opts.dist, "dist", "uniform", "Distribution (uniform, narrow, sorted, reversed)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "raw", "Payload encoding (raw or delta)")
	cmd.Flags().StringVar(&opts.compression, "compression", "none", "Payload compression (none, zstd, s2, lz4)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runGen(opts *genOptions, logger *zap.Logger) error {
	dist, err := fixture.ParseDistribution(opts.dist)
	if err != nil {
		return err
	}
	enc, ok := format.ParseEncodingType(opts.encoding)
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnsupportedEncoding, opts.encoding)
	}
	comp, ok := format.ParseCompressionType(opts.compression)
	if !ok {
		return fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidOption, opts.compression)
	}

	keys, err := fixture.Generate(opts.n, opts.width, dist, opts.seed)
	if err != nil {
		return err
	}

	data, err := fixture.Encode(keys,
		fixture.WithKeyWidth(opts.width),
		fixture.WithEncoding(enc),
		fixture.WithCompression(comp),
	)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write fixture: %w", err)
	}

	stats := compress.CompressionStats{
		Algorithm:      comp,
		OriginalSize:   int64(len(keys) * opts.width),
		CompressedSize: int64(len(data) - fixture.HeaderSize),
	}
	logger.Info("fixture written",
		zap.String("path", opts.output),
		zap.Int("keys", len(keys)),
		zap.Int("width", opts.width),
		zap.String("distribution", string(dist)),
		zap.Stringer("encoding", enc),
		zap.Stringer("compression", comp),
		zap.Int("bytes", len(data)),
		zap.Float64("space_savings_pct", stats.SpaceSavings()),
	)

	return nil
}
