package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/radix/internal/bench"
)

type rootOptions struct {
	logLevel    string
	logEncoding string
	development bool
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	return bench.NewLogger(bench.LogConfig{
		Level:       o.logLevel,
		Development: o.development,
		Encoding:    o.logEncoding,
	})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "radixbench",
		Short: "Radix sort fixtures and benchmarks",
		Long: `radixbench writes binary key fixtures and times the radix sorts
against slices.Sort on generated or stored inputs.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logEncoding, "log-format", "console", "Log encoding (console or json)")
	cmd.PersistentFlags().BoolVar(&opts.development, "dev", false, "Development logging")

	cmd.AddCommand(newGenCmd(opts), newRunCmd(opts), newVersionCmd())

	return cmd
}
