package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/radix/internal/bench"
)

type runOptions struct {
	suite  string
	input  string
	kind   string
	repeat int
	verify bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run benchmark workloads",
		Long: `Time radix sorts against slices.Sort.

Without --suite the built-in suite runs. --input replaces the suite with a
single workload read from a fixture file.

Example:
  radixbench run --suite bench.toml --verify
  radixbench run --input ips.rdxf --kind kv --repeat 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := root.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			suite, err := opts.buildSuite(cmd)
			if err != nil {
				return err
			}

			results, err := bench.NewRunner(logger).Run(cmd.Context(), suite)
			if err != nil {
				return err
			}

			return printResults(cmd, results)
		},
	}

	cmd.Flags().StringVar(&opts.suite, "suite", "", "TOML suite file")
	cmd.Flags().StringVar(&opts.input, "input", "", "Fixture file to benchmark")
	cmd.Flags().StringVar(&opts.kind, "kind", string(bench.KindUint64), "Workload kind for --input (uint32, uint64, kv, strings)")
	cmd.Flags().IntVar(&opts.repeat, "repeat", 0, "Repetitions per workload (overrides the suite)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Verify every radix result")
	cmd.MarkFlagsMutuallyExclusive("suite", "input")

	return cmd
}

func (o *runOptions) buildSuite(cmd *cobra.Command) (bench.Suite, error) {
	var suite bench.Suite
	switch {
	case o.suite != "":
		s, err := bench.LoadSuite(o.suite)
		if err != nil {
			return bench.Suite{}, err
		}
		suite = s
	case o.input != "":
		suite = bench.Suite{
			Repeat:    1,
			Workloads: []bench.Workload{{Name: o.input, Kind: bench.Kind(o.kind), Input: o.input}},
		}
	default:
		suite = bench.DefaultSuite()
	}

	if cmd.Flags().Changed("repeat") {
		suite.Repeat = o.repeat
	}
	if o.verify {
		suite.Verify = true
	}

	return suite, suite.Validate()
}

func printResults(cmd *cobra.Command, results []bench.Result) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WORKLOAD\tIMPL\tBEST\tMEAN\tPASSES\tSKIPPED")
	for _, r := range results {
		passes, skipped := "-", "-"
		if r.Impl == bench.ImplRadix {
			passes = fmt.Sprint(r.Stats.Executed)
			skipped = fmt.Sprint(r.Stats.Skipped)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Workload, r.Impl, r.Best, r.Mean, passes, skipped)
	}

	return w.Flush()
}
