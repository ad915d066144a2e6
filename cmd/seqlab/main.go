// Command seqlab runs the seqlab algorithms from the command line.
//
//	seqlab selftest [--cases suite.yaml] [--trace]
//	seqlab simulate N [--initial-capacity C]
//
// selftest exits with status 1 when any case fails.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/seqlab/growth"
	"github.com/katalvlaran/seqlab/selftest"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli holds flag values and the logger shared by all subcommands.
type cli struct {
	verbose bool
	logger  *zap.Logger

	casesFile string
	trace     bool

	initialCapacity int
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "seqlab",
		Short:         "seqlab - small integer-sequence algorithms with a self-test",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run every algorithm against a scenario suite",
		Long: `Run every algorithm against the built-in scenario suite, or against
a YAML suite given with --cases, and print one line per case.`,
		Args: cobra.NoArgs,
		RunE: c.runSelfTest,
	}
	selftestCmd.Flags().StringVar(&c.casesFile, "cases", "", "YAML suite to run instead of the built-in one")
	selftestCmd.Flags().BoolVar(&c.trace, "trace", false, "print the resize trace of add_n_items cases")

	simulateCmd := &cobra.Command{
		Use:   "simulate N",
		Short: "Append N items to a doubling container and print each resize",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runSimulate,
	}
	simulateCmd.Flags().IntVar(&c.initialCapacity, "initial-capacity", growth.DefaultInitialCapacity, "capacity before the first resize")

	root.AddCommand(selftestCmd, simulateCmd)

	return root
}

func (c *cli) runSelfTest(cmd *cobra.Command, args []string) error {
	suite := selftest.DefaultSuite()
	if c.casesFile != "" {
		var err error
		suite, err = selftest.LoadFile(c.casesFile)
		if err != nil {
			return err
		}
		c.logger.Debug("loaded suite", zap.String("path", c.casesFile), zap.Int("cases", len(suite.Cases)))
	}

	var runner *selftest.Runner
	if c.trace {
		runner = selftest.NewRunner(c.logger, cmd.OutOrStdout())
	} else {
		runner = selftest.NewRunner(c.logger, nil)
	}

	rep := runner.Run(suite)
	if err := rep.Write(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if rep.Failed() > 0 {
		return selftest.ErrSelfTestFailed
	}

	return nil
}

func (c *cli) runSimulate(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid item count %q: %w", args[0], err)
	}

	out := growth.NewWriterSink(cmd.OutOrStdout())
	items, err := growth.Simulate(n,
		growth.WithInitialCapacity(c.initialCapacity),
		growth.WithSink(growth.Tee(out, growth.NewLoggerSink(c.logger))),
	)
	if err != nil {
		return err
	}
	if err := out.Err(); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), items)

	return err
}
