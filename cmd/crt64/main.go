// Command crt64 solves systems of simultaneous congruences from the command
// line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "crt64",
		Short: "Solve simultaneous congruences with the Chinese Remainder Theorem",
		Long: `crt64 finds x such that x ≡ r (mod m) for every given pair r, m.

The moduli must be positive and pairwise coprime, and all arithmetic is
carried out in int64; a system whose intermediate values do not fit is
reported as having no solution.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newSolveCmd(), newInverseCmd(), newGCDCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
