package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kbolino/crt64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func parseArgs(args []string) ([]int64, error) {
	vals := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing argument %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func newInverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse A M",
		Short: "Print the inverse of A modulo M",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseArgs(args)
			if err != nil {
				return err
			}
			a, m := vals[0], vals[1]
			inv, err := crt64.TryModInverse(a, m)
			if errors.Is(err, crt64.ErrNotCoprime) {
				logger.Debug("no inverse", zap.Int64("a", a), zap.Int64("m", m), zap.Int64("gcd", crt64.GCD(a, m)))
				fmt.Fprintf(cmd.OutOrStdout(), "%d has no inverse modulo %d\n", a, m)
				return nil
			} else if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}

func newGCDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd A B",
		Short: "Print GCD(A, B) and the Bézout coefficients x, y with A*x + B*y = GCD(A, B)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseArgs(args)
			if err != nil {
				return err
			}
			x, y, d := crt64.ExtGCD(vals[0], vals[1])
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\n", d, x, y)
			return nil
		},
	}
}
