package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/kbolino/crt64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// the system solved when no congruences are given
var workedExample = crt64.System{
	Remainders: []int64{2, 3, 2},
	Moduli:     []int64{3, 5, 7},
}

type solveOptions struct {
	remainders []int64
	moduli     []int64
	file       string
	canonical  bool
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions
	cmd := &cobra.Command{
		Use:   "solve [R:M ...]",
		Short: "Solve a system of congruences",
		Long: `Solve finds x such that x ≡ R (mod M) for every congruence.

Congruences are collected from --file, then --remainders/--moduli, then the
positional arguments, each written as R:M or "R mod M". With none at all the
worked example x ≡ 2 (mod 3), x ≡ 3 (mod 5), x ≡ 2 (mod 7) is solved.`,
		Example: `  crt64 solve 2:3 3:5 2:7
  crt64 solve --remainders 2,3,2 --moduli 3,5,7
  crt64 solve -f system.yaml --canonical`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := opts.system(args)
			if err != nil {
				return err
			}
			return runSolve(cmd.OutOrStdout(), sys, opts.canonical)
		},
	}
	cmd.Flags().Int64SliceVar(&opts.remainders, "remainders", nil, "comma-separated remainders")
	cmd.Flags().Int64SliceVar(&opts.moduli, "moduli", nil, "comma-separated moduli, matching --remainders")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML file describing the system")
	cmd.Flags().BoolVar(&opts.canonical, "canonical", false, "print the least non-negative solution")
	return cmd
}

// system assembles the congruences named by the options and args.
func (o *solveOptions) system(args []string) (crt64.System, error) {
	var sys crt64.System
	if o.file != "" {
		var err error
		if sys, err = loadSystemFile(o.file); err != nil {
			return crt64.System{}, err
		}
	}
	if len(o.remainders) != len(o.moduli) {
		return crt64.System{}, fmt.Errorf("--remainders and --moduli: %w", crt64.ErrLenMismatch)
	}
	for i := range o.moduli {
		sys.Add(o.remainders[i], o.moduli[i])
	}
	for _, arg := range args {
		r, m, err := crt64.ParseCongruence(arg)
		if err != nil {
			return crt64.System{}, fmt.Errorf("parsing %q: %w", arg, err)
		}
		sys.Add(r, m)
	}
	if sys.Len() == 0 && o.file == "" {
		logger.Debug("no congruences given, using worked example")
		sys = workedExample
	}
	return sys, nil
}

func runSolve(w io.Writer, sys crt64.System, canonical bool) error {
	logger.Debug("solving system", zap.Int("congruences", sys.Len()), zap.Int64s("moduli", sys.Moduli))
	if err := sys.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(w, "Solving congruence equations:")
	if sys.Len() > 0 {
		fmt.Fprintln(w, sys)
	}

	sol, err := sys.TrySolve()
	switch {
	case errors.Is(err, crt64.ErrNotCoprime):
		logger.Warn("no solution", zap.Error(err))
		fmt.Fprintln(w, "\nCould not find a solution. The moduli might not be pairwise coprime.")
		return nil
	case errors.Is(err, crt64.ErrOverflow):
		logger.Warn("no solution", zap.Error(err))
		fmt.Fprintln(w, "\nCould not find a solution. The computation overflowed int64.")
		return nil
	case err != nil:
		return err
	}

	x := sol.X
	if canonical {
		x = sol.Canonical()
	}
	logger.Debug("solved", zap.Int64("x", sol.X), zap.Int64("m", sol.M))
	fmt.Fprintf(w, "\nThe solution is: %d\n", x)
	return nil
}
