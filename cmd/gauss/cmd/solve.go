// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"

	"github.com/katalvlaran/gauss/cell"
	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/system"
	"github.com/spf13/cobra"
)

// ErrNoSystem is returned when neither --file nor --a/--b is given.
var ErrNoSystem = errors.New("gauss: no system given: use --file or --a with --b")

type solveFlags struct {
	file           string
	a, b           string
	exact          bool
	noTrace        bool
	pivotTolerance float64
	maxDenominator int64
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve a system and print the trace and solution",
		Example: `  gauss solve --a "2,1;1,3" --b "3;5"
  gauss solve --file system.yaml --exact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, f)
		},
	}
	fl := c.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "YAML or JSON system file")
	fl.StringVar(&f.a, "a", "", `coefficient matrix, rows split by ';' and cells by ',' ("2,1;1,3")`)
	fl.StringVar(&f.b, "b", "", `constant vector, one cell per row ("3;5")`)
	fl.BoolVar(&f.exact, "exact", false, "eliminate with exact fractions")
	fl.BoolVar(&f.noTrace, "no-trace", false, "print only the solution")
	fl.Float64Var(&f.pivotTolerance, "pivot-tolerance", 0, "treat pivots with |p| <= tolerance as zero")
	fl.Int64Var(&f.maxDenominator, "max-denominator", 0, "largest denominator of fractions recovered in float mode")
	c.MarkFlagsMutuallyExclusive("file", "a")
	c.MarkFlagsMutuallyExclusive("file", "b")
	c.MarkFlagsRequiredTogether("a", "b")

	return c
}

// applyFlags overrides configuration values with explicitly set flags.
func (a *app) applyFlags(cmd *cobra.Command, f *solveFlags) {
	fl := cmd.Flags()
	if fl.Changed("exact") {
		a.cfg.Solver.Exact = f.exact
	}
	if fl.Changed("no-trace") {
		a.cfg.Solver.Trace = !f.noTrace
	}
	if fl.Changed("pivot-tolerance") {
		a.cfg.Solver.PivotTolerance = f.pivotTolerance
	}
	if fl.Changed("max-denominator") {
		a.cfg.Solver.MaxDenominator = f.maxDenominator
	}
}

func (a *app) loadSystem(f *solveFlags) (*system.System, error) {
	switch {
	case f.file != "":
		return system.Load(f.file)
	case f.a != "":
		am, err := cell.ParseRows(f.a)
		if err != nil {
			return nil, labelled("a", err)
		}
		bm, err := cell.ParseRows(f.b)
		if err != nil {
			return nil, labelled("b", err)
		}

		return &system.System{A: am, B: bm}, nil
	default:
		return nil, ErrNoSystem
	}
}

func labelled(matrix string, err error) error {
	var pe *cell.ParseError
	if errors.As(err, &pe) {
		pe.Matrix = matrix
	}

	return err
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	out, errOut := a.printers(cmd)
	a.applyFlags(cmd, f)
	if err := a.cfg.Validate(); err != nil {
		_ = errOut.Error(err)

		return err
	}

	sys, err := a.loadSystem(f)
	if err != nil {
		_ = errOut.Error(err)

		return err
	}
	log := a.log.With("system", sys.Name)
	opts := a.cfg.SolverOptions(log)

	var res *gauss.Result
	if a.cfg.Solver.Exact {
		res, err = gauss.SolveRational(sys.A, sys.B, opts...)
	} else {
		res, err = gauss.SolveRows(cell.Floats(sys.A), cell.Floats(sys.B), opts...)
	}
	if perr := out.Result(res); perr != nil {
		return perr
	}
	if err != nil {
		_ = errOut.Error(err)

		return err
	}

	return nil
}
