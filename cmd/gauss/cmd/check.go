// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gauss/cell"
	"github.com/spf13/cobra"
)

// ErrInvalidCells is returned by check when at least one cell is rejected.
var ErrInvalidCells = errors.New("gauss: invalid cells")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <cell>...",
		Short: "Validate cells the way the matrix editor does",
		Long: `check reports for each cell whether it is acceptable input and its exact
value. Partial input such as "-" or "3/" is accepted while typing but has no
value yet. Put "--" before cells that start with a minus sign.`,
		Example: `  gauss check 1/3 0.25 "" x
  gauss check -- -3/4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := a.printers(cmd)
			invalid := 0
			for _, s := range args {
				valid := cell.IsValidInput(s)
				var value string
				var perr error
				if valid {
					r, err := cell.Parse(s)
					if err != nil {
						perr = err
					} else {
						value = r.RatString()
					}
				} else {
					invalid++
				}
				if err := out.Check(s, valid, value, perr); err != nil {
					return err
				}
			}
			a.log.Debug("cells checked", "count", len(args), "invalid", invalid)
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidCells, invalid, len(args))
			}

			return nil
		},
	}
}
