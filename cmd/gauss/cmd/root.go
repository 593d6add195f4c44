// SPDX-License-Identifier: MIT

// Package cmd holds the cobra commands of the gauss binary.
package cmd

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/katalvlaran/gauss/config"
	"github.com/katalvlaran/gauss/render"
	"github.com/spf13/cobra"
)

// EnvConfig names the environment variable consulted when --config is empty.
const EnvConfig = "GAUSS_CONFIG"

// DefaultConfigFile is read from the working directory when neither --config
// nor GAUSS_CONFIG is set. A missing file means built-in defaults.
const DefaultConfigFile = "gauss.toml"

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	plain   bool

	cfg config.Config
	log *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gauss",
		Short: "Solve linear systems by Gaussian elimination",
		Long: `gauss solves square linear systems a·x = b with partial pivoting and
prints every row swap and row update, followed by the solution in decimal
and fraction form.

Cells are numbers ("2", "-0.5", "1e3") or fractions ("1/3"); an empty cell
is zero.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+EnvConfig+" or ./"+DefaultConfigFile+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().BoolVar(&a.plain, "plain", false, "plain output without styling")

	root.AddCommand(newSolveCmd(a), newCheckCmd(a))

	return root
}

// Execute runs the command line of the current process.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the configuration and builds the run logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.cfgFile
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		_ = render.New(cmd.ErrOrStderr(), a.plain).Error(err)

		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	a.log = cfg.Log.Logger(cmd.ErrOrStderr()).With("run_id", uuid.New().String())
	a.log.Debug("configuration loaded", "path", path, "exact", cfg.Solver.Exact)

	return nil
}

func (a *app) printers(cmd *cobra.Command) (out, errOut *render.Printer) {
	return render.New(cmd.OutOrStdout(), a.plain), render.New(cmd.ErrOrStderr(), a.plain)
}
