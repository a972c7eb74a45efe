// Package cli implements the ghgcalc command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/ghgcalc/internal/catalog"
)

// app carries state shared by every subcommand, filled in before each run.
type app struct {
	cfg     Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
}

// NewRootCmd creates the root ghgcalc command with all subcommands.
func NewRootCmd(ver string) *cobra.Command {
	a := &app{
		cfg:    DefaultConfig(),
		logger: zerolog.Nop(),
	}

	cmd := &cobra.Command{
		Use:   "ghgcalc",
		Short: "Greenhouse-gas emission accounting formulas",
		Long: `ghgcalc evaluates greenhouse-gas accounting formulas from national
industry guidelines (power, non-ferrous metals, flat glass, electronics,
petrochemicals, chemicals, mining, ceramics, civil aviation).

Each formula takes activity data and emission factors and returns a
CO2-equivalent quantity. Composition of totals is left to the caller.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("output", "", "output format: text or json (default $GHGCALC_OUTPUT or text)")
	cmd.AddCommand(newListCmd(a), newDescribeCmd(a), newEvalCmd(a))

	return cmd
}

const rootCmdExample = `  # List every formula of the mining guideline
  ghgcalc list --sector mining

  # Show the inputs of a formula
  ghgcalc describe power/transmission-loss

  # Evaluate a formula
  ghgcalc eval power/transmission-loss --in supplied_electricity=1000 --in sold_electricity=950 --in grid_factor=0.785

  # Evaluate a weighted fuel mix
  ghgcalc eval general/fuel-mix --series fuel_activity=10,20 --series fuel_factor=2,3`

// setup resolves configuration and builds the logger and catalog.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = ParseConfig(newLogger(cmd.ErrOrStderr(), zerolog.InfoLevel.String()))

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		a.cfg.LogLevel = zerolog.DebugLevel.String()
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		format, err := parseOutput(out)
		if err != nil {
			return err
		}
		a.cfg.Output = format
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel)

	c, err := catalog.New(catalog.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("building formula catalog: %w", err)
	}
	a.catalog = c
	return nil
}
