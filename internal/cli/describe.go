package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/ghgcalc/internal/catalog"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "describe ID",
		Short:   "Show the inputs and output of a formula",
		Example: `  ghgcalc describe mining/fuel-combustion`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			if a.cfg.Output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), f)
			}
			return renderFormula(cmd, f)
		},
	}
}

func renderFormula(cmd *cobra.Command, f catalog.Formula) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, catalog.Describe(f))
	fmt.Fprintf(out, "  %s\n\n", f.Summary)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  PARAM\tKIND\tUNIT\tSUMMARY")
	for _, p := range f.Params {
		unit := p.Unit
		if unit == "" {
			unit = "-"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", p.Name, p.Kind, unit, p.Summary)
	}
	return tw.Flush()
}
