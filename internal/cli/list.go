package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/ghgcalc/internal/catalog"
	"github.com/rshade/ghgcalc/internal/emission"
)

func newListCmd(a *app) *cobra.Command {
	var sector string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available formulas",
		Example: `  ghgcalc list
  ghgcalc list --sector glass --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formulas := a.catalog.List()
			if sector != "" {
				s, err := parseSector(a.catalog, sector)
				if err != nil {
					return err
				}
				formulas = a.catalog.BySector(s)
			}

			if a.cfg.Output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), formulas)
			}
			return renderList(cmd, formulas)
		},
	}

	cmd.Flags().StringVar(&sector, "sector", "", "only list formulas of this sector")
	return cmd
}

func parseSector(c *catalog.Catalog, s string) (emission.Sector, error) {
	known := c.Sectors()
	names := make([]string, 0, len(known))
	for _, k := range known {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
		names = append(names, string(k))
	}
	return "", fmt.Errorf("unknown sector %q: must be one of %s", s, strings.Join(names, ", "))
}

func renderList(cmd *cobra.Command, formulas []catalog.Formula) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tOUTPUT\tSUMMARY")
	for _, f := range formulas {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.ID, f.Output, f.Summary)
	}
	return tw.Flush()
}
