package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/planckt"
	"github.com/spf13/cobra"
)

// listRow is the JSON form of one list entry.
type listRow struct {
	Name     string   `json:"name"`
	Units    string   `json:"units"`
	Analyses []string `json:"analyses"`
}

func newListCmd(o *rootOptions) *cobra.Command {
	var (
		modelFlag string
		snapshot  string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all parameters",
		Long:  "Lists every parameter of the table in publication order with its units and variant count.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("snapshot") {
				snapshot = o.cfg.Snapshot
			}
			tbl, err := o.tableFor(modelFlag, snapshot)
			if err != nil {
				return err
			}

			rows, err := listRows(tbl)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatList(tbl, rows, palette(o.useColor)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&modelFlag, "model", "", "Cosmological model (default from config, lcdm)")
	f.StringVar(&snapshot, "snapshot", "", "List a bbolt snapshot instead of the embedded table")
	f.BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func listRows(tbl *planckt.Table) ([]listRow, error) {
	rows := make([]listRow, 0, tbl.Len())
	for _, name := range tbl.Names() {
		units, err := tbl.Units(name)
		if err != nil {
			return nil, err
		}
		analyses, err := tbl.Analyses(name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, listRow{Name: name, Units: units, Analyses: analyses})
	}
	return rows, nil
}

// formatList renders the table overview:
//
//	⚡ lcdm │ 30 parameters │ 18.12.01
//	  Omega_b__h2          adimensional     6 variants
func formatList(tbl *planckt.Table, rows []listRow, c palette) string {
	meta := tbl.Meta()
	width, unitWidth := 0, 0
	for _, r := range rows {
		width = max(width, len(r.Name))
		unitWidth = max(unitWidth, len(r.Units))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s │ %d parameters │ %s\n",
		c.paint(colorBold, "⚡ "+meta.Model), len(rows), meta.Version))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			c.paint(colorCyan, fmt.Sprintf("%-*s", width, r.Name)),
			fmt.Sprintf("%-*s", unitWidth, r.Units),
			c.paint(colorGray, fmt.Sprintf("%d variants", len(r.Analyses)))))
	}
	return sb.String()
}
