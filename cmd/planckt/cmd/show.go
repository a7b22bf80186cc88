package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/planckt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newShowCmd(o *rootOptions) *cobra.Command {
	var (
		modelFlag string
		snapshot  string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show every analysis variant of one parameter",
		Long: "Prints one row per analysis variant that defines NAME. Asymmetric\n" +
			"intervals are flagged in the output instead of logged.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("snapshot") {
				snapshot = o.cfg.Snapshot
			}
			id := o.modelOr(modelFlag)
			reg, err := openRegistry(snapshot, id)
			if err != nil {
				return err
			}
			params, err := showParams(reg, id, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), params)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatShow(params, palette(o.useColor)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&modelFlag, "model", "", "Cosmological model (default from config, lcdm)")
	f.StringVar(&snapshot, "snapshot", "", "Read a bbolt snapshot instead of the embedded table")
	f.BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// showParams looks up name under every variant it defines, in canonical order.
func showParams(reg *planckt.Registry, model, name string) ([]*planckt.Param, error) {
	tbl, err := reg.Table(model)
	if err != nil {
		return nil, err
	}
	analyses, err := tbl.Analyses(name)
	if err != nil {
		return nil, err
	}

	params := make([]*planckt.Param, 0, len(analyses))
	for _, a := range analyses {
		p, err := planckt.New(name, a,
			planckt.WithModel(model),
			planckt.WithRegistry(reg),
			planckt.WithLogger(zerolog.Nop()),
		)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

// formatShow renders a parameter header and one row per variant:
//
//	⚡ H_0 │ km/s/Mpc │ 6 variants
//	  TT+lowE                      66.88 ±0.92
func formatShow(params []*planckt.Param, c palette) string {
	if len(params) == 0 {
		return ""
	}
	width := 0
	for _, p := range params {
		width = max(width, len(p.Analysis))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s │ %s │ %d variants\n",
		c.paint(colorBold, "⚡ "+params[0].Name), params[0].Units, len(params)))
	for _, p := range params {
		sb.WriteString(formatVariantRow(p, width, c))
	}
	return sb.String()
}
