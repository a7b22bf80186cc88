package cmd

import (
	"fmt"

	"github.com/corey/planckt"
	"github.com/spf13/cobra"
)

func newVariantsCmd(o *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the analysis-variant keys",
		Long:  "Prints the six analysis-variant keys accepted by 'planckt get', in canonical order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			variants := planckt.Variants()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), variants)
			}
			c := palette(o.useColor)
			for _, v := range variants {
				fmt.Fprintln(cmd.OutOrStdout(), c.paint(colorMagenta, v))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
