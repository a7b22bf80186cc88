package cmd

import (
	"fmt"

	"github.com/corey/planckt"
	"github.com/corey/planckt/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tool and data versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c := palette(o.useColor)
			fmt.Fprintf(out, "%s %s (commit %s, built %s)\n",
				c.paint(colorBold, "planckt"), version.Version, version.Commit, version.Date)
			for _, id := range planckt.Builtin().Models() {
				tbl, err := planckt.Builtin().Table(id)
				if err != nil {
					return err
				}
				meta := tbl.Meta()
				fmt.Fprintf(out, "  %s  data %s  %s\n",
					c.paint(colorCyan, meta.Model), meta.Version, c.paint(colorGray, meta.Source))
			}
			return nil
		},
	}
}
