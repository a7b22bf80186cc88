package cmd

import (
	"fmt"

	"github.com/corey/planckt"
	"github.com/spf13/cobra"
)

func newGetCmd(o *rootOptions) *cobra.Command {
	var (
		modelFlag string
		snapshot  string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "get NAME ANALYSIS",
		Short: "Look up one parameter",
		Long: "Prints the value, 68% interval and units of parameter NAME under\n" +
			"analysis variant ANALYSIS (see 'planckt variants').\n" +
			"Asymmetric intervals print as -lower/+upper and log a warning.",
		Example: "  planckt get H_0 'TT,TE,EE+lowE+lensing+BAO'\n" +
			"  planckt get tau 'TT,TE,EE+lowE' --json",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("snapshot") {
				snapshot = o.cfg.Snapshot
			}
			id := o.modelOr(modelFlag)
			reg, err := openRegistry(snapshot, id)
			if err != nil {
				return err
			}

			p, err := planckt.New(args[0], args[1],
				planckt.WithModel(id),
				planckt.WithRegistry(reg),
				planckt.WithLogger(o.logger),
			)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatParam(p, palette(o.useColor)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&modelFlag, "model", "", "Cosmological model (default from config, lcdm)")
	f.StringVar(&snapshot, "snapshot", "", "Query a bbolt snapshot instead of the embedded table")
	f.BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
