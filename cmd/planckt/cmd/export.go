package cmd

import (
	"github.com/corey/planckt/internal/export"
	xlog "github.com/corey/planckt/internal/log"
	"github.com/spf13/cobra"
)

func newExportCmd(o *rootOptions) *cobra.Command {
	var (
		modelFlag string
		snapshot  string
		format    string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the parameter table",
		Long: "Writes the whole table as YAML or JSON. The YAML form passes\n" +
			"'planckt check'. With --out the file is replaced atomically.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("snapshot") {
				snapshot = o.cfg.Snapshot
			}
			tbl, err := o.tableFor(modelFlag, snapshot)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				return export.Write(cmd.OutOrStdout(), tbl, f)
			}
			if err := export.WriteFile(outPath, tbl, f); err != nil {
				return err
			}
			o.logger.Info().
				Str(xlog.FieldModel, tbl.Meta().Model).
				Str(xlog.FieldFormat, string(f)).
				Str(xlog.FieldPath, outPath).
				Msg("table exported")
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&modelFlag, "model", "", "Cosmological model (default from config, lcdm)")
	fl.StringVar(&snapshot, "snapshot", "", "Export a bbolt snapshot instead of the embedded table")
	fl.StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	fl.StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}
