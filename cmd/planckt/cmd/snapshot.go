package cmd

import (
	"fmt"

	"github.com/corey/planckt"
	"github.com/corey/planckt/internal/adapters/bbolt"
	xlog "github.com/corey/planckt/internal/log"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(o *rootOptions) *cobra.Command {
	var modelFlag string

	cmd := &cobra.Command{
		Use:   "snapshot FILE",
		Short: "Save the embedded table to a bbolt snapshot",
		Long: "Writes the embedded table of a model into the bbolt file FILE, replacing\n" +
			"any earlier snapshot of that model. Query it with 'planckt get --snapshot FILE'.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := planckt.Builtin().Table(o.modelOr(modelFlag))
			if err != nil {
				return err
			}

			store, err := bbolt.NewStore(args[0])
			if err != nil {
				if isDBLockError(err) {
					return fmt.Errorf("%w\n%s", err, diagnoseDBLock(args[0]))
				}
				return err
			}
			defer store.Close()

			if err := store.SaveTable(tbl); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			meta := tbl.Meta()
			o.logger.Info().
				Str(xlog.FieldModel, meta.Model).
				Str(xlog.FieldPath, args[0]).
				Int(xlog.FieldCount, tbl.Len()).
				Msg("snapshot saved")

			c := palette(o.useColor)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d parameters, %s) → %s\n",
				c.paint(colorGreen, "✓"), meta.Model, tbl.Len(), meta.Version, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "Cosmological model (default from config, lcdm)")
	return cmd
}
