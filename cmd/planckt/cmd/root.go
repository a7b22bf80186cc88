package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/corey/planckt/internal/config"
	xlog "github.com/corey/planckt/internal/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootOptions carries the global flags and the settings resolved from them.
type rootOptions struct {
	configPath string
	logLevel   string
	color      string
	noColor    bool

	cfg      config.Config
	logger   zerolog.Logger
	useColor bool
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:   "planckt",
		Short: "Planck 2018 cosmological parameters",
		Long: "Look up base-LCDM parameters from table 2 of Planck 2018 results VI\n" +
			"(arXiv:1807.06209): central value, 68% interval and units per analysis.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.resolve(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML config file")
	f.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&o.color, "color", "", "Color output: auto, always, never")
	f.BoolVar(&o.noColor, "no-color", false, "Disable color output")

	root.AddCommand(newGetCmd(o))
	root.AddCommand(newListCmd(o))
	root.AddCommand(newShowCmd(o))
	root.AddCommand(newVariantsCmd(o))
	root.AddCommand(newCheckCmd(o))
	root.AddCommand(newExportCmd(o))
	root.AddCommand(newSnapshotCmd(o))
	root.AddCommand(newVersionCmd(o))
	return root
}

// resolve layers flags over the config file and environment, then sets up
// logging on the command's stderr.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	lc := xlog.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()}
	xlog.Configure(lc)
	o.logger = xlog.New(lc).With().Str(xlog.FieldComponent, "cli").Logger()
	o.useColor = resolveColor(cfg.Color, o.noColor, cmd.OutOrStdout())

	cfg.Log(o.logger)
	return nil
}

// modelOr returns flagValue when set, otherwise the configured model.
func (o *rootOptions) modelOr(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return o.cfg.Model
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context, which ends check --watch.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}
