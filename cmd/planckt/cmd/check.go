package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/corey/planckt/internal/adapters/fsnotify"
	"github.com/corey/planckt/internal/domain/table"
	xlog "github.com/corey/planckt/internal/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkWorkers bounds how many files are parsed at once.
const checkWorkers = 8

// checkResult is the outcome of validating one table file.
type checkResult struct {
	path   string
	params int
	err    error
}

func newCheckCmd(o *rootOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate table files",
		Long: "Parses each YAML table file strictly and validates it: known variants,\n" +
			"unique names, units present, finite values and non-negative limits.\n" +
			"With --watch, re-validates a file whenever it changes until interrupted;\n" +
			"the exit status still reports the initial check.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c := palette(o.useColor)

			results := checkFiles(cmd.Context(), args)
			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
				}
				fmt.Fprint(out, formatCheck(r, c))
			}

			if watch {
				if err := o.watchFiles(cmd.Context(), out, args, c); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d table files invalid", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-check files when they change")
	return cmd
}

// checkFiles validates paths concurrently. Results keep the order of paths.
func checkFiles(ctx context.Context, paths []string) []checkResult {
	results := make([]checkResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(checkWorkers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = checkResult{path: path, err: err}
				return nil
			}
			results[i] = checkFile(path)
			return nil
		})
	}
	_ = g.Wait() // workers record failures in results
	return results
}

func checkFile(path string) checkResult {
	t, err := table.LoadFile(path)
	if err != nil {
		return checkResult{path: path, err: err}
	}
	return checkResult{path: path, params: t.Len()}
}

// watchFiles re-checks each changed file until ctx is cancelled.
func (o *rootOptions) watchFiles(ctx context.Context, out io.Writer, paths []string, c palette) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	changed := make(chan string, 16)
	err = w.Watch(paths, func(path string) {
		enqueueChange(changed, path, o.logger)
	})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	o.logger.Info().Int(xlog.FieldCount, len(paths)).Msg("watching table files")

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changed:
			r := checkFile(path)
			o.logger.Debug().Str(xlog.FieldPath, path).Err(r.err).Msg("table file changed")
			fmt.Fprint(out, formatCheck(r, c))
		}
	}
}

// enqueueChange queues path for a re-check, dropping it when the queue is full.
func enqueueChange(changed chan<- string, path string, logger zerolog.Logger) bool {
	select {
	case changed <- path:
		return true
	default:
		logger.Debug().Str(xlog.FieldPath, path).Msg("re-check queue full, change dropped")
		return false
	}
}

// formatCheck renders one result line:
//
//	✓ tables/lcdm.yaml  30 parameters
//	✗ broken.yaml  parse broken.yaml: invalid table: ...
func formatCheck(r checkResult, c palette) string {
	if r.err != nil {
		return fmt.Sprintf("%s %s  %v\n", c.paint(colorRed, "✗"), r.path, r.err)
	}
	return fmt.Sprintf("%s %s  %d parameters\n", c.paint(colorGreen, "✓"), r.path, r.params)
}
