package cmd

import (
	"io"
	"os"

	"github.com/corey/planckt/internal/config"
)

// isTTY returns true if w is a file connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// resolveColor determines whether to use color output based on flags and TTY status.
// mode is the resolved --color value: "auto", "always", or "never".
// noColor is the --no-color boolean flag, which wins over mode.
func resolveColor(mode string, noColor bool, out io.Writer) bool {
	if noColor {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // auto
		return isTTY(out)
	}
}
