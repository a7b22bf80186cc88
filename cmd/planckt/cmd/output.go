package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/corey/planckt"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorRed     = "\033[31m"
	colorGray    = "\033[90m"
)

// palette wraps text in ANSI codes, or returns it unchanged when color is off.
type palette bool

func (p palette) paint(code, s string) string {
	if !p {
		return s
	}
	return code + s + colorReset
}

// formatParam renders one lookup result:
//
//	H_0  TT,TE,EE+lowE+lensing+BAO  67.66 ±0.42 km/s/Mpc
//	tau  TT,TE,EE+lowE  0.0544 -0.0081/+0.007 adimensional  (asymmetric)
func formatParam(p *planckt.Param, c palette) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  %s  %s %s %s",
		c.paint(colorBold, p.Name),
		c.paint(colorGray, p.Analysis),
		formatFloat(p.Value),
		c.paint(colorCyan, p.Limit68.String()),
		p.Units))
	if p.Asymmetric() {
		sb.WriteString("  " + c.paint(colorYellow, "(asymmetric)"))
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatVariantRow renders one row of show output, aligned on the variant column.
func formatVariantRow(p *planckt.Param, width int, c palette) string {
	row := fmt.Sprintf("  %s  %s %s",
		c.paint(colorMagenta, fmt.Sprintf("%-*s", width, p.Analysis)),
		formatFloat(p.Value),
		c.paint(colorCyan, p.Limit68.String()))
	if p.Asymmetric() {
		row += "  " + c.paint(colorYellow, "(asymmetric)")
	}
	return row + "\n"
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
