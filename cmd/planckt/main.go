// planckt prints Planck 2018 base-LCDM cosmological parameters.
// Single binary, embedded table: look up one value, list the table, export
// it, or snapshot it to a bbolt file.
package main

import (
	"fmt"
	"os"

	"github.com/corey/planckt/cmd/planckt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
