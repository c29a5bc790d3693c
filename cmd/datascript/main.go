// Command datascript is the command-line driver for the DataScript
// interpreter: an interactive REPL plus batch execution of script files.
package main

import (
	"fmt"
	"os"

	"github.com/fhoughton/datascript/cmd/datascript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
