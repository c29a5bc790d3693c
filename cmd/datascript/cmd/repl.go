package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fhoughton/datascript/pkg/lisp"
	"github.com/fhoughton/datascript/pkg/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive DataScript REPL",
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(_ *cobra.Command, _ []string) error {
	env := lisp.NewEnvironment(nil)
	lisp.Register(env)
	return repl.Run(env, !noColor)
}
