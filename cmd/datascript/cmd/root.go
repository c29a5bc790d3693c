package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set at release time; it has no dev-build significance here.
var Version = "0.1.0-dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "datascript",
	Short: "DataScript interpreter",
	Long: `datascript is a Lisp-family scripting language: S-expressions for
evaluation, Q-expressions for data, lambdas with partial application, and
a small standard library of arithmetic, string, and list builtins.

Run with no arguments to start an interactive REPL, or use "run" to
execute one or more script files.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized REPL and error output")
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}
