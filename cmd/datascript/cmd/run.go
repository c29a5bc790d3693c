package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fhoughton/datascript/pkg/lisp"
)

var runCmd = &cobra.Command{
	Use:   "run <file>...",
	Short: "Execute one or more DataScript files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFiles evaluates each file's top-level forms in a single shared
// environment, in order, per §6.1 — the same load semantics the "load"
// builtin uses for a single file, applied here across the whole argument
// list so earlier files' global definitions are visible to later ones.
func runFiles(_ *cobra.Command, args []string) error {
	env := lisp.NewEnvironment(nil)
	lisp.Register(env)

	errColor := color.New(color.FgRed, color.Bold)
	failed := false

	for _, path := range args {
		contents, err := os.ReadFile(path)
		if err != nil {
			errColor.Fprintf(os.Stderr, "could not read %s: %s\n", path, err)
			failed = true
			continue
		}

		root, perr := lisp.ParseProgram(string(contents), path)
		if perr != nil {
			errColor.Fprintf(os.Stderr, "%s: parse error: %s\n", path, perr)
			failed = true
			continue
		}

		program, ok := lisp.Read(root).(*lisp.Expression)
		if !ok {
			continue
		}

		for _, form := range program.Children {
			result := lisp.Eval(env, form)
			if result.Tag() == lisp.TagError {
				errColor.Fprintf(os.Stderr, "%s: %s\n", path, result.String())
				failed = true
			}
		}
	}

	if failed {
		return fmt.Errorf("one or more scripts reported errors")
	}
	return nil
}
