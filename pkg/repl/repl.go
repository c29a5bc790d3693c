// Package repl implements the interactive Read-Eval-Print Loop driver
// (§6.4): a readline-backed line editor with balanced-paren multi-line
// input and colorized result/error output.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/fhoughton/datascript/pkg/lisp"
)

// Run starts the REPL against env until the user exits (EOF, "quit", or
// "exit"). enableColors disables fatih/color output for piped/test use.
func Run(env *lisp.Environment, enableColors bool) error {
	if !enableColors {
		color.NoColor = true
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ds> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting line editor: %w", err)
	}
	defer rl.Close()

	printWelcome(enableColors)
	formatter := NewErrorFormatter()

	for {
		input, err := readCompleteExpression(rl, enableColors)
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				break
			}
			fmt.Printf("input error: %v\n", err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		result := evalText(env, input)
		if result.Tag() == lisp.TagError {
			fmt.Println(formatter.Format(result.(*lisp.Error)))
			continue
		}

		if enableColors {
			resultColor := color.New(color.FgGreen)
			fmt.Printf("=> %s\n", resultColor.Sprint(result.String()))
		} else {
			fmt.Printf("=> %s\n", result.String())
		}
	}

	printGoodbye(enableColors)
	return nil
}

// evalText parses, reads and evaluates input as a single S-expression,
// per §4.1/§4.2.1 and the original's val_eval(e, val_read(r.output))
// (main.c:1480): the parsed root is itself an SExpression whose children
// are the top-level forms, so it is reduced as one application, not
// iterated form-by-form. A root with a single top-level form still
// evaluates to that form's value, per the single-child reduction rule.
func evalText(env *lisp.Environment, input string) lisp.Value {
	root, err := lisp.ParseProgram(input, "")
	if err != nil {
		return lisp.NewError("%s", err.Error())
	}
	return lisp.Eval(env, lisp.Read(root))
}

func historyFilePath() string {
	return "/tmp/datascript_history"
}

func printWelcome(enableColors bool) {
	if !enableColors {
		fmt.Println("DataScript")
		fmt.Println("Type expressions to evaluate them, or 'quit' to exit.")
		fmt.Println("Multi-line expressions are supported while parentheses are unbalanced.")
		fmt.Println()
		return
	}
	title := color.New(color.FgCyan, color.Bold)
	instruction := color.New(color.FgYellow)
	title.Println("DataScript")
	instruction.Println("Type expressions to evaluate them, or 'quit' to exit.")
	instruction.Println("Multi-line expressions are supported while parentheses are unbalanced.")
	fmt.Println()
}

func printGoodbye(enableColors bool) {
	if !enableColors {
		fmt.Println("Goodbye!")
		return
	}
	color.New(color.FgMagenta, color.Bold).Println("Goodbye!")
}

// readCompleteExpression reads lines from rl until parentheses/braces
// balance to zero and at least one non-comment, non-whitespace token has
// been seen, or until quit/exit/EOF.
func readCompleteExpression(rl *readline.Instance, enableColors bool) (string, error) {
	var lines []string
	depth := 0
	inString := false
	escaped := false
	first := true

	primary := color.New(color.FgBlue, color.Bold)
	continuation := color.New(color.FgHiBlack)

	for {
		if first {
			if enableColors {
				rl.SetPrompt(primary.Sprint("ds> "))
			} else {
				rl.SetPrompt("ds> ")
			}
			first = false
		} else {
			if enableColors {
				rl.SetPrompt(continuation.Sprint("... "))
			} else {
				rl.SetPrompt("... ")
			}
		}

		line, err := rl.Readline()
		if err != nil {
			return strings.Join(lines, "\n"), err
		}
		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if len(lines) == 1 && (trimmed == "quit" || trimmed == "exit") {
			return trimmed, nil
		}

		for _, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case '(', '{':
				if !inString {
					depth++
				}
			case ')', '}':
				if !inString {
					depth--
				}
			}
		}

		joined := strings.Join(lines, "\n")
		if depth <= 0 && containsExpression(joined) {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}

// containsExpression reports whether input has any non-comment,
// non-whitespace content.
func containsExpression(input string) bool {
	for _, line := range strings.Split(input, "\n") {
		inString := false
		escaped := false
		cut := len(line)
		for i, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case ';':
				if !inString {
					cut = i
				}
			}
			if cut != len(line) {
				break
			}
		}
		if strings.TrimSpace(line[:cut]) != "" {
			return true
		}
	}
	return false
}
