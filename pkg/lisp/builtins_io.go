package lisp

import (
	"bufio"
	"fmt"
	"os"
)

// registerIO binds the output and file builtins: print, println, read,
// load.
func registerIO(env *Environment) {
	bind(env, "print", builtinPrint)
	bind(env, "println", builtinPrintln)
	bind(env, "read", builtinRead)
	bind(env, "load", builtinLoad)
}

// builtinPrint implements print, §4.5: print every argument's textual
// form separated by spaces, with no trailing newline.
func builtinPrint(env *Environment, args *Expression) Value {
	for _, c := range args.Children {
		fmt.Print(c.String(), " ")
	}
	return NewSExpression()
}

// builtinPrintln implements println, §4.5: like print, followed by a
// newline.
func builtinPrintln(env *Environment, args *Expression) Value {
	for _, c := range args.Children {
		fmt.Print(c.String(), " ")
	}
	fmt.Println()
	return NewSExpression()
}

// stdinReader is shared across calls to read so a multi-line program
// reading several lines doesn't lose buffered input between calls.
var stdinReader = bufio.NewReader(os.Stdin)

// builtinRead implements read, §4.5: print a prompt string, then read one
// line of input as a String value.
func builtinRead(env *Environment, args *Expression) Value {
	if err := assertNum("read", args, 1); err != nil {
		return err
	}
	if err := assertType("read", args, 0, TagString); err != nil {
		return err
	}

	prompt := args.Children[0].(*String)
	fmt.Print(prompt.Text)

	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return NewString("")
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return NewString(line)
}

// builtinLoad implements load, §4.5 and §9's re-entry design: parse and
// read the named file, then evaluate each top-level form in order.
// Evaluation errors are printed as encountered rather than aborting the
// load, matching the original's behavior; a parse failure instead yields
// a single error value describing the failure.
func builtinLoad(env *Environment, args *Expression) Value {
	if err := assertNum("load", args, 1); err != nil {
		return err
	}
	if err := assertType("load", args, 0, TagString); err != nil {
		return err
	}

	path := args.Children[0].(*String).Text
	contents, err := os.ReadFile(path)
	if err != nil {
		return NewError("could not load Library %s", err.Error())
	}

	root, perr := ParseProgram(string(contents), path)
	if perr != nil {
		return NewError("could not load Library %s", perr.Error())
	}

	program := Read(root)
	expr, ok := program.(*Expression)
	if !ok {
		return NewSExpression()
	}

	for _, form := range expr.Children {
		result := Eval(env, form)
		if result.Tag() == TagError {
			fmt.Println(result.String())
		}
	}
	return NewSExpression()
}
