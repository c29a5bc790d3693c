package repl

import (
	"strings"

	"github.com/fatih/color"

	"github.com/fhoughton/datascript/pkg/lisp"
)

// errorCategory buckets an Error value's message for color-coding,
// adapted from the teacher's categorizeError but working directly off
// the catalog of messages produced in pkg/lisp/builtins_*.go rather than
// a Go error chain.
type errorCategory int

const (
	categoryParse errorCategory = iota
	categoryArity
	categoryType
	categoryUnbound
	categoryArithmetic
	categoryIndex
	categoryGeneral
)

// ErrorFormatter renders an *lisp.Error with a category label and color,
// mirroring the teacher's ErrorFormatter but over first-class Error
// values instead of Go errors.
type ErrorFormatter struct {
	colors map[errorCategory]*color.Color
	prefix *color.Color
}

func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		colors: map[errorCategory]*color.Color{
			categoryParse:      color.New(color.FgRed, color.Bold),
			categoryArity:      color.New(color.FgMagenta, color.Bold),
			categoryType:       color.New(color.FgCyan, color.Bold),
			categoryUnbound:    color.New(color.FgYellow, color.Bold),
			categoryArithmetic: color.New(color.FgBlue, color.Bold),
			categoryIndex:      color.New(color.FgBlue, color.Bold),
			categoryGeneral:    color.New(color.FgWhite, color.Bold),
		},
		prefix: color.New(color.FgRed, color.Bold),
	}
}

func categorize(msg string) errorCategory {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "parse error"):
		return categoryParse
	case strings.Contains(lower, "unbound symbol"):
		return categoryUnbound
	case strings.Contains(lower, "incorrect number of arguments"), strings.Contains(lower, "too many arguments"), strings.Contains(lower, "symbols and values"):
		return categoryArity
	case strings.Contains(lower, "incorrect type"), strings.Contains(lower, "non-symbol"):
		return categoryType
	case strings.Contains(lower, "division by zero"):
		return categoryArithmetic
	case strings.Contains(lower, "invalid index"), strings.Contains(lower, "passed {}"):
		return categoryIndex
	default:
		return categoryGeneral
	}
}

func label(c errorCategory) string {
	switch c {
	case categoryParse:
		return "Parse Error"
	case categoryArity:
		return "Arity Error"
	case categoryType:
		return "Type Error"
	case categoryUnbound:
		return "Unbound Symbol"
	case categoryArithmetic:
		return "Arithmetic Error"
	case categoryIndex:
		return "Index Error"
	default:
		return "Error"
	}
}

// Format renders e with a category label and color, in the style
// "Label: message".
func (f *ErrorFormatter) Format(e *lisp.Error) string {
	if e == nil {
		return ""
	}
	cat := categorize(e.Message)
	body := f.colors[cat]
	prefix := f.prefix.Sprintf("%s:", label(cat))
	return prefix + body.Sprintf(" %s", e.Message)
}
