package repl

import (
	"strings"
	"testing"

	"github.com/fhoughton/datascript/pkg/lisp"
)

func TestErrorFormatterCategorizes(t *testing.T) {
	f := NewErrorFormatter()

	cases := map[string]string{
		"unbound Symbol 'x'":                               "Unbound Symbol",
		"function '+' passed incorrect number of arguments; got 1, expected 2.": "Arity Error",
		"function 'head' passed incorrect type for argument 0; got number, expected qexpression.": "Type Error",
		"Division By Zero.": "Arithmetic Error",
		"invalid index":      "Index Error",
		"could not load Library oops": "Error",
	}

	for msg, wantLabel := range cases {
		out := f.Format(lisp.NewError("%s", msg))
		if !strings.Contains(out, wantLabel) {
			t.Errorf("Format(%q) = %q, want it to contain label %q", msg, out, wantLabel)
		}
		if !strings.Contains(out, msg) {
			t.Errorf("Format(%q) = %q, want it to contain the original message", msg, out)
		}
	}
}

func TestErrorFormatterNil(t *testing.T) {
	f := NewErrorFormatter()
	if got := f.Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty string", got)
	}
}
