package lisp

import "testing"

func TestParseProgramAtoms(t *testing.T) {
	root, err := ParseProgram(`42 foo "bar"`, "")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 top-level nodes, got %d", len(root.Children))
	}
	if root.Children[0].Tag != "number" || root.Children[0].Contents != "42" {
		t.Errorf("node 0 = %+v", root.Children[0])
	}
	if root.Children[1].Tag != "symbol" || root.Children[1].Contents != "foo" {
		t.Errorf("node 1 = %+v", root.Children[1])
	}
	if root.Children[2].Tag != "string" {
		t.Errorf("node 2 = %+v", root.Children[2])
	}
}

func TestParseProgramSExpr(t *testing.T) {
	root, err := ParseProgram(`(+ 1 2)`, "")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(root.Children))
	}
	sexpr := root.Children[0]
	if sexpr.Tag != "sexpr" {
		t.Fatalf("top-level node tag = %q, want sexpr", sexpr.Tag)
	}
	// "(" regex, +, 1, 2, ")" regex
	if len(sexpr.Children) != 5 {
		t.Fatalf("sexpr children = %d, want 5", len(sexpr.Children))
	}
}

func TestParseProgramQExpr(t *testing.T) {
	root, err := ParseProgram(`{a b c}`, "")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if root.Children[0].Tag != "qexpr" {
		t.Fatalf("tag = %q, want qexpr", root.Children[0].Tag)
	}
}

func TestParseProgramNested(t *testing.T) {
	_, err := ParseProgram(`(def {x} (lambda {a} {+ a 1}))`, "")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
}

func TestParseProgramComment(t *testing.T) {
	root, err := ParseProgram("; a comment\n42", "")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(root.Children) != 1 || root.Children[0].Contents != "42" {
		t.Errorf("comment should be skipped entirely; got %+v", root.Children)
	}
}

func TestParseProgramUnclosed(t *testing.T) {
	_, err := ParseProgram(`(+ 1 2`, "")
	if err == nil {
		t.Fatal("expected a parse error for an unclosed sexpr")
	}
}

func TestParseProgramUnterminatedString(t *testing.T) {
	_, err := ParseProgram(`"unterminated`, "")
	if err == nil {
		t.Fatal("expected a parse error for an unterminated string")
	}
}

func TestParseProgramNegativeNumber(t *testing.T) {
	root, err := ParseProgram(`-5`, "")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if root.Children[0].Tag != "number" || root.Children[0].Contents != "-5" {
		t.Errorf("node = %+v", root.Children[0])
	}
}
