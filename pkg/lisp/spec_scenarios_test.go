package lisp

import "testing"

// These drive §8's concrete scenarios (E1-E10) verbatim, in the unwrapped
// prefix form the spec writes them in (no outer paren around the whole
// line). The root a parser produces for such input is itself an
// SExpression with more than one child, so it must be reduced as a single
// application per §4.2.1 rather than split into per-form evaluation; see
// evalSource's doc comment.

func TestScenarioE1Sum(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "+ 1 2 3")
	if n, ok := got.(Number); !ok || n != 6 {
		t.Fatalf("E1: + 1 2 3 = %v, want 6", got)
	}
}

func TestScenarioE2GlobalDefine(t *testing.T) {
	env := newTestEnv()
	defined := evalSource(t, env, "= {x} 10")
	if expr, ok := defined.(*Expression); !ok || !expr.IsEmpty() {
		t.Fatalf("E2: = {x} 10 = %v, want ()", defined)
	}
	got := evalSource(t, env, "+ x 5")
	if n, ok := got.(Number); !ok || n != 15 {
		t.Fatalf("E2: + x 5 = %v, want 15", got)
	}
}

func TestScenarioE3LambdaDirectCall(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "(lambda {x y} {+ x y}) 3 4")
	if n, ok := got.(Number); !ok || n != 7 {
		t.Fatalf("E3: (lambda {x y} {+ x y}) 3 4 = %v, want 7", got)
	}
}

func TestScenarioE4Currying(t *testing.T) {
	env := newTestEnv()
	defined := evalSource(t, env, "= {add} (lambda {x y} {+ x y})")
	if expr, ok := defined.(*Expression); !ok || !expr.IsEmpty() {
		t.Fatalf("E4: = {add} ... = %v, want ()", defined)
	}
	got := evalSource(t, env, "(add 3) 4")
	if n, ok := got.(Number); !ok || n != 7 {
		t.Fatalf("E4: (add 3) 4 = %v, want 7", got)
	}
}

func TestScenarioE5If(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "if (> 2 1) {+ 10 1} {+ 20 1}")
	if n, ok := got.(Number); !ok || n != 11 {
		t.Fatalf("E5: if (> 2 1) {+ 10 1} {+ 20 1} = %v, want 11", got)
	}
}

func TestScenarioE6Head(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "head {1 2 3}")
	expr, ok := got.(*Expression)
	if !ok || expr.Tag() != TagQExpression || len(expr.Children) != 1 || expr.Children[0].(Number) != 1 {
		t.Fatalf("E6: head {1 2 3} = %v, want {1}", got)
	}
}

func TestScenarioE7EvalJoin(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "eval (join {+} {1} {2 3})")
	if n, ok := got.(Number); !ok || n != 6 {
		t.Fatalf("E7: eval (join {+} {1} {2 3}) = %v, want 6", got)
	}
}

func TestScenarioE8StringConcat(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, `+ "foo" "bar"`)
	s, ok := got.(*String)
	if !ok || s.Text != "foobar" {
		t.Fatalf(`E8: + "foo" "bar" = %v, want "foobar"`, got)
	}
}

func TestScenarioE9DivisionByZero(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "/ 10 0")
	e, ok := got.(*Error)
	if !ok || e.Message != "Division By Zero." {
		t.Fatalf("E9: / 10 0 = %v, want error: Division By Zero.", got)
	}
}

func TestScenarioE10VariadicRest(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "(lambda {x & rest} {rest}) 1 2 3 4")
	expr, ok := got.(*Expression)
	if !ok || expr.Tag() != TagQExpression || len(expr.Children) != 3 {
		t.Fatalf("E10: (lambda {x & rest} {rest}) 1 2 3 4 = %v, want {2 3 4}", got)
	}
	for i, want := range []int64{2, 3, 4} {
		if n, ok := expr.Children[i].(Number); !ok || int64(n) != want {
			t.Fatalf("E10: element %d = %v, want %d", i, expr.Children[i], want)
		}
	}
}
