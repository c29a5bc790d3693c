package lisp

import "testing"

func TestLambdaFullyAppliedCall(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "((lambda {a b} {+ a b}) 3 4)")
	if n, ok := got.(Number); !ok || n != 7 {
		t.Fatalf("(lambda {a b} {+ a b}) 3 4 = %v, want 7", got)
	}
}

func TestLambdaPartialApplication(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "((lambda {a b} {+ a b}) 3)")
	if _, ok := got.(*Lambda); !ok {
		t.Fatalf("under-supplying a lambda should yield a partially-applied lambda, got %T", got)
	}
}

func TestLambdaCurriedCallCompletesApplication(t *testing.T) {
	env := newTestEnv()
	evalSource(t, env, "(= {add} (lambda {a b} {+ a b}))")
	evalSource(t, env, "(= {add3} (add 3))")
	got := evalSource(t, env, "(add3 4)")
	if n, ok := got.(Number); !ok || n != 7 {
		t.Fatalf("currying add(3)(4) = %v, want 7", got)
	}
}

func TestLambdaTooManyArgumentsErrors(t *testing.T) {
	env := newTestEnv()
	got := evalSource(t, env, "((lambda {a} {a}) 1 2)")
	if got.Tag() != TagError {
		t.Fatalf("over-supplying a lambda should error, got %v", got)
	}
}

func TestLambdaRestArgBinding(t *testing.T) {
	env := newTestEnv()
	evalSource(t, env, "(= {f} (lambda {x & xs} {xs}))")
	got := evalSource(t, env, "(f 1 2 3)")
	expr, ok := got.(*Expression)
	if !ok || expr.Tag() != TagQExpression || len(expr.Children) != 2 {
		t.Fatalf("rest arg should collect the trailing arguments into a QExpression, got %v", got)
	}
}

func TestLambdaRestArgEmptyWhenExhausted(t *testing.T) {
	env := newTestEnv()
	evalSource(t, env, "(= {f} (lambda {x & xs} {xs}))")
	got := evalSource(t, env, "(f 1)")
	expr, ok := got.(*Expression)
	if !ok || !expr.IsEmpty() {
		t.Fatalf("rest arg with nothing left should bind an empty QExpression, got %v", got)
	}
}

func TestLambdaCallDoesNotCorruptReusedDefinition(t *testing.T) {
	env := newTestEnv()
	evalSource(t, env, "(= {add} (lambda {a b} {+ a b}))")
	first := evalSource(t, env, "(add 1 2)")
	second := evalSource(t, env, "(add 10 20)")
	if n, ok := first.(Number); !ok || n != 3 {
		t.Fatalf("first call = %v, want 3", first)
	}
	if n, ok := second.(Number); !ok || n != 30 {
		t.Fatalf("second call = %v, want 30 -- a shared/corrupted formals list would break this", second)
	}
}
