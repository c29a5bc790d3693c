package lisp

// Register populates env with every builtin in the Catalog (§4.5). This is
// the root-environment construction step; the evaluator and reader have no
// dependency on this table, so there is no import cycle between "how to
// evaluate" and "what is bound at the root".
func Register(env *Environment) {
	registerCore(env)
	registerCollections(env)
	registerControl(env)
	registerArithmetic(env)
	registerIO(env)
}

func bind(env *Environment, name string, fn BuiltinFn) {
	env.Put(name, NewBuiltin(name, fn))
}

// assertNum requires args to have exactly n children.
func assertNum(name string, args *Expression, n int) *Error {
	if len(args.Children) != n {
		return NewError("function '%s' passed incorrect number of arguments; got %d, expected %d.", name, len(args.Children), n)
	}
	return nil
}

// assertMinNum requires args to have at least n children.
func assertMinNum(name string, args *Expression, n int) *Error {
	if len(args.Children) < n {
		return NewError("function '%s' passed incorrect number of arguments; got %d, expected at least %d.", name, len(args.Children), n)
	}
	return nil
}

// assertType requires argument i to have the given tag.
func assertType(name string, args *Expression, i int, t Tag) *Error {
	if args.Children[i].Tag() != t {
		return NewError("function '%s' passed incorrect type for argument %d; got %s, expected %s.",
			name, i, TagName(args.Children[i].Tag()), TagName(t))
	}
	return nil
}

// assertNotEmpty requires argument i to be a non-empty SExpression/QExpression.
func assertNotEmpty(name string, args *Expression, i int) *Error {
	expr, ok := args.Children[i].(*Expression)
	if !ok || expr.IsEmpty() {
		return NewError("function '%s' passed {} for argument %d.", name, i)
	}
	return nil
}

// asExpression type-asserts v to *Expression, used once callers have
// already validated the tag via assertType.
func asExpression(v Value) *Expression { return v.(*Expression) }
