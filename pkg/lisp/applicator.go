package lisp

// Call implements the Applicator's binding protocol (§4.3): bind actual
// arguments to formal parameters in the Lambda's captured environment,
// producing a partial application when under-supplied, or evaluating the
// body when the formal list is fully bound.
func (l *Lambda) Call(callerEnv *Environment, args *Expression) Value {
	given := len(args.Children)
	total := len(l.Formals.Children)

	formals := l.Formals
	remaining := args.Children

	for len(remaining) > 0 {
		if len(formals.Children) == 0 {
			return NewError("function passed too many arguments; got %d, expected %d.", given, total)
		}

		sym, ok := formals.Children[0].(*Symbol)
		if !ok {
			return NewError("function format invalid; formal parameter must be a symbol.")
		}
		formals.Children = formals.Children[1:]

		if sym.Name == "&" {
			if len(formals.Children) != 1 {
				return NewError("function format invalid; symbol '&' not followed by single symbol.")
			}
			rest, ok := formals.Children[0].(*Symbol)
			if !ok {
				return NewError("function format invalid; symbol '&' not followed by single symbol.")
			}
			formals.Children = nil
			l.Env.Put(rest.Name, NewQExpression(remaining...))
			remaining = nil
			break
		}

		actual := remaining[0]
		remaining = remaining[1:]
		l.Env.Put(sym.Name, actual)
	}

	if len(formals.Children) > 0 {
		if sym, ok := formals.Children[0].(*Symbol); ok && sym.Name == "&" {
			if len(formals.Children) != 2 {
				return NewError("function format invalid; symbol '&' not followed by single symbol.")
			}
			rest, ok := formals.Children[1].(*Symbol)
			if !ok {
				return NewError("function format invalid; symbol '&' not followed by single symbol.")
			}
			l.Env.Put(rest.Name, NewQExpression())
			formals.Children = nil
		}
	}

	if len(formals.Children) == 0 {
		l.Env.SetParent(callerEnv)
		return Eval(l.Env, l.Body.AsSExpression())
	}

	// Formals remain unbound: realize partial application / currying.
	// The returned Lambda's environment already carries the bindings
	// made above.
	return l.Copy()
}
