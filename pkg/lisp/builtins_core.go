package lisp

// registerCore binds the value-construction and environment builtins:
// lambda, =, put, list, eval, typeof, type_name.
func registerCore(env *Environment) {
	bind(env, "lambda", builtinLambda)
	bind(env, "=", builtinDef)
	bind(env, "put", builtinPut)
	bind(env, "list", builtinList)
	bind(env, "eval", builtinEval)
	bind(env, "typeof", builtinTypeof)
	bind(env, "type_name", builtinTypeName)
}

// builtinLambda implements lambda, §4.5: (lambda {formals} {body}).
func builtinLambda(env *Environment, args *Expression) Value {
	if err := assertNum("lambda", args, 2); err != nil {
		return err
	}
	if err := assertType("lambda", args, 0, TagQExpression); err != nil {
		return err
	}
	if err := assertType("lambda", args, 1, TagQExpression); err != nil {
		return err
	}

	formals := asExpression(args.Children[0])
	for _, c := range formals.Children {
		if _, ok := c.(*Symbol); !ok {
			return NewError("cannot define non-symbol. Got %s, Expected %s.",
				TagName(c.Tag()), TagName(TagSymbol))
		}
	}

	return NewLambda(formals.Copy().(*Expression), asExpression(args.Children[1]).Copy().(*Expression))
}

// builtinDef implements "=", §4.5: bind into the root/global frame. This
// mirrors the original's env_add_builtin(e, "=", builtin_def) wiring —
// despite the symbol, "=" is the global-defining form and "put" is the
// local one.
func builtinDef(env *Environment, args *Expression) Value {
	return bindVar(env, args, "def", true)
}

// builtinPut implements put, §4.5: bind into the caller's local frame.
func builtinPut(env *Environment, args *Expression) Value {
	return bindVar(env, args, "=", false)
}

// bindVar implements the shared var-binding routine (builtin_var in the
// original): args.Children[0] is a {symbol ...} list of names, and the
// remaining children are the values bound to them in order.
func bindVar(env *Environment, args *Expression, name string, global bool) Value {
	if err := assertType(name, args, 0, TagQExpression); err != nil {
		return err
	}

	syms := asExpression(args.Children[0])
	for _, c := range syms.Children {
		if _, ok := c.(*Symbol); !ok {
			return NewError("function '%s' cannot define non-symbol; got %s, expected %s.",
				name, TagName(c.Tag()), TagName(TagSymbol))
		}
	}

	if len(syms.Children) != len(args.Children)-1 {
		return NewError("function '%s' passed too many arguments for symbols; got %d, expected %d.",
			name, len(syms.Children), len(args.Children)-1)
	}

	for i, c := range syms.Children {
		sym := c.(*Symbol)
		if global {
			env.Def(sym.Name, args.Children[i+1])
		} else {
			env.Put(sym.Name, args.Children[i+1])
		}
	}
	return NewSExpression()
}

// builtinList implements list, §4.5: retype the caller's evaluated
// argument SExpression as a QExpression.
func builtinList(env *Environment, args *Expression) Value {
	args.tag = TagQExpression
	return args
}

// builtinEval implements eval, §4.5: retype a QExpression to an
// SExpression and evaluate it.
func builtinEval(env *Environment, args *Expression) Value {
	if err := assertNum("eval", args, 1); err != nil {
		return err
	}
	if err := assertType("eval", args, 0, TagQExpression); err != nil {
		return err
	}
	return Eval(env, asExpression(args.Children[0]).AsSExpression())
}

// builtinTypeof implements typeof, §4.5: the ordinal tag of a value.
func builtinTypeof(env *Environment, args *Expression) Value {
	if err := assertNum("typeof", args, 1); err != nil {
		return err
	}
	return Number(int64(args.Children[0].Tag()))
}

// builtinTypeName implements type_name, §4.5: the printable name for an
// ordinal tag.
func builtinTypeName(env *Environment, args *Expression) Value {
	if err := assertNum("type_name", args, 1); err != nil {
		return err
	}
	n, ok := args.Children[0].(Number)
	if !ok {
		return NewError("function 'type_name' passed incorrect type for argument 0; got %s, expected %s.",
			TagName(args.Children[0].Tag()), TagName(TagNumber))
	}
	return NewString(TagName(Tag(int64(n))))
}
