package lisp

// registerCollections binds the list builtins: head, tail, body, pop,
// fetch, len, join, range.
func registerCollections(env *Environment) {
	bind(env, "head", builtinHead)
	bind(env, "tail", builtinTail)
	bind(env, "body", builtinBody)
	bind(env, "pop", builtinPop)
	bind(env, "fetch", builtinFetch)
	bind(env, "len", builtinLen)
	bind(env, "join", builtinJoin)
	bind(env, "range", builtinRange)
}

// builtinHead implements head, §4.5: the first element of a QExpression,
// itself wrapped in a single-element QExpression.
func builtinHead(env *Environment, args *Expression) Value {
	if err := assertNum("head", args, 1); err != nil {
		return err
	}
	if err := assertType("head", args, 0, TagQExpression); err != nil {
		return err
	}
	if err := assertNotEmpty("head", args, 0); err != nil {
		return err
	}
	list := asExpression(args.Children[0])
	return NewQExpression(list.Children[0])
}

// builtinTail implements tail, §4.5: every element but the first.
func builtinTail(env *Environment, args *Expression) Value {
	if err := assertNum("tail", args, 1); err != nil {
		return err
	}
	if err := assertType("tail", args, 0, TagQExpression); err != nil {
		return err
	}
	if err := assertNotEmpty("tail", args, 0); err != nil {
		return err
	}
	list := asExpression(args.Children[0])
	return NewQExpression(list.Children[1:]...)
}

// builtinBody implements body, §4.5: every element but the first and last.
func builtinBody(env *Environment, args *Expression) Value {
	if err := assertNum("body", args, 1); err != nil {
		return err
	}
	if err := assertType("body", args, 0, TagQExpression); err != nil {
		return err
	}
	if err := assertNotEmpty("body", args, 0); err != nil {
		return err
	}
	list := asExpression(args.Children[0])
	if len(list.Children) <= 1 {
		return NewQExpression()
	}
	return NewQExpression(list.Children[1 : len(list.Children)-1]...)
}

// builtinPop implements pop, §4.5: a copy of the list with the element at
// the given index removed. Out-of-bounds indices leave the list unchanged,
// matching the original's own no-op behavior, but with the bound check
// corrected to strict idx < count (the original's idx <= count off-by-one
// let idx == count through to the removal step; here it is out of bounds
// and leaves the list unchanged).
func builtinPop(env *Environment, args *Expression) Value {
	if err := assertNum("pop", args, 2); err != nil {
		return err
	}
	if err := assertType("pop", args, 0, TagQExpression); err != nil {
		return err
	}
	if err := assertType("pop", args, 1, TagNumber); err != nil {
		return err
	}
	if err := assertNotEmpty("pop", args, 0); err != nil {
		return err
	}

	list := asExpression(args.Children[0])
	idx := int64(args.Children[1].(Number))
	if idx < 0 || idx >= int64(len(list.Children)) {
		return NewQExpression(list.Children...)
	}

	out := make([]Value, 0, len(list.Children)-1)
	out = append(out, list.Children[:idx]...)
	out = append(out, list.Children[idx+1:]...)
	return NewQExpression(out...)
}

// builtinLen implements len, §4.5: size of a list, byte length of a
// string, or decimal digit count of a number (sign excluded, per the
// Supplemented Features note on len's digit-counting).
func builtinLen(env *Environment, args *Expression) Value {
	if err := assertNum("len", args, 1); err != nil {
		return err
	}

	switch v := args.Children[0].(type) {
	case *Expression:
		return Number(int64(len(v.Children)))
	case *String:
		return Number(int64(len(v.Text)))
	case Number:
		n := int64(v)
		if n < 0 {
			n = -n
		}
		return Number(int64(len(Number(n).String())))
	default:
		return NewError("function 'len' passed incorrect type for argument 0; got %s.", TagName(v.Tag()))
	}
}

// builtinFetch implements fetch, §4.5: the element at the given index.
func builtinFetch(env *Environment, args *Expression) Value {
	if err := assertNum("fetch", args, 2); err != nil {
		return err
	}
	if err := assertType("fetch", args, 0, TagQExpression); err != nil {
		return err
	}
	if err := assertType("fetch", args, 1, TagNumber); err != nil {
		return err
	}
	if err := assertNotEmpty("fetch", args, 0); err != nil {
		return err
	}

	list := asExpression(args.Children[0])
	idx := int64(args.Children[1].(Number))
	if idx < 0 || idx >= int64(len(list.Children)) {
		return NewError("invalid index")
	}
	return list.Children[idx]
}

// builtinJoin implements join, §4.5: concatenate any number of
// QExpressions into one.
func builtinJoin(env *Environment, args *Expression) Value {
	for i := range args.Children {
		if err := assertType("join", args, i, TagQExpression); err != nil {
			return err
		}
	}

	out := NewQExpression()
	for _, c := range args.Children {
		out.Children = append(out.Children, asExpression(c).Children...)
	}
	return out
}

// builtinRange implements range, §4.5: a QExpression of the integers
// spanning two bounds. Preserves two documented bugs from the original:
// the accumulator is reassigned to a fresh single-element QExpression on
// every iteration rather than appended to (so ascending ranges return at
// most their last value, not the whole span), and the descending loop's
// termination test is copy-pasted from the ascending case (i < to instead
// of i > to), so a descending range never executes its body and falls
// through to the number 10.
func builtinRange(env *Environment, args *Expression) Value {
	if err := assertNum("range", args, 2); err != nil {
		return err
	}
	if err := assertType("range", args, 0, TagNumber); err != nil {
		return err
	}
	if err := assertType("range", args, 1, TagNumber); err != nil {
		return err
	}

	from := int64(args.Children[0].(Number))
	to := int64(args.Children[1].(Number))

	var x Value = Number(10)
	switch {
	case from < to:
		for i := from; i < to; i++ {
			x = NewQExpression(Number(i))
		}
	case from > to:
		for i := from; i < to; i-- {
			x = NewQExpression(Number(i))
		}
	default:
		x = Number(from)
	}
	return x
}
