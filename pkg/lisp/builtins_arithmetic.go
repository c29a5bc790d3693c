package lisp

import "strconv"

// registerArithmetic binds the numeric and relational builtins: +, -, *,
// /, ==, !=, <, <=, >, >=.
func registerArithmetic(env *Environment) {
	bind(env, "+", builtinAdd)
	bind(env, "-", func(env *Environment, args *Expression) Value { return builtinOp(args, "-") })
	bind(env, "*", func(env *Environment, args *Expression) Value { return builtinOp(args, "*") })
	bind(env, "/", func(env *Environment, args *Expression) Value { return builtinOp(args, "/") })
	bind(env, ">", func(env *Environment, args *Expression) Value { return builtinOrd(args, ">") })
	bind(env, "<", func(env *Environment, args *Expression) Value { return builtinOrd(args, "<") })
	bind(env, ">=", func(env *Environment, args *Expression) Value { return builtinOrd(args, ">=") })
	bind(env, "<=", func(env *Environment, args *Expression) Value { return builtinOrd(args, "<=") })
	bind(env, "==", func(env *Environment, args *Expression) Value { return builtinCompare(args, "==") })
	bind(env, "!=", func(env *Environment, args *Expression) Value { return builtinCompare(args, "!=") })
}

// builtinOp implements the shared -, *, / dispatcher (builtin_op): every
// argument must be a Number. A lone argument to "-" negates it.
func builtinOp(args *Expression, op string) Value {
	if err := assertMinNum(op, args, 1); err != nil {
		return err
	}
	for i := range args.Children {
		if err := assertType(op, args, i, TagNumber); err != nil {
			return err
		}
	}

	x := args.Children[0].(Number)
	if op == "-" && len(args.Children) == 1 {
		return -x
	}

	for _, c := range args.Children[1:] {
		y := c.(Number)
		switch op {
		case "-":
			x -= y
		case "*":
			x *= y
		case "/":
			if y == 0 {
				return NewError("Division By Zero.")
			}
			x /= y
		}
	}
	return x
}

// builtinAdd implements "+", §4.5. Numbers and Strings may both appear:
// a String accumulator concatenates the string form of each following
// argument; a Number accumulator adds the numeric value of each
// following argument, extracting digits from a String operand. Operates
// on a fresh accumulator value, never mutating either operand in place.
func builtinAdd(env *Environment, args *Expression) Value {
	if err := assertMinNum("+", args, 1); err != nil {
		return err
	}
	for i, c := range args.Children {
		if c.Tag() != TagNumber && c.Tag() != TagString {
			return NewError("function '+' passed incorrect type for argument %d; got %s, expected %s or %s.",
				i, TagName(c.Tag()), TagName(TagNumber), TagName(TagString))
		}
	}

	switch first := args.Children[0].(type) {
	case *String:
		acc := first.Text
		for _, c := range args.Children[1:] {
			if s, ok := c.(*String); ok {
				acc += s.Text
			} else {
				acc += c.String()
			}
		}
		return NewString(acc)
	case Number:
		acc := first
		for _, c := range args.Children[1:] {
			if s, ok := c.(*String); ok {
				acc += Number(digitsOf(s.Text))
			} else {
				acc += c.(Number)
			}
		}
		return acc
	default:
		return NewError("function '+' passed incorrect type for argument 0; got %s, expected %s or %s.",
			TagName(first.Tag()), TagName(TagNumber), TagName(TagString))
	}
}

// digitsOf strips every non-digit byte and parses what remains, mirroring
// the original's modstring extraction in builtin_add.
func digitsOf(s string) int64 {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	n, _ := strconv.ParseInt(string(digits), 10, 64)
	return n
}

// builtinOrd implements the shared >, <, >=, <= dispatcher (builtin_ord).
func builtinOrd(args *Expression, op string) Value {
	if err := assertNum(op, args, 2); err != nil {
		return err
	}
	if err := assertType(op, args, 0, TagNumber); err != nil {
		return err
	}
	if err := assertType(op, args, 1, TagNumber); err != nil {
		return err
	}

	x := args.Children[0].(Number)
	y := args.Children[1].(Number)
	var r bool
	switch op {
	case ">":
		r = x > y
	case "<":
		r = x < y
	case ">=":
		r = x >= y
	case "<=":
		r = x <= y
	}
	return boolNumber(r)
}

// builtinCompare implements the shared ==, != dispatcher (builtin_compare).
func builtinCompare(args *Expression, op string) Value {
	if err := assertNum(op, args, 2); err != nil {
		return err
	}
	eq := args.Children[0].Equal(args.Children[1])
	if op == "!=" {
		eq = !eq
	}
	return boolNumber(eq)
}

func boolNumber(b bool) Number {
	if b {
		return 1
	}
	return 0
}
