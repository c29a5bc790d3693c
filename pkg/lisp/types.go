// Package lisp implements the DataScript interpreter kernel: the value
// model, the environment, the reader, the evaluator and the built-in
// function catalog.
package lisp

import "fmt"

// Tag identifies the concrete variant a Value holds.
type Tag int

const (
	TagError Tag = iota
	TagNumber
	TagSymbol
	TagString
	TagFunction
	TagSExpression
	TagQExpression
)

// tagNames mirrors type_name() from the original interpreter.
var tagNames = map[Tag]string{
	TagError:       "error",
	TagNumber:      "number",
	TagSymbol:      "symbol",
	TagString:      "string",
	TagFunction:    "function",
	TagSExpression: "sexpression",
	TagQExpression: "qexpression",
}

// TagName returns the human-readable name of a tag, as surfaced by the
// typeof/type_name builtins and by type-mismatch error messages.
func TagName(t Tag) string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// Value is the tagged variant that every DataScript runtime value
// implements. Pattern-match on Tag() rather than probing concrete types.
type Value interface {
	fmt.Stringer
	Tag() Tag
	// Copy returns a deep, freshly owned copy of the value.
	Copy() Value
	// Equal reports structural equality, per §3.1.
	Equal(other Value) bool
}

// Number is a signed 64-bit integer.
type Number int64

func (n Number) Tag() Tag           { return TagNumber }
func (n Number) Copy() Value        { return n }
func (n Number) String() string     { return fmt.Sprintf("%d", int64(n)) }
func (n Number) Equal(o Value) bool { other, ok := o.(Number); return ok && other == n }

// Error is an owned human-readable error message, a first-class value.
type Error struct {
	Message string
}

func NewError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Tag() Tag       { return TagError }
func (e *Error) Copy() Value    { return &Error{Message: e.Message} }
func (e *Error) String() string { return "error: " + e.Message }
func (e *Error) Equal(o Value) bool {
	other, ok := o.(*Error)
	return ok && other.Message == e.Message
}

// Symbol is an owned identifier string.
type Symbol struct {
	Name string
}

func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

func (s *Symbol) Tag() Tag           { return TagSymbol }
func (s *Symbol) Copy() Value        { return &Symbol{Name: s.Name} }
func (s *Symbol) String() string     { return s.Name }
func (s *Symbol) Equal(o Value) bool { other, ok := o.(*Symbol); return ok && other.Name == s.Name }

// String is an owned byte-string value.
type String struct {
	Text string
}

func NewString(text string) *String { return &String{Text: text} }

func (s *String) Tag() Tag       { return TagString }
func (s *String) Copy() Value    { return &String{Text: s.Text} }
func (s *String) String() string { return quoteString(s.Text) }
func (s *String) Equal(o Value) bool {
	other, ok := o.(*String)
	return ok && other.Text == s.Text
}

// quoteString re-applies escapes for printing, inverse of the reader's
// escape decoding.
func quoteString(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			out = append(out, '\\', 'n')
		case '\t':
			out = append(out, '\\', 't')
		case '\r':
			out = append(out, '\\', 'r')
		case '\\':
			out = append(out, '\\', '\\')
		case '"':
			out = append(out, '\\', '"')
		default:
			out = append(out, c)
		}
	}
	out = append(out, '"')
	return string(out)
}

// Expression is the shared representation for SExpression and QExpression:
// an ordered sequence of child values.
type Expression struct {
	tag      Tag
	Children []Value
}

// NewSExpression builds an (initially empty) S-expression from children.
func NewSExpression(children ...Value) *Expression {
	return &Expression{tag: TagSExpression, Children: children}
}

// NewQExpression builds a Q-expression from children.
func NewQExpression(children ...Value) *Expression {
	return &Expression{tag: TagQExpression, Children: children}
}

func (e *Expression) Tag() Tag { return e.tag }

func (e *Expression) Copy() Value {
	children := make([]Value, len(e.Children))
	for i, c := range e.Children {
		children[i] = c.Copy()
	}
	return &Expression{tag: e.tag, Children: children}
}

func (e *Expression) String() string {
	open, close := "(", ")"
	if e.tag == TagQExpression {
		open, close = "{", "}"
	}
	s := open
	for i, c := range e.Children {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s + close
}

func (e *Expression) Equal(o Value) bool {
	other, ok := o.(*Expression)
	if !ok || other.tag != e.tag || len(other.Children) != len(e.Children) {
		return false
	}
	for i, c := range e.Children {
		if !c.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// AsSExpression returns a copy of e retyped to an S-expression, leaving e
// untouched. Used by if/while/loop/eval to make a Q-expression evaluable.
func (e *Expression) AsSExpression() *Expression {
	return &Expression{tag: TagSExpression, Children: e.Children}
}

// IsEmpty reports whether the expression has no children.
func (e *Expression) IsEmpty() bool { return len(e.Children) == 0 }

// Function is the common interface for Builtin and Lambda values.
type Function interface {
	Value
	// Call invokes the function. callerEnv is the environment the call
	// site is evaluating in; args is the already-evaluated argument list
	// (an SExpression owned by the caller).
	Call(callerEnv *Environment, args *Expression) Value
}

// BuiltinFn is the native callable shape shared by every builtin.
type BuiltinFn func(env *Environment, args *Expression) Value

// Builtin wraps a native Go function as a DataScript Function value.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func NewBuiltin(name string, fn BuiltinFn) *Builtin { return &Builtin{Name: name, Fn: fn} }

func (b *Builtin) Tag() Tag    { return TagFunction }
func (b *Builtin) Copy() Value { return b }
func (b *Builtin) String() string {
	return "<builtin>"
}
func (b *Builtin) Equal(o Value) bool {
	other, ok := o.(*Builtin)
	return ok && other == b
}
func (b *Builtin) Call(callerEnv *Environment, args *Expression) Value {
	return b.Fn(callerEnv, args)
}

// Lambda is a user-defined function: formals, body and a captured
// environment (the closure frame).
type Lambda struct {
	Formals *Expression // QExpression of Symbols (+ optional "&" rest slot)
	Body    *Expression // QExpression
	Env     *Environment
}

// NewLambda constructs a Lambda with a fresh, parentless captured
// environment. The parent link is set at call time to the caller's
// environment, per §3.2/§4.3 — a Lambda does not lexically capture its
// defining environment, only its bound formals.
func NewLambda(formals, body *Expression) *Lambda {
	return &Lambda{Formals: formals, Body: body, Env: NewEnvironment(nil)}
}

func (l *Lambda) Tag() Tag { return TagFunction }

func (l *Lambda) Copy() Value {
	return &Lambda{
		Formals: l.Formals.Copy().(*Expression),
		Body:    l.Body.Copy().(*Expression),
		Env:     l.Env.Copy(),
	}
}

func (l *Lambda) String() string {
	return fmt.Sprintf("(lambda %s %s)", l.Formals.String(), l.Body.String())
}

// Equal compares formals and body structurally; captured environments are
// ignored, per §3.1.
func (l *Lambda) Equal(o Value) bool {
	other, ok := o.(*Lambda)
	return ok && other.Formals.Equal(l.Formals) && other.Body.Equal(l.Body)
}
