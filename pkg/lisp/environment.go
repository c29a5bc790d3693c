package lisp

// Environment is a name -> Value mapping with a parent link, per §3.2.
// A frame owns copies of its stored values; lookups hand back further
// copies so that binding never aliases.
type Environment struct {
	bindings map[string]Value
	parent   *Environment
}

// NewEnvironment creates an environment chained to parent (nil for a root).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]Value), parent: parent}
}

// Get looks up name, walking the parent chain; the first match wins.
// The returned value is a fresh copy, per §4.2.1 (symbol evaluation
// returns a copy of the bound value).
func (e *Environment) Get(name string) Value {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings[name]; ok {
			return v.Copy()
		}
	}
	return NewError("unbound Symbol '%s'", name)
}

// Put binds name to a copy of v in this frame, creating or replacing the
// existing local binding.
func (e *Environment) Put(name string, v Value) {
	e.bindings[name] = v.Copy()
}

// Def walks to the root frame via parent links and binds there.
func (e *Environment) Def(name string, v Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.Put(name, v)
}

// SetParent rewires the environment's parent link. Used when a Lambda's
// captured environment is activated for a call: its parent becomes the
// caller's environment just before the body is evaluated.
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// Copy deep-copies the bindings of this single frame; the parent pointer
// is copied as-is (not deep-copied), per §4.4.
func (e *Environment) Copy() *Environment {
	n := &Environment{bindings: make(map[string]Value, len(e.bindings)), parent: e.parent}
	for k, v := range e.bindings {
		n.bindings[k] = v.Copy()
	}
	return n
}
