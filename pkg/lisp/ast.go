package lisp

// Node is a parser AST node, per the Reader's input contract (§4.1): a
// node carries a tag string and either literal contents or an ordered
// list of children. This mirrors the grammar-library AST shape the
// original interpreter consumed (mpc_ast_t) without depending on mpc.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}
