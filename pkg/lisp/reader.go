package lisp

import (
	"strconv"
	"strings"
)

// Read converts a parser AST node into a Value, per §4.1. Mapping is by
// substring match on the node's tag, mirroring the original's strstr-based
// dispatch so that a grammar-library's compound tags (e.g. "sexpr|char:...")
// still route correctly.
func Read(node *Node) Value {
	tag := node.Tag

	switch {
	case strings.Contains(tag, "number"):
		return readNumber(node.Contents)
	case strings.Contains(tag, "string"):
		return readString(node.Contents)
	case strings.Contains(tag, "symbol"):
		return NewSymbol(node.Contents)
	case tag == ">" || strings.Contains(tag, "sexpr"):
		return readChildren(node, NewSExpression())
	case strings.Contains(tag, "qexpr"):
		return readChildren(node, NewQExpression())
	}

	// Unknown/structural node (regex literal, comment): nothing to read.
	return NewSExpression()
}

func readChildren(node *Node, into *Expression) Value {
	for _, child := range node.Children {
		if isSkippable(child) {
			continue
		}
		into.Children = append(into.Children, Read(child))
	}
	return into
}

func isSkippable(n *Node) bool {
	if n.Tag == "regex" {
		return true
	}
	if strings.Contains(n.Tag, "comment") {
		return true
	}
	switch n.Contents {
	case "(", ")", "{", "}":
		return true
	}
	return false
}

func readNumber(contents string) Value {
	n, err := strconv.ParseInt(contents, 10, 64)
	if err != nil {
		return NewError("invalid Number.")
	}
	return Number(n)
}

// readString strips the surrounding double quotes and decodes escapes.
func readString(contents string) Value {
	body := contents
	if len(body) >= 2 && body[0] == '"' && body[len(body)-1] == '"' {
		body = body[1 : len(body)-1]
	}
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteByte(body[i])
			}
			continue
		}
		sb.WriteByte(c)
	}
	return NewString(sb.String())
}
