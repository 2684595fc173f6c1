package regexlib

import "strings"

// NodeKind tags the variant of an AST node.
type NodeKind int

const (
	NodeEpsilon NodeKind = iota
	NodeAtom
	NodeConcat
	NodeAlt
	NodeStar
	NodeOpt
)

// AST is a node in the regex syntax tree. Each internal node exclusively
// owns its children; there is no sharing between subtrees.
type AST struct {
	Kind        NodeKind
	Ch          rune // valid only when Kind == NodeAtom
	Left, Right *AST // Right is nil except for Concat and Alt
}

func Epsilon() *AST                 { return &AST{Kind: NodeEpsilon} }
func Atom(c rune) *AST              { return &AST{Kind: NodeAtom, Ch: c} }
func ConcatNode(l, r *AST) *AST     { return &AST{Kind: NodeConcat, Left: l, Right: r} }
func AltNode(l, r *AST) *AST        { return &AST{Kind: NodeAlt, Left: l, Right: r} }
func StarNode(e *AST) *AST          { return &AST{Kind: NodeStar, Left: e} }
func OptNode(e *AST) *AST           { return &AST{Kind: NodeOpt, Left: e} }

// String renders the canonical S-expression form of the tree: epsilon as
// "ε", atoms unquoted, and internal nodes as "(op children...)".
func (a *AST) String() string {
	var b strings.Builder
	a.write(&b)
	return b.String()
}

func (a *AST) write(b *strings.Builder) {
	switch a.Kind {
	case NodeEpsilon:
		b.WriteString("ε")
	case NodeAtom:
		b.WriteRune(a.Ch)
	case NodeConcat:
		b.WriteString("(. ")
		a.Left.write(b)
		b.WriteByte(' ')
		a.Right.write(b)
		b.WriteByte(')')
	case NodeAlt:
		b.WriteString("(+ ")
		a.Left.write(b)
		b.WriteByte(' ')
		a.Right.write(b)
		b.WriteByte(')')
	case NodeStar:
		b.WriteString("(* ")
		a.Left.write(b)
		b.WriteByte(')')
	case NodeOpt:
		b.WriteString("(? ")
		a.Left.write(b)
		b.WriteByte(')')
	}
}

// Equal reports whether a and other are structurally identical trees.
func (a *AST) Equal(other *AST) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case NodeEpsilon:
		return true
	case NodeAtom:
		return a.Ch == other.Ch
	case NodeConcat, NodeAlt:
		return a.Left.Equal(other.Left) && a.Right.Equal(other.Right)
	case NodeStar, NodeOpt:
		return a.Left.Equal(other.Left)
	default:
		return false
	}
}
