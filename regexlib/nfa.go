package regexlib

import "sort"

// LabelKind distinguishes an epsilon transition from a symbol transition.
type LabelKind uint8

const (
	LabelEps LabelKind = iota
	LabelSym
)

// Label is the value carried by an NFA transition: either Eps or Sym(c).
type Label struct {
	Kind LabelKind
	Sym  rune
}

// Eps is the epsilon transition label.
var Eps = Label{Kind: LabelEps}

// SymLabel builds a Sym(c) transition label.
func SymLabel(c rune) Label { return Label{Kind: LabelSym, Sym: c} }

func (l Label) String() string {
	if l.Kind == LabelEps {
		return "ε"
	}
	return string(l.Sym)
}

// Transition is an adjacency-list entry: a destination state and its label.
type Transition struct {
	To    uint32
	Label Label
}

// Edge is a flattened (from, to, label) view of a Transition.
type Edge struct {
	From, To uint32
	Label    Label
}

// NFA is a Thompson-constructed epsilon-NFA with exactly one accept state,
// plus the bounding-box metadata correlating states to the AST operator
// that produced them.
type NFA struct {
	NumStates   int
	Start       uint32
	Accept      uint32
	Transitions [][]Transition // per-state adjacency, stably sorted by To
	Edges       []Edge         // flat view, ordered by (from, to)
	Boxes       []BoundingBox
	StateToBox  []uint32 // index = state id, value = innermost box id

	alphabet []rune
}

// Alphabet returns the sorted, deduplicated set of symbols labeling any
// transition in the NFA.
func (n *NFA) Alphabet() []rune {
	return n.alphabet
}

// nfaFragment is a partial NFA with exactly one start and one accept state,
// per spec's fragment-shape requirement (unlike the dangling-outs style
// used by some Thompson-construction implementations).
type nfaFragment struct {
	start, accept uint32
}

// nfaBuilder accumulates states and edges while walking an AST, tracking
// the active bounding box via boxStack.
type nfaBuilder struct {
	adjacency  [][]Transition
	stateBox   []uint32
	boxes      *boxStack
}

func newNFABuilder() *nfaBuilder {
	return &nfaBuilder{boxes: newBoxStack()}
}

func (b *nfaBuilder) newState() uint32 {
	id := uint32(len(b.adjacency))
	b.adjacency = append(b.adjacency, nil)
	b.stateBox = append(b.stateBox, b.boxes.current())
	b.boxes.recordState(id)
	return id
}

func (b *nfaBuilder) addEdge(from, to uint32, label Label) {
	b.adjacency[from] = append(b.adjacency[from], Transition{To: to, Label: label})
}

// build dispatches on the AST node kind, following spec's exact fragment
// shapes for each operator.
func (b *nfaBuilder) build(ast *AST) nfaFragment {
	switch ast.Kind {
	case NodeEpsilon:
		return b.buildEpsilon()
	case NodeAtom:
		return b.buildAtom(ast.Ch)
	case NodeConcat:
		return b.buildConcat(ast.Left, ast.Right)
	case NodeAlt:
		return b.buildAlt(ast.Left, ast.Right)
	case NodeStar:
		return b.buildStar(ast.Left)
	case NodeOpt:
		return b.buildOpt(ast.Left)
	default:
		panic("regexlib: unknown AST node kind")
	}
}

func (b *nfaBuilder) buildEpsilon() nfaFragment {
	b.boxes.push(BoxLiteral)
	defer b.boxes.pop()

	s := b.newState()
	return nfaFragment{start: s, accept: s}
}

func (b *nfaBuilder) buildAtom(c rune) nfaFragment {
	b.boxes.push(BoxLiteral)
	defer b.boxes.pop()

	start := b.newState()
	accept := b.newState()
	b.addEdge(start, accept, SymLabel(c))
	return nfaFragment{start: start, accept: accept}
}

func (b *nfaBuilder) buildConcat(l, r *AST) nfaFragment {
	b.boxes.push(BoxConcat)
	defer b.boxes.pop()

	left := b.build(l)
	right := b.build(r)
	b.addEdge(left.accept, right.start, Eps)
	return nfaFragment{start: left.start, accept: right.accept}
}

func (b *nfaBuilder) buildAlt(l, r *AST) nfaFragment {
	b.boxes.push(BoxAlternation)
	defer b.boxes.pop()

	s := b.newState()
	t := b.newState()
	left := b.build(l)
	right := b.build(r)
	b.addEdge(s, left.start, Eps)
	b.addEdge(s, right.start, Eps)
	b.addEdge(left.accept, t, Eps)
	b.addEdge(right.accept, t, Eps)
	return nfaFragment{start: s, accept: t}
}

func (b *nfaBuilder) buildStar(e *AST) nfaFragment {
	b.boxes.push(BoxKleeneStar)
	defer b.boxes.pop()

	s := b.newState()
	t := b.newState()
	inner := b.build(e)
	b.addEdge(s, inner.start, Eps)
	b.addEdge(s, t, Eps)
	b.addEdge(inner.accept, inner.start, Eps)
	b.addEdge(inner.accept, t, Eps)
	return nfaFragment{start: s, accept: t}
}

func (b *nfaBuilder) buildOpt(e *AST) nfaFragment {
	b.boxes.push(BoxOptional)
	defer b.boxes.pop()

	s := b.newState()
	t := b.newState()
	inner := b.build(e)
	b.addEdge(s, inner.start, Eps)
	b.addEdge(s, t, Eps)
	b.addEdge(inner.accept, t, Eps)
	return nfaFragment{start: s, accept: t}
}

// BuildNFA runs Thompson's construction over ast, producing a fully-formed
// NFA with a complete bounding-box tree rooted at a single Root box.
func BuildNFA(ast *AST) *NFA {
	b := newNFABuilder()
	b.boxes.push(BoxRoot)
	frag := b.build(ast)
	b.boxes.pop()

	for i := range b.adjacency {
		sort.SliceStable(b.adjacency[i], func(x, y int) bool {
			return b.adjacency[i][x].To < b.adjacency[i][y].To
		})
	}

	var edges []Edge
	for from, row := range b.adjacency {
		for _, tr := range row {
			edges = append(edges, Edge{From: uint32(from), To: tr.To, Label: tr.Label})
		}
	}

	alphabetSet := map[rune]bool{}
	for _, e := range edges {
		if e.Label.Kind == LabelSym {
			alphabetSet[e.Label.Sym] = true
		}
	}
	alphabet := make([]rune, 0, len(alphabetSet))
	for c := range alphabetSet {
		alphabet = append(alphabet, c)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	return &NFA{
		NumStates:   len(b.adjacency),
		Start:       frag.start,
		Accept:      frag.accept,
		Transitions: b.adjacency,
		Edges:       edges,
		Boxes:       b.boxes.boxes,
		StateToBox:  b.stateBox,
		alphabet:    alphabet,
	}
}
