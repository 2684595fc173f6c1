package regexlib

import (
	"sort"
	"strconv"
	"strings"
)

// DeadState marks the implicit dead state: a transition whose NFA-subset
// image is empty. It is never allocated as an explicit DFA state id.
const DeadState = -1

// DFA is a deterministic finite automaton built by subset construction over
// an NFA. State 0 is always the start state.
type DFA struct {
	NumStates int
	Start     int
	Accepting []bool // index = state id
	Trans     [][]int
	Alphabet  []rune
}

// IsAccepting reports whether state id is an accepting state.
func (d *DFA) IsAccepting(id int) bool {
	if id < 0 || id >= len(d.Accepting) {
		return false
	}
	return d.Accepting[id]
}

func (d *DFA) clone() *DFA {
	trans := make([][]int, len(d.Trans))
	for i, row := range d.Trans {
		trans[i] = append([]int(nil), row...)
	}
	return &DFA{
		NumStates: d.NumStates,
		Start:     d.Start,
		Accepting: append([]bool(nil), d.Accepting...),
		Trans:     trans,
		Alphabet:  append([]rune(nil), d.Alphabet...),
	}
}

// epsilonClosure computes the set of states reachable from seed via
// epsilon transitions only, including seed itself. Traversal order is a
// deterministic function of the NFA's adjacency structure (itself sorted
// by destination id), so the returned slice is reproducible run to run.
func epsilonClosure(nfa *NFA, seed []uint32) []uint32 {
	inSet := map[uint32]bool{}
	var order []uint32
	for _, s := range seed {
		if !inSet[s] {
			inSet[s] = true
			order = append(order, s)
		}
	}
	for i := 0; i < len(order); i++ {
		for _, tr := range nfa.Transitions[order[i]] {
			if tr.Label.Kind == LabelEps && !inSet[tr.To] {
				inSet[tr.To] = true
				order = append(order, tr.To)
			}
		}
	}
	sorted := append([]uint32(nil), order...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// move returns the set of states reachable from any state in states via a
// single transition labeled c.
func move(nfa *NFA, states []uint32, c rune) []uint32 {
	seen := map[uint32]bool{}
	var out []uint32
	for _, s := range states {
		for _, tr := range nfa.Transitions[s] {
			if tr.Label.Kind == LabelSym && tr.Label.Sym == c && !seen[tr.To] {
				seen[tr.To] = true
				out = append(out, tr.To)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func subsetKey(set []uint32) string {
	var b strings.Builder
	for i, s := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(s), 10))
	}
	return b.String()
}

func containsSorted(set []uint32, target uint32) bool {
	i := sort.Search(len(set), func(i int) bool { return set[i] >= target })
	return i < len(set) && set[i] == target
}

// Determinize runs subset construction over nfa, assigning DFA state ids
// in strict discovery order over the sorted alphabet, using an
// insertion-ordered subset-to-id map so the result is reproducible.
func Determinize(nfa *NFA) *DFA {
	alphabet := nfa.Alphabet()

	idOf := map[string]int{}
	var subsets [][]uint32

	addSubset := func(set []uint32) int {
		key := subsetKey(set)
		if id, ok := idOf[key]; ok {
			return id
		}
		id := len(subsets)
		idOf[key] = id
		subsets = append(subsets, set)
		return id
	}

	start := addSubset(epsilonClosure(nfa, []uint32{nfa.Start}))

	var trans [][]int
	for i := 0; i < len(subsets); i++ {
		row := make([]int, len(alphabet))
		for ai, c := range alphabet {
			moved := move(nfa, subsets[i], c)
			if len(moved) == 0 {
				row[ai] = DeadState
				continue
			}
			row[ai] = addSubset(epsilonClosure(nfa, moved))
		}
		trans = append(trans, row)
	}

	accepting := make([]bool, len(subsets))
	for i, s := range subsets {
		accepting[i] = containsSorted(s, nfa.Accept)
	}

	return &DFA{
		NumStates: len(subsets),
		Start:     start,
		Accepting: accepting,
		Trans:     trans,
		Alphabet:  alphabet,
	}
}
