package regexlib

import "sort"

// TracedEdge is one transition actually walked during a simulation step.
type TracedEdge struct {
	From, To uint32
	Label    Label
}

// SimulationStep is a snapshot taken after consuming zero or more input
// characters. Step 0 is the initial state before any input is consumed.
type SimulationStep struct {
	Index       int
	HasConsumed bool
	Consumed    rune
	Active      []uint32
	Traversed   []TracedEdge
	Accepting   bool
}

func containsRune(alphabet []rune, c rune) bool {
	i := sort.Search(len(alphabet), func(i int) bool { return alphabet[i] >= c })
	return i < len(alphabet) && alphabet[i] == c
}

func indexOfRune(alphabet []rune, c rune) int {
	i := sort.Search(len(alphabet), func(i int) bool { return alphabet[i] >= c })
	if i < len(alphabet) && alphabet[i] == c {
		return i
	}
	return -1
}

// NFAAccepts reports whether the NFA accepts input in full.
func NFAAccepts(nfa *NFA, input string) bool {
	current := epsilonClosure(nfa, []uint32{nfa.Start})
	for _, c := range input {
		current = epsilonClosure(nfa, move(nfa, current, c))
		if len(current) == 0 {
			return false
		}
	}
	return containsSorted(current, nfa.Accept)
}

// DFAAccepts reports whether the DFA accepts input in full.
func DFAAccepts(dfa *DFA, input string) bool {
	s := dfa.Start
	for _, c := range input {
		idx := indexOfRune(dfa.Alphabet, c)
		if idx < 0 {
			return false
		}
		next := dfa.Trans[s][idx]
		if next == DeadState {
			return false
		}
		s = next
	}
	return dfa.IsAccepting(s)
}

// moveWithEdges is like move, but also records the (from, to, Sym(c))
// edges actually traversed.
func moveWithEdges(nfa *NFA, states []uint32, c rune) ([]uint32, []TracedEdge) {
	seen := map[uint32]bool{}
	var moved []uint32
	var edges []TracedEdge
	for _, s := range states {
		for _, tr := range nfa.Transitions[s] {
			if tr.Label.Kind == LabelSym && tr.Label.Sym == c {
				edges = append(edges, TracedEdge{From: s, To: tr.To, Label: tr.Label})
				if !seen[tr.To] {
					seen[tr.To] = true
					moved = append(moved, tr.To)
				}
			}
		}
	}
	sort.Slice(moved, func(i, j int) bool { return moved[i] < moved[j] })
	return moved, edges
}

// epsilonClosureWithEdges is like epsilonClosure, but also records the
// epsilon edges actually walked to discover each newly-reached state,
// using a deterministic traversal over sorted state ids.
func epsilonClosureWithEdges(nfa *NFA, seed []uint32) ([]uint32, []TracedEdge) {
	inSet := map[uint32]bool{}
	var order []uint32
	for _, s := range seed {
		if !inSet[s] {
			inSet[s] = true
			order = append(order, s)
		}
	}
	var edges []TracedEdge
	for i := 0; i < len(order); i++ {
		s := order[i]
		for _, tr := range nfa.Transitions[s] {
			if tr.Label.Kind == LabelEps && !inSet[tr.To] {
				inSet[tr.To] = true
				order = append(order, tr.To)
				edges = append(edges, TracedEdge{From: s, To: tr.To, Label: Eps})
			}
		}
	}
	sorted := append([]uint32(nil), order...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted, edges
}

// TraceNFA simulates input over nfa, returning one SimulationStep per
// character consumed (plus an initial step 0), or an OutOfAlphabetError if
// input contains a character outside the NFA's alphabet.
func TraceNFA(nfa *NFA, input string) ([]SimulationStep, error) {
	alphabet := nfa.Alphabet()
	for _, c := range input {
		if !containsRune(alphabet, c) {
			return nil, &OutOfAlphabetError{Ch: c}
		}
	}

	active := epsilonClosure(nfa, []uint32{nfa.Start})
	steps := []SimulationStep{{
		Index:     0,
		Active:    active,
		Accepting: containsSorted(active, nfa.Accept),
	}}

	pre := active
	i := 0
	for _, c := range input {
		moved, symEdges := moveWithEdges(nfa, pre, c)
		closure, epsEdges := epsilonClosureWithEdges(nfa, moved)
		traversed := append(symEdges, epsEdges...)

		steps = append(steps, SimulationStep{
			Index:       i + 1,
			HasConsumed: true,
			Consumed:    c,
			Active:      closure,
			Traversed:   traversed,
			Accepting:   containsSorted(closure, nfa.Accept),
		})
		pre = closure
		i++
	}
	return steps, nil
}

// TraceDFA simulates input over dfa, returning one SimulationStep per
// character consumed (plus an initial step 0). Once the dead state is
// reached, remaining steps have an empty active set and are never
// accepting, without materializing the dead state itself.
func TraceDFA(dfa *DFA, input string) ([]SimulationStep, error) {
	runes := []rune(input)
	for _, c := range runes {
		if indexOfRune(dfa.Alphabet, c) < 0 {
			return nil, &OutOfAlphabetError{Ch: c}
		}
	}

	steps := make([]SimulationStep, 0, len(runes)+1)
	steps = append(steps, SimulationStep{
		Index:     0,
		Active:    []uint32{uint32(dfa.Start)},
		Accepting: dfa.IsAccepting(dfa.Start),
	})

	cur := dfa.Start
	dead := false
	for i, c := range runes {
		step := SimulationStep{Index: i + 1, HasConsumed: true, Consumed: c}
		if !dead {
			idx := indexOfRune(dfa.Alphabet, c)
			next := dfa.Trans[cur][idx]
			if next == DeadState {
				dead = true
			} else {
				step.Traversed = []TracedEdge{{From: uint32(cur), To: uint32(next), Label: SymLabel(c)}}
				step.Active = []uint32{uint32(next)}
				step.Accepting = dfa.IsAccepting(next)
				cur = next
			}
		}
		steps = append(steps, step)
	}
	return steps, nil
}
