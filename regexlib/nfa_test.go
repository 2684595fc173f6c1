package regexlib

import "testing"

func buildNFA(t *testing.T, pattern string) *NFA {
	t.Helper()
	ast := parseString(t, pattern)
	return BuildNFA(ast)
}

func TestNFAFragmentShapeCounts(t *testing.T) {
	cases := []struct {
		pattern           string
		states, edges     int
	}{
		{"a", 2, 1},
		{"ab", 4, 3},
		{"a+b", 6, 6},
		{"a*", 4, 5},
	}
	for _, tc := range cases {
		nfa := buildNFA(t, tc.pattern)
		if nfa.NumStates != tc.states {
			t.Errorf("pattern %q: got %d states want %d", tc.pattern, nfa.NumStates, tc.states)
		}
		if len(nfa.Edges) != tc.edges {
			t.Errorf("pattern %q: got %d edges want %d", tc.pattern, len(nfa.Edges), tc.edges)
		}
	}
}

func TestNFASingleAccept(t *testing.T) {
	for _, pattern := range []string{"a", "ab", "a+b", "a*", "a?", "(a+b)*abb", `\e`} {
		nfa := buildNFA(t, pattern)
		if nfa.Accept >= uint32(nfa.NumStates) {
			t.Errorf("pattern %q: accept state %d out of range [0,%d)", pattern, nfa.Accept, nfa.NumStates)
		}
		if nfa.Start >= uint32(nfa.NumStates) {
			t.Errorf("pattern %q: start state %d out of range [0,%d)", pattern, nfa.Start, nfa.NumStates)
		}
	}
}

func TestNFAAdjacencySortedByDestination(t *testing.T) {
	nfa := buildNFA(t, "(a+b)*abb")
	for _, row := range nfa.Transitions {
		for i := 1; i < len(row); i++ {
			if row[i-1].To > row[i].To {
				t.Fatalf("adjacency not sorted by destination: %v", row)
			}
		}
	}
}

func TestNFAAlphabetSortedDeduped(t *testing.T) {
	nfa := buildNFA(t, "baab")
	alphabet := nfa.Alphabet()
	for i := 1; i < len(alphabet); i++ {
		if alphabet[i-1] >= alphabet[i] {
			t.Fatalf("alphabet not strictly increasing: %v", alphabet)
		}
	}
	if len(alphabet) != 2 || alphabet[0] != 'a' || alphabet[1] != 'b' {
		t.Fatalf("want [a b], got %v", alphabet)
	}
}

func TestNFABoxCoverage(t *testing.T) {
	nfa := buildNFA(t, "(a+b)*abb")

	// Every state maps to some box, and that box actually lists the state.
	for state, boxID := range nfa.StateToBox {
		box := nfa.Boxes[boxID]
		found := false
		for _, s := range box.States {
			if s == uint32(state) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("state %d claims box %d but box does not list it", state, boxID)
		}
	}

	// The root box exists, has no parent, and every other box eventually
	// traces back to it.
	root := nfa.Boxes[0]
	if root.Kind != BoxRoot || root.Parent != nil {
		t.Fatalf("box 0 should be the parentless Root box, got %+v", root)
	}
	for _, box := range nfa.Boxes[1:] {
		visited := map[uint32]bool{box.ID: true}
		cur := box
		for cur.Parent != nil {
			if visited[*cur.Parent] {
				t.Fatalf("box %d: cycle detected walking to root", box.ID)
			}
			visited[*cur.Parent] = true
			cur = nfa.Boxes[*cur.Parent]
		}
		if cur.Kind != BoxRoot {
			t.Fatalf("box %d does not trace back to a Root box", box.ID)
		}
	}
}
