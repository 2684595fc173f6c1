package regexlib

import "testing"

func buildMinDFA(t *testing.T, pattern string) *DFA {
	t.Helper()
	return Minimize(buildDFA(t, pattern))
}

func TestMinimizeScenarioFive(t *testing.T) {
	min := buildMinDFA(t, "(a+b)*abb")
	if min.NumStates != 4 {
		t.Fatalf("want 4 reachable states, got %d", min.NumStates)
	}
	for _, s := range []string{"abb", "aabb", "babb", "ababb"} {
		if !DFAAccepts(min, s) {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	for _, s := range []string{"ab", "abba", ""} {
		if DFAAccepts(min, s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestMinimizeScenarioSixCollapsesDuplicateBranches(t *testing.T) {
	min := buildMinDFA(t, "(aa+aa)")
	if min.NumStates != 3 {
		t.Fatalf("want 3 states after collapsing duplicate alternation branches, got %d", min.NumStates)
	}
	if !DFAAccepts(min, "aa") {
		t.Error("expected \"aa\" to be accepted")
	}
	for _, s := range []string{"", "a", "aaa"} {
		if DFAAccepts(min, s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}

	// Must behave identically to the plain pattern "aa".
	plain := buildMinDFA(t, "aa")
	if plain.NumStates != min.NumStates {
		t.Fatalf("want same minimal state count as \"aa\" (%d), got %d", plain.NumStates, min.NumStates)
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	for _, pattern := range []string{"(a+b)*abb", "(aa+aa)", "a*", "a+b", "ab"} {
		once := buildMinDFA(t, pattern)
		twice := Minimize(once)
		if once.NumStates != twice.NumStates {
			t.Errorf("pattern %q: minimize not idempotent: %d vs %d states", pattern, once.NumStates, twice.NumStates)
		}
	}
}

func TestMinimizeSingleStateEdgeCase(t *testing.T) {
	// A DFA with zero or one state must be returned unchanged.
	d := &DFA{NumStates: 1, Start: 0, Accepting: []bool{true}, Trans: [][]int{{}}, Alphabet: nil}
	min := Minimize(d)
	if min.NumStates != 1 || !min.Accepting[0] {
		t.Fatalf("want unchanged single-state DFA, got %+v", min)
	}
}

func TestMinimizePreservesLanguageAcrossStages(t *testing.T) {
	for _, pattern := range []string{"a", "ab", "a+b", "a*", "a?", "(a+b)*abb", "(aa+aa)"} {
		nfa := buildNFA(t, pattern)
		dfa := Determinize(nfa)
		min := Minimize(dfa)
		for _, s := range []string{"", "a", "b", "aa", "ab", "abb", "aabb", "aaaa"} {
			nAcc := NFAAccepts(nfa, s)
			dAcc := DFAAccepts(dfa, s)
			mAcc := DFAAccepts(min, s)
			if nAcc != dAcc || dAcc != mAcc {
				t.Errorf("pattern %q input %q: nfa=%v dfa=%v min=%v disagree", pattern, s, nAcc, dAcc, mAcc)
			}
		}
	}
}
