package regexlib

// Artifact is the aggregate output of compiling a pattern: the AST, NFA,
// and alphabet are always present; the DFA and minimal DFA are computed
// lazily on first demand and cached thereafter. An Artifact is immutable
// from the caller's point of view except for this one-shot cache fill, and
// per the concurrency model is not safe for concurrent DFA()/MinDFA()
// calls without external synchronization.
type Artifact struct {
	Pattern  string
	AST      *AST
	NFA      *NFA
	Alphabet []rune

	dfa    *DFA
	minDFA *DFA
}

// Build lexes and parses pattern, then runs Thompson construction,
// producing an Artifact with its AST, NFA, and alphabet populated. The DFA
// and minimal DFA are left absent until DFA() or MinDFA() is first called.
func Build(pattern string) (*Artifact, error) {
	tokens, err := Lex(pattern)
	if err != nil {
		lexErr := err.(*LexError)
		return nil, &BuildError{Kind: BuildErrLex, Lex: lexErr}
	}
	ast, err := Parse(tokens)
	if err != nil {
		parseErr := err.(*ParseError)
		return nil, &BuildError{Kind: BuildErrParse, Parse: parseErr}
	}
	nfa := BuildNFA(ast)
	return &Artifact{Pattern: pattern, AST: ast, NFA: nfa, Alphabet: nfa.Alphabet()}, nil
}

// DFA returns the artifact's determinized automaton, computing and caching
// it on first call.
func (a *Artifact) DFA() *DFA {
	if a.dfa == nil {
		a.dfa = Determinize(a.NFA)
	}
	return a.dfa
}

// MinDFA returns the artifact's minimized automaton, computing and caching
// it (and its DFA prerequisite) on first call.
func (a *Artifact) MinDFA() *DFA {
	if a.minDFA == nil {
		a.minDFA = Minimize(a.DFA())
	}
	return a.minDFA
}
