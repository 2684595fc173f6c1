package regexlib

import (
	"errors"
	"testing"
)

func TestBuildPopulatesArtifact(t *testing.T) {
	art, err := Build("(a+b)*abb")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if art.Pattern != "(a+b)*abb" {
		t.Errorf("want pattern preserved verbatim, got %q", art.Pattern)
	}
	if art.AST == nil || art.NFA == nil {
		t.Fatalf("want AST and NFA populated, got %+v", art)
	}
	if len(art.Alphabet) != 2 || art.Alphabet[0] != 'a' || art.Alphabet[1] != 'b' {
		t.Errorf("want alphabet [a b], got %v", art.Alphabet)
	}
}

func TestBuildLexFailureWrapsLexError(t *testing.T) {
	_, err := Build(`a\`)
	buildErr, ok := err.(*BuildError)
	if !ok {
		t.Fatalf("want *BuildError, got %T (%v)", err, err)
	}
	if buildErr.Kind != BuildErrLex {
		t.Fatalf("want BuildErrLex, got %v", buildErr.Kind)
	}
	var lexErr *LexError
	if !errors.As(buildErr, &lexErr) {
		t.Fatalf("want Unwrap to expose a *LexError")
	}
	if lexErr.Kind != DanglingEscape {
		t.Fatalf("want DanglingEscape, got %v", lexErr.Kind)
	}
}

func TestBuildParseFailureWrapsParseError(t *testing.T) {
	_, err := Build("()")
	buildErr, ok := err.(*BuildError)
	if !ok {
		t.Fatalf("want *BuildError, got %T (%v)", err, err)
	}
	if buildErr.Kind != BuildErrParse {
		t.Fatalf("want BuildErrParse, got %v", buildErr.Kind)
	}
	var parseErr *ParseError
	if !errors.As(buildErr, &parseErr) {
		t.Fatalf("want Unwrap to expose a *ParseError")
	}
	if parseErr.Kind != ParenthesesWithInvalidExp {
		t.Fatalf("want ParenthesesWithInvalidExp, got %v", parseErr.Kind)
	}
}

func TestArtifactDFAIsComputedOnceAndCached(t *testing.T) {
	art, err := Build("a+b")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	first := art.DFA()
	second := art.DFA()
	if first != second {
		t.Fatalf("want DFA() to return the same cached pointer on repeated calls")
	}
}

func TestArtifactMinDFAIsComputedOnceAndCached(t *testing.T) {
	art, err := Build("(aa+aa)")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	first := art.MinDFA()
	second := art.MinDFA()
	if first != second {
		t.Fatalf("want MinDFA() to return the same cached pointer on repeated calls")
	}
	if first.NumStates != 3 {
		t.Fatalf("want 3-state minimal DFA, got %d", first.NumStates)
	}
}

func TestArtifactMinDFADoesNotMutateDFA(t *testing.T) {
	art, err := Build("(aa+aa)")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	dfa := art.DFA()
	before := dfa.NumStates
	art.MinDFA()
	if dfa.NumStates != before {
		t.Fatalf("MinDFA() must not mutate the cached DFA in place")
	}
}
