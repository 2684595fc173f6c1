package regexlib

import "testing"

func parseString(t *testing.T, pattern string) *AST {
	t.Helper()
	toks, err := Lex(pattern)
	if err != nil {
		t.Fatalf("lex %q: %v", pattern, err)
	}
	ast, err := Parse(toks)
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	return ast
}

func TestParserCanonicalPrintout(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"a", "a"},
		{"ab", "(. a b)"},
		{"a+b", "(+ a b)"},
		{"a*", "(* a)"},
		{"a?", "(? a)"},
		{"(a+b)*abb", "(. (* (+ a b)) (. a (. b b)))"},
		{"(aa+aa)", "(+ (. a a) (. a a))"},
		{`\e`, "ε"},
		{"a+b+c", "(+ a (+ b c))"},
		{"abc", "(. a (. b c))"},
	}
	for _, tc := range cases {
		got := parseString(t, tc.pattern).String()
		if got != tc.want {
			t.Errorf("pattern %q: got %q want %q", tc.pattern, got, tc.want)
		}
	}
}

// patternText renders ast back into this package's own pattern grammar,
// fully parenthesized. The canonical S-expression from String() is not
// itself valid pattern syntax (a leading '.' or '+' is a prefix-operator
// error), so the round trip goes through this infix form instead.
func patternText(a *AST) string {
	switch a.Kind {
	case NodeEpsilon:
		return `\e`
	case NodeAtom:
		return escapeMeta(a.Ch)
	case NodeConcat:
		return "(" + patternText(a.Left) + "." + patternText(a.Right) + ")"
	case NodeAlt:
		return "(" + patternText(a.Left) + "+" + patternText(a.Right) + ")"
	case NodeStar:
		return "(" + patternText(a.Left) + ")*"
	default: // NodeOpt
		return "(" + patternText(a.Left) + ")?"
	}
}

func TestParserRoundTrip(t *testing.T) {
	for _, pattern := range []string{"a", "ab", "a+b", "a*", "a?", "(a+b)*abb", "(aa+aa)"} {
		ast := parseString(t, pattern)
		text := patternText(ast)

		toks, err := Lex(text)
		if err != nil {
			t.Fatalf("re-lex %q (from %q): %v", text, pattern, err)
		}
		reparsed, err := Parse(toks)
		if err != nil {
			t.Fatalf("re-parse %q (from %q): %v", text, pattern, err)
		}
		if !ast.Equal(reparsed) {
			t.Errorf("pattern %q: round trip mismatch: %q vs %q", pattern, ast, reparsed)
		}
	}
}

func TestParserEmptyPattern(t *testing.T) {
	toks, err := Lex("")
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	_, err = Parse(toks)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != UnexpectedEOF {
		t.Fatalf("want UnexpectedEof, got %v", err)
	}
}

func TestParserMismatchedLeftParen(t *testing.T) {
	toks, _ := Lex("(a")
	_, err := Parse(toks)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != MismatchedLeftParen {
		t.Fatalf("want MismatchedLeftParen, got %v", err)
	}
}

func TestParserRightParenWithoutLeft(t *testing.T) {
	toks, _ := Lex("a)")
	_, err := Parse(toks)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != RightParenWithoutLeft {
		t.Fatalf("want RightParenWithoutLeft, got %v", err)
	}
}

func TestParserEmptyGroup(t *testing.T) {
	toks, _ := Lex("()")
	_, err := Parse(toks)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ParenthesesWithInvalidExp {
		t.Fatalf("want ParenthesesWithInvalidExp, got %v", err)
	}
}

func TestParserUnexpectedPrefixOperator(t *testing.T) {
	toks, _ := Lex("*a")
	_, err := Parse(toks)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != UnexpectedPrefixOperator || perr.Op != TokStar {
		t.Fatalf("want UnexpectedPrefixOperator(*), got %v", err)
	}
}
