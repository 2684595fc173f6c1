// Package batchscript implements a small line-oriented DSL for regression-
// testing regex patterns without invoking the CLI once per pattern: a
// script is a sequence of "pattern" statements, each followed by zero or
// more "test" statements checked against it.
package batchscript

import (
	"bufio"
	"fmt"
	"io"

	"github.com/trevorflahardy/RegViz/regexlib"
)

// Run reads a batch script from r, executes it against regexlib, and
// writes one PASS/FAIL line per test statement to w. A test statement
// passes only if both NFA and DFA acceptance of its input agree with the
// statement's expected outcome. Run returns the pass/fail tally; a non-nil
// err means the script itself failed to lex, parse, or compile a pattern
// statement, in which case passed/failed reflect only the statements
// executed before the failure.
func Run(w io.Writer, r io.Reader) (passed, failed int, err error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, fmt.Errorf("reading batch script: %w", err)
	}

	lexer, err := NewLexer(input)
	if err != nil {
		return 0, 0, err
	}

	var tokens []Token
	for {
		tok, lexErr := lexer.Next()
		if lexErr != nil {
			return 0, 0, &ScriptError{Line: tok.Line, Message: lexErr.Error()}
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}

	stmts, err := Parse(tokens)
	if err != nil {
		return 0, 0, err
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()

	var current *regexlib.Artifact
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case PatternStatement:
			art, buildErr := regexlib.Build(s.Pattern)
			if buildErr != nil {
				return passed, failed, &ScriptError{Line: s.Line, Message: buildErr.Error()}
			}
			current = art

		case TestStatement:
			nfaGot := regexlib.NFAAccepts(current.NFA, s.Input)
			dfaGot := regexlib.DFAAccepts(current.MinDFA(), s.Input)
			if nfaGot == s.Want && dfaGot == s.Want {
				passed++
				fmt.Fprintf(bw, "PASS %q (pattern %q)\n", s.Input, current.Pattern)
			} else {
				failed++
				fmt.Fprintf(bw, "FAIL %q (pattern %q): want %v got nfa=%v dfa=%v\n",
					s.Input, current.Pattern, s.Want, nfaGot, dfaGot)
			}
		}
	}
	return passed, failed, nil
}
