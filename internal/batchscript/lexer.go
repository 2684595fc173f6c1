package batchscript

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Lexer wraps a generated lexmachine scanner over the batch script grammar:
// the `pattern`/`test` keywords, quoted string literals, and `true`/`false`
// boolean literals, with `#`-prefixed line comments and whitespace skipped.
type Lexer struct {
	scanner *lexmachine.Scanner
}

// NewLexer builds and compiles the lexmachine grammar for input and returns
// a Lexer ready to be walked with Next.
func NewLexer(input []byte) (*Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`[ \t\n\r]+`), skip)
	lex.Add([]byte(`#[^\n]*`), skip)
	lex.Add([]byte(`pattern`), tokAction(TokenPattern))
	lex.Add([]byte(`test`), tokAction(TokenTest))
	lex.Add([]byte(`true`), tokAction(TokenBool))
	lex.Add([]byte(`false`), tokAction(TokenBool))
	lex.Add([]byte(`"[^"]*"`), stringAction)

	if err := lex.Compile(); err != nil {
		return nil, fmt.Errorf("compiling batch script grammar: %w", err)
	}
	scanner, err := lex.Scanner(input)
	if err != nil {
		return nil, fmt.Errorf("scanning batch script: %w", err)
	}
	return &Lexer{scanner: scanner}, nil
}

// Next returns the next token, mapping end-of-input to a TokenEOF token and
// a scan failure to a returned error.
func (l *Lexer) Next() (Token, error) {
	tok, err, eof := l.scanner.Next()
	if eof {
		return Token{Kind: TokenEOF}, nil
	}
	if err != nil {
		return Token{}, err
	}
	return tok.(Token), nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(kind TokenKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Kind: kind, Literal: string(m.Bytes), Line: m.StartLine}, nil
	}
}

func stringAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	raw := string(m.Bytes)
	return Token{Kind: TokenString, Literal: raw[1 : len(raw)-1], Line: m.StartLine}, nil
}
