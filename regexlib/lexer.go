package regexlib

// Lexer scans a pattern into a stream of Tokens, one codepoint at a time.
// Positions are codepoint indices, not byte offsets, so a Lexer over
// multi-byte input still reports meaningful positions.
type Lexer struct {
	runes []rune
	pos   int
}

// NewLexer prepares a Lexer over pattern.
func NewLexer(pattern string) *Lexer {
	return &Lexer{runes: []rune(pattern)}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Next scans and returns the next token, advancing the lexer's position.
// Once Eof has been returned, further calls keep returning Eof.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.runes) && isSpace(l.runes[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.runes) {
		return Token{Kind: TokEOF, Pos: l.pos}, nil
	}

	start := l.pos
	ch := l.runes[l.pos]
	l.pos++

	switch ch {
	case '\\':
		if l.pos >= len(l.runes) {
			return Token{}, &LexError{At: start, Kind: DanglingEscape}
		}
		esc := l.runes[l.pos]
		l.pos++
		if esc == 'e' {
			return Token{Kind: TokEpsilon, Pos: start}, nil
		}
		return Token{Kind: TokLiteral, Ch: esc, Pos: start}, nil
	case '+':
		return Token{Kind: TokAlt, Pos: start}, nil
	case '*':
		return Token{Kind: TokStar, Pos: start}, nil
	case '.':
		return Token{Kind: TokConcat, Pos: start}, nil
	case '?':
		return Token{Kind: TokOpt, Pos: start}, nil
	case '(':
		return Token{Kind: TokLParen, Pos: start}, nil
	case ')':
		return Token{Kind: TokRParen, Pos: start}, nil
	default:
		if isAlnum(ch) {
			return Token{Kind: TokLiteral, Ch: ch, Pos: start}, nil
		}
		return Token{}, &LexError{At: start, Kind: InvalidCharacter, Ch: ch}
	}
}

// Lex tokenizes pattern in full, returning the token sequence terminated by
// an Eof token, or the first LexError encountered.
func Lex(pattern string) ([]Token, error) {
	l := NewLexer(pattern)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks, nil
		}
	}
}
