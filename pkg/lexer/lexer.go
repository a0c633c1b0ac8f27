package lexer

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrUnterminatedString is returned when a string literal reaches the
	// end of a line or the input without a closing quote.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrUnexpectedChar is returned for a character outside the language.
	ErrUnexpectedChar = errors.New("unexpected character")
)

// Two-character operators are matched before their one-character prefixes.
var twoCharOps = map[string]Kind{
	"->": ARROW, "==": EQ, "!=": NE, "<=": LE, ">=": GE,
}

var oneCharOps = map[rune]Kind{
	'(': LPAREN, ')': RPAREN, '{': LBRACE, '}': RBRACE,
	'[': LBRACKET, ']': RBRACKET, ',': COMMA, ':': COLON, '.': DOT,
	'=': ASSIGN, '+': PLUS, '-': MINUS, '*': STAR, '/': SLASH,
	'<': LT, '>': GT,
}

// Lexer scans slate source text. Create one with [New] and drain it with
// [Lexer.Next] or [Lexer.All].
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

// New returns a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, col: 1}
}

// All scans the remaining input and returns every token up to and including
// the EOF token.
func (l *Lexer) All() ([]Token, error) {
	var toks []Token
	for {
		t, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, t)
		if t.Kind == EOF {
			return toks, nil
		}
	}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (l *Lexer) Next() (Token, error) {
	l.skipSpaceAndComments()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Line: l.line, Col: l.col}, nil
	}

	line, col := l.line, l.col
	c := l.src[l.pos]

	switch {
	case unicode.IsLetter(c) || c == '_':
		text := l.takeWhile(func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		})
		if kw, ok := keywords[text]; ok {
			return Token{Kind: kw, Line: line, Col: col}, nil
		}
		return Token{Kind: IDENT, Text: text, Line: line, Col: col}, nil

	case unicode.IsDigit(c):
		text := l.takeWhile(unicode.IsDigit)
		return Token{Kind: INT, Text: text, Line: line, Col: col}, nil

	case c == '"':
		l.advance()
		var text []rune
		for {
			if l.pos >= len(l.src) || l.src[l.pos] == '\n' {
				return Token{}, fmt.Errorf("%d:%d: %w", line, col, ErrUnterminatedString)
			}
			if l.src[l.pos] == '"' {
				l.advance()
				return Token{Kind: STRING, Text: string(text), Line: line, Col: col}, nil
			}
			text = append(text, l.src[l.pos])
			l.advance()
		}
	}

	if l.pos+1 < len(l.src) {
		if k, ok := twoCharOps[string(l.src[l.pos:l.pos+2])]; ok {
			l.advance()
			l.advance()
			return Token{Kind: k, Line: line, Col: col}, nil
		}
	}
	if k, ok := oneCharOps[c]; ok {
		l.advance()
		return Token{Kind: k, Line: line, Col: col}, nil
	}

	return Token{}, fmt.Errorf("%d:%d: %w %q", line, col, ErrUnexpectedChar, string(c))
}

func (l *Lexer) skipSpaceAndComments() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		case unicode.IsSpace(c):
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) takeWhile(pred func(rune) bool) string {
	start := l.pos
	for l.pos < len(l.src) && pred(l.src[l.pos]) {
		l.advance()
	}
	return string(l.src[start:l.pos])
}

func (l *Lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}
