package lexer

import (
	"errors"
	"testing"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestAll(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Kind
	}{
		{
			name: "Empty",
			src:  "",
			want: []Kind{EOF},
		},
		{
			name: "KeywordsAndIdents",
			src:  "var x def while foo",
			want: []Kind{VAR, IDENT, DEF, WHILE, IDENT, EOF},
		},
		{
			name: "Operators",
			src:  "-> == != <= >= = < > + - * /",
			want: []Kind{ARROW, EQ, NE, LE, GE, ASSIGN, LT, GT, PLUS, MINUS, STAR, SLASH, EOF},
		},
		{
			name: "Punctuation",
			src:  "( ) { } [ ] , : .",
			want: []Kind{LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, COLON, DOT, EOF},
		},
		{
			name: "Literals",
			src:  `42 "hi" true false`,
			want: []Kind{INT, STRING, TRUE, FALSE, EOF},
		},
		{
			name: "CommentsSkipped",
			src:  "x # trailing comment\n# full line\ny",
			want: []Kind{IDENT, IDENT, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := New(tt.src).All()
			if err != nil {
				t.Fatalf("All: %v", err)
			}
			got := kinds(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("kinds = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenText(t *testing.T) {
	toks, err := New(`name 17 "a b"`).All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if toks[0].Text != "name" || toks[1].Text != "17" || toks[2].Text != "a b" {
		t.Errorf("texts = %q %q %q", toks[0].Text, toks[1].Text, toks[2].Text)
	}
}

func TestPositions(t *testing.T) {
	toks, err := New("a\n  bb").All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	a, bb := toks[0], toks[1]
	if a.Line != 1 || a.Col != 1 {
		t.Errorf("a at %d:%d, want 1:1", a.Line, a.Col)
	}
	if bb.Line != 2 || bb.Col != 3 {
		t.Errorf("bb at %d:%d, want 2:3", bb.Line, bb.Col)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"UnterminatedString", `"abc`, ErrUnterminatedString},
		{"UnterminatedStringNewline", "\"abc\nx", ErrUnterminatedString},
		{"UnexpectedChar", "a ? b", ErrUnexpectedChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.src).All()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: IDENT, Text: "x"}, "IDENT(x)"},
		{Token{Kind: INT, Text: "9"}, "INT(9)"},
		{Token{Kind: STRING, Text: "hi"}, `STRING("hi")`},
		{Token{Kind: ARROW}, "->"},
		{Token{Kind: EOF}, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
