// Package lexer turns slate source text into a token stream.
package lexer

import "fmt"

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	IDENT
	INT
	STRING

	// Keywords
	MODULE
	DEF
	VAR
	IF
	ELSE
	WHILE
	RETURN
	TRUE
	FALSE

	// Punctuation and operators
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,
	COLON    // :
	DOT      // .
	ARROW    // ->
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	EQ       // ==
	NE       // !=
)

var kindNames = map[Kind]string{
	EOF: "EOF", IDENT: "IDENT", INT: "INT", STRING: "STRING",
	MODULE: "module", DEF: "def", VAR: "var", IF: "if", ELSE: "else",
	WHILE: "while", RETURN: "return", TRUE: "true", FALSE: "false",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]", COMMA: ",", COLON: ":", DOT: ".",
	ARROW: "->", ASSIGN: "=", PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/",
	LT: "<", GT: ">", LE: "<=", GE: ">=", EQ: "==", NE: "!=",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var keywords = map[string]Kind{
	"module": MODULE,
	"def":    DEF,
	"var":    VAR,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
}

// Token is one lexeme with its source position.
type Token struct {
	Kind Kind
	Text string // literal text for IDENT, INT and STRING (unquoted)
	Line int
	Col  int
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT, INT:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case STRING:
		return fmt.Sprintf("STRING(%q)", t.Text)
	}
	return t.Kind.String()
}
