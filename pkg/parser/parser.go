// Package parser builds slate syntax trees from source text.
//
// The parser is a hand-written recursive-descent parser over the token
// stream from [github.com/slatelang/slate/pkg/lexer]. Foldable expressions
// (names, integer and boolean literals, binary operators) on the right-hand
// side of declarations and assignments are lowered into the kernel form so
// the constant folder can work on them directly; everything else stays in
// slate AST form.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/lexer"
)

// ErrSyntax wraps every syntax error returned by [Parse].
var ErrSyntax = errors.New("syntax error")

// Parse lexes and parses src into a module. name becomes the module name
// when the source has no module header.
func Parse(name, src string) (*ast.Module, error) {
	toks, err := lexer.New(src).All()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	p := &parser{toks: toks, declared: make(map[string]bool)}
	return p.parseModule(name)
}

type parser struct {
	toks []lexer.Token
	pos  int

	// declared tracks names bound by var declarations and function args,
	// used to mark lowered kernel names as variable references.
	declared map[string]bool
}

func (p *parser) peek() lexer.Token { return p.toks[p.pos] }

func (p *parser) next() lexer.Token {
	t := p.toks[p.pos]
	if t.Kind != lexer.EOF {
		p.pos++
	}
	return t
}

func (p *parser) accept(k lexer.Kind) (lexer.Token, bool) {
	if p.peek().Kind == k {
		return p.next(), true
	}
	return lexer.Token{}, false
}

func (p *parser) expect(k lexer.Kind) (lexer.Token, error) {
	t := p.peek()
	if t.Kind != k {
		return t, fmt.Errorf("%w: %d:%d: expected %s, found %s", ErrSyntax, t.Line, t.Col, k, t)
	}
	return p.next(), nil
}

func loc(t lexer.Token) ast.Loc { return ast.Loc{Line: t.Line, Col: t.Col} }

func (p *parser) parseModule(name string) (*ast.Module, error) {
	mod := &ast.Module{Name: name, Loc: ast.Loc{Line: 1, Col: 1}}
	if _, ok := p.accept(lexer.MODULE); ok {
		t, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		mod.Name = t.Text
	}
	for p.peek().Kind != lexer.EOF {
		decl, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		mod.Decls = append(mod.Decls, decl)
	}
	return mod, nil
}

func (p *parser) parseStmt() (ast.Node, error) {
	switch t := p.peek(); t.Kind {
	case lexer.DEF:
		return p.parseFuncDef()
	case lexer.VAR:
		return p.parseVarDecl()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.RETURN:
		p.next()
		ret := &ast.Return{Loc: loc(t)}
		if startsExpr(p.peek().Kind) {
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			ret.Value = value
		}
		return ret, nil
	case lexer.IDENT:
		// Assignment needs two tokens of lookahead: IDENT '='.
		if p.toks[p.pos+1].Kind == lexer.ASSIGN {
			target := p.next()
			p.next()
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.Assign{
				Target:    target.Text,
				Value:     p.lower(value),
				Loc:       loc(target),
				TargetLoc: loc(target),
			}, nil
		}
		fallthrough
	default:
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Value: value, Loc: loc(t)}, nil
	}
}

func startsExpr(k lexer.Kind) bool {
	switch k {
	case lexer.IDENT, lexer.INT, lexer.STRING, lexer.TRUE, lexer.FALSE,
		lexer.LPAREN, lexer.LBRACKET, lexer.MINUS:
		return true
	}
	return false
}

func (p *parser) parseFuncDef() (ast.Node, error) {
	def := p.next()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	fn := &ast.FuncDef{Name: name.Text, Loc: loc(def)}
	for p.peek().Kind != lexer.RPAREN {
		if len(fn.Args) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		argName, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		argType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		p.declared[argName.Text] = true
		fn.Args = append(fn.Args, &ast.FuncArg{Name: argName.Text, Type: argType, Loc: loc(argName)})
	}
	p.next() // RPAREN

	if _, ok := p.accept(lexer.ARROW); ok {
		ret, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fn.ReturnType = ret
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

func (p *parser) parseVarDecl() (ast.Node, error) {
	v := p.next()
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDecl{Name: name.Text, Type: typ, Loc: loc(v), TargetLoc: loc(name)}
	if _, ok := p.accept(lexer.ASSIGN); ok {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		decl.Value = p.lower(value)
	}
	p.declared[name.Text] = true
	return decl, nil
}

// parseType accepts a bare type name. Types are plain name expressions for
// now; the checker interprets them.
func (p *parser) parseType() (any, error) {
	t, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.Name{ID: t.Text, Loc: loc(t)}, nil
}

func (p *parser) parseIf() (ast.Node, error) {
	t := p.next()
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Test: test, Then: then, Loc: loc(t)}
	if _, ok := p.accept(lexer.ELSE); ok {
		if node.Else, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *parser) parseWhile() (ast.Node, error) {
	t := p.next()
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Test: test, Body: body, Loc: loc(t)}, nil
}

func (p *parser) parseBlock() ([]ast.Node, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	stmts := []ast.Node{}
	for p.peek().Kind != lexer.RBRACE {
		if p.peek().Kind == lexer.EOF {
			t := p.peek()
			return nil, fmt.Errorf("%w: %d:%d: unterminated block", ErrSyntax, t.Line, t.Col)
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	p.next() // RBRACE
	return stmts, nil
}

var comparisonOps = map[lexer.Kind]string{
	lexer.LT: "<", lexer.GT: ">", lexer.LE: "<=", lexer.GE: ">=",
	lexer.EQ: "==", lexer.NE: "!=",
}

func (p *parser) parseExpr() (any, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := comparisonOps[p.peek().Kind]
		if !ok {
			return left, nil
		}
		t := p.next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right, Loc: loc(t)}
	}
}

func (p *parser) parseAdditive() (any, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch p.peek().Kind {
		case lexer.PLUS:
			op = "+"
		case lexer.MINUS:
			op = "-"
		default:
			return left, nil
		}
		t := p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right, Loc: loc(t)}
	}
}

func (p *parser) parseTerm() (any, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch p.peek().Kind {
		case lexer.STAR:
			op = "*"
		case lexer.SLASH:
			op = "/"
		default:
			return left, nil
		}
		t := p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right, Loc: loc(t)}
	}
}

func (p *parser) parseUnary() (any, error) {
	if t, ok := p.accept(lexer.MINUS); ok {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		zero := &ast.Constant{Value: 0, Loc: loc(t)}
		return &ast.BinOp{Op: "-", Left: zero, Right: operand, Loc: loc(t)}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (any, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case lexer.LPAREN:
			t := p.next()
			call := &ast.Call{Func: expr, Args: []any{}, Loc: loc(t)}
			for p.peek().Kind != lexer.RPAREN {
				if len(call.Args) > 0 {
					if _, err := p.expect(lexer.COMMA); err != nil {
						return nil, err
					}
				}
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
			}
			p.next() // RPAREN
			expr = call
		case lexer.DOT:
			t := p.next()
			attr, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			expr = &ast.GetAttr{Value: expr, Attr: attr.Text, Loc: loc(t)}
		default:
			return expr, nil
		}
	}
}

func (p *parser) parsePrimary() (any, error) {
	switch t := p.peek(); t.Kind {
	case lexer.INT:
		p.next()
		n, err := strconv.Atoi(t.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: %d:%d: bad integer %q", ErrSyntax, t.Line, t.Col, t.Text)
		}
		return &ast.Constant{Value: n, Loc: loc(t)}, nil
	case lexer.STRING:
		p.next()
		return &ast.Constant{Value: t.Text, Loc: loc(t)}, nil
	case lexer.TRUE:
		p.next()
		return &ast.Constant{Value: true, Loc: loc(t)}, nil
	case lexer.FALSE:
		p.next()
		return &ast.Constant{Value: false, Loc: loc(t)}, nil
	case lexer.IDENT:
		p.next()
		return &ast.Name{ID: t.Text, Loc: loc(t)}, nil
	case lexer.LPAREN:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.LBRACKET:
		p.next()
		list := &ast.ListLit{Items: []any{}, Loc: loc(t)}
		for p.peek().Kind != lexer.RBRACKET {
			if len(list.Items) > 0 {
				if _, err := p.expect(lexer.COMMA); err != nil {
					return nil, err
				}
			}
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, item)
		}
		p.next() // RBRACKET
		return list, nil
	default:
		return nil, fmt.Errorf("%w: %d:%d: unexpected %s", ErrSyntax, t.Line, t.Col, t)
	}
}
