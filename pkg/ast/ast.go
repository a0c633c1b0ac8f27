// Package ast defines the slate abstract syntax tree.
//
// Nodes are pointer structs implementing [Node]. Expression positions inside
// statements are typed any because the front end may place either a slate
// expression or a lowered [github.com/slatelang/slate/pkg/kernel] expression
// there; consumers dispatch on the concrete type.
//
// Every kind publishes its ordered field list through [Fields], a static
// table populated at init. Tools that walk arbitrary nodes (the dumper, the
// DOT exporter) read fields through that table instead of reflecting over
// struct members.
package ast

import "fmt"

// Loc is a source position. It is carried by every node and excluded from
// dumps by default.
type Loc struct {
	Line int
	Col  int
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Node is implemented by every slate AST node.
type Node interface {
	// Kind returns the concrete variant name, e.g. "FuncDef".
	Kind() string
	node()
}

// Expr is implemented by slate expression nodes. Expressions may carry an
// attached display color used by debugging tools; it is empty for most nodes.
type Expr interface {
	Node
	DisplayColor() string
}

// exprBase carries the optional display color shared by all expressions.
type exprBase struct {
	Color string
}

func (e *exprBase) DisplayColor() string { return e.Color }

// SetColor attaches a display color (e.g. "yellow") to the expression.
func (e *exprBase) SetColor(c string) { e.Color = c }

// Module is the root of a parsed source file.
type Module struct {
	Name  string
	Decls []Node
	Loc   Loc
}

// FuncDef declares a function with typed arguments and a body.
type FuncDef struct {
	Name       string
	Args       []*FuncArg
	ReturnType any
	Body       []Node
	Loc        Loc
}

// FuncArg is one typed parameter of a FuncDef.
type FuncArg struct {
	Name string
	Type any
	Loc  Loc
}

// VarDecl declares a variable with an optional initial value.
type VarDecl struct {
	Name      string
	Type      any
	Value     any
	Loc       Loc
	TargetLoc Loc
}

// Assign stores Value into the named target.
type Assign struct {
	Target    string
	Value     any
	Loc       Loc
	TargetLoc Loc
}

// Return exits the enclosing function, yielding Value (may be nil).
type Return struct {
	Value any
	Loc   Loc
}

// If is a conditional with an optional else branch.
type If struct {
	Test any
	Then []Node
	Else []Node
	Loc  Loc
}

// While loops over Body while Test holds.
type While struct {
	Test any
	Body []Node
	Loc  Loc
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	Value any
	Loc   Loc
}

// Name references a binding by identifier.
type Name struct {
	exprBase
	ID  string
	Loc Loc
}

// Constant is a literal scalar: int, bool or string.
type Constant struct {
	exprBase
	Value any
	Loc   Loc
}

// BinOp applies a binary operator to two expressions.
type BinOp struct {
	exprBase
	Op    string
	Left  any
	Right any
	Loc   Loc
}

// Call invokes Func with positional Args.
type Call struct {
	exprBase
	Func any
	Args []any
	Loc  Loc
}

// ListLit is a list literal.
type ListLit struct {
	exprBase
	Items []any
	Loc   Loc
}

// GetAttr reads attribute Attr from Value.
type GetAttr struct {
	exprBase
	Value any
	Attr  string
	Loc   Loc
}

func (*Module) Kind() string   { return "Module" }
func (*FuncDef) Kind() string  { return "FuncDef" }
func (*FuncArg) Kind() string  { return "FuncArg" }
func (*VarDecl) Kind() string  { return "VarDecl" }
func (*Assign) Kind() string   { return "Assign" }
func (*Return) Kind() string   { return "Return" }
func (*If) Kind() string       { return "If" }
func (*While) Kind() string    { return "While" }
func (*ExprStmt) Kind() string { return "ExprStmt" }
func (*Name) Kind() string     { return "Name" }
func (*Constant) Kind() string { return "Constant" }
func (*BinOp) Kind() string    { return "BinOp" }
func (*Call) Kind() string     { return "Call" }
func (*ListLit) Kind() string  { return "ListLit" }
func (*GetAttr) Kind() string  { return "GetAttr" }

func (*Module) node()   {}
func (*FuncDef) node()  {}
func (*FuncArg) node()  {}
func (*VarDecl) node()  {}
func (*Assign) node()   {}
func (*Return) node()   {}
func (*If) node()       {}
func (*While) node()    {}
func (*ExprStmt) node() {}
func (*Name) node()     {}
func (*Constant) node() {}
func (*BinOp) node()    {}
func (*Call) node()     {}
func (*ListLit) node()  {}
func (*GetAttr) node()  {}
