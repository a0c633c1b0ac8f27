package ast

// Field is one named, ordered member of a node kind. Get extracts the value
// from a node of the matching kind; sequence-valued fields are returned as
// []any so walkers handle every sequence uniformly.
type Field struct {
	Name string
	Get  func(Node) any
}

// fieldTable maps kind name to declared field order. Exclusion policy lives
// in the consumers; the table always lists every field, location and color
// members included.
var fieldTable = map[string][]Field{
	"Module": {
		{"name", func(n Node) any { return n.(*Module).Name }},
		{"decls", func(n Node) any { return anySlice(n.(*Module).Decls) }},
		{"loc", func(n Node) any { return n.(*Module).Loc }},
	},
	"FuncDef": {
		{"name", func(n Node) any { return n.(*FuncDef).Name }},
		{"args", func(n Node) any { return anySlice(n.(*FuncDef).Args) }},
		{"return_type", func(n Node) any { return n.(*FuncDef).ReturnType }},
		{"body", func(n Node) any { return anySlice(n.(*FuncDef).Body) }},
		{"loc", func(n Node) any { return n.(*FuncDef).Loc }},
	},
	"FuncArg": {
		{"name", func(n Node) any { return n.(*FuncArg).Name }},
		{"type", func(n Node) any { return n.(*FuncArg).Type }},
		{"loc", func(n Node) any { return n.(*FuncArg).Loc }},
	},
	"VarDecl": {
		{"name", func(n Node) any { return n.(*VarDecl).Name }},
		{"type", func(n Node) any { return n.(*VarDecl).Type }},
		{"value", func(n Node) any { return n.(*VarDecl).Value }},
		{"loc", func(n Node) any { return n.(*VarDecl).Loc }},
		{"target_loc", func(n Node) any { return n.(*VarDecl).TargetLoc }},
	},
	"Assign": {
		{"target", func(n Node) any { return n.(*Assign).Target }},
		{"value", func(n Node) any { return n.(*Assign).Value }},
		{"loc", func(n Node) any { return n.(*Assign).Loc }},
		{"target_loc", func(n Node) any { return n.(*Assign).TargetLoc }},
	},
	"Return": {
		{"value", func(n Node) any { return n.(*Return).Value }},
		{"loc", func(n Node) any { return n.(*Return).Loc }},
	},
	"If": {
		{"test", func(n Node) any { return n.(*If).Test }},
		{"then", func(n Node) any { return anySlice(n.(*If).Then) }},
		{"else", func(n Node) any { return anySlice(n.(*If).Else) }},
		{"loc", func(n Node) any { return n.(*If).Loc }},
	},
	"While": {
		{"test", func(n Node) any { return n.(*While).Test }},
		{"body", func(n Node) any { return anySlice(n.(*While).Body) }},
		{"loc", func(n Node) any { return n.(*While).Loc }},
	},
	"ExprStmt": {
		{"value", func(n Node) any { return n.(*ExprStmt).Value }},
		{"loc", func(n Node) any { return n.(*ExprStmt).Loc }},
	},
	"Name": {
		{"id", func(n Node) any { return n.(*Name).ID }},
		{"loc", func(n Node) any { return n.(*Name).Loc }},
		{"color", func(n Node) any { return n.(*Name).Color }},
	},
	"Constant": {
		{"value", func(n Node) any { return n.(*Constant).Value }},
		{"loc", func(n Node) any { return n.(*Constant).Loc }},
		{"color", func(n Node) any { return n.(*Constant).Color }},
	},
	"BinOp": {
		{"op", func(n Node) any { return n.(*BinOp).Op }},
		{"left", func(n Node) any { return n.(*BinOp).Left }},
		{"right", func(n Node) any { return n.(*BinOp).Right }},
		{"loc", func(n Node) any { return n.(*BinOp).Loc }},
		{"color", func(n Node) any { return n.(*BinOp).Color }},
	},
	"Call": {
		{"func", func(n Node) any { return n.(*Call).Func }},
		{"args", func(n Node) any { return anySlice(n.(*Call).Args) }},
		{"loc", func(n Node) any { return n.(*Call).Loc }},
		{"color", func(n Node) any { return n.(*Call).Color }},
	},
	"ListLit": {
		{"items", func(n Node) any { return anySlice(n.(*ListLit).Items) }},
		{"loc", func(n Node) any { return n.(*ListLit).Loc }},
		{"color", func(n Node) any { return n.(*ListLit).Color }},
	},
	"GetAttr": {
		{"value", func(n Node) any { return n.(*GetAttr).Value }},
		{"attr", func(n Node) any { return n.(*GetAttr).Attr }},
		{"loc", func(n Node) any { return n.(*GetAttr).Loc }},
		{"color", func(n Node) any { return n.(*GetAttr).Color }},
	},
}

// Fields returns the declared field order for kind, or nil for an unknown
// kind. The returned slice is shared; callers must not mutate it.
func Fields(kind string) []Field {
	return fieldTable[kind]
}

// anySlice widens a typed slice to []any. A nil slice stays nil so empty
// sequence fields render as [].
func anySlice[T any](in []T) []any {
	if in == nil {
		return nil
	}
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
