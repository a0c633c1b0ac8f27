// Package kernel defines the compact expression form the slate front end
// lowers foldable expressions into. Kernel nodes are embedded inside slate
// AST fields and rendered by debugging tools with a "k:" namespace prefix to
// make their provenance visible.
package kernel

// Node is implemented by every kernel expression node.
type Node interface {
	// Kind returns the concrete variant name, e.g. "BinOp".
	Kind() string
	kernelNode()
}

// UsageMarker is implemented by the tag-only role markers [Load], [Store]
// and [Del]. They carry no nested structure and identify how the enclosing
// Name or GetAttr is used.
type UsageMarker interface {
	Node
	usageMarker()
}

// Name references a binding. IsVar records whether the checker resolved it
// to a local variable; it is not part of the declared field set and is shown
// by the dumper as a synthetic display field.
type Name struct {
	ID    string
	Usage Node
	IsVar bool
}

// Const is a literal scalar.
type Const struct {
	Value any
}

// BinOp applies a binary operator.
type BinOp struct {
	Op    string
	Left  Node
	Right Node
}

// Call invokes Func with positional Args.
type Call struct {
	Func Node
	Args []Node
}

// GetAttr reads attribute Attr from Value.
type GetAttr struct {
	Value Node
	Attr  string
	Usage Node
}

// Load marks a read of the enclosing reference.
type Load struct{}

// Store marks a write of the enclosing reference.
type Store struct{}

// Del marks a deletion of the enclosing reference.
type Del struct{}

func (*Name) Kind() string    { return "Name" }
func (*Const) Kind() string   { return "Const" }
func (*BinOp) Kind() string   { return "BinOp" }
func (*Call) Kind() string    { return "Call" }
func (*GetAttr) Kind() string { return "GetAttr" }
func (*Load) Kind() string    { return "Load" }
func (*Store) Kind() string   { return "Store" }
func (*Del) Kind() string     { return "Del" }

func (*Name) kernelNode()    {}
func (*Const) kernelNode()   {}
func (*BinOp) kernelNode()   {}
func (*Call) kernelNode()    {}
func (*GetAttr) kernelNode() {}
func (*Load) kernelNode()    {}
func (*Store) kernelNode()   {}
func (*Del) kernelNode()     {}

func (*Load) usageMarker()  {}
func (*Store) usageMarker() {}
func (*Del) usageMarker()   {}

// Field is one named, ordered member of a kernel node kind.
type Field struct {
	Name string
	Get  func(Node) any
}

var fieldTable = map[string][]Field{
	"Name": {
		{"id", func(n Node) any { return n.(*Name).ID }},
		{"usage", func(n Node) any { return n.(*Name).Usage }},
	},
	"Const": {
		{"value", func(n Node) any { return n.(*Const).Value }},
	},
	"BinOp": {
		{"op", func(n Node) any { return n.(*BinOp).Op }},
		{"left", func(n Node) any { return n.(*BinOp).Left }},
		{"right", func(n Node) any { return n.(*BinOp).Right }},
	},
	"Call": {
		{"func", func(n Node) any { return n.(*Call).Func }},
		{"args", func(n Node) any { return anySlice(n.(*Call).Args) }},
	},
	"GetAttr": {
		{"value", func(n Node) any { return n.(*GetAttr).Value }},
		{"attr", func(n Node) any { return n.(*GetAttr).Attr }},
		{"usage", func(n Node) any { return n.(*GetAttr).Usage }},
	},
	"Load":  {},
	"Store": {},
	"Del":   {},
}

// Fields returns the declared field order for kind, or nil for an unknown
// kind. The returned slice is shared; callers must not mutate it.
func Fields(kind string) []Field {
	return fieldTable[kind]
}

func anySlice(in []Node) []any {
	if in == nil {
		return nil
	}
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
