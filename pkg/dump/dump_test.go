package dump

import (
	"strings"
	"testing"

	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/kernel"
)

// addTree builds BinOp(+, 1, BinOp(+, 2, 3)) with scalar leaves, the
// canonical mixed inline/multiline shape.
func addTree() *ast.BinOp {
	return &ast.BinOp{
		Op:    "+",
		Left:  1,
		Right: &ast.BinOp{Op: "+", Left: 2, Right: 3},
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name string
		root any
		opts Options
		want string
	}{
		{
			name: "ScalarFieldsStayInline",
			root: &ast.BinOp{Op: "+", Left: 2, Right: 3},
			opts: Options{NoColor: true},
			want: `BinOp(op="+", left=2, right=3)`,
		},
		{
			name: "ComplexFieldForcesMultiline",
			root: addTree(),
			opts: Options{NoColor: true},
			want: "BinOp(\n" +
				"    op=\"+\",\n" +
				"    left=1,\n" +
				"    right=BinOp(op=\"+\", left=2, right=3),\n" +
				")",
		},
		{
			name: "EmptySequenceInline",
			root: &ast.Module{Name: "m"},
			opts: Options{NoColor: true},
			want: "Module(\n" +
				"    name=\"m\",\n" +
				"    decls=[],\n" +
				")",
		},
		{
			name: "NonEmptySequenceOnePerLine",
			root: &ast.ListLit{Items: []any{1, 2}},
			opts: Options{NoColor: true},
			want: "ListLit(\n" +
				"    items=[\n" +
				"        1,\n" +
				"        2,\n" +
				"    ],\n" +
				")",
		},
		{
			name: "KernelPrefixAndSyntheticIsVar",
			root: &kernel.Name{ID: "x", Usage: &kernel.Load{}, IsVar: true},
			opts: Options{NoColor: true},
			want: `k:Name(id="x", usage=k:Load(), is_var=true)`,
		},
		{
			name: "UsageMarkerDoesNotForceMultiline",
			root: &kernel.GetAttr{Value: &kernel.Name{ID: "p", Usage: &kernel.Load{}}, Attr: "x", Usage: &kernel.Load{}},
			opts: Options{NoColor: true},
			want: "k:GetAttr(\n" +
				"    value=k:Name(id=\"p\", usage=k:Load(), is_var=false),\n" +
				"    attr=\"x\",\n" +
				"    usage=k:Load(),\n" +
				")",
		},
		{
			name: "UnknownShapeFallsBack",
			root: struct{ A int }{A: 1},
			opts: Options{NoColor: true},
			want: "{1}",
		},
		{
			name: "NilRendersGenerically",
			root: nil,
			opts: Options{NoColor: true},
			want: "<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tree(tt.root, tt.opts); got != tt.want {
				t.Errorf("Tree() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	root := &ast.Module{Name: "m", Decls: []ast.Node{
		&ast.VarDecl{Name: "x", Value: &kernel.Const{Value: 4}},
		&ast.ExprStmt{Value: addTree()},
	}}
	opts := Options{ColorizeBackgrounds: true}

	first := Tree(root, opts)
	for i := 0; i < 5; i++ {
		if got := Tree(root, opts); got != first {
			t.Fatalf("run %d differs from first rendering", i+1)
		}
	}
}

func TestFieldExclusion(t *testing.T) {
	decl := &ast.VarDecl{
		Name:      "x",
		Value:     7,
		Loc:       ast.Loc{Line: 3, Col: 1},
		TargetLoc: ast.Loc{Line: 3, Col: 5},
	}

	got := Tree(decl, Options{NoColor: true})
	for _, hidden := range []string{"loc=", "target_loc=", "color="} {
		if strings.Contains(got, hidden) {
			t.Errorf("default exclusions leaked %q in %q", hidden, got)
		}
	}

	got = Tree(decl, Options{NoColor: true, FieldsToIgnore: []string{"value"}})
	if strings.Contains(got, "value=") {
		t.Errorf("caller exclusion leaked value= in %q", got)
	}
	if !strings.Contains(got, "name=") {
		t.Errorf("non-excluded field missing from %q", got)
	}
}

func TestFieldOrderMatchesDeclaration(t *testing.T) {
	got := Tree(&ast.BinOp{Op: "+", Left: 1, Right: 2}, Options{NoColor: true})
	want := `BinOp(op="+", left=1, right=2)`
	if got != want {
		t.Errorf("Tree() = %q, want %q", got, want)
	}
}

func TestHighlightWinsByIdentity(t *testing.T) {
	inner := &ast.BinOp{Op: "+", Left: 2, Right: 3}
	// Structurally identical sibling: must NOT highlight.
	twin := &ast.BinOp{Op: "+", Left: 2, Right: 3}
	root := &ast.ListLit{Items: []any{inner, twin}}

	got := Tree(root, Options{Highlight: inner})

	if n := strings.Count(got, "\x1b[31mBinOp"); n != 1 {
		t.Errorf("red BinOp count = %d, want exactly 1\noutput: %q", n, got)
	}
	if n := strings.Count(got, "\x1b[36mBinOp"); n != 1 {
		t.Errorf("structural BinOp count = %d, want exactly 1\noutput: %q", n, got)
	}
}

func TestIndentPrecedesColorOnChildLines(t *testing.T) {
	inner := &ast.Constant{Value: 1}
	root := &ast.ListLit{Items: []any{inner}}

	got := Tree(root, Options{})
	if !strings.Contains(got, "\n        \x1b[36mConstant") {
		t.Errorf("child line must indent before its color scope opens\noutput: %q", got)
	}

	got = Tree(root, Options{Highlight: inner})
	if !strings.Contains(got, "\n        \x1b[31mConstant") {
		t.Errorf("highlighted child line must indent before the alert color\noutput: %q", got)
	}
}

func TestHighlightOverridesBackground(t *testing.T) {
	node := &ast.Constant{Value: 1}
	node.SetColor("yellow")

	got := Tree(node, Options{Highlight: node, ColorizeBackgrounds: true})
	if !strings.Contains(got, "\x1b[43m") {
		t.Errorf("background scope missing from %q", got)
	}
	if !strings.Contains(got, "\x1b[31mConstant") {
		t.Errorf("highlight color missing from %q", got)
	}
}

func TestStringsColorized(t *testing.T) {
	got := Tree(&ast.Constant{Value: "hi"}, Options{})
	if !strings.Contains(got, "\x1b[32m\"hi\"") {
		t.Errorf("string literal not colorized in %q", got)
	}
}

func TestNestedBackgrounds(t *testing.T) {
	child := &ast.Constant{Value: 1}
	child.SetColor("blue")
	parent := &ast.ListLit{Items: []any{child}}
	parent.SetColor("yellow")

	got := Tree(parent, Options{ColorizeBackgrounds: true})

	if !strings.Contains(got, "\x1b[43m") || !strings.Contains(got, "\x1b[44m") {
		t.Fatalf("expected both backgrounds in %q", got)
	}
	// After the child closes, the parent background must be re-emitted.
	if !strings.Contains(got, "\x1b[0m\x1b[43m") {
		t.Errorf("outer background not restored after child in %q", got)
	}
}

func TestNoColorHasNoEscapes(t *testing.T) {
	root := &ast.Module{Name: "m", Decls: []ast.Node{&ast.ExprStmt{Value: addTree()}}}
	got := Tree(root, Options{NoColor: true, ColorizeBackgrounds: true, Highlight: root})
	if strings.Contains(got, "\x1b[") {
		t.Errorf("escape sequences present in uncolored output: %q", got)
	}
}
