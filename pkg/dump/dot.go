package dump

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/kernel"
)

// ToDOT converts a tree to Graphviz DOT format for node-link visualization.
// Node numbering follows the pre-order walk (n0, n1, ...), so the output is
// deterministic for a given tree and options. Scalar fields fold into the
// node label; node- and sequence-valued fields become labelled edges.
// Field exclusions from opts apply; color options are ignored.
func ToDOT(root any, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n\n")

	w := &dotWalker{buf: &buf, ignored: newDumper(opts).ignored}
	w.visit(root)

	buf.WriteString("\n")
	for _, e := range w.edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

type dotWalker struct {
	buf     *bytes.Buffer
	ignored map[string]bool
	next    int
	edges   []string
}

// visit emits a DOT node for v and returns its identifier. Only tree nodes
// become DOT nodes; anything else is folded into its parent's label by the
// caller.
func (w *dotWalker) visit(v any) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	var kind string
	var fields []fieldVal
	switch n := v.(type) {
	case ast.Node:
		kind = n.Kind()
		for _, f := range ast.Fields(n.Kind()) {
			if !w.ignored[f.Name] {
				fields = append(fields, fieldVal{f.Name, f.Get(n)})
			}
		}
	case kernel.Node:
		kind = "k:" + n.Kind()
		for _, f := range kernel.Fields(n.Kind()) {
			if !w.ignored[f.Name] {
				fields = append(fields, fieldVal{f.Name, f.Get(n)})
			}
		}
	default:
		fmt.Fprintf(w.buf, "  %q [label=%q];\n", id, fmt.Sprintf("%v", v))
		return id
	}

	label := []string{kind}
	for _, f := range fields {
		switch fv := f.value.(type) {
		case kernel.UsageMarker:
			label = append(label, fmt.Sprintf("%s: %s", f.name, fv.Kind()))
		case ast.Node, kernel.Node:
			w.edge(id, f.value, f.name)
		case []any:
			for i, item := range fv {
				switch item.(type) {
				case ast.Node, kernel.Node:
					w.edge(id, item, fmt.Sprintf("%s[%d]", f.name, i))
				default:
					label = append(label, fmt.Sprintf("%s[%d]: %v", f.name, i, item))
				}
			}
		default:
			label = append(label, fmt.Sprintf("%s: %v", f.name, f.value))
		}
	}

	fmt.Fprintf(w.buf, "  %q [label=%q];\n", id, strings.Join(label, "\n"))
	return id
}

func (w *dotWalker) edge(from string, child any, label string) {
	to := w.visit(child)
	w.edges = append(w.edges, fmt.Sprintf("  %q -> %q [label=%q];\n", from, to, label))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
