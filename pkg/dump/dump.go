// Package dump renders slate syntax trees as deterministic, indentation-correct,
// optionally colorized text for front-end debugging.
//
// The dumper understands both node families the front end produces: slate AST
// nodes ([github.com/slatelang/slate/pkg/ast]) and embedded kernel expressions
// ([github.com/slatelang/slate/pkg/kernel], rendered with a "k:" prefix).
// Values of any other shape degrade to a generic literal rendering; the
// dumper never fails for a well-formed tree.
//
// Output is byte-identical across runs for the same tree and options, so
// dumps are safe to diff and to assert on in tests.
package dump

import (
	"strconv"

	"github.com/muesli/termenv"

	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/kernel"
	"github.com/slatelang/slate/pkg/textbuilder"
)

// Colors used for node kinds and literals.
var (
	colorStructural = termenv.ANSICyan  // node kind names
	colorHighlight  = termenv.ANSIRed   // the highlighted node, wins over everything
	colorString     = termenv.ANSIGreen // string literals
)

// palette maps display-color names attached to expression nodes onto
// terminal colors. Unknown names are ignored.
var palette = map[string]termenv.Color{
	"black":   termenv.ANSIBlack,
	"red":     termenv.ANSIRed,
	"green":   termenv.ANSIGreen,
	"yellow":  termenv.ANSIYellow,
	"blue":    termenv.ANSIBlue,
	"magenta": termenv.ANSIMagenta,
	"cyan":    termenv.ANSICyan,
	"white":   termenv.ANSIWhite,
}

// defaultIgnored lists field names never rendered unless explicitly asked
// for: source locations and the display-color attachment.
var defaultIgnored = []string{"loc", "target_loc", "target_locs", "color"}

// Options configures one dump invocation. The zero value renders with colors
// on, default field exclusions, no highlight and no background colorization.
type Options struct {
	// NoColor disables all escape sequences in the output.
	NoColor bool

	// FieldsToIgnore is appended to the default exclusion set
	// (loc, target_loc, target_locs, color).
	FieldsToIgnore []string

	// Highlight names one node instance whose kind name is forced to the
	// alert color. Matching is by identity (pointer equality), never by
	// structural equality.
	Highlight any

	// ColorizeBackgrounds applies a node's attached display color as a
	// background scope around its whole rendered region. Scopes nest with
	// ancestor backgrounds.
	ColorizeBackgrounds bool

	// CopyToClipboard makes [Print] forward the uncolored rendering to the
	// terminal clipboard. Ignored by [Tree].
	CopyToClipboard bool
}

// Tree renders root and returns the accumulated text.
func Tree(root any, opts Options) string {
	d := newDumper(opts)
	d.dumpAny(root)
	return d.b.Build()
}

type dumper struct {
	b         *textbuilder.Builder
	ignored   map[string]bool
	highlight any
	colorize  bool
}

func newDumper(opts Options) *dumper {
	d := &dumper{
		b:         textbuilder.New(!opts.NoColor),
		ignored:   make(map[string]bool, len(defaultIgnored)+len(opts.FieldsToIgnore)),
		highlight: opts.Highlight,
		colorize:  opts.ColorizeBackgrounds,
	}
	for _, f := range defaultIgnored {
		d.ignored[f] = true
	}
	for _, f := range opts.FieldsToIgnore {
		d.ignored[f] = true
	}
	return d
}

// fieldVal is one surviving field of a node, family-agnostic.
type fieldVal struct {
	name  string
	value any
}

// dumpAny dispatches on the runtime shape of v. The case set is closed:
// adding a third node family means adding one case here and nothing else.
func (d *dumper) dumpAny(v any) {
	switch x := v.(type) {
	case ast.Node:
		d.dumpSlateNode(x)
	case kernel.Node:
		d.dumpKernelNode(x)
	case []any:
		d.dumpList(x)
	case string:
		d.b.WithColor(colorString, nil, func() {
			d.b.Write(strconv.Quote(x))
		})
	default:
		d.b.Writef("%v", x)
	}
}

func (d *dumper) dumpSlateNode(n ast.Node) {
	fields := make([]fieldVal, 0, 8)
	for _, f := range ast.Fields(n.Kind()) {
		if !d.ignored[f.Name] {
			fields = append(fields, fieldVal{f.Name, f.Get(n)})
		}
	}
	d.dumpNode(n, n.Kind(), fields)
}

func (d *dumper) dumpKernelNode(n kernel.Node) {
	fields := make([]fieldVal, 0, 4)
	for _, f := range kernel.Fields(n.Kind()) {
		if !d.ignored[f.Name] {
			fields = append(fields, fieldVal{f.Name, f.Get(n)})
		}
	}
	// Display-only augmentation: a bare name reference is ambiguous, so show
	// whether the checker resolved it to a variable. This is not part of the
	// node's declared field set.
	if name, ok := n.(*kernel.Name); ok {
		fields = append(fields, fieldVal{"is_var", name.IsVar})
	}
	d.dumpNode(n, "k:"+n.Kind(), fields)
}

// isComplex reports whether a field value forces its parent onto multiple
// lines. Kernel usage markers are tag-only and stay inline even though they
// are technically nodes.
func isComplex(v any) bool {
	switch v.(type) {
	case kernel.UsageMarker:
		return false
	case ast.Node, kernel.Node, []any:
		return true
	}
	return false
}

func (d *dumper) dumpNode(node any, name string, fields []fieldVal) {
	multiline := false
	for _, f := range fields {
		if isComplex(f.value) {
			multiline = true
			break
		}
	}

	nameColor := colorStructural
	if node == d.highlight {
		nameColor = colorHighlight
	}

	var bg termenv.Color
	if d.colorize {
		if c, ok := node.(interface{ DisplayColor() string }); ok {
			bg = palette[c.DisplayColor()]
		}
	}

	d.b.WithColor(nil, bg, func() {
		d.b.WithColor(nameColor, nil, func() {
			d.b.Write(name)
		})
		d.b.Write("(")
		if multiline {
			d.b.WriteLine("")
		}
		d.b.WithIndent(func() {
			for i, f := range fields {
				d.b.Write(f.name + "=")
				d.dumpAny(f.value)
				switch {
				case multiline:
					d.b.WriteLine(",")
				case i < len(fields)-1:
					d.b.Write(", ")
				}
			}
		})
		d.b.Write(")")
	})
}

func (d *dumper) dumpList(items []any) {
	if len(items) == 0 {
		d.b.Write("[]")
		return
	}
	d.b.WriteLine("[")
	d.b.WithIndent(func() {
		for _, item := range items {
			d.dumpAny(item)
			d.b.WriteLine(",")
		}
	})
	d.b.Write("]")
}
