// Package textbuilder accumulates indented, optionally colorized terminal text.
//
// The central type is [Builder], which tracks a current indentation level and
// a stack of active color scopes. Indentation is inserted lazily at the start
// of each line, never mid-line, so inline fragments written with [Builder.Write]
// compose naturally with line-oriented output from [Builder.WriteLine].
//
// Indent and color scopes are closure-based ([Builder.WithIndent],
// [Builder.WithColor]) and release their state via defer, so a panic
// unwinding through a scope still restores the previous level and colors.
package textbuilder

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// IndentUnit is the whitespace prepended per indentation level.
const IndentUnit = "    "

// Builder accumulates text with indentation tracking and nested color scopes.
// A Builder is meant to live for one rendering pass: create it, write into it,
// call [Builder.Build] and discard it. It is not safe for concurrent use.
type Builder struct {
	sb          strings.Builder
	level       int
	atLineStart bool

	useColors bool
	colors    []colorPair // stack of effective fg/bg, innermost last

	frozen string
	built  bool
}

// colorPair is the effective foreground/background at one scope depth.
// Either entry may be nil, meaning "inherited from the terminal default".
type colorPair struct {
	fg, bg termenv.Color
}

// New returns an empty Builder. When useColors is false every color scope is
// a no-op and the output contains no escape sequences.
func New(useColors bool) *Builder {
	return &Builder{useColors: useColors, atLineStart: true}
}

// Write appends text to the current line. If the builder is at the start of a
// line and text is non-empty, the current indentation prefix is inserted
// first. No newline is added.
func (b *Builder) Write(text string) {
	if text == "" {
		return
	}
	b.flushIndent()
	b.sb.WriteString(text)
}

// Writef is Write with fmt formatting.
func (b *Builder) Writef(format string, args ...any) {
	b.Write(fmt.Sprintf(format, args...))
}

// WriteLine appends text followed by a newline. The next Write or WriteLine
// call starts a fresh line and receives the indentation prefix. Writing an
// empty string emits a bare newline with no trailing whitespace.
func (b *Builder) WriteLine(text string) {
	b.Write(text)
	b.sb.WriteByte('\n')
	b.atLineStart = true
}

// WithIndent runs fn with the indentation level raised by one unit. The level
// is restored even if fn panics.
func (b *Builder) WithIndent(fn func()) {
	b.level++
	defer func() { b.level-- }()
	fn()
}

// WithColor runs fn with the given foreground and/or background active.
// Either color may be nil to leave that channel untouched. Scopes nest: on
// exit the enclosing scope's colors are re-emitted, not the terminal default.
// When colors are disabled the scope is transparent and fn runs unchanged.
func (b *Builder) WithColor(fg, bg termenv.Color, fn func()) {
	if !b.useColors || (fg == nil && bg == nil) {
		fn()
		return
	}
	b.pushColor(fg, bg)
	defer b.popColor()
	fn()
}

// pushColor computes the new effective pair from the current top and emits
// the corresponding escape sequences.
func (b *Builder) pushColor(fg, bg termenv.Color) {
	eff := b.topColor()
	if fg != nil {
		eff.fg = fg
	}
	if bg != nil {
		eff.bg = bg
	}
	b.colors = append(b.colors, eff)
	b.emitColor(fg, bg)
}

// popColor removes the innermost scope and restores the enclosing one.
func (b *Builder) popColor() {
	b.colors = b.colors[:len(b.colors)-1]
	b.writeRaw(termenv.CSI + termenv.ResetSeq + "m")
	prev := b.topColor()
	b.emitColor(prev.fg, prev.bg)
}

func (b *Builder) topColor() colorPair {
	if len(b.colors) == 0 {
		return colorPair{}
	}
	return b.colors[len(b.colors)-1]
}

func (b *Builder) emitColor(fg, bg termenv.Color) {
	if fg == nil && bg == nil {
		return
	}
	b.flushIndent()
	if fg != nil {
		b.writeRaw(termenv.CSI + fg.Sequence(false) + "m")
	}
	if bg != nil {
		b.writeRaw(termenv.CSI + bg.Sequence(true) + "m")
	}
}

// flushIndent materializes the pending line-start indentation. Color scopes
// call it before their opening sequence so the indent itself stays unpainted.
func (b *Builder) flushIndent() {
	if b.atLineStart {
		b.sb.WriteString(strings.Repeat(IndentUnit, b.level))
		b.atLineStart = false
	}
}

// writeRaw appends an escape sequence as-is.
func (b *Builder) writeRaw(s string) {
	b.sb.WriteString(s)
}

// Build returns the accumulated text. The first call freezes the content;
// repeated calls return the same string regardless of later writes.
func (b *Builder) Build() string {
	if !b.built {
		b.frozen = b.sb.String()
		b.built = true
	}
	return b.frozen
}
