package textbuilder

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestWriteAndWriteLine(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		want  string
	}{
		{
			name: "InlineFragments",
			build: func(b *Builder) {
				b.Write("foo")
				b.Write("bar")
			},
			want: "foobar",
		},
		{
			name: "LineThenInline",
			build: func(b *Builder) {
				b.WriteLine("head")
				b.Write("tail")
			},
			want: "head\ntail",
		},
		{
			name: "EmptyWriteLineNoTrailingSpace",
			build: func(b *Builder) {
				b.WithIndent(func() {
					b.WriteLine("")
					b.WriteLine("x")
				})
			},
			want: "\n    x\n",
		},
		{
			name: "IndentOnlyAtLineStart",
			build: func(b *Builder) {
				b.WithIndent(func() {
					b.Write("a")
					b.Write("b")
					b.WriteLine("")
					b.WriteLine("c")
				})
			},
			want: "    ab\n    c\n",
		},
		{
			name: "NestedIndent",
			build: func(b *Builder) {
				b.WriteLine("l0")
				b.WithIndent(func() {
					b.WriteLine("l1")
					b.WithIndent(func() {
						b.WriteLine("l2")
					})
					b.WriteLine("l1")
				})
				b.WriteLine("l0")
			},
			want: "l0\n    l1\n        l2\n    l1\nl0\n",
		},
		{
			name: "Writef",
			build: func(b *Builder) {
				b.Writef("%s=%d", "x", 7)
			},
			want: "x=7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(false)
			tt.build(b)
			if got := b.Build(); got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildFreezes(t *testing.T) {
	b := New(false)
	b.Write("done")
	first := b.Build()
	b.Write("late")
	if got := b.Build(); got != first {
		t.Errorf("second Build() = %q, want frozen %q", got, first)
	}
}

func TestWithIndentRestoresOnPanic(t *testing.T) {
	b := New(false)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		b.WithIndent(func() {
			b.WriteLine("inner")
			panic("boom")
		})
	}()
	b.WriteLine("outer")
	want := "    inner\nouter\n"
	if got := b.Build(); got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestWithColorDisabledIsTransparent(t *testing.T) {
	b := New(false)
	b.WithColor(termenv.ANSIRed, termenv.ANSIBlue, func() {
		b.Write("plain")
	})
	if got := b.Build(); got != "plain" {
		t.Errorf("Build() = %q, want %q", got, "plain")
	}
}

func TestWithColorEmitsAndResets(t *testing.T) {
	b := New(true)
	b.WithColor(termenv.ANSIRed, nil, func() {
		b.Write("hot")
	})
	want := "\x1b[31mhot\x1b[0m"
	if got := b.Build(); got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestColorScopeAtLineStartIndentsFirst(t *testing.T) {
	b := New(true)
	b.WriteLine("head")
	b.WithIndent(func() {
		b.WithColor(termenv.ANSIRed, nil, func() {
			b.Write("body")
		})
	})

	// The indent belongs outside the scope: opening a color at the start of
	// a line must not paint the leading whitespace.
	want := "head\n    \x1b[31mbody\x1b[0m"
	if got := b.Build(); got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestNestedBackgroundRestoresOuter(t *testing.T) {
	b := New(true)
	b.WithColor(nil, termenv.ANSIYellow, func() {
		b.Write("a")
		b.WithColor(nil, termenv.ANSIBlue, func() {
			b.Write("b")
		})
		b.Write("c")
	})
	got := b.Build()

	// Leaving the inner scope must re-emit the outer yellow background, not
	// fall back to the terminal default.
	wantFragment := "b\x1b[0m\x1b[43mc"
	if !strings.Contains(got, wantFragment) {
		t.Errorf("Build() = %q, want fragment %q", got, wantFragment)
	}
}

func TestColorScopeRestoresOnPanic(t *testing.T) {
	b := New(true)
	func() {
		defer func() { _ = recover() }()
		b.WithColor(termenv.ANSIRed, nil, func() {
			panic("boom")
		})
	}()
	b.WithColor(termenv.ANSIGreen, nil, func() {
		b.Write("ok")
	})
	want := "\x1b[31m\x1b[0m\x1b[32mok\x1b[0m"
	if got := b.Build(); got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}
