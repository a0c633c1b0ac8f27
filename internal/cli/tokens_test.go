package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTokensCmd(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir)

	var buf bytes.Buffer
	cmd := newTokensCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{src})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "demo.sl") {
		t.Errorf("missing file title in output:\n%s", out)
	}
	for _, want := range []string{"module", "IDENT(demo)", "var", "IDENT(x)", "INT(1)", "+", "INT(2)", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing token %q in output:\n%s", want, out)
		}
	}
}

func TestTokensCmdLexError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.sl")
	if err := os.WriteFile(path, []byte("var x = $\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newTokensCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Error("lex error must fail the command")
	}
}
