package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charj-lang/charj/internal/token/tokentest"
	"github.com/charj-lang/charj/internal/tokfile"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

// writeTokens stores the token stream of src as name.tokens.yaml in dir and,
// when withSource is set, the source itself as name.charj.
func writeTokens(t *testing.T, dir, name, src string, withSource bool) string {
	t.Helper()

	data, err := tokfile.Encode(tokentest.Scan(src))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	path := filepath.Join(dir, name+".tokens.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write tokens: %v", err)
	}
	if withSource {
		if err := os.WriteFile(filepath.Join(dir, name+".charj"), []byte(src), 0o644); err != nil {
			t.Fatalf("write source: %v", err)
		}
	}
	return path
}

func TestParseCommandSExpr(t *testing.T) {
	dir := t.TempDir()
	path := writeTokens(t, dir, "main", "package demo;\nfun main() { return 1e3; }", false)

	if _, _, err := execute(t, "parse", "--config", filepath.Join(dir, "absent.toml"), path); err == nil {
		t.Fatalf("expected explicit missing config to fail")
	}

	stdout, stderr, err := execute(t, "parse", path)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}

	want := "(program (package demo) (fun main (empty) (block (return (list 1000)))))\n"
	if stdout != want {
		t.Fatalf("unexpected output\n got: %s\nwant: %s", stdout, want)
	}
}

func TestParseCommandMultipleFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i, name := range []string{"a", "b", "c", "d"} {
		src := "fun " + name + "() { g(" + strings.Repeat("x, ", i) + "); }"
		paths = append(paths, writeTokens(t, dir, name, src, false))
	}

	stdout, stderr, err := execute(t, append([]string{"parse", "--jobs", "2"}, paths...)...)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}

	var last int
	for _, name := range []string{"a", "b", "c", "d"} {
		idx := strings.Index(stdout, "(fun "+name+" ")
		if idx < last {
			t.Fatalf("output out of argument order:\n%s", stdout)
		}
		last = idx
	}
	if got := strings.Count(stdout, ";; "); got != 4 {
		t.Fatalf("expected 4 file headers, got %d:\n%s", got, stdout)
	}
}

func TestParseCommandYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeTokens(t, dir, "main", "fun f(bool,) { }", false)

	stdout, stderr, err := execute(t, "parse", "--format", "yaml", path)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}
	for _, want := range []string{"node: Program", "node: MultiParams", "- null"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestParseCommandReportsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	good := writeTokens(t, dir, "good", "fun f() {}", false)
	bad := writeTokens(t, dir, "bad", "fun f() {\n  let x = 1;\n}", true)

	stdout, stderr, err := execute(t, "parse", "--no-color", good, bad)
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(err.Error(), "1 of 2 files") {
		t.Fatalf("unexpected error %v", err)
	}

	if !strings.Contains(stdout, "(fun f (empty) (block))") {
		t.Fatalf("expected the good file to be printed, got:\n%s", stdout)
	}

	source := filepath.Join(dir, "bad.charj")
	for _, want := range []string{
		"error[PARSE_UNEXPECTED_TOKEN]: unexpected `=`",
		source + ":2:9",
		"2 |   let x = 1;",
		"= expected `:`",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %q in diagnostics:\n%s", want, stderr)
		}
	}
}

func TestParseCommandConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeTokens(t, dir, "main", "fun f() {}", false)

	cfg := filepath.Join(dir, "charj.toml")
	if err := os.WriteFile(cfg, []byte("[output]\nformat = \"yaml\"\n[log]\nverbose = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout, stderr, err := execute(t, "parse", "--config", cfg, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "node: FunctionDecl") {
		t.Fatalf("expected YAML output from config, got:\n%s", stdout)
	}
	if !strings.Contains(stderr, "charj: parsed "+path) {
		t.Fatalf("expected verbose log line, got:\n%s", stderr)
	}
}

func TestParseCommandBadTokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tokens.yaml")
	if err := os.WriteFile(path, []byte("- {kind: nonsense, start: 0, end: 1}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, stderr, err := execute(t, "parse", path)
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(stderr, `unknown token kind "nonsense"`) {
		t.Fatalf("unexpected diagnostics:\n%s", stderr)
	}
}

func TestLiteralCommand(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"1_000", "1000"},
		{"3e5", "300000"},
		{"2E2", "200"},
	}

	for _, tt := range tests {
		stdout, _, err := execute(t, "literal", tt.arg)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.arg, err)
		}
		if got := strings.TrimSpace(stdout); got != tt.want {
			t.Fatalf("%s: expected %s, got %s", tt.arg, tt.want, got)
		}
	}

	for _, bad := range []string{"1e", "abc", "1e2e3"} {
		if _, _, err := execute(t, "literal", bad); err == nil {
			t.Fatalf("%s: expected error", bad)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout, "charj version dev") {
		t.Fatalf("unexpected version output %q", stdout)
	}
}
