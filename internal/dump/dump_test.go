package dump

import (
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/charj-lang/charj/internal/parser"
	"github.com/charj-lang/charj/internal/token/tokentest"
)

func dumpSource(t *testing.T, src string) *yaml.Node {
	t.Helper()

	prog, err := parser.Parse(tokentest.Source(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out, err := YAML(prog)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("dump produced invalid YAML: %v\n%s", err, out)
	}
	return doc.Content[0]
}

// lookup follows mapping keys and sequence indexes.
func lookup(t *testing.T, n *yaml.Node, path ...string) *yaml.Node {
	t.Helper()

	for _, step := range path {
		switch n.Kind {
		case yaml.MappingNode:
			var next *yaml.Node
			for i := 0; i+1 < len(n.Content); i += 2 {
				if n.Content[i].Value == step {
					next = n.Content[i+1]
					break
				}
			}
			if next == nil {
				t.Fatalf("no key %q in mapping", step)
			}
			n = next
		case yaml.SequenceNode:
			idx, err := strconv.Atoi(step)
			if err != nil || idx >= len(n.Content) {
				t.Fatalf("bad index %q for sequence of %d", step, len(n.Content))
			}
			n = n.Content[idx]
		default:
			t.Fatalf("cannot descend into scalar at %q", step)
		}
	}
	return n
}

func TestDumpFunction(t *testing.T) {
	const src = "fun f(uint8 a,) (bool) { return a, 7; }"
	root := dumpSource(t, src)

	if got := lookup(t, root, "node").Value; got != "Program" {
		t.Fatalf("expected Program, got %s", got)
	}

	fn := lookup(t, root, "items", "0")
	if got := lookup(t, fn, "node").Value; got != "FunctionDecl" {
		t.Fatalf("expected FunctionDecl, got %s", got)
	}
	if got := lookup(t, fn, "name", "name").Value; got != "f" {
		t.Fatalf("expected name f, got %s", got)
	}

	slots := lookup(t, fn, "params", "slots")
	if len(slots.Content) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots.Content))
	}
	if gap := slots.Content[1]; gap.Tag != "!!null" {
		t.Fatalf("expected null gap, got %s %q", gap.Tag, gap.Value)
	}
	if got := lookup(t, slots, "0", "type", "type").Value; got != "uint8" {
		t.Fatalf("expected uint8, got %s", got)
	}

	if got := lookup(t, fn, "returns", "node").Value; got != "SingleParam" {
		t.Fatalf("expected SingleParam returns, got %s", got)
	}

	values := lookup(t, fn, "body", "stmts", "0", "values")
	if got := lookup(t, values, "elements", "1", "value").Value; got != "7" {
		t.Fatalf("expected literal 7, got %s", got)
	}

	span := lookup(t, values, "span")
	if len(span.Content) != 2 {
		t.Fatalf("expected span pair, got %d entries", len(span.Content))
	}
	start, _ := strconv.Atoi(span.Content[0].Value)
	end, _ := strconv.Atoi(span.Content[1].Value)
	if got := src[start:end]; got != "a, 7" {
		t.Fatalf("unexpected span text %q", got)
	}
}

func TestDumpLargeIntegerStaysExact(t *testing.T) {
	root := dumpSource(t, "fun f() { g(3e40); }")

	value := lookup(t, root, "items", "0", "body", "stmts", "0", "expr", "args", "0", "value", "value")
	want := "3" + strings.Repeat("0", 40)
	if value.Value != want {
		t.Fatalf("expected %s, got %s", want, value.Value)
	}
}

func TestDumpComparisonAndOptionalChildren(t *testing.T) {
	root := dumpSource(t, "fun f() { if (a < b == c) { } }")

	stmt := lookup(t, root, "items", "0", "body", "stmts", "0")
	for i := 0; i+1 < len(stmt.Content); i += 2 {
		if stmt.Content[i].Value == "else" {
			t.Fatalf("absent else branch must be omitted")
		}
	}

	rest := lookup(t, stmt, "cond", "rest")
	if len(rest.Content) != 2 {
		t.Fatalf("expected 2 links, got %d", len(rest.Content))
	}
	if got := lookup(t, rest, "1", "op").Value; got != "==" {
		t.Fatalf("expected ==, got %s", got)
	}
	if got := lookup(t, rest, "1", "operand", "name").Value; got != "c" {
		t.Fatalf("expected operand c, got %s", got)
	}
}

func TestDumpAliasedImport(t *testing.T) {
	root := dumpSource(t, `import "std/io" as io`)

	imp := lookup(t, root, "items", "0")
	if got := lookup(t, imp, "path", "value").Value; got != "std/io" {
		t.Fatalf("expected path std/io, got %s", got)
	}
	if got := lookup(t, imp, "alias", "name").Value; got != "io" {
		t.Fatalf("expected alias io, got %s", got)
	}
}
