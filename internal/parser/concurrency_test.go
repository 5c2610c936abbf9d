package parser_test

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/parser"
	"github.com/charj-lang/charj/internal/token/tokentest"
)

// Parsers share no state, so independent inputs can be parsed in parallel.
func TestParseConcurrentPrograms(t *testing.T) {
	const n = 32

	srcs := make([]string, n)
	for i := range srcs {
		srcs[i] = fmt.Sprintf("fun f%d(uint%d a) { return a, %de%d; }", i, 8*(i%32+1), i, i%5)
	}

	got := make([]string, n)
	var g errgroup.Group
	for i, src := range srcs {
		i, src := i, src
		g.Go(func() error {
			prog, err := parser.Parse(tokentest.Source(src), parser.WithFilename(fmt.Sprintf("f%d.charj", i)))
			if err != nil {
				return err
			}
			got[i] = ast.Sprint(prog)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	for i, src := range srcs {
		want := ast.Sprint(mustParse(t, src))
		if got[i] != want {
			t.Fatalf("program %d differs when parsed concurrently\n got: %s\nwant: %s", i, got[i], want)
		}
	}
}
