package parser

import (
	"testing"

	"github.com/charj-lang/charj/internal/token"
	"github.com/charj-lang/charj/internal/token/tokentest"
)

func newTestParser(src string) *Parser {
	return New(tokentest.Source(src))
}

func parseIdentLiteral(p *Parser) func(int) (string, bool) {
	return func(int) (string, bool) {
		if p.curTok.Kind != token.IDENT {
			p.fail(p.curTok, token.IDENT)
			return "", false
		}
		return p.curTok.Text, true
	}
}

func TestParseDelimited_AllowsEmpty(t *testing.T) {
	p := newTestParser("()")

	if p.curTok.Kind != token.LPAREN {
		t.Fatalf("expected initial token '(', got %s", p.curTok.Kind)
	}

	// Advance into the list body, leaving curTok on either the first element or the closing token.
	p.nextToken()

	cfg := delimitedConfig{
		Closing:    token.RPAREN,
		Separator:  token.COMMA,
		AllowEmpty: true,
	}

	res, ok := parseDelimited[string](p, cfg, func(int) (string, bool) {
		t.Fatalf("unexpected element parse invocation for empty list")
		return "", false
	})

	if !ok {
		t.Fatalf("expected success for empty list, got parse failure")
	}

	if len(res.Items) != 0 {
		t.Fatalf("expected zero elements, got %d", len(res.Items))
	}

	if res.Trailing {
		t.Fatalf("expected trailing flag to be false for empty list")
	}

	if p.curTok.Kind != token.RPAREN {
		t.Fatalf("expected parser to remain on closing token, got %s", p.curTok.Kind)
	}
}

func TestParseDelimited_RejectsEmpty(t *testing.T) {
	p := newTestParser("()")
	p.nextToken()

	_, ok := parseDelimited[string](p, delimitedConfig{
		Closing:      token.RPAREN,
		ElementStart: []token.Kind{token.IDENT},
	}, parseIdentLiteral(p))

	if ok {
		t.Fatalf("expected failure for empty list")
	}
	if p.err == nil {
		t.Fatalf("expected an error to be recorded")
	}
}

func TestParseDelimited_ParsesMultipleElements(t *testing.T) {
	p := newTestParser("(foo, bar, baz)")

	// Consume '('
	p.nextToken()

	cfg := delimitedConfig{
		Closing:   token.RPAREN,
		Separator: token.COMMA,
	}

	res, ok := parseDelimited[string](p, cfg, parseIdentLiteral(p))
	if !ok {
		t.Fatalf("expected success, got %v", p.err)
	}

	want := []string{"foo", "bar", "baz"}
	if len(res.Items) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(res.Items))
	}
	for i, w := range want {
		if res.Items[i] != w {
			t.Fatalf("element %d: expected %q, got %q", i, w, res.Items[i])
		}
	}

	if p.curTok.Kind != token.RPAREN {
		t.Fatalf("expected parser on closing token, got %s", p.curTok.Kind)
	}
}

func TestParseDelimited_TrailingSeparator(t *testing.T) {
	p := newTestParser("a, b,;")

	res, ok := parseDelimited[string](p, delimitedConfig{
		Closing:       token.SEMICOLON,
		AllowTrailing: true,
	}, parseIdentLiteral(p))
	if !ok {
		t.Fatalf("expected success, got %v", p.err)
	}
	if !res.Trailing {
		t.Fatalf("expected trailing flag to be set")
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(res.Items))
	}
	if p.curTok.Kind != token.SEMICOLON {
		t.Fatalf("expected parser on closing token, got %s", p.curTok.Kind)
	}
}

func TestParseDelimited_RejectsTrailingSeparator(t *testing.T) {
	p := newTestParser("(a,)")
	p.nextToken()

	_, ok := parseDelimited[string](p, delimitedConfig{
		Closing:      token.RPAREN,
		ElementStart: []token.Kind{token.IDENT},
	}, parseIdentLiteral(p))
	if ok {
		t.Fatalf("expected failure for trailing separator")
	}

	syntaxErr, isSyntax := p.err.(*SyntaxError)
	if !isSyntax {
		t.Fatalf("expected *SyntaxError, got %T", p.err)
	}
	if syntaxErr.Found.Kind != token.RPAREN {
		t.Fatalf("expected error at ')', got %s", syntaxErr.Found.Kind)
	}
}

func TestParseDelimited_MissingSeparator(t *testing.T) {
	p := newTestParser("(a b)")
	p.nextToken()

	_, ok := parseDelimited[string](p, delimitedConfig{Closing: token.RPAREN}, parseIdentLiteral(p))
	if ok {
		t.Fatalf("expected failure for missing separator")
	}

	syntaxErr := p.err.(*SyntaxError)
	if len(syntaxErr.Expected) != 2 || syntaxErr.Expected[0] != token.COMMA || syntaxErr.Expected[1] != token.RPAREN {
		t.Fatalf("unexpected expected set %v", syntaxErr.Expected)
	}
}
