// Package parser turns a Charj token stream into an AST.
package parser

import (
	"errors"

	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/token"
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename attributes syntax errors to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser implements a recursive descent parser for Charj.
// Invariants:
//   - Lookahead: curTok is the token under examination and peekTok the next
//     one. The pair is the only lookahead window and is mutated solely by
//     nextToken. Every parse function is entered with curTok on the first
//     token of its construct and returns with curTok on the last one.
//   - Errors: parsing stops at the first error. err is written once, by fail
//     or by the literal evaluator, and every parse function returns nil after
//     it is set. No partial AST escapes Parse.
//   - Spans: node spans are composed with mergeSpan from the first and last
//     token (or child) of the construct, so they grow monotonically and cover
//     exactly the consumed text.
type Parser struct {
	src     token.Source
	curTok  token.Token
	peekTok token.Token

	// lexErr is the token source failure behind an ILLEGAL token in the
	// window. It becomes err only when the grammar reaches that token.
	lexErr error
	err    error

	filename string
}

// New returns a parser reading from src. Doc comments and newlines are
// filtered out before they reach the grammar.
func New(src token.Source, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		src:      token.NewFilter(src),
		filename: cfg.filename,
	}

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses a whole program from src. It returns either the program or
// the first lexical or syntax error, never both.
func Parse(src token.Source, opts ...Option) (*ast.Program, error) {
	return New(src, opts...).ParseProgram()
}

// ParseProgram parses a non-empty sequence of top-level items up to EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	if p.curTok.Kind == token.EOF {
		p.fail(p.curTok, itemStart...)
		return nil, p.error()
	}

	var items []ast.Item
	for {
		item := p.parseItem()
		if item == nil {
			return nil, p.error()
		}
		items = append(items, item)

		if p.peekTok.Kind == token.EOF {
			break
		}
		p.nextToken()
	}

	span := mergeSpan(items[0].Span(), items[len(items)-1].Span())

	return ast.NewProgram(items, span), nil
}

// nextToken advances the parser's token window.
// Contract: after calling nextToken, curTok == old(peekTok). The source is
// only queried here. Once the source fails, the window stays on the ILLEGAL
// token that stands in for the failure.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok

	if p.peekTok.Kind == token.ILLEGAL && p.lexErr != nil {
		return
	}

	tok, err := p.src.Next()
	if err != nil {
		p.lexErr = err
		tok = token.Token{Kind: token.ILLEGAL, Text: tok.Text, Span: tok.Span}
	}
	p.peekTok = tok
}

// expect asserts that the peek token matches the provided kind.
// The caller is responsible for inspecting curTok before invoking expect,
// because expect never rewinds; on success it promotes peekTok into curTok.
func (p *Parser) expect(k token.Kind) bool {
	if p.peekTok.Kind == k {
		p.nextToken()
		return true
	}

	p.fail(p.peekTok, k)
	return false
}

// skipOptional consumes the peek token when it has kind k.
func (p *Parser) skipOptional(k token.Kind) {
	if p.peekTok.Kind == k {
		p.nextToken()
	}
}

func (p *Parser) error() error {
	if p.err == nil {
		return errors.New("parser: internal error: production failed without a diagnostic")
	}
	return p.err
}

func (p *Parser) ident() *ast.Ident {
	return ast.NewIdent(p.curTok.Text, p.curTok.Span)
}

// mergeSpan assumes start.Start <= end.Start and returns a span covering both.
// Callers should pass the earliest span first to preserve monotonic growth
// for AST nodes.
func mergeSpan(start, end token.Span) token.Span {
	span := start

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
