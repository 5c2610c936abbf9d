package parser

import (
	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/token"
)

var typeStart = []token.Kind{
	token.BOOL, token.STRING_T, token.BYTES,
	token.INT_TYPE, token.UINT_TYPE, token.BYTES_TYPE,
	token.LBRACKET, token.IDENT,
}

func isTypeStart(k token.Kind) bool {
	switch k {
	case token.BOOL, token.STRING_T, token.BYTES,
		token.INT_TYPE, token.UINT_TYPE, token.BYTES_TYPE,
		token.LBRACKET, token.IDENT:
		return true
	default:
		return false
	}
}

// parseType parses a type literal. Builtin types become TypeRef nodes, any
// other name an Ident (resolved later), and `[]T` a list type that keeps its
// element type.
func (p *Parser) parseType() ast.Expr {
	tok := p.curTok

	switch tok.Kind {
	case token.BOOL:
		return ast.NewTypeRef(ast.Type{Kind: ast.TypeBool}, tok.Span)
	case token.STRING_T:
		return ast.NewTypeRef(ast.Type{Kind: ast.TypeString}, tok.Span)
	case token.BYTES:
		return ast.NewTypeRef(ast.Type{Kind: ast.TypeBytes}, tok.Span)
	case token.INT_TYPE:
		return ast.NewTypeRef(ast.Type{Kind: ast.TypeInt, Size: tok.Size}, tok.Span)
	case token.UINT_TYPE:
		return ast.NewTypeRef(ast.Type{Kind: ast.TypeUint, Size: tok.Size}, tok.Span)
	case token.BYTES_TYPE:
		return ast.NewTypeRef(ast.Type{Kind: ast.TypeFixedBytes, Size: tok.Size}, tok.Span)
	case token.IDENT:
		return p.ident()
	case token.LBRACKET:
		return p.parseListType()
	default:
		p.fail(tok, typeStart...)
		return nil
	}
}

func (p *Parser) parseListType() ast.Expr {
	start := p.curTok.Span

	if !p.expect(token.RBRACKET) {
		return nil
	}
	p.nextToken() // move to element type

	elem := p.parseType()
	if elem == nil {
		return nil
	}

	return ast.NewListType(elem, mergeSpan(start, elem.Span()))
}
