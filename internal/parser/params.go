package parser

import (
	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/token"
)

// parseParamList parses a parenthesised parameter list; curTok is '(' on
// entry and ')' on exit.
//
//	()              EmptyParams
//	(p)             SingleParam, the parameter is always present
//	(p, , q)        MultiParams, two or more slots, each of which may be empty
//
// A one-entry list never holds a gap: any comma switches to the multi-slot
// form.
func (p *Parser) parseParamList() ast.ParamList {
	start := p.curTok.Span

	if p.peekTok.Kind == token.RPAREN {
		p.nextToken()
		return ast.NewEmptyParams(mergeSpan(start, p.curTok.Span))
	}

	var first *ast.Param
	if p.peekTok.Kind != token.COMMA {
		p.nextToken()
		if first = p.parseParam(); first == nil {
			return nil
		}

		switch p.peekTok.Kind {
		case token.RPAREN:
			p.nextToken()
			return ast.NewSingleParam(first, mergeSpan(start, p.curTok.Span))
		case token.COMMA:
			// more slots follow
		default:
			p.fail(p.peekTok, token.COMMA, token.RPAREN)
			return nil
		}
	}

	slots := []*ast.Param{first}
	for p.peekTok.Kind == token.COMMA {
		p.nextToken() // move to ','

		if p.peekTok.Kind == token.COMMA || p.peekTok.Kind == token.RPAREN {
			slots = append(slots, nil)
			continue
		}

		p.nextToken()
		param := p.parseParam()
		if param == nil {
			return nil
		}
		slots = append(slots, param)
	}

	if !p.expect(token.RPAREN) {
		return nil
	}

	return ast.NewMultiParams(slots, mergeSpan(start, p.curTok.Span))
}

// parseParam parses either `name: Type` or `Type name?`.
func (p *Parser) parseParam() *ast.Param {
	start := p.curTok.Span

	if p.curTok.Kind == token.IDENT && p.peekTok.Kind == token.COLON {
		name := p.ident()
		p.nextToken() // move to ':'
		p.nextToken() // move to type start

		typ := p.parseType()
		if typ == nil {
			return nil
		}
		return ast.NewParam(typ, name, mergeSpan(start, typ.Span()))
	}

	if !isTypeStart(p.curTok.Kind) {
		p.fail(p.curTok, append([]token.Kind{token.COMMA, token.RPAREN}, typeStart...)...)
		return nil
	}

	typ := p.parseType()
	if typ == nil {
		return nil
	}

	var name *ast.Ident
	if p.peekTok.Kind == token.IDENT {
		p.nextToken()
		name = p.ident()
	}

	return ast.NewParam(typ, name, mergeSpan(start, p.curTok.Span))
}
