package parser

import (
	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/literal"
	"github.com/charj-lang/charj/internal/token"
)

var itemStart = []token.Kind{token.PACKAGE, token.IMPORT, token.STRUCT, token.FUN, token.IDENT}

// parseItem dispatches on the leading keyword, or on `Ident $` for methods.
func (p *Parser) parseItem() ast.Item {
	switch p.curTok.Kind {
	case token.PACKAGE:
		return p.parsePackageDecl()
	case token.IMPORT:
		return p.parseImportDecl()
	case token.STRUCT:
		return p.parseStructDecl()
	case token.FUN:
		return p.parseFunctionDecl()
	case token.IDENT:
		return p.parseMethodDecl()
	default:
		p.fail(p.curTok, itemStart...)
		return nil
	}
}

// parsePackageDecl parses `package name` (or `pkg name`) with an optional ';'.
func (p *Parser) parsePackageDecl() ast.Item {
	start := p.curTok.Span

	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.ident()

	p.skipOptional(token.SEMICOLON)

	return ast.NewPackageDecl(name, mergeSpan(start, p.curTok.Span))
}

// parseImportDecl parses `import name` or `import "path" as alias`, each with
// an optional ';'.
func (p *Parser) parseImportDecl() ast.Item {
	start := p.curTok.Span

	var (
		module *ast.Ident
		path   *ast.StringLit
		alias  *ast.Ident
	)

	switch p.peekTok.Kind {
	case token.IDENT:
		p.nextToken()
		module = p.ident()
	case token.STRING:
		p.nextToken()
		path = ast.NewStringLit(literal.String(p.curTok.Text), p.curTok.Span)

		if !p.expect(token.AS) {
			return nil
		}
		if !p.expect(token.IDENT) {
			return nil
		}
		alias = p.ident()
	default:
		p.fail(p.peekTok, token.IDENT, token.STRING)
		return nil
	}

	p.skipOptional(token.SEMICOLON)
	span := mergeSpan(start, p.curTok.Span)

	if module != nil {
		return ast.NewModuleImport(module, span)
	}
	return ast.NewPathImport(path, alias, span)
}

// parseStructDecl parses `struct Name { field: Type ... }`. Fields may be
// terminated by ';' or ','.
func (p *Parser) parseStructDecl() ast.Item {
	start := p.curTok.Span

	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.ident()

	if !p.expect(token.LBRACE) {
		return nil
	}

	var fields []*ast.VarDecl
	for p.peekTok.Kind != token.RBRACE {
		p.nextToken()

		field := p.parseField()
		if field == nil {
			return nil
		}
		fields = append(fields, field)

		if p.peekTok.Kind == token.SEMICOLON || p.peekTok.Kind == token.COMMA {
			p.nextToken()
		}
	}
	p.nextToken() // move to '}'

	return ast.NewStructDecl(name, fields, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseField() *ast.VarDecl {
	if p.curTok.Kind != token.IDENT {
		p.fail(p.curTok, token.IDENT, token.RBRACE)
		return nil
	}
	name := p.ident()

	if !p.expect(token.COLON) {
		return nil
	}
	p.nextToken() // move to type start

	typ := p.parseType()
	if typ == nil {
		return nil
	}

	return ast.NewVarDecl(name, typ, mergeSpan(name.Span(), typ.Span()))
}

// parseFunctionDecl parses `fun name Params? Returns? { ... }`.
func (p *Parser) parseFunctionDecl() ast.Item {
	start := p.curTok.Span

	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.ident()

	sig, ok := p.parseSignature()
	if !ok {
		return nil
	}

	return ast.NewFunctionDecl(name, sig.params, sig.returns, sig.body, mergeSpan(start, p.curTok.Span))
}

// parseMethodDecl parses `Struct$method Params? Returns? { ... }`.
func (p *Parser) parseMethodDecl() ast.Item {
	receiver := p.ident()

	if !p.expect(token.DOLLAR) {
		return nil
	}
	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.ident()

	sig, ok := p.parseSignature()
	if !ok {
		return nil
	}

	return ast.NewMethodDecl(receiver, name, sig.params, sig.returns, sig.body, mergeSpan(receiver.Span(), p.curTok.Span))
}

type signature struct {
	params  ast.ParamList
	returns ast.ParamList
	body    *ast.Block
}

// parseSignature parses what follows a function or method name: an optional
// parameter list, an optional return list (only after a parameter list) and
// the body. curTok is the name on entry.
func (p *Parser) parseSignature() (signature, bool) {
	var sig signature

	if p.peekTok.Kind == token.LPAREN {
		p.nextToken()
		if sig.params = p.parseParamList(); sig.params == nil {
			return sig, false
		}

		if p.peekTok.Kind == token.LPAREN {
			p.nextToken()
			if sig.returns = p.parseParamList(); sig.returns == nil {
				return sig, false
			}
		}
	} else {
		end := p.curTok.Span.End
		sig.params = ast.NewEmptyParams(token.Span{Start: end, End: end})
	}

	if p.peekTok.Kind != token.LBRACE {
		expected := []token.Kind{token.LBRACE}
		if sig.returns == nil {
			expected = []token.Kind{token.LPAREN, token.LBRACE}
		}
		p.fail(p.peekTok, expected...)
		return sig, false
	}
	p.nextToken()

	if sig.body = p.parseBlock(); sig.body == nil {
		return sig, false
	}

	return sig, true
}
