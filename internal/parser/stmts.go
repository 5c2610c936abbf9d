package parser

import (
	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/token"
)

var stmtStart = append([]token.Kind{
	token.RBRACE, token.LET, token.IF, token.WHILE, token.FOR,
	token.BREAK, token.CONTINUE, token.RETURN,
}, exprStart...)

// parseBlock parses `{ stmt* }`; curTok is '{' on entry and '}' on exit.
func (p *Parser) parseBlock() *ast.Block {
	start := p.curTok.Span

	var stmts []ast.Stmt
	for p.peekTok.Kind != token.RBRACE {
		p.nextToken()

		stmt := p.parseStmt()
		if stmt == nil {
			return nil
		}
		stmts = append(stmts, stmt)
	}
	p.nextToken() // move to '}'

	return ast.NewBlock(stmts, mergeSpan(start, p.curTok.Span))
}

// parseBracedBlock expects '{' as the peek token and parses the block.
func (p *Parser) parseBracedBlock() *ast.Block {
	if !p.expect(token.LBRACE) {
		return nil
	}
	return p.parseBlock()
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Kind {
	case token.LET:
		return p.parseLetStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.BREAK:
		start := p.curTok.Span
		if !p.expect(token.SEMICOLON) {
			return nil
		}
		return ast.NewBreakStmt(mergeSpan(start, p.curTok.Span))
	case token.CONTINUE:
		start := p.curTok.Span
		if !p.expect(token.SEMICOLON) {
			return nil
		}
		return ast.NewContinueStmt(mergeSpan(start, p.curTok.Span))
	case token.RETURN:
		return p.parseReturnStmt()
	default:
		if !isExprStart(p.curTok.Kind) {
			p.fail(p.curTok, stmtStart...)
			return nil
		}
		return p.parseExprStmt()
	}
}

// parseLetStmt parses `let name: Type = value;`.
func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(token.IDENT) {
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

	if !p.expect(token.ASSIGN) {
		return nil
	}
	p.nextToken() // move to value start

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	if !p.expect(token.SEMICOLON) {
		return nil
	}

	return ast.NewLetStmt(name, typ, value, mergeSpan(start, p.curTok.Span))
}

// parseCondition parses `( comparison )`; curTok is the keyword on entry and
// ')' on exit.
func (p *Parser) parseCondition() ast.Expr {
	if !p.expect(token.LPAREN) {
		return nil
	}
	p.nextToken() // move to condition start

	cond := p.parseComparison()
	if cond == nil {
		return nil
	}

	if p.peekTok.Kind != token.RPAREN {
		expected := append([]token.Kind{token.RPAREN, token.LPAREN, token.DOT}, comparisonOps...)
		p.fail(p.peekTok, expected...)
		return nil
	}
	p.nextToken()

	return cond
}

// parseIfStmt parses `if (cond) { ... } else { ... }`. The else branch is a
// block; `else if` must be written as an if inside that block.
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.curTok.Span

	cond := p.parseCondition()
	if cond == nil {
		return nil
	}

	then := p.parseBracedBlock()
	if then == nil {
		return nil
	}

	var els *ast.Block
	if p.peekTok.Kind == token.ELSE {
		p.nextToken()
		if els = p.parseBracedBlock(); els == nil {
			return nil
		}
	}

	return ast.NewIfStmt(cond, then, els, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.curTok.Span

	cond := p.parseCondition()
	if cond == nil {
		return nil
	}

	body := p.parseBracedBlock()
	if body == nil {
		return nil
	}

	return ast.NewWhileStmt(cond, body, mergeSpan(start, p.curTok.Span))
}

// parseForStmt parses the placeholder loop `for () {}`: no header, no body.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.curTok.Span

	for _, k := range []token.Kind{token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE} {
		if !p.expect(k) {
			return nil
		}
	}

	return ast.NewForStmt(mergeSpan(start, p.curTok.Span))
}

// parseReturnStmt parses `return;` or `return a, b;`. A trailing comma is
// accepted and dropped; an empty value list yields a nil Values.
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken() // move to first value or ';'

	res, ok := parseDelimited[ast.Expr](p, delimitedConfig{
		Closing:       token.SEMICOLON,
		Separator:     token.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
		ElementStart:  exprStart,
	}, func(int) (ast.Expr, bool) {
		expr := p.parseExpr()
		return expr, expr != nil
	})
	if !ok {
		return nil
	}

	var values *ast.ListLit
	if n := len(res.Items); n > 0 {
		values = ast.NewListLit(res.Items, mergeSpan(res.Items[0].Span(), res.Items[n-1].Span()))
	}

	return ast.NewReturnStmt(values, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.expect(token.SEMICOLON) {
		return nil
	}

	return ast.NewExprStmt(expr, mergeSpan(expr.Span(), p.curTok.Span))
}
