package parser

import (
	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/token"
)

var exprStart = append([]token.Kind{token.STRING, token.NUMBER}, typeStart...)

var comparisonOps = []token.Kind{
	token.EQ, token.NOT_EQ, token.LT, token.LE, token.GT, token.GE,
}

func isExprStart(k token.Kind) bool {
	return k == token.STRING || k == token.NUMBER || isTypeStart(k)
}

// parseComparison parses `expr (op expr)*`. A single operand is returned
// as is; two or more form one flat CompareExpr in source order.
func (p *Parser) parseComparison() ast.Expr {
	first := p.parseExpr()
	if first == nil {
		return nil
	}

	var rest []ast.CompareOperand
	for {
		op, ok := ast.CompareOpFor(p.peekTok.Kind)
		if !ok {
			break
		}
		p.nextToken() // move to operator

		if !isExprStart(p.peekTok.Kind) {
			p.fail(p.peekTok, exprStart...)
			return nil
		}
		p.nextToken()

		operand := p.parseExpr()
		if operand == nil {
			return nil
		}
		rest = append(rest, ast.CompareOperand{Op: op, Operand: operand})
	}

	if len(rest) == 0 {
		return first
	}

	last := rest[len(rest)-1].Operand
	return ast.NewCompareExpr(first, rest, mergeSpan(first.Span(), last.Span()))
}

// parseExpr parses an atom followed by any number of `(args)` and `.name`
// suffixes, each wrapping everything to its left.
func (p *Parser) parseExpr() ast.Expr {
	expr := p.parseAtom()
	if expr == nil {
		return nil
	}

	for {
		switch p.peekTok.Kind {
		case token.LPAREN:
			p.nextToken()
			if expr = p.parseCallSuffix(expr); expr == nil {
				return nil
			}
		case token.DOT:
			p.nextToken()
			if !p.expect(token.IDENT) {
				return nil
			}
			field := p.ident()
			expr = ast.NewFieldExpr(expr, field, mergeSpan(expr.Span(), field.Span()))
		default:
			return expr
		}
	}
}

func (p *Parser) parseAtom() ast.Expr {
	switch p.curTok.Kind {
	case token.IDENT:
		return p.ident()
	case token.STRING:
		return p.parseStringLiteral()
	case token.NUMBER:
		return p.parseIntegerLiteral()
	default:
		if isTypeStart(p.curTok.Kind) {
			return p.parseType()
		}
		p.fail(p.curTok, exprStart...)
		return nil
	}
}

// parseCallSuffix parses `(arg, ...)` after callee; curTok is '(' on entry
// and ')' on exit.
func (p *Parser) parseCallSuffix(callee ast.Expr) ast.Expr {
	p.nextToken() // move to first argument or ')'

	res, ok := parseDelimited[*ast.Arg](p, delimitedConfig{
		Closing:       token.RPAREN,
		Separator:     token.COMMA,
		AllowEmpty:    true,
		AllowTrailing: true,
		ElementStart:  exprStart,
	}, func(int) (*ast.Arg, bool) {
		value := p.parseExpr()
		if value == nil {
			return nil, false
		}
		return ast.NewArg(value, value.Span()), true
	})
	if !ok {
		return nil
	}

	return ast.NewCallExpr(callee, res.Items, mergeSpan(callee.Span(), p.curTok.Span))
}
