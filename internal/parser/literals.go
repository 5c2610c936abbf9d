package parser

import (
	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/diag"
	"github.com/charj-lang/charj/internal/literal"
)

func (p *Parser) parseStringLiteral() ast.Expr {
	return ast.NewStringLit(literal.String(p.curTok.Text), p.curTok.Span)
}

// parseIntegerLiteral evaluates the number token's mantissa and exponent. A
// payload the evaluator rejects is reported as a lexical error at the token.
func (p *Parser) parseIntegerLiteral() ast.Expr {
	tok := p.curTok

	mantissa := tok.Mantissa
	if mantissa == "" && tok.Exponent == "" {
		mantissa = tok.Text
	}

	value, err := literal.Int(mantissa, tok.Exponent)
	if err != nil {
		p.failLexical(tok, diag.CodeLexerMalformedNumber, err)
		return nil
	}

	return ast.NewIntegerLit(value, tok.Span)
}
