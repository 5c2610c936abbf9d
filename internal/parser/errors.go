package parser

import (
	"fmt"
	"strings"

	"github.com/charj-lang/charj/internal/diag"
	"github.com/charj-lang/charj/internal/token"
)

// SyntaxError reports a token that no production accepts.
type SyntaxError struct {
	Filename string
	Found    token.Token
	Expected []token.Kind // kinds that would have been accepted, in grammar order
}

// Span returns the location of the offending token.
func (e *SyntaxError) Span() token.Span { return e.Found.Span }

// Message describes the failure without location information.
func (e *SyntaxError) Message() string {
	var b strings.Builder
	if e.Found.Kind == token.EOF {
		b.WriteString("unexpected end of input")
	} else {
		fmt.Fprintf(&b, "unexpected `%s`", e.Found)
	}

	if len(e.Expected) > 0 {
		b.WriteString(", expected ")
		if len(e.Expected) > 1 {
			b.WriteString("one of ")
		}
		b.WriteString(strings.Join(e.expectedNames(), ", "))
	}

	return b.String()
}

func (e *SyntaxError) Error() string {
	loc := e.Found.Span.String()
	if e.Filename != "" {
		loc = e.Filename + ":" + loc
	}
	return "syntax error at " + loc + ": " + e.Message()
}

// ToDiagnostic converts the syntax error into a shared diagnostic structure.
func (e *SyntaxError) ToDiagnostic() diag.Diagnostic {
	code := diag.CodeParseUnexpectedToken
	if e.Found.Kind == token.EOF {
		code = diag.CodeParseUnexpectedEOF
	}

	msg := "unexpected end of input"
	if e.Found.Kind != token.EOF {
		msg = fmt.Sprintf("unexpected `%s`", e.Found)
	}

	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  msg,
		Span: diag.Span{
			Filename: e.Filename,
			Start:    e.Found.Span.Start,
			End:      e.Found.Span.End,
		},
		Expected: e.expectedNames(),
	}
}

func (e *SyntaxError) expectedNames() []string {
	names := make([]string, 0, len(e.Expected))
	seen := make(map[token.Kind]bool, len(e.Expected))
	for _, k := range e.Expected {
		if seen[k] {
			continue
		}
		seen[k] = true
		names = append(names, describe(k))
	}
	return names
}

// describe names a token kind the way users write it.
func describe(k token.Kind) string {
	switch k {
	case token.IDENT:
		return "identifier"
	case token.STRING:
		return "string literal"
	case token.NUMBER:
		return "number"
	case token.INT_TYPE:
		return "intN"
	case token.UINT_TYPE:
		return "uintN"
	case token.BYTES_TYPE:
		return "bytesN"
	case token.EOF:
		return "end of input"
	default:
		return "`" + string(k) + "`"
	}
}

// fail records a syntax error at tok unless an error is already recorded.
// When tok stands in for a token source failure, that failure is reported
// instead.
func (p *Parser) fail(tok token.Token, expected ...token.Kind) {
	if p.err != nil {
		return
	}

	if tok.Kind == token.ILLEGAL && p.lexErr != nil {
		p.err = p.lexErr
		return
	}

	p.err = &SyntaxError{
		Filename: p.filename,
		Found:    tok,
		Expected: expected,
	}
}

// failLexical records a token-level defect found while evaluating a literal.
func (p *Parser) failLexical(tok token.Token, code diag.Code, cause error) {
	if p.err != nil {
		return
	}

	p.err = &token.LexicalError{
		Message: cause.Error(),
		Span:    tok.Span,
		Code:    code,
	}
}
