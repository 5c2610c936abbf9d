package token

import (
	"fmt"

	"github.com/charj-lang/charj/internal/diag"
)

// Source produces tokens one at a time. Once the stream is exhausted Next
// keeps returning an EOF token. A non-nil error is a lexical failure; the
// parser stops at the first one.
type Source interface {
	Next() (Token, error)
}

// LexicalError reports malformed token text detected by the token source.
type LexicalError struct {
	Message string
	Span    Span
	Code    diag.Code
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.Span, e.Message)
}

// ToDiagnostic converts a lexical error into a shared diagnostic structure.
func (e *LexicalError) ToDiagnostic() diag.Diagnostic {
	code := e.Code
	if code == "" {
		code = diag.CodeLexerInvalidToken
	}
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  e.Message,
		Span:     diag.Span{Start: e.Span.Start, End: e.Span.End},
	}
}

// SliceSource replays a fixed token slice. An ILLEGAL token is reported as a
// LexicalError carrying the token text as its message.
type SliceSource struct {
	toks []Token
	pos  int
}

// NewSliceSource returns a source over toks. A trailing EOF token is optional.
func NewSliceSource(toks []Token) *SliceSource {
	return &SliceSource{toks: toks}
}

// Next implements Source.
func (s *SliceSource) Next() (Token, error) {
	if s.pos >= len(s.toks) {
		return s.eof(), nil
	}

	tok := s.toks[s.pos]
	if tok.Kind != EOF {
		s.pos++
	}

	if tok.Kind == ILLEGAL {
		msg := tok.Text
		if msg == "" {
			msg = "invalid token"
		}
		return tok, &LexicalError{Message: msg, Span: tok.Span}
	}

	return tok, nil
}

// eof synthesises an empty EOF token positioned after the last token.
func (s *SliceSource) eof() Token {
	end := 0
	if n := len(s.toks); n > 0 {
		end = s.toks[n-1].Span.End
	}
	return Token{Kind: EOF, Span: Span{Start: end, End: end}}
}

// Filter wraps a source and drops trivia (doc comments and newlines), which
// carry no grammar production.
type Filter struct {
	src Source
}

// NewFilter wraps src.
func NewFilter(src Source) *Filter {
	return &Filter{src: src}
}

// Next implements Source.
func (f *Filter) Next() (Token, error) {
	for {
		tok, err := f.src.Next()
		if err != nil || !IsTrivia(tok.Kind) {
			return tok, err
		}
	}
}
