package token_test

import (
	"errors"
	"testing"

	"github.com/charj-lang/charj/internal/token"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		word string
		kind token.Kind
		size int
	}{
		{"package", token.PACKAGE, 0},
		{"pkg", token.PACKAGE, 0},
		{"fun", token.FUN, 0},
		{"string", token.STRING_T, 0},
		{"bytes", token.BYTES, 0},
		{"uint8", token.UINT_TYPE, 8},
		{"uint256", token.UINT_TYPE, 256},
		{"int128", token.INT_TYPE, 128},
		{"bytes1", token.BYTES_TYPE, 1},
		{"bytes32", token.BYTES_TYPE, 32},
		{"uint7", token.IDENT, 0},
		{"uint264", token.IDENT, 0},
		{"int08", token.IDENT, 0},
		{"bytes33", token.IDENT, 0},
		{"bytes0", token.IDENT, 0},
		{"uint", token.IDENT, 0},
		{"owner", token.IDENT, 0},
	}

	for _, tt := range tests {
		kind, size := token.LookupIdent(tt.word)
		if kind != tt.kind || size != tt.size {
			t.Errorf("%s: expected %s/%d, got %s/%d", tt.word, tt.kind, tt.size, kind, size)
		}
	}
}

func TestLookupPunct(t *testing.T) {
	for _, lexeme := range []string{"{", "$", "==", "<=", "=>", "**"} {
		k, ok := token.LookupPunct(lexeme)
		if !ok || string(k) != lexeme {
			t.Errorf("%q: expected punctuation kind, got %q (%v)", lexeme, k, ok)
		}
	}
	if _, ok := token.LookupPunct("@"); ok {
		t.Errorf("expected @ to be unknown")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.IDENT, Text: "owner"}, "owner"},
		{token.Token{Kind: token.NUMBER, Mantissa: "3", Exponent: "100"}, "3e100"},
		{token.Token{Kind: token.NUMBER, Mantissa: "1_000"}, "1_000"},
		{token.Token{Kind: token.UINT_TYPE, Size: 64}, "uint64"},
		{token.Token{Kind: token.BYTES_TYPE, Size: 4}, "bytes4"},
		{token.Token{Kind: token.LBRACE}, "{"},
		{token.Token{Kind: token.FUN, Text: "fun"}, "fun"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestSpanText(t *testing.T) {
	const src = "fun main"

	if got := (token.Span{Start: 4, End: 8}).Text(src); got != "main" {
		t.Fatalf("expected %q, got %q", "main", got)
	}
	if got := (token.Span{Start: 4, End: 9}).Text(src); got != "" {
		t.Fatalf("expected empty text for out-of-range span, got %q", got)
	}
	if got := (token.Span{Start: 2, End: 5}).Len(); got != 3 {
		t.Fatalf("expected length 3, got %d", got)
	}
}

func TestSliceSource(t *testing.T) {
	src := token.NewSliceSource([]token.Token{
		{Kind: token.IDENT, Text: "a", Span: token.Span{Start: 0, End: 1}},
		{Kind: token.ILLEGAL, Text: "unexpected character @", Span: token.Span{Start: 2, End: 3}},
	})

	tok, err := src.Next()
	if err != nil || tok.Kind != token.IDENT {
		t.Fatalf("expected IDENT, got %s (%v)", tok.Kind, err)
	}

	_, err = src.Next()
	var lexErr *token.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *token.LexicalError, got %T", err)
	}
	if lexErr.Span.Start != 2 || lexErr.Message != "unexpected character @" {
		t.Fatalf("unexpected lexical error %+v", lexErr)
	}

	for i := 0; i < 2; i++ {
		tok, err = src.Next()
		if err != nil || tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %s (%v)", tok.Kind, err)
		}
		if tok.Span.Start != 3 || tok.Span.Len() != 0 {
			t.Fatalf("expected empty EOF span at 3, got %s", tok.Span)
		}
	}
}

func TestFilterDropsTrivia(t *testing.T) {
	src := token.NewFilter(token.NewSliceSource([]token.Token{
		{Kind: token.DOC_COMMENT, Text: "docs"},
		{Kind: token.NEWLINE},
		{Kind: token.FUN},
		{Kind: token.NEWLINE},
		{Kind: token.EOF},
	}))

	var kinds []token.Kind
	for {
		tok, err := src.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}

	if len(kinds) != 2 || kinds[0] != token.FUN {
		t.Fatalf("expected [fun EOF], got %v", kinds)
	}
}
