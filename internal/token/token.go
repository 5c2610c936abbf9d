package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a token.
type Kind string

// Span locates a token or node in the source as a half-open byte range.
type Span struct {
	Start int // offset of the first byte
	End   int // offset one past the last byte
}

// String returns the span as "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Len reports the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Text returns the slice of src covered by the span, or "" when the span
// does not fit inside src.
func (s Span) Text(src string) string {
	if s.Start < 0 || s.End < s.Start || s.End > len(src) {
		return ""
	}
	return src[s.Start:s.End]
}

// Token is a classified lexical unit with its payload inlined.
type Token struct {
	Kind     Kind
	Text     string // identifier name, string contents, doc text or fixed lexeme
	Mantissa string // NUMBER only: digits before the exponent marker
	Exponent string // NUMBER only: exponent digits, "" without scientific notation
	Size     int    // INT_TYPE, UINT_TYPE, BYTES_TYPE: declared width
	Doc      string // DOC_COMMENT only: comment flavour ("line", "block")
	Span     Span
}

// String renders the token the way diagnostics quote it.
func (t Token) String() string {
	switch t.Kind {
	case IDENT, STRING, DOC_COMMENT, ILLEGAL:
		if t.Text != "" {
			return t.Text
		}
	case NUMBER:
		if t.Exponent != "" {
			return t.Mantissa + "e" + t.Exponent
		}
		return t.Mantissa
	case INT_TYPE:
		return "int" + strconv.Itoa(t.Size)
	case UINT_TYPE:
		return "uint" + strconv.Itoa(t.Size)
	case BYTES_TYPE:
		return "bytes" + strconv.Itoa(t.Size)
	}
	return string(t.Kind)
}

const (
	// Special tokens
	ILLEGAL Kind = "ILLEGAL"
	EOF     Kind = "EOF"

	// Payload-carrying tokens
	IDENT       Kind = "IDENT"       // owner, balanceOf
	STRING      Kind = "STRING"      // "std/io"
	NUMBER      Kind = "NUMBER"      // 1_000, 3e100
	DOC_COMMENT Kind = "DOC_COMMENT" // /// docs
	NEWLINE     Kind = "NEWLINE"

	// Sized type keywords; the width travels in Token.Size.
	INT_TYPE   Kind = "INT_TYPE"   // int8 .. int256
	UINT_TYPE  Kind = "UINT_TYPE"  // uint8 .. uint256
	BYTES_TYPE Kind = "BYTES_TYPE" // bytes1 .. bytes32

	// Keywords
	PACKAGE  Kind = "package"
	IMPORT   Kind = "import"
	AS       Kind = "as"
	STRUCT   Kind = "struct"
	FUN      Kind = "fun"
	LET      Kind = "let"
	IF       Kind = "if"
	ELSE     Kind = "else"
	WHILE    Kind = "while"
	FOR      Kind = "for"
	BREAK    Kind = "break"
	CONTINUE Kind = "continue"
	RETURN   Kind = "return"
	BOOL     Kind = "bool"
	STRING_T Kind = "string"
	BYTES    Kind = "bytes"

	// Delimiters
	LBRACE    Kind = "{"
	RBRACE    Kind = "}"
	LPAREN    Kind = "("
	RPAREN    Kind = ")"
	LBRACKET  Kind = "["
	RBRACKET  Kind = "]"
	SEMICOLON Kind = ";"
	COLON     Kind = ":"
	COMMA     Kind = ","
	DOT       Kind = "."
	DOLLAR    Kind = "$"

	// Operators
	ASSIGN    Kind = "="
	EQ        Kind = "=="
	NOT_EQ    Kind = "!="
	LT        Kind = "<"
	LE        Kind = "<="
	GT        Kind = ">"
	GE        Kind = ">="
	PLUS      Kind = "+"
	MINUS     Kind = "-"
	ASTERISK  Kind = "*"
	SLASH     Kind = "/"
	PERCENT   Kind = "%"
	POW       Kind = "**"
	BANG      Kind = "!"
	TILDE     Kind = "~"
	INCR      Kind = "++"
	DECR      Kind = "--"
	AMPERSAND Kind = "&"
	PIPE      Kind = "|"
	CARET     Kind = "^"
	SHL       Kind = "<<"
	SHR       Kind = ">>"
	AND       Kind = "&&"
	OR        Kind = "||"
	QUESTION  Kind = "?"
	FATARROW  Kind = "=>"
)

var keywords = map[string]Kind{
	"package":  PACKAGE,
	"pkg":      PACKAGE,
	"import":   IMPORT,
	"as":       AS,
	"struct":   STRUCT,
	"fun":      FUN,
	"let":      LET,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"bool":     BOOL,
	"string":   STRING_T,
	"bytes":    BYTES,
}

var punctuation = map[string]Kind{}

func init() {
	for _, k := range []Kind{
		LBRACE, RBRACE, LPAREN, RPAREN, LBRACKET, RBRACKET, SEMICOLON, COLON,
		COMMA, DOT, DOLLAR, ASSIGN, EQ, NOT_EQ, LT, LE, GT, GE, PLUS, MINUS,
		ASTERISK, SLASH, PERCENT, POW, BANG, TILDE, INCR, DECR, AMPERSAND,
		PIPE, CARET, SHL, SHR, AND, OR, QUESTION, FATARROW,
	} {
		punctuation[string(k)] = k
	}
}

// LookupIdent classifies a word: a keyword kind, a sized type keyword with its
// width, or IDENT.
func LookupIdent(word string) (Kind, int) {
	if k, ok := keywords[word]; ok {
		return k, 0
	}
	if size, ok := sized(word, "uint", 8, 256, 8); ok {
		return UINT_TYPE, size
	}
	if size, ok := sized(word, "int", 8, 256, 8); ok {
		return INT_TYPE, size
	}
	if size, ok := sized(word, "bytes", 1, 32, 1); ok {
		return BYTES_TYPE, size
	}
	return IDENT, 0
}

// LookupPunct returns the kind of a punctuation lexeme.
func LookupPunct(lexeme string) (Kind, bool) {
	k, ok := punctuation[lexeme]
	return k, ok
}

// IsComparison reports whether k is one of the relational operators.
func IsComparison(k Kind) bool {
	switch k {
	case EQ, NOT_EQ, LT, LE, GT, GE:
		return true
	default:
		return false
	}
}

// IsTrivia reports whether k carries no grammar production.
func IsTrivia(k Kind) bool {
	return k == DOC_COMMENT || k == NEWLINE
}

func sized(word, prefix string, lo, hi, step int) (int, bool) {
	digits, ok := strings.CutPrefix(word, prefix)
	if !ok || digits == "" || digits[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < lo || n > hi || n%step != 0 {
		return 0, false
	}
	return n, true
}
