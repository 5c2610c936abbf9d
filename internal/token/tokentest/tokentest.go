// Package tokentest builds token streams from short source snippets so tests
// can exercise the parser with spans that index into a real string. It is a
// fixture, not a Charj lexer: it knows only enough of the surface syntax to
// classify the words and punctuation the grammar uses.
package tokentest

import (
	"strings"

	"github.com/charj-lang/charj/internal/token"
)

// Scan splits src into tokens. Newlines and "///" comments are emitted as
// trivia tokens; other whitespace is skipped. Characters it cannot classify
// become ILLEGAL tokens.
func Scan(src string) []token.Token {
	var toks []token.Token
	i := 0
	for i < len(src) {
		c := src[i]
		start := i

		switch {
		case c == '\n':
			i++
			toks = append(toks, token.Token{Kind: token.NEWLINE, Text: "\n", Span: span(start, i)})
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case strings.HasPrefix(src[i:], "///"):
			for i < len(src) && src[i] != '\n' {
				i++
			}
			text := strings.TrimSpace(src[start+3 : i])
			toks = append(toks, token.Token{Kind: token.DOC_COMMENT, Text: text, Doc: "line", Span: span(start, i)})
		case c == '"':
			i++
			for i < len(src) && src[i] != '"' {
				i++
			}
			if i >= len(src) {
				toks = append(toks, token.Token{Kind: token.ILLEGAL, Text: "unterminated string literal", Span: span(start, i)})
				continue
			}
			i++
			toks = append(toks, token.Token{Kind: token.STRING, Text: src[start+1 : i-1], Span: span(start, i)})
		case isDigit(c):
			for i < len(src) && (isDigit(src[i]) || src[i] == '_') {
				i++
			}
			tok := token.Token{Kind: token.NUMBER, Mantissa: src[start:i]}
			if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
				i++
				exp := i
				for i < len(src) && (isDigit(src[i]) || src[i] == '_') {
					i++
				}
				tok.Exponent = src[exp:i]
			}
			tok.Span = span(start, i)
			toks = append(toks, tok)
		case isLetter(c):
			for i < len(src) && (isLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			word := src[start:i]
			kind, size := token.LookupIdent(word)
			toks = append(toks, token.Token{Kind: kind, Text: word, Size: size, Span: span(start, i)})
		default:
			if i+2 <= len(src) {
				if kind, ok := token.LookupPunct(src[i : i+2]); ok {
					i += 2
					toks = append(toks, token.Token{Kind: kind, Text: string(kind), Span: span(start, i)})
					continue
				}
			}
			i++
			kind, ok := token.LookupPunct(src[start:i])
			if !ok {
				toks = append(toks, token.Token{Kind: token.ILLEGAL, Text: "unexpected character " + src[start:i], Span: span(start, i)})
				continue
			}
			toks = append(toks, token.Token{Kind: kind, Text: string(kind), Span: span(start, i)})
		}
	}
	return toks
}

// Source returns a source replaying Scan(src).
func Source(src string) token.Source {
	return token.NewSliceSource(Scan(src))
}

func span(start, end int) token.Span {
	return token.Span{Start: start, End: end}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
