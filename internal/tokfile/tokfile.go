// Package tokfile reads token streams serialized by an external lexer.
//
// A token file is a YAML sequence (JSON arrays are accepted too) of records:
//
//	- {kind: fun, start: 0, end: 3}
//	- {kind: IDENT, text: transfer, start: 4, end: 12}
//	- {kind: NUMBER, mantissa: "3", exponent: "100", start: 20, end: 25}
//	- {kind: uint256, start: 30, end: 37}
//
// kind is either a class name (IDENT, STRING, NUMBER, DOC_COMMENT, NEWLINE,
// ILLEGAL, EOF, INT_TYPE, UINT_TYPE, BYTES_TYPE), a keyword or a punctuation
// lexeme. Sized type keywords such as uint256 carry their width implicitly.
package tokfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/charj-lang/charj/internal/token"
)

// Record is the serialized form of one token.
type Record struct {
	Kind     string `yaml:"kind"`
	Text     string `yaml:"text,omitempty"`
	Mantissa string `yaml:"mantissa,omitempty"`
	Exponent string `yaml:"exponent,omitempty"`
	Size     int    `yaml:"size,omitempty"`
	Doc      string `yaml:"doc,omitempty"`
	Start    int    `yaml:"start"`
	End      int    `yaml:"end"`
}

// DecodeError reports a record that does not describe a valid token.
type DecodeError struct {
	Index   int // position of the record in the sequence
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("token %d: %s", e.Index, e.Message)
}

var classes = map[string]token.Kind{
	string(token.ILLEGAL):     token.ILLEGAL,
	string(token.EOF):         token.EOF,
	string(token.IDENT):       token.IDENT,
	string(token.STRING):      token.STRING,
	string(token.NUMBER):      token.NUMBER,
	string(token.DOC_COMMENT): token.DOC_COMMENT,
	string(token.NEWLINE):     token.NEWLINE,
	string(token.INT_TYPE):    token.INT_TYPE,
	string(token.UINT_TYPE):   token.UINT_TYPE,
	string(token.BYTES_TYPE):  token.BYTES_TYPE,
}

// Decode parses a token file.
func Decode(data []byte) ([]token.Token, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("tokfile: %w", err)
	}

	toks := make([]token.Token, 0, len(records))
	for i, rec := range records {
		tok, err := rec.Token()
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				de.Index = i
			}
			return nil, fmt.Errorf("tokfile: %w", err)
		}
		toks = append(toks, tok)
	}

	return toks, nil
}

// ReadFile reads and decodes the token file at path.
func ReadFile(path string) ([]token.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tokfile: %w", err)
	}

	toks, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return toks, nil
}

// Token converts the record into a token.
func (r Record) Token() (token.Token, error) {
	if r.Start < 0 || r.End < r.Start {
		return token.Token{}, &DecodeError{Message: fmt.Sprintf("invalid span %d..%d", r.Start, r.End)}
	}

	tok := token.Token{
		Text:     r.Text,
		Mantissa: r.Mantissa,
		Exponent: r.Exponent,
		Size:     r.Size,
		Doc:      r.Doc,
		Span:     token.Span{Start: r.Start, End: r.End},
	}

	if k, ok := classes[r.Kind]; ok {
		tok.Kind = k
		return tok, checkPayload(tok)
	}

	if k, ok := token.LookupPunct(r.Kind); ok {
		tok.Kind = k
		if tok.Text == "" {
			tok.Text = r.Kind
		}
		return tok, nil
	}

	k, size := token.LookupIdent(r.Kind)
	if k == token.IDENT {
		return token.Token{}, &DecodeError{Message: fmt.Sprintf("unknown token kind %q", r.Kind)}
	}
	tok.Kind = k
	if tok.Size == 0 {
		tok.Size = size
	}
	if tok.Text == "" {
		tok.Text = r.Kind
	}
	return tok, nil
}

func checkPayload(tok token.Token) error {
	switch tok.Kind {
	case token.IDENT:
		if tok.Text == "" {
			return &DecodeError{Message: "identifier without text"}
		}
	case token.NUMBER:
		if tok.Mantissa == "" && tok.Text == "" {
			return &DecodeError{Message: "number without mantissa"}
		}
	case token.INT_TYPE, token.UINT_TYPE, token.BYTES_TYPE:
		if tok.Size <= 0 {
			return &DecodeError{Message: fmt.Sprintf("%s without size", tok.Kind)}
		}
	}
	return nil
}

// Encode serializes tokens in the format Decode reads.
func Encode(toks []token.Token) ([]byte, error) {
	records := make([]Record, len(toks))
	for i, tok := range toks {
		records[i] = Record{
			Kind:     string(tok.Kind),
			Text:     tok.Text,
			Mantissa: tok.Mantissa,
			Exponent: tok.Exponent,
			Size:     tok.Size,
			Doc:      tok.Doc,
			Start:    tok.Span.Start,
			End:      tok.Span.End,
		}
	}

	out, err := yaml.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("tokfile: %w", err)
	}
	return out, nil
}
