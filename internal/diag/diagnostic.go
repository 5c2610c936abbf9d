package diag

import "fmt"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors (reported by the token source)
	CodeLexerInvalidToken    Code = "LEXER_INVALID_TOKEN"
	CodeLexerMalformedNumber Code = "LEXER_MALFORMED_NUMBER"

	// Parser errors
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseUnexpectedEOF   Code = "PARSE_UNEXPECTED_EOF"
)

// Span represents a location in source code as a half-open byte range.
type Span struct {
	Filename string
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d..%d", s.Filename, s.Start, s.End)
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// IsValid returns true if the span describes a real range.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Diagnostic is a front-end diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Expected []string // printable names of the accepted tokens, e.g. "`;`", "identifier"
	Notes    []string
	Help     string
}

// WithExpected returns a new diagnostic listing the accepted tokens.
func (d Diagnostic) WithExpected(expected ...string) Diagnostic {
	d.Expected = append(append([]string(nil), d.Expected...), expected...)
	return d
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(append([]string(nil), d.Notes...), note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// WithFilename attributes the diagnostic span to a file.
func (d Diagnostic) WithFilename(name string) Diagnostic {
	d.Span.Filename = name
	return d
}

// Position converts a byte offset into a 1-based line and column.
// Offsets past the end of src clamp to the position just after the last byte.
func Position(src string, offset int) (line, column int) {
	if offset > len(src) {
		offset = len(src)
	}
	line, column = 1, 1
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
