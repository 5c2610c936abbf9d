package ast

import "github.com/charj-lang/charj/internal/token"

// Param is a type with an optional name. The name is optional because the
// same grammar describes typed slots such as return lists.
type Param struct {
	Type Expr
	Name *Ident // nil for an unnamed slot
	span token.Span
}

// Span returns the parameter span.
func (p *Param) Span() token.Span { return p.span }

// NewParam constructs a parameter node.
func NewParam(typ Expr, name *Ident, span token.Span) *Param {
	return &Param{Type: typ, Name: name, span: span}
}

// ParamList is one of EmptyParams, SingleParam or MultiParams.
//
// A single parameter is always present. Only lists of two or more slots may
// contain gaps, which Slots reports as nil entries.
type ParamList interface {
	Node
	Slots() []*Param
	paramList()
}

// EmptyParams is `()` or an omitted parameter list.
type EmptyParams struct {
	span token.Span
}

// NewEmptyParams constructs an empty parameter list.
func NewEmptyParams(span token.Span) *EmptyParams {
	return &EmptyParams{span: span}
}

// Span returns the list span; zero-width when the list was omitted.
func (l *EmptyParams) Span() token.Span { return l.span }

// Slots returns no slots.
func (*EmptyParams) Slots() []*Param { return nil }

func (*EmptyParams) paramList() {}

// SingleParam is a list with exactly one, always present, parameter.
type SingleParam struct {
	Param *Param
	span  token.Span
}

// NewSingleParam constructs a one-parameter list.
func NewSingleParam(param *Param, span token.Span) *SingleParam {
	return &SingleParam{Param: param, span: span}
}

// Span returns the list span.
func (l *SingleParam) Span() token.Span { return l.span }

// Slots returns the single parameter.
func (l *SingleParam) Slots() []*Param { return []*Param{l.Param} }

func (*SingleParam) paramList() {}

// MultiParams is a list of two or more slots, any of which may be missing.
type MultiParams struct {
	Entries []*Param // nil entries are gaps
	span    token.Span
}

// NewMultiParams constructs a multi-slot list.
func NewMultiParams(entries []*Param, span token.Span) *MultiParams {
	return &MultiParams{Entries: entries, span: span}
}

// Span returns the list span.
func (l *MultiParams) Span() token.Span { return l.span }

// Slots returns the entries, gaps included.
func (l *MultiParams) Slots() []*Param { return l.Entries }

// Missing reports how many slots are gaps.
func (l *MultiParams) Missing() int {
	n := 0
	for _, p := range l.Entries {
		if p == nil {
			n++
		}
	}
	return n
}

func (*MultiParams) paramList() {}
