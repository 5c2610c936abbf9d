package ast

import (
	"math/big"

	"github.com/charj-lang/charj/internal/token"
)

// Ident represents an identifier. Whether it names a value or a user-defined
// type is decided by name resolution, not by the parser.
type Ident struct {
	Name string
	span token.Span
}

// Span returns the identifier span.
func (i *Ident) Span() token.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span token.Span) *Ident {
	return &Ident{Name: name, span: span}
}

// exprNode marks Ident as an expression.
func (*Ident) exprNode() {}

// TypeRef represents a builtin type used as an annotation or as a value.
type TypeRef struct {
	Type Type
	span token.Span
}

// Span returns the type span.
func (e *TypeRef) Span() token.Span { return e.span }

// NewTypeRef constructs a builtin type reference node.
func NewTypeRef(typ Type, span token.Span) *TypeRef {
	return &TypeRef{Type: typ, span: span}
}

// exprNode marks TypeRef as an expression.
func (*TypeRef) exprNode() {}

// StringLit represents a string literal.
type StringLit struct {
	Value string
	span  token.Span
}

// Span returns the literal span.
func (l *StringLit) Span() token.Span { return l.span }

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span token.Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

// exprNode marks StringLit as an expression.
func (*StringLit) exprNode() {}

// IntegerLit represents an integer literal evaluated with arbitrary precision.
type IntegerLit struct {
	Value *big.Int
	span  token.Span
}

// Span returns the literal span.
func (l *IntegerLit) Span() token.Span { return l.span }

// NewIntegerLit constructs an integer literal node.
func NewIntegerLit(value *big.Int, span token.Span) *IntegerLit {
	return &IntegerLit{Value: value, span: span}
}

// exprNode marks IntegerLit as an expression.
func (*IntegerLit) exprNode() {}

// ListLit represents a list. A `[]T` list type sets Elem and has no
// elements; a return value list has no Elem and at least one element.
type ListLit struct {
	Elem     Expr
	Elements []Expr
	span     token.Span
}

// Span returns the list span.
func (l *ListLit) Span() token.Span { return l.span }

// NewListLit constructs a list of values.
func NewListLit(elements []Expr, span token.Span) *ListLit {
	return &ListLit{Elements: elements, span: span}
}

// NewListType constructs the `[]T` form.
func NewListType(elem Expr, span token.Span) *ListLit {
	return &ListLit{Elem: elem, span: span}
}

// exprNode marks ListLit as an expression.
func (*ListLit) exprNode() {}

// Arg is a call argument with its own span.
type Arg struct {
	Value Expr
	span  token.Span
}

// Span returns the argument span.
func (a *Arg) Span() token.Span { return a.span }

// NewArg constructs an argument node.
func NewArg(value Expr, span token.Span) *Arg {
	return &Arg{Value: value, span: span}
}

// CallExpr represents a call suffix applied to Callee.
type CallExpr struct {
	Callee Expr
	Args   []*Arg
	span   token.Span
}

// Span returns the expression span.
func (e *CallExpr) Span() token.Span { return e.span }

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee Expr, args []*Arg, span token.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: span}
}

// exprNode marks CallExpr as an expression.
func (*CallExpr) exprNode() {}

// FieldExpr represents a `.name` suffix applied to Target.
type FieldExpr struct {
	Target Expr
	Field  *Ident
	span   token.Span
}

// Span returns the expression span.
func (e *FieldExpr) Span() token.Span { return e.span }

// NewFieldExpr constructs a field access node.
func NewFieldExpr(target Expr, field *Ident, span token.Span) *FieldExpr {
	return &FieldExpr{Target: target, Field: field, span: span}
}

// exprNode marks FieldExpr as an expression.
func (*FieldExpr) exprNode() {}

// CompareOp is a relational operator.
type CompareOp string

const (
	OpEq    CompareOp = "=="
	OpNotEq CompareOp = "!="
	OpLt    CompareOp = "<"
	OpLe    CompareOp = "<="
	OpGt    CompareOp = ">"
	OpGe    CompareOp = ">="
)

// CompareOpFor maps a token kind to its operator.
func CompareOpFor(k token.Kind) (CompareOp, bool) {
	if !token.IsComparison(k) {
		return "", false
	}
	return CompareOp(k), true
}

// CompareOperand is one `op operand` link of a comparison chain.
type CompareOperand struct {
	Op      CompareOp
	Operand Expr
}

// CompareExpr is a flat comparison chain `a < b <= c`. It is never folded
// into nested binary nodes: a later stage evaluates it as the conjunction of
// adjacent pairs. Rest always holds at least one link.
type CompareExpr struct {
	First Expr
	Rest  []CompareOperand
	span  token.Span
}

// Span returns the expression span.
func (e *CompareExpr) Span() token.Span { return e.span }

// NewCompareExpr constructs a comparison chain node.
func NewCompareExpr(first Expr, rest []CompareOperand, span token.Span) *CompareExpr {
	return &CompareExpr{First: first, Rest: rest, span: span}
}

// Operands returns every operand in source order.
func (e *CompareExpr) Operands() []Expr {
	out := make([]Expr, 0, len(e.Rest)+1)
	out = append(out, e.First)
	for _, link := range e.Rest {
		out = append(out, link.Operand)
	}
	return out
}

// Operators returns every operator in source order; its length is one less
// than that of Operands.
func (e *CompareExpr) Operators() []CompareOp {
	out := make([]CompareOp, len(e.Rest))
	for i, link := range e.Rest {
		out[i] = link.Op
	}
	return out
}

// exprNode marks CompareExpr as an expression.
func (*CompareExpr) exprNode() {}
