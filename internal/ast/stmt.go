package ast

import "github.com/charj-lang/charj/internal/token"

// Block represents a brace-delimited statement list. An empty block is legal.
type Block struct {
	Stmts []Stmt
	span  token.Span
}

// Span returns the block span.
func (b *Block) Span() token.Span { return b.span }

// NewBlock constructs a block node.
func NewBlock(stmts []Stmt, span token.Span) *Block {
	return &Block{Stmts: stmts, span: span}
}

// VarDecl represents a `name: Type` declaration. It only appears as a struct
// field.
type VarDecl struct {
	Name *Ident
	Type Expr
	span token.Span
}

// Span returns the declaration span.
func (s *VarDecl) Span() token.Span { return s.span }

// NewVarDecl constructs a variable declaration node.
func NewVarDecl(name *Ident, typ Expr, span token.Span) *VarDecl {
	return &VarDecl{Name: name, Type: typ, span: span}
}

// stmtNode marks VarDecl as a statement.
func (*VarDecl) stmtNode() {}

// LetStmt represents `let name: Type = value;`.
type LetStmt struct {
	Name  *Ident
	Type  Expr
	Value Expr
	span  token.Span
}

// Span returns the statement span.
func (s *LetStmt) Span() token.Span { return s.span }

// NewLetStmt constructs a let statement node.
func NewLetStmt(name *Ident, typ, value Expr, span token.Span) *LetStmt {
	return &LetStmt{Name: name, Type: typ, Value: value, span: span}
}

// stmtNode marks LetStmt as a statement.
func (*LetStmt) stmtNode() {}

// ExprStmt represents an expression statement.
type ExprStmt struct {
	Expr Expr
	span token.Span
}

// Span returns the statement span.
func (s *ExprStmt) Span() token.Span { return s.span }

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span token.Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: span}
}

// stmtNode marks ExprStmt as a statement.
func (*ExprStmt) stmtNode() {}

// IfStmt represents an if statement. Else is nil without an else block;
// `else if` is written as an if nested inside the else block.
type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block
	span token.Span
}

// Span returns the statement span.
func (s *IfStmt) Span() token.Span { return s.span }

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, then, els *Block, span token.Span) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els, span: span}
}

// stmtNode marks IfStmt as a statement.
func (*IfStmt) stmtNode() {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	Cond Expr
	Body *Block
	span token.Span
}

// Span returns the statement span.
func (s *WhileStmt) Span() token.Span { return s.span }

// NewWhileStmt constructs a while statement node.
func NewWhileStmt(cond Expr, body *Block, span token.Span) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body, span: span}
}

// stmtNode marks WhileStmt as a statement.
func (*WhileStmt) stmtNode() {}

// ForStmt is the placeholder `for () {}` loop. It has no header and no body.
type ForStmt struct {
	span token.Span
}

// Span returns the statement span.
func (s *ForStmt) Span() token.Span { return s.span }

// NewForStmt constructs a for statement node.
func NewForStmt(span token.Span) *ForStmt {
	return &ForStmt{span: span}
}

// stmtNode marks ForStmt as a statement.
func (*ForStmt) stmtNode() {}

// BreakStmt represents `break;`.
type BreakStmt struct {
	span token.Span
}

// Span returns the statement span.
func (s *BreakStmt) Span() token.Span { return s.span }

// NewBreakStmt constructs a break statement node.
func NewBreakStmt(span token.Span) *BreakStmt {
	return &BreakStmt{span: span}
}

// stmtNode marks BreakStmt as a statement.
func (*BreakStmt) stmtNode() {}

// ContinueStmt represents `continue;`.
type ContinueStmt struct {
	span token.Span
}

// Span returns the statement span.
func (s *ContinueStmt) Span() token.Span { return s.span }

// NewContinueStmt constructs a continue statement node.
func NewContinueStmt(span token.Span) *ContinueStmt {
	return &ContinueStmt{span: span}
}

// stmtNode marks ContinueStmt as a statement.
func (*ContinueStmt) stmtNode() {}

// ReturnStmt represents a return statement. Values is nil for a bare return
// and otherwise holds at least one element.
type ReturnStmt struct {
	Values *ListLit
	span   token.Span
}

// Span returns the statement span.
func (s *ReturnStmt) Span() token.Span { return s.span }

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(values *ListLit, span token.Span) *ReturnStmt {
	return &ReturnStmt{Values: values, span: span}
}

// stmtNode marks ReturnStmt as a statement.
func (*ReturnStmt) stmtNode() {}
