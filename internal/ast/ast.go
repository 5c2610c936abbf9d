package ast

import "github.com/charj-lang/charj/internal/token"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() token.Span
}

// Item represents a top-level program item.
type Item interface {
	Node
	itemNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Type annotations are expressions too:
// a builtin type is a TypeRef, a user-defined type is an Ident and a list
// type is a ListLit carrying its element type.
type Expr interface {
	Node
	exprNode()
}

// Program represents a parsed compilation unit.
type Program struct {
	Items []Item
	span  token.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() token.Span { return p.span }

// NewProgram constructs a program node.
func NewProgram(items []Item, span token.Span) *Program {
	return &Program{Items: items, span: span}
}

// PackageDecl represents a package declaration (`package name` or `pkg name`).
type PackageDecl struct {
	Name *Ident
	span token.Span
}

// Span returns the declaration span.
func (d *PackageDecl) Span() token.Span { return d.span }

// NewPackageDecl constructs a package declaration node.
func NewPackageDecl(name *Ident, span token.Span) *PackageDecl {
	return &PackageDecl{Name: name, span: span}
}

// itemNode marks PackageDecl as a top-level item.
func (*PackageDecl) itemNode() {}

// ImportDecl represents an import. Exactly one form is populated: Module for
// `import name`, or Path and Alias for `import "path" as alias`.
type ImportDecl struct {
	Module *Ident
	Path   *StringLit
	Alias  *Ident
	span   token.Span
}

// Span returns the declaration span.
func (d *ImportDecl) Span() token.Span { return d.span }

// NewModuleImport constructs the plain `import name` form.
func NewModuleImport(module *Ident, span token.Span) *ImportDecl {
	return &ImportDecl{Module: module, span: span}
}

// NewPathImport constructs the `import "path" as alias` form.
func NewPathImport(path *StringLit, alias *Ident, span token.Span) *ImportDecl {
	return &ImportDecl{Path: path, Alias: alias, span: span}
}

// IsAliased reports whether the import binds a string path to an alias.
func (d *ImportDecl) IsAliased() bool { return d.Path != nil }

// itemNode marks ImportDecl as a top-level item.
func (*ImportDecl) itemNode() {}

// StructDecl represents a struct declaration. Field names are not checked
// for uniqueness here.
type StructDecl struct {
	Name   *Ident
	Fields []*VarDecl
	span   token.Span
}

// Span returns the declaration span.
func (d *StructDecl) Span() token.Span { return d.span }

// NewStructDecl constructs a struct declaration node.
func NewStructDecl(name *Ident, fields []*VarDecl, span token.Span) *StructDecl {
	return &StructDecl{Name: name, Fields: fields, span: span}
}

// itemNode marks StructDecl as a top-level item.
func (*StructDecl) itemNode() {}

// FunctionDecl represents a free function declaration.
type FunctionDecl struct {
	Name    *Ident
	Params  ParamList
	Returns ParamList // nil when no return list was written
	Body    *Block
	span    token.Span
}

// Span returns the declaration span.
func (d *FunctionDecl) Span() token.Span { return d.span }

// NewFunctionDecl constructs a function declaration node.
func NewFunctionDecl(name *Ident, params, returns ParamList, body *Block, span token.Span) *FunctionDecl {
	return &FunctionDecl{
		Name:    name,
		Params:  params,
		Returns: returns,
		Body:    body,
		span:    span,
	}
}

// itemNode marks FunctionDecl as a top-level item.
func (*FunctionDecl) itemNode() {}

// MethodDecl represents a method written as `Struct$method(...) { ... }`.
type MethodDecl struct {
	Receiver *Ident
	Name     *Ident
	Params   ParamList
	Returns  ParamList // nil when no return list was written
	Body     *Block
	span     token.Span
}

// Span returns the declaration span.
func (d *MethodDecl) Span() token.Span { return d.span }

// NewMethodDecl constructs a method declaration node.
func NewMethodDecl(receiver, name *Ident, params, returns ParamList, body *Block, span token.Span) *MethodDecl {
	return &MethodDecl{
		Receiver: receiver,
		Name:     name,
		Params:   params,
		Returns:  returns,
		Body:     body,
		span:     span,
	}
}

// itemNode marks MethodDecl as a top-level item.
func (*MethodDecl) itemNode() {}
