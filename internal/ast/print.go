package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders a node as a compact S-expression, e.g.
//
//	(fun transfer (multi (param address to) (param uint256 amount)) (block))
//
// Gaps in a multi-slot parameter list print as "_".
func Sprint(node Node) string {
	var b strings.Builder
	sprint(&b, node)
	return b.String()
}

func sprint(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("_")

	case *Program:
		list(b, "program", itemNodes(n.Items)...)

	case *PackageDecl:
		list(b, "package", n.Name)

	case *ImportDecl:
		if n.IsAliased() {
			b.WriteString("(import ")
			sprint(b, n.Path)
			b.WriteString(" as ")
			sprint(b, n.Alias)
			b.WriteString(")")
			return
		}
		list(b, "import", n.Module)

	case *StructDecl:
		nodes := []Node{n.Name}
		for _, f := range n.Fields {
			nodes = append(nodes, f)
		}
		list(b, "struct", nodes...)

	case *FunctionDecl:
		list(b, "fun", signature([]Node{n.Name}, n.Params, n.Returns, n.Body)...)

	case *MethodDecl:
		list(b, "method", signature([]Node{n.Receiver, n.Name}, n.Params, n.Returns, n.Body)...)

	case *EmptyParams:
		b.WriteString("(empty)")

	case *SingleParam:
		list(b, "single", n.Param)

	case *MultiParams:
		nodes := make([]Node, len(n.Entries))
		for i, p := range n.Entries {
			if p != nil {
				nodes[i] = p
			}
		}
		list(b, "multi", nodes...)

	case *Param:
		if n.Name == nil {
			list(b, "param", n.Type)
			return
		}
		list(b, "param", n.Type, n.Name)

	case *Block:
		nodes := make([]Node, len(n.Stmts))
		for i, s := range n.Stmts {
			nodes[i] = s
		}
		list(b, "block", nodes...)

	case *VarDecl:
		list(b, "var", n.Name, n.Type)

	case *LetStmt:
		list(b, "let", n.Name, n.Type, n.Value)

	case *ExprStmt:
		list(b, "expr", n.Expr)

	case *IfStmt:
		if n.Else == nil {
			list(b, "if", n.Cond, n.Then)
			return
		}
		list(b, "if", n.Cond, n.Then, n.Else)

	case *WhileStmt:
		list(b, "while", n.Cond, n.Body)

	case *ForStmt:
		b.WriteString("(for)")

	case *BreakStmt:
		b.WriteString("(break)")

	case *ContinueStmt:
		b.WriteString("(continue)")

	case *ReturnStmt:
		if n.Values == nil {
			b.WriteString("(return)")
			return
		}
		list(b, "return", n.Values)

	case *Ident:
		b.WriteString(n.Name)

	case *TypeRef:
		b.WriteString(n.Type.String())

	case *StringLit:
		b.WriteString(strconv.Quote(n.Value))

	case *IntegerLit:
		b.WriteString(n.Value.String())

	case *ListLit:
		nodes := make([]Node, 0, len(n.Elements)+1)
		for _, el := range n.Elements {
			nodes = append(nodes, el)
		}
		if n.Elem != nil {
			list(b, "list-of", append([]Node{n.Elem}, nodes...)...)
			return
		}
		list(b, "list", nodes...)

	case *CallExpr:
		nodes := []Node{n.Callee}
		for _, a := range n.Args {
			nodes = append(nodes, a)
		}
		list(b, "call", nodes...)

	case *Arg:
		sprint(b, n.Value)

	case *FieldExpr:
		list(b, "field", n.Target, n.Field)

	case *CompareExpr:
		b.WriteString("(cmp ")
		sprint(b, n.First)
		for _, link := range n.Rest {
			b.WriteString(" " + string(link.Op) + " ")
			sprint(b, link.Operand)
		}
		b.WriteString(")")

	default:
		fmt.Fprintf(b, "<%T>", node)
	}
}

func list(b *strings.Builder, head string, nodes ...Node) {
	b.WriteString("(" + head)
	for _, n := range nodes {
		b.WriteString(" ")
		sprint(b, n)
	}
	b.WriteString(")")
}

func signature(names []Node, params, returns ParamList, body *Block) []Node {
	nodes := append(names, params)
	if returns != nil {
		nodes = append(nodes, returns)
	}
	return append(nodes, body)
}

func itemNodes(items []Item) []Node {
	nodes := make([]Node, len(items))
	for i, it := range items {
		nodes[i] = it
	}
	return nodes
}
