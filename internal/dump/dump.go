// Package dump renders an AST as a YAML document. Every node becomes a
// mapping with a "node" key naming its type, a "span" pair of byte offsets
// and one key per child field. Absent optional children are omitted; gaps in
// a multi-slot parameter list are written as null.
package dump

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/token"
)

// YAML encodes node as a YAML document.
func YAML(node ast.Node) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Node(node)); err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}

	return buf.Bytes(), nil
}

// Node builds the YAML representation of node.
func Node(node ast.Node) *yaml.Node {
	switch n := node.(type) {
	case nil:
		return null()

	case *ast.Program:
		items := make([]ast.Node, len(n.Items))
		for i, it := range n.Items {
			items[i] = it
		}
		return mapping("Program", n.Span()).seq("items", items...).node

	case *ast.PackageDecl:
		return mapping("PackageDecl", n.Span()).child("name", n.Name).node

	case *ast.ImportDecl:
		m := mapping("ImportDecl", n.Span())
		if n.IsAliased() {
			return m.child("path", n.Path).child("alias", n.Alias).node
		}
		return m.child("module", n.Module).node

	case *ast.StructDecl:
		fields := make([]ast.Node, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = f
		}
		return mapping("StructDecl", n.Span()).child("name", n.Name).seq("fields", fields...).node

	case *ast.FunctionDecl:
		m := mapping("FunctionDecl", n.Span()).child("name", n.Name)
		return m.signature(n.Params, n.Returns, n.Body).node

	case *ast.MethodDecl:
		m := mapping("MethodDecl", n.Span()).child("receiver", n.Receiver).child("name", n.Name)
		return m.signature(n.Params, n.Returns, n.Body).node

	case *ast.EmptyParams:
		return mapping("EmptyParams", n.Span()).node

	case *ast.SingleParam:
		return mapping("SingleParam", n.Span()).child("param", n.Param).node

	case *ast.MultiParams:
		slots := make([]ast.Node, len(n.Entries))
		for i, p := range n.Entries {
			if p != nil {
				slots[i] = p
			}
		}
		return mapping("MultiParams", n.Span()).seq("slots", slots...).node

	case *ast.Param:
		m := mapping("Param", n.Span()).child("type", n.Type)
		if n.Name != nil {
			m.child("name", n.Name)
		}
		return m.node

	case *ast.Block:
		stmts := make([]ast.Node, len(n.Stmts))
		for i, s := range n.Stmts {
			stmts[i] = s
		}
		return mapping("Block", n.Span()).seq("stmts", stmts...).node

	case *ast.VarDecl:
		return mapping("VarDecl", n.Span()).child("name", n.Name).child("type", n.Type).node

	case *ast.LetStmt:
		return mapping("LetStmt", n.Span()).child("name", n.Name).child("type", n.Type).child("value", n.Value).node

	case *ast.ExprStmt:
		return mapping("ExprStmt", n.Span()).child("expr", n.Expr).node

	case *ast.IfStmt:
		m := mapping("IfStmt", n.Span()).child("cond", n.Cond).child("then", n.Then)
		if n.Else != nil {
			m.child("else", n.Else)
		}
		return m.node

	case *ast.WhileStmt:
		return mapping("WhileStmt", n.Span()).child("cond", n.Cond).child("body", n.Body).node

	case *ast.ForStmt:
		return mapping("ForStmt", n.Span()).node

	case *ast.BreakStmt:
		return mapping("BreakStmt", n.Span()).node

	case *ast.ContinueStmt:
		return mapping("ContinueStmt", n.Span()).node

	case *ast.ReturnStmt:
		m := mapping("ReturnStmt", n.Span())
		if n.Values != nil {
			m.child("values", n.Values)
		}
		return m.node

	case *ast.Ident:
		return mapping("Ident", n.Span()).scalar("name", n.Name, "!!str").node

	case *ast.TypeRef:
		return mapping("TypeRef", n.Span()).scalar("type", n.Type.String(), "!!str").node

	case *ast.StringLit:
		return mapping("StringLit", n.Span()).scalar("value", n.Value, "!!str").node

	case *ast.IntegerLit:
		// Values beyond 64 bits stay exact as decimal integers.
		return mapping("IntegerLit", n.Span()).scalar("value", n.Value.String(), "!!int").node

	case *ast.ListLit:
		m := mapping("ListLit", n.Span())
		if n.Elem != nil {
			m.child("elem", n.Elem)
		}
		elems := make([]ast.Node, len(n.Elements))
		for i, e := range n.Elements {
			elems[i] = e
		}
		return m.seq("elements", elems...).node

	case *ast.CallExpr:
		args := make([]ast.Node, len(n.Args))
		for i, a := range n.Args {
			args[i] = a
		}
		return mapping("CallExpr", n.Span()).child("callee", n.Callee).seq("args", args...).node

	case *ast.Arg:
		return mapping("Arg", n.Span()).child("value", n.Value).node

	case *ast.FieldExpr:
		return mapping("FieldExpr", n.Span()).child("target", n.Target).child("field", n.Field).node

	case *ast.CompareExpr:
		m := mapping("CompareExpr", n.Span()).child("first", n.First)
		rest := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, link := range n.Rest {
			entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			entry.Content = append(entry.Content,
				str("op"), str(string(link.Op)),
				str("operand"), Node(link.Operand),
			)
			rest.Content = append(rest.Content, entry)
		}
		m.node.Content = append(m.node.Content, str("rest"), rest)
		return m.node

	default:
		return str(fmt.Sprintf("<%T>", node))
	}
}

type builder struct {
	node *yaml.Node
}

func mapping(kind string, span token.Span) *builder {
	pair := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Tag:   "!!seq",
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(span.Start)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(span.End)},
		},
	}

	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Content = append(m.Content, str("node"), str(kind), str("span"), pair)

	return &builder{node: m}
}

func (b *builder) child(key string, n ast.Node) *builder {
	b.node.Content = append(b.node.Content, str(key), Node(n))
	return b
}

func (b *builder) scalar(key, value, tag string) *builder {
	b.node.Content = append(b.node.Content, str(key), &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value})
	return b
}

func (b *builder) seq(key string, nodes ...ast.Node) *builder {
	s := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(nodes) == 0 {
		s.Style = yaml.FlowStyle
	}
	for _, n := range nodes {
		s.Content = append(s.Content, Node(n))
	}
	b.node.Content = append(b.node.Content, str(key), s)
	return b
}

func (b *builder) signature(params, returns ast.ParamList, body *ast.Block) *builder {
	b.child("params", params)
	if returns != nil {
		b.child("returns", returns)
	}
	return b.child("body", body)
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func null() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
