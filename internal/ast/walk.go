package ast

// Walk traverses the AST starting from node, calling fn for each node in
// source order. If fn returns false, Walk stops traversing that branch.
// Gaps in a MultiParams list are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, item := range n.Items {
			Walk(item, fn)
		}

	case *PackageDecl:
		Walk(n.Name, fn)

	case *ImportDecl:
		if n.Module != nil {
			Walk(n.Module, fn)
		}
		if n.Path != nil {
			Walk(n.Path, fn)
		}
		if n.Alias != nil {
			Walk(n.Alias, fn)
		}

	case *StructDecl:
		Walk(n.Name, fn)
		for _, field := range n.Fields {
			Walk(field, fn)
		}

	case *FunctionDecl:
		Walk(n.Name, fn)
		walkSignature(n.Params, n.Returns, n.Body, fn)

	case *MethodDecl:
		Walk(n.Receiver, fn)
		Walk(n.Name, fn)
		walkSignature(n.Params, n.Returns, n.Body, fn)

	case *SingleParam:
		Walk(n.Param, fn)

	case *MultiParams:
		for _, p := range n.Entries {
			if p != nil {
				Walk(p, fn)
			}
		}

	case *Param:
		Walk(n.Type, fn)
		if n.Name != nil {
			Walk(n.Name, fn)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *VarDecl:
		Walk(n.Name, fn)
		Walk(n.Type, fn)

	case *LetStmt:
		Walk(n.Name, fn)
		Walk(n.Type, fn)
		Walk(n.Value, fn)

	case *ExprStmt:
		Walk(n.Expr, fn)

	case *IfStmt:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *WhileStmt:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *ReturnStmt:
		if n.Values != nil {
			Walk(n.Values, fn)
		}

	case *ListLit:
		if n.Elem != nil {
			Walk(n.Elem, fn)
		}
		for _, el := range n.Elements {
			Walk(el, fn)
		}

	case *CallExpr:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *Arg:
		Walk(n.Value, fn)

	case *FieldExpr:
		Walk(n.Target, fn)
		Walk(n.Field, fn)

	case *CompareExpr:
		Walk(n.First, fn)
		for _, link := range n.Rest {
			Walk(link.Operand, fn)
		}
	}
}

func walkSignature(params, returns ParamList, body *Block, fn func(Node) bool) {
	Walk(params, fn)
	if returns != nil {
		Walk(returns, fn)
	}
	Walk(body, fn)
}
