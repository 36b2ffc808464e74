package typechecker

import (
	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/types"
)

// boundType returns node's computed type when it is a subtype of the named
// builtin bound, nil otherwise. A missing builtin is an environment
// misconfiguration and is reported immediately.
func (c *Checker) boundType(node *ast.Node, name string) *ast.Node {
	builtin, ok := c.ctx.Builtin(node, name)
	if !ok {
		c.errorf(node, "can't find builtin type '%s'", name)
		return nil
	}
	typ := c.TypeOf(node)
	if !types.IsSubtype(c.ctx, typ, builtin) {
		return nil
	}
	return typ
}

func (c *Checker) boolType(node *ast.Node) *ast.Node {
	return c.boundType(node, "Bool")
}

func (c *Checker) intType(node *ast.Node) *ast.Node {
	return c.boundType(node, "Integer")
}

func (c *Checker) arithmeticType(node *ast.Node) *ast.Node {
	return c.boundType(node, "Arithmetic")
}

// intOrBoolType accepts either bound and reports when neither holds.
func (c *Checker) intOrBoolType(node *ast.Node) *ast.Node {
	typ := c.boolType(node)
	if typ == nil {
		typ = c.intType(node)
	}
	if typ == nil {
		c.errorf(node, "expected Bool or an integer type")
		return nil
	}
	return typ
}

// typeSuper returns whichever of the two types is a supertype of the other,
// or nil when neither direction holds.
func (c *Checker) typeSuper(l, r *ast.Node) *ast.Node {
	if l == nil || r == nil {
		return nil
	}
	if types.IsSubtype(c.ctx, l, r) {
		return r
	}
	if types.IsSubtype(c.ctx, r, l) {
		return l
	}
	return nil
}

// typeUnion builds the union of two types. When subtyping already orders
// them the supertype is returned directly; a union node is only materialized
// for genuinely unrelated types.
func (c *Checker) typeUnion(at, l, r *ast.Node) *ast.Node {
	if super := c.typeSuper(l, r); super != nil {
		return super
	}
	// Members are cloned: a computed type may alias a subtree of the syntax
	// tree, and grafting it under the union would reparent it.
	union := ast.NewAt(at, ast.KindUnionType)
	union.Add(r.Clone(), l.Clone())
	return union
}

// tupleElement projects the nth element type out of a right-leaning tuple
// chain. Indices are 1-based.
func tupleElement(tuple *ast.Node, index int) (*ast.Node, bool) {
	if index < 1 {
		return nil, false
	}
	cur := tuple
	for {
		if index == 1 {
			return cur.Child(0), true
		}
		rest := cur.Child(1)
		if types.ShapeOf(rest) != types.ShapeTuple {
			if index == 2 {
				return rest, true
			}
			return nil, false
		}
		cur = rest
		index--
	}
}

// defBeforeUse enforces that a declaration textually precedes the use. The
// comparison is by source position, not control flow.
func (c *Checker) defBeforeUse(def, use *ast.Node, name string) bool {
	if use.Span.Before(def.Span) {
		c.errorf(use, "declaration of '%s' appears after use", name)
		c.errorf(def, "declaration of '%s' appears here", name)
		return false
	}
	return true
}

// isLValue reports whether node can stand on the left of an assignment: a
// reference, a member access, or a tuple of lvalues. A reference may still
// be invalid to assign to (a method, for instance); that surfaces through
// its type.
func isLValue(node *ast.Node) bool {
	switch node.Kind {
	case ast.KindReference, ast.KindDot:
		return true
	case ast.KindTuple:
		for _, child := range node.Children {
			if !isLValue(child) {
				return false
			}
		}
		return true
	}
	return false
}

// signatureOf synthesizes a function-signature view of a method declaration:
// capability, type parameters, parameter types (not names), result type, and
// the may-error marker. Built fresh per reference and owned by the caller
// until attached to a node.
func signatureOf(def *ast.Node) *ast.Node {
	capNode := def.Child(0)
	id := def.Child(1)
	typeparams := def.Child(2)
	params := def.Child(3)
	result := def.Child(4)
	partial := def.Child(5)

	sig := ast.NewAt(def, def.Kind)
	paramTypes := ast.NewAt(def, ast.KindNone)
	if params != nil && params.Kind == ast.KindParams {
		paramTypes = ast.NewAt(def, ast.KindTypes)
		for _, param := range params.Children {
			paramTypes.Add(param.Child(1).Clone())
		}
	}
	sig.Add(
		capNode.Clone(),
		id.Clone(),
		typeparams.Clone(),
		paramTypes,
		result.Clone(),
		partial.Clone(),
		ast.NewAt(def, ast.KindNone),
	)
	return sig
}

// referenceName reads the identifier a reference or bare ID node names.
func referenceName(node *ast.Node) string {
	if node == nil {
		return ""
	}
	if node.Kind == ast.KindID {
		return node.Value
	}
	return node.Name()
}
