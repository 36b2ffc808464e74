package typechecker

import (
	"fmt"

	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/types"
)

// exprSeq types a sequence as its last child's type. Error-possibility
// propagates forward: if any child's type admits the error marker, the whole
// sequence's type is unioned with it, regardless of the child's position.
// A sequence ending in a terminal construct stays untyped, as the terminal
// itself does.
func (c *Checker) exprSeq(node *ast.Node) bool {
	if len(node.Children) == 0 {
		panic(fmt.Sprintf("empty sequence at %d:%d", node.Span.Line, node.Span.Column))
	}

	errMarker := ast.NewAt(node, ast.KindError)
	canError := false
	var typ *ast.Node

	for _, child := range node.Children {
		typ = c.TypeOf(child)
		canError = canError || types.IsSubtype(c.ctx, errMarker, typ)
	}

	if typ != nil && canError {
		typ = c.typeUnion(node, typ, errMarker)
	}
	c.setType(node, typ)
	return true
}

// exprIf types a conditional: Bool condition, result the union of the two
// branches. A missing else-branch contributes None.
func (c *Checker) exprIf(node *ast.Node) bool {
	cond := node.Child(0)
	left := node.Child(1)
	right := node.Child(2)

	if c.boolType(cond) == nil {
		c.errorf(cond, "condition must be a Bool")
		return false
	}

	leftType := c.TypeOf(left)
	var rightType *ast.Node
	if right == nil || right.Kind == ast.KindNone {
		none, ok := c.ctx.Builtin(node, "None")
		if !ok {
			c.errorf(node, "can't find builtin type 'None'")
			return false
		}
		rightType = none
	} else {
		rightType = c.TypeOf(right)
	}

	c.setType(node, c.typeUnion(node, leftType, rightType))
	return true
}

// exprWhile types a pre-condition loop: Bool condition, None result. Loops
// are not value-producing.
func (c *Checker) exprWhile(node *ast.Node) bool {
	cond := node.Child(0)
	if c.boolType(cond) == nil {
		c.errorf(cond, "condition must be a Bool")
		return false
	}
	return c.exprLiteral(node, "None")
}

// exprRepeat types a post-condition loop: the trailing condition must be
// Bool, the loop's own type is None.
func (c *Checker) exprRepeat(node *ast.Node) bool {
	cond := node.Child(1)
	if c.boolType(cond) == nil {
		c.errorf(cond, "condition must be a Bool")
		return false
	}
	return c.exprLiteral(node, "None")
}

// exprContinue types continue and break: both must sit inside a loop and be
// the final expression of their sequence.
func (c *Checker) exprContinue(node *ast.Node) bool {
	if node.EnclosingLoop() == nil {
		c.errorf(node, "must be in a loop")
		return false
	}

	if sibling := node.NextSibling(); sibling != nil {
		c.errorf(node, "must be the last expression in a sequence")
		c.errorf(sibling, "is followed with this expression")
		return false
	}

	return c.exprLiteral(node, "None")
}

// exprReturn checks a return against the enclosing method: forbidden in
// constructors, None-typed in behaviors, and a subtype of the declared
// result in functions. It must be the final expression of its sequence.
// Like the other terminal constructs it produces no value of its own.
func (c *Checker) exprReturn(node *ast.Node) bool {
	body := node.Child(0)
	typ := c.TypeOf(body)
	method := node.EnclosingMethod()
	ok := true

	if method == nil {
		c.errorf(node, "return must occur in a function or a behaviour body")
		return false
	}

	if sibling := node.NextSibling(); sibling != nil {
		c.errorf(node, "must be the last expression in a sequence")
		c.errorf(sibling, "is followed with this expression")
		ok = false
	}

	switch method.Kind {
	case ast.KindNew:
		c.errorf(node, "cannot return in a constructor")
		return false

	case ast.KindBe:
		none, found := c.ctx.Builtin(node, "None")
		if !found {
			c.errorf(node, "can't find builtin type 'None'")
			return false
		}
		if !types.IsSubtype(c.ctx, typ, none) {
			c.errorf(body, "body of a return in a behaviour must have type None")
			ok = false
		}
		return ok

	case ast.KindFun:
		result := method.Child(4)
		if result == nil || result.Kind == ast.KindNone {
			none, found := c.ctx.Builtin(node, "None")
			if !found {
				c.errorf(node, "can't find builtin type 'None'")
				return false
			}
			result = none
		}
		if !types.IsSubtype(c.ctx, typ, result) {
			c.errorf(body, "body of return doesn't match the function return type")
			ok = false
		}
		return ok
	}

	panic(fmt.Sprintf("return inside unexpected %s node", method.Kind))
}

// exprError types the error expression as the error marker itself; it must
// be the final expression of its sequence.
func (c *Checker) exprError(node *ast.Node) bool {
	if sibling := node.NextSibling(); sibling != nil {
		c.errorf(node, "error must be the last expression in a sequence")
		c.errorf(sibling, "error is followed with this expression")
		return false
	}

	c.setType(node, ast.NewAt(node, ast.KindError))
	return true
}
