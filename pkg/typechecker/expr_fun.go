package typechecker

import (
	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/types"
)

// exprFun validates a constructor, behavior, or function body against the
// declared signature: the body must not unconditionally error, its actual
// error-ability must agree with the partial marker, and its type must match
// a declared result exactly (not merely be a subtype of it). Declarations
// without a body (trait members) are skipped.
func (c *Checker) exprFun(node *ast.Node) bool {
	result := node.Child(4)
	partial := node.Child(5)
	body := node.Child(6)

	if body == nil || body.Kind == ast.KindNone {
		return true
	}

	def := node.EnclosingNominal()
	isTrait := def != nil && def.Kind == ast.KindTrait

	bodyType := c.TypeOf(body)

	if types.ShapeOf(bodyType) == types.ShapeError {
		last := body.LastChild()
		c.errorf(result, "function body always results in an error")
		c.errorf(last, "function body expression is here")
		return false
	}

	// A body ending in a terminal construct (return, break, continue) carries
	// no type of its own; the terminal rule already checked its value against
	// the declared result, so there is nothing left to compare here.
	if types.ShapeOf(bodyType) == types.ShapeNone {
		return true
	}

	errMarker := ast.NewAt(node, ast.KindError)
	isPartial := partial != nil && partial.Kind == ast.KindQuestion
	ok := true

	if isPartial {
		// A partial declaration whose body cannot actually error is wrong,
		// except in traits, where there is no body to hold to it.
		if !isTrait && !types.IsSubtype(c.ctx, errMarker, bodyType) {
			c.errorf(partial, "function body is not partial but the function is")
			ok = false
		}
	} else {
		if types.IsSubtype(c.ctx, errMarker, bodyType) {
			c.errorf(partial, "function body is partial but the function is not")
			ok = false
		}
	}

	if result != nil && result.Kind != ast.KindNone {
		declared := result
		if isPartial {
			declared = c.typeUnion(node, declared, errMarker)
		}

		if !types.IsSubtype(c.ctx, bodyType, declared) {
			last := body.LastChild()
			c.errorf(result, "function body isn't a subtype of the result type")
			c.errorf(last, "function body expression is here")
			ok = false
		}

		if !isTrait && !types.IsEqtype(c.ctx, bodyType, declared) {
			last := body.LastChild()
			c.errorf(result, "function body is more specific than the result type")
			c.errorf(last, "function body expression is here")
			ok = false
		}
	}

	return ok
}
