package typechecker

import (
	"fmt"

	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/types"
)

// exprDot types member access: [postfix, id-or-int].
func (c *Checker) exprDot(node *ast.Node) bool {
	left := node.Child(0)
	right := node.Child(1)
	leftType := c.TypeOf(left)

	switch right.Kind {
	case ast.KindID:
		if leftType == nil {
			// An untyped left side must name a package; the right side then
			// resolves a type inside it.
			pkgName := referenceName(left)
			pkg, ok := ast.Resolve(left, pkgName)
			if !ok || pkg.Kind != ast.KindPackage {
				c.errorf(left, "can't find package '%s'", pkgName)
				return false
			}
			typeName := right.Value
			if _, ok := pkg.Scope.LookupLocal(typeName); !ok {
				c.errorf(right, "can't find type '%s' in package '%s'", typeName, pkgName)
				return false
			}
			c.setType(node, types.Nominal(node, pkgName, typeName))
			return true
		}

		// Field or method access on a typed object.
		c.errorf(node, "not implemented (dot)")
		return false

	case ast.KindInt:
		// Positional element of a tuple.
		if types.ShapeOf(leftType) != types.ShapeTuple {
			c.errorf(right, "member by position can only be used on a tuple")
			return false
		}
		elem, ok := tupleElement(leftType, right.IntValue())
		if !ok {
			c.errorf(right, "tuple index is out of bounds")
			return false
		}
		c.setType(node, elem)
		return true
	}

	panic(fmt.Sprintf("member access with unexpected %s right side", right.Kind))
}

// exprCall types a call: the callee's type must be a function signature, and
// the receiver capability at the call site must satisfy the method's declared
// capability. The call's type is the signature's result type.
func (c *Checker) exprCall(node *ast.Node) bool {
	left := node.Child(0)
	leftType := c.TypeOf(left)

	switch types.ShapeOf(leftType) {
	case types.ShapeFun:
		rcap := types.ForReceiver(node)
		fcap := types.ForFun(leftType)
		if !types.IsSubCap(rcap, fcap) {
			c.errorf(node, "receiver capability is not a subtype of method capability")
			return false
		}
		// TODO: use the arguments to bind unresolved type parameters.
		c.setType(node, leftType.Child(4))
		return true

	case types.ShapeUnion, types.ShapeIsect, types.ShapeNominal,
		types.ShapeStructural, types.ShapeArrow:
		// Calling a value desugars to constructor/apply sugar.
		c.errorf(node, "not implemented (apply sugar)")
		return false

	case types.ShapeTuple:
		c.errorf(node, "can't call a tuple type")
		return false
	}

	panic(fmt.Sprintf("call on callee with unexpected %s type", types.ShapeOf(leftType)))
}

// exprTuple types tuple construction. A single-element group degenerates to
// the element's own type; otherwise the elements form a right-leaning chain
// of pairwise tuple types in construction order.
func (c *Checker) exprTuple(node *ast.Node) bool {
	if len(node.Children) == 1 {
		c.setType(node, c.TypeOf(node.Child(0)))
		return true
	}

	// Element types are cloned into the chain: they may alias syntax-tree
	// subtrees that must keep their own parents.
	root := ast.NewAt(node, ast.KindTupleType)
	tuple := root
	for i, child := range node.Children {
		elem := c.TypeOf(child).Clone()
		switch {
		case i == 0 || i == len(node.Children)-1:
			tuple.Add(elem)
		default:
			next := ast.NewAt(node, ast.KindTupleType)
			next.Add(elem)
			tuple.Add(next)
			tuple = next
		}
	}

	c.setType(node, root)
	return true
}
