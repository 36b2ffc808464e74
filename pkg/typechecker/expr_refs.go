package typechecker

import (
	"fmt"

	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/types"
)

// exprField types a field or parameter declaration: [id, type, initializer].
// At least one of the declared type and the initializer must be present; a
// present initializer must be a subtype of a present declared type.
func (c *Checker) exprField(node *ast.Node) bool {
	declared := node.Child(1)
	init := node.Child(2)

	noType := declared == nil || declared.Kind == ast.KindNone
	noInit := init == nil || init.Kind == ast.KindNone

	if noType && noInit {
		c.errorf(node, "field/param needs a type or an initialiser")
		return false
	}

	if noType {
		c.setType(node, c.TypeOf(init))
		return true
	}

	if !noInit {
		initType := c.TypeOf(init)
		if !types.IsSubtype(c.ctx, initType, declared) {
			c.errorf(init, "field/param initialiser is not a subtype of the field/param type")
			return false
		}
	}

	c.setType(node, declared)
	return true
}

// exprLiteral attaches the named builtin type to a literal node.
func (c *Checker) exprLiteral(node *ast.Node, name string) bool {
	typ, ok := c.ctx.Builtin(node, name)
	if !ok {
		c.errorf(node, "can't find builtin type '%s'", name)
		return false
	}
	c.setType(node, typ)
	return true
}

// exprThis synthesizes the receiver's nominal type: the enclosing nominal
// declaration's name, the receiver capability of the current context, and
// the declaration's own type parameters restated as type arguments.
func (c *Checker) exprThis(node *ast.Node) bool {
	def := node.EnclosingNominal()
	if def == nil || def.Kind == ast.KindTypeDecl {
		panic(fmt.Sprintf("'this' outside a nominal declaration at %d:%d",
			node.Span.Line, node.Span.Column))
	}

	name := def.Child(0).Value
	nominal := types.NominalWithCap(node, "", name, types.ForReceiver(node))

	typeparams := def.Child(1)
	if typeparams != nil && typeparams.Kind == ast.KindTypeParams {
		args := ast.NewAt(node, ast.KindTypeArgs)
		for _, typeparam := range typeparams.Children {
			args.Add(types.Nominal(node, "", typeparam.Child(0).Value))
		}
		types.SetNominalTypeArgs(nominal, args)
	}

	c.setType(node, nominal)
	return true
}

// exprReference resolves an identifier through the lexical scope; the kind
// of the declaration it lands on decides the typing.
func (c *Checker) exprReference(node *ast.Node) bool {
	name := referenceName(node)
	def, ok := ast.Resolve(node, name)
	if !ok {
		c.errorf(node, "can't find declaration of '%s'", name)
		return false
	}

	switch def.Kind {
	case ast.KindPackage:
		// Only legal as the prefix of a package-qualified type.
		if node.Parent == nil || node.Parent.Kind != ast.KindDot {
			c.errorf(node, "a package can only appear as a prefix to a type")
			return false
		}
		return true

	case ast.KindTypeDecl, ast.KindClass, ast.KindActor:
		// A type name. It may still need type arguments; those are
		// validated once the reference is used as a type.
		c.setType(node, types.Nominal(node, "", def.Child(0).Value))
		return true

	case ast.KindFieldVar, ast.KindFieldLet, ast.KindParam:
		if !c.defBeforeUse(def, node, name) {
			return false
		}
		c.setType(node, c.TypeOf(def))
		return true

	case ast.KindNew, ast.KindBe, ast.KindFun:
		// A method named on the implicit receiver becomes a first-class
		// callable value.
		c.setType(node, signatureOf(def))
		return true

	case ast.KindIDSeq:
		if !c.defBeforeUse(def, node, name) {
			return false
		}
		c.errorf(node, "not implemented (reference local)")
		return false
	}

	panic(fmt.Sprintf("reference '%s' resolved to unexpected %s declaration", name, def.Kind))
}
