package types

import "quill/compiler-go/pkg/ast"

// IsSubtype reports whether a can be used wherever b is expected. The
// relation is reflexive and transitive over the full type-shape grammar.
// Either side being absent (nil / KindNone) is never a subtype of anything.
func IsSubtype(ctx *Context, a, b *ast.Node) bool {
	sa, sb := ShapeOf(a), ShapeOf(b)
	if sa == ShapeNone || sb == ShapeNone {
		return false
	}

	// A union on the left must be a subtype member-wise regardless of the
	// right side's shape.
	if sa == ShapeUnion {
		return IsSubtype(ctx, a.Child(0), b) && IsSubtype(ctx, a.Child(1), b)
	}
	// An intersection on the left needs only one member to satisfy b.
	if sa == ShapeIsect {
		return IsSubtype(ctx, a.Child(0), b) || IsSubtype(ctx, a.Child(1), b)
	}

	switch sb {
	case ShapeUnion:
		return IsSubtype(ctx, a, b.Child(0)) || IsSubtype(ctx, a, b.Child(1))
	case ShapeIsect:
		return IsSubtype(ctx, a, b.Child(0)) && IsSubtype(ctx, a, b.Child(1))
	case ShapeError:
		return sa == ShapeError
	}

	switch sa {
	case ShapeError:
		// The error marker only unifies with itself or a union admitting it,
		// handled above.
		return false
	case ShapeNominal:
		if sb != ShapeNominal {
			return false
		}
		return nominalSubtype(ctx, a, b)
	case ShapeTuple:
		if sb != ShapeTuple {
			return false
		}
		return IsSubtype(ctx, a.Child(0), b.Child(0)) &&
			IsSubtype(ctx, a.Child(1), b.Child(1))
	case ShapeFun:
		if sb != ShapeFun {
			return false
		}
		return funSubtype(ctx, a, b)
	case ShapeStructural, ShapeArrow:
		// Structural conformance and viewpoint adaptation are outside this
		// relation's implemented rules; only identical trees relate.
		return SameType(a, b)
	}
	return false
}

// IsEqtype reports mutual subtyping.
func IsEqtype(ctx *Context, a, b *ast.Node) bool {
	return IsSubtype(ctx, a, b) && IsSubtype(ctx, b, a)
}

func nominalSubtype(ctx *Context, a, b *ast.Node) bool {
	if !ctx.extendsNominal(QualifiedName(a), QualifiedName(b)) {
		return false
	}
	if !IsSubCap(NominalCap(a), NominalCap(b)) {
		return false
	}
	// An ephemeral reference can stand in for a plain one, not vice versa.
	if IsEphemeral(b) && !IsEphemeral(a) {
		return false
	}
	argsA, argsB := NominalTypeArgs(a), NominalTypeArgs(b)
	if argsA == nil && argsB == nil {
		return true
	}
	return SameType(argsA, argsB)
}

func funSubtype(ctx *Context, a, b *ast.Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	paramsA, paramsB := typeList(a.Child(3)), typeList(b.Child(3))
	if len(paramsA) != len(paramsB) {
		return false
	}
	for i, pa := range paramsA {
		if !IsEqtype(ctx, pa, paramsB[i]) {
			return false
		}
	}
	if !IsSubtype(ctx, a.Child(4), b.Child(4)) {
		return false
	}
	// A partial signature cannot satisfy a total one.
	partialA := a.Child(5) != nil && a.Child(5).Kind == ast.KindQuestion
	partialB := b.Child(5) != nil && b.Child(5).Kind == ast.KindQuestion
	return !partialA || partialB
}

func typeList(node *ast.Node) []*ast.Node {
	if node == nil || node.Kind != ast.KindTypes {
		return nil
	}
	return node.Children
}

// SameType reports structural identity of two type trees: same kinds, same
// spellings, same children. Nil and KindNone compare equal to each other.
func SameType(a, b *ast.Node) bool {
	if a == nil || a.Kind == ast.KindNone {
		return b == nil || b.Kind == ast.KindNone
	}
	if b == nil || b.Kind == ast.KindNone {
		return false
	}
	if a.Kind != b.Kind || a.Value != b.Value {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i, ca := range a.Children {
		if !SameType(ca, b.Children[i]) {
			return false
		}
	}
	return true
}
