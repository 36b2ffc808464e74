// Package types implements the Quill nominal type system services consumed
// by the expression pass: the type-shape grammar, the builtin type registry,
// the subtype and equality relations, and the reference-capability lattice.
// Semantic types share the AST node representation; this package gives them
// an explicit shape enumeration so rules can match exhaustively instead of
// comparing against sentinels.
package types

import "quill/compiler-go/pkg/ast"

// Shape classifies a type node within the type-shape grammar.
type Shape int

const (
	// ShapeNone marks a missing or not-yet-computed type.
	ShapeNone Shape = iota
	ShapeNominal
	ShapeTuple
	ShapeUnion
	ShapeIsect
	ShapeStructural
	ShapeArrow
	// ShapeFun covers constructor, behavior, and function signature views.
	ShapeFun
	// ShapeError is the may-error pseudo-type unioned into result types.
	ShapeError
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeNominal:
		return "nominal"
	case ShapeTuple:
		return "tuple"
	case ShapeUnion:
		return "union"
	case ShapeIsect:
		return "intersection"
	case ShapeStructural:
		return "structural"
	case ShapeArrow:
		return "arrow"
	case ShapeFun:
		return "function"
	case ShapeError:
		return "error"
	}
	return "unknown"
}

// ShapeOf classifies node. Nil and KindNone both report ShapeNone.
func ShapeOf(node *ast.Node) Shape {
	if node == nil {
		return ShapeNone
	}
	switch node.Kind {
	case ast.KindNominalType:
		return ShapeNominal
	case ast.KindTupleType:
		return ShapeTuple
	case ast.KindUnionType:
		return ShapeUnion
	case ast.KindIsectType:
		return ShapeIsect
	case ast.KindStructuralType:
		return ShapeStructural
	case ast.KindArrowType:
		return ShapeArrow
	case ast.KindNew, ast.KindBe, ast.KindFun:
		return ShapeFun
	case ast.KindError:
		return ShapeError
	}
	return ShapeNone
}
