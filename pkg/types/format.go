package types

import (
	"strings"

	"quill/compiler-go/pkg/ast"
)

// Format renders a type node for diagnostics.
func Format(node *ast.Node) string {
	switch ShapeOf(node) {
	case ShapeNone:
		return "<none>"
	case ShapeNominal:
		var b strings.Builder
		b.WriteString(QualifiedName(node))
		if args := NominalTypeArgs(node); args != nil && len(args.Children) > 0 {
			parts := make([]string, 0, len(args.Children))
			for _, arg := range args.Children {
				parts = append(parts, Format(arg))
			}
			b.WriteString("[" + strings.Join(parts, ", ") + "]")
		}
		if cap := NominalCap(node); cap != CapNone {
			b.WriteString(" " + cap.String())
		}
		if IsEphemeral(node) {
			b.WriteString("^")
		}
		return b.String()
	case ShapeTuple:
		elems := []string{}
		cur := node
		for ShapeOf(cur) == ShapeTuple {
			elems = append(elems, Format(cur.Child(0)))
			cur = cur.Child(1)
		}
		elems = append(elems, Format(cur))
		return "(" + strings.Join(elems, ", ") + ")"
	case ShapeUnion:
		return Format(node.Child(0)) + " | " + Format(node.Child(1))
	case ShapeIsect:
		return Format(node.Child(0)) + " & " + Format(node.Child(1))
	case ShapeStructural:
		return "{..}"
	case ShapeArrow:
		return Format(node.Child(0)) + "->" + Format(node.Child(1))
	case ShapeFun:
		return Format(node.Child(4)) + " " + node.Kind.String()
	case ShapeError:
		return "error"
	}
	return "<unknown>"
}
