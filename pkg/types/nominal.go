package types

import "quill/compiler-go/pkg/ast"

// Nominal type nodes carry five children in fixed sibling order:
// package, name, type arguments, capability, ephemerality marker.
const (
	nominalPackage = iota
	nominalName
	nominalTypeArgs
	nominalCap
	nominalEphemeral
)

// Nominal synthesizes a nominal type node naming pkg.name, spanned at the
// expression that produced it. Empty pkg leaves the package slot unset; type
// arguments are left unresolved for later validation.
func Nominal(at *ast.Node, pkg, name string) *ast.Node {
	node := ast.NewAt(at, ast.KindNominalType)
	pkgNode := ast.NewAt(at, ast.KindNone)
	if pkg != "" {
		pkgNode = ast.NewID(pkg)
	}
	node.Add(
		pkgNode,
		ast.NewID(name),
		ast.NewAt(at, ast.KindNone),
		ast.NewAt(at, ast.KindNone),
		ast.NewAt(at, ast.KindNone),
	)
	return node
}

// NominalWithCap synthesizes a nominal type with an explicit capability.
func NominalWithCap(at *ast.Node, pkg, name string, cap Cap) *ast.Node {
	node := Nominal(at, pkg, name)
	if cap != CapNone {
		capNode := ast.NewAt(at, ast.KindCap)
		capNode.Value = cap.String()
		node.Children[nominalCap] = capNode
		capNode.Parent = node
	}
	return node
}

// NominalPackage returns the package qualifier of a nominal type, or "".
func NominalPackage(node *ast.Node) string {
	if ShapeOf(node) != ShapeNominal {
		return ""
	}
	pkg := node.Child(nominalPackage)
	if pkg == nil || pkg.Kind != ast.KindID {
		return ""
	}
	return pkg.Value
}

// NominalName returns the declared name of a nominal type, or "".
func NominalName(node *ast.Node) string {
	if ShapeOf(node) != ShapeNominal {
		return ""
	}
	name := node.Child(nominalName)
	if name == nil || name.Kind != ast.KindID {
		return ""
	}
	return name.Value
}

// QualifiedName returns "pkg.Name" for package-qualified nominals, otherwise
// the bare name.
func QualifiedName(node *ast.Node) string {
	name := NominalName(node)
	if pkg := NominalPackage(node); pkg != "" {
		return pkg + "." + name
	}
	return name
}

// NominalCap returns the capability tag of a nominal type.
func NominalCap(node *ast.Node) Cap {
	if ShapeOf(node) != ShapeNominal {
		return CapNone
	}
	return CapOfNode(node.Child(nominalCap))
}

// NominalTypeArgs returns the type-argument list node, or nil when unset.
func NominalTypeArgs(node *ast.Node) *ast.Node {
	if ShapeOf(node) != ShapeNominal {
		return nil
	}
	args := node.Child(nominalTypeArgs)
	if args == nil || args.Kind != ast.KindTypeArgs {
		return nil
	}
	return args
}

// SetNominalTypeArgs installs an argument list on a nominal type node.
func SetNominalTypeArgs(node, args *ast.Node) {
	if ShapeOf(node) != ShapeNominal || args == nil {
		return
	}
	node.Children[nominalTypeArgs] = args
	args.Parent = node
}

// IsEphemeral reports whether the nominal carries the consumed/transfer
// marker.
func IsEphemeral(node *ast.Node) bool {
	if ShapeOf(node) != ShapeNominal {
		return false
	}
	eph := node.Child(nominalEphemeral)
	return eph != nil && eph.Kind == ast.KindHat
}
