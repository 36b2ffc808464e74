package types

import "quill/compiler-go/pkg/ast"

// Cap is a reference capability: the permission tag controlling aliasing and
// mutation rights on a reference.
type Cap int

const (
	// CapNone marks an unspecified capability; it unifies with anything.
	CapNone Cap = iota
	CapIso      // exclusive read/write
	CapTrn      // exclusive write, shared read after conversion
	CapRef      // local read/write
	CapVal      // globally immutable
	CapBox      // read-only view
	CapTag      // opaque: identity and dispatch only
)

var capNames = map[Cap]string{
	CapNone: "",
	CapIso:  "iso",
	CapTrn:  "trn",
	CapRef:  "ref",
	CapVal:  "val",
	CapBox:  "box",
	CapTag:  "tag",
}

func (c Cap) String() string { return capNames[c] }

// CapFromName parses a capability spelling. The empty string is CapNone.
func CapFromName(name string) Cap {
	switch name {
	case "iso":
		return CapIso
	case "trn":
		return CapTrn
	case "ref":
		return CapRef
	case "val":
		return CapVal
	case "box":
		return CapBox
	case "tag":
		return CapTag
	}
	return CapNone
}

// capEdges encodes the direct sub-capability lattice:
//
//	iso < trn, trn < ref, trn < val, ref < box, val < box, box < tag
var capEdges = map[Cap][]Cap{
	CapIso: {CapTrn},
	CapTrn: {CapRef, CapVal},
	CapRef: {CapBox},
	CapVal: {CapBox},
	CapBox: {CapTag},
}

// IsSubCap reports whether a reference with capability a can be used where b
// is required. CapNone on either side unifies.
func IsSubCap(a, b Cap) bool {
	if a == CapNone || b == CapNone || a == b {
		return true
	}
	seen := map[Cap]bool{a: true}
	frontier := []Cap{a}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for _, next := range capEdges[cur] {
			if next == b {
				return true
			}
			if !seen[next] {
				seen[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	return false
}

// CapOfNode reads the capability spelling off a cap node; KindNone yields
// CapNone.
func CapOfNode(node *ast.Node) Cap {
	if node == nil || node.Kind != ast.KindCap {
		return CapNone
	}
	return CapFromName(node.Value)
}

// ForReceiver computes the capability that `this` carries at the given
// context: the declared receiver capability of the enclosing method, with
// per-kind defaults when unspecified. Constructors and behaviors run with
// full access to the receiver; functions default to a read-only view.
func ForReceiver(node *ast.Node) Cap {
	method := node.EnclosingMethod()
	if method == nil {
		return CapRef
	}
	if cap := CapOfNode(method.Child(0)); cap != CapNone {
		return cap
	}
	switch method.Kind {
	case ast.KindNew, ast.KindBe:
		return CapRef
	default:
		return CapBox
	}
}

// ForFun reads the declared capability off a function signature view.
func ForFun(sig *ast.Node) Cap {
	if sig == nil {
		return CapNone
	}
	if cap := CapOfNode(sig.Child(0)); cap != CapNone {
		return cap
	}
	switch sig.Kind {
	case ast.KindNew, ast.KindBe:
		return CapRef
	default:
		return CapBox
	}
}
