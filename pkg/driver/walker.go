// Package driver owns everything around the typing pass: the post-order
// traversal that feeds it, loading packages from serialized syntax trees,
// manifest and lockfile handling, and lexical scope construction. The
// typechecker itself only ever sees one node at a time with its children
// already typed.
package driver

import (
	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/typechecker"
)

// Walk drives checker over the tree rooted at node in depth-first
// post-order: children fully typed before their parent. The first fatal
// verdict aborts the walk; the checker guarantees at least one diagnostic
// has been reported by then.
func Walk(node *ast.Node, checker *typechecker.Checker) typechecker.Verdict {
	if node == nil {
		return typechecker.VerdictOK
	}
	for _, child := range node.Children {
		if Walk(child, checker) == typechecker.VerdictFatal {
			return typechecker.VerdictFatal
		}
	}
	return checker.CheckExpr(node)
}
