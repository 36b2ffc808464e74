package typechecker

import (
	"fmt"

	"quill/compiler-go/pkg/ast"
)

// Verdict is the outcome of typing a single node.
type Verdict int

const (
	// VerdictOK means the node was typed (or needed no type).
	VerdictOK Verdict = iota
	// VerdictFatal means at least one diagnostic was reported and the
	// enclosing unit must not be checked further.
	VerdictFatal
)

func (v Verdict) String() string {
	if v == VerdictFatal {
		return "fatal"
	}
	return "ok"
}

// Diagnostic is a positioned compiler error. A single failure may produce
// several diagnostics: the primary cause followed by related locations.
type Diagnostic struct {
	Message string
	Node    *ast.Node
}

// String renders the diagnostic with its source position when available.
func (d Diagnostic) String() string {
	if d.Node != nil && !d.Node.Span.Zero() {
		return fmt.Sprintf("%d:%d: %s", d.Node.Span.Line, d.Node.Span.Column, d.Message)
	}
	return d.Message
}

// errorf records a diagnostic against node.
func (c *Checker) errorf(node *ast.Node, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Message: fmt.Sprintf(format, args...),
		Node:    node,
	})
}
