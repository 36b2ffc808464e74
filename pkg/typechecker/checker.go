package typechecker

import (
	"fmt"
	"io"

	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/types"
)

// Checker types one compilation unit. It owns the side table of computed
// types: the tree itself is never mutated by the pass, so re-running it over
// an already-typed tree recomputes nothing. A Checker must not be shared
// across units being checked concurrently.
type Checker struct {
	ctx   *types.Context
	typed map[*ast.Node]*ast.Node
	diags []Diagnostic

	// Trace, when set, receives one line per typed node.
	Trace io.Writer
}

// New constructs a checker over the given nominal-hierarchy context.
func New(ctx *types.Context) *Checker {
	if ctx == nil {
		ctx = types.NewContext()
	}
	return &Checker{
		ctx:   ctx,
		typed: make(map[*ast.Node]*ast.Node),
	}
}

// Diagnostics returns everything reported so far, in emission order.
func (c *Checker) Diagnostics() []Diagnostic {
	return c.diags
}

// TypeOf returns the computed type of node, or nil when the node has none.
// Callers must not consult a node's type after a fatal verdict.
func (c *Checker) TypeOf(node *ast.Node) *ast.Node {
	if node == nil {
		return nil
	}
	return c.typed[node]
}

// setType records the computed type for node. The side table is write-once
// per pass; the dispatcher skips already-typed nodes, so a second write can
// only restate the first.
func (c *Checker) setType(node, typ *ast.Node) {
	if node == nil || typ == nil {
		return
	}
	if _, done := c.typed[node]; done {
		return
	}
	c.typed[node] = typ
}

// CheckExpr types a single node. The caller guarantees post-order: every
// child of node has already been through CheckExpr. Unhandled kinds are
// identity nodes needing no type. A VerdictFatal means at least one
// diagnostic was reported and the walk over this unit must stop.
func (c *Checker) CheckExpr(node *ast.Node) Verdict {
	if node == nil {
		return VerdictOK
	}
	if _, done := c.typed[node]; done {
		return VerdictOK
	}

	ok := true
	switch node.Kind {
	case ast.KindFieldVar, ast.KindFieldLet, ast.KindParam:
		ok = c.exprField(node)

	case ast.KindNew, ast.KindBe, ast.KindFun:
		// TODO: for constructors, check that every field is initialised.
		ok = c.exprFun(node)

	case ast.KindSeq:
		ok = c.exprSeq(node)

	case ast.KindLocalVar, ast.KindLocalLet:
		c.errorf(node, "not implemented (local)")
		ok = false

	case ast.KindContinue, ast.KindBreak:
		ok = c.exprContinue(node)

	case ast.KindReturn:
		ok = c.exprReturn(node)

	case ast.KindMultiply, ast.KindDivide, ast.KindMod, ast.KindPlus:
		ok = c.exprArithmetic(node)

	case ast.KindMinus:
		ok = c.exprMinus(node)

	case ast.KindLShift, ast.KindRShift:
		ok = c.exprShift(node)

	case ast.KindLT, ast.KindLE, ast.KindGE, ast.KindGT:
		ok = c.exprOrder(node)

	case ast.KindEq, ast.KindNE:
		ok = c.exprCompare(node)

	case ast.KindIs, ast.KindIsnt:
		ok = c.exprIdentity(node)

	case ast.KindAnd, ast.KindXor, ast.KindOr:
		ok = c.exprLogical(node)

	case ast.KindNot:
		ok = c.exprNot(node)

	case ast.KindAssign:
		ok = c.exprAssign(node)

	case ast.KindConsume:
		c.errorf(node, "not implemented (consume)")
		ok = false

	case ast.KindDot:
		ok = c.exprDot(node)

	case ast.KindQualify:
		c.errorf(node, "not implemented (qualify)")
		ok = false

	case ast.KindCall:
		ok = c.exprCall(node)

	case ast.KindIf:
		ok = c.exprIf(node)

	case ast.KindWhile:
		ok = c.exprWhile(node)

	case ast.KindRepeat:
		ok = c.exprRepeat(node)

	case ast.KindFor:
		c.errorf(node, "not implemented (for)")
		ok = false

	case ast.KindTry:
		c.errorf(node, "not implemented (try)")
		ok = false

	case ast.KindTuple:
		ok = c.exprTuple(node)

	case ast.KindArray:
		c.errorf(node, "not implemented (array)")
		ok = false

	case ast.KindObject:
		c.errorf(node, "not implemented (object)")
		ok = false

	case ast.KindReference:
		ok = c.exprReference(node)

	case ast.KindThis:
		ok = c.exprThis(node)

	case ast.KindInt:
		ok = c.exprLiteral(node, "IntLiteral")

	case ast.KindFloat:
		ok = c.exprLiteral(node, "FloatLiteral")

	case ast.KindString:
		ok = c.exprLiteral(node, "String")

	case ast.KindError:
		ok = c.exprError(node)
	}

	if !ok {
		return VerdictFatal
	}
	if c.Trace != nil {
		fmt.Fprintf(c.Trace, "typecheck %s %d:%d -> %s\n",
			node.Kind, node.Span.Line, node.Span.Column, types.Format(c.TypeOf(node)))
	}
	return VerdictOK
}
