// Package ast defines the Quill syntax tree consumed by the type-checking
// pass. Nodes are kind-tagged with ordered children; sibling position is the
// only indexing mechanism. A node optionally carries a source span, a
// back-reference to its lexical scope, and the semantic type computed for it
// by the typechecker.
package ast

import "strconv"

// Node is a mutable tree node. A parent owns its children; the Scope
// back-reference is non-owning.
type Node struct {
	Kind     Kind
	Value    string // identifier text, literal spelling, capability name
	Span     Span
	Parent   *Node
	Children []*Node
	Scope    *Scope
}

// New constructs a node of the given kind with no children.
func New(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewAt constructs a node inheriting the source span of base, matching how
// synthesized type nodes point at the expression that produced them.
func NewAt(base *Node, kind Kind) *Node {
	n := &Node{Kind: kind}
	if base != nil {
		n.Span = base.Span
		n.Scope = base.Scope
	}
	return n
}

// NewID constructs an identifier node carrying name.
func NewID(name string) *Node {
	return &Node{Kind: KindID, Value: name}
}

// Add appends child to n and records n as its parent.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		if child == nil {
			child = New(KindNone)
		}
		child.Parent = n
		n.Children = append(n.Children, child)
	}
	return n
}

// Child returns the ith child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// LastChild returns the final child, or nil for a childless node.
func (n *Node) LastChild() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// NextSibling returns the node following n under the same parent.
func (n *Node) NextSibling() *Node {
	if n == nil || n.Parent == nil {
		return nil
	}
	siblings := n.Parent.Children
	for i, sib := range siblings {
		if sib == n && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return nil
}

// Name returns the identifier text of n's first child when it is an ID node.
// Declarations keep their name as the leading child.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindID {
		return n.Value
	}
	if id := n.Child(0); id != nil && id.Kind == KindID {
		return id.Value
	}
	return ""
}

// IntValue parses the literal spelling of an integer node. A malformed
// spelling yields 0; the lexer guarantees well-formed values.
func (n *Node) IntValue() int {
	if n == nil {
		return 0
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0
	}
	return v
}

// Clone deep-copies the node tree. The copy carries the same spans, values,
// and scope references but no parent, so it can be grafted into a synthesized
// type without disturbing the source tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dup := &Node{
		Kind:  n.Kind,
		Value: n.Value,
		Span:  n.Span,
		Scope: n.Scope,
	}
	for _, child := range n.Children {
		dup.Add(child.Clone())
	}
	return dup
}

// EnclosingNominal walks up to the nearest class, actor, or trait
// declaration, or nil when n sits outside any nominal declaration.
func (n *Node) EnclosingNominal() *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		switch cur.Kind {
		case KindClass, KindActor, KindTrait, KindTypeDecl:
			return cur
		}
	}
	return nil
}

// EnclosingLoop walks up to the nearest while or repeat construct.
func (n *Node) EnclosingLoop() *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		switch cur.Kind {
		case KindWhile, KindRepeat:
			return cur
		}
	}
	return nil
}

// EnclosingMethod walks up to the constructor, behavior, or function whose
// body contains n. A node inside a method signature (not the body) still
// reports the method; the return rule only fires inside bodies, where the
// distinction cannot arise.
func (n *Node) EnclosingMethod() *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		switch cur.Kind {
		case KindNew, KindBe, KindFun:
			return cur
		}
	}
	return nil
}
