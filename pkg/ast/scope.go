package ast

// Scope maps names to declaration nodes and chains to the enclosing lexical
// scope. Name resolution walks outward to the compilation unit; packages get
// a detached scope holding their exported type declarations.
type Scope struct {
	parent *Scope
	names  map[string]*Node
}

// NewScope constructs a scope nested inside parent (nil for the outermost).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		names:  make(map[string]*Node),
	}
}

// Define binds name to its declaration node in this scope. Rebinding an
// existing name shadows nothing: the first declaration wins, matching the
// duplicate handling done during name resolution (out of scope here).
func (s *Scope) Define(name string, decl *Node) {
	if s == nil || name == "" || decl == nil {
		return
	}
	if _, exists := s.names[name]; exists {
		return
	}
	s.names[name] = decl
}

// Lookup resolves name through this scope and its ancestors.
func (s *Scope) Lookup(name string) (*Node, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if decl, ok := cur.names[name]; ok {
			return decl, true
		}
	}
	return nil, false
}

// LookupLocal resolves name in this scope only, without walking outward.
// Package member lookup uses this so a package cannot leak its enclosing
// unit's names.
func (s *Scope) LookupLocal(name string) (*Node, bool) {
	if s == nil {
		return nil, false
	}
	decl, ok := s.names[name]
	return decl, ok
}

// Resolve looks name up starting from the scope attached to node, walking up
// the tree to the nearest scoped ancestor first.
func Resolve(node *Node, name string) (*Node, bool) {
	for cur := node; cur != nil; cur = cur.Parent {
		if cur.Scope != nil {
			return cur.Scope.Lookup(name)
		}
	}
	return nil, false
}
