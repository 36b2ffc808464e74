package types

import "quill/compiler-go/pkg/ast"

// Context carries the nominal hierarchy the subtype relation consults: the
// builtin types plus every user declaration registered by the loader. A
// Context is frozen before a pass starts; the pass itself only reads it.
type Context struct {
	supertypes map[string][]string
}

// NewContext seeds a context with the builtin Quill types and the trait
// edges among them.
func NewContext() *Context {
	ctx := &Context{supertypes: make(map[string][]string)}
	ctx.Register("Arithmetic")
	ctx.Register("Comparable")
	ctx.Register("Ordered", "Comparable")
	ctx.Register("Bool")
	ctx.Register("Integer", "Arithmetic")
	ctx.Register("Float", "Arithmetic")
	ctx.Register("IntLiteral", "Integer")
	ctx.Register("FloatLiteral", "Float")
	ctx.Register("String", "Comparable")
	ctx.Register("None")
	return ctx
}

// Register records a nominal type and its declared supertypes. Registering
// an existing name extends its supertype list.
func (c *Context) Register(name string, supertypes ...string) {
	if c == nil || name == "" {
		return
	}
	c.supertypes[name] = append(c.supertypes[name], supertypes...)
}

// Known reports whether name is a registered nominal type.
func (c *Context) Known(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.supertypes[name]
	return ok
}

// Builtin resolves a builtin type name to a fresh nominal type node spanned
// at the requesting expression. The second result is false when the name is
// not registered; callers treat that as an environment misconfiguration.
func (c *Context) Builtin(at *ast.Node, name string) (*ast.Node, bool) {
	if !c.Known(name) {
		return nil, false
	}
	return Nominal(at, "", name), true
}

// extendsNominal reports whether the nominal named a reaches b through the
// declared supertype edges, reflexively.
func (c *Context) extendsNominal(a, b string) bool {
	if a == b {
		return true
	}
	seen := map[string]bool{a: true}
	frontier := []string{a}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for _, super := range c.supertypes[cur] {
			if super == b {
				return true
			}
			if !seen[super] {
				seen[super] = true
				frontier = append(frontier, super)
			}
		}
	}
	return false
}
