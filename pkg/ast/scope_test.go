package ast

import "testing"

func TestScopeLookupWalksOutward(t *testing.T) {
	outer := NewScope(nil)
	inner := NewScope(outer)

	classDecl := New(KindClass).Add(NewID("Counter"))
	paramDecl := New(KindParam).Add(NewID("value"))
	outer.Define("Counter", classDecl)
	inner.Define("value", paramDecl)

	if decl, ok := inner.Lookup("value"); !ok || decl != paramDecl {
		t.Fatalf("inner lookup failed: %v, %v", decl, ok)
	}
	if decl, ok := inner.Lookup("Counter"); !ok || decl != classDecl {
		t.Fatalf("lookup should walk outward: %v, %v", decl, ok)
	}
	if _, ok := inner.Lookup("missing"); ok {
		t.Fatalf("unknown name should not resolve")
	}
}

func TestScopeLookupLocalStaysPut(t *testing.T) {
	outer := NewScope(nil)
	inner := NewScope(outer)
	outer.Define("Counter", New(KindClass).Add(NewID("Counter")))

	if _, ok := inner.LookupLocal("Counter"); ok {
		t.Fatalf("LookupLocal must not consult enclosing scopes")
	}
	if _, ok := outer.LookupLocal("Counter"); !ok {
		t.Fatalf("LookupLocal missed a local binding")
	}
}

func TestScopeFirstDefinitionWins(t *testing.T) {
	scope := NewScope(nil)
	first := New(KindFieldVar).Add(NewID("count"))
	second := New(KindFieldVar).Add(NewID("count"))

	scope.Define("count", first)
	scope.Define("count", second)

	decl, ok := scope.Lookup("count")
	if !ok || decl != first {
		t.Fatalf("redefinition should not replace the first binding")
	}
}

func TestResolveFindsNearestScopedAncestor(t *testing.T) {
	unitScope := NewScope(nil)
	classDecl := New(KindClass).Add(NewID("Counter"))
	unitScope.Define("Counter", classDecl)

	module := New(KindModule)
	module.Scope = unitScope

	methodScope := NewScope(unitScope)
	field := New(KindFieldVar).Add(NewID("count"))
	methodScope.Define("count", field)

	method := New(KindFun)
	method.Scope = methodScope
	use := New(KindReference).Add(NewID("count"))
	body := New(KindSeq).Add(use)
	method.Add(body)
	module.Add(classDecl)
	classDecl.Add(method)

	if decl, ok := Resolve(use, "count"); !ok || decl != field {
		t.Fatalf("Resolve missed the method scope: %v, %v", decl, ok)
	}
	if decl, ok := Resolve(use, "Counter"); !ok || decl != classDecl {
		t.Fatalf("Resolve should chain to the unit scope: %v, %v", decl, ok)
	}
	if _, ok := Resolve(use, "missing"); ok {
		t.Fatalf("unknown name should not resolve")
	}

	orphan := New(KindInt)
	if _, ok := Resolve(orphan, "count"); ok {
		t.Fatalf("a node with no scoped ancestor resolves nothing")
	}
}
