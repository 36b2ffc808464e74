package driver

import (
	"strings"
	"testing"

	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/types"
)

func nominalType(name string) *ast.Node {
	return types.Nominal(nil, "", name)
}

func classDecl(name string, provides *ast.Node, members ...*ast.Node) *ast.Node {
	decl := ast.New(ast.KindClass)
	decl.Add(ast.NewID(name), ast.New(ast.KindNone), provides)
	decl.Add(members...)
	return decl
}

func funDecl(name string, params *ast.Node) *ast.Node {
	return ast.New(ast.KindFun).Add(
		ast.New(ast.KindNone), ast.NewID(name), ast.New(ast.KindNone), params,
		ast.New(ast.KindNone), ast.New(ast.KindNone), ast.New(ast.KindSeq),
	)
}

func TestBindModuleDefinesNominals(t *testing.T) {
	field := ast.New(ast.KindFieldVar).Add(
		ast.NewID("count"), nominalType("Integer"), ast.New(ast.KindNone))
	params := ast.New(ast.KindParams).Add(
		ast.New(ast.KindParam).Add(ast.NewID("amount"), nominalType("Integer"), ast.New(ast.KindNone)))
	method := funDecl("add", params)
	counter := classDecl("Counter", ast.New(ast.KindNone), field, method)

	module := ast.New(ast.KindModule).Add(counter)
	ctx := types.NewContext()

	if err := BindModule(module, ctx, nil); err != nil {
		t.Fatalf("BindModule returned error: %v", err)
	}

	if decl, ok := module.Scope.Lookup("Counter"); !ok || decl != counter {
		t.Fatalf("class not defined in the unit scope")
	}
	if !ctx.Known("Counter") {
		t.Fatalf("class not registered in the context")
	}
	if decl, ok := counter.Scope.LookupLocal("count"); !ok || decl != field {
		t.Fatalf("field not defined in the declaration scope")
	}
	if decl, ok := counter.Scope.LookupLocal("add"); !ok || decl != method {
		t.Fatalf("method not defined in the declaration scope")
	}
	if decl, ok := method.Scope.Lookup("amount"); !ok || decl.Kind != ast.KindParam {
		t.Fatalf("parameter not defined in the method scope: %v, %v", decl, ok)
	}
	// The method scope chains to the declaration and unit scopes.
	if _, ok := method.Scope.Lookup("count"); !ok {
		t.Fatalf("method scope should reach the field")
	}
}

func TestBindModuleRegistersProvides(t *testing.T) {
	provides := ast.New(ast.KindTypes).Add(nominalType("Comparable"))
	counter := classDecl("Counter", provides)
	module := ast.New(ast.KindModule).Add(counter)
	ctx := types.NewContext()

	if err := BindModule(module, ctx, nil); err != nil {
		t.Fatalf("BindModule returned error: %v", err)
	}

	if !types.IsSubtype(ctx, nominalType("Counter"), nominalType("Comparable")) {
		t.Fatalf("provided trait should become a supertype edge")
	}
}

func TestBindModuleDefinesPackages(t *testing.T) {
	pkg := NewPackageNode("collections", []*ast.Node{classDecl("List", ast.New(ast.KindNone))})
	module := ast.New(ast.KindModule)
	ctx := types.NewContext()

	if err := BindModule(module, ctx, map[string]*ast.Node{"collections": pkg}); err != nil {
		t.Fatalf("BindModule returned error: %v", err)
	}
	if decl, ok := module.Scope.Lookup("collections"); !ok || decl != pkg {
		t.Fatalf("package alias not defined in the unit scope")
	}
	if _, ok := pkg.Scope.LookupLocal("List"); !ok {
		t.Fatalf("package scope missing the exported type")
	}
	// The package scope is detached from the unit scope.
	if _, ok := pkg.Scope.Lookup("collections"); ok {
		t.Fatalf("package scope must not reach the unit scope")
	}
}

func TestBindModuleRejectsStrayMembers(t *testing.T) {
	counter := classDecl("Counter", ast.New(ast.KindNone), ast.New(ast.KindWhile))
	module := ast.New(ast.KindModule).Add(counter)

	err := BindModule(module, types.NewContext(), nil)
	if err == nil || !strings.Contains(err.Error(), "unexpected") {
		t.Fatalf("expected a stray member error, got %v", err)
	}
}

func TestBindModuleRejectsNonModule(t *testing.T) {
	if err := BindModule(ast.New(ast.KindClass), types.NewContext(), nil); err == nil {
		t.Fatalf("a non-module root should be rejected")
	}
}
