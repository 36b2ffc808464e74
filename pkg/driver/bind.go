package driver

import (
	"fmt"

	"quill/compiler-go/pkg/ast"
	"quill/compiler-go/pkg/types"
)

// Scope binding runs after decoding and before the typing pass: it attaches
// lexical scopes to the module, nominal declarations, and methods, and
// registers every nominal declaration (with its provided traits) in the
// subtype context. The checker itself never defines names.

// Nominal declarations carry [id, typeparams, provides]; members follow as
// the remaining children. Methods carry
// [cap, id, typeparams, params, result, partial, body].

// BindModule wires scopes for one module. packages maps a package alias to
// its declaration node; each package node's scope is the package namespace.
func BindModule(module *ast.Node, ctx *types.Context, packages map[string]*ast.Node) error {
	if module == nil || module.Kind != ast.KindModule {
		return fmt.Errorf("bind: not a module node")
	}

	unitScope := ast.NewScope(nil)
	module.Scope = unitScope

	for alias, pkg := range packages {
		unitScope.Define(alias, pkg)
	}

	for _, decl := range module.Children {
		switch decl.Kind {
		case ast.KindClass, ast.KindActor, ast.KindTrait, ast.KindTypeDecl:
			name := decl.Child(0).Value
			if name == "" {
				return fmt.Errorf("bind: nominal declaration without a name at %d:%d",
					decl.Span.Line, decl.Span.Column)
			}
			unitScope.Define(name, decl)
			ctx.Register(name, providedNames(decl.Child(2))...)
			if err := bindNominal(decl, unitScope); err != nil {
				return err
			}
		}
	}
	return nil
}

func bindNominal(decl *ast.Node, unitScope *ast.Scope) error {
	declScope := ast.NewScope(unitScope)
	decl.Scope = declScope

	if len(decl.Children) <= 3 {
		return nil
	}
	for _, member := range decl.Children[3:] {
		switch member.Kind {
		case ast.KindFieldVar, ast.KindFieldLet:
			declScope.Define(member.Child(0).Value, member)
		case ast.KindNew, ast.KindBe, ast.KindFun:
			declScope.Define(member.Child(1).Value, member)
			bindMethod(member, declScope)
		default:
			return fmt.Errorf("bind: unexpected %s member in %s '%s'",
				member.Kind, decl.Kind, decl.Child(0).Value)
		}
	}
	return nil
}

func bindMethod(method *ast.Node, declScope *ast.Scope) {
	methodScope := ast.NewScope(declScope)
	method.Scope = methodScope

	params := method.Child(3)
	if params == nil || params.Kind != ast.KindParams {
		return
	}
	for _, param := range params.Children {
		methodScope.Define(param.Child(0).Value, param)
	}
}

// providedNames flattens a provides list into nominal names for the subtype
// context.
func providedNames(provides *ast.Node) []string {
	if provides == nil || provides.Kind != ast.KindTypes {
		return nil
	}
	names := make([]string, 0, len(provides.Children))
	for _, typ := range provides.Children {
		if name := types.QualifiedName(typ); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// NewPackageNode builds a package declaration holding the exported type
// declarations of a loaded dependency. The package's scope is detached: it
// never leaks the defining unit's names.
func NewPackageNode(alias string, exported []*ast.Node) *ast.Node {
	pkg := ast.New(ast.KindPackage)
	pkg.Value = alias
	pkg.Scope = ast.NewScope(nil)
	for _, decl := range exported {
		switch decl.Kind {
		case ast.KindClass, ast.KindActor, ast.KindTrait, ast.KindTypeDecl:
			pkg.Scope.Define(decl.Child(0).Value, decl)
		}
	}
	return pkg
}
