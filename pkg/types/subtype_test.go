package types

import (
	"testing"

	"quill/compiler-go/pkg/ast"
)

func nominal(name string) *ast.Node {
	return Nominal(nil, "", name)
}

func union(l, r *ast.Node) *ast.Node {
	return ast.New(ast.KindUnionType).Add(l, r)
}

func isect(l, r *ast.Node) *ast.Node {
	return ast.New(ast.KindIsectType).Add(l, r)
}

func pair(l, r *ast.Node) *ast.Node {
	return ast.New(ast.KindTupleType).Add(l, r)
}

func TestNominalSubtypeFollowsHierarchy(t *testing.T) {
	ctx := NewContext()

	if !IsSubtype(ctx, nominal("IntLiteral"), nominal("Integer")) {
		t.Fatalf("IntLiteral should be a subtype of Integer")
	}
	if !IsSubtype(ctx, nominal("IntLiteral"), nominal("Arithmetic")) {
		t.Fatalf("the relation should be transitive")
	}
	if !IsSubtype(ctx, nominal("Integer"), nominal("Integer")) {
		t.Fatalf("the relation should be reflexive")
	}
	if IsSubtype(ctx, nominal("Integer"), nominal("IntLiteral")) {
		t.Fatalf("the relation must not invert")
	}
	if IsSubtype(ctx, nominal("String"), nominal("Arithmetic")) {
		t.Fatalf("String is not arithmetic")
	}
}

func TestNominalSubtypeChecksCaps(t *testing.T) {
	ctx := NewContext()
	ctx.Register("Counter")

	iso := NominalWithCap(nil, "", "Counter", CapIso)
	box := NominalWithCap(nil, "", "Counter", CapBox)

	if !IsSubtype(ctx, iso, box) {
		t.Fatalf("iso Counter should satisfy box Counter")
	}
	if IsSubtype(ctx, box, iso) {
		t.Fatalf("box Counter must not satisfy iso Counter")
	}
	if !IsSubtype(ctx, nominal("Counter"), iso) {
		t.Fatalf("an unspecified capability unifies")
	}
}

func TestNominalSubtypeEphemeral(t *testing.T) {
	ctx := NewContext()
	ctx.Register("Counter")

	plain := nominal("Counter")
	eph := nominal("Counter")
	eph.Children[4] = ast.New(ast.KindHat)

	if !IsSubtype(ctx, eph, plain) {
		t.Fatalf("an ephemeral reference can stand in for a plain one")
	}
	if IsSubtype(ctx, plain, eph) {
		t.Fatalf("a plain reference must not satisfy an ephemeral one")
	}
}

func TestNominalSubtypeTypeArgs(t *testing.T) {
	ctx := NewContext()
	ctx.Register("List")

	intList := nominal("List")
	SetNominalTypeArgs(intList, ast.New(ast.KindTypeArgs).Add(nominal("Integer")))
	stringList := nominal("List")
	SetNominalTypeArgs(stringList, ast.New(ast.KindTypeArgs).Add(nominal("String")))
	sameList := nominal("List")
	SetNominalTypeArgs(sameList, ast.New(ast.KindTypeArgs).Add(nominal("Integer")))

	if !IsSubtype(ctx, intList, sameList) {
		t.Fatalf("identical type arguments should relate")
	}
	if IsSubtype(ctx, intList, stringList) {
		t.Fatalf("type arguments are invariant")
	}
	if IsSubtype(ctx, intList, nominal("List")) {
		t.Fatalf("an applied type must not relate to the bare name")
	}
}

func TestUnionSubtyping(t *testing.T) {
	ctx := NewContext()

	intOrFloat := union(nominal("Integer"), nominal("Float"))
	if !IsSubtype(ctx, intOrFloat, nominal("Arithmetic")) {
		t.Fatalf("a union is a subtype member-wise")
	}
	if IsSubtype(ctx, union(nominal("Integer"), nominal("String")), nominal("Arithmetic")) {
		t.Fatalf("every member must satisfy the right side")
	}
	if !IsSubtype(ctx, nominal("Integer"), intOrFloat) {
		t.Fatalf("one matching member admits the left side")
	}
	if IsSubtype(ctx, nominal("String"), intOrFloat) {
		t.Fatalf("no member admits String")
	}
}

func TestIsectSubtyping(t *testing.T) {
	ctx := NewContext()

	ordered := isect(nominal("Integer"), nominal("String"))
	if !IsSubtype(ctx, ordered, nominal("Arithmetic")) {
		t.Fatalf("one member satisfying the right side suffices")
	}
	if !IsSubtype(ctx, nominal("IntLiteral"), isect(nominal("Integer"), nominal("Arithmetic"))) {
		t.Fatalf("the left side must satisfy every intersection member")
	}
	if IsSubtype(ctx, nominal("Integer"), isect(nominal("Integer"), nominal("String"))) {
		t.Fatalf("failing one intersection member fails the whole")
	}
}

func TestTupleSubtyping(t *testing.T) {
	ctx := NewContext()

	a := pair(nominal("IntLiteral"), nominal("String"))
	b := pair(nominal("Integer"), nominal("String"))

	if !IsSubtype(ctx, a, b) {
		t.Fatalf("tuples relate element-wise")
	}
	if IsSubtype(ctx, b, a) {
		t.Fatalf("element subtyping must not invert")
	}
	if IsSubtype(ctx, a, nominal("Integer")) {
		t.Fatalf("a tuple never satisfies a nominal")
	}
}

func TestErrorMarkerSubtyping(t *testing.T) {
	ctx := NewContext()
	err := ast.New(ast.KindError)

	if !IsSubtype(ctx, err, err) {
		t.Fatalf("the error marker relates to itself")
	}
	if !IsSubtype(ctx, err, union(nominal("Integer"), ast.New(ast.KindError))) {
		t.Fatalf("a union admitting the marker accepts it")
	}
	if IsSubtype(ctx, err, nominal("Integer")) {
		t.Fatalf("the marker never satisfies a nominal")
	}
	if IsSubtype(ctx, nominal("Integer"), err) {
		t.Fatalf("a nominal never satisfies the marker")
	}
}

func TestAbsentTypeNeverRelates(t *testing.T) {
	ctx := NewContext()
	if IsSubtype(ctx, nil, nominal("Integer")) || IsSubtype(ctx, nominal("Integer"), nil) {
		t.Fatalf("an absent type is not a subtype of anything")
	}
	if IsSubtype(ctx, ast.New(ast.KindNone), nominal("Integer")) {
		t.Fatalf("a none node is an absent type")
	}
}

func TestFunSubtyping(t *testing.T) {
	ctx := NewContext()

	sig := func(kind ast.Kind, param, result *ast.Node, partial bool) *ast.Node {
		params := ast.New(ast.KindNone)
		if param != nil {
			params = ast.New(ast.KindTypes).Add(param)
		}
		marker := ast.New(ast.KindNone)
		if partial {
			marker = ast.New(ast.KindQuestion)
		}
		return ast.New(kind).Add(
			ast.New(ast.KindNone), ast.NewID("m"), ast.New(ast.KindNone),
			params, result, marker, ast.New(ast.KindNone),
		)
	}

	total := sig(ast.KindFun, nominal("Integer"), nominal("IntLiteral"), false)
	wider := sig(ast.KindFun, nominal("Integer"), nominal("Integer"), false)
	partial := sig(ast.KindFun, nominal("Integer"), nominal("IntLiteral"), true)

	if !IsSubtype(ctx, total, wider) {
		t.Fatalf("covariant result should relate")
	}
	if IsSubtype(ctx, wider, total) {
		t.Fatalf("result covariance must not invert")
	}
	if IsSubtype(ctx, partial, total) {
		t.Fatalf("a partial signature cannot satisfy a total one")
	}
	if !IsSubtype(ctx, total, partial) {
		t.Fatalf("a total signature satisfies a partial one")
	}

	otherParam := sig(ast.KindFun, nominal("String"), nominal("IntLiteral"), false)
	if IsSubtype(ctx, total, otherParam) {
		t.Fatalf("parameter types are invariant")
	}
	behaviour := sig(ast.KindBe, nominal("Integer"), nominal("IntLiteral"), false)
	if IsSubtype(ctx, total, behaviour) {
		t.Fatalf("a function never satisfies a behaviour signature")
	}
}

func TestIsEqtype(t *testing.T) {
	ctx := NewContext()
	if !IsEqtype(ctx, nominal("Integer"), nominal("Integer")) {
		t.Fatalf("a type equals itself")
	}
	if IsEqtype(ctx, nominal("IntLiteral"), nominal("Integer")) {
		t.Fatalf("one-way subtyping is not equality")
	}
}

func TestSameType(t *testing.T) {
	if !SameType(nil, ast.New(ast.KindNone)) {
		t.Fatalf("nil and none compare equal")
	}
	if SameType(nil, nominal("Integer")) {
		t.Fatalf("nil differs from a present type")
	}
	if !SameType(nominal("Integer"), nominal("Integer")) {
		t.Fatalf("structurally identical trees compare equal")
	}
	if SameType(nominal("Integer"), nominal("Float")) {
		t.Fatalf("different spellings differ")
	}
}

func TestShapeOf(t *testing.T) {
	cases := []struct {
		node *ast.Node
		want Shape
	}{
		{nil, ShapeNone},
		{ast.New(ast.KindNone), ShapeNone},
		{nominal("Integer"), ShapeNominal},
		{pair(nominal("Integer"), nominal("String")), ShapeTuple},
		{union(nominal("Integer"), nominal("String")), ShapeUnion},
		{isect(nominal("Integer"), nominal("String")), ShapeIsect},
		{ast.New(ast.KindStructuralType), ShapeStructural},
		{ast.New(ast.KindArrowType), ShapeArrow},
		{ast.New(ast.KindFun), ShapeFun},
		{ast.New(ast.KindError), ShapeError},
	}
	for _, tc := range cases {
		if got := ShapeOf(tc.node); got != tc.want {
			t.Fatalf("ShapeOf(%v) = %s, want %s", tc.node, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	counter := NominalWithCap(nil, "col", "Counter", CapVal)
	if got := Format(counter); got != "col.Counter val" {
		t.Fatalf("Format nominal = %q", got)
	}

	chain := pair(nominal("Integer"), pair(nominal("String"), nominal("Float")))
	if got := Format(chain); got != "(Integer, String, Float)" {
		t.Fatalf("Format tuple = %q", got)
	}

	if got := Format(union(nominal("Integer"), nominal("String"))); got != "Integer | String" {
		t.Fatalf("Format union = %q", got)
	}
	if got := Format(nil); got == "" {
		t.Fatalf("Format(nil) should still produce a placeholder")
	}
}
