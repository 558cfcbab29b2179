package typescope

import (
	"testing"

	"github.com/theQuarky/tspp/internal/types"
)

func TestShadowingAllowedSilently(t *testing.T) {
	outer := New(nil)
	if err := outer.DeclareVariable("x", types.Int); err != nil {
		t.Fatal(err)
	}

	inner := outer.CreateChild()
	if err := inner.DeclareVariable("x", types.String); err != nil {
		t.Fatalf("shadowing an outer-scope name must be allowed: %v", err)
	}

	tp, _ := inner.LookupVariable("x")
	if tp.Kind() != types.KindString {
		t.Fatal("inner scope lookup should see the shadowing declaration")
	}
}

func TestRedeclarationSameScopeIsError(t *testing.T) {
	s := New(nil)
	if err := s.DeclareVariable("x", types.Int); err != nil {
		t.Fatal(err)
	}

	if err := s.DeclareVariable("x", types.Float); err == nil {
		t.Fatal("redeclaring in the same scope should error")
	}
}

// TestScopeCorrectness: a name declared in a block is
// not resolvable in a sibling or enclosing block.
func TestScopeCorrectness(t *testing.T) {
	root := New(nil)
	block1 := root.CreateChild()
	block2 := root.CreateChild()

	if err := block1.DeclareVariable("local", types.Int); err != nil {
		t.Fatal(err)
	}

	if _, ok := block2.LookupVariable("local"); ok {
		t.Fatal("sibling block should not see block1's declaration")
	}

	if _, ok := root.LookupVariable("local"); ok {
		t.Fatal("enclosing block should not see a nested declaration")
	}

	nested := block1.CreateChild()
	if _, ok := nested.LookupVariable("local"); !ok {
		t.Fatal("nested block should resolve an outer declaration until shadowed")
	}
}

func TestDisjointNamespaces(t *testing.T) {
	s := New(nil)

	if err := s.DeclareVariable("x", types.Int); err != nil {
		t.Fatal(err)
	}

	if err := s.DeclareFunction("x", &types.FunctionType{Return: types.Void}); err != nil {
		t.Fatal("variables and functions are disjoint namespaces; same name should be fine")
	}

	if err := s.DeclareType("x", types.NewNamedType("x")); err != nil {
		t.Fatal("types namespace is disjoint too")
	}
}

func TestBuiltinScopeHasOnlyPrimitives(t *testing.T) {
	b := NewBuiltinScope()

	if _, ok := b.LookupType("int"); !ok {
		t.Fatal("builtin scope should contain int")
	}

	if _, ok := b.LookupVariable("anything"); ok {
		t.Fatal("builtin scope should contain no variables")
	}
}
