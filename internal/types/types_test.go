package types

import "testing"

func TestAssignabilityReflexivity(t *testing.T) {
	cases := []Type{Void, Int, Float, Bool, String, NewNamedType("Foo"), &ArrayType{Elem: Int}}

	for _, tp := range cases {
		if !IsAssignableTo(tp, tp) {
			t.Fatalf("IsAssignableTo(%s, %s) should hold (reflexivity)", tp, tp)
		}
	}
}

func TestErrorIsUniversalNeighbour(t *testing.T) {
	if !IsAssignableTo(Err, Int) || !IsAssignableTo(Int, Err) {
		t.Fatal("Error must be assignable to and from everything")
	}

	if !IsImplicitlyConvertibleTo(Err, String) || !IsExplicitlyConvertibleTo(Bool, Err) {
		t.Fatal("Error must be a universal neighbour in every relation")
	}
}

func TestNumericWidening(t *testing.T) {
	if !IsImplicitlyConvertibleTo(Int, Float) {
		t.Fatal("Int should implicitly convert to Float")
	}

	if IsImplicitlyConvertibleTo(Float, Int) {
		t.Fatal("Float should not implicitly convert to Int (narrowing)")
	}

	if !IsExplicitlyConvertibleTo(Float, Int) {
		t.Fatal("Float should explicitly convert to Int")
	}
}

func TestNumericBoolExplicitOnly(t *testing.T) {
	if IsImplicitlyConvertibleTo(Int, Bool) {
		t.Fatal("Int->Bool must not be implicit")
	}

	if !IsExplicitlyConvertibleTo(Int, Bool) {
		t.Fatal("Int->Bool must be explicit")
	}
}

func TestUnionEqualityOrderInsensitive(t *testing.T) {
	ab := &UnionType{A: Int, B: String}
	ba := &UnionType{A: String, B: Int}

	if !Equals(ab, ba) {
		t.Fatal("A|B should equal B|A")
	}
}

func TestFunctionCovariantReturnInvariantParams(t *testing.T) {
	base := &NamedType{Name: "Animal"}
	derived := &NamedType{Name: "Animal"} // structurally equal Named by name

	f1 := &FunctionType{Return: base, Params: []Type{Int}}
	f2 := &FunctionType{Return: derived, Params: []Type{Int}}

	if !IsAssignableTo(f1, f2) {
		t.Fatal("identical-by-name Named returns should be assignable")
	}

	f3 := &FunctionType{Return: base, Params: []Type{Float}}
	if IsAssignableTo(f1, f3) {
		t.Fatal("mismatched parameter types must not be assignable (invariant params)")
	}
}

func TestPointerCastRequiresMatchingPointee(t *testing.T) {
	p1 := &PointerType{Pointee: Int}
	p2 := &PointerType{Pointee: Int}
	p3 := &PointerType{Pointee: String}

	if !IsExplicitlyConvertibleTo(p1, p2) {
		t.Fatal("same-pointee pointer cast should be explicitly convertible")
	}

	if IsExplicitlyConvertibleTo(p1, p3) {
		t.Fatal("mismatched pointee pointer cast should not be convertible")
	}
}

func TestNamedTypeMemberLookup(t *testing.T) {
	n := NewNamedType("Point")
	n.Fields["x"] = Int
	n.Methods["length"] = &FunctionType{Return: Float, Params: nil}

	if tp, ok := n.Member("x"); !ok || tp.Kind() != KindInt {
		t.Fatal("expected field x to resolve to Int")
	}

	if _, ok := n.Member("missing"); ok {
		t.Fatal("unknown member should not resolve")
	}

	n.IsEnum = true
	n.EnumVariants["Red"] = true

	if tp, ok := n.Member("Red"); !ok || tp != n {
		t.Fatal("enum variant access should resolve to the enum's own Named type")
	}
}
