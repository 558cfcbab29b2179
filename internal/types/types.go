// Package types is the resolved-type lattice the checker produces: a
// closed set of fourteen kinds with three
// convertibility relations. Unlike the syntactic type nodes the parser
// builds, resolved types are produced only by the checker and compared
// structurally.
package types

import (
	"fmt"
	"strings"
)

// Kind identifies which of the fourteen resolved-type variants a Type is.
type Kind int

const (
	KindVoid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindError
	KindNamed
	KindArray
	KindPointer
	KindReference
	KindFunction
	KindUnion
	KindSmart
	KindTemplate
)

// Type is implemented by every resolved-type variant. The marker method
// keeps the set closed to this package.
type Type interface {
	Kind() Kind
	String() string
	resolvedType()
}

type voidType struct{}

func (voidType) Kind() Kind      { return KindVoid }
func (voidType) String() string  { return "void" }
func (voidType) resolvedType()   {}

type intType struct{}

func (intType) Kind() Kind     { return KindInt }
func (intType) String() string { return "int" }
func (intType) resolvedType()  {}

type floatType struct{}

func (floatType) Kind() Kind     { return KindFloat }
func (floatType) String() string { return "float" }
func (floatType) resolvedType()  {}

type boolType struct{}

func (boolType) Kind() Kind     { return KindBool }
func (boolType) String() string { return "bool" }
func (boolType) resolvedType()  {}

type stringType struct{}

func (stringType) Kind() Kind     { return KindString }
func (stringType) String() string { return "string" }
func (stringType) resolvedType()  {}

// errorType is the bottom-like sentinel used to suppress cascading
// diagnostics: it is a universal neighbour in every convertibility
// relation.
type errorType struct{}

func (errorType) Kind() Kind     { return KindError }
func (errorType) String() string { return "<error>" }
func (errorType) resolvedType()  {}

// Built-in singletons: primitives are value-equal so there is never a
// reason to allocate more than one of each.
var (
	Void   Type = voidType{}
	Int    Type = intType{}
	Float  Type = floatType{}
	Bool   Type = boolType{}
	String Type = stringType{}
	Err    Type = errorType{}
)

// NamedType represents a user-declared class, enum, or interface name.
// Fields/Methods are populated during the checker's collection pass so
// that member-access checking can resolve
// `object.member` without a second traversal.
type NamedType struct {
	Name         string
	Fields       map[string]Type
	Methods      map[string]Type // each value is a *FunctionType
	IsEnum       bool
	EnumVariants map[string]bool
}

func NewNamedType(name string) *NamedType {
	return &NamedType{Name: name, Fields: map[string]Type{}, Methods: map[string]Type{}, EnumVariants: map[string]bool{}}
}

func (n *NamedType) Kind() Kind     { return KindNamed }
func (n *NamedType) String() string { return n.Name }
func (n *NamedType) resolvedType()  {}

// Member looks up a field, then a method, then (for enums) a variant,
// returning the member's type and whether it was found.
func (n *NamedType) Member(name string) (Type, bool) {
	if t, ok := n.Fields[name]; ok {
		return t, true
	}

	if t, ok := n.Methods[name]; ok {
		return t, true
	}

	if n.IsEnum && n.EnumVariants[name] {
		return n, true
	}

	return nil, false
}

type ArrayType struct{ Elem Type }

func (a *ArrayType) Kind() Kind     { return KindArray }
func (a *ArrayType) String() string { return a.Elem.String() + "[]" }
func (a *ArrayType) resolvedType()  {}

// PointerType models raw/safe/unsafe/aligned pointers; the parser-level
// distinction between those four kinds collapses to a single Unsafe flag
// at the resolved-type level.
type PointerType struct {
	Pointee Type
	Unsafe  bool
}

func (p *PointerType) Kind() Kind { return KindPointer }
func (p *PointerType) String() string {
	if p.Unsafe {
		return p.Pointee.String() + "@unsafe"
	}

	return p.Pointee.String() + "@"
}
func (p *PointerType) resolvedType() {}

type ReferenceType struct{ Pointee Type }

func (r *ReferenceType) Kind() Kind     { return KindReference }
func (r *ReferenceType) String() string { return r.Pointee.String() + "&" }
func (r *ReferenceType) resolvedType()  {}

type FunctionType struct {
	Return Type
	Params []Type
}

func (f *FunctionType) Kind() Kind { return KindFunction }
func (f *FunctionType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}

	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), f.Return.String())
}
func (f *FunctionType) resolvedType() {}

// UnionType's equivalence is order-insensitive: A|B ≡ B|A.
type UnionType struct{ A, B Type }

func (u *UnionType) Kind() Kind     { return KindUnion }
func (u *UnionType) String() string { return u.A.String() + " | " + u.B.String() }
func (u *UnionType) resolvedType()  {}

// SmartKind distinguishes shared/unique/weak smart pointers.
type SmartKind int

const (
	SmartShared SmartKind = iota
	SmartUnique
	SmartWeak
)

func (k SmartKind) String() string {
	switch k {
	case SmartShared:
		return "shared"
	case SmartUnique:
		return "unique"
	case SmartWeak:
		return "weak"
	default:
		return "unknown"
	}
}

type SmartType struct {
	Pointee Type
	Kind_   SmartKind
}

func (s *SmartType) Kind() Kind     { return KindSmart }
func (s *SmartType) String() string { return fmt.Sprintf("#%s<%s>", s.Kind_, s.Pointee.String()) }
func (s *SmartType) resolvedType()  {}

type TemplateType struct {
	Name string
	Args []Type
}

func (t *TemplateType) Kind() Kind { return KindTemplate }
func (t *TemplateType) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}

	return fmt.Sprintf("%s<%s>", t.Name, strings.Join(parts, ", "))
}
func (t *TemplateType) resolvedType() {}

func IsNumeric(t Type) bool {
	return t.Kind() == KindInt || t.Kind() == KindFloat
}
