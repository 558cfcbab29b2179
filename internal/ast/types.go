package ast

import "github.com/theQuarky/tspp/internal/position"

// Primitive identifies which of the five primitive type keywords a
// PrimitiveType names.
type Primitive int

const (
	PrimitiveVoid Primitive = iota
	PrimitiveInt
	PrimitiveFloat
	PrimitiveBool
	PrimitiveString
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveVoid:
		return "void"
	case PrimitiveInt:
		return "int"
	case PrimitiveFloat:
		return "float"
	case PrimitiveBool:
		return "bool"
	case PrimitiveString:
		return "string"
	default:
		return "unknown"
	}
}

type PrimitiveType struct {
	Span position.Span
	Kind Primitive
}

func (t *PrimitiveType) GetSpan() position.Span      { return t.Span }
func (t *PrimitiveType) Accept(v Visitor) interface{} { return v.VisitPrimitiveType(t) }
func (t *PrimitiveType) typeNode()                   {}

// NamedType is a bare identifier used in type position (e.g. a class or
// enum name).
type NamedType struct {
	Span position.Span
	Name string
}

func (t *NamedType) GetSpan() position.Span      { return t.Span }
func (t *NamedType) Accept(v Visitor) interface{} { return v.VisitNamedType(t) }
func (t *NamedType) typeNode()                   {}

// QualifiedType is a dotted identifier chain (`Ns.Type`). Only the final
// identifier in the chain can carry further postfix modifiers.
type QualifiedType struct {
	Span  position.Span
	Parts []string
}

func (t *QualifiedType) GetSpan() position.Span      { return t.Span }
func (t *QualifiedType) Accept(v Visitor) interface{} { return v.VisitQualifiedType(t) }
func (t *QualifiedType) typeNode()                   {}

// ArrayType is `T[]` or `T[size]`; Size is nil when the bracket is empty.
type ArrayType struct {
	Span    position.Span
	Elem    TypeNode
	Size    Expression
}

func (t *ArrayType) GetSpan() position.Span      { return t.Span }
func (t *ArrayType) Accept(v Visitor) interface{} { return v.VisitArrayType(t) }
func (t *ArrayType) typeNode()                   {}

// PointerKind distinguishes the four `@`-suffixed pointer flavours.
type PointerKind int

const (
	PointerRaw PointerKind = iota
	PointerSafe
	PointerUnsafe
	PointerAligned
)

// PointerType is `T@`, `T@safe`, `T@unsafe`, or `T@aligned(N)`. Alignment
// is non-nil only for the Aligned kind.
type PointerType struct {
	Span      position.Span
	Base      TypeNode
	Kind      PointerKind
	Alignment Expression
}

func (t *PointerType) GetSpan() position.Span      { return t.Span }
func (t *PointerType) Accept(v Visitor) interface{} { return v.VisitPointerType(t) }
func (t *PointerType) typeNode()                   {}

// ReferenceType is `T&`.
type ReferenceType struct {
	Span position.Span
	Base TypeNode
}

func (t *ReferenceType) GetSpan() position.Span      { return t.Span }
func (t *ReferenceType) Accept(v Visitor) interface{} { return v.VisitReferenceType(t) }
func (t *ReferenceType) typeNode()                   {}

// FunctionType is a parenthesised parameter-type list in type position:
// `(T, U)`. The type grammar has no arrow token, so the parser never sets
// Return and the checker resolves the missing return type as void.
type FunctionType struct {
	Span    position.Span
	Params  []TypeNode
	Return  TypeNode
}

func (t *FunctionType) GetSpan() position.Span      { return t.Span }
func (t *FunctionType) Accept(v Visitor) interface{} { return v.VisitFunctionType(t) }
func (t *FunctionType) typeNode()                   {}

// TemplateType is `Name<T, U>` — a named type applied to type arguments.
type TemplateType struct {
	Span position.Span
	Base *NamedType
	Args []TypeNode
}

func (t *TemplateType) GetSpan() position.Span      { return t.Span }
func (t *TemplateType) Accept(v Visitor) interface{} { return v.VisitTemplateType(t) }
func (t *TemplateType) typeNode()                   {}

// SmartKind distinguishes the three smart-pointer attribute prefixes.
type SmartKind int

const (
	SmartShared SmartKind = iota
	SmartUnique
	SmartWeak
)

// SmartPointerType is `#shared<T>`, `#unique<T>`, or `#weak<T>`.
type SmartPointerType struct {
	Span    position.Span
	Pointee TypeNode
	Kind    SmartKind
}

func (t *SmartPointerType) GetSpan() position.Span      { return t.Span }
func (t *SmartPointerType) Accept(v Visitor) interface{} { return v.VisitSmartPointerType(t) }
func (t *SmartPointerType) typeNode()                   {}

// UnionType is `A | B`.
type UnionType struct {
	Span position.Span
	Left TypeNode
	Right TypeNode
}

func (t *UnionType) GetSpan() position.Span      { return t.Span }
func (t *UnionType) Accept(v Visitor) interface{} { return v.VisitUnionType(t) }
func (t *UnionType) typeNode()                   {}
