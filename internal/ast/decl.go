package ast

import "github.com/theQuarky/tspp/internal/position"

// VariableDecl is a `let`/`const` declaration. A const variable's
// invariant (non-null initializer) is enforced by the declaration parser,
// which reports sem006, and by the checker, which resolves such a
// declaration to the Error type — not by the node itself, so malformed
// ASTs can still be built and reported on.
type VariableDecl struct {
	Span       position.Span
	Name       string
	Type       TypeNode   // nil if omitted
	Init       Expression // nil if omitted
	Storage    StorageClass
	IsConst    bool
	Attributes []*Attribute
}

func (d *VariableDecl) GetSpan() position.Span      { return d.Span }
func (d *VariableDecl) Accept(v Visitor) interface{} { return v.VisitVariableDecl(d) }
func (d *VariableDecl) declarationNode()             {}

// Parameter is a function or method parameter.
type Parameter struct {
	Span    position.Span
	Name    string
	Type    TypeNode
	Default Expression // nil if omitted
	IsRef   bool
	IsConst bool
}

func (p *Parameter) GetSpan() position.Span { return p.Span }

// GenericParam is one entry in a generic parameter list.
type GenericParam struct {
	Span position.Span
	Name string
}

// Constraint pairs a generic parameter name with its bound type
// (`where T : Bound`).
type Constraint struct {
	Span  position.Span
	Param string
	Bound TypeNode
}

// FunctionDecl models both plain and generic functions; a generic
// function is this same node with a non-nil Generics list.
type FunctionDecl struct {
	Span       position.Span
	Name       string
	Generics   []*GenericParam
	Constraints []*Constraint
	Params     []*Parameter
	ReturnType TypeNode // nil if omitted
	Throws     []TypeNode
	Modifiers  []FunctionModifier
	Body       *BlockStmt // nil for a declaration-only signature
	Attributes []*Attribute
}

func (d *FunctionDecl) GetSpan() position.Span      { return d.Span }
func (d *FunctionDecl) Accept(v Visitor) interface{} { return v.VisitFunctionDecl(d) }
func (d *FunctionDecl) declarationNode()             {}

// ClassDecl is a class declaration with optional generics, a single base
// class, any number of implemented interfaces, and a member list.
type ClassDecl struct {
	Span       position.Span
	Name       string
	Generics   []*GenericParam
	Modifiers  []ClassModifier
	Base       TypeNode // nil if no `extends`
	Interfaces []TypeNode
	Members    []Declaration // *ConstructorDecl, *MethodDecl, *FieldDecl, *PropertyDecl
	Attributes []*Attribute
}

func (d *ClassDecl) GetSpan() position.Span      { return d.Span }
func (d *ClassDecl) Accept(v Visitor) interface{} { return v.VisitClassDecl(d) }
func (d *ClassDecl) declarationNode()             {}

type ConstructorDecl struct {
	Span       position.Span
	Access     AccessModifier
	Params     []*Parameter
	Body       *BlockStmt
	Attributes []*Attribute
}

func (d *ConstructorDecl) GetSpan() position.Span      { return d.Span }
func (d *ConstructorDecl) Accept(v Visitor) interface{} { return v.VisitConstructorDecl(d) }
func (d *ConstructorDecl) declarationNode()             {}

type MethodDecl struct {
	Span       position.Span
	Access     AccessModifier
	Name       string
	Generics   []*GenericParam
	Params     []*Parameter
	ReturnType TypeNode
	Throws     []TypeNode
	Modifiers  []FunctionModifier
	Body       *BlockStmt
	Attributes []*Attribute
}

func (d *MethodDecl) GetSpan() position.Span      { return d.Span }
func (d *MethodDecl) Accept(v Visitor) interface{} { return v.VisitMethodDecl(d) }
func (d *MethodDecl) declarationNode()             {}

type FieldDecl struct {
	Span       position.Span
	Access     AccessModifier
	Name       string
	Type       TypeNode
	Init       Expression
	IsConst    bool
	Storage    StorageClass
	Attributes []*Attribute
}

func (d *FieldDecl) GetSpan() position.Span      { return d.Span }
func (d *FieldDecl) Accept(v Visitor) interface{} { return v.VisitFieldDecl(d) }
func (d *FieldDecl) declarationNode()             {}

// PropertyKind distinguishes a getter from a setter accessor.
type PropertyKind int

const (
	PropertyGetter PropertyKind = iota
	PropertySetter
)

// PropertyDecl is a `get`/`set` accessor. A getter has no parameter; a
// setter has exactly one (its invariant is enforced by the checker).
type PropertyDecl struct {
	Span       position.Span
	Access     AccessModifier
	Kind       PropertyKind
	Name       string
	ReturnType TypeNode  // getter's declared return type, or nil
	Param      *Parameter // setter's single parameter, or nil
	Body       *BlockStmt
	Attributes []*Attribute
}

func (d *PropertyDecl) GetSpan() position.Span      { return d.Span }
func (d *PropertyDecl) Accept(v Visitor) interface{} { return v.VisitPropertyDecl(d) }
func (d *PropertyDecl) declarationNode()             {}

type EnumMember struct {
	Span  position.Span
	Name  string
	Value Expression // nil if omitted
}

type EnumDecl struct {
	Span       position.Span
	Name       string
	Underlying TypeNode // nil if omitted
	Members    []*EnumMember
	Attributes []*Attribute
}

func (d *EnumDecl) GetSpan() position.Span      { return d.Span }
func (d *EnumDecl) Accept(v Visitor) interface{} { return v.VisitEnumDecl(d) }
func (d *EnumDecl) declarationNode()             {}

// InterfaceMethod is a method signature with no body.
type InterfaceMethod struct {
	Span       position.Span
	Name       string
	Params     []*Parameter
	ReturnType TypeNode
	Throws     []TypeNode
}

type InterfaceDecl struct {
	Span       position.Span
	Name       string
	Generics   []*GenericParam
	Methods    []*InterfaceMethod
	Attributes []*Attribute
}

func (d *InterfaceDecl) GetSpan() position.Span      { return d.Span }
func (d *InterfaceDecl) Accept(v Visitor) interface{} { return v.VisitInterfaceDecl(d) }
func (d *InterfaceDecl) declarationNode()             {}

// StatementDecl wraps a top-level statement (e.g. a bare expression
// statement, or a control-flow statement appearing outside any function
// body) so the orchestrator loop can dispatch between
// declarations and statements while Program.Declarations stays a single
// homogeneous list. This is the mirror image of DeclarationStmt, which
// wraps a declaration appearing in statement position inside a block.
type StatementDecl struct {
	Span position.Span
	Stmt Statement
}

func (d *StatementDecl) GetSpan() position.Span      { return d.Span }
func (d *StatementDecl) Accept(v Visitor) interface{} { return v.VisitStatementDecl(d) }
func (d *StatementDecl) declarationNode()             {}
