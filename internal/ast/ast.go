// Package ast defines the TSPP abstract syntax tree: tagged variants for
// declarations, statements, expressions, and
// types, each carrying its source span and accepting a Visitor. Nodes are
// owned uniquely by their parent; the tree never has cycles.
package ast

import "github.com/theQuarky/tspp/internal/position"

// Node is implemented by every AST node.
type Node interface {
	GetSpan() position.Span
	Accept(v Visitor) interface{}
}

// Declaration, Statement, Expression, and TypeNode are the four marker
// interfaces that make the AST a closed sum of tagged variants.
type Declaration interface {
	Node
	declarationNode()
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type TypeNode interface {
	Node
	typeNode()
}

// Program is the root of a parsed file.
type Program struct {
	Span         position.Span
	Declarations []Declaration
}

func (p *Program) GetSpan() position.Span      { return p.Span }
func (p *Program) Accept(v Visitor) interface{} { return v.VisitProgram(p) }

// Attribute is an `#identifier` marker attached to a declaration, or
// used as a type prefix. Name omits the leading `#`.
type Attribute struct {
	Span position.Span
	Name string
	Arg  Expression // nil if the attribute has no argument
}

// StorageClass selects allocation semantics on a variable or field.
type StorageClass int

const (
	StorageNone StorageClass = iota
	StorageStack
	StorageHeap
	StorageStatic
)

func (s StorageClass) String() string {
	switch s {
	case StorageStack:
		return "#stack"
	case StorageHeap:
		return "#heap"
	case StorageStatic:
		return "#static"
	default:
		return ""
	}
}

// AccessModifier gates visibility of a class member.
type AccessModifier int

const (
	AccessPublic AccessModifier = iota
	AccessPrivate
	AccessProtected
)

// FunctionModifier is one of the non-exclusive modifiers a function or
// method declaration can carry.
type FunctionModifier int

const (
	ModInline FunctionModifier = iota
	ModVirtual
	ModUnsafe
	ModSIMD
	ModAsync
)

// ClassModifier is one of the non-exclusive modifiers a class declaration
// can carry.
type ClassModifier int

const (
	ClassAligned ClassModifier = iota
	ClassPacked
	ClassAbstract
)
