// Package typechecker implements the two-pass semantic checker: a first
// pass collects class/enum/interface names and member tables into the
// type scope, then a second pass walks every declaration and statement,
// resolving and checking types through the resolved-type lattice in
// package types.
package typechecker

import (
	"fmt"

	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/types"
	"github.com/theQuarky/tspp/internal/typescope"
)

// Checker walks a Program and reports sem001-sem008/int001 diagnostics
// through its Reporter. It implements ast.Visitor; every Visit method
// returns the node's resolved types.Type boxed as interface{}.
type Checker struct {
	reporter              Reporter
	scope                 *typescope.Scope
	currentFunctionReturn types.Type
	currentClass          *types.NamedType
	errorCount            int
}

func New(reporter Reporter) *Checker {
	return &Checker{
		reporter:              reporter,
		scope:                 typescope.NewBuiltinScope(),
		currentFunctionReturn: types.Void,
	}
}

// VisitProgram satisfies ast.Visitor; Check drives the two passes itself
// rather than dispatching through Program.Accept, since it needs to
// interleave the type-collection pass between them.
func (c *Checker) VisitProgram(p *ast.Program) interface{} {
	if c.Check(p) {
		return types.Void
	}

	return types.Err
}

func (c *Checker) error(pos position.Position, code, format string, args ...interface{}) {
	c.errorCount++
	c.reporter.Error(pos, fmt.Sprintf(format, args...), code)
}

// typeOf dispatches n through the Visitor and recovers its resolved type.
// A nil node is a parser failure sentinel whose diagnostic was already
// reported, so it yields Err to suppress cascades; a node whose Visit
// method didn't produce a types.Type yields Err rather than panicking on
// a failed assertion.
func (c *Checker) typeOf(n ast.Node) types.Type {
	if n == nil {
		return types.Err
	}

	if t, ok := n.Accept(c).(types.Type); ok && t != nil {
		return t
	}

	return types.Err
}

func (c *Checker) resolveType(t ast.TypeNode) types.Type {
	if t == nil {
		return types.Void
	}

	return c.typeOf(t)
}

// resolveTypeQuiet resolves t without reporting diagnostics, for use while
// collecting member tables in Pass 1 — the same type node is resolved
// again, with diagnostics this time, when Pass 2 visits the owning
// declaration.
func (c *Checker) resolveTypeQuiet(t ast.TypeNode) types.Type {
	savedReporter, savedCount := c.reporter, c.errorCount
	c.reporter = discardReporter{}

	defer func() { c.reporter, c.errorCount = savedReporter, savedCount }()

	return c.resolveType(t)
}

func isErrType(t types.Type) bool { return t.Kind() == types.KindError }

// classShell is a type declaration collected in Pass 1, still awaiting
// member-table population.
type classShell struct {
	name string
	decl ast.Declaration
	nt   *types.NamedType
	kind shellKind
}

type shellKind int

const (
	shellClass shellKind = iota
	shellInterface
)

// Check runs both passes over prog and reports whether it completed
// without emitting any diagnostic and without any declaration resolving to
// the Error sentinel. Diagnostics reported from inside a function body do
// not change the body's declaration's resolved type, so the error count is
// consulted alongside the per-declaration results.
func (c *Checker) Check(prog *ast.Program) bool {
	success := true
	errorsBefore := c.errorCount

	var shells []classShell

	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			shells = append(shells, classShell{name: d.Name, decl: d, nt: types.NewNamedType(d.Name), kind: shellClass})
		case *ast.InterfaceDecl:
			shells = append(shells, classShell{name: d.Name, decl: d, nt: types.NewNamedType(d.Name), kind: shellInterface})
		case *ast.EnumDecl:
			nt := types.NewNamedType(d.Name)
			nt.IsEnum = true

			for _, m := range d.Members {
				nt.EnumVariants[m.Name] = true
			}

			shells = append(shells, classShell{name: d.Name, decl: d, nt: nt})
		}
	}

	for _, sh := range shells {
		if err := c.scope.DeclareType(sh.name, sh.nt); err != nil {
			c.error(sh.decl.GetSpan().Start, "sem008", "%s", err)

			success = false
		}
	}

	for _, sh := range shells {
		switch sh.kind {
		case shellClass:
			c.populateClassMembers(sh.decl.(*ast.ClassDecl), sh.nt)
		case shellInterface:
			c.populateInterfaceMethods(sh.decl.(*ast.InterfaceDecl), sh.nt)
		}
	}

	for _, decl := range prog.Declarations {
		if t := c.typeOf(decl); isErrType(t) {
			success = false
		}
	}

	return success && c.errorCount == errorsBefore
}

// populateClassMembers fills nt's Fields/Methods from d's member list so
// that member-access checking can resolve
// `object.member` without a second AST traversal. Type resolution here is
// quiet — Pass 2's VisitFieldDecl/VisitMethodDecl re-resolve the same
// nodes and report any diagnostic exactly once.
func (c *Checker) populateClassMembers(d *ast.ClassDecl, nt *types.NamedType) {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	for _, g := range d.Generics {
		c.scope.DeclareType(g.Name, types.NewNamedType(g.Name))
	}

	for _, m := range d.Members {
		switch member := m.(type) {
		case *ast.FieldDecl:
			nt.Fields[member.Name] = c.resolveTypeQuiet(member.Type)
		case *ast.MethodDecl:
			nt.Methods[member.Name] = c.signatureOf(member.Params, member.ReturnType)
		case *ast.PropertyDecl:
			if member.Kind == ast.PropertyGetter {
				ret := types.Type(types.Void)
				if member.ReturnType != nil {
					ret = c.resolveTypeQuiet(member.ReturnType)
				}

				nt.Fields[member.Name] = ret
			}
		}
	}
}

func (c *Checker) populateInterfaceMethods(d *ast.InterfaceDecl, nt *types.NamedType) {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	for _, g := range d.Generics {
		c.scope.DeclareType(g.Name, types.NewNamedType(g.Name))
	}

	for _, m := range d.Methods {
		nt.Methods[m.Name] = c.signatureOf(m.Params, m.ReturnType)
	}
}

func (c *Checker) signatureOf(params []*ast.Parameter, returnType ast.TypeNode) *types.FunctionType {
	paramTypes := make([]types.Type, len(params))
	for i, p := range params {
		paramTypes[i] = c.resolveTypeQuiet(p.Type)
	}

	ret := types.Type(types.Void)
	if returnType != nil {
		ret = c.resolveTypeQuiet(returnType)
	}

	return &types.FunctionType{Return: ret, Params: paramTypes}
}
