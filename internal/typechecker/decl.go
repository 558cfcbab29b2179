package typechecker

import (
	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/types"
)

// VisitVariableDecl implements the variable-declaration rule:
// the declared type wins when present, checked against the initializer,
// and the initializer's type is inferred when the declaration omits a
// type. A const with no initializer resolves to Err without a second
// diagnostic — the declaration parser already reported sem006 for it.
func (c *Checker) VisitVariableDecl(d *ast.VariableDecl) interface{} {
	if d.IsConst && d.Init == nil {
		return types.Err
	}

	var initType types.Type
	if d.Init != nil {
		initType = c.typeOf(d.Init)
	}

	var declaredType types.Type
	if d.Type != nil {
		declaredType = c.resolveType(d.Type)
	}

	var varType types.Type

	switch {
	case declaredType != nil:
		varType = declaredType

		if initType != nil && !types.IsAssignableTo(initType, declaredType) {
			c.error(d.Span.Start, "sem003", "initializer type %s is not assignable to declared type %s", initType, declaredType)

			return types.Err
		}
	case initType != nil:
		varType = initType
	default:
		c.error(d.Span.Start, "sem003", "variable %q needs a type annotation or an initializer", d.Name)

		return types.Err
	}

	if err := c.scope.DeclareVariable(d.Name, varType); err != nil {
		c.error(d.Span.Start, "sem008", "%s", err)
	}

	return varType
}

// VisitFunctionDecl opens a new scope for the body, installs parameters
// and generic placeholders, remembers the return type for nested return
// statements, and registers the function in the enclosing scope.
func (c *Checker) VisitFunctionDecl(d *ast.FunctionDecl) interface{} {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	returnType := types.Type(types.Void)
	if d.ReturnType != nil {
		returnType = c.resolveType(d.ReturnType)
	}

	prevReturn := c.currentFunctionReturn
	c.currentFunctionReturn = returnType

	defer func() { c.currentFunctionReturn = prevReturn }()

	genericNames := make(map[string]bool, len(d.Generics))

	for _, g := range d.Generics {
		genericNames[g.Name] = true

		c.scope.DeclareType(g.Name, types.NewNamedType(g.Name))
	}

	for _, constraint := range d.Constraints {
		if !genericNames[constraint.Param] {
			c.error(constraint.Span.Start, "sem002", "constraint on %q, which is not a generic parameter of %q", constraint.Param, d.Name)
		}
	}

	paramTypes := make([]types.Type, len(d.Params))

	for i, p := range d.Params {
		pt := c.checkParameter(p)
		paramTypes[i] = pt

		c.scope.DeclareVariable(p.Name, pt)
	}

	functionType := &types.FunctionType{Return: returnType, Params: paramTypes}

	if err := parent.DeclareFunction(d.Name, functionType); err != nil {
		c.error(d.Span.Start, "sem008", "%s", err)
	}

	if d.Body != nil {
		c.typeOf(d.Body)
	}

	return functionType
}

// VisitClassDecl re-enters the Named type Pass 1 registered (falling back
// to a fresh one only if lookup somehow fails), binds it as `this` for the
// member bodies, and checks every member.
func (c *Checker) VisitClassDecl(d *ast.ClassDecl) interface{} {
	named := c.lookupOwnNamedType(d.Name)

	prevClass := c.currentClass
	c.currentClass = named

	defer func() { c.currentClass = prevClass }()

	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	for _, g := range d.Generics {
		c.scope.DeclareType(g.Name, types.NewNamedType(g.Name))
	}

	for _, member := range d.Members {
		c.typeOf(member)
	}

	return named
}

func (c *Checker) lookupOwnNamedType(name string) *types.NamedType {
	if t, ok := c.scope.LookupType(name); ok {
		if named, ok := t.(*types.NamedType); ok {
			return named
		}
	}

	return types.NewNamedType(name)
}

// VisitConstructorDecl checks the constructor body with `this` bound to
// the enclosing class (constructor-argument checking against a call site
// is deliberately not performed anywhere in this package).
func (c *Checker) VisitConstructorDecl(d *ast.ConstructorDecl) interface{} {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	for _, p := range d.Params {
		c.scope.DeclareVariable(p.Name, c.checkParameter(p))
	}

	if d.Body != nil {
		c.typeOf(d.Body)
	}

	return types.Void
}

// checkParameter resolves a parameter's declared type and wraps it in a
// Reference for `ref` parameters. A `ref` parameter's declared type must
// not itself be a reference — references are implicit on ref
// parameters.
func (c *Checker) checkParameter(p *ast.Parameter) types.Type {
	pt := c.resolveType(p.Type)

	if p.IsRef {
		if pt.Kind() == types.KindReference {
			c.error(p.Span.Start, "sem003", "ref parameter %q must not declare a reference type", p.Name)

			return types.Err
		}

		pt = &types.ReferenceType{Pointee: pt}
	}

	return pt
}

func (c *Checker) VisitMethodDecl(d *ast.MethodDecl) interface{} {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	returnType := types.Type(types.Void)
	if d.ReturnType != nil {
		returnType = c.resolveType(d.ReturnType)
	}

	prevReturn := c.currentFunctionReturn
	c.currentFunctionReturn = returnType

	defer func() { c.currentFunctionReturn = prevReturn }()

	for _, g := range d.Generics {
		c.scope.DeclareType(g.Name, types.NewNamedType(g.Name))
	}

	for _, p := range d.Params {
		c.scope.DeclareVariable(p.Name, c.checkParameter(p))
	}

	if d.Body != nil {
		c.typeOf(d.Body)
	}

	return returnType
}

// VisitFieldDecl checks a field's initializer against its declared type.
// A const field with no initializer resolves to Err like a local variable
// does; the member parser already reported sem006 for it.
func (c *Checker) VisitFieldDecl(d *ast.FieldDecl) interface{} {
	declaredType := c.resolveType(d.Type)

	if d.Init == nil {
		if d.IsConst {
			return types.Err
		}

		return declaredType
	}

	initType := c.typeOf(d.Init)
	if !types.IsAssignableTo(initType, declaredType) {
		c.error(d.Span.Start, "sem003", "field initializer type %s is not assignable to %s", initType, declaredType)

		return types.Err
	}

	return declaredType
}

// VisitPropertyDecl checks a getter or setter body; a getter's declared
// return type (or Void if omitted) becomes the body's expected return
// type, a setter's single parameter is installed and its implicit return
// type is always Void.
func (c *Checker) VisitPropertyDecl(d *ast.PropertyDecl) interface{} {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	returnType := types.Type(types.Void)

	if d.Kind == ast.PropertyGetter {
		if d.ReturnType != nil {
			returnType = c.resolveType(d.ReturnType)
		}
	} else if d.Param != nil {
		pt := c.resolveType(d.Param.Type)
		c.scope.DeclareVariable(d.Param.Name, pt)
	} else {
		c.error(d.Span.Start, "sem004", "setter %q needs exactly one parameter", d.Name)
	}

	prevReturn := c.currentFunctionReturn
	c.currentFunctionReturn = returnType

	defer func() { c.currentFunctionReturn = prevReturn }()

	if d.Body != nil {
		c.typeOf(d.Body)
	}

	return returnType
}

// VisitEnumDecl re-enters the Named type Pass 1 registered and checks that
// any explicit member values are assignable to the enum's underlying type
// (Int by default).
func (c *Checker) VisitEnumDecl(d *ast.EnumDecl) interface{} {
	named := c.lookupOwnNamedType(d.Name)

	underlying := types.Type(types.Int)
	if d.Underlying != nil {
		underlying = c.resolveType(d.Underlying)
	}

	for _, m := range d.Members {
		if m.Value == nil {
			continue
		}

		vt := c.typeOf(m.Value)
		if !types.IsAssignableTo(vt, underlying) {
			c.error(m.Span.Start, "sem003", "enum member %q value is not assignable to %s", m.Name, underlying)
		}
	}

	return named
}

// VisitInterfaceDecl re-resolves every method signature's parameter and
// return types so undefined-type diagnostics surface here (Pass 1's
// collection is quiet), then returns the Named type Pass 1 registered.
func (c *Checker) VisitInterfaceDecl(d *ast.InterfaceDecl) interface{} {
	named := c.lookupOwnNamedType(d.Name)

	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	for _, g := range d.Generics {
		c.scope.DeclareType(g.Name, types.NewNamedType(g.Name))
	}

	for _, m := range d.Methods {
		for _, p := range m.Params {
			c.resolveType(p.Type)
		}

		if m.ReturnType != nil {
			c.resolveType(m.ReturnType)
		}
	}

	return named
}

func (c *Checker) VisitStatementDecl(d *ast.StatementDecl) interface{} {
	return c.typeOf(d.Stmt)
}
