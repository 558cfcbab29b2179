package typechecker

import (
	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/types"
)

func (c *Checker) VisitBlockStmt(s *ast.BlockStmt) interface{} {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	for _, stmt := range s.Statements {
		c.typeOf(stmt)
	}

	return types.Void
}

func (c *Checker) VisitExpressionStmt(s *ast.ExpressionStmt) interface{} {
	c.typeOf(s.Expr)

	return types.Void
}

// checkCondition reports sem007 when cond's type isn't implicitly
// convertible to Bool.
func (c *Checker) checkCondition(cond ast.Expression, context string) {
	condType := c.typeOf(cond)
	if !types.IsImplicitlyConvertibleTo(condType, types.Bool) {
		c.error(cond.GetSpan().Start, "sem007", "%s condition must be convertible to bool", context)
	}
}

func (c *Checker) VisitIfStmt(s *ast.IfStmt) interface{} {
	c.checkCondition(s.Cond, "if")
	c.typeOf(s.Then)

	if s.Else != nil {
		c.typeOf(s.Else)
	}

	return types.Void
}

func (c *Checker) VisitWhileStmt(s *ast.WhileStmt) interface{} {
	c.checkCondition(s.Cond, "while")
	c.typeOf(s.Body)

	return types.Void
}

func (c *Checker) VisitDoWhileStmt(s *ast.DoWhileStmt) interface{} {
	c.typeOf(s.Body)
	c.checkCondition(s.Cond, "do-while")

	return types.Void
}

func (c *Checker) VisitForStmt(s *ast.ForStmt) interface{} {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	if s.Init != nil {
		c.typeOf(s.Init)
	}

	if s.Cond != nil {
		c.checkCondition(s.Cond, "for")
	}

	if s.Inc != nil {
		c.typeOf(s.Inc)
	}

	c.typeOf(s.Body)

	return types.Void
}

// VisitForOfStmt declares the loop variable as the iterable's element
// type when the iterable resolves to an Array; any other iterable shape
// is deliberately left unconstrained for now.
func (c *Checker) VisitForOfStmt(s *ast.ForOfStmt) interface{} {
	parent := c.scope
	c.scope = parent.CreateChild()

	defer func() { c.scope = parent }()

	iterableType := c.typeOf(s.Iterable)

	elemType := types.Type(types.Err)
	if arr, ok := iterableType.(*types.ArrayType); ok {
		elemType = arr.Elem
	}

	c.scope.DeclareVariable(s.Name, elemType)

	c.typeOf(s.Body)

	return types.Void
}

// VisitReturnStmt checks the returned value's type against the enclosing
// function's declared return type; a bare `return;` is checked as Void,
// so it's only valid inside a Void-returning function.
func (c *Checker) VisitReturnStmt(s *ast.ReturnStmt) interface{} {
	returnedType := types.Type(types.Void)
	if s.Value != nil {
		returnedType = c.typeOf(s.Value)
	}

	if !types.IsAssignableTo(returnedType, c.currentFunctionReturn) {
		c.error(s.Span.Start, "sem003", "return value type %s doesn't match function return type %s", returnedType, c.currentFunctionReturn)
	}

	return types.Void
}

func (c *Checker) VisitBreakStmt(s *ast.BreakStmt) interface{} {
	return types.Void
}

func (c *Checker) VisitContinueStmt(s *ast.ContinueStmt) interface{} {
	return types.Void
}

func (c *Checker) VisitSwitchStmt(s *ast.SwitchStmt) interface{} {
	exprType := c.typeOf(s.Expr)

	for _, kase := range s.Cases {
		if kase.Value != nil {
			caseType := c.typeOf(kase.Value)
			if !types.IsAssignableTo(caseType, exprType) {
				c.error(kase.Value.GetSpan().Start, "sem003", "case value type %s doesn't match switch expression type %s", caseType, exprType)
			}
		}

		parent := c.scope
		c.scope = parent.CreateChild()

		for _, stmt := range kase.Body {
			c.typeOf(stmt)
		}

		c.scope = parent
	}

	return types.Void
}

// VisitTryStmt checks the body and each catch clause in its own scope,
// with the caught parameter bound to its declared type (or Err, the
// lattice's universal neighbour, when the catch omits a type). The parser
// already enforces the at-least-one-handler invariant.
func (c *Checker) VisitTryStmt(s *ast.TryStmt) interface{} {
	c.typeOf(s.Body)

	for _, clause := range s.Catches {
		parent := c.scope
		c.scope = parent.CreateChild()

		paramType := types.Type(types.Err)
		if clause.ParamType != nil {
			paramType = c.resolveType(clause.ParamType)
		}

		c.scope.DeclareVariable(clause.Param, paramType)

		c.typeOf(clause.Body)

		c.scope = parent
	}

	if s.Finally != nil {
		c.typeOf(s.Finally)
	}

	return types.Void
}

func (c *Checker) VisitThrowStmt(s *ast.ThrowStmt) interface{} {
	c.typeOf(s.Value)

	return types.Void
}

func (c *Checker) VisitAssemblyStmt(s *ast.AssemblyStmt) interface{} {
	return types.Void
}

func (c *Checker) VisitLabeledStmt(s *ast.LabeledStmt) interface{} {
	return c.typeOf(s.Stmt)
}

func (c *Checker) VisitDeclarationStmt(s *ast.DeclarationStmt) interface{} {
	return c.typeOf(s.Decl)
}
