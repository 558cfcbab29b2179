package typechecker

import (
	"strings"

	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/types"
)

// VisitLiteral assigns a resolved type by literal kind. Null and
// undefined have no dedicated lattice member; both resolve to Err, the
// lattice's universal neighbour, which lets them convert to and from any
// other type for free rather than adding two more Kind values for a
// front-end with no runtime to give them distinct representations.
func (c *Checker) VisitLiteral(e *ast.Literal) interface{} {
	switch e.Kind {
	case ast.LiteralNumber:
		if strings.Contains(e.Value, ".") {
			return types.Float
		}

		return types.Int
	case ast.LiteralString:
		return types.String
	case ast.LiteralChar:
		return types.Int
	case ast.LiteralTrue, ast.LiteralFalse:
		return types.Bool
	case ast.LiteralNull, ast.LiteralUndefined:
		return types.Err
	default:
		c.error(e.Span.Start, "int001", "unknown literal kind")

		return types.Err
	}
}

func (c *Checker) VisitIdentifier(e *ast.Identifier) interface{} {
	if t, ok := c.scope.LookupVariable(e.Name); ok {
		return t
	}

	if t, ok := c.scope.LookupFunction(e.Name); ok {
		return t
	}

	c.error(e.Span.Start, "sem001", "undefined identifier: %s", e.Name)

	return types.Err
}

// VisitThisExpr resolves `this` to the Named type of the class currently
// being checked; used outside any class body, it's an error.
func (c *Checker) VisitThisExpr(e *ast.ThisExpr) interface{} {
	if c.currentClass == nil {
		c.error(e.Span.Start, "sem001", "'this' used outside of a class")

		return types.Err
	}

	return c.currentClass
}

func (c *Checker) VisitBinaryExpr(e *ast.BinaryExpr) interface{} {
	leftType := c.typeOf(e.Left)
	rightType := c.typeOf(e.Right)

	return c.checkBinaryOp(e.Op, leftType, rightType, e.Span.Start)
}

func (c *Checker) VisitUnaryExpr(e *ast.UnaryExpr) interface{} {
	operandType := c.typeOf(e.Operand)

	return c.checkUnaryOp(e.Op, operandType, e.Prefix, e.Span.Start)
}

// VisitAssignmentExpr checks plain assignment for direct compatibility,
// and compound assignment (+=, etc.) by applying the corresponding binary
// operator and checking that its result is assignable back to the
// target.
func (c *Checker) VisitAssignmentExpr(e *ast.AssignmentExpr) interface{} {
	targetType := c.typeOf(e.Target)
	valueType := c.typeOf(e.Value)

	if e.Op == ast.AssignPlain {
		if !types.IsAssignableTo(valueType, targetType) {
			c.error(e.Span.Start, "sem003", "cannot assign %s to %s", valueType, targetType)

			return types.Err
		}

		return targetType
	}

	binOp, _ := e.Op.BinaryOpFor()

	resultType := c.checkBinaryOp(binOp, targetType, valueType, e.Span.Start)
	if !types.IsAssignableTo(resultType, targetType) {
		c.error(e.Span.Start, "sem003", "result of compound assignment is not assignable to %s", targetType)

		return types.Err
	}

	return targetType
}

func (c *Checker) VisitCallExpr(e *ast.CallExpr) interface{} {
	calleeType := c.typeOf(e.Callee)

	ft, ok := calleeType.(*types.FunctionType)
	if !ok {
		if !isErrType(calleeType) {
			c.error(e.Callee.GetSpan().Start, "sem003", "cannot call non-function type %s", calleeType)
		}

		return types.Err
	}

	if len(ft.Params) != len(e.Args) {
		c.error(e.Span.Start, "sem004", "wrong number of arguments: want %d, got %d", len(ft.Params), len(e.Args))

		return types.Err
	}

	for i, arg := range e.Args {
		argType := c.typeOf(arg)
		if !types.IsAssignableTo(argType, ft.Params[i]) {
			c.error(arg.GetSpan().Start, "sem003", "argument %d type %s doesn't match parameter type %s", i+1, argType, ft.Params[i])
		}
	}

	return ft.Return
}

// VisitMemberExpr resolves `object.member` (or `object@member` when
// ViaPointer unwraps a pointer/smart-pointer operand first) by looking the
// member up on the object's Named type's field/method/enum-variant table.
func (c *Checker) VisitMemberExpr(e *ast.MemberExpr) interface{} {
	objectType := c.typeOf(e.Object)

	target := objectType

	if e.ViaPointer {
		switch pt := objectType.(type) {
		case *types.PointerType:
			target = pt.Pointee
		case *types.SmartType:
			target = pt.Pointee
		default:
			if !isErrType(objectType) {
				c.error(e.Span.Start, "sem003", "'@' member access requires a pointer or smart-pointer operand, got %s", objectType)
			}

			return types.Err
		}
	}

	named, ok := target.(*types.NamedType)
	if !ok {
		if !isErrType(target) {
			c.error(e.Span.Start, "sem001", "type %s has no members", target)
		}

		return types.Err
	}

	memberType, ok := named.Member(e.Member)
	if !ok {
		c.error(e.Span.Start, "sem001", "undefined member %q on %s", e.Member, named.Name)

		return types.Err
	}

	return memberType
}

func (c *Checker) VisitIndexExpr(e *ast.IndexExpr) interface{} {
	arrayType := c.typeOf(e.Array)
	indexType := c.typeOf(e.Index)

	arr, ok := arrayType.(*types.ArrayType)
	if !ok {
		if !isErrType(arrayType) {
			c.error(e.Array.GetSpan().Start, "sem003", "cannot index non-array type %s", arrayType)
		}

		return types.Err
	}

	if !types.IsAssignableTo(indexType, types.Int) {
		c.error(e.Index.GetSpan().Start, "sem003", "array index must be an integer")
	}

	return arr.Elem
}

// VisitNewExpr resolves the constructed class's Named type; constructor
// argument checking against a declared constructor signature is
// deliberately not performed here. Argument expressions are still visited
// so any errors inside them are reported.
func (c *Checker) VisitNewExpr(e *ast.NewExpr) interface{} {
	classType, ok := c.scope.LookupType(e.ClassName)
	if !ok {
		c.error(e.Span.Start, "sem002", "undefined class: %s", e.ClassName)

		classType = types.Err
	}

	for _, arg := range e.Args {
		c.typeOf(arg)
	}

	return classType
}

func (c *Checker) VisitCastExpr(e *ast.CastExpr) interface{} {
	exprType := c.typeOf(e.Expr)
	targetType := c.resolveType(e.TargetType)

	if !types.IsExplicitlyConvertibleTo(exprType, targetType) {
		c.error(e.Span.Start, "sem005", "cannot cast %s to %s", exprType, targetType)

		return types.Err
	}

	return targetType
}

// VisitArrayLiteral infers the element type from the first element and
// checks the rest are compatible with it. An empty literal has no element
// to infer from and is an error, with no enclosing-annotation fallback.
func (c *Checker) VisitArrayLiteral(e *ast.ArrayLiteral) interface{} {
	if len(e.Elements) == 0 {
		c.error(e.Span.Start, "sem003", "cannot determine type of empty array literal")

		return types.Err
	}

	elementType := c.typeOf(e.Elements[0])

	for _, el := range e.Elements[1:] {
		nextType := c.typeOf(el)
		if !types.IsAssignableTo(nextType, elementType) {
			c.error(el.GetSpan().Start, "sem003", "array elements must have compatible types")

			return types.Err
		}
	}

	return &types.ArrayType{Elem: elementType}
}

func (c *Checker) VisitConditionalExpr(e *ast.ConditionalExpr) interface{} {
	c.checkCondition(e.Cond, "conditional")

	thenType := c.typeOf(e.Then)
	elseType := c.typeOf(e.Else)

	switch {
	case types.IsAssignableTo(elseType, thenType):
		return thenType
	case types.IsAssignableTo(thenType, elseType):
		return elseType
	default:
		c.error(e.Span.Start, "sem003", "conditional expression branches have incompatible types %s and %s", thenType, elseType)

		return types.Err
	}
}

// VisitCompileTimeExpr handles sizeof/alignof (always Int-valued),
// typeof (the operand's own resolved type, reused as a value), and
// constexpr (passes through the operand's type unchanged).
func (c *Checker) VisitCompileTimeExpr(e *ast.CompileTimeExpr) interface{} {
	operandType := c.typeOf(e.Operand)

	switch e.Kind {
	case ast.CompileTimeSizeof, ast.CompileTimeAlignof:
		return types.Int
	case ast.CompileTimeTypeof, ast.CompileTimeConstexpr:
		return operandType
	default:
		c.error(e.Span.Start, "int001", "unknown compile-time operator")

		return types.Err
	}
}
