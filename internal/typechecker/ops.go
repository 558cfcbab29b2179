package typechecker

import (
	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/position"
	"github.com/theQuarky/tspp/internal/types"
)

// checkBinaryOp implements the per-category binary-operator rules:
// arithmetic on numerics (float if either operand is), `+` string
// concatenation when either side is a string, mutually-assignable
// comparison, boolean-convertible logical, and integer-only bitwise. Any
// operand already Err short-circuits to Err without a further diagnostic,
// so one bad sub-expression doesn't cascade into an unrelated-looking
// second error.
func (c *Checker) checkBinaryOp(op ast.BinaryOp, left, right types.Type, pos position.Position) types.Type {
	if isErrType(left) || isErrType(right) {
		return types.Err
	}

	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		if types.IsNumeric(left) && types.IsNumeric(right) {
			if left.Kind() == types.KindFloat || right.Kind() == types.KindFloat {
				return types.Float
			}

			return types.Int
		}

		if op == ast.OpAdd && (left.Kind() == types.KindString || right.Kind() == types.KindString) {
			return types.String
		}

		c.error(pos, "sem003", "invalid operands for arithmetic operator")

		return types.Err
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe, ast.OpEq, ast.OpNe:
		if types.IsAssignableTo(left, right) || types.IsAssignableTo(right, left) {
			return types.Bool
		}

		c.error(pos, "sem003", "cannot compare incompatible types %s and %s", left, right)

		return types.Err
	case ast.OpLogAnd, ast.OpLogOr:
		if types.IsImplicitlyConvertibleTo(left, types.Bool) && types.IsImplicitlyConvertibleTo(right, types.Bool) {
			return types.Bool
		}

		c.error(pos, "sem003", "logical operators require boolean-convertible operands")

		return types.Err
	case ast.OpBitAnd, ast.OpBitXor, ast.OpBitOr, ast.OpShl, ast.OpShr:
		if left.Kind() == types.KindInt && right.Kind() == types.KindInt {
			return types.Int
		}

		c.error(pos, "sem003", "bitwise operators require integer operands")

		return types.Err
	default:
		c.error(pos, "int001", "unhandled binary operator in type checking")

		return types.Err
	}
}

// checkUnaryOp implements the unary-operator rules. prefix is accepted for
// symmetry with the AST node but doesn't change any rule: prefix and
// postfix `++`/`--` share the same numeric-operand requirement.
func (c *Checker) checkUnaryOp(op ast.UnaryOp, operand types.Type, prefix bool, pos position.Position) types.Type {
	if isErrType(operand) {
		return types.Err
	}

	switch op {
	case ast.OpPlus, ast.OpMinus:
		if types.IsNumeric(operand) {
			return operand
		}

		c.error(pos, "sem003", "unary +/- requires a numeric operand")

		return types.Err
	case ast.OpNot:
		if types.IsImplicitlyConvertibleTo(operand, types.Bool) {
			return types.Bool
		}

		c.error(pos, "sem003", "logical not requires a boolean-convertible operand")

		return types.Err
	case ast.OpBitNot:
		if operand.Kind() == types.KindInt {
			return types.Int
		}

		c.error(pos, "sem003", "bitwise not requires an integer operand")

		return types.Err
	case ast.OpIncrement, ast.OpDecrement:
		if types.IsNumeric(operand) {
			return operand
		}

		c.error(pos, "sem003", "increment/decrement requires a numeric operand")

		return types.Err
	case ast.OpAddressOf:
		return &types.PointerType{Pointee: operand}
	default:
		c.error(pos, "int001", "unhandled unary operator in type checking")

		return types.Err
	}
}
