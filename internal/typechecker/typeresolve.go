package typechecker

import (
	"strings"

	"github.com/theQuarky/tspp/internal/ast"
	"github.com/theQuarky/tspp/internal/types"
)

func (c *Checker) VisitPrimitiveType(t *ast.PrimitiveType) interface{} {
	switch t.Kind {
	case ast.PrimitiveVoid:
		return types.Void
	case ast.PrimitiveInt:
		return types.Int
	case ast.PrimitiveFloat:
		return types.Float
	case ast.PrimitiveBool:
		return types.Bool
	case ast.PrimitiveString:
		return types.String
	default:
		c.error(t.Span.Start, "sem002", "unknown primitive type")

		return types.Err
	}
}

func (c *Checker) VisitNamedType(t *ast.NamedType) interface{} {
	resolved, ok := c.scope.LookupType(t.Name)
	if !ok {
		c.error(t.Span.Start, "sem002", "undefined type: %s", t.Name)

		return types.Err
	}

	return resolved
}

// VisitQualifiedType looks the dotted path up as a single joined name —
// the lattice has no notion of namespacing beneath a Named type, so
// `Ns.Widget` is declared and looked up the same way `Widget` would be.
func (c *Checker) VisitQualifiedType(t *ast.QualifiedType) interface{} {
	name := strings.Join(t.Parts, ".")

	resolved, ok := c.scope.LookupType(name)
	if !ok {
		c.error(t.Span.Start, "sem002", "undefined type: %s", name)

		return types.Err
	}

	return resolved
}

func (c *Checker) VisitArrayType(t *ast.ArrayType) interface{} {
	elem := c.resolveType(t.Elem)

	if t.Size != nil {
		sizeType := c.typeOf(t.Size)
		if !types.IsAssignableTo(sizeType, types.Int) {
			c.error(t.Size.GetSpan().Start, "sem003", "array size must be an integer")
		}
	}

	return &types.ArrayType{Elem: elem}
}

func (c *Checker) VisitPointerType(t *ast.PointerType) interface{} {
	base := c.resolveType(t.Base)

	return &types.PointerType{Pointee: base, Unsafe: t.Kind == ast.PointerUnsafe}
}

func (c *Checker) VisitReferenceType(t *ast.ReferenceType) interface{} {
	return &types.ReferenceType{Pointee: c.resolveType(t.Base)}
}

func (c *Checker) VisitFunctionType(t *ast.FunctionType) interface{} {
	ret := c.resolveType(t.Return)

	params := make([]types.Type, len(t.Params))
	for i, p := range t.Params {
		params[i] = c.resolveType(p)
	}

	return &types.FunctionType{Return: ret, Params: params}
}

// VisitTemplateType requires the base to resolve to a Named type; a base
// that fails to resolve already reported sem002, so this
// only adds the template-specific diagnostic when the base resolved to
// something else entirely.
func (c *Checker) VisitTemplateType(t *ast.TemplateType) interface{} {
	base := c.resolveType(t.Base)

	args := make([]types.Type, len(t.Args))
	for i, a := range t.Args {
		args[i] = c.resolveType(a)
	}

	named, ok := base.(*types.NamedType)
	if !ok {
		if !isErrType(base) {
			c.error(t.Base.Span.Start, "sem002", "template base type must be a named type")
		}

		return types.Err
	}

	return &types.TemplateType{Name: named.Name, Args: args}
}

func (c *Checker) VisitSmartPointerType(t *ast.SmartPointerType) interface{} {
	pointee := c.resolveType(t.Pointee)

	var kind types.SmartKind

	switch t.Kind {
	case ast.SmartShared:
		kind = types.SmartShared
	case ast.SmartUnique:
		kind = types.SmartUnique
	case ast.SmartWeak:
		kind = types.SmartWeak
	default:
		c.error(t.Span.Start, "sem002", "unknown smart pointer kind")

		return types.Err
	}

	return &types.SmartType{Pointee: pointee, Kind_: kind}
}

func (c *Checker) VisitUnionType(t *ast.UnionType) interface{} {
	left := c.resolveType(t.Left)
	right := c.resolveType(t.Right)

	return &types.UnionType{A: left, B: right}
}
