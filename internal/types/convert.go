package types

// Equals is structural, recursive, and kind-sensitive equality between two
// resolved types. Union equivalence is order-insensitive.
func Equals(a, b Type) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindVoid, KindInt, KindFloat, KindBool, KindString, KindError:
		return true
	case KindNamed:
		return a.(*NamedType).Name == b.(*NamedType).Name
	case KindArray:
		return Equals(a.(*ArrayType).Elem, b.(*ArrayType).Elem)
	case KindPointer:
		pa, pb := a.(*PointerType), b.(*PointerType)

		return pa.Unsafe == pb.Unsafe && Equals(pa.Pointee, pb.Pointee)
	case KindReference:
		return Equals(a.(*ReferenceType).Pointee, b.(*ReferenceType).Pointee)
	case KindFunction:
		fa, fb := a.(*FunctionType), b.(*FunctionType)
		if len(fa.Params) != len(fb.Params) || !Equals(fa.Return, fb.Return) {
			return false
		}

		for i := range fa.Params {
			if !Equals(fa.Params[i], fb.Params[i]) {
				return false
			}
		}

		return true
	case KindUnion:
		ua, ub := a.(*UnionType), b.(*UnionType)

		return (Equals(ua.A, ub.A) && Equals(ua.B, ub.B)) || (Equals(ua.A, ub.B) && Equals(ua.B, ub.A))
	case KindSmart:
		sa, sb := a.(*SmartType), b.(*SmartType)

		return sa.Kind_ == sb.Kind_ && Equals(sa.Pointee, sb.Pointee)
	case KindTemplate:
		ta, tb := a.(*TemplateType), b.(*TemplateType)
		if ta.Name != tb.Name || len(ta.Args) != len(tb.Args) {
			return false
		}

		for i := range ta.Args {
			if !Equals(ta.Args[i], tb.Args[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func isError(t Type) bool { return t.Kind() == KindError }

// IsAssignableTo is structural, covariant for function-return, invariant
// for parameters; Error is assignable to and from everything.
func IsAssignableTo(from, to Type) bool {
	if isError(from) || isError(to) {
		return true
	}

	if from.Kind() == KindFunction && to.Kind() == KindFunction {
		ff, ft := from.(*FunctionType), to.(*FunctionType)
		if len(ff.Params) != len(ft.Params) {
			return false
		}

		for i := range ff.Params {
			if !Equals(ff.Params[i], ft.Params[i]) {
				return false
			}
		}

		return IsAssignableTo(ff.Return, ft.Return) // covariant return
	}

	return Equals(from, to)
}

// IsImplicitlyConvertibleTo covers numeric widening, reference dereference,
// and Named-to-itself.
func IsImplicitlyConvertibleTo(from, to Type) bool {
	if isError(from) || isError(to) {
		return true
	}

	if Equals(from, to) {
		return true
	}

	if from.Kind() == KindInt && to.Kind() == KindFloat {
		return true
	}

	if from.Kind() == KindReference {
		return IsImplicitlyConvertibleTo(from.(*ReferenceType).Pointee, to)
	}

	if from.Kind() == KindNamed && to.Kind() == KindNamed {
		return from.(*NamedType).Name == to.(*NamedType).Name
	}

	return false
}

// IsExplicitlyConvertibleTo allows narrowing, numeric<->bool, and
// compatible pointer casts.
func IsExplicitlyConvertibleTo(from, to Type) bool {
	if isError(from) || isError(to) {
		return true
	}

	if IsImplicitlyConvertibleTo(from, to) {
		return true
	}

	if from.Kind() == KindFloat && to.Kind() == KindInt {
		return true
	}

	if (IsNumeric(from) && to.Kind() == KindBool) || (from.Kind() == KindBool && IsNumeric(to)) {
		return true
	}

	if from.Kind() == KindPointer && to.Kind() == KindPointer {
		fp, tp := from.(*PointerType), to.(*PointerType)

		return Equals(fp.Pointee, tp.Pointee)
	}

	return false
}
