package walk

import (
	"cflatc/ir"
	"cflatc/report"
)

// exprType checks an expression and returns its type.  When a rule fails, the
// error is recorded and the undeclared placeholder is returned so enclosing
// checks suppress instead of cascading.
func (w *Walker) exprType(expr ir.Expr) ir.Type {
	switch v := expr.(type) {
	case *ir.ValueExpr:
		return w.valueType(v.Value)
	case *ir.FieldAccessExpr:
		return w.fieldAccessType(v)
	case *ir.PathAccessExpr:
		return w.pathAccessType(v)
	case *ir.CallExpr:
		return w.callType(v)
	case *ir.ReturnExpr:
		w.checkReturn(v)
		return ir.NeverType{}
	case *ir.BreakExpr:
		if w.loopDepth == 0 {
			w.error(report.IllegalBreakOrContinue, v.Span(), "break used outside of a loop")
		}

		return ir.NeverType{}
	case *ir.ContinueExpr:
		if w.loopDepth == 0 {
			w.error(report.IllegalBreakOrContinue, v.Span(), "continue used outside of a loop")
		}

		return ir.NeverType{}
	case *ir.BinaryExpr:
		return w.binaryType(v)
	case *ir.UnaryExpr:
		return w.unaryType(v)
	default:
		report.ReportICE("unknown expression %T", expr)
		return nil
	}
}

// valueType returns the type of an atomic operand.
func (w *Walker) valueType(value ir.Value) ir.Type {
	switch v := value.(type) {
	case *ir.VarValue:
		return w.fn.VarType(v.Var)
	case *ir.NumValue:
		return ir.PrimI32
	case *ir.LitValue:
		return ir.SliceType{Elem: ir.PrimU8}
	case *ir.UninitValue:
		return ir.UninitType{}
	case *ir.UnitValue:
		return ir.UnitType{}
	default:
		report.ReportICE("unknown value %T", value)
		return nil
	}
}

/* -------------------------------------------------------------------------- */

func (w *Walker) fieldAccessType(fa *ir.FieldAccessExpr) ir.Type {
	objTy := w.valueType(fa.Object)
	if isUndeclared(objTy) {
		return ir.UndeclaredType{}
	}

	st, ok := w.structOf(objTy)
	if !ok {
		w.error(report.NotAStruct, fa.Object.Span(),
			"cannot access a field of non-struct type %s", objTy.Repr())
		return ir.UndeclaredType{}
	}

	field, ok := st.FieldByName(fa.Field)
	if !ok {
		w.error(report.UnknownField, fa.Span(),
			"type %s has no field `%s`", objTy.Repr(), fa.Field)
		return ir.UndeclaredType{}
	}

	return field.Type
}

func (w *Walker) pathAccessType(pa *ir.PathAccessExpr) ir.Type {
	def, key := w.namedDef(pa.Type)

	et, ok := def.(*ir.EnumType)
	if !ok {
		w.error(report.UnknownField, pa.Span(),
			"type %s has no member `%s`", w.prog.TypeName(pa.Type), pa.Member)
		return ir.UndeclaredType{}
	}

	if _, ok := et.VariantByName(pa.Member); !ok {
		w.error(report.UnknownField, pa.Span(),
			"enum %s has no variant named `%s`", w.prog.TypeName(pa.Type), pa.Member)
		return ir.UndeclaredType{}
	}

	return ir.DirectRef{Key: key, Name: w.prog.TypeName(key)}
}

func (w *Walker) callType(call *ir.CallExpr) ir.Type {
	decl := w.prog.Decl(call.Func)

	// Parameter slots no argument bound to are nil: they count against the
	// arity but carry nothing to check.
	provided := 0
	for _, arg := range call.Args {
		if arg != nil {
			provided++
		}
	}

	if provided != len(decl.Params) {
		w.error(report.ArityMismatch, call.Span(),
			"function `%s` expects %d arguments but received %d",
			w.prog.FuncName(call.Func), len(decl.Params), provided)
	}

	// Check the argument pairs that do line up even when the arity is off.
	n := len(call.Args)
	if len(decl.Params) < n {
		n = len(decl.Params)
	}

	for i := 0; i < n; i++ {
		if call.Args[i] == nil {
			continue
		}

		argTy := w.valueType(call.Args[i])

		if !ir.Assignable(argTy, decl.Params[i].Type) {
			w.error(report.TypeMismatch, call.Args[i].Span(),
				"cannot pass %s as parameter `%s` of type %s",
				argTy.Repr(), decl.Params[i].Name, decl.Params[i].Type.Repr())
		}
	}

	return decl.Ret
}

func (w *Walker) checkReturn(ret *ir.ReturnExpr) {
	if ret.Value == nil {
		if !ir.Equals(w.enclosingReturnType, ir.UnitType{}) {
			w.error(report.MissingReturnValue, ret.Span(),
				"return requires a value of type %s", w.enclosingReturnType.Repr())
		}

		return
	}

	valueTy := w.valueType(ret.Value)
	if !ir.Assignable(valueTy, w.enclosingReturnType) {
		w.error(report.TypeMismatch, ret.Value.Span(),
			"cannot return %s from a function returning %s",
			valueTy.Repr(), w.enclosingReturnType.Repr())
	}
}

/* -------------------------------------------------------------------------- */

func (w *Walker) binaryType(bin *ir.BinaryExpr) ir.Type {
	lhsTy := w.valueType(bin.Lhs)
	rhsTy := w.valueType(bin.Rhs)

	if isUndeclared(lhsTy) || isUndeclared(rhsTy) {
		return ir.UndeclaredType{}
	}

	lhs, lhsPrim := lhsTy.(ir.PrimitiveType)
	_, rhsPrim := rhsTy.(ir.PrimitiveType)
	samePrim := lhsPrim && rhsPrim && ir.Equals(lhsTy, rhsTy)

	switch {
	case bin.Op.IsArithmetic():
		if samePrim && lhs.IsNumeric() {
			return lhs
		}
	case bin.Op.IsLogic():
		if samePrim && lhs == ir.PrimBool {
			return ir.PrimBool
		}
	case bin.Op.IsBitwise():
		if samePrim && lhs.IsIntegral() {
			return lhs
		}
	case bin.Op.IsComparison():
		if samePrim {
			return ir.PrimBool
		}
	default:
		report.ReportICE("unknown binary operator %d", bin.Op)
	}

	w.error(report.TypeMismatch, bin.Span(),
		"operator %s is not defined between %s and %s",
		bin.Op, lhsTy.Repr(), rhsTy.Repr())
	return ir.UndeclaredType{}
}

func (w *Walker) unaryType(un *ir.UnaryExpr) ir.Type {
	operandTy := w.valueType(un.Operand)
	if isUndeclared(operandTy) {
		return ir.UndeclaredType{}
	}

	switch un.Op {
	case ir.OpAddressOf:
		// Only named storage has an address.  Literals are not storage, and
		// neither are the temporaries minted for flattened subexpressions.
		vv, ok := un.Operand.(*ir.VarValue)
		if !ok || w.fn.Var(vv.Var).Name == "" {
			w.error(report.AddressOfNonLvalue, un.Span(),
				"cannot take the address of a value of type %s", operandTy.Repr())
			return ir.UndeclaredType{}
		}

		return ir.PtrType{Elem: operandTy}
	case ir.OpDeref:
		pt, ok := operandTy.(ir.PtrType)
		if !ok {
			w.error(report.NotAPointer, un.Span(),
				"cannot dereference a value of non-pointer type %s", operandTy.Repr())
			return ir.UndeclaredType{}
		}

		return pt.Elem
	case ir.OpNegate:
		if prim, ok := operandTy.(ir.PrimitiveType); ok && prim.IsNumeric() {
			return prim
		}
	case ir.OpNot:
		if ir.Equals(operandTy, ir.PrimBool) {
			return ir.PrimBool
		}
	default:
		report.ReportICE("unknown unary operator %d", un.Op)
	}

	w.error(report.TypeMismatch, un.Span(),
		"operator %s is not defined on %s", un.Op, operandTy.Repr())
	return ir.UndeclaredType{}
}

/* -------------------------------------------------------------------------- */

// structOf resolves a type to its struct definition if it has one, looking
// through a single pointer level and any chain of aliases.
func (w *Walker) structOf(ty ir.Type) (*ir.StructType, bool) {
	if pt, ok := ty.(ir.PtrType); ok {
		ty = pt.Elem
	}

	dr, ok := ty.(ir.DirectRef)
	if !ok {
		return nil, false
	}

	def, _ := w.namedDef(dr.Key)
	st, ok := def.(*ir.StructType)
	return st, ok
}

// namedDef follows a nominal type key through any chain of aliases to the
// underlying definition, returning it with the key it was reached by.
func (w *Walker) namedDef(key ir.TypeKey) (ir.DirectType, ir.TypeKey) {
	for {
		def := w.prog.TypeDef(key)

		al, ok := def.(*ir.AliasType)
		if !ok {
			return def, key
		}

		inner, ok := al.Type.(ir.DirectRef)
		if !ok {
			return def, key
		}

		key = inner.Key
	}
}
