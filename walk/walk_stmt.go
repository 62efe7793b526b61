package walk

import (
	"cflatc/ir"
	"cflatc/report"
)

// checkBlock checks the statements of a block in program order.
func (w *Walker) checkBlock(b *ir.Block) {
	for _, stmt := range b.Stmts {
		w.checkStmt(stmt)
	}
}

// checkStmt checks a single statement.
func (w *Walker) checkStmt(stmt ir.Statement) {
	switch v := stmt.(type) {
	case *ir.AssignStmt:
		w.checkAssign(v)
	case *ir.DerefAssignStmt:
		w.checkDerefAssign(v)
	case *ir.FieldAssignStmt:
		w.checkFieldAssign(v)
	case *ir.DoStmt:
		w.exprType(v.Expr)
	case *ir.BlockStmt:
		w.checkBlock(v.Block)
	case *ir.IfStmt:
		condTy := w.exprType(v.Cond)
		if !isUndeclared(condTy) && !ir.Equals(condTy, ir.PrimBool) {
			w.error(report.TypeMismatch, v.Cond.Span(),
				"condition must be bool, not %s", condTy.Repr())
		}

		w.checkBlock(v.Then)
		if v.Else != nil {
			w.checkBlock(v.Else)
		}
	case *ir.LoopStmt:
		w.loopDepth++
		w.checkBlock(v.Body)
		w.loopDepth--
	default:
		report.ReportICE("unknown statement %T", stmt)
	}
}

// checkAssign checks a variable assignment.  A variable still holding the
// undeclared placeholder takes the type of its first assignment; afterwards
// every assignment must be assignable into the stored type.
func (w *Walker) checkAssign(as *ir.AssignStmt) {
	exprTy := w.exprType(as.Expr)
	varTy := w.fn.VarType(as.Var)

	if isUndeclared(varTy) {
		// The uninit marker carries no type information to infer from, and an
		// undeclared expression type means the expression already failed.
		switch exprTy.(type) {
		case ir.UndeclaredType, ir.UninitType:
			return
		}

		w.fn.SetVarType(as.Var, exprTy)
		return
	}

	if !ir.Assignable(exprTy, varTy) {
		w.error(report.TypeMismatch, as.Expr.Span(),
			"cannot assign %s to a variable of type %s", exprTy.Repr(), varTy.Repr())
	}
}

// checkDerefAssign checks an assignment through a pointer.
func (w *Walker) checkDerefAssign(das *ir.DerefAssignStmt) {
	targetTy := w.exprType(das.Target)
	valueTy := w.exprType(das.Value)

	if isUndeclared(targetTy) {
		return
	}

	pt, ok := targetTy.(ir.PtrType)
	if !ok {
		w.error(report.NotAPointer, das.Target.Span(),
			"cannot assign through a value of non-pointer type %s", targetTy.Repr())
		return
	}

	if !ir.Assignable(valueTy, pt.Elem) {
		w.error(report.TypeMismatch, das.Value.Span(),
			"cannot assign %s to a location of type %s", valueTy.Repr(), pt.Elem.Repr())
	}
}

// checkFieldAssign checks an assignment into a struct field.
func (w *Walker) checkFieldAssign(fas *ir.FieldAssignStmt) {
	objTy := w.exprType(fas.Object)
	valueTy := w.exprType(fas.Value)

	if isUndeclared(objTy) {
		return
	}

	st, ok := w.structOf(objTy)
	if !ok {
		w.error(report.NotAStruct, fas.Object.Span(),
			"cannot assign to a field of non-struct type %s", objTy.Repr())
		return
	}

	field, ok := st.FieldByName(fas.Field)
	if !ok {
		w.error(report.UnknownField, fas.Span(),
			"type %s has no field `%s`", objTy.Repr(), fas.Field)
		return
	}

	if !ir.Assignable(valueTy, field.Type) {
		w.error(report.TypeMismatch, fas.Value.Span(),
			"cannot assign %s to field `%s` of type %s", valueTy.Repr(), fas.Field, field.Type.Repr())
	}
}
