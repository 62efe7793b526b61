package lower

import (
	"cflatc/ast"
	"cflatc/ir"
	"cflatc/report"
)

// binaryOps maps binary operator tokens 1:1 onto IR operators.
var binaryOps = map[ast.BinOpKind]ir.BinaryOp{
	ast.BinAdd:      ir.OpAdd,
	ast.BinSub:      ir.OpSub,
	ast.BinMul:      ir.OpMul,
	ast.BinDiv:      ir.OpDiv,
	ast.BinMod:      ir.OpMod,
	ast.BinLogicAnd: ir.OpLogicAnd,
	ast.BinLogicOr:  ir.OpLogicOr,
	ast.BinLogicXor: ir.OpLogicXor,
	ast.BinAnd:      ir.OpAnd,
	ast.BinOr:       ir.OpOr,
	ast.BinXor:      ir.OpXor,
	ast.BinEq:       ir.OpEq,
	ast.BinNe:       ir.OpNe,
	ast.BinGt:       ir.OpGt,
	ast.BinGe:       ir.OpGe,
	ast.BinLt:       ir.OpLt,
	ast.BinLe:       ir.OpLe,
}

// unaryOps maps unary operator tokens 1:1 onto IR operators.
var unaryOps = map[ast.UnaryOpKind]ir.UnaryOp{
	ast.UnaryAddressOf: ir.OpAddressOf,
	ast.UnaryDeref:     ir.OpDeref,
	ast.UnaryNegate:    ir.OpNegate,
	ast.UnaryNot:       ir.OpNot,
}

// lowerExpr lowers an expression node into an IR expression.
func (l *Lowerer) lowerExpr(expr ast.Expr) ir.Expr {
	switch v := expr.(type) {
	case *ast.FieldAccessExpr:
		return &ir.FieldAccessExpr{
			ExprBase: ir.NewExprBase(v.Span()),
			Object:   l.lowerValue(v.Object),
			Field:    v.Field,
		}
	case *ast.PathExpr:
		tk, ok := l.prog.LookupType(v.TypeName)
		if !ok {
			l.error(report.UnknownType, v.Span(), "undeclared type: `%s`", v.TypeName)
			return errorExpr(v.Span())
		}

		return &ir.PathAccessExpr{ExprBase: ir.NewExprBase(v.Span()), Type: tk, Member: v.Member}
	case *ast.CallExpr:
		return l.lowerCall(v)
	case *ast.ReturnExpr:
		ret := &ir.ReturnExpr{ExprBase: ir.NewExprBase(v.Span())}
		if v.Value != nil {
			ret.Value = l.lowerValue(v.Value)
		}

		return ret
	case *ast.BreakExpr:
		return &ir.BreakExpr{ExprBase: ir.NewExprBase(v.Span())}
	case *ast.ContinueExpr:
		return &ir.ContinueExpr{ExprBase: ir.NewExprBase(v.Span())}
	case *ast.BinaryExpr:
		return &ir.BinaryExpr{
			ExprBase: ir.NewExprBase(v.Span()),
			Lhs:      l.lowerValue(v.Lhs),
			Op:       binaryOps[v.Op],
			Rhs:      l.lowerValue(v.Rhs),
		}
	case *ast.UnaryExpr:
		return &ir.UnaryExpr{
			ExprBase: ir.NewExprBase(v.Span()),
			Op:       unaryOps[v.Op],
			Operand:  l.lowerValue(v.Operand),
		}
	default:
		return l.lowerValue(expr).Expr()
	}
}

// lowerValue lowers an expression into an atomic operand.  Atomic nodes lower
// directly; anything compound is flattened through a fresh compiler temporary
// whose type is inferred from its single assignment.
func (l *Lowerer) lowerValue(expr ast.Expr) ir.Value {
	switch v := expr.(type) {
	case *ast.Identifier:
		vk, ok := l.lookup(v.Name)
		if !ok {
			l.error(report.UnknownVariable, v.Span(), "undeclared variable: `%s`", v.Name)
			return &ir.UnitValue{ValueBase: ir.NewValueBase(v.Span())}
		}

		return &ir.VarValue{ValueBase: ir.NewValueBase(v.Span()), Var: vk}
	case *ast.NumberLit:
		return &ir.NumValue{ValueBase: ir.NewValueBase(v.Span()), Value: v.Value}
	case *ast.StringLit:
		return &ir.LitValue{ValueBase: ir.NewValueBase(v.Span()), Lit: l.prog.InternLiteral(v.Value)}
	case *ast.UninitLit:
		return &ir.UninitValue{ValueBase: ir.NewValueBase(v.Span())}
	case *ast.UnitLit:
		return &ir.UnitValue{ValueBase: ir.NewValueBase(v.Span())}
	default:
		tmp := l.fn.NewVar(ir.UndeclaredType{}, "", expr.Span())
		l.emit(&ir.AssignStmt{StmtBase: ir.NewStmtBase(expr.Span()), Var: tmp, Expr: l.lowerExpr(expr)})

		return &ir.VarValue{ValueBase: ir.NewValueBase(expr.Span()), Var: tmp}
	}
}

// lowerCall lowers a call site, binding any named arguments to their declared
// parameter positions.  The binding decision is fixed here: type resolution
// checks purely by position.
func (l *Lowerer) lowerCall(call *ast.CallExpr) ir.Expr {
	fk, ok := l.prog.LookupFunction(call.Func)
	if !ok {
		l.error(report.UnknownFunction, call.Span(), "undeclared function: `%s`", call.Func)
		return errorExpr(call.Span())
	}

	decl := l.prog.Decl(fk)

	named := false
	for _, arg := range call.Args {
		if arg.Name != "" {
			named = true
			break
		}
	}

	var args []ir.Value
	if !named {
		args = make([]ir.Value, len(call.Args))
		for i, arg := range call.Args {
			args[i] = l.lowerValue(arg.Value)
		}
	} else {
		args = l.bindNamedArgs(call, decl)
	}

	return &ir.CallExpr{ExprBase: ir.NewExprBase(call.Span()), Func: fk, Args: args}
}

// bindNamedArgs resolves a mixed named/positional argument list into the
// callee's declared parameter order.  Named arguments bind by outward name;
// positional arguments fill the remaining slots left to right.  A slot no
// argument filled stays nil so every bound argument keeps its declared
// position; arity mismatches are left for type resolution to report.
func (l *Lowerer) bindNamedArgs(call *ast.CallExpr, decl *ir.FunctionDecl) []ir.Value {
	slots := make([]ir.Value, len(decl.Params))
	var extra []ir.Value

	for _, arg := range call.Args {
		value := l.lowerValue(arg.Value)

		if arg.Name != "" {
			pos := decl.ParamByOutwardName(arg.Name)
			if pos < 0 {
				l.error(report.UnknownVariable, arg.Span(),
					"function `%s` has no parameter named `%s`", call.Func, arg.Name)
				continue
			}

			slots[pos] = value
			continue
		}

		placed := false
		for i := range slots {
			if slots[i] == nil {
				slots[i] = value
				placed = true
				break
			}
		}

		if !placed {
			extra = append(extra, value)
		}
	}

	return append(slots, extra...)
}

// errorExpr is the placeholder expression produced after a collected
// resolution failure.
func errorExpr(span *report.TextSpan) ir.Expr {
	return (&ir.UnitValue{ValueBase: ir.NewValueBase(span)}).Expr()
}
