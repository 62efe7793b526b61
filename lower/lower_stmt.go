package lower

import (
	"cflatc/ast"
	"cflatc/ir"
	"cflatc/report"
)

// lowerBody lowers a function body into its minted IR function.  Parameters
// are pre-declared as arena variables visible in the outermost scope.
func (l *Lowerer) lowerBody(fk ir.FuncKey, fd *ast.FuncDef) {
	l.fn = l.prog.Func(fk)
	decl := l.prog.Decl(fk)

	l.pushScope()
	defer l.popScope()

	for i, param := range decl.Params {
		vk := l.fn.NewVar(param.Type, param.Name, fd.Params[i].Span())
		l.fn.Params = append(l.fn.Params, vk)
		l.define(param.Name, vk)
	}

	l.fn.Body = l.lowerBlock(fd.Body)
}

// lowerBlock lowers a braced statement sequence within its own scope.
func (l *Lowerer) lowerBlock(bs *ast.BlockStmt) *ir.Block {
	outer := l.block
	block := &ir.Block{}
	l.block = block

	l.pushScope()

	for _, stmt := range bs.Stmts {
		l.lowerStmt(stmt)
	}

	l.popScope()
	l.block = outer

	return block
}

// lowerStmt lowers a single statement, emitting into the current block.
func (l *Lowerer) lowerStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		// The initializer is lowered before the name is bound, so an
		// initializer reference to the same name still sees the outer
		// binding being shadowed.
		var init ir.Expr
		if v.Initializer != nil {
			init = l.lowerExpr(v.Initializer)
		}

		var ty ir.Type = ir.UndeclaredType{}
		if v.Type != nil {
			ty = l.lowerTypeExpr(v.Type)
		}

		vk := l.fn.NewVar(ty, v.Name, v.Span())
		l.define(v.Name, vk)

		if init != nil {
			l.emit(&ir.AssignStmt{StmtBase: ir.NewStmtBase(v.Span()), Var: vk, Expr: init})
		}
	case *ast.AssignStmt:
		l.lowerAssign(v)
	case *ast.ExprStmt:
		l.emit(&ir.DoStmt{Expr: l.lowerExpr(v.Expr)})
	case *ast.BlockStmt:
		l.emit(&ir.BlockStmt{StmtBase: ir.NewStmtBase(v.Span()), Block: l.lowerBlock(v)})
	case *ast.IfStmt:
		l.emit(l.lowerIf(v))
	case *ast.LoopStmt:
		l.emit(&ir.LoopStmt{StmtBase: ir.NewStmtBase(v.Span()), Body: l.lowerBlock(v.Body)})
	default:
		report.ReportICE("unknown statement %T", stmt)
	}
}

// lowerAssign lowers an assignment statement into the assign form matching
// its target: a plain variable assign, a deref assign, or a field assign.
func (l *Lowerer) lowerAssign(as *ast.AssignStmt) {
	switch t := as.Target.(type) {
	case *ast.Identifier:
		vk, ok := l.lookup(t.Name)
		if !ok {
			l.error(report.UnknownVariable, t.Span(), "undeclared variable: `%s`", t.Name)
			return
		}

		l.emit(&ir.AssignStmt{StmtBase: ir.NewStmtBase(as.Span()), Var: vk, Expr: l.lowerExpr(as.Value)})
	case *ast.UnaryExpr:
		if t.Op != ast.UnaryDeref {
			report.ReportICE("invalid assignment target %T", as.Target)
		}

		l.emit(&ir.DerefAssignStmt{
			StmtBase: ir.NewStmtBase(as.Span()),
			Target:   l.lowerExpr(t.Operand),
			Value:    l.lowerExpr(as.Value),
		})
	case *ast.FieldAccessExpr:
		l.emit(&ir.FieldAssignStmt{
			StmtBase: ir.NewStmtBase(as.Span()),
			Object:   l.lowerExpr(t.Object),
			Field:    t.Field,
			Value:    l.lowerExpr(as.Value),
		})
	default:
		report.ReportICE("invalid assignment target %T", as.Target)
	}
}

// lowerIf lowers a conditional; an else-if chain becomes a nested if inside
// the else block.
func (l *Lowerer) lowerIf(is *ast.IfStmt) *ir.IfStmt {
	lowered := &ir.IfStmt{
		StmtBase: ir.NewStmtBase(is.Span()),
		Cond:     l.lowerExpr(is.Cond),
		Then:     l.lowerBlock(is.Then),
	}

	switch e := is.Else.(type) {
	case nil:
	case *ast.BlockStmt:
		lowered.Else = l.lowerBlock(e)
	case *ast.IfStmt:
		// The nested condition must not run unless this arm's condition
		// failed, so its operand temporaries belong in the else block.
		outer := l.block
		elseBlock := &ir.Block{}
		l.block = elseBlock
		l.emit(l.lowerIf(e))
		l.block = outer
		lowered.Else = elseBlock
	default:
		report.ReportICE("invalid else branch %T", is.Else)
	}

	return lowered
}
