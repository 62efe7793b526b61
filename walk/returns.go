package walk

import "cflatc/ir"

// blockReturns returns whether every path through the block executes a
// return before reaching the end of the block.
func blockReturns(b *ir.Block) bool {
	for _, stmt := range b.Stmts {
		if stmtReturns(stmt) {
			return true
		}
	}

	return false
}

func stmtReturns(stmt ir.Statement) bool {
	switch v := stmt.(type) {
	case *ir.DoStmt:
		return exprReturns(v.Expr)
	case *ir.AssignStmt:
		return exprReturns(v.Expr)
	case *ir.BlockStmt:
		return blockReturns(v.Block)
	case *ir.IfStmt:
		// Without an else branch the condition may be false, in which case
		// control falls through past the if.
		return v.Else != nil && blockReturns(v.Then) && blockReturns(v.Else)
	case *ir.LoopStmt:
		// A loop with no break can only be exited by returning.
		return !blockBreaks(v.Body)
	default:
		return false
	}
}

func exprReturns(expr ir.Expr) bool {
	_, ok := expr.(*ir.ReturnExpr)
	return ok
}

// blockBreaks returns whether the block contains a break that exits the loop
// it directly belongs to.  Breaks inside nested loops exit those loops, not
// this one, so nested loop bodies are not descended into.
func blockBreaks(b *ir.Block) bool {
	for _, stmt := range b.Stmts {
		switch v := stmt.(type) {
		case *ir.DoStmt:
			if exprBreaks(v.Expr) {
				return true
			}
		case *ir.AssignStmt:
			if exprBreaks(v.Expr) {
				return true
			}
		case *ir.BlockStmt:
			if blockBreaks(v.Block) {
				return true
			}
		case *ir.IfStmt:
			if blockBreaks(v.Then) || (v.Else != nil && blockBreaks(v.Else)) {
				return true
			}
		}
	}

	return false
}

func exprBreaks(expr ir.Expr) bool {
	_, ok := expr.(*ir.BreakExpr)
	return ok
}
