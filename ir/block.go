package ir

import "cflatc/report"

// Block is an ordered sequence of statements.  Empty blocks are legal.
type Block struct {
	Stmts []Statement
}

// LastSpan returns the span of the block's final statement.  Calling it on an
// empty block is a contract violation and panics: callers must check first.
func (b *Block) LastSpan() *report.TextSpan {
	if len(b.Stmts) == 0 {
		panic("LastSpan called on an empty block")
	}

	return b.Stmts[len(b.Stmts)-1].Span()
}

/* -------------------------------------------------------------------------- */

// Statement is the interface for all IR statements.
type Statement interface {
	// The source span of the statement.
	Span() *report.TextSpan
}

// StmtBase is the base struct for IR statements.
type StmtBase struct {
	span *report.TextSpan
}

// NewStmtBase creates a new statement base over the given span.
func NewStmtBase(span *report.TextSpan) StmtBase {
	return StmtBase{span: span}
}

func (sb StmtBase) Span() *report.TextSpan {
	return sb.span
}

// AssignStmt assigns the value of an expression to a variable.
type AssignStmt struct {
	StmtBase

	Var  VarKey
	Expr Expr
}

// DerefAssignStmt assigns the value of an expression to the location in
// memory a pointer expression points to.
type DerefAssignStmt struct {
	StmtBase

	Target Expr
	Value  Expr
}

// FieldAssignStmt assigns the value of an expression into a field of a
// struct.
type FieldAssignStmt struct {
	StmtBase

	Object Expr
	Field  string
	Value  Expr
}

// DoStmt evaluates an expression for effect.
type DoStmt struct {
	Expr Expr
}

func (ds *DoStmt) Span() *report.TextSpan {
	return ds.Expr.Span()
}

// BlockStmt is a nested block.
type BlockStmt struct {
	StmtBase

	Block *Block
}

// IfStmt is a conditional statement.  Else-if chains are a nested IfStmt
// inside the else block.
type IfStmt struct {
	StmtBase

	Cond Expr
	Then *Block

	// Else is nil when the conditional has no else branch.
	Else *Block
}

// LoopStmt is an unconditional loop: it exits only via a break inside the
// body.
type LoopStmt struct {
	StmtBase

	Body *Block
}
