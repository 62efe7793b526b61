package ast

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
}

// VarDecl represents a local variable declaration.
type VarDecl struct {
	NodeBase

	Name string

	// The declared type of the variable.  A nil type means the type is to be
	// inferred from the variable's first assignment.
	Type TypeExpr

	// The optional initializer.
	Initializer Expr
}

// AssignStmt represents an assignment statement.  The target must be an
// identifier, a dereference, or a field access; lowering rejects anything
// else.
type AssignStmt struct {
	NodeBase

	Target Expr
	Value  Expr
}

// ExprStmt represents an expression evaluated for effect.
type ExprStmt struct {
	NodeBase

	Expr Expr
}

// BlockStmt represents a braced sequence of statements.
type BlockStmt struct {
	NodeBase

	Stmts []Stmt
}

// IfStmt represents a conditional statement.  Else-if chains are parsed as a
// nested IfStmt in the Else position.
type IfStmt struct {
	NodeBase

	Cond Expr
	Then *BlockStmt

	// Else is nil, a *BlockStmt, or a nested *IfStmt.
	Else Stmt
}

// LoopStmt represents an unconditional loop.  The only exits are break
// expressions inside the body.
type LoopStmt struct {
	NodeBase

	Body *BlockStmt
}
