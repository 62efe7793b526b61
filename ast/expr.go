package ast

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
}

// Identifier represents a reference to a named value.
type Identifier struct {
	NodeBase

	Name string
}

// NumberLit represents an integer literal.
type NumberLit struct {
	NodeBase

	Value int32
}

// StringLit represents a string literal.
type StringLit struct {
	NodeBase

	Value string
}

// UninitLit represents the uninitialized-value marker `---`.
type UninitLit struct {
	NodeBase
}

// UnitLit represents the unit value.
type UnitLit struct {
	NodeBase
}

/* -------------------------------------------------------------------------- */

// FieldAccessExpr represents access to a field of a struct value.
type FieldAccessExpr struct {
	NodeBase

	Object Expr
	Field  string
}

// PathExpr represents qualified access to a static member of a named type,
// eg. an enum variant.
type PathExpr struct {
	NodeBase

	TypeName string
	Member   string
}

// CallArg represents one argument at a call site.  A non-empty Name binds the
// argument to the parameter declared with that outward name.
type CallArg struct {
	NodeBase

	Name  string
	Value Expr
}

// CallExpr represents a function call.
type CallExpr struct {
	NodeBase

	Func string
	Args []CallArg
}

// ReturnExpr represents a return expression.  Its value is optional.
type ReturnExpr struct {
	NodeBase

	Value Expr
}

// BreakExpr represents a break expression.
type BreakExpr struct {
	NodeBase
}

// ContinueExpr represents a continue expression.
type ContinueExpr struct {
	NodeBase
}

/* -------------------------------------------------------------------------- */

// BinOpKind enumerates the binary operator tokens.
type BinOpKind int

// Enumeration of binary operator tokens.
const (
	BinAdd BinOpKind = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinLogicAnd
	BinLogicOr
	BinLogicXor
	BinAnd
	BinOr
	BinXor
	BinEq
	BinNe
	BinGt
	BinGe
	BinLt
	BinLe
)

// UnaryOpKind enumerates the unary operator tokens.
type UnaryOpKind int

// Enumeration of unary operator tokens.
const (
	UnaryAddressOf UnaryOpKind = iota
	UnaryDeref
	UnaryNegate
	UnaryNot
)

// BinaryExpr represents a binary operator application.
type BinaryExpr struct {
	NodeBase

	Lhs Expr
	Op  BinOpKind
	Rhs Expr
}

// UnaryExpr represents a unary operator application.
type UnaryExpr struct {
	NodeBase

	Op      UnaryOpKind
	Operand Expr
}
