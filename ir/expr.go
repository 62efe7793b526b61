package ir

import "cflatc/report"

// Value is an atomic operand: a variable reference, literal, or marker.
// Every value carries its source span for diagnostics.
type Value interface {
	Span() *report.TextSpan

	// Expr wraps the value as an expression.
	Expr() Expr
}

// ValueBase is the base struct for IR values.
type ValueBase struct {
	span *report.TextSpan
}

// NewValueBase creates a new value base over the given span.
func NewValueBase(span *report.TextSpan) ValueBase {
	return ValueBase{span: span}
}

func (vb ValueBase) Span() *report.TextSpan {
	return vb.span
}

// VarValue references a variable of the enclosing function.
type VarValue struct {
	ValueBase

	Var VarKey
}

// NumValue is an integer literal operand.
type NumValue struct {
	ValueBase

	Value int32
}

// LitValue references an interned string literal.
type LitValue struct {
	ValueBase

	Lit LiteralKey
}

// UninitValue is the uninitialized-value marker.
type UninitValue struct {
	ValueBase
}

// UnitValue is the unit marker.
type UnitValue struct {
	ValueBase
}

func (v *VarValue) Expr() Expr    { return &ValueExpr{Value: v} }
func (v *NumValue) Expr() Expr    { return &ValueExpr{Value: v} }
func (v *LitValue) Expr() Expr    { return &ValueExpr{Value: v} }
func (v *UninitValue) Expr() Expr { return &ValueExpr{Value: v} }
func (v *UnitValue) Expr() Expr   { return &ValueExpr{Value: v} }

/* -------------------------------------------------------------------------- */

// BinaryOp enumerates the binary operators of the IR.
type BinaryOp int

// Enumeration of binary operators.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLogicAnd
	OpLogicOr
	OpLogicXor
	OpAnd
	OpOr
	OpXor
	OpEq
	OpNe
	OpGt
	OpGe
	OpLt
	OpLe
)

var binaryOpNames = [...]string{
	"+", "-", "*", "/", "%",
	"&&", "||", "^^",
	"&", "|", "^",
	"==", "!=", ">", ">=", "<", "<=",
}

func (op BinaryOp) String() string {
	return binaryOpNames[op]
}

// IsArithmetic returns whether the operator is an arithmetic operator.
func (op BinaryOp) IsArithmetic() bool {
	return OpAdd <= op && op <= OpMod
}

// IsLogic returns whether the operator is a boolean logic operator.
func (op BinaryOp) IsLogic() bool {
	return OpLogicAnd <= op && op <= OpLogicXor
}

// IsBitwise returns whether the operator is a bitwise operator.
func (op BinaryOp) IsBitwise() bool {
	return OpAnd <= op && op <= OpXor
}

// IsComparison returns whether the operator is a comparison operator.
func (op BinaryOp) IsComparison() bool {
	return OpEq <= op && op <= OpLe
}

// UnaryOp enumerates the unary operators of the IR.
type UnaryOp int

// Enumeration of unary operators.
const (
	OpAddressOf UnaryOp = iota
	OpDeref
	OpNegate
	OpNot
)

var unaryOpNames = [...]string{"&", "*", "-", "!"}

func (op UnaryOp) String() string {
	return unaryOpNames[op]
}

/* -------------------------------------------------------------------------- */

// Expr is the interface for all IR expressions.  Operand positions hold
// atomic values: lowering flattens nested expressions through temporaries.
type Expr interface {
	Span() *report.TextSpan
}

// ExprBase is the base struct for IR expressions.
type ExprBase struct {
	span *report.TextSpan
}

// NewExprBase creates a new expression base over the given span.
func NewExprBase(span *report.TextSpan) ExprBase {
	return ExprBase{span: span}
}

func (eb ExprBase) Span() *report.TextSpan {
	return eb.span
}

// ValueExpr is an atomic value used as an expression.
type ValueExpr struct {
	Value Value
}

func (ve *ValueExpr) Span() *report.TextSpan {
	return ve.Value.Span()
}

// FieldAccessExpr accesses a field of a struct value.
type FieldAccessExpr struct {
	ExprBase

	Object Value
	Field  string
}

// PathAccessExpr accesses a static member of a nominal type, eg. an enum
// variant.
type PathAccessExpr struct {
	ExprBase

	Type   TypeKey
	Member string
}

// CallExpr calls a function with one value per parameter slot.  Named
// arguments were already bound to their declared positions during lowering;
// a slot nothing bound to is nil.
type CallExpr struct {
	ExprBase

	Func FuncKey
	Args []Value
}

// ReturnExpr returns from the enclosing function, optionally with a value.
// Its type is never.
type ReturnExpr struct {
	ExprBase

	// Value is nil when the return carries no value.
	Value Value
}

// BreakExpr exits the innermost enclosing loop.  Its type is never.
type BreakExpr struct {
	ExprBase
}

// ContinueExpr restarts the innermost enclosing loop.  Its type is never.
type ContinueExpr struct {
	ExprBase
}

// BinaryExpr applies a binary operator to two values.
type BinaryExpr struct {
	ExprBase

	Lhs Value
	Op  BinaryOp
	Rhs Value
}

// UnaryExpr applies a unary operator to a value.
type UnaryExpr struct {
	ExprBase

	Op      UnaryOp
	Operand Value
}
