package report

import "fmt"

// LowerErrorKind enumerates the kinds of errors which can occur while lowering
// a syntax tree into IR.  It must be one of the enumerated values below.
type LowerErrorKind int

// Enumeration of lowering error kinds.
const (
	DuplicateType LowerErrorKind = iota
	DuplicateFunction
	UnknownFunction
	UnknownType
	UnknownVariable
)

var lowerKindNames = [...]string{
	"duplicate type",
	"duplicate function",
	"unknown function",
	"unknown type",
	"unknown variable",
}

func (k LowerErrorKind) String() string {
	return lowerKindNames[k]
}

// LowerError is a semantic error detected while lowering a syntax tree into
// IR.  Lowering never stops at the first such error: it accumulates every
// error it finds across all top level items and returns them together.
type LowerError struct {
	// The kind of lowering failure.
	Kind LowerErrorKind

	// The span over which the error occurs.
	Span *TextSpan

	// The error message.
	Message string
}

func (le *LowerError) Error() string {
	return le.Message
}

// LowerRaise creates a new lowering error over the given span.
func LowerRaise(kind LowerErrorKind, span *TextSpan, msg string, args ...interface{}) *LowerError {
	return &LowerError{Kind: kind, Span: span, Message: fmt.Sprintf(msg, args...)}
}

/* -------------------------------------------------------------------------- */

// TypeErrorKind enumerates the kinds of errors which can occur during type
// resolution.  It must be one of the enumerated values below.
type TypeErrorKind int

// Enumeration of type error kinds.
const (
	TypeMismatch TypeErrorKind = iota
	UnknownField
	NotAStruct
	NotAPointer
	ArityMismatch
	MissingReturnValue
	IllegalBreakOrContinue
	AddressOfNonLvalue
	UninferredVariable
)

var typeKindNames = [...]string{
	"type mismatch",
	"unknown field",
	"not a struct",
	"not a pointer",
	"arity mismatch",
	"missing return value",
	"illegal break or continue",
	"address of non-lvalue",
	"uninferred variable",
}

func (k TypeErrorKind) String() string {
	return typeKindNames[k]
}

// TypeError is a semantic error detected during type resolution.  Like
// lowering errors, type errors are accumulated: the checker surfaces as many
// errors as it can per run rather than aborting on the first one.
type TypeError struct {
	// The kind of type checking failure.
	Kind TypeErrorKind

	// The span over which the error occurs.
	Span *TextSpan

	// The error message.
	Message string
}

func (te *TypeError) Error() string {
	return te.Message
}

// TypeRaise creates a new type error over the given span.
func TypeRaise(kind TypeErrorKind, span *TextSpan, msg string, args ...interface{}) *TypeError {
	return &TypeError{Kind: kind, Span: span, Message: fmt.Sprintf(msg, args...)}
}
