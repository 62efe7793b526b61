package ast

import "cflatc/report"

// Def is the interface for all top level definitions.
type Def interface {
	Node

	// DefName returns the name the definition introduces.
	DefName() string

	// NameSpan returns the span of the defined name for error reporting.
	NameSpan() *report.TextSpan
}

// DefBase is the base struct for all top level definitions.
type DefBase struct {
	NodeBase

	// The name the definition introduces.
	Name string

	// The span of the name itself.
	NSpan *report.TextSpan
}

func (db *DefBase) DefName() string {
	return db.Name
}

func (db *DefBase) NameSpan() *report.TextSpan {
	return db.NSpan
}

/* -------------------------------------------------------------------------- */

// FieldDef represents one named, typed entry of a struct or union definition.
type FieldDef struct {
	NodeBase

	Name string
	Type TypeExpr
}

// StructDef represents a struct definition.
type StructDef struct {
	DefBase

	// The fields of the struct in declaration order.  Order is significant
	// for layout purposes even though this tier computes no layout.
	Fields []FieldDef
}

// UnionDef represents a union definition.
type UnionDef struct {
	DefBase

	// The variants of the union in declaration order.
	Variants []FieldDef
}

// EnumVariantDef represents one variant of an enum definition.
type EnumVariantDef struct {
	NodeBase

	Name string

	// The caller-supplied discriminant.  Discriminants are not required to be
	// unique or contiguous.
	Discriminant int32
}

// EnumDef represents an enum definition.
type EnumDef struct {
	DefBase

	Variants []EnumVariantDef
}

// AliasDef represents a transparent type alias definition.
type AliasDef struct {
	DefBase

	Type TypeExpr
}

/* -------------------------------------------------------------------------- */

// ParamDef represents a single parameter of a function definition.
type ParamDef struct {
	NodeBase

	// The optional outward name used for call-by-name argument binding.
	// Empty if the parameter can only be bound positionally.
	OutwardName string

	// The internal name the body refers to the parameter by.
	Name string

	Type TypeExpr
}

// FuncDef represents a function definition.
type FuncDef struct {
	DefBase

	Params []ParamDef

	// The declared return type.  A nil return type means the function
	// returns unit.
	ReturnType TypeExpr

	Body *BlockStmt
}
