package ast

// TypeExpr is the interface for all syntactic type forms.  Lowering resolves
// type expressions into structural IR types.
type TypeExpr interface {
	Node
}

// NamedTypeExpr references a type by name: either one of the builtin
// primitives (i32, f32, bool, u8, void) or a user-defined nominal type.
type NamedTypeExpr struct {
	NodeBase

	Name string
}

// PointerTypeExpr represents a pointer type form.
type PointerTypeExpr struct {
	NodeBase

	Elem TypeExpr
}

// SliceTypeExpr represents a slice type form.
type SliceTypeExpr struct {
	NodeBase

	Elem TypeExpr
}

// ArrayTypeExpr represents a fixed-length array type form.
type ArrayTypeExpr struct {
	NodeBase

	Elem TypeExpr
	Len  int32
}

// FuncTypeExpr represents a function type form.
type FuncTypeExpr struct {
	NodeBase

	Params []TypeExpr
	Return TypeExpr
}
