package ir

import (
	"strconv"
	"strings"
)

// Type represents a structural cflat type.
type Type interface {
	// Returns whether this type is equal to the other type.  This should only
	// be called within methods of type instances: external callers use Equals.
	equals(other Type) bool

	// Returns the representative string for this type.
	Repr() string
}

/* -------------------------------------------------------------------------- */

// PrimitiveType represents a primitive type.  This must be one of the
// enumerated primitive type values below.
type PrimitiveType int

// Enumeration of the different primitive types.
const (
	PrimI32 PrimitiveType = iota
	PrimF32
	PrimBool
	PrimU8
)

func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimI32:
		return "i32"
	case PrimF32:
		return "f32"
	case PrimBool:
		return "bool"
	default:
		return "u8"
	}
}

// IsNumeric returns whether this primitive is a numeric type.
func (pt PrimitiveType) IsNumeric() bool {
	return pt == PrimI32 || pt == PrimF32 || pt == PrimU8
}

// IsIntegral returns whether this primitive is an integer type.
func (pt PrimitiveType) IsIntegral() bool {
	return pt == PrimI32 || pt == PrimU8
}

/* -------------------------------------------------------------------------- */

// DirectRef represents a reference to a nominal type by arena key.  Two direct
// references are equal exactly when their keys are: the referenced definition
// is never expanded for comparison.
type DirectRef struct {
	// The key of the referenced nominal type.
	Key TypeKey

	// The declared name of the referenced type, carried for error reporting.
	Name string
}

func (dr DirectRef) equals(other Type) bool {
	if odr, ok := other.(DirectRef); ok {
		return dr.Key == odr.Key
	}

	return false
}

func (dr DirectRef) Repr() string {
	return dr.Name
}

/* -------------------------------------------------------------------------- */

// UnitType is the type of expressions which produce no value.
type UnitType struct{}

func (UnitType) equals(other Type) bool {
	_, ok := other.(UnitType)
	return ok
}

func (UnitType) Repr() string {
	return "void"
}

// NeverType is the type of return, break, and continue expressions.  It is
// the bottom type: a value of type never can coerce to any type, since the
// coercion can never be observed.
type NeverType struct{}

func (NeverType) equals(other Type) bool {
	_, ok := other.(NeverType)
	return ok
}

func (NeverType) Repr() string {
	return "never"
}

// UninitType is the type of the uninitialized-value marker `---`.  Assigning
// it always succeeds and leaves the target's static type unchanged.
type UninitType struct{}

func (UninitType) equals(other Type) bool {
	_, ok := other.(UninitType)
	return ok
}

func (UninitType) Repr() string {
	return "---"
}

// UndeclaredType is the placeholder type of a variable declared without a
// type label.  Type resolution replaces it with the type of the variable's
// first assignment; an undeclared type surviving resolution is reported as an
// uninferred variable.
type UndeclaredType struct{}

func (UndeclaredType) equals(other Type) bool {
	_, ok := other.(UndeclaredType)
	return ok
}

func (UndeclaredType) Repr() string {
	return "<undeclared>"
}

/* -------------------------------------------------------------------------- */

// PtrType represents a pointer type.
type PtrType struct {
	// The element (content) type of the pointer.
	Elem Type
}

func (pt PtrType) equals(other Type) bool {
	if opt, ok := other.(PtrType); ok {
		return Equals(pt.Elem, opt.Elem)
	}

	return false
}

func (pt PtrType) Repr() string {
	return pt.Elem.Repr() + "*"
}

// SliceType represents a slice type.
type SliceType struct {
	// The element type of the slice.
	Elem Type
}

func (st SliceType) equals(other Type) bool {
	if ost, ok := other.(SliceType); ok {
		return Equals(st.Elem, ost.Elem)
	}

	return false
}

func (st SliceType) Repr() string {
	return st.Elem.Repr() + "[]"
}

// ArrayType represents a fixed-length array type.
type ArrayType struct {
	Elem Type
	Len  int32
}

func (at ArrayType) equals(other Type) bool {
	if oat, ok := other.(ArrayType); ok {
		return at.Len == oat.Len && Equals(at.Elem, oat.Elem)
	}

	return false
}

func (at ArrayType) Repr() string {
	return at.Elem.Repr() + "[" + strconv.Itoa(int(at.Len)) + "]"
}

// FuncType represents a function type.
type FuncType struct {
	// The return type of the function.
	Ret Type

	// The parameter types of the function.
	Params []Type
}

func (ft FuncType) equals(other Type) bool {
	oft, ok := other.(FuncType)
	if !ok {
		return false
	}

	if len(ft.Params) != len(oft.Params) {
		return false
	}

	for i, param := range ft.Params {
		if !Equals(param, oft.Params[i]) {
			return false
		}
	}

	return Equals(ft.Ret, oft.Ret)
}

func (ft FuncType) Repr() string {
	sb := strings.Builder{}

	sb.WriteRune('(')

	for i, param := range ft.Params {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(param.Repr())
	}

	sb.WriteString(") -> ")
	sb.WriteString(ft.Ret.Repr())

	return sb.String()
}
