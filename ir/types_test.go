package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cflatc/ir"
)

func TestEqualsPrimitives(t *testing.T) {
	assert.True(t, ir.Equals(ir.PrimI32, ir.PrimI32))
	assert.False(t, ir.Equals(ir.PrimI32, ir.PrimF32))
	assert.False(t, ir.Equals(ir.PrimI32, ir.PrimU8))
	assert.False(t, ir.Equals(ir.PrimBool, ir.UnitType{}))
}

func TestEqualsStructural(t *testing.T) {
	assert.True(t, ir.Equals(ir.PtrType{Elem: ir.PrimI32}, ir.PtrType{Elem: ir.PrimI32}))
	assert.False(t, ir.Equals(ir.PtrType{Elem: ir.PrimI32}, ir.PtrType{Elem: ir.PrimF32}))
	assert.False(t, ir.Equals(ir.PtrType{Elem: ir.PrimI32}, ir.PrimI32))

	assert.True(t, ir.Equals(ir.SliceType{Elem: ir.PrimU8}, ir.SliceType{Elem: ir.PrimU8}))
	assert.False(t, ir.Equals(ir.SliceType{Elem: ir.PrimU8}, ir.ArrayType{Elem: ir.PrimU8, Len: 4}))

	assert.True(t, ir.Equals(
		ir.ArrayType{Elem: ir.PrimI32, Len: 3},
		ir.ArrayType{Elem: ir.PrimI32, Len: 3},
	))
	assert.False(t, ir.Equals(
		ir.ArrayType{Elem: ir.PrimI32, Len: 3},
		ir.ArrayType{Elem: ir.PrimI32, Len: 4},
	))

	assert.True(t, ir.Equals(
		ir.FuncType{Ret: ir.UnitType{}, Params: []ir.Type{ir.PrimI32}},
		ir.FuncType{Ret: ir.UnitType{}, Params: []ir.Type{ir.PrimI32}},
	))
	assert.False(t, ir.Equals(
		ir.FuncType{Ret: ir.UnitType{}, Params: []ir.Type{ir.PrimI32}},
		ir.FuncType{Ret: ir.UnitType{}, Params: []ir.Type{ir.PrimI32, ir.PrimI32}},
	))
}

func TestEqualsDirectRefByKey(t *testing.T) {
	prog := ir.NewProgram()

	ak, err := prog.DeclareType("A", &ir.StructType{}, nil)
	assert.Nil(t, err)
	bk, err := prog.DeclareType("B", &ir.StructType{}, nil)
	assert.Nil(t, err)

	// Key identity decides equality; the carried name is display-only.
	assert.True(t, ir.Equals(ir.DirectRef{Key: ak, Name: "A"}, ir.DirectRef{Key: ak, Name: "renamed"}))
	assert.False(t, ir.Equals(ir.DirectRef{Key: ak, Name: "A"}, ir.DirectRef{Key: bk, Name: "A"}))
}

func TestAssignable(t *testing.T) {
	// Exact equality assigns.
	assert.True(t, ir.Assignable(ir.PrimI32, ir.PrimI32))

	// There is no numeric widening of any kind.
	assert.False(t, ir.Assignable(ir.PrimU8, ir.PrimI32))
	assert.False(t, ir.Assignable(ir.PrimI32, ir.PrimF32))

	// Never assigns anywhere.
	assert.True(t, ir.Assignable(ir.NeverType{}, ir.PrimI32))
	assert.True(t, ir.Assignable(ir.NeverType{}, ir.PtrType{Elem: ir.PrimBool}))

	// The uninit marker assigns anywhere.
	assert.True(t, ir.Assignable(ir.UninitType{}, ir.PrimF32))

	// The undeclared placeholder suppresses mismatches on either side.
	assert.True(t, ir.Assignable(ir.UndeclaredType{}, ir.PrimI32))
	assert.True(t, ir.Assignable(ir.PrimI32, ir.UndeclaredType{}))

	// Nothing assigns into never or uninit except themselves.
	assert.False(t, ir.Assignable(ir.PrimI32, ir.NeverType{}))
	assert.False(t, ir.Assignable(ir.PrimI32, ir.UninitType{}))
}

func TestRepr(t *testing.T) {
	assert.Equal(t, "i32", ir.PrimI32.Repr())
	assert.Equal(t, "void", ir.UnitType{}.Repr())
	assert.Equal(t, "never", ir.NeverType{}.Repr())
	assert.Equal(t, "i32*", ir.PtrType{Elem: ir.PrimI32}.Repr())
	assert.Equal(t, "u8[]", ir.SliceType{Elem: ir.PrimU8}.Repr())
	assert.Equal(t, "f32[8]", ir.ArrayType{Elem: ir.PrimF32, Len: 8}.Repr())
	assert.Equal(t, "(i32, bool) -> void", ir.FuncType{
		Ret:    ir.UnitType{},
		Params: []ir.Type{ir.PrimI32, ir.PrimBool},
	}.Repr())
}
