package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cflatc/ir"
	"cflatc/report"
)

func TestDeclareTypeDuplicate(t *testing.T) {
	prog := ir.NewProgram()

	first := &ir.StructType{Fields: []ir.Field{{Name: "a", Type: ir.PrimI32}}}
	tk, err := prog.DeclareType("T", first, nil)
	assert.Nil(t, err)

	_, err = prog.DeclareType("T", &ir.StructType{}, nil)
	assert.NotNil(t, err)
	assert.Equal(t, report.DuplicateType, err.Kind)

	// The first declaration survives unchanged.
	st := prog.TypeDef(tk).(*ir.StructType)
	_, ok := st.FieldByName("a")
	assert.True(t, ok)
	assert.Len(t, prog.Types(), 1)
}

func TestDeclareAndBindType(t *testing.T) {
	prog := ir.NewProgram()

	tk, err := prog.DeclareType("Node", nil, nil)
	assert.Nil(t, err)
	assert.Nil(t, prog.TypeDef(tk))

	def := &ir.StructType{Fields: []ir.Field{
		{Name: "next", Type: ir.PtrType{Elem: ir.DirectRef{Key: tk, Name: "Node"}}},
	}}
	prog.BindType(tk, def)

	assert.Equal(t, ir.DirectType(def), prog.TypeDef(tk))
	assert.Equal(t, "Node", prog.TypeName(tk))

	found, ok := prog.LookupType("Node")
	assert.True(t, ok)
	assert.Equal(t, tk, found)
}

func TestDeclareFunctionDuplicate(t *testing.T) {
	prog := ir.NewProgram()

	fk, err := prog.DeclareFunction("f", &ir.FunctionDecl{Ret: ir.UnitType{}}, nil)
	assert.Nil(t, err)

	_, err = prog.DeclareFunction("f", &ir.FunctionDecl{Ret: ir.PrimI32}, nil)
	assert.NotNil(t, err)
	assert.Equal(t, report.DuplicateFunction, err.Kind)

	assert.True(t, ir.Equals(prog.Decl(fk).Ret, ir.UnitType{}))
	assert.Len(t, prog.Funcs(), 1)
}

func TestInternLiteralNoDedup(t *testing.T) {
	prog := ir.NewProgram()

	k1 := prog.InternLiteral("hello")
	k2 := prog.InternLiteral("hello")

	assert.NotEqual(t, k1, k2)
	assert.Equal(t, "hello", prog.Literal(k1))
	assert.Equal(t, "hello", prog.Literal(k2))
}

func TestFunctionVarArena(t *testing.T) {
	fn := ir.NewFunction()

	vk := fn.NewVar(ir.UndeclaredType{}, "x", nil)
	assert.True(t, vk.IsValid())
	assert.True(t, ir.Equals(fn.VarType(vk), ir.UndeclaredType{}))

	fn.SetVarType(vk, ir.PrimI32)
	assert.True(t, ir.Equals(fn.VarType(vk), ir.PrimI32))
	assert.Equal(t, "x", fn.Var(vk).Name)

	tmp := fn.NewVar(ir.UndeclaredType{}, "", nil)
	assert.NotEqual(t, vk, tmp)
	assert.Equal(t, "", fn.Var(tmp).Name)

	assert.Equal(t, []ir.VarKey{vk, tmp}, fn.Vars())
}

func TestBlockLastSpan(t *testing.T) {
	empty := &ir.Block{}
	assert.Panics(t, func() { empty.LastSpan() })

	span := &report.TextSpan{StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 8}
	block := &ir.Block{Stmts: []ir.Statement{
		&ir.AssignStmt{StmtBase: ir.NewStmtBase(nil)},
		&ir.AssignStmt{StmtBase: ir.NewStmtBase(span)},
	}}

	assert.Equal(t, span, block.LastSpan())
}

func TestZeroKeyIsInvalid(t *testing.T) {
	assert.False(t, ir.TypeKey{}.IsValid())
	assert.False(t, ir.FuncKey{}.IsValid())
	assert.False(t, ir.LiteralKey{}.IsValid())
	assert.False(t, ir.VarKey{}.IsValid())
}
