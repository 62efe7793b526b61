package lower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cflatc/ast"
	"cflatc/ir"
	"cflatc/lower"
	"cflatc/report"
)

func testFile(defs ...ast.Def) *ast.File {
	return &ast.File{Name: "test.cf", Defs: defs}
}

func structDef(name string, fields ...ast.FieldDef) *ast.StructDef {
	return &ast.StructDef{DefBase: ast.DefBase{Name: name}, Fields: fields}
}

func funcDef(name string, params []ast.ParamDef, ret ast.TypeExpr, body *ast.BlockStmt) *ast.FuncDef {
	return &ast.FuncDef{DefBase: ast.DefBase{Name: name}, Params: params, ReturnType: ret, Body: body}
}

func body(stmts ...ast.Stmt) *ast.BlockStmt {
	return &ast.BlockStmt{Stmts: stmts}
}

func id(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func num(value int32) *ast.NumberLit {
	return &ast.NumberLit{Value: value}
}

func namedType(name string) *ast.NamedTypeExpr {
	return &ast.NamedTypeExpr{Name: name}
}

/* -------------------------------------------------------------------------- */

func TestLowerForwardReferences(t *testing.T) {
	// Both references come before the definitions they use.
	f := testFile(
		funcDef("main", nil, nil, body(
			&ast.VarDecl{Name: "n", Type: &ast.PointerTypeExpr{Elem: namedType("Node")}},
			&ast.AssignStmt{Target: id("n"), Value: &ast.UninitLit{}},
			&ast.ExprStmt{Expr: &ast.CallExpr{Func: "helper"}},
		)),
		structDef("Node",
			ast.FieldDef{Name: "next", Type: &ast.PointerTypeExpr{Elem: namedType("Node")}},
		),
		funcDef("helper", nil, nil, body()),
	)

	prog, errs := lower.Lower(f)
	assert.Empty(t, errs)

	nk, ok := prog.LookupType("Node")
	assert.True(t, ok)

	st := prog.TypeDef(nk).(*ir.StructType)
	field, ok := st.FieldByName("next")
	assert.True(t, ok)
	assert.True(t, ir.Equals(field.Type, ir.PtrType{Elem: ir.DirectRef{Key: nk, Name: "Node"}}))
}

func TestLowerDuplicateType(t *testing.T) {
	f := testFile(
		structDef("T", ast.FieldDef{Name: "a", Type: namedType("i32")}),
		structDef("T", ast.FieldDef{Name: "b", Type: namedType("f32")}),
	)

	prog, errs := lower.Lower(f)
	assert.Len(t, errs, 1)
	assert.Equal(t, report.DuplicateType, errs[0].Kind)

	// The first definition wins: the duplicate's body is never bound.
	tk, _ := prog.LookupType("T")
	st := prog.TypeDef(tk).(*ir.StructType)
	_, ok := st.FieldByName("a")
	assert.True(t, ok)
	_, ok = st.FieldByName("b")
	assert.False(t, ok)
}

func TestLowerDuplicateFunction(t *testing.T) {
	f := testFile(
		funcDef("f", nil, namedType("i32"), body()),
		funcDef("f", nil, nil, body()),
	)

	prog, errs := lower.Lower(f)
	assert.Len(t, errs, 1)
	assert.Equal(t, report.DuplicateFunction, errs[0].Kind)

	fk, _ := prog.LookupFunction("f")
	assert.True(t, ir.Equals(prog.Decl(fk).Ret, ir.PrimI32))
}

func TestLowerUnknownNames(t *testing.T) {
	f := testFile(
		funcDef("main", nil, nil, body(
			&ast.VarDecl{Name: "x", Type: namedType("Missing")},
			&ast.AssignStmt{Target: id("y"), Value: num(1)},
			&ast.ExprStmt{Expr: &ast.CallExpr{Func: "nope"}},
		)),
	)

	_, errs := lower.Lower(f)
	assert.Len(t, errs, 3)

	kinds := make([]report.LowerErrorKind, len(errs))
	for i, err := range errs {
		kinds[i] = err.Kind
	}

	assert.Contains(t, kinds, report.UnknownType)
	assert.Contains(t, kinds, report.UnknownVariable)
	assert.Contains(t, kinds, report.UnknownFunction)
}

func TestLowerShadowing(t *testing.T) {
	// The inner x shadows the outer for the block's lifetime only, and its
	// initializer still sees the outer binding.
	f := testFile(
		funcDef("main", nil, nil, body(
			&ast.VarDecl{Name: "x", Type: namedType("i32"), Initializer: num(1)},
			&ast.BlockStmt{Stmts: []ast.Stmt{
				&ast.VarDecl{Name: "x", Type: namedType("f32"), Initializer: id("x")},
			}},
			&ast.AssignStmt{Target: id("x"), Value: num(3)},
		)),
	)

	prog, errs := lower.Lower(f)
	assert.Empty(t, errs)

	fk, _ := prog.LookupFunction("main")
	fn := prog.Func(fk)
	assert.Len(t, fn.Vars(), 2)

	outerInit := fn.Body.Stmts[0].(*ir.AssignStmt)
	innerInit := fn.Body.Stmts[1].(*ir.BlockStmt).Block.Stmts[0].(*ir.AssignStmt)
	outerAssign := fn.Body.Stmts[2].(*ir.AssignStmt)

	assert.NotEqual(t, outerInit.Var, innerInit.Var)
	assert.Equal(t, outerInit.Var, outerAssign.Var)

	// f32 x = x reads the outer variable.
	read := innerInit.Expr.(*ir.ValueExpr).Value.(*ir.VarValue)
	assert.Equal(t, outerInit.Var, read.Var)
}

func TestLowerNamedArguments(t *testing.T) {
	callee := funcDef("f", []ast.ParamDef{
		{OutwardName: "a", Name: "x", Type: namedType("i32")},
		{OutwardName: "b", Name: "y", Type: namedType("i32")},
	}, nil, body())

	f := testFile(
		callee,
		funcDef("main", nil, nil, body(
			&ast.ExprStmt{Expr: &ast.CallExpr{Func: "f", Args: []ast.CallArg{
				{Name: "b", Value: num(2)},
				{Value: num(1)},
			}}},
		)),
	)

	prog, errs := lower.Lower(f)
	assert.Empty(t, errs)

	fk, _ := prog.LookupFunction("main")
	call := prog.Func(fk).Body.Stmts[0].(*ir.DoStmt).Expr.(*ir.CallExpr)

	// The positional argument fills the first open slot; the named argument
	// landed in its declared position.
	assert.Len(t, call.Args, 2)
	assert.Equal(t, int32(1), call.Args[0].(*ir.NumValue).Value)
	assert.Equal(t, int32(2), call.Args[1].(*ir.NumValue).Value)
}

func TestLowerNamedArgumentSlotsStayInPlace(t *testing.T) {
	callee := funcDef("f", []ast.ParamDef{
		{OutwardName: "a", Name: "x", Type: namedType("i32")},
		{OutwardName: "b", Name: "y", Type: namedType("bool")},
	}, nil, body())

	f := testFile(
		callee,
		funcDef("main", nil, nil, body(
			&ast.ExprStmt{Expr: &ast.CallExpr{Func: "f", Args: []ast.CallArg{
				{Name: "b", Value: num(2)},
			}}},
		)),
	)

	prog, errs := lower.Lower(f)
	assert.Empty(t, errs)

	fk, _ := prog.LookupFunction("main")
	call := prog.Func(fk).Body.Stmts[0].(*ir.DoStmt).Expr.(*ir.CallExpr)

	// The unfilled slot stays nil: the named argument must not slide into
	// the first parameter's position.
	if assert.Len(t, call.Args, 2) {
		assert.Nil(t, call.Args[0])
		assert.Equal(t, int32(2), call.Args[1].(*ir.NumValue).Value)
	}
}

func TestLowerUnknownNamedArgument(t *testing.T) {
	f := testFile(
		funcDef("f", []ast.ParamDef{
			{OutwardName: "a", Name: "x", Type: namedType("i32")},
		}, nil, body()),
		funcDef("main", nil, nil, body(
			&ast.ExprStmt{Expr: &ast.CallExpr{Func: "f", Args: []ast.CallArg{
				{Name: "c", Value: num(3)},
			}}},
		)),
	)

	_, errs := lower.Lower(f)
	assert.Len(t, errs, 1)
	assert.Equal(t, report.UnknownVariable, errs[0].Kind)
}

func TestLowerElseIfConditionPlacement(t *testing.T) {
	params := []ast.ParamDef{
		{Name: "a", Type: namedType("bool")},
		{Name: "x", Type: namedType("i32")},
	}

	// if a {} else if x + 1 == 2 {}
	f := testFile(
		funcDef("main", params, nil, body(
			&ast.IfStmt{
				Cond: id("a"),
				Then: body(),
				Else: &ast.IfStmt{
					Cond: &ast.BinaryExpr{
						Lhs: &ast.BinaryExpr{Lhs: id("x"), Op: ast.BinAdd, Rhs: num(1)},
						Op:  ast.BinEq,
						Rhs: num(2),
					},
					Then: body(),
				},
			},
		)),
	)

	prog, errs := lower.Lower(f)
	assert.Empty(t, errs)

	fk, _ := prog.LookupFunction("main")
	fn := prog.Func(fk)

	// The second arm's condition only runs when the first fails, so its
	// hoisted temporary lives in the else block, not the enclosing one.
	if assert.Len(t, fn.Body.Stmts, 1) {
		outer := fn.Body.Stmts[0].(*ir.IfStmt)
		if assert.Len(t, outer.Else.Stmts, 2) {
			tmpAssign := outer.Else.Stmts[0].(*ir.AssignStmt)
			assert.Equal(t, "", fn.Var(tmpAssign.Var).Name)
			assert.Equal(t, ir.OpAdd, tmpAssign.Expr.(*ir.BinaryExpr).Op)

			inner := outer.Else.Stmts[1].(*ir.IfStmt)
			assert.Nil(t, inner.Else)
		}
	}
}

func TestLowerFlattensCompoundOperands(t *testing.T) {
	params := []ast.ParamDef{
		{Name: "a", Type: namedType("i32")},
		{Name: "b", Type: namedType("i32")},
		{Name: "c", Type: namedType("i32")},
	}

	// x = (a + b) * c
	f := testFile(
		funcDef("main", params, nil, body(
			&ast.VarDecl{Name: "x", Type: namedType("i32")},
			&ast.AssignStmt{
				Target: id("x"),
				Value: &ast.BinaryExpr{
					Lhs: &ast.BinaryExpr{Lhs: id("a"), Op: ast.BinAdd, Rhs: id("b")},
					Op:  ast.BinMul,
					Rhs: id("c"),
				},
			},
		)),
	)

	prog, errs := lower.Lower(f)
	assert.Empty(t, errs)

	fk, _ := prog.LookupFunction("main")
	fn := prog.Func(fk)

	// The inner addition is hoisted into a fresh temporary before the
	// assignment of the product.
	assert.Len(t, fn.Body.Stmts, 2)

	tmpAssign := fn.Body.Stmts[0].(*ir.AssignStmt)
	assert.Equal(t, "", fn.Var(tmpAssign.Var).Name)
	sum := tmpAssign.Expr.(*ir.BinaryExpr)
	assert.Equal(t, ir.OpAdd, sum.Op)

	product := fn.Body.Stmts[1].(*ir.AssignStmt).Expr.(*ir.BinaryExpr)
	assert.Equal(t, ir.OpMul, product.Op)
	assert.Equal(t, tmpAssign.Var, product.Lhs.(*ir.VarValue).Var)
}
