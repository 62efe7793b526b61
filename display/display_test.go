package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cflatc/ast"
	"cflatc/display"
	"cflatc/lower"
	"cflatc/walk"
)

func TestRenderProgram(t *testing.T) {
	f := &ast.File{
		Name: "test.cf",
		Defs: []ast.Def{
			&ast.StructDef{
				DefBase: ast.DefBase{Name: "Point"},
				Fields: []ast.FieldDef{
					{Name: "x", Type: &ast.NamedTypeExpr{Name: "i32"}},
					{Name: "y", Type: &ast.NamedTypeExpr{Name: "i32"}},
				},
			},
			&ast.EnumDef{
				DefBase:  ast.DefBase{Name: "Color"},
				Variants: []ast.EnumVariantDef{{Name: "Red", Discriminant: 0}},
			},
			&ast.FuncDef{
				DefBase: ast.DefBase{Name: "add"},
				Params: []ast.ParamDef{
					{Name: "a", Type: &ast.NamedTypeExpr{Name: "i32"}},
					{Name: "b", Type: &ast.NamedTypeExpr{Name: "i32"}},
				},
				ReturnType: &ast.NamedTypeExpr{Name: "i32"},
				Body: &ast.BlockStmt{Stmts: []ast.Stmt{
					&ast.ExprStmt{Expr: &ast.ReturnExpr{Value: &ast.BinaryExpr{
						Lhs: &ast.Identifier{Name: "a"},
						Op:  ast.BinAdd,
						Rhs: &ast.Identifier{Name: "b"},
					}}},
				}},
			},
		},
	}

	prog, lowerErrs := lower.Lower(f)
	assert.Empty(t, lowerErrs)
	assert.Empty(t, walk.Check(prog))

	text := display.RenderProgram(prog)

	assert.Contains(t, text, "struct Point { x: i32, y: i32 };")
	assert.Contains(t, text, "enum Color { Red = 0 };")
	assert.Contains(t, text, "fn add(v0: i32, v1: i32) -> i32 {")

	// The flattened sum goes through a temporary whose inferred type is
	// listed in the variable table.
	assert.Contains(t, text, "var v2: i32;")
	assert.Contains(t, text, "v2 = v0 + v1;")
	assert.Contains(t, text, "return v2;")
}
