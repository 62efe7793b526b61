package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cflatc/ast"
	"cflatc/build"
	"cflatc/ir"
	"cflatc/report"
)

func pipelineFile(retValue ast.Expr) *ast.File {
	return &ast.File{
		Name: "unit.cf",
		Defs: []ast.Def{
			&ast.FuncDef{
				DefBase:    ast.DefBase{Name: "f"},
				ReturnType: &ast.NamedTypeExpr{Name: "i32"},
				Body: &ast.BlockStmt{Stmts: []ast.Stmt{
					&ast.ExprStmt{Expr: &ast.ReturnExpr{Value: retValue}},
				}},
			},
		},
	}
}

func TestCompilePipeline(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	c := build.NewCompiler(pipelineFile(&ast.NumberLit{Value: 1}), "", build.DefaultProfile())
	prog, ok := c.Compile()
	assert.True(t, ok)

	fk, found := prog.LookupFunction("f")
	assert.True(t, found)
	assert.True(t, ir.Equals(prog.Decl(fk).Ret, ir.PrimI32))
}

func TestCompilePipelineTypeError(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	// Returning an unknown name fails lowering before the walk runs.
	c := build.NewCompiler(pipelineFile(&ast.Identifier{Name: "missing"}), "", build.DefaultProfile())
	_, ok := c.Compile()
	assert.False(t, ok)
}
