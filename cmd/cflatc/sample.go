package main

import (
	"strconv"

	"cflatc/ast"
	"cflatc/report"
)

// sampleSource is the built-in demonstration program compiled by the `sample`
// subcommand.  It exercises structs, named arguments, inference, loops, and
// else-if chains.
const sampleSource = `struct Vec2 {
    i32 x;
    i32 y;
}

void print(msg: u8[] str) {}

void main() {
    i32 i = 0;
    loop {
        if i >= 100 { break }

        if i % 15 == 0 { print(msg = "fizzbuzz") }
        else if i % 3 == 0 { print(msg = "fizz") }
        else if i % 5 == 0 { print(msg = "buzz") }
        else { print(msg = "num") }
    }
}`

// at returns a single-line span.
func at(line, startCol, endCol int) *report.TextSpan {
	return &report.TextSpan{StartLine: line, StartCol: startCol, EndLine: line, EndCol: endCol}
}

func ident(name string, span *report.TextSpan) *ast.Identifier {
	return &ast.Identifier{NodeBase: ast.NewNodeBaseOn(span), Name: name}
}

func num(value int32, span *report.TextSpan) *ast.NumberLit {
	return &ast.NumberLit{NodeBase: ast.NewNodeBaseOn(span), Value: value}
}

func named(name string, span *report.TextSpan) *ast.NamedTypeExpr {
	return &ast.NamedTypeExpr{NodeBase: ast.NewNodeBaseOn(span), Name: name}
}

func binary(lhs ast.Expr, op ast.BinOpKind, rhs ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{
		NodeBase: ast.NewNodeBaseOver(lhs.Span(), rhs.Span()),
		Lhs:      lhs,
		Op:       op,
		Rhs:      rhs,
	}
}

func block(span *report.TextSpan, stmts ...ast.Stmt) *ast.BlockStmt {
	return &ast.BlockStmt{NodeBase: ast.NewNodeBaseOn(span), Stmts: stmts}
}

// printCall builds `print(msg = <text>)` with the string literal at the given
// position.
func printCall(line, callStart, litStart int, text string) *ast.ExprStmt {
	litEnd := litStart + len(text) + 1

	call := &ast.CallExpr{
		NodeBase: ast.NewNodeBaseOn(at(line, callStart, litEnd+1)),
		Func:     "print",
		Args: []ast.CallArg{
			{
				NodeBase: ast.NewNodeBaseOn(at(line, callStart+6, litEnd)),
				Name:     "msg",
				Value:    &ast.StringLit{NodeBase: ast.NewNodeBaseOn(at(line, litStart, litEnd)), Value: text},
			},
		},
	}

	return &ast.ExprStmt{NodeBase: ast.NewNodeBaseOn(call.Span()), Expr: call}
}

// fizzbuzzCase builds one `if i % <div> == 0 { print(msg = <text>) }` arm.
func fizzbuzzCase(line, condStart int, div int32, text string) (*ast.BinaryExpr, *ast.BlockStmt) {
	divEnd := condStart + 4 + len(strconv.Itoa(int(div)))

	cond := binary(
		binary(
			ident("i", at(line, condStart, condStart)),
			ast.BinMod,
			num(div, at(line, condStart+4, divEnd)),
		),
		ast.BinEq,
		num(0, at(line, divEnd+5, divEnd+5)),
	)

	body := block(at(line, divEnd+7, divEnd+30), printCall(line, divEnd+9, divEnd+19, text))

	return cond, body
}

// sampleFile constructs the syntax tree of sampleSource exactly as the parser
// would produce it.
func sampleFile() *ast.File {
	vec2 := &ast.StructDef{
		DefBase: ast.DefBase{
			NodeBase: ast.NewNodeBaseOver(at(0, 0, 5), at(3, 0, 0)),
			Name:     "Vec2",
			NSpan:    at(0, 7, 10),
		},
		Fields: []ast.FieldDef{
			{NodeBase: ast.NewNodeBaseOn(at(1, 4, 9)), Name: "x", Type: named("i32", at(1, 4, 6))},
			{NodeBase: ast.NewNodeBaseOn(at(2, 4, 9)), Name: "y", Type: named("i32", at(2, 4, 6))},
		},
	}

	printDef := &ast.FuncDef{
		DefBase: ast.DefBase{
			NodeBase: ast.NewNodeBaseOn(at(5, 0, 27)),
			Name:     "print",
			NSpan:    at(5, 5, 9),
		},
		Params: []ast.ParamDef{
			{
				NodeBase:    ast.NewNodeBaseOn(at(5, 11, 24)),
				OutwardName: "msg",
				Name:        "str",
				Type: &ast.SliceTypeExpr{
					NodeBase: ast.NewNodeBaseOn(at(5, 16, 20)),
					Elem:     named("u8", at(5, 16, 17)),
				},
			},
		},
		Body: block(at(5, 26, 27)),
	}

	// if i >= 100 { break }
	guard := &ast.IfStmt{
		NodeBase: ast.NewNodeBaseOn(at(10, 8, 28)),
		Cond: binary(
			ident("i", at(10, 11, 11)),
			ast.BinGe,
			num(100, at(10, 16, 18)),
		),
		Then: block(at(10, 20, 28),
			&ast.ExprStmt{
				NodeBase: ast.NewNodeBaseOn(at(10, 22, 26)),
				Expr:     &ast.BreakExpr{NodeBase: ast.NewNodeBaseOn(at(10, 22, 26))},
			}),
	}

	fizzbuzzCond, fizzbuzzBody := fizzbuzzCase(12, 11, 15, "fizzbuzz")
	fizzCond, fizzBody := fizzbuzzCase(13, 16, 3, "fizz")
	buzzCond, buzzBody := fizzbuzzCase(14, 16, 5, "buzz")

	// The trailing else arm: { print(msg = "num") }
	elseBody := block(at(15, 13, 35), printCall(15, 15, 25, "num"))

	// Else-if chains arrive as nested ifs in the else position.
	dispatch := &ast.IfStmt{
		NodeBase: ast.NewNodeBaseOver(at(12, 8, 9), elseBody.Span()),
		Cond:     fizzbuzzCond,
		Then:     fizzbuzzBody,
		Else: &ast.IfStmt{
			NodeBase: ast.NewNodeBaseOver(at(13, 13, 14), elseBody.Span()),
			Cond:     fizzCond,
			Then:     fizzBody,
			Else: &ast.IfStmt{
				NodeBase: ast.NewNodeBaseOver(at(14, 13, 14), elseBody.Span()),
				Cond:     buzzCond,
				Then:     buzzBody,
				Else:     elseBody,
			},
		},
	}

	mainFn := &ast.FuncDef{
		DefBase: ast.DefBase{
			NodeBase: ast.NewNodeBaseOver(at(7, 0, 12), at(17, 0, 0)),
			Name:     "main",
			NSpan:    at(7, 5, 8),
		},
		Body: block(report.NewSpanOver(at(7, 12, 12), at(17, 0, 0)),
			&ast.VarDecl{
				NodeBase:    ast.NewNodeBaseOn(at(8, 4, 13)),
				Name:        "i",
				Type:        named("i32", at(8, 4, 6)),
				Initializer: num(0, at(8, 12, 12)),
			},
			&ast.LoopStmt{
				NodeBase: ast.NewNodeBaseOver(at(9, 4, 7), at(16, 4, 4)),
				Body:     block(report.NewSpanOver(at(9, 9, 9), at(16, 4, 4)), guard, dispatch),
			}),
	}

	return &ast.File{
		Name: "sample.cf",
		Defs: []ast.Def{vec2, printDef, mainFn},
	}
}
