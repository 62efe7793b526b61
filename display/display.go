// Package display renders a lowered program back to readable text.  The
// rendering is a debugging aid: it shows the flattened statement stream and
// the variable types committed by resolution, not the original source.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"cflatc/ir"
	"cflatc/report"
	"cflatc/util"
)

// RenderProgram returns the full textual representation of a program.
func RenderProgram(prog *ir.Program) string {
	sb := strings.Builder{}

	for _, tk := range prog.Types() {
		sb.WriteString(renderTypeDef(prog, tk))
		sb.WriteRune('\n')
	}

	if len(prog.Types()) > 0 {
		sb.WriteRune('\n')
	}

	for _, fk := range prog.Funcs() {
		r := &renderer{prog: prog, fn: prog.Func(fk), varNums: make(map[ir.VarKey]int)}

		for i, vk := range r.fn.Vars() {
			r.varNums[vk] = i
		}

		r.renderFunction(fk)

		sb.WriteString(r.sb.String())
		sb.WriteRune('\n')
	}

	return sb.String()
}

// renderTypeDef renders one nominal type definition.
func renderTypeDef(prog *ir.Program, tk ir.TypeKey) string {
	name := prog.TypeName(tk)

	switch v := prog.TypeDef(tk).(type) {
	case *ir.StructType:
		return fmt.Sprintf("struct %s { %s };", name, renderFields(v.Fields))
	case *ir.UnionType:
		return fmt.Sprintf("union %s { %s };", name, renderFields(v.Variants))
	case *ir.EnumType:
		variants := util.Map(v.Variants, func(ev ir.EnumVariant) string {
			return fmt.Sprintf("%s = %d", ev.Name, ev.Discriminant)
		})

		return fmt.Sprintf("enum %s { %s };", name, strings.Join(variants, ", "))
	case *ir.AliasType:
		return fmt.Sprintf("type %s = %s;", name, v.Type.Repr())
	default:
		// A nil definition means declaration failed part way through.
		return fmt.Sprintf("type %s = <unbound>;", name)
	}
}

func renderFields(fields []ir.Field) string {
	return strings.Join(util.Map(fields, func(f ir.Field) string {
		return f.Name + ": " + f.Type.Repr()
	}), ", ")
}

/* -------------------------------------------------------------------------- */

// renderer renders the body of a single function.  Variables print as vN in
// arena order so that distinct variables sharing a source name stay distinct.
type renderer struct {
	prog    *ir.Program
	fn      *ir.Function
	varNums map[ir.VarKey]int

	sb     strings.Builder
	indent int
}

func (r *renderer) renderFunction(fk ir.FuncKey) {
	decl := r.prog.Decl(fk)

	params := util.Map(r.fn.Params, func(vk ir.VarKey) string {
		return r.varRepr(vk) + ": " + r.fn.VarType(vk).Repr()
	})

	r.sb.WriteString(fmt.Sprintf("fn %s(%s) -> %s {\n",
		r.prog.FuncName(fk), strings.Join(params, ", "), decl.Ret.Repr()))

	r.indent++

	// Non-parameter variables are listed up front with their resolved types
	// and source names, since the statements only mention them as vN.
	for _, vk := range r.fn.Vars() {
		if paramKey(r.fn.Params, vk) {
			continue
		}

		v := r.fn.Var(vk)

		r.writeIndent()
		r.sb.WriteString(fmt.Sprintf("var %s: %s;", r.varRepr(vk), v.Type.Repr()))

		if v.Name != "" {
			r.sb.WriteString("  # " + v.Name)
		}

		r.sb.WriteRune('\n')
	}

	r.renderStmts(r.fn.Body)

	r.indent--
	r.sb.WriteString("}\n")
}

func paramKey(params []ir.VarKey, vk ir.VarKey) bool {
	for _, pk := range params {
		if pk == vk {
			return true
		}
	}

	return false
}

func (r *renderer) writeIndent() {
	for i := 0; i < r.indent; i++ {
		r.sb.WriteString("    ")
	}
}

func (r *renderer) renderStmts(b *ir.Block) {
	for _, stmt := range b.Stmts {
		r.renderStmt(stmt)
	}
}

func (r *renderer) renderStmt(stmt ir.Statement) {
	switch v := stmt.(type) {
	case *ir.AssignStmt:
		r.writeIndent()
		r.sb.WriteString(r.varRepr(v.Var) + " = " + r.exprRepr(v.Expr) + ";\n")
	case *ir.DerefAssignStmt:
		r.writeIndent()
		r.sb.WriteString("*" + r.exprRepr(v.Target) + " = " + r.exprRepr(v.Value) + ";\n")
	case *ir.FieldAssignStmt:
		r.writeIndent()
		r.sb.WriteString(r.exprRepr(v.Object) + "." + v.Field + " = " + r.exprRepr(v.Value) + ";\n")
	case *ir.DoStmt:
		r.writeIndent()
		r.sb.WriteString(r.exprRepr(v.Expr) + ";\n")
	case *ir.BlockStmt:
		r.renderBlock(v.Block)
		r.sb.WriteRune('\n')
	case *ir.IfStmt:
		r.writeIndent()
		r.sb.WriteString("if " + r.exprRepr(v.Cond) + " ")
		r.renderBlockInline(v.Then)

		if v.Else != nil {
			r.sb.WriteString(" else ")
			r.renderBlockInline(v.Else)
		}

		r.sb.WriteRune('\n')
	case *ir.LoopStmt:
		r.writeIndent()
		r.sb.WriteString("loop ")
		r.renderBlockInline(v.Body)
		r.sb.WriteRune('\n')
	default:
		report.ReportICE("unknown statement %T", stmt)
	}
}

// renderBlock renders a braced block starting on its own line.
func (r *renderer) renderBlock(b *ir.Block) {
	r.writeIndent()
	r.renderBlockInline(b)
}

// renderBlockInline renders a braced block continuing the current line.
func (r *renderer) renderBlockInline(b *ir.Block) {
	r.sb.WriteString("{\n")

	r.indent++
	r.renderStmts(b)
	r.indent--

	r.writeIndent()
	r.sb.WriteRune('}')
}

/* -------------------------------------------------------------------------- */

func (r *renderer) exprRepr(expr ir.Expr) string {
	switch v := expr.(type) {
	case *ir.ValueExpr:
		return r.valueRepr(v.Value)
	case *ir.FieldAccessExpr:
		return r.valueRepr(v.Object) + "." + v.Field
	case *ir.PathAccessExpr:
		return r.prog.TypeName(v.Type) + "::" + v.Member
	case *ir.CallExpr:
		args := util.Map(v.Args, func(arg ir.Value) string {
			if arg == nil {
				return "_"
			}

			return r.valueRepr(arg)
		})
		return r.prog.FuncName(v.Func) + "(" + strings.Join(args, ", ") + ")"
	case *ir.ReturnExpr:
		if v.Value == nil {
			return "return"
		}

		return "return " + r.valueRepr(v.Value)
	case *ir.BreakExpr:
		return "break"
	case *ir.ContinueExpr:
		return "continue"
	case *ir.BinaryExpr:
		return fmt.Sprintf("%s %s %s", r.valueRepr(v.Lhs), v.Op, r.valueRepr(v.Rhs))
	case *ir.UnaryExpr:
		return v.Op.String() + r.valueRepr(v.Operand)
	default:
		report.ReportICE("unknown expression %T", expr)
		return ""
	}
}

func (r *renderer) valueRepr(value ir.Value) string {
	switch v := value.(type) {
	case *ir.VarValue:
		return r.varRepr(v.Var)
	case *ir.NumValue:
		return strconv.Itoa(int(v.Value))
	case *ir.LitValue:
		return strconv.Quote(r.prog.Literal(v.Lit))
	case *ir.UninitValue:
		return "---"
	case *ir.UnitValue:
		return "()"
	default:
		report.ReportICE("unknown value %T", value)
		return ""
	}
}

func (r *renderer) varRepr(vk ir.VarKey) string {
	return "v" + strconv.Itoa(r.varNums[vk])
}
