package lower

import (
	"cflatc/ast"
	"cflatc/ir"
	"cflatc/report"
)

// declareTypeNames registers the name of every struct, union, enum, and alias
// definition with a placeholder body.  Duplicate names are collected and the
// offending definition is excluded from the returned map, so its body is
// never bound over the first declaration.
func (l *Lowerer) declareTypeNames(file *ast.File) map[ast.Def]ir.TypeKey {
	typeKeys := make(map[ast.Def]ir.TypeKey)

	for _, def := range file.Defs {
		switch def.(type) {
		case *ast.StructDef, *ast.UnionDef, *ast.EnumDef, *ast.AliasDef:
			tk, err := l.prog.DeclareType(def.DefName(), nil, def.NameSpan())
			if err != nil {
				l.errors = append(l.errors, err)
				continue
			}

			typeKeys[def] = tk
		}
	}

	return typeKeys
}

// bindTypeBodies lowers the body of every successfully declared nominal type
// now that the full name table exists.
func (l *Lowerer) bindTypeBodies(file *ast.File, typeKeys map[ast.Def]ir.TypeKey) {
	for _, def := range file.Defs {
		tk, ok := typeKeys[def]
		if !ok {
			continue
		}

		switch v := def.(type) {
		case *ast.StructDef:
			l.prog.BindType(tk, &ir.StructType{Fields: l.lowerFields(v.Fields)})
		case *ast.UnionDef:
			l.prog.BindType(tk, &ir.UnionType{Variants: l.lowerFields(v.Variants)})
		case *ast.EnumDef:
			variants := make([]ir.EnumVariant, len(v.Variants))
			for i, variant := range v.Variants {
				variants[i] = ir.EnumVariant{Name: variant.Name, Discriminant: variant.Discriminant}
			}

			l.prog.BindType(tk, &ir.EnumType{Variants: variants})
		case *ast.AliasDef:
			l.prog.BindType(tk, &ir.AliasType{Type: l.lowerTypeExpr(v.Type)})
		}
	}
}

// lowerFields lowers the field list of a struct or union definition.
func (l *Lowerer) lowerFields(fields []ast.FieldDef) []ir.Field {
	lowered := make([]ir.Field, len(fields))
	for i, field := range fields {
		lowered[i] = ir.Field{Name: field.Name, Type: l.lowerTypeExpr(field.Type)}
	}

	return lowered
}

// declareFunctions registers every function signature.  Duplicate names are
// collected and the offending definition is excluded from the returned map,
// so its body is never lowered.
func (l *Lowerer) declareFunctions(file *ast.File) map[*ast.FuncDef]ir.FuncKey {
	funcKeys := make(map[*ast.FuncDef]ir.FuncKey)

	for _, def := range file.Defs {
		fd, ok := def.(*ast.FuncDef)
		if !ok {
			continue
		}

		params := make([]ir.Param, len(fd.Params))
		for i, param := range fd.Params {
			params[i] = ir.Param{
				OutwardName: param.OutwardName,
				Name:        param.Name,
				Type:        l.lowerTypeExpr(param.Type),
			}
		}

		var ret ir.Type = ir.UnitType{}
		if fd.ReturnType != nil {
			ret = l.lowerTypeExpr(fd.ReturnType)
		}

		decl := &ir.FunctionDecl{Ret: ret, Params: params, Span: fd.NameSpan()}

		fk, err := l.prog.DeclareFunction(fd.DefName(), decl, fd.NameSpan())
		if err != nil {
			l.errors = append(l.errors, err)
			continue
		}

		funcKeys[fd] = fk
	}

	return funcKeys
}

/* -------------------------------------------------------------------------- */

// lowerTypeExpr resolves a syntactic type form into a structural IR type.
// Unresolvable names are collected as unknown type errors and lowered to the
// undeclared placeholder so later lowering can continue.
func (l *Lowerer) lowerTypeExpr(te ast.TypeExpr) ir.Type {
	switch v := te.(type) {
	case *ast.NamedTypeExpr:
		switch v.Name {
		case "i32":
			return ir.PrimI32
		case "f32":
			return ir.PrimF32
		case "bool":
			return ir.PrimBool
		case "u8":
			return ir.PrimU8
		case "void":
			return ir.UnitType{}
		}

		if tk, ok := l.prog.LookupType(v.Name); ok {
			return ir.DirectRef{Key: tk, Name: v.Name}
		}

		l.error(report.UnknownType, v.Span(), "undeclared type: `%s`", v.Name)
		return ir.UndeclaredType{}
	case *ast.PointerTypeExpr:
		return ir.PtrType{Elem: l.lowerTypeExpr(v.Elem)}
	case *ast.SliceTypeExpr:
		return ir.SliceType{Elem: l.lowerTypeExpr(v.Elem)}
	case *ast.ArrayTypeExpr:
		return ir.ArrayType{Elem: l.lowerTypeExpr(v.Elem), Len: v.Len}
	case *ast.FuncTypeExpr:
		params := make([]ir.Type, len(v.Params))
		for i, param := range v.Params {
			params[i] = l.lowerTypeExpr(param)
		}

		var ret ir.Type = ir.UnitType{}
		if v.Return != nil {
			ret = l.lowerTypeExpr(v.Return)
		}

		return ir.FuncType{Ret: ret, Params: params}
	default:
		report.ReportICE("unknown type expression %T", te)
		return nil
	}
}
