// Package walk performs type resolution over a lowered program: it resolves
// placeholder variable types from first assignments, validates every
// statement and expression against the type rules, and collects diagnostics
// without halting on the first error.
package walk

import (
	"cflatc/ir"
	"cflatc/report"
)

// Walker is responsible for walking a lowered program and performing type
// resolution on its functions.
type Walker struct {
	prog *ir.Program

	// The type errors collected so far.  The walker surfaces as many errors
	// as it can per run: a malformed function never hides the others.
	errors []*report.TypeError

	// The function currently being checked.
	fn *ir.Function

	// The declared return type of the enclosing function.
	enclosingReturnType ir.Type

	// The number of loops between the current statement and the function
	// block.  Break and continue are only legal when this is non-zero.
	loopDepth int
}

// Check type checks every function of the program, resolving variable types
// in place, and returns all collected type errors.  Variable types are
// committed whether or not errors were found: inference is best effort per
// statement.
func Check(prog *ir.Program) []*report.TypeError {
	w := &Walker{prog: prog}

	for _, fk := range prog.Funcs() {
		w.checkFunction(fk)
	}

	return w.errors
}

// checkFunction checks a single function body.
func (w *Walker) checkFunction(fk ir.FuncKey) {
	decl := w.prog.Decl(fk)

	w.fn = w.prog.Func(fk)
	w.enclosingReturnType = decl.Ret
	w.loopDepth = 0

	w.checkBlock(w.fn.Body)

	// A function with a non-unit return type must not be able to complete
	// without executing a return.
	if !ir.Equals(decl.Ret, ir.UnitType{}) && !blockReturns(w.fn.Body) {
		span := decl.Span
		if len(w.fn.Body.Stmts) > 0 {
			span = w.fn.Body.LastSpan()
		}

		w.error(report.MissingReturnValue, span,
			"function falls through without returning a value of type %s", decl.Ret.Repr())
	}

	// Any variable never given a concrete type is a resolution failure.
	for _, vk := range w.fn.Vars() {
		if _, ok := w.fn.VarType(vk).(ir.UndeclaredType); ok {
			v := w.fn.Var(vk)

			name := v.Name
			if name == "" {
				name = "<temporary>"
			}

			w.error(report.UninferredVariable, v.Span,
				"unable to infer a type for variable `%s`", name)
		}
	}
}

// error records a type error.
func (w *Walker) error(kind report.TypeErrorKind, span *report.TextSpan, msg string, args ...interface{}) {
	w.errors = append(w.errors, report.TypeRaise(kind, span, msg, args...))
}

/* -------------------------------------------------------------------------- */

// isUndeclared returns whether a type is the unresolved placeholder.  An
// undeclared type only arises downstream of an already-reported failure, so
// rules treat it as a suppressor rather than reporting again.
func isUndeclared(ty ir.Type) bool {
	_, ok := ty.(ir.UndeclaredType)
	return ok
}
