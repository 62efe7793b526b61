// Package lower translates the syntax tree produced by the front end into the
// arena-resident IR.  Every textual name is resolved to an arena key at this
// stage; nothing by-name survives into type resolution.
package lower

import (
	"cflatc/ast"
	"cflatc/ir"
	"cflatc/report"
)

// Lowerer is the construct responsible for converting a translation unit into
// an IR program.
type Lowerer struct {
	prog *ir.Program

	// The lowering errors collected so far.  Lowering is non-fatal per item:
	// one bad definition never hides the errors of another.
	errors []*report.LowerError

	// The function currently being lowered.
	fn *ir.Function

	// The block statements are currently being emitted into.
	block *ir.Block

	// The stack of local scopes mapping names to variable keys.  Scopes are
	// pushed on block entry and popped on block exit, so an inner declaration
	// shadows an outer one for the block's lifetime only.
	scopes []map[string]ir.VarKey
}

// Lower lowers a translation unit into a fresh program.  If any errors were
// collected, the returned program must not be trusted and type resolution
// must not be run over it.
func Lower(file *ast.File) (*ir.Program, []*report.LowerError) {
	l := &Lowerer{prog: ir.NewProgram()}

	// Register every nominal type name, then bind the type bodies, then
	// register every function signature.  Splitting registration from binding
	// lets definitions reference each other regardless of declaration order.
	typeKeys := l.declareTypeNames(file)
	l.bindTypeBodies(file, typeKeys)
	funcKeys := l.declareFunctions(file)

	for _, def := range file.Defs {
		if fd, ok := def.(*ast.FuncDef); ok {
			if fk, ok := funcKeys[fd]; ok {
				l.lowerBody(fk, fd)
			}
		}
	}

	return l.prog, l.errors
}

/* -------------------------------------------------------------------------- */

// lookup looks up a variable by name in all visible scopes, innermost first.
func (l *Lowerer) lookup(name string) (ir.VarKey, bool) {
	for i := len(l.scopes) - 1; i >= 0; i-- {
		if vk, ok := l.scopes[i][name]; ok {
			return vk, true
		}
	}

	return ir.VarKey{}, false
}

// define binds a name to a variable key in the current scope.
func (l *Lowerer) define(name string, vk ir.VarKey) {
	l.scopes[len(l.scopes)-1][name] = vk
}

// pushScope pushes a new local scope onto the scope stack.
func (l *Lowerer) pushScope() {
	l.scopes = append(l.scopes, make(map[string]ir.VarKey))
}

// popScope removes the top local scope from the scope stack.
func (l *Lowerer) popScope() {
	l.scopes = l.scopes[:len(l.scopes)-1]
}

// emit appends a statement to the block currently being lowered.
func (l *Lowerer) emit(stmt ir.Statement) {
	l.block.Stmts = append(l.block.Stmts, stmt)
}

// error records a lowering error.
func (l *Lowerer) error(kind report.LowerErrorKind, span *report.TextSpan, msg string, args ...interface{}) {
	l.errors = append(l.errors, report.LowerRaise(kind, span, msg, args...))
}
