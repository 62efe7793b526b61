// Package build drives the middle tier over one translation unit: lowering
// the syntax tree into the program arena, resolving types, and reporting the
// collected diagnostics.
package build

import (
	"fmt"

	"github.com/kr/pretty"

	"cflatc/ast"
	"cflatc/display"
	"cflatc/ir"
	"cflatc/lower"
	"cflatc/report"
	"cflatc/walk"
)

// Compiler runs the compilation pipeline over a single translation unit.
type Compiler struct {
	// The source text of the unit.  May be empty, in which case diagnostics
	// are printed without source excerpts.
	src string

	// The parsed unit to compile.
	file *ast.File

	// The active build profile.
	profile *Profile
}

// NewCompiler creates a compiler for the given unit under the given profile.
func NewCompiler(file *ast.File, src string, profile *Profile) *Compiler {
	return &Compiler{src: src, file: file, profile: profile}
}

// Compile lowers and checks the unit, reporting every collected diagnostic.
// The lowered program is returned along with whether it is error free.
func (c *Compiler) Compile() (*ir.Program, bool) {
	prog, lowerErrs := lower.Lower(c.file)
	report.ReportLowerErrors(c.file.Name, c.src, lowerErrs)

	// A program that failed to lower must not be walked: unresolved names
	// lowered to placeholders would only produce noise.
	if len(lowerErrs) > 0 {
		return prog, false
	}

	typeErrs := walk.Check(prog)
	report.ReportTypeErrors(c.file.Name, c.src, typeErrs)

	if c.profile.DumpIR {
		fmt.Print(display.RenderProgram(prog))
	}

	if c.profile.Debug {
		pretty.Printf("%# v\n", pretty.Formatter(prog))
	}

	return prog, len(typeErrs) == 0
}
