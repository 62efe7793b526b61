package ir

import "cflatc/report"

// Param is a single declared parameter of a function.
type Param struct {
	// The optional outward name used for call-by-name argument binding.
	// Empty if the parameter can only be bound positionally.
	OutwardName string

	// The internal name the function body refers to the parameter by.
	Name string

	Type Type
}

// FunctionDecl carries the declaration metadata of a function: its declared
// return type and ordered parameter list.  It is attached to the function key
// in a side table of the Program, decoupled from the executable body.
type FunctionDecl struct {
	// The declared return type.
	Ret Type

	// The declared parameters in order.
	Params []Param

	// The span of the declaration for error reporting.
	Span *report.TextSpan
}

// ParamByOutwardName returns the position of the parameter declared with the
// given outward name, or -1 if no parameter has it.
func (fd *FunctionDecl) ParamByOutwardName(name string) int {
	for i, param := range fd.Params {
		if param.OutwardName == name {
			return i
		}
	}

	return -1
}

/* -------------------------------------------------------------------------- */

// Variable is one slot of a function's local variable arena.
type Variable struct {
	// The variable's static type.  Starts as UndeclaredType for variables
	// declared without a type label; type resolution writes the inferred type
	// in place.
	Type Type

	// The name the variable was declared under.  Empty for compiler
	// temporaries.
	Name string

	// Where the variable was declared, for error reporting.
	Span *report.TextSpan
}

// Function is the executable body of a declared function: a local variable
// arena plus one block.
type Function struct {
	vars []Variable

	// The var keys of the declared parameters in order.
	Params []VarKey

	// The function body.
	Body *Block
}

// NewFunction creates a new function with an empty body.
func NewFunction() *Function {
	return &Function{Body: &Block{}}
}

// NewVar mints a variable in the function's local arena with the given
// starting type.  The name is empty for compiler temporaries.
func (fn *Function) NewVar(ty Type, name string, span *report.TextSpan) VarKey {
	fn.vars = append(fn.vars, Variable{Type: ty, Name: name, Span: span})
	return VarKey{key{idx: uint32(len(fn.vars) - 1), gen: liveGen}}
}

// Var returns the variable behind the given key.
func (fn *Function) Var(vk VarKey) Variable {
	return *fn.slot(vk)
}

// VarType returns the current static type of the given variable.
func (fn *Function) VarType(vk VarKey) Type {
	return fn.slot(vk).Type
}

// SetVarType writes the variable's resolved static type in place.
func (fn *Function) SetVarType(vk VarKey, ty Type) {
	fn.slot(vk).Type = ty
}

// Vars returns the keys of every variable in the local arena in mint order.
func (fn *Function) Vars() []VarKey {
	keys := make([]VarKey, len(fn.vars))
	for i := range fn.vars {
		keys[i] = VarKey{key{idx: uint32(i), gen: liveGen}}
	}

	return keys
}

func (fn *Function) slot(vk VarKey) *Variable {
	if !vk.IsValid() || int(vk.idx) >= len(fn.vars) {
		report.ReportICE("variable key %d is not owned by this function", vk.idx)
	}

	return &fn.vars[vk.idx]
}
