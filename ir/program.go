package ir

import "cflatc/report"

// Program is the arena store for one compilation run.  It owns every
// function, nominal type, and string literal behind stable opaque keys, plus
// the name tables mapping declared names to keys.  A Program is built once by
// lowering and then mutated in place by type resolution; nothing is ever
// deleted.  Each run constructs its own Program: there is no process-wide
// state.
type Program struct {
	funcNames map[string]FuncKey
	typeNames map[string]TypeKey

	functions []*Function

	// funcDecls is the side table attaching declaration metadata to function
	// keys, parallel to functions.
	funcDecls []*FunctionDecl

	types    []DirectType
	literals []string

	// Declared names by arena index, kept for error reporting and display.
	funcNamesByIdx []string
	typeNamesByIdx []string
}

// NewProgram creates a new empty program.
func NewProgram() *Program {
	return &Program{
		funcNames: make(map[string]FuncKey),
		typeNames: make(map[string]TypeKey),
	}
}

/* -------------------------------------------------------------------------- */

// DeclareType registers a nominal type under the given name.  The definition
// may be nil: lowering registers every type name first and binds bodies with
// BindType once the whole table exists, so that mutually recursive
// definitions resolve regardless of declaration order.  Declaring a name the
// table already holds fails with a duplicate type error and leaves the store
// unchanged.
func (p *Program) DeclareType(name string, dt DirectType, span *report.TextSpan) (TypeKey, *report.LowerError) {
	if _, ok := p.typeNames[name]; ok {
		return TypeKey{}, report.LowerRaise(report.DuplicateType, span, "type is already declared: `%s`", name)
	}

	k := TypeKey{key{idx: uint32(len(p.types)), gen: liveGen}}
	p.types = append(p.types, dt)
	p.typeNamesByIdx = append(p.typeNamesByIdx, name)
	p.typeNames[name] = k

	return k, nil
}

// BindType attaches the definition of a previously declared nominal type.
func (p *Program) BindType(k TypeKey, dt DirectType) {
	p.checkTypeKey(k)
	p.types[k.idx] = dt
}

// DeclareFunction registers a function under the given name, attaching its
// declaration to the key's side table and minting an empty body for it.
// Declaring a name the table already holds fails with a duplicate function
// error and leaves the store unchanged.
func (p *Program) DeclareFunction(name string, decl *FunctionDecl, span *report.TextSpan) (FuncKey, *report.LowerError) {
	if _, ok := p.funcNames[name]; ok {
		return FuncKey{}, report.LowerRaise(report.DuplicateFunction, span, "function is already declared: `%s`", name)
	}

	k := FuncKey{key{idx: uint32(len(p.functions)), gen: liveGen}}
	p.functions = append(p.functions, NewFunction())
	p.funcDecls = append(p.funcDecls, decl)
	p.funcNamesByIdx = append(p.funcNamesByIdx, name)
	p.funcNames[name] = k

	return k, nil
}

// InternLiteral stores a string literal and returns its key.  Literals are
// not deduplicated by content: each occurrence gets a fresh key.
func (p *Program) InternLiteral(text string) LiteralKey {
	k := LiteralKey{key{idx: uint32(len(p.literals)), gen: liveGen}}
	p.literals = append(p.literals, text)

	return k
}

/* -------------------------------------------------------------------------- */

// LookupType resolves a type name against the name table.
func (p *Program) LookupType(name string) (TypeKey, bool) {
	k, ok := p.typeNames[name]
	return k, ok
}

// LookupFunction resolves a function name against the name table.
func (p *Program) LookupFunction(name string) (FuncKey, bool) {
	k, ok := p.funcNames[name]
	return k, ok
}

// TypeDef returns the definition of a nominal type.
func (p *Program) TypeDef(k TypeKey) DirectType {
	p.checkTypeKey(k)
	return p.types[k.idx]
}

// TypeName returns the declared name of a nominal type.
func (p *Program) TypeName(k TypeKey) string {
	p.checkTypeKey(k)
	return p.typeNamesByIdx[k.idx]
}

// Func returns the executable body of a function.
func (p *Program) Func(k FuncKey) *Function {
	p.checkFuncKey(k)
	return p.functions[k.idx]
}

// Decl returns the declaration metadata of a function.
func (p *Program) Decl(k FuncKey) *FunctionDecl {
	p.checkFuncKey(k)
	return p.funcDecls[k.idx]
}

// FuncName returns the declared name of a function.
func (p *Program) FuncName(k FuncKey) string {
	p.checkFuncKey(k)
	return p.funcNamesByIdx[k.idx]
}

// Literal returns the text of an interned string literal.
func (p *Program) Literal(k LiteralKey) string {
	if !k.IsValid() || int(k.idx) >= len(p.literals) {
		report.ReportICE("literal key %d is not owned by this program", k.idx)
	}

	return p.literals[k.idx]
}

// Funcs returns the keys of every declared function in declaration order.
func (p *Program) Funcs() []FuncKey {
	keys := make([]FuncKey, len(p.functions))
	for i := range p.functions {
		keys[i] = FuncKey{key{idx: uint32(i), gen: liveGen}}
	}

	return keys
}

// Types returns the keys of every declared nominal type in declaration order.
func (p *Program) Types() []TypeKey {
	keys := make([]TypeKey, len(p.types))
	for i := range p.types {
		keys[i] = TypeKey{key{idx: uint32(i), gen: liveGen}}
	}

	return keys
}

/* -------------------------------------------------------------------------- */

func (p *Program) checkTypeKey(k TypeKey) {
	if !k.IsValid() || int(k.idx) >= len(p.types) {
		report.ReportICE("type key %d is not owned by this program", k.idx)
	}
}

func (p *Program) checkFuncKey(k FuncKey) {
	if !k.IsValid() || int(k.idx) >= len(p.functions) {
		report.ReportICE("function key %d is not owned by this program", k.idx)
	}
}
