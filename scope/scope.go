// Package scope implements the nested lookup chain used for Sass
// variables, mixins, and functions: a stack of frames searched from the
// innermost outward, grounded on lessgo's parser.Stack but simplified
// since Sass identifiers are flat names (no lessgo-style dotted/bracket
// path resolution is needed here — that machinery in parser/stack.go is
// not reused, see DESIGN.md).
package scope

import "github.com/titpetric/sassgo/value"

// Scope is one frame of variables/mixins/functions, linked to its
// lexical parent. A Scope is created per rule-set, per mixin/function
// call, and per control-flow body.
type Scope struct {
	parent *Scope
	vars   map[string]value.Value
	mixins map[string]MixinDef
	funcs  map[string]FunctionDef
}

// MixinDef and FunctionDef are implemented by ./eval's concrete mixin/
// function representation (ast.Block + closure Scope). Defined here as
// marker interfaces rather than concrete structs so ./scope doesn't need
// to import ./ast, avoiding an eval<->ast<->scope import cycle.
type MixinDef interface{ MixinName() string }
type FunctionDef interface{ FunctionName() string }

// New creates a root scope with no parent.
func New() *Scope {
	return &Scope{vars: map[string]value.Value{}, mixins: map[string]MixinDef{}, funcs: map[string]FunctionDef{}}
}

// Child creates a new frame nested under s.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s, vars: map[string]value.Value{}, mixins: map[string]MixinDef{}, funcs: map[string]FunctionDef{}}
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }

// Lookup walks from s outward looking for name, returning (value, true)
// at the first frame that defines it.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	for f := s; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set assigns name in the innermost frame that already declares it (so
// assignment inside a nested block updates the outer variable, matching
// normal Sass scoping); if no frame declares it, it is declared in s.
func (s *Scope) Set(name string, v value.Value) {
	for f := s; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return
		}
	}
	s.vars[name] = v
}

// SetGlobal implements `!global`: assigns in the outermost (root) frame
// regardless of where it's called from.
func (s *Scope) SetGlobal(name string, v value.Value) {
	root := s
	for root.parent != nil {
		root = root.parent
	}
	root.vars[name] = v
}

// SetLocal declares/overwrites name strictly in s's own frame, used for
// mixin/function parameter binding where shadowing is intentional.
func (s *Scope) SetLocal(name string, v value.Value) {
	s.vars[name] = v
}

// SetDefault implements `!default`: assigns only if name is not already
// defined anywhere in the chain.
func (s *Scope) SetDefault(name string, v value.Value) {
	if _, ok := s.Lookup(name); ok {
		return
	}
	s.vars[name] = v
}

// DefineMixin/DefineFunction register a definition in s's own frame.
func (s *Scope) DefineMixin(m MixinDef)      { s.mixins[m.MixinName()] = m }
func (s *Scope) DefineFunction(fn FunctionDef) { s.funcs[fn.FunctionName()] = fn }

// LookupMixin/LookupFunction walk outward like Lookup.
func (s *Scope) LookupMixin(name string) (MixinDef, bool) {
	for f := s; f != nil; f = f.parent {
		if m, ok := f.mixins[name]; ok {
			return m, true
		}
	}
	return nil, false
}

func (s *Scope) LookupFunction(name string) (FunctionDef, bool) {
	for f := s; f != nil; f = f.parent {
		if fn, ok := f.funcs[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// VariableExists/MixinExists/FunctionExists back the meta.* builtins.
func (s *Scope) VariableExists(name string) bool { _, ok := s.Lookup(name); return ok }
func (s *Scope) MixinExists(name string) bool    { _, ok := s.LookupMixin(name); return ok }
func (s *Scope) FunctionExists(name string) bool { _, ok := s.LookupFunction(name); return ok }

// GlobalVariableExists checks only the root frame, per Sass's
// global-variable-exists().
func (s *Scope) GlobalVariableExists(name string) bool {
	root := s
	for root.parent != nil {
		root = root.parent
	}
	_, ok := root.vars[name]
	return ok
}
