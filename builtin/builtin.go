// Package builtin implements the native Sass function registry: math,
// string, color, list, map, and meta functions that are always in scope
// regardless of user @function declarations. Grounded on lessgo's
// renderer.evaluateFunction dispatch table (a big name-keyed switch) but
// restructured as a registry of Func values so ./eval can look one up by
// name without a giant switch of its own, and so user @function
// definitions shadow these by checking the registry second (spec.md
// §6.4/§9).
package builtin

import "github.com/titpetric/sassgo/value"

// Args is a call's already-evaluated arguments: Positional in call order,
// Named by declared parameter name. Builtins never see an ArgList splat
// directly; ./eval expands `...` before calling in.
type Args struct {
	Positional []value.Value
	Named      map[string]value.Value
}

// Get returns the i'th positional argument, or the named fallback, or
// def if neither is present.
func (a Args) Get(i int, name string, def value.Value) value.Value {
	if i < len(a.Positional) {
		return a.Positional[i]
	}
	if v, ok := a.Named[name]; ok {
		return v
	}
	return def
}

// Len reports how many arguments (positional + named) were passed.
func (a Args) Len() int { return len(a.Positional) + len(a.Named) }

// Func is a native function's implementation.
type Func func(args Args) (value.Value, error)

// Registry is a name-keyed table of native functions.
type Registry struct {
	funcs map[string]Func
}

// Lookup returns the function registered under name, if any.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

func (r *Registry) register(name string, fn Func) {
	r.funcs[name] = fn
}

// NewRegistry builds the default registry covering spec.md §6.4's builtin
// surface: math, color, string, list, map, and meta families.
func NewRegistry() *Registry {
	r := &Registry{funcs: map[string]Func{}}
	registerMath(r)
	registerColor(r)
	registerString(r)
	registerList(r)
	registerMap(r)
	registerMeta(r)
	return r
}
