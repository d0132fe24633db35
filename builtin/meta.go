package builtin

import (
	"fmt"

	"github.com/titpetric/sassgo/value"
)

// registerMeta wires the type-introspection builtins that don't need
// scope access (type-of/inspect/if); the scope-dependent meta functions
// (variable-exists, mixin-exists, function-exists, global-variable-exists,
// call) are special-cased directly in ./eval instead, since Args carries
// no *scope.Scope (see DESIGN.md).
func registerMeta(r *Registry) {
	r.register("type-of", func(a Args) (value.Value, error) {
		v := a.Get(0, "value", nil)
		if v == nil {
			return nil, fmt.Errorf("missing argument $value")
		}
		k, err := value.Kind(v)
		if err != nil {
			return nil, err
		}
		return value.Bare(k), nil
	})
	r.register("inspect", func(a Args) (value.Value, error) {
		v := a.Get(0, "value", nil)
		if v == nil {
			return value.Bare("null"), nil
		}
		ev, err := value.Eval(v)
		if err != nil {
			return nil, err
		}
		return value.Bare(value.Inspect(ev)), nil
	})
	r.register("if", func(a Args) (value.Value, error) {
		cond := a.Get(0, "condition", nil)
		truthy, err := value.IsTrue(cond)
		if err != nil {
			return nil, err
		}
		if truthy {
			return a.Get(1, "if-true", value.Null), nil
		}
		return a.Get(2, "if-false", value.Null), nil
	})
	r.register("not", func(a Args) (value.Value, error) {
		truthy, err := value.IsTrue(a.Get(0, "value", nil))
		if err != nil {
			return nil, err
		}
		return value.Bool(!truthy), nil
	})
}
