package builtin

import (
	"fmt"

	"github.com/titpetric/sassgo/value"
)

// registerMap wires the map builtins. lessgo has no map type at all (LESS
// has only detached rulesets/variables), so this family is grounded
// directly on original_source's map.rs function set instead.
func registerMap(r *Registry) {
	r.register("map-get", func(a Args) (value.Value, error) {
		m, err := mapArg(a, 0, "map")
		if err != nil {
			return nil, err
		}
		key := a.Get(1, "key", nil)
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		return value.Null, nil
	})
	r.register("map-has-key", func(a Args) (value.Value, error) {
		m, err := mapArg(a, 0, "map")
		if err != nil {
			return nil, err
		}
		_, ok := m.Get(a.Get(1, "key", nil))
		return value.Bool(ok), nil
	})
	r.register("map-keys", func(a Args) (value.Value, error) {
		m, err := mapArg(a, 0, "map")
		if err != nil {
			return nil, err
		}
		items := make([]value.Value, len(m.Entries))
		for i, e := range m.Entries {
			items[i] = e.Key
		}
		return value.List{Items: items, Separator: value.CommaSep}, nil
	})
	r.register("map-values", func(a Args) (value.Value, error) {
		m, err := mapArg(a, 0, "map")
		if err != nil {
			return nil, err
		}
		items := make([]value.Value, len(m.Entries))
		for i, e := range m.Entries {
			items[i] = e.Value
		}
		return value.List{Items: items, Separator: value.CommaSep}, nil
	})
	r.register("map-merge", func(a Args) (value.Value, error) {
		m1, err := mapArg(a, 0, "map1")
		if err != nil {
			return nil, err
		}
		m2, err := mapArg(a, 1, "map2")
		if err != nil {
			return nil, err
		}
		out := append([]value.MapEntry{}, m1.Entries...)
		for _, e := range m2.Entries {
			replaced := false
			for i, o := range out {
				if eq, _ := value.Equals(o.Key, e.Key); eq {
					out[i].Value = e.Value
					replaced = true
					break
				}
			}
			if !replaced {
				out = append(out, e)
			}
		}
		return value.MapValue{Entries: out}, nil
	})
	r.register("map-remove", func(a Args) (value.Value, error) {
		m, err := mapArg(a, 0, "map")
		if err != nil {
			return nil, err
		}
		var out []value.MapEntry
		for _, e := range m.Entries {
			remove := false
			for _, k := range a.Positional[1:] {
				if eq, _ := value.Equals(e.Key, k); eq {
					remove = true
					break
				}
			}
			if !remove {
				out = append(out, e)
			}
		}
		return value.MapValue{Entries: out}, nil
	})
}

func mapArg(a Args, i int, name string) (value.MapValue, error) {
	v := a.Get(i, name, nil)
	if v == nil {
		return value.MapValue{}, fmt.Errorf("missing argument $%s", name)
	}
	ev, err := value.Eval(v)
	if err != nil {
		return value.MapValue{}, err
	}
	m, ok := ev.(value.MapValue)
	if !ok {
		return value.MapValue{}, fmt.Errorf("$%s: %s is not a map", name, value.Inspect(ev))
	}
	return m, nil
}
