package builtin

import (
	"fmt"

	"github.com/titpetric/sassgo/value"
)

// registerList wires the list builtins (length/nth/join/append/index/
// zip/list-separator/is-bracketed/set-nth), treating any non-List
// argument as a one-element list per Sass's "everything is a list"
// convention (original_source's Value::as_list).
func registerList(r *Registry) {
	r.register("length", func(a Args) (value.Value, error) {
		items, err := listArg(a, 0, "list")
		if err != nil {
			return nil, err
		}
		return value.Dim(value.NewNumberInt(int64(len(items))), value.NoUnit), nil
	})
	r.register("nth", func(a Args) (value.Value, error) {
		items, err := listArg(a, 0, "list")
		if err != nil {
			return nil, err
		}
		idx, err := listIndex(a.Get(1, "n", nil), len(items))
		if err != nil {
			return nil, err
		}
		return items[idx], nil
	})
	r.register("set-nth", func(a Args) (value.Value, error) {
		l, sep, br, err := listArgFull(a, 0, "list")
		if err != nil {
			return nil, err
		}
		idx, err := listIndex(a.Get(1, "n", nil), len(l))
		if err != nil {
			return nil, err
		}
		out := append([]value.Value{}, l...)
		out[idx] = a.Get(2, "value", nil)
		return value.List{Items: out, Separator: sep, Brackets: br}, nil
	})
	r.register("join", func(a Args) (value.Value, error) {
		l1, sep1, br, err := listArgFull(a, 0, "list1")
		if err != nil {
			return nil, err
		}
		l2, sep2, _, err := listArgFull(a, 1, "list2")
		if err != nil {
			return nil, err
		}
		sep := sep1
		if sep == value.Undecided {
			sep = sep2
		}
		if sv := a.Get(2, "separator", nil); sv != nil {
			if id, ok := mustIdent(sv); ok {
				switch id.Text {
				case "comma":
					sep = value.CommaSep
				case "space":
					sep = value.Space
				}
			}
		}
		return value.List{Items: append(append([]value.Value{}, l1...), l2...), Separator: sep, Brackets: br}, nil
	})
	r.register("append", func(a Args) (value.Value, error) {
		l, sep, br, err := listArgFull(a, 0, "list")
		if err != nil {
			return nil, err
		}
		if sep == value.Undecided {
			sep = value.Space
		}
		v := a.Get(1, "val", nil)
		return value.List{Items: append(append([]value.Value{}, l...), v), Separator: sep, Brackets: br}, nil
	})
	r.register("index", func(a Args) (value.Value, error) {
		items, err := listArg(a, 0, "list")
		if err != nil {
			return nil, err
		}
		v := a.Get(1, "value", nil)
		for i, it := range items {
			eq, err := value.Equals(it, v)
			if err == nil && eq {
				return value.Dim(value.NewNumberInt(int64(i+1)), value.NoUnit), nil
			}
		}
		return value.Null, nil
	})
	r.register("zip", func(a Args) (value.Value, error) {
		var lists [][]value.Value
		for i := range a.Positional {
			items, err := listArg(a, i, "")
			if err != nil {
				return nil, err
			}
			lists = append(lists, items)
		}
		minLen := -1
		for _, l := range lists {
			if minLen < 0 || len(l) < minLen {
				minLen = len(l)
			}
		}
		if minLen < 0 {
			minLen = 0
		}
		out := make([]value.Value, minLen)
		for i := 0; i < minLen; i++ {
			row := make([]value.Value, len(lists))
			for j, l := range lists {
				row[j] = l[i]
			}
			out[i] = value.List{Items: row, Separator: value.Space}
		}
		return value.List{Items: out, Separator: value.CommaSep}, nil
	})
	r.register("list-separator", func(a Args) (value.Value, error) {
		v := a.Get(0, "list", nil)
		if v == nil {
			return nil, fmt.Errorf("missing argument $list")
		}
		ev, err := value.Eval(v)
		if err != nil {
			return nil, err
		}
		if l, ok := ev.(value.List); ok {
			switch l.Separator {
			case value.CommaSep:
				return value.Bare("comma"), nil
			case value.Space:
				return value.Bare("space"), nil
			}
		}
		return value.Bare("space"), nil
	})
	r.register("is-bracketed", func(a Args) (value.Value, error) {
		v := a.Get(0, "list", nil)
		if v == nil {
			return nil, fmt.Errorf("missing argument $list")
		}
		ev, err := value.Eval(v)
		if err != nil {
			return nil, err
		}
		l, ok := ev.(value.List)
		return value.Bool(ok && l.Brackets == value.Bracketed), nil
	})
}

func mustIdent(v value.Value) (value.Ident, bool) {
	ev, err := value.Eval(v)
	if err != nil {
		return value.Ident{}, false
	}
	id, ok := ev.(value.Ident)
	return id, ok
}

// listArg evaluates argument i and returns its items, wrapping a
// non-list, non-null value as a singleton list.
func listArg(a Args, i int, name string) ([]value.Value, error) {
	items, _, _, err := listArgFull(a, i, name)
	return items, err
}

func listArgFull(a Args, i int, name string) ([]value.Value, value.ListSeparator, value.Brackets, error) {
	v := a.Get(i, name, nil)
	if v == nil {
		return nil, value.Undecided, value.NoBrackets, fmt.Errorf("missing argument $%s", name)
	}
	ev, err := value.Eval(v)
	if err != nil {
		return nil, value.Undecided, value.NoBrackets, err
	}
	if l, ok := ev.(value.List); ok {
		return l.Items, l.Separator, l.Brackets, nil
	}
	if value.IsNull(ev) {
		return nil, value.Undecided, value.NoBrackets, nil
	}
	return []value.Value{ev}, value.Undecided, value.NoBrackets, nil
}

// listIndex converts a 1-based Sass index, resolving out-of-range or
// non-numeric indices to an error.
func listIndex(v value.Value, length int) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("missing argument $n")
	}
	ev, err := value.Eval(v)
	if err != nil {
		return 0, err
	}
	d, ok := ev.(value.Dimension)
	if !ok {
		return 0, fmt.Errorf("$n: %s is not a number", value.Inspect(ev))
	}
	f, _ := d.Num.Rat().Float64()
	n := int(f)
	if n < 0 {
		n = length + n + 1
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("invalid index %d for a list of length %d", n, length)
	}
	return n - 1, nil
}
