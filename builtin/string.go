package builtin

import (
	"fmt"
	"strings"

	"github.com/titpetric/sassgo/value"
)

// registerString wires the string builtins, grounded on original_source's
// string-function family (quote/unquote/str-length/str-slice/str-index/
// str-insert/to-upper-case/to-lower-case), which lessgo has no direct
// analogue for since LESS has no first-class string functions.
func registerString(r *Registry) {
	r.register("quote", func(a Args) (value.Value, error) {
		s, err := strArg(a, 0, "string")
		if err != nil {
			return nil, err
		}
		return value.Str(s), nil
	})
	r.register("unquote", func(a Args) (value.Value, error) {
		s, err := strArg(a, 0, "string")
		if err != nil {
			return nil, err
		}
		return value.Bare(s), nil
	})
	r.register("str-length", func(a Args) (value.Value, error) {
		s, err := strArg(a, 0, "string")
		if err != nil {
			return nil, err
		}
		return value.Dim(value.NewNumberInt(int64(len([]rune(s)))), value.NoUnit), nil
	})
	r.register("to-upper-case", strMap(strings.ToUpper))
	r.register("to-lower-case", strMap(strings.ToLower))
	r.register("str-slice", func(a Args) (value.Value, error) {
		s, err := strArg(a, 0, "string")
		if err != nil {
			return nil, err
		}
		runes := []rune(s)
		start := int(numFloat(a.Get(1, "start-at", nil)))
		end := len(runes)
		if ev := a.Get(2, "end-at", nil); ev != nil {
			end = int(numFloat(ev))
		}
		start, end = clampSlice(start, end, len(runes))
		if start >= end {
			return value.Str(""), nil
		}
		return value.Str(string(runes[start:end])), nil
	})
	r.register("str-index", func(a Args) (value.Value, error) {
		s, err := strArg(a, 0, "string")
		if err != nil {
			return nil, err
		}
		sub, err := strArg(a, 1, "substring")
		if err != nil {
			return nil, err
		}
		idx := strings.Index(s, sub)
		if idx < 0 {
			return value.Null, nil
		}
		return value.Dim(value.NewNumberInt(int64(len([]rune(s[:idx]))+1)), value.NoUnit), nil
	})
	r.register("str-insert", func(a Args) (value.Value, error) {
		s, err := strArg(a, 0, "string")
		if err != nil {
			return nil, err
		}
		ins, err := strArg(a, 1, "insert")
		if err != nil {
			return nil, err
		}
		runes := []rune(s)
		idx := int(numFloat(a.Get(2, "index", nil)))
		idx, _ = clampSlice(idx, len(runes), len(runes))
		return value.Str(string(runes[:idx]) + ins + string(runes[idx:])), nil
	})
}

func strArg(a Args, i int, name string) (string, error) {
	v := a.Get(i, name, nil)
	if v == nil {
		return "", fmt.Errorf("missing argument $%s", name)
	}
	ev, err := value.Eval(v)
	if err != nil {
		return "", err
	}
	id, ok := ev.(value.Ident)
	if !ok {
		return "", fmt.Errorf("$%s: %s is not a string", name, value.Inspect(ev))
	}
	return id.Text, nil
}

func strMap(f func(string) string) Func {
	return func(a Args) (value.Value, error) {
		v := a.Get(0, "string", nil)
		if v == nil {
			return nil, fmt.Errorf("missing argument $string")
		}
		ev, err := value.Eval(v)
		if err != nil {
			return nil, err
		}
		id, ok := ev.(value.Ident)
		if !ok {
			return nil, fmt.Errorf("$string: %s is not a string", value.Inspect(ev))
		}
		return value.Ident{Text: f(id.Text), Quote: id.Quote}, nil
	}
}

// clampSlice converts Sass's 1-based, negative-from-end string indices
// (end inclusive) into a [start,end) Go slice range, clamped to [0,length].
func clampSlice(start, end, length int) (int, int) {
	norm := func(i int) int {
		if i < 0 {
			i = length + i + 1
		}
		if i < 1 {
			i = 1
		}
		if i > length+1 {
			i = length + 1
		}
		return i - 1
	}
	if end < 0 {
		end = length + end + 1
	}
	if end < 0 {
		end = 0
	}
	if end > length {
		end = length
	}
	return norm(start), end
}
