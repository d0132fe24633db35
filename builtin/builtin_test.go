package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/builtin"
	"github.com/titpetric/sassgo/value"
)

func dim(n int64, unit string) value.Dimension {
	return value.Dim(value.NewNumberInt(n), value.NewUnit(unit))
}

func call(t *testing.T, reg *builtin.Registry, name string, args ...value.Value) value.Value {
	t.Helper()
	fn, ok := reg.Lookup(name)
	require.True(t, ok, "builtin %q not registered", name)
	v, err := fn(builtin.Args{Positional: args})
	require.NoError(t, err)
	return v
}

func TestMathBuiltins(t *testing.T) {
	reg := builtin.NewRegistry()

	require.Equal(t, "100%", value.Display(call(t, reg, "percentage", dim(1, ""))))

	frac, ok := value.NewNumberString("2.4")
	require.True(t, ok)
	require.Equal(t, "3", value.Display(call(t, reg, "ceil", value.Dim(frac, value.NoUnit))))
	require.Equal(t, "2", value.Display(call(t, reg, "floor", value.Dim(frac, value.NoUnit))))
	require.Equal(t, "5px", value.Display(call(t, reg, "abs", dim(-5, "px"))))
	require.Equal(t, "1px", value.Display(call(t, reg, "min", dim(5, "px"), dim(1, "px"))))
	require.Equal(t, "5px", value.Display(call(t, reg, "max", dim(5, "px"), dim(1, "px"))))
}

func TestListBuiltins(t *testing.T) {
	reg := builtin.NewRegistry()
	list := value.List{Items: []value.Value{dim(1, "px"), dim(2, "px"), dim(3, "px")}, Separator: value.CommaSep}

	require.Equal(t, "3", value.Display(call(t, reg, "length", list)))
	require.Equal(t, "2px", value.Display(call(t, reg, "nth", list, dim(2, ""))))
	require.Equal(t, "2", value.Display(call(t, reg, "index", list, dim(2, "px"))))
}

func TestStringBuiltins(t *testing.T) {
	reg := builtin.NewRegistry()

	require.Equal(t, `"hi"`, value.Display(call(t, reg, "quote", value.Bare("hi"))))
	require.Equal(t, "hi", value.Display(call(t, reg, "unquote", value.Str("hi"))))
	require.Equal(t, "3", value.Display(call(t, reg, "str-length", value.Str("abc"))))
	require.Equal(t, `"ABC"`, value.Display(call(t, reg, "to-upper-case", value.Str("abc"))))
}

func TestColorBuiltins(t *testing.T) {
	reg := builtin.NewRegistry()

	c := call(t, reg, "rgb", dim(255, ""), dim(0, ""), dim(0, ""))
	require.Equal(t, "#ff0000", value.Display(c))

	red := call(t, reg, "red", c)
	require.Equal(t, "255", value.Display(red))
}

func TestMapBuiltins(t *testing.T) {
	reg := builtin.NewRegistry()
	m := value.MapValue{Entries: []value.MapEntry{
		{Key: value.Bare("a"), Value: dim(1, "")},
		{Key: value.Bare("b"), Value: dim(2, "")},
	}}

	require.Equal(t, "1", value.Display(call(t, reg, "map-get", m, value.Bare("a"))))
	require.Equal(t, "true", value.Display(call(t, reg, "map-has-key", m, value.Bare("b"))))
	require.Equal(t, "false", value.Display(call(t, reg, "map-has-key", m, value.Bare("z"))))
}

func TestMetaBuiltins(t *testing.T) {
	reg := builtin.NewRegistry()

	require.Equal(t, "number", value.Display(call(t, reg, "type-of", dim(1, "px"))))
	require.Equal(t, "true", value.Display(call(t, reg, "not", value.False)))
}
