package scope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/value"
)

func TestLookupWalksOutward(t *testing.T) {
	root := scope.New()
	root.SetLocal("a", value.Dim(value.NewNumberInt(1), value.NoUnit))
	child := root.Child()

	v, ok := child.Lookup("a")
	require.True(t, ok)
	require.Equal(t, value.Dim(value.NewNumberInt(1), value.NoUnit), v)

	_, ok = child.Lookup("missing")
	require.False(t, ok)
}

func TestSetUpdatesOuterFrame(t *testing.T) {
	root := scope.New()
	root.SetLocal("a", value.Dim(value.NewNumberInt(1), value.NoUnit))
	child := root.Child()

	child.Set("a", value.Dim(value.NewNumberInt(2), value.NoUnit))

	v, _ := root.Lookup("a")
	require.Equal(t, value.Dim(value.NewNumberInt(2), value.NoUnit), v)

	v, _ = child.Lookup("a")
	require.Equal(t, value.Dim(value.NewNumberInt(2), value.NoUnit), v)
}

func TestSetDeclaresLocallyWhenUndeclared(t *testing.T) {
	root := scope.New()
	child := root.Child()

	child.Set("b", value.Dim(value.NewNumberInt(5), value.NoUnit))

	_, ok := root.Lookup("b")
	require.False(t, ok)
	v, ok := child.Lookup("b")
	require.True(t, ok)
	require.Equal(t, value.Dim(value.NewNumberInt(5), value.NoUnit), v)
}

func TestSetGlobalAssignsRoot(t *testing.T) {
	root := scope.New()
	child := root.Child().Child()

	child.SetGlobal("g", value.Dim(value.NewNumberInt(7), value.NoUnit))

	v, ok := root.Lookup("g")
	require.True(t, ok)
	require.Equal(t, value.Dim(value.NewNumberInt(7), value.NoUnit), v)
	require.True(t, root.GlobalVariableExists("g"))
}

func TestSetDefaultOnlyWhenUnset(t *testing.T) {
	root := scope.New()
	root.SetDefault("x", value.Dim(value.NewNumberInt(1), value.NoUnit))
	root.SetDefault("x", value.Dim(value.NewNumberInt(2), value.NoUnit))

	v, _ := root.Lookup("x")
	require.Equal(t, value.Dim(value.NewNumberInt(1), value.NoUnit), v)
}

type fakeMixin struct{ name string }

func (f fakeMixin) MixinName() string { return f.name }

func TestMixinLookupWalksOutward(t *testing.T) {
	root := scope.New()
	root.DefineMixin(fakeMixin{name: "btn"})
	child := root.Child()

	require.True(t, child.MixinExists("btn"))
	require.False(t, child.MixinExists("nope"))

	m, ok := child.LookupMixin("btn")
	require.True(t, ok)
	require.Equal(t, "btn", m.MixinName())
}
