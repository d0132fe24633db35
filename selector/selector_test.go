package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/selector"
)

func TestParseSimple(t *testing.T) {
	sel := selector.Parse(".card")
	require.Len(t, sel.Complex, 1)
	require.Equal(t, ".card", sel.String())
}

func TestParseCommaList(t *testing.T) {
	sel := selector.Parse(".a, .b")
	require.Len(t, sel.Complex, 2)
	require.Equal(t, ".a, .b", sel.String())
}

func TestParseCombinators(t *testing.T) {
	sel := selector.Parse(".a > .b ~ .c")
	require.Len(t, sel.Complex, 1)
	cs := sel.Complex[0]
	require.Equal(t, []string{".a", ".b", ".c"}, cs.Parts)
	require.Equal(t, []string{"", ">", "~"}, cs.Combinators)
}

func TestZipAppendsDescendant(t *testing.T) {
	parent := selector.Parse(".card")
	child := selector.Parse(".title")
	zipped := selector.Zip(parent, child)
	require.Equal(t, ".card .title", zipped.String())
}

func TestZipAmpersandReplacement(t *testing.T) {
	parent := selector.Parse(".btn")
	child := selector.Parse("&:hover")
	zipped := selector.Zip(parent, child)
	require.Equal(t, ".btn:hover", zipped.String())
}

func TestZipCartesianProduct(t *testing.T) {
	parent := selector.Parse(".a, .b")
	child := selector.Parse(".x, .y")
	zipped := selector.Zip(parent, child)
	require.Len(t, zipped.Complex, 4)
}

func TestExtendMergesSelectors(t *testing.T) {
	target := selector.Parse(".message")
	extenders := selector.Parse(".success, .warning")
	out := selector.Extend(target, ".message", extenders)
	require.Equal(t, ".message, .success, .warning", out.String())
}
