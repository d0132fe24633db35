package sassfmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/lexer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/sassfmt"
)

func parse(t *testing.T, src string) *ast.Stylesheet {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	ss, err := parser.Parse(toks, "test.scss")
	require.NoError(t, err)
	return ss
}

func TestFormatVarDecl(t *testing.T) {
	ss := parse(t, "$x: 1px !default;")
	require.Equal(t, "$x: 1px !default;\n", sassfmt.Format(ss))
}

func TestFormatRuleSetIndented(t *testing.T) {
	ss := parse(t, ".card { color: red; }")
	require.Equal(t, ".card {\n  color: red;\n}\n", sassfmt.Format(ss))
}

func TestFormatNestedRuleSet(t *testing.T) {
	ss := parse(t, ".card { .title { color: red; } }")
	require.Equal(t, ".card {\n  .title {\n    color: red;\n  }\n}\n", sassfmt.Format(ss))
}

func TestFormatMixinDecl(t *testing.T) {
	ss := parse(t, "@mixin btn($size: 1px) { width: $size; }")
	require.Equal(t, "@mixin btn($size: 1px) {\n  width: $size;\n}\n", sassfmt.Format(ss))
}

func TestFormatIfElse(t *testing.T) {
	ss := parse(t, "@if $x == 1 { color: red; } @else { color: blue; }")
	require.Equal(t, "@if $x == 1 {\n  color: red;\n}\n@else {\n  color: blue;\n}\n", sassfmt.Format(ss))
}

func TestFormatImportantDecl(t *testing.T) {
	ss := parse(t, ".a { color: red !important; }")
	require.Equal(t, ".a {\n  color: red !important;\n}\n", sassfmt.Format(ss))
}
