package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/lexer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/value"
)

func parse(t *testing.T, src string) *ast.Stylesheet {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	ss, err := parser.Parse(toks, "test.scss")
	require.NoError(t, err)
	return ss
}

func TestParseVarDecl(t *testing.T) {
	ss := parse(t, `$size: 10px !default;`)
	require.Len(t, ss.Stmts, 1)
	v := ss.Stmts[0].(ast.VarDecl)
	require.Equal(t, "size", v.Name)
	require.True(t, v.Default)
	require.False(t, v.Global)
	lit, ok := v.Value.(ast.Literal)
	require.True(t, ok)
	dim, ok := lit.Value.(value.Dimension)
	require.True(t, ok)
	require.Equal(t, "10px", dim.Num.String()+dim.Unit.String())
}

func TestParseRuleSetNesting(t *testing.T) {
	ss := parse(t, `.card { color: red; .title { font-weight: bold; } }`)
	require.Len(t, ss.Stmts, 1)
	rs := ss.Stmts[0].(ast.RuleSet)
	require.Len(t, rs.Body.Stmts, 2)
	_, ok := rs.Body.Stmts[0].(ast.Style)
	require.True(t, ok)
	nested, ok := rs.Body.Stmts[1].(ast.RuleSet)
	require.True(t, ok)
	require.Len(t, nested.Body.Stmts, 1)
}

func TestParseMixinDeclAndInclude(t *testing.T) {
	ss := parse(t, `
@mixin button($color, $radius: 4px) {
  color: $color;
  border-radius: $radius;
}
.btn {
  @include button($color: red);
}
`)
	require.Len(t, ss.Stmts, 2)
	mixin := ss.Stmts[0].(ast.MixinDecl)
	require.Equal(t, "button", mixin.Name)
	require.Len(t, mixin.Params, 2)
	require.Equal(t, "color", mixin.Params[0].Name)
	require.Equal(t, "radius", mixin.Params[1].Name)
	require.NotNil(t, mixin.Params[1].Default)

	rs := ss.Stmts[1].(ast.RuleSet)
	inc := rs.Body.Stmts[0].(ast.Include)
	require.Equal(t, "button", inc.Name)
	require.Len(t, inc.Args.Named, 1)
	require.Equal(t, "color", inc.Args.Named[0].Name)
}

func TestParseIfElse(t *testing.T) {
	ss := parse(t, `
@if $x > 1 {
  color: red;
} @else if $x == 1 {
  color: blue;
} @else {
  color: green;
}
`)
	require.Len(t, ss.Stmts, 1)
	ifStmt := ss.Stmts[0].(ast.If)
	require.Len(t, ifStmt.Branches, 2)
	require.NotNil(t, ifStmt.Else)
}

func TestParseEachAndFor(t *testing.T) {
	ss := parse(t, `
@each $name in a, b, c {
  .icon-#{$name} { content: $name; }
}
@for $i from 1 through 3 {
  .col-#{$i} { width: $i; }
}
`)
	require.Len(t, ss.Stmts, 2)
	each := ss.Stmts[0].(ast.Each)
	require.Equal(t, []string{"name"}, each.Vars)
	forStmt := ss.Stmts[1].(ast.For)
	require.Equal(t, "i", forStmt.Var)
	require.True(t, forStmt.Inclusive)
}

func TestParseFunctionAndReturn(t *testing.T) {
	ss := parse(t, `
@function double($n) {
  @return $n * 2;
}
`)
	fn := ss.Stmts[0].(ast.FunctionDecl)
	require.Equal(t, "double", fn.Name)
	require.Len(t, fn.Body.Stmts, 1)
	ret := fn.Body.Stmts[0].(ast.ReturnStmt)
	bin, ok := ret.Value.(ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, value.OpMul, bin.Op)
}

func TestParseMediaBubbleSource(t *testing.T) {
	ss := parse(t, `
.a {
  @media (min-width: 100px) {
    color: red;
  }
}
`)
	rs := ss.Stmts[0].(ast.RuleSet)
	media := rs.Body.Stmts[0].(ast.Media)
	require.Len(t, media.Body.Stmts, 1)
}
