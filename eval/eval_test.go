package eval_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/builtin"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/eval"
	"github.com/titpetric/sassgo/lexer"
	"github.com/titpetric/sassgo/parser"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	ss, err := parser.Parse(toks, "test.scss")
	require.NoError(t, err)
	ev := eval.New(builtin.NewRegistry(), nil, nil)
	out, err := ev.Run(ss)
	require.NoError(t, err)
	return css.Serialize(out, css.Options{})
}

func TestEvalVariablesAndNesting(t *testing.T) {
	out := compile(t, `
$base: 10px;
.card {
  padding: $base;
  .title {
    font-size: $base * 2;
  }
}
`)
	require.Contains(t, out, ".card {")
	require.Contains(t, out, "padding: 10px;")
	require.Contains(t, out, ".card .title {")
	require.Contains(t, out, "font-size: 20px;")
}

func TestEvalMixinWithContent(t *testing.T) {
	out := compile(t, `
@mixin wrap($name) {
  .#{$name} {
    @content;
  }
}
@include wrap(box) {
  color: red;
}
`)
	require.Contains(t, out, ".box {")
	require.Contains(t, out, "color: red;")
}

func TestEvalIfElse(t *testing.T) {
	out := compile(t, `
$mode: dark;
.panel {
  @if $mode == dark {
    background: black;
  } @else {
    background: white;
  }
}
`)
	require.Contains(t, out, "background: black;")
	require.NotContains(t, out, "background: white;")
}

func TestEvalEachList(t *testing.T) {
	out := compile(t, `
@each $name in a, b, c {
  .icon-#{$name} {
    content: $name;
  }
}
`)
	require.True(t, strings.Contains(out, ".icon-a {"))
	require.True(t, strings.Contains(out, ".icon-b {"))
	require.True(t, strings.Contains(out, ".icon-c {"))
}

func TestEvalFunctionCall(t *testing.T) {
	out := compile(t, `
@function double($n) {
  @return $n * 2;
}
.box {
  width: double(5px);
}
`)
	require.Contains(t, out, "width: 10px;")
}

func TestEvalMediaBubble(t *testing.T) {
	out := compile(t, `
.a {
  color: red;
  @media (min-width: 100px) {
    color: blue;
  }
}
`)
	require.Contains(t, out, "@media (min-width: 100px) {\n  .a {\n    color: blue;\n  }\n}")
}

func TestEvalMediaFlattensNestedChildRules(t *testing.T) {
	out := compile(t, `
a {
  @media screen {
    b {
      color: red;
    }
    c {
      color: green;
    }
  }
}
`)
	expected := "@media screen {\n  a b {\n    color: red;\n  }\n  a c {\n    color: green;\n  }\n}\n"
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Error(diff)
	}
}

func TestEvalMediaNestedWithNoOwnDeclsOmitsWrapper(t *testing.T) {
	out := compile(t, `
a {
  @media foo {
    color: red;
  }
}
`)
	expected := "@media foo {\n  a {\n    color: red;\n  }\n}\n"
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Error(diff)
	}
}

func TestEvalEmptyMediaOmitted(t *testing.T) {
	out := compile(t, "@media (min-width: 2px) {}")
	require.Equal(t, "", out)
}

func TestEvalExtend(t *testing.T) {
	out := compile(t, `
%message {
  border: 1px solid black;
}
.success {
  @extend %message;
  color: green;
}
`)
	require.NotContains(t, out, "%message")
	require.Contains(t, out, ".success {")
	require.Contains(t, out, "border: 1px solid black;")
}

func TestEvalBuiltinFunction(t *testing.T) {
	out := compile(t, `
.box {
  width: percentage(0.5);
}
`)
	require.Contains(t, out, "width: 50%;")
}

func TestEvalFullOutputMatchesExpected(t *testing.T) {
	out := compile(t, `
$gap: 4px;
.row {
  margin: $gap * 2;
  .cell {
    padding: $gap;
  }
}
`)
	expected := ".row {\n  margin: 8px;\n}\n.row .cell {\n  padding: 4px;\n}\n"
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Error(diff)
	}
}
