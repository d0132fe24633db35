package sasserr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/sasserr"
)

func TestErrorMessageWithoutSecondary(t *testing.T) {
	err := sasserr.Parse(sasserr.Span{Line: 2, Column: 5, Offset: 10}, "unexpected token %q", "}")
	require.Equal(t, `ParseError at 2:5: unexpected token "}"`, err.Error())
}

func TestErrorMessageWithSecondary(t *testing.T) {
	err := sasserr.Name(sasserr.Span{Line: 4, Column: 1}, "undefined variable $x").
		WithDeclared(sasserr.Span{Line: 1, Column: 1})
	require.Equal(t, "NameError at 4:1: undefined variable $x (declared at 1:1)", err.Error())
}

func TestConvenienceConstructorsSetKind(t *testing.T) {
	at := sasserr.Span{Line: 1, Column: 1}
	require.Equal(t, sasserr.TypeErr, sasserr.Type(at, "x").Kind)
	require.Equal(t, sasserr.UnitErr, sasserr.Unit(at, "x").Kind)
	require.Equal(t, sasserr.ArityErr, sasserr.Arity(at, "x").Kind)
	require.Equal(t, sasserr.SemanticErr, sasserr.Semantic(at, "x").Kind)
}

func TestSpanString(t *testing.T) {
	require.Equal(t, "3:7", sasserr.Span{Line: 3, Column: 7}.String())
}
