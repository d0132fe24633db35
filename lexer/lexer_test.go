package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/lexer"
	"github.com/titpetric/sassgo/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexBasics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Kind
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []token.Kind{token.EOF},
		},
		{
			name:  "simple rule",
			input: ".foo { color: red; }",
			expected: []token.Kind{
				token.Dot, token.Ident, token.LBrace,
				token.Ident, token.Colon, token.Ident, token.Semicolon,
				token.RBrace, token.EOF,
			},
		},
		{
			name:  "variable declaration",
			input: "$primary: #fff;",
			expected: []token.Kind{
				token.Variable, token.Colon, token.Color, token.Semicolon, token.EOF,
			},
		},
		{
			name:  "placeholder selector",
			input: "%foo { }",
			expected: []token.Kind{
				token.Placeholder, token.LBrace, token.RBrace, token.EOF,
			},
		},
		{
			name:  "interpolation",
			input: `.#{$name} { }`,
			expected: []token.Kind{
				token.Dot, token.InterpBegin, token.Variable, token.RBrace,
				token.LBrace, token.RBrace, token.EOF,
			},
		},
		{
			name:  "at-keyword",
			input: "@mixin foo() { }",
			expected: []token.Kind{
				token.AtKeyword, token.Ident, token.LParen, token.RParen,
				token.LBrace, token.RBrace, token.EOF,
			},
		},
		{
			name:  "line comment dropped",
			input: "// hi\n$a: 1;",
			expected: []token.Kind{
				token.Variable, token.Colon, token.Number, token.Semicolon, token.EOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lexer.Lex(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, kinds(toks))
		})
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{name: "integer", input: "42", value: "42"},
		{name: "float", input: "3.14", value: "3.14"},
		{name: "with unit", input: "16px", value: "16px"},
		{name: "percentage", input: "50%", value: "50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lexer.Lex(tt.input)
			require.NoError(t, err)
			require.True(t, len(toks) > 0)
			require.Equal(t, token.Number, toks[0].Kind)
			require.Equal(t, tt.value, toks[0].Text)
		})
	}
}

func TestLexStrings(t *testing.T) {
	toks, err := lexer.Lex(`"hello world"`)
	require.NoError(t, err)
	require.Equal(t, token.String, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Text)
	require.Equal(t, token.Double, toks[0].Quote)
}

func TestLexImportantFlags(t *testing.T) {
	toks, err := lexer.Lex("color: red !important;")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.Ident, token.Colon, token.Ident, token.Important, token.Semicolon, token.EOF,
	}, kinds(toks))
}
