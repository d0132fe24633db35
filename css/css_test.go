package css_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/css"
)

func TestSerializeRuleWithDecls(t *testing.T) {
	out := css.Serialize([]css.Stmt{
		css.Rule{
			Selector: ".card",
			Decls: []css.Decl{
				{Property: "color", Value: "red"},
				{Property: "border", Value: "1px solid black", Important: true},
			},
		},
	}, css.Options{})

	require.Equal(t, ".card {\n  color: red;\n  border: 1px solid black !important;\n}\n", out)
}

func TestSerializeNestedRule(t *testing.T) {
	out := css.Serialize([]css.Stmt{
		css.Rule{
			Selector: ".card",
			Decls:    []css.Decl{{Property: "color", Value: "red"}},
			Nested: []css.Stmt{
				css.Rule{Selector: ".card .title", Decls: []css.Decl{{Property: "font-weight", Value: "bold"}}},
			},
		},
	}, css.Options{})

	require.Equal(t, ".card {\n  color: red;\n  .card .title {\n    font-weight: bold;\n  }\n}\n", out)
}

func TestSerializeAtRule(t *testing.T) {
	out := css.Serialize([]css.Stmt{
		css.AtRule{
			Prelude: "@media (min-width: 100px)",
			Body: []css.Stmt{
				css.Rule{Selector: ".a", Decls: []css.Decl{{Property: "color", Value: "blue"}}},
			},
		},
	}, css.Options{})

	require.Equal(t, "@media (min-width: 100px) {\n  .a {\n    color: blue;\n  }\n}\n", out)
}

func TestSerializeEmptyRuleOmitted(t *testing.T) {
	out := css.Serialize([]css.Stmt{css.Rule{Selector: ".empty"}}, css.Options{})
	require.Equal(t, "", out)
}

func TestSerializeTopLevelSiblingsHaveNoBlankLine(t *testing.T) {
	out := css.Serialize([]css.Stmt{
		css.Rule{Selector: ".row", Decls: []css.Decl{{Property: "margin", Value: "8px"}}},
		css.Rule{Selector: ".row .cell", Decls: []css.Decl{{Property: "padding", Value: "4px"}}},
	}, css.Options{})

	require.Equal(t, ".row {\n  margin: 8px;\n}\n.row .cell {\n  padding: 4px;\n}\n", out)
}

func TestSerializeEmptyAtRuleOmitted(t *testing.T) {
	out := css.Serialize([]css.Stmt{
		css.AtRule{Prelude: "@media (min-width: 2px)"},
	}, css.Options{})
	require.Equal(t, "", out)
}

func TestSerializeAtRuleWithOnlyEmptyRulesOmitted(t *testing.T) {
	out := css.Serialize([]css.Stmt{
		css.AtRule{
			Prelude: "@media (min-width: 2px)",
			Body:    []css.Stmt{css.Rule{Selector: ".empty"}},
		},
	}, css.Options{})
	require.Equal(t, "", out)
}

func TestSerializeCompressed(t *testing.T) {
	out := css.Serialize([]css.Stmt{
		css.Rule{Selector: ".a", Decls: []css.Decl{{Property: "color", Value: "red"}}},
	}, css.Options{Compressed: true})
	require.Equal(t, ".a{color:red;}", out)
}
