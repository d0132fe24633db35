// Package token defines the Token data model shared between the lexer and
// the expression/statement parser. Tokenization itself is treated as an
// external collaborator by the specification; this package exists so the
// evaluator core has a concrete input shape to consume, matching the
// "Vec<Token>" contract described in the design.
package token

import "fmt"

// Kind is a tagged variant over the lexical categories the parser needs.
type Kind int

const (
	EOF Kind = iota
	Error

	Ident      // bare identifier / keyword (e.g. "solid", "red")
	Variable   // $name
	Placeholder // %name
	Number     // 10, 1.5, 10px, 50%
	String     // "quoted" or 'quoted'
	Color      // #fff, #ffffff
	AtKeyword  // @mixin, @if, @media, ...
	InterpBegin // #{
	InterpEnd   // not emitted: the lexer closes an interpolation with RBrace
	Important   // !important
	Default     // !default
	Global      // !global

	// symbols
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Colon
	Semicolon
	Comma
	Dot
	Amp        // &
	Plus
	Minus
	Star
	Slash
	Percent
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Assign    // not emitted: declarations use Colon
	Ellipsis  // ...
	Arrow     // => (map-like contexts, reserved)
	Combinator // not emitted: selector combinators stay Gt/Plus/Tilde and are kept as selector text
	Tilde

	CommentLine
	CommentBlock
)

var names = map[Kind]string{
	EOF: "EOF", Error: "ERROR", Ident: "IDENT", Variable: "VARIABLE",
	Placeholder: "PLACEHOLDER", Number: "NUMBER", String: "STRING", Color: "COLOR",
	AtKeyword: "AT_KEYWORD", InterpBegin: "INTERP_BEGIN", InterpEnd: "INTERP_END",
	Important: "IMPORTANT", Default: "DEFAULT", Global: "GLOBAL",
	LBrace: "LBRACE", RBrace: "RBRACE", LParen: "LPAREN", RParen: "RPAREN",
	LBracket: "LBRACKET", RBracket: "RBRACKET", Colon: "COLON", Semicolon: "SEMICOLON",
	Comma: "COMMA", Dot: "DOT", Amp: "AMP", Plus: "PLUS", Minus: "MINUS", Star: "STAR",
	Slash: "SLASH", Percent: "PERCENT", Eq: "EQ", Ne: "NE", Lt: "LT", Le: "LE", Gt: "GT", Ge: "GE",
	Ellipsis: "ELLIPSIS", Tilde: "TILDE",
	CommentLine: "COMMENT_LINE", CommentBlock: "COMMENT_BLOCK",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// QuoteKind records how a string literal was quoted in the source, needed
// for display round-tripping (spec.md §3, §4.1).
type QuoteKind int

const (
	NoQuote QuoteKind = iota
	Single
	Double
)

// Position is the location of a token in the source, reused verbatim as
// the primary span in sasserr.Error values.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token is one lexical unit: a kind, its text, and its position.
type Token struct {
	Kind     Kind
	Text     string
	Pos      Position
	Quote    QuoteKind // only meaningful when Kind == String
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Pos.Line, t.Pos.Column)
}
