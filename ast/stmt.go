package ast

import "github.com/titpetric/sassgo/token"

// Stmt is the parse-time statement tree: one entry per top-level
// construct (rule set, declaration, at-rule variant, comment), matching
// spec.md §3's `Stmt: RuleSet | Style | AtRule(variant) |
// MultilineComment`. Each at-rule kind gets its own concrete type rather
// than a single tagged AtRule{Name,Parameters} struct (as lessgo does),
// since their bodies/fields differ enough that a shared loosely-typed
// Parameters string would just be re-parsed downstream.
type Stmt interface {
	isStmt()
}

// Block is a braced sequence of statements, the body of a rule set, at-
// rule, or control-flow construct.
type Block struct {
	Stmts []Stmt
}

// RuleSet is a selector followed by a declaration/nested-rule block,
// e.g. `.card { color: red; .title { ... } }`. Selector is carried as
// Piece-interpolated raw text; ./eval resolves interpolation and hands
// the result to ./selector.Parse.
type RuleSet struct {
	P token.Position
	Selector []InterpPart
	Body     Block
}

func (RuleSet) isStmt() {}

// Style is a `property: value;` declaration. Property supports
// interpolation (`#{$prefix}-color: ...`); Value is nil for a style
// that only carries a nested block of sub-properties (`font: { ... }`
// nested-property shorthand) — Body holds that block instead.
type Style struct {
	P token.Position
	Property  []InterpPart
	Value     Expr
	Important bool
	Body      *Block // non-nil only for nested-property shorthand
}

func (Style) isStmt() {}

// MultilineComment is a `/* ... */` comment preserved in output (Sass
// drops `//` line comments at parse time; spec.md's non-goals exclude
// preserving those).
type MultilineComment struct {
	P token.Position
	Text string
}

func (MultilineComment) isStmt() {}

// VarDecl is `$name: expr [!default] [!global];`.
type VarDecl struct {
	P token.Position
	Name    string
	Value   Expr
	Default bool
	Global  bool
}

func (VarDecl) isStmt() {}

// MixinDecl is `@mixin name($params) { ... }`.
type MixinDecl struct {
	P token.Position
	Name   string
	Params []Param
	Body   Block
}

func (MixinDecl) isStmt() {}

// Include is `@include name($args) [{ content }] [;]`.
type Include struct {
	P token.Position
	Name    string
	Args    CallArgs
	Content *Block // non-nil when a content block was attached
}

func (Include) isStmt() {}

// ContentStmt is `@content;` inside a mixin body.
type ContentStmt struct {
	P token.Position
}

func (ContentStmt) isStmt() {}

// FunctionDecl is `@function name($params) { ... }`.
type FunctionDecl struct {
	P token.Position
	Name   string
	Params []Param
	Body   Block
}

func (FunctionDecl) isStmt() {}

// ReturnStmt is `@return expr;`, valid only inside a FunctionDecl body.
type ReturnStmt struct {
	P token.Position
	Value Expr
}

func (ReturnStmt) isStmt() {}

// If is `@if cond { } @else if cond { } @else { }`.
type If struct {
	P token.Position
	Branches []IfBranch
	Else     *Block
}

func (If) isStmt() {}

type IfBranch struct {
	Cond Expr
	Body Block
}

// Each is `@each $a, $b in <expr> { }`; Vars has one entry for a plain
// list iteration, two for map iteration (`$key, $value`).
type Each struct {
	P token.Position
	Vars []string
	List Expr
	Body Block
}

func (Each) isStmt() {}

// For is `@for $i from <expr> to/through <expr> { }`.
type For struct {
	P token.Position
	Var       string
	From      Expr
	To        Expr
	Inclusive bool // true for "through", false for "to"
	Body      Block
}

func (For) isStmt() {}

// While is `@while cond { }`.
type While struct {
	P token.Position
	Cond Expr
	Body Block
}

func (While) isStmt() {}

// Media is `@media <query> { }`. Query carries interpolation since
// `@media #{$feature}` is legal Sass.
type Media struct {
	P token.Position
	Query []InterpPart
	Body  Block
}

func (Media) isStmt() {}

// Supports is `@supports <condition> { }`.
type Supports struct {
	P token.Position
	Query []InterpPart
	Body  Block
}

func (Supports) isStmt() {}

// Keyframes is `@keyframes name { 0% { } 50% { } to { } }`. Its Body's
// RuleSets use percentage/from/to selectors rather than CSS selectors,
// but reuse the same RuleSet node since the grammar is identical.
type Keyframes struct {
	P token.Position
	Name []InterpPart
	Body Block
}

func (Keyframes) isStmt() {}

// AtRoot is `@at-root { }` (or `@at-root <selector> { }`), which lifts
// its body out of the current nesting context. Selector is nil for the
// bare block form.
type AtRoot struct {
	P token.Position
	Selector []InterpPart
	Body     Block
}

func (AtRoot) isStmt() {}

// Import is `@import "name", "other";`. Each entry is resolved by
// ./importer against the Sass partial-file convention.
type Import struct {
	P token.Position
	Targets []string
}

func (Import) isStmt() {}

// ExtendStmt is `@extend <selector> [!optional];`.
type ExtendStmt struct {
	P token.Position
	Target   []InterpPart
	Optional bool
}

func (ExtendStmt) isStmt() {}

// DebugStmt, WarnStmt, ErrorStmt back `@debug`/`@warn`/`@error`.
type DebugStmt struct {
	P token.Position
	Value Expr
}

func (DebugStmt) isStmt() {}

type WarnStmt struct {
	P token.Position
	Value Expr
}

func (WarnStmt) isStmt() {}

type ErrorStmt struct {
	P token.Position
	Value Expr
}

func (ErrorStmt) isStmt() {}

// GenericAtRule covers at-rules this compiler doesn't give special
// control-flow/scoping treatment to (`@font-face`, `@page`, vendor
// at-rules) — passed through with interpolation resolved and nested
// statements evaluated as plain declarations.
type GenericAtRule struct {
	P token.Position
	Name   string
	Params []InterpPart
	Body   *Block // nil for a parameter-only at-rule ending in ";"
}

func (GenericAtRule) isStmt() {}

// Stylesheet is the top-level parse result: a flat sequence of
// statements plus the source name (for error spans / @import base dir).
type Stylesheet struct {
	Source string
	Stmts  []Stmt
}
