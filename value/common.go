package value

import "fmt"

// QuoteKind records how an Ident's text was quoted in the source, so
// display can round-trip quote style (spec.md §4.1).
type QuoteKind int

const (
	NoQuote QuoteKind = iota
	SingleQuote
	DoubleQuote
)

// ListSeparator is the separator a List was written or computed with.
type ListSeparator int

const (
	Undecided ListSeparator = iota
	Space
	CommaSep
)

func (s ListSeparator) String() string {
	switch s {
	case Space:
		return " "
	case CommaSep:
		return ", "
	default:
		return " "
	}
}

// Brackets records whether a List was written with surrounding [ ].
type Brackets int

const (
	NoBrackets Brackets = iota
	Bracketed
)

// Op is a binary or unary operator kept unevaluated inside a lazy
// arithmetic node, grounded on original_source's common::Op.
type Op int

const (
	OpPlus Op = iota
	OpMinus
	OpMul
	OpDiv
	OpRem
	OpEq
	OpNe
	OpGt
	OpGe
	OpLt
	OpLe
	OpAnd
	OpOr
	OpNot
)

func (o Op) String() string {
	switch o {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Precedence ranks comparison/equality operators against each other for
// the re-association rule used by Compare (original_source value::cmp).
// Equality binds loosest, relational binds tighter; and/or are handled
// outside this table by short-circuit evaluation in Eval.
func (o Op) Precedence() int {
	switch o {
	case OpEq, OpNe:
		return 1
	case OpGt, OpGe, OpLt, OpLe:
		return 2
	case OpPlus, OpMinus:
		return 3
	case OpMul, OpDiv, OpRem:
		return 4
	default:
		return 0
	}
}

func (o Op) isComparison() bool {
	switch o {
	case OpGt, OpGe, OpLt, OpLe:
		return true
	default:
		return false
	}
}
