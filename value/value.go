// Package value implements the Sass value model: the lazy arithmetic
// tree, unit algebra, and the structural equality/ordering rules that
// the evaluator and built-in functions operate on. Grounded on
// original_source's value::Value enum (src/value/mod.rs), restructured
// as a Go interface + concrete-type sum rather than a tagged enum.
package value

import (
	"errors"
	"fmt"
	"strings"
)

// Value is the sum type every expression evaluates to. Concrete types
// below implement it; BinaryOp/UnaryOp/Paren hold unevaluated operand
// trees and are only ever reduced away by Eval.
type Value interface {
	isValue()
}

// Important is the bare `!important` marker value.
type Important struct{}

func (Important) isValue() {}

// Bool is Sass's True/False.
type Bool bool

func (Bool) isValue() {}

// True and False are the canonical Bool values.
var (
	True  = Bool(true)
	False = Bool(false)
)

// NullValue is Sass's singleton null.
type NullValue struct{}

func (NullValue) isValue() {}

// Null is the singleton null value.
var Null = NullValue{}

// Dimension is a number with a unit, CSS's fundamental numeric value.
type Dimension struct {
	Num  Number
	Unit Unit
}

func (Dimension) isValue() {}

func Dim(n Number, u Unit) Dimension { return Dimension{Num: n, Unit: u} }

// List is an ordered sequence, with a separator and optional brackets.
type List struct {
	Items     []Value
	Separator ListSeparator
	Brackets  Brackets
}

func (List) isValue() {}

// ColorValue wraps Color as a Value variant.
type ColorValue struct{ Color Color }

func (ColorValue) isValue() {}

// Ident is a bare or quoted string/identifier.
type Ident struct {
	Text  string
	Quote QuoteKind
}

func (Ident) isValue() {}

func Str(s string) Ident { return Ident{Text: s, Quote: DoubleQuote} }
func Bare(s string) Ident { return Ident{Text: s, Quote: NoQuote} }

// MapEntry is one key/value pair of an ordered Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// MapValue is Sass's ordered association map.
type MapValue struct{ Entries []MapEntry }

func (MapValue) isValue() {}

func (m MapValue) Get(key Value) (Value, bool) {
	for _, e := range m.Entries {
		if eq, _ := Equals(e.Key, key); eq {
			return e.Value, true
		}
	}
	return nil, false
}

// ArgList is the value bound to a `...` rest parameter: a list that also
// carries any unconsumed keyword arguments.
type ArgList struct {
	Items    []Value
	Keywords map[string]Value
}

func (ArgList) isValue() {}

// Callable is implemented by the ./eval package's function/mixin value
// representation so get-function()/call() can round-trip through here
// without ./value importing ./eval.
type Callable interface {
	CallableName() string
}

// FunctionValue wraps a Callable, returned by get-function().
type FunctionValue struct{ Fn Callable }

func (FunctionValue) isValue() {}

// Paren is a parenthesized subexpression, unwrapped by Eval.
type Paren struct{ Inner Value }

func (Paren) isValue() {}

// UnaryOp is an unevaluated unary operation.
type UnaryOp struct {
	Op  Op
	Val Value
}

func (UnaryOp) isValue() {}

// BinaryOp is an unevaluated binary operation; re-associated by Compare when
// chained comparisons of differing precedence are nested together.
type BinaryOp struct {
	Left  Value
	Op    Op
	Right Value
}

func (BinaryOp) isValue() {}

// IsNull reports whether v is Null or the empty unquoted Ident, which are
// equivalent for list-filtering and null checks (spec.md §3). IsTrue does
// not use this: the empty unquoted Ident is truthy.
func IsNull(v Value) bool {
	switch t := v.(type) {
	case NullValue:
		return true
	case Ident:
		return t.Quote == NoQuote && t.Text == ""
	default:
		return false
	}
}

// IsTrue implements Sass's three-valued truthiness: everything except
// Null and False is truthy.
func IsTrue(v Value) (bool, error) {
	switch t := v.(type) {
	case NullValue:
		return false, nil
	case Bool:
		return bool(t), nil
	case BinaryOp, Paren, UnaryOp:
		ev, err := Eval(v)
		if err != nil {
			return false, err
		}
		return IsTrue(ev)
	default:
		return true, nil
	}
}

// Kind names the type tag used by type-of()/type errors.
func Kind(v Value) (string, error) {
	switch t := v.(type) {
	case ColorValue:
		return "color", nil
	case Ident, Important:
		return "string", nil
	case Dimension:
		return "number", nil
	case List:
		return "list", nil
	case FunctionValue:
		return "function", nil
	case ArgList:
		return "arglist", nil
	case Bool:
		return "bool", nil
	case NullValue:
		return "null", nil
	case MapValue:
		return "map", nil
	case BinaryOp, Paren, UnaryOp:
		ev, err := Eval(v)
		if err != nil {
			return "", err
		}
		return Kind(ev)
	default:
		return "", fmt.Errorf("unknown value kind %T", t)
	}
}

// errUnit is returned (wrapped by unitFactor) for incompatible-unit
// arithmetic.
var errUnit = errors.New("incompatible units")

// Display renders v the way it appears in compiled CSS output. Callers
// Eval first; as a fallback Display unwraps Paren and evaluates
// BinaryOp/UnaryOp itself, rendering an evaluation error as
// "<error: ...>" (mirrors original_source's Display impl).
func Display(v Value) string {
	switch t := v.(type) {
	case Important:
		return "!important"
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case NullValue:
		return "null"
	case Dimension:
		return t.Num.String() + t.Unit.String()
	case ColorValue:
		return t.Color.String()
	case Ident:
		return displayIdent(t)
	case List:
		return displayList(t)
	case MapValue:
		parts := make([]string, len(t.Entries))
		for i, e := range t.Entries {
			parts[i] = Display(e.Key) + ": " + Display(e.Value)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ArgList:
		parts := make([]string, 0, len(t.Items))
		for _, it := range t.Items {
			if IsNull(it) {
				continue
			}
			parts = append(parts, Display(it))
		}
		return strings.Join(parts, ", ")
	case FunctionValue:
		return fmt.Sprintf("get-function(%q)", t.Fn.CallableName())
	case Paren:
		return Display(t.Inner)
	case BinaryOp, UnaryOp:
		ev, err := Eval(v)
		if err != nil {
			return fmt.Sprintf("<error: %s>", err)
		}
		return Display(ev)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func displayIdent(id Ident) string {
	if id.Quote == NoQuote {
		return id.Text
	}
	hasSingle := strings.ContainsRune(id.Text, '\'')
	hasDouble := strings.ContainsRune(id.Text, '"')
	switch {
	case hasSingle && !hasDouble:
		return `"` + id.Text + `"`
	case !hasSingle && hasDouble:
		return "'" + id.Text + "'"
	case !hasSingle && !hasDouble:
		return `"` + id.Text + `"`
	default:
		quote := byte('"')
		if id.Quote == SingleQuote {
			quote = '\''
		}
		var b strings.Builder
		b.WriteByte(quote)
		for i := 0; i < len(id.Text); i++ {
			c := id.Text[i]
			if c == quote {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
		b.WriteByte(quote)
		return b.String()
	}
}

func displayList(l List) string {
	parts := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		if IsNull(it) {
			continue
		}
		parts = append(parts, Display(it))
	}
	inner := strings.Join(parts, l.Separator.String())
	if l.Brackets == Bracketed {
		return "[" + inner + "]"
	}
	return inner
}

// Inspect is Display, except empty lists/maps render as "()"/"[]" and
// function values keep their get-function() wrapper — used by meta
// functions and debug output, matching original_source's Value::inspect.
func Inspect(v Value) string {
	if l, ok := v.(List); ok && len(l.Items) == 0 {
		if l.Brackets == Bracketed {
			return "[]"
		}
		return "()"
	}
	return Display(v)
}
