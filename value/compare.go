package value

import "fmt"

// Equals implements structural equality, grounded on original_source's
// Value::equals: both sides are Eval'd first, Dimensions compare across
// compatible units, incomparable-unit Dimensions compare unequal rather
// than erroring, everything else falls back to Go equality of the
// reduced concrete variant.
func Equals(a, b Value) (bool, error) {
	ae, err := Eval(a)
	if err != nil {
		return false, err
	}
	be, err := Eval(b)
	if err != nil {
		return false, err
	}
	if ai, ok := ae.(Ident); ok {
		bi, ok := be.(Ident)
		return ok && ai.Text == bi.Text, nil
	}
	if ad, ok := ae.(Dimension); ok {
		bd, ok := be.(Dimension)
		if !ok {
			return false, nil
		}
		if !ad.Unit.Comparable(bd.Unit) {
			return false, nil
		}
		if ad.Unit.Equal(bd.Unit) || ad.Unit.isNone || bd.Unit.isNone {
			return ad.Num.Equal(bd.Num), nil
		}
		f, _ := unitFactor(bd.Unit, ad.Unit)
		return ad.Num.Equal(Number{r: mulRat(bd.Num.Rat(), f)}), nil
	}
	return equalsConcrete(ae, be), nil
}

func equalsConcrete(a, b Value) bool {
	switch at := a.(type) {
	case Bool:
		bt, ok := b.(Bool)
		return ok && at == bt
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case Important:
		_, ok := b.(Important)
		return ok
	case ColorValue:
		bt, ok := b.(ColorValue)
		return ok && at.Color.Equal(bt.Color)
	case List:
		bt, ok := b.(List)
		if !ok || len(at.Items) != len(bt.Items) || at.Separator != bt.Separator {
			return false
		}
		for i := range at.Items {
			if eq, err := Equals(at.Items[i], bt.Items[i]); err != nil || !eq {
				return false
			}
		}
		return true
	case MapValue:
		bt, ok := b.(MapValue)
		if !ok || len(at.Entries) != len(bt.Entries) {
			return false
		}
		for i := range at.Entries {
			ke, _ := Equals(at.Entries[i].Key, bt.Entries[i].Key)
			ve, _ := Equals(at.Entries[i].Value, bt.Entries[i].Value)
			if !ke || !ve {
				return false
			}
		}
		return true
	default:
		return Display(a) == Display(b)
	}
}

// Compare implements >,>=,<,<=, grounded on original_source's Value::cmp
// including its re-association rule: when lhs is itself an unevaluated
// BinaryOp whose operator binds looser than op, the comparison is pushed
// down onto the right-hand subtree before evaluating, so that
// `1 + 2 > 1` parses/compares the way Sass actually nests it rather than
// comparing `1` against `2 > 1`.
func Compare(lhs, rhs Value, op Op) (Value, error) {
	if p, ok := rhs.(Paren); ok {
		ev, err := Eval(p)
		if err != nil {
			return nil, err
		}
		rhs = ev
	}
	precedence := op.Precedence()

	switch l := lhs.(type) {
	case Dimension:
		r, ok := rhs.(Dimension)
		if !ok {
			return nil, fmt.Errorf("undefined operation %q %s %q", Display(lhs), op, Display(rhs))
		}
		if !l.Unit.Comparable(r.Unit) {
			return nil, fmt.Errorf("incompatible units %s and %s", r.Unit, l.Unit)
		}
		var c int
		if l.Unit.Equal(r.Unit) || l.Unit.isNone || r.Unit.isNone {
			c = l.Num.Cmp(r.Num)
		} else {
			f, _ := unitFactor(r.Unit, l.Unit)
			c = l.Num.Cmp(Number{r: mulRat(r.Num.Rat(), f)})
		}
		return Bool(ordering(c, op)), nil
	case BinaryOp:
		if l.Op.Precedence() >= precedence {
			ev, err := Eval(l)
			if err != nil {
				return nil, err
			}
			return Compare(ev, rhs, op)
		}
		inner, err := Eval(BinaryOp{Left: l.Right, Op: op, Right: rhs})
		if err != nil {
			return nil, err
		}
		return Eval(BinaryOp{Left: l.Left, Op: l.Op, Right: inner})
	case UnaryOp, Paren:
		ev, err := Eval(l)
		if err != nil {
			return nil, err
		}
		return Compare(ev, rhs, op)
	default:
		return nil, fmt.Errorf("undefined operation %q %s %q", Display(lhs), op, Display(rhs))
	}
}

func ordering(c int, op Op) bool {
	switch op {
	case OpGt:
		return c > 0
	case OpGe:
		return c >= 0
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	default:
		return false
	}
}
