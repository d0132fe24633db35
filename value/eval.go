package value

import (
	"fmt"
)

// Eval reduces a (possibly lazy) Value down to a concrete one: Paren is
// unwrapped, UnaryOp/BinaryOp nodes are computed. Already-concrete values
// are returned unchanged. Grounded directly on original_source's
// Value::eval (src/value/mod.rs:233).
func Eval(v Value) (Value, error) {
	switch t := v.(type) {
	case BinaryOp:
		return evalBinary(t)
	case Paren:
		return Eval(t.Inner)
	case UnaryOp:
		return evalUnary(t)
	default:
		return v, nil
	}
}

func evalUnary(u UnaryOp) (Value, error) {
	val, err := Eval(u.Val)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case OpPlus:
		if d, ok := val.(Dimension); ok {
			return d, nil
		}
		return Bare("+" + Display(val)), nil
	case OpMinus:
		if d, ok := val.(Dimension); ok {
			return Dim(d.Num.Neg(), d.Unit), nil
		}
		return Bare("-" + Display(val)), nil
	case OpNot:
		truthy, err := IsTrue(val)
		if err != nil {
			return nil, err
		}
		return Bool(!truthy), nil
	default:
		return nil, fmt.Errorf("invalid unary operator %s", u.Op)
	}
}

func evalBinary(b BinaryOp) (Value, error) {
	switch b.Op {
	case OpAnd:
		// Both sides display-eager in original order once chosen, but
		// only the selected side is actually evaluated: short-circuit
		// with the Sass/original_source quirk that the *left* operand's
		// raw eval is what's returned when falsy, not a Bool.
		truthy, err := IsTrue(b.Left)
		if err != nil {
			return nil, err
		}
		if truthy {
			return Eval(b.Right)
		}
		return Eval(b.Left)
	case OpOr:
		truthy, err := IsTrue(b.Left)
		if err != nil {
			return nil, err
		}
		if truthy {
			return Eval(b.Left)
		}
		return Eval(b.Right)
	case OpEq:
		eq, err := Equals(b.Left, b.Right)
		if err != nil {
			return nil, err
		}
		return Bool(eq), nil
	case OpNe:
		eq, err := Equals(b.Left, b.Right)
		if err != nil {
			return nil, err
		}
		return Bool(!eq), nil
	case OpGt, OpGe, OpLt, OpLe:
		lhs, err := Eval(b.Left)
		if err != nil {
			return nil, err
		}
		return Compare(lhs, b.Right, b.Op)
	default:
		lhs, err := Eval(b.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := Eval(b.Right)
		if err != nil {
			return nil, err
		}
		return arith(lhs, b.Op, rhs)
	}
}

// arith dispatches +, -, *, /, % between two already-evaluated operands.
// Numeric pairs go through unit algebra; Color+Number/Color+Color do
// channel-wise arithmetic (Sass legacy behavior); everything else for +
// falls back to string concatenation, matching original_source's
// per-operator Add/Sub/Mul/Div/Rem impls (src/value/ops.rs, not kept in
// the excerpt, but exercised identically via value::mod.rs's `eval`).
func arith(lhs Value, op Op, rhs Value) (Value, error) {
	switch op {
	case OpPlus:
		return add(lhs, rhs)
	case OpMinus:
		return sub(lhs, rhs)
	case OpMul:
		return mul(lhs, rhs)
	case OpDiv:
		return div(lhs, rhs)
	case OpRem:
		return rem(lhs, rhs)
	default:
		return nil, fmt.Errorf("invalid binary operator %s", op)
	}
}
