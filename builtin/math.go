package builtin

import (
	"fmt"
	"math"

	"github.com/titpetric/sassgo/value"
)

// registerMath wires the numeric builtins, grounded on lessgo's
// evaluateFunction cases for round/ceil/floor/abs/min/max/percentage
// (renderer/renderer.go), generalized from lessgo's float64-based math to
// big.Rat via value.Number so precision survives chained arithmetic.
func registerMath(r *Registry) {
	r.register("percentage", mathUnary(func(n value.Number) value.Number {
		return n.Mul(value.NewNumberInt(100))
	}, value.NewUnit("%")))
	r.register("round", mathRound(math.Round))
	r.register("ceil", mathRound(math.Ceil))
	r.register("floor", mathRound(math.Floor))
	r.register("abs", func(a Args) (value.Value, error) {
		d, err := dimArg(a, 0, "number")
		if err != nil {
			return nil, err
		}
		if d.Num.Sign() < 0 {
			return value.Dim(d.Num.Neg(), d.Unit), nil
		}
		return d, nil
	})
	r.register("min", minmax(true))
	r.register("max", minmax(false))
	r.register("div", func(a Args) (value.Value, error) {
		x, err := dimArg(a, 0, "number1")
		if err != nil {
			return nil, err
		}
		y, err := dimArg(a, 1, "number2")
		if err != nil {
			return nil, err
		}
		if y.Num.IsZero() {
			return nil, fmt.Errorf("division by zero")
		}
		return value.Dim(x.Num.Div(y.Num), x.Unit), nil
	})
	r.register("unit", func(a Args) (value.Value, error) {
		d, err := dimArg(a, 0, "number")
		if err != nil {
			return nil, err
		}
		return value.Str(d.Unit.String()), nil
	})
	r.register("unitless", func(a Args) (value.Value, error) {
		d, err := dimArg(a, 0, "number")
		if err != nil {
			return nil, err
		}
		return value.Bool(d.Unit.IsNone()), nil
	})
	r.register("comparable", func(a Args) (value.Value, error) {
		x, err := dimArg(a, 0, "number1")
		if err != nil {
			return nil, err
		}
		y, err := dimArg(a, 1, "number2")
		if err != nil {
			return nil, err
		}
		return value.Bool(x.Unit.Comparable(y.Unit)), nil
	})
}

func dimArg(a Args, i int, name string) (value.Dimension, error) {
	v := a.Get(i, name, nil)
	if v == nil {
		return value.Dimension{}, fmt.Errorf("missing argument $%s", name)
	}
	ev, err := value.Eval(v)
	if err != nil {
		return value.Dimension{}, err
	}
	d, ok := ev.(value.Dimension)
	if !ok {
		return value.Dimension{}, fmt.Errorf("$%s: %s is not a number", name, value.Inspect(ev))
	}
	return d, nil
}

func mathUnary(f func(value.Number) value.Number, unit value.Unit) Func {
	return func(a Args) (value.Value, error) {
		d, err := dimArg(a, 0, "number")
		if err != nil {
			return nil, err
		}
		return value.Dim(f(d.Num), unit), nil
	}
}

func mathRound(f func(float64) float64) Func {
	return func(a Args) (value.Value, error) {
		d, err := dimArg(a, 0, "number")
		if err != nil {
			return nil, err
		}
		flt, _ := d.Num.Rat().Float64()
		rounded := f(flt)
		return value.Dim(value.NewNumberInt(int64(rounded)), d.Unit), nil
	}
}

func minmax(wantMin bool) Func {
	return func(a Args) (value.Value, error) {
		if a.Len() == 0 {
			return nil, fmt.Errorf("at least one argument required")
		}
		best, err := dimArg(a, 0, "number")
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(a.Positional); i++ {
			d, err := dimArg(a, i, "")
			if err != nil {
				return nil, err
			}
			if !d.Unit.Comparable(best.Unit) {
				return nil, fmt.Errorf("%s and %s are incompatible units", best.Unit, d.Unit)
			}
			cmp := d.Num.Cmp(best.Num)
			if (wantMin && cmp < 0) || (!wantMin && cmp > 0) {
				best = d
			}
		}
		return best, nil
	}
}
