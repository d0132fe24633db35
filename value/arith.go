package value

import (
	"fmt"
	"math/big"
)

// unitFactor returns the multiplier to express a `from`-unit number in
// `to` units, 1 if the units are equal or either is None.
func unitFactor(from, to Unit) (*big.Rat, error) {
	if from.Equal(to) || from.isNone || to.isNone {
		return big.NewRat(1, 1), nil
	}
	if !from.Comparable(to) {
		return nil, fmt.Errorf("%w: %s and %s", errUnit, from, to)
	}
	factor, _ := conversionFactor(from.known, to.known)
	return parseFactor(factor), nil
}

func add(lhs, rhs Value) (Value, error) {
	if l, ok := lhs.(Dimension); ok {
		if r, ok := rhs.(Dimension); ok {
			return addDimensions(l, r)
		}
		if r, ok := rhs.(ColorValue); ok {
			return addColorNumber(r, l, 1)
		}
	}
	if l, ok := lhs.(ColorValue); ok {
		if r, ok := rhs.(ColorValue); ok {
			return colorChannelOp(l.Color, r.Color, 1)
		}
		if r, ok := rhs.(Dimension); ok {
			return addColorNumber(l, r, 1)
		}
	}
	if l, ok := lhs.(List); ok {
		return List{Items: append(append([]Value{}, l.Items...), rhs), Separator: l.Separator, Brackets: l.Brackets}, nil
	}
	return Bare(Display(lhs) + Display(rhs)), nil
}

func sub(lhs, rhs Value) (Value, error) {
	if l, ok := lhs.(Dimension); ok {
		if r, ok := rhs.(Dimension); ok {
			f, err := unitFactor(r.Unit, l.Unit)
			if err != nil {
				return nil, err
			}
			return Dim(l.Num.Sub(Number{r: mulRat(r.Num.Rat(), f)}), resultUnit(l.Unit, r.Unit)), nil
		}
		if r, ok := rhs.(ColorValue); ok {
			return addColorNumber(r, l, -1)
		}
	}
	if l, ok := lhs.(ColorValue); ok {
		if r, ok := rhs.(ColorValue); ok {
			return colorChannelOp(l.Color, r.Color, -1)
		}
		if r, ok := rhs.(Dimension); ok {
			return addColorNumber(l, r, -1)
		}
	}
	return Bare(Display(lhs) + "-" + Display(rhs)), nil
}

func mul(lhs, rhs Value) (Value, error) {
	l, ok1 := lhs.(Dimension)
	r, ok2 := rhs.(Dimension)
	if ok1 && ok2 {
		return Dim(l.Num.Mul(r.Num), multiplyUnits(l.Unit, r.Unit)), nil
	}
	return nil, fmt.Errorf("undefined operation %q * %q", Display(lhs), Display(rhs))
}

func div(lhs, rhs Value) (Value, error) {
	l, ok1 := lhs.(Dimension)
	r, ok2 := rhs.(Dimension)
	if ok1 && ok2 {
		if r.Num.IsZero() {
			return nil, fmt.Errorf("division by zero: %s/%s", Display(lhs), Display(rhs))
		}
		return Dim(l.Num.Div(r.Num), divideUnits(l.Unit, r.Unit)), nil
	}
	return Bare(Display(lhs) + "/" + Display(rhs)), nil
}

func rem(lhs, rhs Value) (Value, error) {
	l, ok1 := lhs.(Dimension)
	r, ok2 := rhs.(Dimension)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("undefined operation %q %% %q", Display(lhs), Display(rhs))
	}
	if r.Num.IsZero() {
		return nil, fmt.Errorf("division by zero: %s%%%s", Display(lhs), Display(rhs))
	}
	f, err := unitFactor(r.Unit, l.Unit)
	if err != nil {
		return nil, err
	}
	converted := Number{r: mulRat(r.Num.Rat(), f)}
	return Dim(l.Num.Rem(converted), l.Unit), nil
}

func mulRat(r, factor *big.Rat) *big.Rat { return new(big.Rat).Mul(r, factor) }

func addDimensions(l, r Dimension) (Value, error) {
	f, err := unitFactor(r.Unit, l.Unit)
	if err != nil {
		return nil, err
	}
	return Dim(l.Num.Add(Number{r: mulRat(r.Num.Rat(), f)}), resultUnit(l.Unit, r.Unit)), nil
}

// resultUnit picks the unit a +/- result is expressed in: the non-None
// side wins, matching CSS's "5px + 5 == 10px" convention.
func resultUnit(l, r Unit) Unit {
	if l.isNone {
		return r
	}
	return l
}

func multiplyUnits(l, r Unit) Unit {
	if l.isNone {
		return r
	}
	if r.isNone {
		return l
	}
	return Unit{mul: []Unit{l, r}}
}

func divideUnits(l, r Unit) Unit {
	if r.isNone {
		return l
	}
	if l.isNone {
		return Unit{divN: nil, divD: []Unit{r}}
	}
	if l.Equal(r) || l.Comparable(r) {
		return NoUnit
	}
	return Unit{divN: []Unit{l}, divD: []Unit{r}}
}

func addColorNumber(c ColorValue, d Dimension, sign float64) (Value, error) {
	delta, _ := d.Num.Rat().Float64()
	delta *= sign
	return ColorValue{Color: RGBA(
		clampByte(float64(c.Color.R)+delta),
		clampByte(float64(c.Color.G)+delta),
		clampByte(float64(c.Color.B)+delta),
		c.Color.A,
	)}, nil
}

func colorChannelOp(c1, c2 Color, sign float64) (Value, error) {
	return ColorValue{Color: RGBA(
		clampByte(float64(c1.R)+sign*float64(c2.R)),
		clampByte(float64(c1.G)+sign*float64(c2.G)),
		clampByte(float64(c1.B)+sign*float64(c2.B)),
		c1.A,
	)}, nil
}
