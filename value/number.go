package value

import (
	"math/big"
	"strings"
)

// Number is an arbitrary-precision rational, per spec.md §3's "Number:
// arbitrary-precision rational (big.Rat), total order, + − × ÷ mod".
type Number struct {
	r *big.Rat
}

// NewNumberInt builds a Number from an int64.
func NewNumberInt(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// NewNumberString parses a decimal literal ("10", "1.5", "-.25") into a
// Number. Returns false if s is not a valid decimal.
func NewNumberString(s string) (Number, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Number{}, false
	}
	return Number{r: r}, true
}

// NewNumberRat wraps an existing big.Rat.
func NewNumberRat(r *big.Rat) Number { return Number{r: new(big.Rat).Set(r)} }

func (n Number) Rat() *big.Rat { return new(big.Rat).Set(n.r) }

func (n Number) Add(o Number) Number { return Number{r: new(big.Rat).Add(n.r, o.r)} }
func (n Number) Sub(o Number) Number { return Number{r: new(big.Rat).Sub(n.r, o.r)} }
func (n Number) Mul(o Number) Number { return Number{r: new(big.Rat).Mul(n.r, o.r)} }

// Div divides n by o. Callers must check o is nonzero first (arith.go's
// div and the div builtin return a division-by-zero error before calling
// this).
func (n Number) Div(o Number) Number { return Number{r: new(big.Rat).Quo(n.r, o.r)} }

// Rem is the floating-point-style modulo used by CSS `%`: the remainder
// takes the sign of the divisor, matching original_source's Number::Rem.
// big.Rat's denominator is always positive, so Int.Div (which truncates
// toward -inf) gives floor(n/o) directly.
func (n Number) Rem(o Number) Number {
	q := new(big.Rat).Quo(n.r, o.r)
	qFloor := new(big.Int).Div(q.Num(), q.Denom())
	floorRat := new(big.Rat).SetInt(qFloor)
	return n.Sub(o.Mul(Number{r: floorRat}))
}

func (n Number) Neg() Number { return Number{r: new(big.Rat).Neg(n.r)} }

func (n Number) IsZero() bool { return n.r.Sign() == 0 }
func (n Number) Sign() int    { return n.r.Sign() }

func (n Number) Cmp(o Number) int { return n.r.Cmp(o.r) }
func (n Number) Equal(o Number) bool { return n.r.Cmp(o.r) == 0 }

// MulFactor scales n by a conversion factor given as a decimal-ratio
// string ("25.4/96" or "1"), as used for unit conversion.
func (n Number) MulFactor(factor string) Number {
	f := parseFactor(factor)
	return n.Mul(Number{r: f})
}

func parseFactor(factor string) *big.Rat {
	if i := strings.IndexByte(factor, '/'); i >= 0 {
		num, _ := new(big.Rat).SetString(factor[:i])
		den, _ := new(big.Rat).SetString(factor[i+1:])
		return new(big.Rat).Quo(num, den)
	}
	r, _ := new(big.Rat).SetString(factor)
	return r
}

// String renders the number the way Sass displays dimensions: integers
// exactly, other values rounded to 10 fractional digits, trimming
// trailing zeros, with a
// leading "-" for negatives and no leading zero before the point (".5"
// not "0.5"), matching spec.md's display rules for Dimension.
func (n Number) String() string {
	if n.r.IsInt() {
		return n.r.Num().String()
	}
	// Sass's default precision is 10 digits after the decimal point;
	// round to that before trimming trailing zeros.
	s := n.r.FloatString(10)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if strings.HasPrefix(s, "0.") {
		s = s[1:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
