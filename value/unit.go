package value

// Unit is the unit half of a Dimension. Most units are a single known or
// user-defined atom; Mul/Div exist for intermediate products from
// multiplying/dividing dimensioned numbers (e.g. px*px, px/s), matching
// original_source's unit::Unit enum shape.
type Unit struct {
	known  string // "" when None
	user   bool   // true if known is a user-defined (unrecognized) atom
	isNone bool
	mul    []Unit
	divN   []Unit
	divD   []Unit
}

// NoUnit is the dimensionless unit.
var NoUnit = Unit{isNone: true}

// NewUnit builds a single known or user-defined unit atom.
func NewUnit(name string) Unit {
	if name == "" {
		return NoUnit
	}
	_, known := conversionTable[name]
	return Unit{known: name, user: !known}
}

func (u Unit) IsNone() bool { return u.isNone }

func (u Unit) String() string {
	switch {
	case u.isNone:
		return ""
	case u.mul != nil:
		s := ""
		for i, m := range u.mul {
			if i > 0 {
				s += "*"
			}
			s += m.String()
		}
		return s
	case u.divN != nil || u.divD != nil:
		num := ""
		for i, m := range u.divN {
			if i > 0 {
				num += "*"
			}
			num += m.String()
		}
		if num == "" {
			num = "1"
		}
		den := ""
		for i, m := range u.divD {
			if i > 0 {
				den += "*"
			}
			den += m.String()
		}
		return num + "/" + den
	default:
		return u.known
	}
}

// Equal reports structural equality (same unit, not just compatible).
func (u Unit) Equal(o Unit) bool {
	return u.String() == o.String() && u.isNone == o.isNone
}

// Comparable reports whether two units can be compared/converted: both
// dimensionless, structurally equal, or related by a known conversion
// factor (length, angle, time, frequency, resolution families).
func (u Unit) Comparable(o Unit) bool {
	if u.isNone || o.isNone {
		return true
	}
	if u.Equal(o) {
		return true
	}
	if u.mul != nil || o.mul != nil || u.divN != nil || o.divN != nil {
		return false
	}
	_, ok := conversionFactor(u.known, o.known)
	return ok
}

// conversionFactor returns the multiplier f such that 1<from> == f<to>,
// i.e. a value measured in `from` is multiplied by f to read in `to`.
func conversionFactor(from, to string) (string, bool) {
	row, ok := conversionTable[from]
	if !ok {
		return "", false
	}
	factor, ok := row[to]
	return factor, ok
}

// conversionTable mirrors original_source's UNIT_CONVERSION_TABLE: for
// each pair of comparable units, the ratio expressed as a decimal string
// (parsed into a big.Rat lazily by the caller, so this table stays a
// plain data literal rather than doing arbitrary-precision math at
// package-init time).
var conversionTable = map[string]map[string]string{
	// absolute lengths, relative to 1in = 96px = 72pt = 6pc = 2.54cm = 25.4mm = 25.4*4q
	"in": {"in": "1", "px": "96", "pt": "72", "pc": "6", "cm": "2.54", "mm": "25.4", "q": "101.6"},
	"px": {"in": "1/96", "px": "1", "pt": "3/4", "pc": "1/16", "cm": "2.54/96", "mm": "25.4/96", "q": "101.6/96"},
	"pt": {"in": "1/72", "px": "4/3", "pt": "1", "pc": "1/12", "cm": "2.54/72", "mm": "25.4/72", "q": "101.6/72"},
	"pc": {"in": "1/6", "px": "16", "pt": "12", "pc": "1", "cm": "2.54/6", "mm": "25.4/6", "q": "101.6/6"},
	"cm": {"in": "1/2.54", "px": "96/2.54", "pt": "72/2.54", "pc": "6/2.54", "cm": "1", "mm": "10", "q": "40"},
	"mm": {"in": "1/25.4", "px": "96/25.4", "pt": "72/25.4", "pc": "6/25.4", "cm": "1/10", "mm": "1", "q": "4"},
	"q":  {"in": "1/101.6", "px": "96/101.6", "pt": "72/101.6", "pc": "6/101.6", "cm": "1/40", "mm": "1/4", "q": "1"},

	// angles, relative to 1turn = 360deg = 400grad = 2*pi rad (rad kept out: irrational, unsupported)
	"deg":  {"deg": "1", "grad": "400/360", "turn": "1/360"},
	"grad": {"deg": "360/400", "grad": "1", "turn": "1/400"},
	"turn": {"deg": "360", "grad": "400", "turn": "1"},

	// time
	"s":  {"s": "1", "ms": "1000"},
	"ms": {"s": "1/1000", "ms": "1"},

	// frequency
	"hz":  {"hz": "1", "khz": "1/1000"},
	"khz": {"hz": "1000", "khz": "1"},

	// resolution
	"dpi":  {"dpi": "1", "dpcm": "1/2.54", "dppx": "1/96"},
	"dpcm": {"dpi": "2.54", "dpcm": "1", "dppx": "2.54/96"},
	"dppx": {"dpi": "96", "dpcm": "96/2.54", "dppx": "1"},
}
