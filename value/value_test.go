package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/value"
)

func dim(n int64, unit string) value.Dimension {
	return value.Dim(value.NewNumberInt(n), value.NewUnit(unit))
}

func TestEvalArithmeticSameUnit(t *testing.T) {
	expr := value.BinaryOp{Left: dim(10, "px"), Op: value.OpPlus, Right: dim(5, "px")}
	got, err := value.Eval(expr)
	require.NoError(t, err)
	require.Equal(t, "15px", value.Display(got))
}

func TestEvalArithmeticUnitConversion(t *testing.T) {
	expr := value.BinaryOp{Left: dim(1, "in"), Op: value.OpPlus, Right: dim(96, "px")}
	got, err := value.Eval(expr)
	require.NoError(t, err)
	require.Equal(t, "2in", value.Display(got))
}

func TestEvalArithmeticRoundsToTenDigits(t *testing.T) {
	expr := value.BinaryOp{Left: dim(1, "px"), Op: value.OpPlus, Right: dim(1, "cm")}
	got, err := value.Eval(expr)
	require.NoError(t, err)
	require.Equal(t, "38.7952755906px", value.Display(got))
}

func TestEvalMultiplyNumbers(t *testing.T) {
	expr := value.BinaryOp{Left: dim(10, "px"), Op: value.OpMul, Right: dim(2, "")}
	got, err := value.Eval(expr)
	require.NoError(t, err)
	require.Equal(t, "20px", value.Display(got))
}

func TestEvalDivisionByZero(t *testing.T) {
	expr := value.BinaryOp{Left: dim(10, "px"), Op: value.OpDiv, Right: dim(0, "px")}
	_, err := value.Eval(expr)
	require.Error(t, err)
}

func TestEvalIncompatibleUnits(t *testing.T) {
	expr := value.BinaryOp{Left: dim(10, "px"), Op: value.OpPlus, Right: dim(5, "deg")}
	_, err := value.Eval(expr)
	require.Error(t, err)
}

func TestCompareAcrossUnits(t *testing.T) {
	got, err := value.Compare(dim(1, "in"), dim(48, "px"), value.OpGt)
	require.NoError(t, err)
	require.Equal(t, value.True, got)
}

func TestEqualsAcrossUnits(t *testing.T) {
	eq, err := value.Equals(dim(1, "in"), dim(96, "px"))
	require.NoError(t, err)
	require.True(t, eq)
}

func TestIsTrueThreeValued(t *testing.T) {
	tr, err := value.IsTrue(value.Null)
	require.NoError(t, err)
	require.False(t, tr)

	tr, err = value.IsTrue(value.False)
	require.NoError(t, err)
	require.False(t, tr)

	tr, err = value.IsTrue(value.Bare(""))
	require.NoError(t, err)
	require.True(t, tr)

	tr, err = value.IsTrue(dim(0, ""))
	require.NoError(t, err)
	require.True(t, tr)
}

func TestDisplayIdentQuoting(t *testing.T) {
	require.Equal(t, "foo", value.Display(value.Bare("foo")))
	require.Equal(t, `"foo"`, value.Display(value.Str("foo")))
}

func TestDisplayList(t *testing.T) {
	l := value.List{
		Items:     []value.Value{dim(1, "px"), dim(2, "px"), dim(3, "px")},
		Separator: value.CommaSep,
	}
	require.Equal(t, "1px, 2px, 3px", value.Display(l))
}

func TestNumberStringTrimsZeroes(t *testing.T) {
	n, ok := value.NewNumberString("0.500")
	require.True(t, ok)
	require.Equal(t, ".5", n.String())
}

func TestKindOfDimension(t *testing.T) {
	k, err := value.Kind(dim(1, "px"))
	require.NoError(t, err)
	require.Equal(t, "number", k)
}
