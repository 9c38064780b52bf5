package number_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/symlath/number"
	"github.com/stretchr/testify/require"
)

func TestAdd_PromotionLaws(t *testing.T) {
	i := number.Int(2)
	r := number.Rational(1, 3)

	// Integer + Rational commutes and stays Rational.
	left := number.Add(i, r)
	right := number.Add(r, i)
	require.Equal(t, number.KindRational, left.Kind())
	require.True(t, number.Equal(left, right))
	require.Equal(t, "7/3", left.String())
}

func TestAdd_ThirdsSumToExactOne(t *testing.T) {
	third := number.Rational(1, 3)
	sum := number.Add(number.Add(third, third), third)
	require.True(t, number.Equal(sum, number.One()))
	require.Equal(t, number.KindInteger, sum.Kind())
}

func TestMul_DistributesOverAdd(t *testing.T) {
	a := number.Rational(3, 7)
	b := number.Int(5)
	c := number.Rational(-2, 9)
	lhs := number.Mul(a, number.Add(b, c))
	rhs := number.Add(number.Mul(a, b), number.Mul(a, c))
	require.True(t, number.Equal(lhs, rhs))
}

func TestDiv_IntegerQuotients(t *testing.T) {
	// Integral quotient collapses to Integer.
	v := number.Div(number.Int(8), number.Int(2))
	require.Equal(t, number.KindInteger, v.Kind())
	require.Equal(t, "4", v.String())

	// Non-integral quotient promotes to Rational.
	v = number.Div(number.Int(1), number.Int(3))
	require.Equal(t, number.KindRational, v.Kind())
	require.Equal(t, "1/3", v.String())

	// And multiplying back recovers the exact integer.
	require.True(t, number.Equal(number.Mul(v, number.Int(3)), number.One()))
}

func TestDiv_ByZeroIsSymbolicNeverPanics(t *testing.T) {
	for _, v := range []number.Value{
		number.Int(5),
		number.Rational(1, 3),
		number.Float(2.5),
		number.Complex(number.Int(1), number.Int(1)),
		number.Zero(),
	} {
		q := number.Div(v, number.Zero())
		require.Equal(t, number.KindSymbolic, q.Kind(), "dividing %s", v)
	}
	require.Equal(t, "5/0", number.Div(number.Int(5), number.Zero()).String())
}

func TestDivide_CheckedErrors(t *testing.T) {
	_, err := number.Divide(number.Int(5), number.Zero())
	require.ErrorIs(t, err, number.ErrDivisionByZero)

	v, err := number.Divide(number.Int(5), number.Int(2))
	require.NoError(t, err)
	require.Equal(t, "5/2", v.String())
}

func TestFloat_NeverMixesSilently(t *testing.T) {
	// Exact + Float does not demote the exact operand.
	v := number.Add(number.Int(1), number.Float(0.5))
	require.Equal(t, number.KindSymbolic, v.Kind())

	// After an explicit ToExact the sum is exact.
	v = number.Add(number.Int(1), number.Float(0.5).ToExact())
	require.True(t, number.Equal(v, number.Rational(3, 2)))

	// Float with itself stays Float.
	require.Equal(t, number.KindFloat, number.Add(number.Float(1), number.Float(2)).Kind())
}

func TestComplexArithmetic(t *testing.T) {
	a := number.Complex(number.Int(1), number.Int(2))
	b := number.Complex(number.Int(3), number.Int(-1))

	sum := number.Add(a, b)
	require.Equal(t, "4+i", sum.String())

	// (1+2i)(3-i) = 3 - i + 6i - 2i^2 = 5 + 5i
	prod := number.Mul(a, b)
	require.Equal(t, "5+5i", prod.String())

	// i * i = -1 collapses out of the Complex kind.
	sq := number.Mul(number.ImaginaryUnit(), number.ImaginaryUnit())
	require.True(t, number.Equal(sq, number.NegOne()))

	// Division multiplies by the conjugate: (1+2i)/(1+2i) = 1.
	require.True(t, number.Equal(number.Div(a, a), number.One()))
}

func TestPow_ExactLargeInteger(t *testing.T) {
	v := number.Pow(number.Two(), number.Int(100))
	require.Equal(t, number.KindInteger, v.Kind())
	want := new(big.Int).Lsh(big.NewInt(1), 100)
	got, ok := v.Int()
	require.True(t, ok)
	require.Equal(t, 0, want.Cmp(got))
}

func TestPow_NegativeExponentInverts(t *testing.T) {
	v := number.Pow(number.Two(), number.Int(-3))
	require.True(t, number.Equal(v, number.Rational(1, 8)))

	// 0^-1 has no exact value.
	require.Equal(t, number.KindSymbolic, number.Pow(number.Zero(), number.Int(-1)).Kind())
}

func TestPow_RationalBase(t *testing.T) {
	v := number.Pow(number.Rational(2, 3), number.Int(3))
	require.True(t, number.Equal(v, number.Rational(8, 27)))
}

func TestNegAndAbs(t *testing.T) {
	require.True(t, number.Equal(number.Neg(number.Int(5)), number.Int(-5)))
	require.True(t, number.Equal(number.Abs(number.Int(-5)), number.Int(5)))
	require.True(t, number.Equal(number.Abs(number.Rational(-1, 2)), number.Rational(1, 2)))

	// |3+4i| = 5, a perfect-square modulus.
	mod := number.Abs(number.Complex(number.Int(3), number.Int(4)))
	require.True(t, number.Equal(mod, number.Int(5)))

	// |1+i| = sqrt(2) stays symbolic.
	mod = number.Abs(number.Complex(number.Int(1), number.Int(1)))
	require.Equal(t, number.KindSymbolic, mod.Kind())
}

func TestSqrtExact(t *testing.T) {
	v, ok := number.SqrtExact(number.Int(4))
	require.True(t, ok)
	require.True(t, number.Equal(v, number.Two()))

	v, ok = number.SqrtExact(number.Rational(9, 16))
	require.True(t, ok)
	require.True(t, number.Equal(v, number.Rational(3, 4)))

	_, ok = number.SqrtExact(number.Two())
	require.False(t, ok)

	_, ok = number.SqrtExact(number.Int(-4))
	require.False(t, ok)
}

func TestRealArithmetic(t *testing.T) {
	a, err := number.RealFromString("1.25")
	require.NoError(t, err)
	sum := number.Add(a, number.Rational(3, 4))
	require.Equal(t, number.KindReal, sum.Kind())
	require.True(t, sum.IsInteger())
	n, ok := sum.Int()
	require.True(t, ok)
	require.Equal(t, int64(2), n.Int64())
}
