package number_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/symlath/number"
	"github.com/stretchr/testify/require"
)

func TestRational_DenominatorOneCollapsesToInteger(t *testing.T) {
	v := number.Rational(6, 1)
	require.Equal(t, number.KindInteger, v.Kind())
	require.Equal(t, "6", v.String())

	// Reduction happens before the collapse: 12/4 is the integer 3.
	v = number.Rational(12, 4)
	require.Equal(t, number.KindInteger, v.Kind())
	require.Equal(t, "3", v.String())
}

func TestComplex_ZeroImaginaryCollapses(t *testing.T) {
	v := number.Complex(number.Int(3), number.Int(0))
	require.Equal(t, number.KindInteger, v.Kind())
	require.True(t, number.Equal(v, number.Int(3)))
}

func TestString_CanonicalForms(t *testing.T) {
	require.Equal(t, "1/3", number.Rational(1, 3).String())
	require.Equal(t, "-1/3", number.Rational(1, -3).String())
	require.Equal(t, "i", number.ImaginaryUnit().String())
	require.Equal(t, "-i", number.Neg(number.ImaginaryUnit()).String())
	require.Equal(t, "3+4i", number.Complex(number.Int(3), number.Int(4)).String())
	require.Equal(t, "3-4i", number.Complex(number.Int(3), number.Int(-4)).String())
	require.Equal(t, "2i", number.Complex(number.Int(0), number.Int(2)).String())
}

func TestPredicates(t *testing.T) {
	require.True(t, number.Zero().IsZero())
	require.True(t, number.One().IsOne())
	require.True(t, number.Int(4).IsEven())
	require.False(t, number.Int(5).IsEven())
	require.True(t, number.Rational(7, 2).IsRational())
	require.False(t, number.Rational(7, 2).IsInteger())
	require.True(t, number.Int(-2).IsNegative())
	require.True(t, number.Rational(1, 2).IsPositive())
	require.True(t, number.ImaginaryUnit().IsComplex())
	require.False(t, number.ImaginaryUnit().IsReal())
	require.True(t, number.Float(2.5).IsReal())
	require.False(t, number.Float(2.5).IsExact())
	require.True(t, number.Rational(1, 3).IsExact())
	require.False(t, number.Symbolic("5/0").IsZero())
}

func TestToExact_FloatBecomesRational(t *testing.T) {
	v := number.Float(0.5).ToExact()
	require.Equal(t, number.KindRational, v.Kind())
	require.True(t, number.Equal(v, number.Rational(1, 2)))

	// Integral floats collapse all the way to Integer.
	v = number.Float(4).ToExact()
	require.Equal(t, number.KindInteger, v.Kind())
}

func TestConversions(t *testing.T) {
	n, ok := number.Rational(8, 2).Int()
	require.True(t, ok)
	require.Equal(t, int64(4), n.Int64())

	_, ok = number.Rational(1, 3).Int()
	require.False(t, ok)

	r, ok := number.Int(7).Rat()
	require.True(t, ok)
	require.Equal(t, 0, r.Cmp(big.NewRat(7, 1)))

	f, ok := number.Rational(1, 4).Float64()
	require.True(t, ok)
	require.InDelta(t, 0.25, f, 0)

	_, ok = number.ImaginaryUnit().Float64()
	require.False(t, ok)
}

func TestApproximate_ComplexModulus(t *testing.T) {
	v := number.Complex(number.Int(3), number.Int(4))
	require.InDelta(t, 5.0, v.Approximate(), 1e-12)
}

func TestHash_AgreesWithEqual(t *testing.T) {
	a := number.Add(number.Add(number.Rational(1, 3), number.Rational(1, 3)), number.Rational(1, 3))
	b := number.One()
	require.True(t, number.Equal(a, b))
	require.Equal(t, b.Hash(), a.Hash())

	// Distinct kinds stay distinct.
	require.False(t, number.Equal(number.Int(1), number.Float(1)))

	d1, err := number.RealFromString("1.50")
	require.NoError(t, err)
	d2, err := number.RealFromString("1.5")
	require.NoError(t, err)
	require.True(t, number.Equal(d1, d2))
	require.Equal(t, d2.Hash(), d1.Hash())
}
