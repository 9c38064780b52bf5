// Package number: predicates and conversions over Value.
package number

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// IsZero reports whether v is exactly zero. Symbolic values are never
// zero.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindInteger:
		return v.i.Sign() == 0
	case KindRational:
		return v.r.Sign() == 0
	case KindReal:
		return v.d.IsZero()
	case KindComplex:
		return v.re.IsZero() && v.im.IsZero()
	case KindFloat:
		return v.f == 0
	default:
		return false
	}
}

// IsOne reports whether v is exactly one.
func (v Value) IsOne() bool {
	switch v.kind {
	case KindInteger:
		return v.i.Cmp(bigOne) == 0
	case KindRational:
		return v.r.Cmp(ratOne) == 0
	case KindReal:
		return v.d.Cmp(decOne) == 0
	case KindComplex:
		return v.re.IsOne() && v.im.IsZero()
	case KindFloat:
		return v.f == 1
	default:
		return false
	}
}

// IsExact reports whether v carries no approximation. Only Float is
// inexact; Symbolic is unresolved but not lossy.
func (v Value) IsExact() bool {
	switch v.kind {
	case KindFloat:
		return false
	case KindComplex:
		return v.re.IsExact() && v.im.IsExact()
	default:
		return true
	}
}

// IsInteger reports whether v is mathematically an integer, whatever
// its representation.
func (v Value) IsInteger() bool {
	switch v.kind {
	case KindInteger:
		return true
	case KindRational:
		return v.r.IsInt()
	case KindReal:
		var integ, frac apd.Decimal
		v.d.Modf(&integ, &frac)
		return frac.IsZero()
	case KindComplex:
		return v.im.IsZero() && v.re.IsInteger()
	case KindFloat:
		return v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0)
	default:
		return false
	}
}

// IsRational reports whether v is an exact ratio of integers.
func (v Value) IsRational() bool {
	switch v.kind {
	case KindInteger, KindRational:
		return true
	case KindComplex:
		return v.im.IsZero() && v.re.IsRational()
	default:
		return false
	}
}

// IsReal reports whether v lies on the real line.
func (v Value) IsReal() bool {
	switch v.kind {
	case KindInteger, KindRational, KindReal, KindFloat:
		return true
	case KindComplex:
		return v.im.IsZero()
	default:
		return false
	}
}

// IsComplex reports whether v carries a nonzero imaginary part.
func (v Value) IsComplex() bool {
	return v.kind == KindComplex && !v.im.IsZero()
}

// IsNegative reports whether v is a real value strictly below zero.
func (v Value) IsNegative() bool {
	switch v.kind {
	case KindInteger:
		return v.i.Sign() < 0
	case KindRational:
		return v.r.Sign() < 0
	case KindReal:
		return v.d.Sign() < 0
	case KindFloat:
		return v.f < 0
	case KindComplex:
		return v.im.IsZero() && v.re.IsNegative()
	default:
		return false
	}
}

// IsPositive reports whether v is a real value strictly above zero.
func (v Value) IsPositive() bool {
	switch v.kind {
	case KindInteger:
		return v.i.Sign() > 0
	case KindRational:
		return v.r.Sign() > 0
	case KindReal:
		return v.d.Sign() > 0
	case KindFloat:
		return v.f > 0
	case KindComplex:
		return v.im.IsZero() && v.re.IsPositive()
	default:
		return false
	}
}

// IsEven reports whether v is an even integer.
func (v Value) IsEven() bool {
	n, ok := v.Int()
	return ok && n.Bit(0) == 0
}

// ToExact converts a Float into the exact rational it denotes (binary
// floats are exact rationals). NaN and infinities become Symbolic.
// Every other kind is returned unchanged.
func (v Value) ToExact() Value {
	if v.kind != KindFloat {
		return v
	}
	r := new(big.Rat)
	if r.SetFloat64(v.f) == nil {
		return Symbolic(formatFloat(v.f))
	}
	return fromRat(r)
}

// Approximate returns the closest float64. Complex values yield their
// modulus; Symbolic yields NaN.
func (v Value) Approximate() float64 {
	switch v.kind {
	case KindInteger:
		f, _ := new(big.Float).SetInt(v.i).Float64()
		return f
	case KindRational:
		f, _ := v.r.Float64()
		return f
	case KindReal:
		f, _ := v.d.Float64()
		return f
	case KindComplex:
		return math.Hypot(v.re.Approximate(), v.im.Approximate())
	case KindFloat:
		return v.f
	default:
		return math.NaN()
	}
}

// Int returns v as a big integer when it is mathematically one.
// The result is a fresh copy.
func (v Value) Int() (*big.Int, bool) {
	switch v.kind {
	case KindInteger:
		return new(big.Int).Set(v.i), true
	case KindRational:
		if v.r.IsInt() {
			return new(big.Int).Set(v.r.Num()), true
		}
	case KindReal:
		if v.IsInteger() {
			var integ, frac apd.Decimal
			v.d.Modf(&integ, &frac)
			return decimalInt(&integ), true
		}
	case KindComplex:
		if v.im.IsZero() {
			return v.re.Int()
		}
	case KindFloat:
		if v.IsInteger() {
			bi, _ := big.NewFloat(v.f).Int(nil)
			return bi, true
		}
	}
	return nil, false
}

// Int64 returns v as an int64 when it fits.
func (v Value) Int64() (int64, bool) {
	n, ok := v.Int()
	if !ok || !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// Rat returns v as a big rational when it is one. The result is a
// fresh copy.
func (v Value) Rat() (*big.Rat, bool) {
	switch v.kind {
	case KindInteger:
		return new(big.Rat).SetInt(v.i), true
	case KindRational:
		return new(big.Rat).Set(v.r), true
	case KindComplex:
		if v.im.IsZero() {
			return v.re.Rat()
		}
	}
	return nil, false
}

// Float64 returns v as a float64 when v is real, with the usual
// rounding for exact kinds.
func (v Value) Float64() (float64, bool) {
	if !v.IsReal() {
		return 0, false
	}
	return v.Approximate(), true
}

// decimalInt converts an integral decimal to a big.Int.
func decimalInt(d *apd.Decimal) *big.Int {
	n := new(big.Int).Set(d.Coeff.MathBigInt())
	if d.Exponent > 0 {
		n.Mul(n, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Exponent)), nil))
	} else if d.Exponent < 0 {
		n.Quo(n, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-d.Exponent)), nil))
	}
	if d.Negative {
		n.Neg(n)
	}
	return n
}

var (
	bigOne = big.NewInt(1)
	ratOne = big.NewRat(1, 1)
	decOne = apd.New(1, 0)
)
