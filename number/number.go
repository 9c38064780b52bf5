// Package number: Value variant, constructors, and type promotion.
//
// This file declares Kind, Value, the constructors for every kind,
// and Promote, the total promotion function every binary operation
// funnels through.
package number

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// realPrecision is the working precision (significant digits) for
// Real arithmetic. Exact kinds never pass through it.
const realPrecision = 64

// apdCtx is the shared decimal context for Real arithmetic.
var apdCtx = apd.BaseContext.WithPrecision(realPrecision)

// Kind enumerates the numeric representations in promotion order.
// Float and Symbolic sit outside the exact tower.
type Kind uint8

const (
	// KindInteger is an arbitrary-precision integer.
	KindInteger Kind = iota

	// KindRational is an arbitrary-precision reduced fraction.
	KindRational

	// KindReal is an arbitrary-precision decimal.
	KindReal

	// KindComplex is a pair of Values, real and imaginary.
	KindComplex

	// KindFloat is a machine float64 approximation.
	KindFloat

	// KindSymbolic is an unresolved value carrying its rendered form.
	KindSymbolic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindRational:
		return "Rational"
	case KindReal:
		return "Real"
	case KindComplex:
		return "Complex"
	case KindFloat:
		return "Float"
	case KindSymbolic:
		return "Symbolic"
	default:
		return "Unknown"
	}
}

// Value is an immutable number of one of the six kinds.
// The zero Value is the integer 0.
type Value struct {
	kind Kind

	i  *big.Int     // KindInteger
	r  *big.Rat     // KindRational, always reduced, denominator > 1
	d  *apd.Decimal // KindReal
	re *Value       // KindComplex real part
	im *Value       // KindComplex imaginary part, never zero
	f  float64      // KindFloat
	s  string       // KindSymbolic rendered form
}

// Kind reports the representation of v.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer value n.
func Int(n int64) Value {
	return Value{kind: KindInteger, i: big.NewInt(n)}
}

// FromBigInt returns the integer value of n. The argument is copied.
func FromBigInt(n *big.Int) Value {
	return Value{kind: KindInteger, i: new(big.Int).Set(n)}
}

// Rational returns num/den in lowest terms. A denominator of 1 (after
// reduction) yields an Integer; a zero denominator yields a Symbolic
// value, matching Div.
func Rational(num, den int64) Value {
	if den == 0 {
		return Div(Int(num), Int(0))
	}
	return fromRat(big.NewRat(num, den))
}

// FromBigRat returns the rational value of r in canonical form.
// The argument is copied.
func FromBigRat(r *big.Rat) Value {
	return fromRat(new(big.Rat).Set(r))
}

// fromRat canonicalizes: denominator 1 collapses to Integer.
// Takes ownership of r.
func fromRat(r *big.Rat) Value {
	if r.IsInt() {
		return Value{kind: KindInteger, i: new(big.Int).Set(r.Num())}
	}
	return Value{kind: KindRational, r: r}
}

// RealFromString parses s as an arbitrary-precision decimal.
func RealFromString(s string) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindReal, d: d}, nil
}

// fromDecimal wraps an owned decimal.
func fromDecimal(d *apd.Decimal) Value {
	return Value{kind: KindReal, d: d}
}

// Complex returns re + im·i. A zero imaginary part collapses to the
// real component, keeping Equal and Hash structural.
func Complex(re, im Value) Value {
	if im.IsZero() {
		return re
	}
	r, i := re, im
	return Value{kind: KindComplex, re: &r, im: &i}
}

// Float returns the machine approximation f.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Symbolic returns an unresolved value rendered as tag.
func Symbolic(tag string) Value {
	return Value{kind: KindSymbolic, s: tag}
}

// Zero returns the integer 0.
func Zero() Value { return Int(0) }

// One returns the integer 1.
func One() Value { return Int(1) }

// NegOne returns the integer -1.
func NegOne() Value { return Int(-1) }

// Two returns the integer 2.
func Two() Value { return Int(2) }

// ImaginaryUnit returns i, the complex unit.
func ImaginaryUnit() Value { return Complex(Int(0), Int(1)) }

// Promote converts a and b to the least common kind able to hold both
// exactly: Integer < Rational < Real < Complex. Float promotes only
// with itself; a Float/exact pair is returned unchanged and the caller
// falls back to a Symbolic result. Symbolic never promotes.
func Promote(a, b Value) (Value, Value) {
	if a.kind == b.kind {
		return a, b
	}
	if a.kind == KindSymbolic || b.kind == KindSymbolic {
		return a, b
	}

	// Complex absorbs every exact real kind (x becomes x + 0i).
	if a.kind == KindComplex && b.isRealKind() {
		bb := b
		zero := Int(0)
		return a, Value{kind: KindComplex, re: &bb, im: &zero}
	}
	if b.kind == KindComplex && a.isRealKind() {
		aa := a
		zero := Int(0)
		return Value{kind: KindComplex, re: &aa, im: &zero}, b
	}

	// Float never mixes silently with an exact kind.
	if a.kind == KindFloat || b.kind == KindFloat {
		return a, b
	}

	if a.kind < b.kind {
		return a.promoteTo(b.kind), b
	}
	return a, b.promoteTo(a.kind)
}

// isRealKind reports whether v lies on the exact real line (so it can
// embed into Complex as v + 0i).
func (v Value) isRealKind() bool {
	return v.kind == KindInteger || v.kind == KindRational || v.kind == KindReal
}

// promoteTo lifts v to the target kind. Only upward moves along
// Integer -> Rational -> Real are requested.
func (v Value) promoteTo(target Kind) Value {
	switch {
	case v.kind == KindInteger && target == KindRational:
		return Value{kind: KindRational, r: new(big.Rat).SetInt(v.i)}
	case v.kind == KindInteger && target == KindReal:
		var c apd.BigInt
		c.SetMathBigInt(v.i)
		return fromDecimal(apd.NewWithBigInt(&c, 0))
	case v.kind == KindRational && target == KindReal:
		// Convert num/den without a float round-trip.
		var cn, cd apd.BigInt
		cn.SetMathBigInt(v.r.Num())
		cd.SetMathBigInt(v.r.Denom())
		num := apd.NewWithBigInt(&cn, 0)
		den := apd.NewWithBigInt(&cd, 0)
		res := new(apd.Decimal)
		_, _ = apdCtx.Quo(res, num, den)
		return fromDecimal(res)
	default:
		return v
	}
}
