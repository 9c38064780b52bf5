// Package number: arithmetic over every pair of kinds.
//
// All binary operations promote through Promote and are total: pairs
// with no exact common kind (Float with an exact kind, anything with
// Symbolic) produce a Symbolic rendering of the unevaluated operation
// instead of losing precision or panicking.
//
// Errors:
//
//	ErrDivisionByZero - checked Divide was called with a zero divisor.
package number

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// ErrDivisionByZero indicates a zero divisor passed to Divide. The
// unchecked Div never returns it; it yields a Symbolic quotient.
var ErrDivisionByZero = errors.New("number: division by zero")

// maxIntExp bounds exponents expanded by Pow. Larger powers stay
// symbolic rather than allocating gigantic integers.
const maxIntExp = 1 << 16

// Add returns a + b in the promoted kind.
func Add(a, b Value) Value {
	a, b = Promote(a, b)
	switch {
	case a.kind != b.kind:
		return symBinary(a, b, "+")
	case a.kind == KindInteger:
		return Value{kind: KindInteger, i: new(big.Int).Add(a.i, b.i)}
	case a.kind == KindRational:
		return fromRat(new(big.Rat).Add(a.r, b.r))
	case a.kind == KindReal:
		res := new(apd.Decimal)
		_, _ = apdCtx.Add(res, a.d, b.d)
		return fromDecimal(res)
	case a.kind == KindComplex:
		return Complex(Add(*a.re, *b.re), Add(*a.im, *b.im))
	case a.kind == KindFloat:
		return Float(a.f + b.f)
	default:
		return symBinary(a, b, "+")
	}
}

// Sub returns a - b in the promoted kind.
func Sub(a, b Value) Value {
	a, b = Promote(a, b)
	switch {
	case a.kind != b.kind:
		return symBinary(a, b, "-")
	case a.kind == KindInteger:
		return Value{kind: KindInteger, i: new(big.Int).Sub(a.i, b.i)}
	case a.kind == KindRational:
		return fromRat(new(big.Rat).Sub(a.r, b.r))
	case a.kind == KindReal:
		res := new(apd.Decimal)
		_, _ = apdCtx.Sub(res, a.d, b.d)
		return fromDecimal(res)
	case a.kind == KindComplex:
		return Complex(Sub(*a.re, *b.re), Sub(*a.im, *b.im))
	case a.kind == KindFloat:
		return Float(a.f - b.f)
	default:
		return symBinary(a, b, "-")
	}
}

// Mul returns a * b in the promoted kind. Complex multiplication is
// (a+bi)(c+di) = (ac-bd) + (ad+bc)i with components in the promoted
// exact kind.
func Mul(a, b Value) Value {
	a, b = Promote(a, b)
	switch {
	case a.kind != b.kind:
		return symBinary(a, b, "*")
	case a.kind == KindInteger:
		return Value{kind: KindInteger, i: new(big.Int).Mul(a.i, b.i)}
	case a.kind == KindRational:
		return fromRat(new(big.Rat).Mul(a.r, b.r))
	case a.kind == KindReal:
		res := new(apd.Decimal)
		_, _ = apdCtx.Mul(res, a.d, b.d)
		return fromDecimal(res)
	case a.kind == KindComplex:
		ac := Mul(*a.re, *b.re)
		bd := Mul(*a.im, *b.im)
		ad := Mul(*a.re, *b.im)
		bc := Mul(*a.im, *b.re)
		return Complex(Sub(ac, bd), Add(ad, bc))
	case a.kind == KindFloat:
		return Float(a.f * b.f)
	default:
		return symBinary(a, b, "*")
	}
}

// Div returns a / b in the promoted kind. Integer division with a
// non-integral result is Rational. A zero divisor of any kind yields a
// Symbolic quotient; Div never panics and never errs.
func Div(a, b Value) Value {
	if b.IsZero() {
		return symBinary(a, b, "/")
	}
	a, b = Promote(a, b)
	switch {
	case a.kind != b.kind:
		return symBinary(a, b, "/")
	case a.kind == KindInteger:
		return fromRat(new(big.Rat).SetFrac(a.i, b.i))
	case a.kind == KindRational:
		return fromRat(new(big.Rat).Quo(a.r, b.r))
	case a.kind == KindReal:
		res := new(apd.Decimal)
		_, _ = apdCtx.Quo(res, a.d, b.d)
		return fromDecimal(res)
	case a.kind == KindComplex:
		// Multiply by the conjugate, divide by the squared modulus.
		mod := Add(Mul(*b.re, *b.re), Mul(*b.im, *b.im))
		if mod.IsZero() {
			return symBinary(a, b, "/")
		}
		re := Add(Mul(*a.re, *b.re), Mul(*a.im, *b.im))
		im := Sub(Mul(*a.im, *b.re), Mul(*a.re, *b.im))
		return Complex(Div(re, mod), Div(im, mod))
	case a.kind == KindFloat:
		return Float(a.f / b.f)
	default:
		return symBinary(a, b, "/")
	}
}

// Divide is the checked form of Div for callers that treat a zero
// divisor as a failure rather than a symbolic value.
func Divide(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, fmt.Errorf("%w: %s/%s", ErrDivisionByZero, a, b)
	}
	return Div(a, b), nil
}

// Neg returns -v.
func Neg(v Value) Value {
	switch v.kind {
	case KindInteger:
		return Value{kind: KindInteger, i: new(big.Int).Neg(v.i)}
	case KindRational:
		return fromRat(new(big.Rat).Neg(v.r))
	case KindReal:
		res := new(apd.Decimal)
		res.Neg(v.d)
		return fromDecimal(res)
	case KindComplex:
		return Complex(Neg(*v.re), Neg(*v.im))
	case KindFloat:
		return Float(-v.f)
	default:
		return Symbolic("-" + v.s)
	}
}

// Abs returns |v|. The modulus of a complex value needs a square root,
// so it stays symbolic unless the squared modulus is a perfect square.
func Abs(v Value) Value {
	switch v.kind {
	case KindInteger:
		return Value{kind: KindInteger, i: new(big.Int).Abs(v.i)}
	case KindRational:
		return fromRat(new(big.Rat).Abs(v.r))
	case KindReal:
		res := new(apd.Decimal)
		res.Abs(v.d)
		return fromDecimal(res)
	case KindFloat:
		return Float(math.Abs(v.f))
	case KindComplex:
		sq := Add(Mul(*v.re, *v.re), Mul(*v.im, *v.im))
		if root, ok := SqrtExact(sq); ok {
			return root
		}
		return Symbolic(fmt.Sprintf("sqrt(%s)", sq))
	default:
		return Symbolic(fmt.Sprintf("|%s|", v.s))
	}
}

// Pow returns a**b exactly where the tower allows it: integer and
// rational bases with integer exponents (negative exponents invert
// into Rational), float with float, and complex with small integer
// exponents by repeated multiplication. Everything else stays
// symbolic.
func Pow(a, b Value) Value {
	if a.kind == KindFloat && b.kind == KindFloat {
		return Float(math.Pow(a.f, b.f))
	}
	exp, ok := b.Int64()
	if !ok || exp > maxIntExp || exp < -maxIntExp {
		return symBinary(a, b, "^")
	}
	if exp == 0 {
		return One()
	}

	switch a.kind {
	case KindInteger, KindRational:
		base, _ := a.Rat()
		neg := exp < 0
		if neg {
			exp = -exp
		}
		num := new(big.Int).Exp(base.Num(), big.NewInt(exp), nil)
		den := new(big.Int).Exp(base.Denom(), big.NewInt(exp), nil)
		if neg {
			if num.Sign() == 0 {
				return symBinary(a, b, "^")
			}
			num, den = den, num
		}
		return fromRat(new(big.Rat).SetFrac(num, den))
	case KindReal:
		res := new(apd.Decimal)
		var e apd.Decimal
		e.SetInt64(exp)
		if _, err := apdCtx.Pow(res, a.d, &e); err != nil {
			return symBinary(a, b, "^")
		}
		return fromDecimal(res)
	case KindComplex:
		if exp < 0 {
			inv := Div(One(), a)
			if inv.kind == KindSymbolic {
				return symBinary(a, b, "^")
			}
			return Pow(inv, Int(-exp))
		}
		if exp > 64 {
			return symBinary(a, b, "^")
		}
		res := One()
		for i := int64(0); i < exp; i++ {
			res = Mul(res, a)
		}
		return res
	default:
		return symBinary(a, b, "^")
	}
}

// SqrtExact returns the exact square root of a nonnegative integer or
// rational value, when the root is itself rational. Rewrite rules use
// it to fold perfect squares such as sqrt(4) and sqrt(9/16).
func SqrtExact(v Value) (Value, bool) {
	r, ok := v.Rat()
	if !ok || r.Sign() < 0 {
		return Value{}, false
	}
	sn := new(big.Int).Sqrt(r.Num())
	sd := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(sn, sn).Cmp(r.Num()) != 0 {
		return Value{}, false
	}
	if new(big.Int).Mul(sd, sd).Cmp(r.Denom()) != 0 {
		return Value{}, false
	}
	return fromRat(new(big.Rat).SetFrac(sn, sd)), true
}

// symBinary renders an unevaluable operation as a Symbolic value.
func symBinary(a, b Value, op string) Value {
	return Symbolic(fmt.Sprintf("%s%s%s", a, op, b))
}
