// Package simplify: trigonometric rule families.
package simplify

import (
	"math/big"

	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/number"
)

// piFraction recognizes an exact rational multiple of π and returns
// the multiplier: π → 1, π/6 → 1/6, 2*π → 2, -π → -1, the literal
// 0 → 0. Anything else is no match.
func piFraction(h *expr.Shared) (*big.Rat, bool) {
	e := h.Expr()
	switch e.Kind() {
	case expr.NodeConstant:
		if e.Const() == expr.ConstPi {
			return big.NewRat(1, 1), true
		}
	case expr.NodeNumber:
		if e.Number().IsZero() {
			return new(big.Rat), true
		}
	case expr.NodeUnary:
		if e.Unary() == expr.UnaryNeg {
			if k, ok := piFraction(e.Operand()); ok {
				return new(big.Rat).Neg(k), true
			}
		}
	case expr.NodeBinary:
		switch e.Op() {
		case expr.OpDiv:
			k, ok := piFraction(e.Left())
			if !ok {
				return nil, false
			}
			d, lit := litNumber(e.Right())
			if !lit {
				return nil, false
			}
			dr, isRat := d.Rat()
			if !isRat || dr.Sign() == 0 {
				return nil, false
			}
			return new(big.Rat).Quo(k, dr), true
		case expr.OpMul:
			if k, ok := piFraction(e.Left()); ok {
				if c, lit := litNumber(e.Right()); lit {
					if cr, isRat := c.Rat(); isRat {
						return new(big.Rat).Mul(k, cr), true
					}
				}
				return nil, false
			}
			if k, ok := piFraction(e.Right()); ok {
				if c, lit := litNumber(e.Left()); lit {
					if cr, isRat := c.Rat(); isRat {
						return new(big.Rat).Mul(k, cr), true
					}
				}
			}
		}
	}
	return nil, false
}

// trigOddEven applies parity: sin and tan are odd, cos is even. The
// argument may be an explicit negation or a negative literal.
func (s *Simplifier) trigOddEven(n *expr.Shared) (*expr.Shared, bool) {
	for _, name := range []string{"sin", "cos", "tan"} {
		arg, ok := isFn(n, name)
		if !ok {
			continue
		}
		inner, negated := negOperand(arg)
		if !negated {
			if v, lit := litNumber(arg); lit && v.IsNegative() {
				inner = s.b.Number(number.Neg(v))
				defer inner.Release()
				negated = true
			}
		}
		if !negated {
			return nil, false
		}
		pulled := s.b.Function(name, inner)
		defer pulled.Release()
		if name == "cos" {
			return pulled.Clone(), true
		}
		return s.b.Negate(pulled), true
	}
	return nil, false
}

// halfPi and onePi are the induction-formula offsets.
var (
	onePi  = big.NewRat(1, 1)
	halfPi = big.NewRat(1, 2)
)

// trigInduction applies the shift identities with quadrant-correct
// signs:
//
//	sin(π-x) → sin(x)      sin(π+x) → -sin(x)   sin(x-π) → -sin(x)
//	cos(π±x) → -cos(x)                          cos(x-π) → -cos(x)
//	sin(π/2±x) → cos(x)    cos(π/2-x) → sin(x)  cos(π/2+x) → -sin(x)
//	tan(π+x) → tan(x)      tan(π-x) → -tan(x)   tan(x-π) → tan(x)
//	tan(π/2-x) → 1/tan(x)  tan(π/2+x) → -1/tan(x)
func (s *Simplifier) trigInduction(n *expr.Shared) (*expr.Shared, bool) {
	for _, name := range []string{"sin", "cos", "tan"} {
		arg, ok := isFn(n, name)
		if !ok {
			continue
		}
		shift, x, minusX, ok := matchShift(arg)
		if !ok {
			return nil, false
		}

		fx := s.b.Function(name, x)
		defer fx.Release()

		switch {
		case shift.Cmp(onePi) == 0:
			switch name {
			case "sin":
				if minusX {
					return fx.Clone(), true // sin(π-x) = sin x
				}
				return s.b.Negate(fx), true // sin(π+x), sin(x-π)
			case "cos":
				return s.b.Negate(fx), true
			default:
				if minusX {
					return s.b.Negate(fx), true // tan(π-x) = -tan x
				}
				return fx.Clone(), true
			}
		case shift.Cmp(halfPi) == 0:
			co := coFunction(name)
			cofx := s.b.Function(co, x)
			defer cofx.Release()
			switch name {
			case "sin":
				return cofx.Clone(), true // sin(π/2±x) = cos x
			case "cos":
				if minusX {
					return cofx.Clone(), true // cos(π/2-x) = sin x
				}
				return s.b.Negate(cofx), true // cos(π/2+x) = -sin x
			default:
				inv := s.b.Divide(s.b.Int(1), cofx)
				defer inv.Release()
				if minusX {
					return inv.Clone(), true // tan(π/2-x) = 1/tan x
				}
				return s.b.Negate(inv), true
			}
		}
		return nil, false
	}
	return nil, false
}

// coFunction maps sin→cos, cos→sin, tan→tan.
func coFunction(name string) string {
	switch name {
	case "sin":
		return "cos"
	case "cos":
		return "sin"
	default:
		return "tan"
	}
}

// matchShift decomposes an argument of the form π+x, π-x, x+π, x-π,
// π/2+x, π/2-x into (shift multiple of π, x, whether x is negated).
// sin(x-π) reports shift 1 with minusX=false: x-π ≡ x+π modulo 2π.
func matchShift(arg *expr.Shared) (shift *big.Rat, x *expr.Shared, minusX bool, ok bool) {
	if l, r, isAdd := binOp(arg, expr.OpAdd); isAdd {
		if k, isPi := piFraction(l); isPi && isShift(k) {
			return k, r, false, true
		}
		if k, isPi := piFraction(r); isPi && isShift(k) {
			return k, l, false, true
		}
	}
	if l, r, isSub := binOp(arg, expr.OpSub); isSub {
		if k, isPi := piFraction(l); isPi && isShift(k) {
			return k, r, true, true // π - x
		}
		if k, isPi := piFraction(r); isPi && k.Cmp(onePi) == 0 {
			return k, l, false, true // x - π
		}
	}
	return nil, nil, false, false
}

// isShift reports whether k is one of the handled offsets, π or π/2.
func isShift(k *big.Rat) bool {
	return k.Cmp(onePi) == 0 || k.Cmp(halfPi) == 0
}

// trigSpecialAngle resolves sin/cos/tan at exact rational multiples
// of π into exact literals or radicals: sin(π/6) → 1/2, cos(π/4) →
// sqrt(2)/2, tan(π/3) → sqrt(3). tan at odd multiples of π/2 never
// fires. Reduction is quadrant-aware, so any rational multiple whose
// reduced form is in the table resolves.
func (s *Simplifier) trigSpecialAngle(n *expr.Shared) (*expr.Shared, bool) {
	for _, name := range []string{"sin", "cos", "tan"} {
		arg, ok := isFn(n, name)
		if !ok {
			continue
		}
		k, isPi := piFraction(arg)
		if !isPi {
			return nil, false
		}
		switch name {
		case "sin":
			return s.sinPi(k)
		case "cos":
			return s.sinPi(new(big.Rat).Add(halfPi, new(big.Rat).Neg(k)))
		default:
			return s.tanPi(k)
		}
	}
	return nil, false
}

// sinPi builds the exact value of sin(kπ), reducing k into [0, 1/2]
// by periodicity and reflection first. cos goes through here as
// sin(π/2 - kπ).
func (s *Simplifier) sinPi(k *big.Rat) (*expr.Shared, bool) {
	k = ratMod(k, 2) // sin has period 2π
	neg := false
	if k.Cmp(onePi) > 0 { // sin(kπ) = -sin((k-1)π) on (1,2)
		k = new(big.Rat).Sub(k, onePi)
		neg = true
	}
	if k.Cmp(halfPi) > 0 { // sin(kπ) = sin((1-k)π) on (1/2,1)
		k = new(big.Rat).Sub(onePi, k)
	}

	v, ok := s.sinTable(k)
	if !ok {
		return nil, false
	}
	if neg {
		defer v.Release()
		return s.b.Negate(v), true
	}
	return v, true
}

// sinTable holds the base quadrant: k in [0, 1/2].
func (s *Simplifier) sinTable(k *big.Rat) (*expr.Shared, bool) {
	switch {
	case k.Sign() == 0:
		return s.b.Int(0), true
	case k.Cmp(big.NewRat(1, 6)) == 0:
		return s.b.Rational(1, 2), true
	case k.Cmp(big.NewRat(1, 4)) == 0:
		return s.halfSqrt(2), true
	case k.Cmp(big.NewRat(1, 3)) == 0:
		return s.halfSqrt(3), true
	case k.Cmp(halfPi) == 0:
		return s.b.Int(1), true
	default:
		return nil, false
	}
}

// tanPi builds the exact value of tan(kπ); k reduces modulo 1. Odd
// multiples of π/2 are outside tan's domain and never fire.
func (s *Simplifier) tanPi(k *big.Rat) (*expr.Shared, bool) {
	k = ratMod(k, 1) // tan has period π
	if k.Cmp(halfPi) == 0 {
		return nil, false
	}
	neg := false
	if k.Cmp(halfPi) > 0 { // tan(kπ) = -tan((1-k)π) on (1/2,1)
		k = new(big.Rat).Sub(onePi, k)
		neg = true
	}

	var v *expr.Shared
	switch {
	case k.Sign() == 0:
		v = s.b.Int(0)
	case k.Cmp(big.NewRat(1, 6)) == 0:
		v = s.thirdSqrt3()
	case k.Cmp(big.NewRat(1, 4)) == 0:
		v = s.b.Int(1)
	case k.Cmp(big.NewRat(1, 3)) == 0:
		v = s.b.Sqrt(s.b.Int(3))
	default:
		return nil, false
	}
	if neg {
		defer v.Release()
		return s.b.Negate(v), true
	}
	return v, true
}

// halfSqrt builds sqrt(n)/2.
func (s *Simplifier) halfSqrt(n int64) *expr.Shared {
	root := s.b.Sqrt(s.b.Int(n))
	defer root.Release()
	return s.b.Divide(root, s.b.Int(2))
}

// thirdSqrt3 builds sqrt(3)/3, the exact tan(π/6).
func (s *Simplifier) thirdSqrt3() *expr.Shared {
	root := s.b.Sqrt(s.b.Int(3))
	defer root.Release()
	return s.b.Divide(root, s.b.Int(3))
}

// ratMod reduces k into [0, m) for a positive integer modulus.
func ratMod(k *big.Rat, m int64) *big.Rat {
	mm := big.NewRat(m, 1)
	out := new(big.Rat).Set(k)
	// floor(k/m) steps; exact arithmetic, no float round-trip.
	q := new(big.Rat).Quo(out, mm)
	fl := new(big.Int).Quo(q.Num(), q.Denom())
	if q.Sign() < 0 && new(big.Int).Mul(fl, q.Denom()).Cmp(q.Num()) != 0 {
		fl.Sub(fl, big.NewInt(1))
	}
	out.Sub(out, new(big.Rat).Mul(new(big.Rat).SetInt(fl), mm))
	return out
}

// matchSquaredTrig matches fn(u)^2 for a literal exponent 2 and
// returns the inner argument.
func matchSquaredTrig(h *expr.Shared, fn string) (*expr.Shared, bool) {
	base, exp, ok := binOp(h, expr.OpPow)
	if !ok {
		return nil, false
	}
	if v, lit := litNumber(exp); !lit || !number.Equal(v, number.Two()) {
		return nil, false
	}
	return isFn(base, fn)
}

// pythagorean folds the Pythagorean identity and the quotient
// identities:
//
//	sin²u + cos²u → 1
//	1 - sin²u → cos²u        1 - cos²u → sin²u
//	sin(u)/cos(u) → tan(u)   cos(u)/sin(u) → 1/tan(u)
func (s *Simplifier) pythagorean(n *expr.Shared) (*expr.Shared, bool) {
	if l, r, ok := binOp(n, expr.OpAdd); ok {
		if su, sok := matchSquaredTrig(l, "sin"); sok {
			if cu, cok := matchSquaredTrig(r, "cos"); cok && expr.Equal(su, cu) {
				return s.b.Int(1), true
			}
		}
		if cu, cok := matchSquaredTrig(l, "cos"); cok {
			if su, sok := matchSquaredTrig(r, "sin"); sok && expr.Equal(su, cu) {
				return s.b.Int(1), true
			}
		}
	}

	if l, r, ok := binOp(n, expr.OpSub); ok {
		if v, lit := litNumber(l); lit && v.IsOne() {
			if u, sok := matchSquaredTrig(r, "sin"); sok {
				cos := s.b.Cos(u)
				defer cos.Release()
				return s.b.Power(cos, s.b.Int(2)), true
			}
			if u, cok := matchSquaredTrig(r, "cos"); cok {
				sin := s.b.Sin(u)
				defer sin.Release()
				return s.b.Power(sin, s.b.Int(2)), true
			}
		}
	}

	if l, r, ok := binOp(n, expr.OpDiv); ok {
		if su, sok := isFn(l, "sin"); sok {
			if cu, cok := isFn(r, "cos"); cok && expr.Equal(su, cu) {
				return s.b.Tan(su), true
			}
		}
		if cu, cok := isFn(l, "cos"); cok {
			if su, sok := isFn(r, "sin"); sok && expr.Equal(su, cu) {
				tan := s.b.Tan(su)
				defer tan.Release()
				return s.b.Divide(s.b.Int(1), tan), true
			}
		}
	}
	return nil, false
}

// trigPeriodicity sheds whole periods from shifted arguments: sin and
// cos drop additive even multiples of π, tan drops any integer
// multiple. Odd multiples for sin/cos reduce to a single π and fall
// to the induction family next round.
func (s *Simplifier) trigPeriodicity(n *expr.Shared) (*expr.Shared, bool) {
	for _, name := range []string{"sin", "cos", "tan"} {
		arg, ok := isFn(n, name)
		if !ok {
			continue
		}
		x, k, subtracted, found := additivePiTerm(arg)
		if !found || !k.IsInt() {
			return nil, false
		}
		kk := new(big.Int).Set(k.Num())

		if name == "tan" || kk.Bit(0) == 0 {
			// Whole number of periods: drop the term entirely.
			if kk.Cmp(big.NewInt(0)) == 0 {
				return nil, false // 0π never appears, but be safe
			}
			return s.b.Function(name, x), true
		}

		// Odd multiple of π for sin/cos: keep exactly one π.
		if kk.CmpAbs(big.NewInt(1)) == 0 {
			return nil, false // ±π is induction's case, not ours
		}
		pi := s.b.Pi()
		defer pi.Release()
		var shifted *expr.Shared
		if subtracted {
			shifted = s.b.Subtract(x, pi)
		} else {
			shifted = s.b.Add(x, pi)
		}
		defer shifted.Release()
		return s.b.Function(name, shifted), true
	}
	return nil, false
}

// additivePiTerm matches x + kπ, kπ + x, or x - kπ with integer-free
// remainder x, returning the remainder, k, and whether the π term was
// subtracted.
func additivePiTerm(arg *expr.Shared) (x *expr.Shared, k *big.Rat, subtracted, ok bool) {
	if l, r, isAdd := binOp(arg, expr.OpAdd); isAdd {
		if kk, isPi := piFraction(r); isPi {
			return l, kk, false, true
		}
		if kk, isPi := piFraction(l); isPi {
			return r, kk, false, true
		}
	}
	if l, r, isSub := binOp(arg, expr.OpSub); isSub {
		if kk, isPi := piFraction(r); isPi {
			return l, kk, true, true
		}
	}
	return nil, nil, false, false
}

// inverseTrig pulls negation out of the odd inverses and resolves the
// exact anchor values:
//
//	asin(0) → 0    asin(1) → π/2    acos(0) → π/2
//	acos(1) → 0    acos(-1) → π     atan(0) → 0    atan(1) → π/4
func (s *Simplifier) inverseTrig(n *expr.Shared) (*expr.Shared, bool) {
	for _, name := range []string{"asin", "atan"} {
		if arg, ok := isFn(n, name); ok {
			if inner, negated := negOperand(arg); negated {
				f := s.b.Function(name, inner)
				defer f.Release()
				return s.b.Negate(f), true
			}
			if v, lit := litNumber(arg); lit && v.IsNegative() {
				pos := s.b.Number(number.Neg(v))
				defer pos.Release()
				f := s.b.Function(name, pos)
				defer f.Release()
				return s.b.Negate(f), true
			}
		}
	}

	if arg, ok := isFn(n, "asin"); ok {
		if v, lit := litNumber(arg); lit {
			if v.IsZero() {
				return s.b.Int(0), true
			}
			if v.IsOne() {
				return s.piOver(2), true
			}
		}
	}
	if arg, ok := isFn(n, "acos"); ok {
		if v, lit := litNumber(arg); lit {
			if v.IsZero() {
				return s.piOver(2), true
			}
			if v.IsOne() {
				return s.b.Int(0), true
			}
			if number.Equal(v, number.NegOne()) {
				return s.b.Pi(), true
			}
		}
	}
	if arg, ok := isFn(n, "atan"); ok {
		if v, lit := litNumber(arg); lit {
			if v.IsZero() {
				return s.b.Int(0), true
			}
			if v.IsOne() {
				return s.piOver(4), true
			}
		}
	}
	return nil, false
}

// piOver builds π/n.
func (s *Simplifier) piOver(n int64) *expr.Shared {
	pi := s.b.Pi()
	defer pi.Release()
	return s.b.Divide(pi, s.b.Int(n))
}
