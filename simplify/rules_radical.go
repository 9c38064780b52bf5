// Package simplify: radical normalization.
package simplify

import (
	"math/big"

	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/number"
)

// smallPrimes drive square-factor extraction. Factors beyond this
// range stay under the radical; exactness is never at risk, only
// normal-form tightness.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// radicals normalizes square roots:
//
//	sqrt(perfect square) → exact literal   (sqrt(4) → 2, sqrt(9/16) → 3/4)
//	sqrt(a²·b)           → a·sqrt(b)       (sqrt(12) → 2·sqrt(3))
//	sqrt(a)·sqrt(b)      → sqrt(a·b)       for nonnegative literals
//
// sqrt of a negative literal stays symbolic, and nothing is ever
// approximated to a float.
func (s *Simplifier) radicals(n *expr.Shared) (*expr.Shared, bool) {
	if arg, ok := isFn(n, "sqrt"); ok {
		v, lit := litNumber(arg)
		if !lit {
			return nil, false
		}
		if root, exact := number.SqrtExact(v); exact {
			return s.b.Number(root), true
		}
		if v.IsNegative() {
			return nil, false
		}
		if iv, isInt := v.Int(); isInt {
			outside, inside := extractSquareFactors(iv)
			if outside.Cmp(big.NewInt(1)) > 0 {
				rest := s.b.Sqrt(s.b.Number(number.FromBigInt(inside)))
				defer rest.Release()
				return s.b.Multiply(s.b.Number(number.FromBigInt(outside)), rest), true
			}
		}
		return nil, false
	}

	// sqrt(a) * sqrt(b) → sqrt(a*b). Bottom-up extraction has already
	// rewritten children like sqrt(8) into 2*sqrt(2) by the time the
	// product is examined, so the merge sees through a literal
	// coefficient on either factor: c*sqrt(a) * d*sqrt(b) →
	// (c*d)*sqrt(a*b). The merged radical normalizes on the next rule
	// iteration.
	if l, r, ok := binOp(n, expr.OpMul); ok {
		cl, lv, lok := radicalFactor(l)
		cr, rv, rok := radicalFactor(r)
		if !lok || !rok {
			return nil, false
		}
		coeff := number.Mul(cl, cr)
		if coeff.Kind() == number.KindSymbolic {
			return nil, false
		}
		merged := s.b.Sqrt(s.b.Number(number.Mul(lv, rv)))
		defer merged.Release()
		return s.b.Multiply(s.b.Number(coeff), merged), true
	}
	return nil, false
}

// radicalFactor views a term as c*sqrt(v) with a literal coefficient
// and a nonnegative literal radicand: sqrt(2) → (1, 2), 2*sqrt(2) →
// (2, 2), -sqrt(3) → (-1, 3). Anything else is no match.
func radicalFactor(h *expr.Shared) (coeff, radicand number.Value, ok bool) {
	c, core := decompose(h)
	if core == nil {
		return number.Value{}, number.Value{}, false
	}
	arg, isSqrt := isFn(core, "sqrt")
	if !isSqrt {
		return number.Value{}, number.Value{}, false
	}
	v, lit := litNumber(arg)
	if !lit || v.IsNegative() {
		return number.Value{}, number.Value{}, false
	}
	return c, v, true
}

// extractSquareFactors splits n into (a, b) with n = a²·b, pulling
// out every small-prime square. n must be nonnegative.
func extractSquareFactors(n *big.Int) (outside, inside *big.Int) {
	outside = big.NewInt(1)
	inside = new(big.Int).Set(n)
	for _, p := range smallPrimes {
		pp := big.NewInt(p * p)
		bp := big.NewInt(p)
		for {
			q, m := new(big.Int).QuoRem(inside, pp, new(big.Int))
			if m.Sign() != 0 {
				break
			}
			inside = q
			outside.Mul(outside, bp)
		}
	}
	return outside, inside
}
