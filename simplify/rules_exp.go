// Package simplify: logarithm and exponential anchors.
package simplify

import (
	"github.com/katalvlaran/symlath/expr"
)

// logExp resolves the exact anchor values and the safe compositions:
//
//	ln(1) → 0      ln(e)  → 1       exp(0) → 1    exp(1) → e
//	ln(exp(x)) → x
//	exp(ln(x)) → x only for a positive literal x; for general x the
//	identity needs x > 0, which is unprovable here.
func (s *Simplifier) logExp(n *expr.Shared) (*expr.Shared, bool) {
	if arg, ok := isFn(n, "ln"); ok {
		if v, lit := litNumber(arg); lit && v.IsOne() {
			return s.b.Int(0), true
		}
		if arg.Expr().Kind() == expr.NodeConstant && arg.Expr().Const() == expr.ConstE {
			return s.b.Int(1), true
		}
		if inner, isExp := isFn(arg, "exp"); isExp {
			return inner.Clone(), true
		}
	}

	if arg, ok := isFn(n, "exp"); ok {
		if v, lit := litNumber(arg); lit {
			if v.IsZero() {
				return s.b.Int(1), true
			}
			if v.IsOne() {
				return s.b.E(), true
			}
		}
		if inner, isLn := isFn(arg, "ln"); isLn {
			if v, lit := litNumber(inner); lit && v.IsPositive() {
				return inner.Clone(), true
			}
		}
	}
	return nil, false
}
