// Package simplify: the algebraic rule family and shared matchers.
package simplify

import (
	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/number"
)

// litNumber returns the literal value of a Number node.
func litNumber(h *expr.Shared) (number.Value, bool) {
	e := h.Expr()
	if e.Kind() == expr.NodeNumber {
		return e.Number(), true
	}
	return number.Value{}, false
}

// isFn matches a single-argument function application by name and
// returns its argument (borrowed, not retained).
func isFn(h *expr.Shared, name string) (*expr.Shared, bool) {
	e := h.Expr()
	if e.Kind() == expr.NodeFunction && e.Name() == name && len(e.Args()) == 1 {
		return e.Args()[0], true
	}
	return nil, false
}

// binOp matches a binary node with the given operator.
func binOp(h *expr.Shared, op expr.Op) (left, right *expr.Shared, ok bool) {
	e := h.Expr()
	if e.Kind() == expr.NodeBinary && e.Op() == op {
		return e.Left(), e.Right(), true
	}
	return nil, nil, false
}

// negOperand matches unary negation and returns its operand.
func negOperand(h *expr.Shared) (*expr.Shared, bool) {
	e := h.Expr()
	if e.Kind() == expr.NodeUnary && e.Unary() == expr.UnaryNeg {
		return e.Operand(), true
	}
	return nil, false
}

// foldConstants evaluates a binary node whose children are both
// literals, when the tower can do so exactly. A symbolic outcome
// (zero divisor, float/exact mix, oversized exponent) leaves the node
// alone: folding must never erase structure the evaluator or the
// caller still wants to see.
func (s *Simplifier) foldConstants(n *expr.Shared) (*expr.Shared, bool) {
	e := n.Expr()
	if e.Kind() != expr.NodeBinary {
		return nil, false
	}
	l, lok := litNumber(e.Left())
	r, rok := litNumber(e.Right())
	if !lok || !rok {
		return nil, false
	}

	var v number.Value
	switch e.Op() {
	case expr.OpAdd:
		v = number.Add(l, r)
	case expr.OpSub:
		v = number.Sub(l, r)
	case expr.OpMul:
		v = number.Mul(l, r)
	case expr.OpDiv:
		if r.IsZero() {
			return nil, false
		}
		v = number.Div(l, r)
	default: // OpPow
		v = number.Pow(l, r)
	}
	if v.Kind() == number.KindSymbolic {
		return nil, false
	}
	return s.b.Number(v), true
}

// decompose splits a term into a literal coefficient and a shared
// core: 3*x → (3, x), -x → (-1, x), x → (1, x). Pure literals return
// a nil core; constant folding owns those. The core is borrowed.
func decompose(h *expr.Shared) (number.Value, *expr.Shared) {
	if _, ok := litNumber(h); ok {
		return number.Value{}, nil
	}
	if l, r, ok := binOp(h, expr.OpMul); ok {
		if c, isLit := litNumber(l); isLit {
			return c, r
		}
		if c, isLit := litNumber(r); isLit {
			return c, l
		}
	}
	if op, ok := negOperand(h); ok {
		if _, isLit := litNumber(op); !isLit {
			return number.NegOne(), op
		}
	}
	return number.One(), h
}

// collectLikeTerms folds a*x ± b*x into (a±b)*x whenever both sides
// share a structurally equal core. Radical collection (2*sqrt(3) +
// sqrt(3) → 3*sqrt(3)) is the same rule; the core just happens to be
// a sqrt application.
func (s *Simplifier) collectLikeTerms(n *expr.Shared) (*expr.Shared, bool) {
	e := n.Expr()
	if e.Kind() != expr.NodeBinary {
		return nil, false
	}

	var combine func(a, b number.Value) number.Value
	switch e.Op() {
	case expr.OpAdd:
		combine = number.Add
	case expr.OpSub:
		combine = number.Sub
	default:
		return nil, false
	}

	cl, coreL := decompose(e.Left())
	cr, coreR := decompose(e.Right())
	if coreL == nil || coreR == nil || !expr.Equal(coreL, coreR) {
		return nil, false
	}
	coeff := combine(cl, cr)
	if coeff.Kind() == number.KindSymbolic {
		return nil, false
	}
	return s.b.Multiply(s.b.Number(coeff), coreL), true
}

// coefficientFold flattens nested literal coefficients:
// a*(b*x) → (a*b)*x and a*(-x) → (-a)*x. Together with like-term
// collection this keeps coefficients in one place at the front.
func (s *Simplifier) coefficientFold(n *expr.Shared) (*expr.Shared, bool) {
	l, r, ok := binOp(n, expr.OpMul)
	if !ok {
		return nil, false
	}
	a, alit := litNumber(l)
	rest := r
	if !alit {
		a, alit = litNumber(r)
		rest = l
	}
	if !alit {
		return nil, false
	}
	c, core := decompose(rest)
	if core == nil || core == rest {
		return nil, false // no nested coefficient to pull out
	}
	v := number.Mul(a, c)
	if v.Kind() == number.KindSymbolic {
		return nil, false
	}
	return s.b.Multiply(s.b.Number(v), core), true
}

// baseExp views a term as base^exponent: x^a → (x, a), x → (x, nil).
// Both returns are borrowed.
func baseExp(h *expr.Shared) (base, exp *expr.Shared) {
	if b, e, ok := binOp(h, expr.OpPow); ok {
		return b, e
	}
	return h, nil
}

// powerLaws merges exponents over a common base:
//
//	x^a * x^b → x^(a+b)    x * x   → x^2
//	x^a / x^b → x^(a-b)    (x^a)^b → x^(a*b) for integer literal b
//
// Literal exponents combine through the tower immediately; symbolic
// ones become an Add/Sub node the next pass folds.
func (s *Simplifier) powerLaws(n *expr.Shared) (*expr.Shared, bool) {
	e := n.Expr()
	if e.Kind() != expr.NodeBinary {
		return nil, false
	}

	switch e.Op() {
	case expr.OpMul, expr.OpDiv:
		bl, el := baseExp(e.Left())
		br, er := baseExp(e.Right())
		if el == nil && er == nil && e.Op() == expr.OpDiv {
			return nil, false // plain x/y has no exponents to merge
		}
		if _, lit := litNumber(bl); lit {
			return nil, false // literal bases belong to constant folding
		}
		if !expr.Equal(bl, br) {
			return nil, false
		}
		exp := s.combineExponents(el, er, e.Op() == expr.OpDiv)
		defer exp.Release()
		return s.b.Power(bl, exp), true

	case expr.OpPow:
		// (-u)^k for an integer literal k loses or keeps the sign by
		// parity: (-u)^2 → u^2, (-u)^3 → -(u^3).
		if operand, negd := negOperand(e.Left()); negd {
			if v, lit := litNumber(e.Right()); lit && v.IsInteger() {
				p := s.b.Power(operand, e.Right())
				if v.IsEven() {
					return p, true
				}
				defer p.Release()
				return s.b.Negate(p), true
			}
		}

		inner, iexp, ok := binOp(e.Left(), expr.OpPow)
		if !ok {
			return nil, false
		}
		// (x^a)^b needs b integral: ((x^2)^(1/2) is |x|, not x.
		outer, lit := litNumber(e.Right())
		if !lit || !outer.IsInteger() {
			return nil, false
		}
		var merged *expr.Shared
		if iv, ok := litNumber(iexp); ok {
			merged = s.b.Number(number.Mul(iv, outer))
		} else {
			merged = s.b.Multiply(iexp, e.Right())
		}
		defer merged.Release()
		return s.b.Power(inner, merged), true

	default:
		return nil, false
	}
}

// combineExponents returns el+er (or el-er for division), treating a
// missing exponent as 1. The caller owns the returned reference.
func (s *Simplifier) combineExponents(el, er *expr.Shared, subtract bool) *expr.Shared {
	lv, lok := number.One(), el == nil
	rv, rok := number.One(), er == nil
	if el != nil {
		lv, lok = litNumber(el)
	}
	if er != nil {
		rv, rok = litNumber(er)
	}
	if lok && rok {
		if subtract {
			return s.b.Number(number.Sub(lv, rv))
		}
		return s.b.Number(number.Add(lv, rv))
	}

	one := s.b.Int(1)
	defer one.Release()
	if el == nil {
		el = one
	}
	if er == nil {
		er = one
	}
	if subtract {
		return s.b.Subtract(el, er)
	}
	return s.b.Add(el, er)
}

// distributeNegation pushes unary minus through sums:
// -(a+b) → -a - b and -(a-b) → b - a.
func (s *Simplifier) distributeNegation(n *expr.Shared) (*expr.Shared, bool) {
	op, ok := negOperand(n)
	if !ok {
		return nil, false
	}
	if a, b, isAdd := binOp(op, expr.OpAdd); isAdd {
		na := s.b.Negate(a)
		defer na.Release()
		return s.b.Subtract(na, b), true
	}
	if a, b, isSub := binOp(op, expr.OpSub); isSub {
		return s.b.Subtract(b, a), true
	}
	return nil, false
}

// termRank orders node kinds for canonical operand ordering:
// literals, then constants, then variables, then everything
// structured.
func termRank(h *expr.Shared) int {
	switch h.Expr().Kind() {
	case expr.NodeNumber:
		return 0
	case expr.NodeConstant:
		return 1
	case expr.NodeVariable:
		return 2
	case expr.NodeFunction:
		return 3
	case expr.NodeUnary:
		return 4
	default:
		return 5
	}
}

// canonicalOrder swaps the operands of a commutative node when they
// are strictly out of order (rank first, rendered form as the tie
// break). Strictness matters: a non-strict comparison would swap
// forever.
func (s *Simplifier) canonicalOrder(n *expr.Shared) (*expr.Shared, bool) {
	e := n.Expr()
	if e.Kind() != expr.NodeBinary {
		return nil, false
	}
	if e.Op() != expr.OpAdd && e.Op() != expr.OpMul {
		return nil, false
	}
	l, r := e.Left(), e.Right()
	rl, rr := termRank(l), termRank(r)
	if rl < rr || (rl == rr && l.String() <= r.String()) {
		return nil, false
	}
	if e.Op() == expr.OpAdd {
		return s.b.Add(r, l), true
	}
	return s.b.Multiply(r, l), true
}
