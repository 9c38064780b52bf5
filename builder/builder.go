// Package builder: the fluent construction API.
//
// Every constructor interns its result, so building the same
// expression twice yields the same node, and applies single-node
// identities on the spot:
//
//	x + 0, 0 + x   → x          x * 1, 1 * x  → x
//	x * 0, 0 * x   → 0          x - x         → 0
//	x + x          → 2 * x      x / 1         → x
//	x / x          → 1          x ^ 0         → 1
//	x ^ 1          → x          1 ^ x         → 1
//	-(-x)          → x          +x            → x
//
// These are pointer-cheap: an identity hit returns an existing handle
// with its reference count bumped and allocates nothing.
package builder

import (
	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/number"
)

// Builder constructs interned expression nodes over a Pool.
type Builder struct {
	pool *Pool

	// Pinned literals keep the hottest nodes pooled across cleanups
	// and make identity checks pointer comparisons where possible.
	zero   *expr.Shared
	one    *expr.Shared
	negOne *expr.Shared
	two    *expr.Shared
}

// New returns a Builder over its own pool, configured by opts, with
// the common literals and variable names preloaded.
func New(opts ...PoolOption) *Builder {
	return NewWithPool(NewPool(opts...))
}

// NewWithPool returns a Builder sharing an existing pool, so separate
// front-ends (and the simplifier) intern into one node space.
func NewWithPool(p *Pool) *Builder {
	b := &Builder{pool: p}
	b.zero = b.Number(number.Zero())
	b.one = b.Number(number.One())
	b.negOne = b.Number(number.NegOne())
	b.two = b.Number(number.Two())
	for _, n := range []int64{-2, 10} {
		b.Number(number.Int(n)).Release()
	}
	for _, v := range []string{"x", "y", "z", "t", "n"} {
		b.Variable(v).Release()
	}
	return b
}

// Pool returns the underlying pool.
func (b *Builder) Pool() *Pool { return b.pool }

// Variable returns an interned variable node.
func (b *Builder) Variable(name string) *expr.Shared {
	return b.pool.Intern(expr.NewVariable(name))
}

// Number returns an interned literal node.
func (b *Builder) Number(v number.Value) *expr.Shared {
	return b.pool.Intern(expr.NewNumber(v))
}

// Int returns an interned integer literal.
func (b *Builder) Int(n int64) *expr.Shared { return b.Number(number.Int(n)) }

// Rational returns an interned rational literal in canonical form.
func (b *Builder) Rational(num, den int64) *expr.Shared {
	return b.Number(number.Rational(num, den))
}

// Float returns an interned float literal.
func (b *Builder) Float(f float64) *expr.Shared { return b.Number(number.Float(f)) }

// Constant returns an interned constant node.
func (b *Builder) Constant(c expr.Constant) *expr.Shared {
	return b.pool.Intern(expr.NewConstant(c))
}

// Pi returns the constant π.
func (b *Builder) Pi() *expr.Shared { return b.Constant(expr.ConstPi) }

// E returns Euler's number as a constant node.
func (b *Builder) E() *expr.Shared { return b.Constant(expr.ConstE) }

// I returns the imaginary unit as a constant node.
func (b *Builder) I() *expr.Shared { return b.Constant(expr.ConstI) }

// Add returns a + b, after x+0 → x, 0+x → x, and x+x → 2*x.
func (b *Builder) Add(x, y *expr.Shared) *expr.Shared {
	if x == nil || y == nil {
		return nil
	}
	if isZero(x) {
		return y.Clone()
	}
	if isZero(y) {
		return x.Clone()
	}
	if expr.Equal(x, y) {
		return b.Multiply(b.two, x)
	}
	return b.pool.Intern(expr.NewBinary(expr.OpAdd, x, y))
}

// Subtract returns a - b, after x-0 → x, x-x → 0, and 0-x → -x.
func (b *Builder) Subtract(x, y *expr.Shared) *expr.Shared {
	if x == nil || y == nil {
		return nil
	}
	if isZero(y) {
		return x.Clone()
	}
	if expr.Equal(x, y) {
		return b.zero.Clone()
	}
	if isZero(x) {
		return b.Negate(y)
	}
	return b.pool.Intern(expr.NewBinary(expr.OpSub, x, y))
}

// Multiply returns a * b, after x*0 → 0, x*1 → x, and (±1)
// absorption.
func (b *Builder) Multiply(x, y *expr.Shared) *expr.Shared {
	if x == nil || y == nil {
		return nil
	}
	if isZero(x) || isZero(y) {
		return b.zero.Clone()
	}
	if isOne(x) {
		return y.Clone()
	}
	if isOne(y) {
		return x.Clone()
	}
	if isNegOne(x) {
		return b.Negate(y)
	}
	if isNegOne(y) {
		return b.Negate(x)
	}
	return b.pool.Intern(expr.NewBinary(expr.OpMul, x, y))
}

// Divide returns a / b, after x/1 → x and x/x → 1. A literal zero
// numerator stays a node (0/0 must not collapse to 1), and a zero
// denominator stays a node for the evaluator or the rewriter to
// resolve.
func (b *Builder) Divide(x, y *expr.Shared) *expr.Shared {
	if x == nil || y == nil {
		return nil
	}
	if isOne(y) {
		return x.Clone()
	}
	if !isZero(x) && expr.Equal(x, y) {
		return b.one.Clone()
	}
	return b.pool.Intern(expr.NewBinary(expr.OpDiv, x, y))
}

// Power returns a ^ b, after x^0 → 1, x^1 → x, and 1^x → 1.
func (b *Builder) Power(x, y *expr.Shared) *expr.Shared {
	if x == nil || y == nil {
		return nil
	}
	if isZero(y) || isOne(x) {
		return b.one.Clone()
	}
	if isOne(y) {
		return x.Clone()
	}
	return b.pool.Intern(expr.NewBinary(expr.OpPow, x, y))
}

// Negate returns -a, after -(-x) → x and folding literal negation.
func (b *Builder) Negate(x *expr.Shared) *expr.Shared {
	if x == nil {
		return nil
	}
	e := x.Expr()
	if e.Kind() == expr.NodeUnary && e.Unary() == expr.UnaryNeg {
		return e.Operand().Clone()
	}
	if e.Kind() == expr.NodeNumber {
		return b.Number(number.Neg(e.Number()))
	}
	return b.pool.Intern(expr.NewUnary(expr.UnaryNeg, x))
}

// Plus returns a itself: unary plus is the identity.
func (b *Builder) Plus(x *expr.Shared) *expr.Shared {
	if x == nil {
		return nil
	}
	return x.Clone()
}

// Abs returns |a|, folding exact real literals and collapsing abs of
// abs.
func (b *Builder) Abs(x *expr.Shared) *expr.Shared {
	if x == nil {
		return nil
	}
	e := x.Expr()
	if e.Kind() == expr.NodeUnary && e.Unary() == expr.UnaryAbs {
		return x.Clone()
	}
	if e.Kind() == expr.NodeNumber && e.Number().IsReal() {
		return b.Number(number.Abs(e.Number()))
	}
	return b.pool.Intern(expr.NewUnary(expr.UnaryAbs, x))
}

// Sqrt returns sqrt(a) as a function node. Resolution of perfect
// squares is the rewriter's job, keeping construction O(1).
func (b *Builder) Sqrt(x *expr.Shared) *expr.Shared { return b.Function("sqrt", x) }

// Sin returns sin(a).
func (b *Builder) Sin(x *expr.Shared) *expr.Shared { return b.Function("sin", x) }

// Cos returns cos(a).
func (b *Builder) Cos(x *expr.Shared) *expr.Shared { return b.Function("cos", x) }

// Tan returns tan(a).
func (b *Builder) Tan(x *expr.Shared) *expr.Shared { return b.Function("tan", x) }

// Ln returns ln(a).
func (b *Builder) Ln(x *expr.Shared) *expr.Shared { return b.Function("ln", x) }

// Exp returns exp(a).
func (b *Builder) Exp(x *expr.Shared) *expr.Shared { return b.Function("exp", x) }

// Function returns an interned application of name to args.
func (b *Builder) Function(name string, args ...*expr.Shared) *expr.Shared {
	for _, a := range args {
		if a == nil {
			return nil
		}
	}
	return b.pool.Intern(expr.NewFunction(name, args...))
}

// MakeMut forwards to the pool's counted copy-on-write.
func (b *Builder) MakeMut(h *expr.Shared) *expr.Shared { return b.pool.MakeMut(h) }

func isZero(h *expr.Shared) bool {
	e := h.Expr()
	return e.Kind() == expr.NodeNumber && e.Number().IsZero()
}

func isOne(h *expr.Shared) bool {
	e := h.Expr()
	return e.Kind() == expr.NodeNumber && e.Number().IsOne()
}

func isNegOne(h *expr.Shared) bool {
	e := h.Expr()
	return e.Kind() == expr.NodeNumber && number.Equal(e.Number(), number.NegOne())
}
