// Package simplify: the fixed-point engine.
package simplify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symlath/builder"
	"github.com/katalvlaran/symlath/expr"
)

// ErrTimeout indicates the pass budget ran out before the tree
// stopped changing. The accompanying result is the last intermediate
// form, still a valid, equivalent expression.
var ErrTimeout = errors.New("simplify: pass budget exhausted")

// DefaultMaxPasses bounds full rewrite passes. The rule set is not
// provably confluent, so an explicit bound stands in for a
// termination proof.
const DefaultMaxPasses = 16

// localRuleBudget bounds repeated rule firing on one node within a
// single pass. Rules that keep producing new redexes at the same spot
// hand the remainder to the next pass instead of spinning.
const localRuleBudget = 8

// Option configures a Simplifier.
type Option func(*Simplifier)

// WithMaxPasses overrides the pass budget. Values below 1 are
// ignored.
func WithMaxPasses(n int) Option {
	return func(s *Simplifier) {
		if n >= 1 {
			s.maxPasses = n
		}
	}
}

// WithBuilder makes the simplifier construct through an existing
// builder, so rewritten nodes intern into the caller's pool.
func WithBuilder(b *builder.Builder) Option {
	return func(s *Simplifier) { s.b = b }
}

// Simplifier rewrites expression graphs to canonical form. Not safe
// for concurrent use; it shares its builder's pool.
type Simplifier struct {
	b         *builder.Builder
	maxPasses int
}

// New returns a Simplifier with the default pass budget and, unless
// WithBuilder is given, a private builder.
func New(opts ...Option) *Simplifier {
	s := &Simplifier{maxPasses: DefaultMaxPasses}
	for _, o := range opts {
		o(s)
	}
	if s.b == nil {
		s.b = builder.New()
	}
	return s
}

// Builder returns the builder the simplifier constructs through.
func (s *Simplifier) Builder() *builder.Builder { return s.b }

// Simplify rewrites h until a full pass changes nothing, and returns
// a new reference the caller owns; h itself is not consumed. If the
// pass budget runs out first, the last intermediate form is returned
// together with ErrTimeout.
func (s *Simplifier) Simplify(h *expr.Shared) (*expr.Shared, error) {
	if h == nil {
		return nil, nil
	}
	cur := h.Clone()
	for pass := 0; pass < s.maxPasses; pass++ {
		next := s.rewritePass(cur)
		if expr.FastEq(next, cur) {
			cur.Release()
			return next, nil
		}
		cur.Release()
		cur = next
	}
	return cur, fmt.Errorf("%w: %d passes", ErrTimeout, s.maxPasses)
}

// rewritePass rebuilds the tree bottom-up once, applying every rule
// family at each node. Traversal uses an explicit frame stack: each
// frame visits its children first, then rebuilds its node from the
// rewritten children and runs the rules on the result.
func (s *Simplifier) rewritePass(root *expr.Shared) *expr.Shared {
	type frame struct {
		node *expr.Shared
		kids []*expr.Shared
		next int
	}
	var stack []frame
	var result *expr.Shared

	push := func(n *expr.Shared) {
		stack = append(stack, frame{node: n, kids: make([]*expr.Shared, 0, len(n.Expr().Args()))})
	}
	push(root)

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		args := f.node.Expr().Args()

		if f.next < len(args) {
			f.next++
			push(args[f.next-1])
			continue
		}

		rebuilt := s.rebuild(f.node, f.kids)
		for _, k := range f.kids {
			k.Release()
		}
		out := s.applyRules(rebuilt)

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			result = out
		} else {
			parent := &stack[len(stack)-1]
			parent.kids = append(parent.kids, out)
		}
	}
	return result
}

// rebuild reconstructs a node over rewritten children through the
// builder, which interns and applies construction identities. Nodes
// whose children did not change are reused, preserving sharing.
func (s *Simplifier) rebuild(n *expr.Shared, kids []*expr.Shared) *expr.Shared {
	e := n.Expr()
	if len(kids) > 0 {
		changed := false
		for i, k := range kids {
			if k != e.Args()[i] {
				changed = true
				break
			}
		}
		if !changed {
			return n.Clone()
		}
	}
	switch e.Kind() {
	case expr.NodeUnary:
		switch e.Unary() {
		case expr.UnaryNeg:
			return s.b.Negate(kids[0])
		case expr.UnaryPlus:
			return s.b.Plus(kids[0])
		default:
			return s.b.Abs(kids[0])
		}
	case expr.NodeBinary:
		switch e.Op() {
		case expr.OpAdd:
			return s.b.Add(kids[0], kids[1])
		case expr.OpSub:
			return s.b.Subtract(kids[0], kids[1])
		case expr.OpMul:
			return s.b.Multiply(kids[0], kids[1])
		case expr.OpDiv:
			return s.b.Divide(kids[0], kids[1])
		default:
			return s.b.Power(kids[0], kids[1])
		}
	case expr.NodeFunction:
		return s.b.Function(e.Name(), kids...)
	default:
		return n.Clone()
	}
}

// applyRules runs the rule families on one node until none fires or
// the local budget is spent. Consumes the argument reference and
// returns the caller-owned result.
func (s *Simplifier) applyRules(n *expr.Shared) *expr.Shared {
	for i := 0; i < localRuleBudget; i++ {
		next, fired := s.applyOnce(n)
		if !fired {
			return n
		}
		n.Release()
		n = next
	}
	return n
}

// applyOnce tries each family in order and stops at the first hit.
// Returns (replacement, true) on a hit; the argument keeps its
// reference either way.
func (s *Simplifier) applyOnce(n *expr.Shared) (*expr.Shared, bool) {
	for _, rule := range []func(*expr.Shared) (*expr.Shared, bool){
		s.foldConstants,
		s.coefficientFold,
		s.collectLikeTerms,
		s.powerLaws,
		s.distributeNegation,
		s.canonicalOrder,
		s.trigOddEven,
		s.trigInduction,
		s.trigSpecialAngle,
		s.pythagorean,
		s.trigPeriodicity,
		s.radicals,
		s.logExp,
		s.inverseTrig,
	} {
		if out, ok := rule(n); ok {
			return out, true
		}
	}
	return nil, false
}
