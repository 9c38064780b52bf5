// Package simplify implements the term-rewriting engine: repeated
// bottom-up passes over an expression graph, applying ordered rule
// families until a pass changes nothing (a fixed point) or the pass
// budget runs out.
//
// Rule families, in application order:
//
//	1. algebraic      - constant folding, coefficient flattening
//	                    (a*(b*x) → (a*b)*x), like-term collection
//	                    (a*x + b*x → (a+b)*x), power laws (x^a * x^b
//	                    → x^(a+b), (x^a)^b → x^(a*b), (-u)^k by
//	                    parity), negation distribution, canonical
//	                    operand ordering
//	2. odd/even       - sin(-x) → -sin(x), cos(-x) → cos(x),
//	   + induction      sin(π-x) → sin(x), cos(π+x) → -cos(x),
//	                    sin(π/2-x) → cos(x), and friends
//	3. special angles - exact sin/cos/tan at rational multiples of π
//	                    (sin(π/6) → 1/2, cos(π/4) → sqrt(2)/2, …),
//	                    never a float approximation
//	4. Pythagorean    - sin²x + cos²x → 1, 1 - sin²x → cos²x,
//	                    sin(x)/cos(x) → tan(x)
//	5. periodicity    - sin/cos shed additive even multiples of π,
//	                    tan sheds any integer multiple
//	6. radicals       - sqrt(4) → 2, sqrt(12) → 2*sqrt(3),
//	                    sqrt(a)*sqrt(b) → sqrt(a*b) for nonnegative
//	                    literals; sqrt(2) stays sqrt(2)
//
// Rules fire only when unconditionally valid or when the needed
// domain fact is literal: |x| does not become x, exp(ln(x)) collapses
// only for a positive literal x.
//
// Simplification is idempotent: Simplify(Simplify(e)) equals
// Simplify(e). When the pass budget is exhausted while the tree is
// still changing, Simplify returns the last stable intermediate form
// together with ErrTimeout; retry with WithMaxPasses or accept the
// intermediate.
//
// All traversal is iterative over explicit stacks; deep trees cannot
// overflow the goroutine stack.
//
// Errors:
//
//	ErrTimeout - pass budget exhausted before a fixed point.
package simplify
