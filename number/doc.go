// Package number implements the exact numeric tower used by the
// expression core: arbitrary-precision integers, rationals, decimals,
// complex numbers, machine floats, and symbolic placeholders for
// values that cannot be computed (such as quotients with a zero
// denominator).
//
// What you get:
//
//	• Value         - immutable variant over the six numeric kinds
//	• Promote       - total promotion to the least common exact kind
//	• Add/Sub/…     - arithmetic defined over every pair of kinds
//	• Divide        - checked division returning ErrDivisionByZero
//	• predicates    - IsZero, IsOne, IsExact, IsInteger, IsEven, …
//	• conversions   - ToExact, Approximate, Int, Rat, Float64
//
// Promotion order:
//
//	Integer < Rational < Real < Complex
//
// Float participates only with itself; mixing Float with an exact
// kind yields a Symbolic value rather than silently losing precision.
// Call ToExact first to opt in to exact mixed arithmetic.
//
// Canonical forms: a Rational with denominator 1 is stored as an
// Integer, and a Complex with zero imaginary part collapses to its
// real component. Equal and Hash therefore agree on values such as
// 1/3 + 1/3 + 1/3 and the integer 1.
//
// Division by zero never panics and never returns an error from the
// unchecked operators: Div(x, 0) produces a Symbolic value carrying
// the rendered quotient, which downstream layers may surface as they
// see fit.
//
// All operations are O(1) in the number of Values touched (big-int
// cost aside) and allocate only the result.
package number
