// Package symlath is your in-memory playground for exact symbolic
// computation: an arbitrary-precision numeric tower, a
// structurally-shared expression graph and a trigonometry-aware
// simplifier.
//
// 🚀 What is symlath?
//
//	A modern, exactness-first computer-algebra core that brings together:
//		• Numeric tower: big integers, rationals, decimals & complex values
//		  that promote without ever losing exactness
//		• Expression graphs: immutable, hash-consed nodes with reference
//		  counting and copy-on-write handles
//		• Builder: fluent construction with on-the-spot identities
//		  (x+0 → x; x*x stays x*x, that is the simplifier's job)
//		• Pool: structural sharing, cache statistics & a memory monitor
//		• Simplifier: fixed-point term rewriting with algebraic, trig,
//		  radical and log/exp rule families; sin(π/6) is 1/2, never
//		  0.49999999
//
// ✨ Why choose symlath?
//
//   - Exact or explicit – results are exact values, exact radicals, or
//     visibly symbolic; floats appear only when you put them in
//   - Total arithmetic – division by zero yields a symbolic value, not
//     a panic
//   - Rock-solid sharing – identical subtrees are one node, mutation
//     goes through counted copy-on-write
//   - Pure construction – building never simplifies behind your back
//
// Everything is organized under four subpackages:
//
//	number/   — the exact numeric tower & its total arithmetic
//	expr/     — immutable expression nodes, shared handles, COW, eval
//	builder/  — fluent constructors, the interning pool & the monitor
//	simplify/ — the fixed-point rewriting engine & its rule families
//
// Quick example:
//
//	b := builder.New()
//	x := b.Variable("x")
//	e := b.Add(b.Power(b.Sin(x), b.Int(2)), b.Power(b.Cos(x), b.Int(2)))
//	out, _ := simplify.New(simplify.WithBuilder(b)).Simplify(e)
//	fmt.Println(out) // 1
//
// Dive into the subpackage docs for the full rule catalogue, the
// sharing model, and the promotion rules of the tower.
//
//	go get github.com/katalvlaran/symlath
package symlath
