package simplify_test

import (
	"testing"

	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/simplify"
)

// BenchmarkSimplify_Trig measures the full pipeline on a trig
// expression that exercises parity, Pythagoras and special angles.
func BenchmarkSimplify_Trig(b *testing.B) {
	s := simplify.New()
	bld := s.Builder()
	x := bld.Variable("x")
	in := bld.Add(
		bld.Add(
			bld.Power(bld.Sin(bld.Negate(x)), bld.Int(2)),
			bld.Power(bld.Cos(x), bld.Int(2)),
		),
		bld.Sin(bld.Divide(bld.Pi(), bld.Int(6))),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := s.Simplify(in)
		if err != nil {
			b.Fatalf("Simplify failed: %v", err)
		}
		out.Release()
	}
}

// BenchmarkSimplify_Fixpoint measures the cost of confirming an
// already-canonical tree: one pass, no rewrites.
func BenchmarkSimplify_Fixpoint(b *testing.B) {
	s := simplify.New()
	bld := s.Builder()
	n := bld.Variable("x")
	for i := 0; i < 200; i++ {
		n = bld.Sin(n)
	}

	out, err := s.Simplify(n)
	if err != nil {
		b.Fatalf("warmup failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var again *expr.Shared
		if again, err = s.Simplify(out); err != nil {
			b.Fatalf("Simplify failed: %v", err)
		}
		again.Release()
	}
}
