package simplify_test

import (
	"fmt"

	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/simplify"
)

// ExampleSimplifier_Simplify collapses the Pythagorean identity.
func ExampleSimplifier_Simplify() {
	s := simplify.New()
	b := s.Builder()
	x := b.Variable("x")

	e := b.Add(b.Power(b.Sin(x), b.Int(2)), b.Power(b.Cos(x), b.Int(2)))
	out, err := s.Simplify(e)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// 1
}

// ExampleSimplifier_Simplify_radicals normalizes a radical exactly:
// the square factor comes out, the rest stays under the root.
func ExampleSimplifier_Simplify_radicals() {
	s := simplify.New()
	b := s.Builder()

	out, err := s.Simplify(b.Sqrt(b.Int(12)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// 2 * sqrt(3)
}

// ExampleSimplifier_Simplify_specialAngles resolves exact values at
// rational multiples of π.
func ExampleSimplifier_Simplify_specialAngles() {
	s := simplify.New()
	b := s.Builder()

	for _, in := range []*expr.Shared{
		b.Sin(b.Divide(b.Pi(), b.Int(6))),
		b.Cos(b.Divide(b.Pi(), b.Int(4))),
		b.Tan(b.Divide(b.Pi(), b.Int(3))),
	} {
		out, err := s.Simplify(in)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(out)
	}
	// Output:
	// 1/2
	// sqrt(2) / 2
	// sqrt(3)
}
