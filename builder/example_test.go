package builder_test

import (
	"fmt"

	"github.com/katalvlaran/symlath/builder"
)

// ExampleBuilder shows construction identities firing on the spot.
func ExampleBuilder() {
	b := builder.New()
	x := b.Variable("x")

	fmt.Println(b.Add(x, b.Int(0)))
	fmt.Println(b.Multiply(x, b.Int(1)))
	fmt.Println(b.Subtract(x, x))
	fmt.Println(b.Power(x, b.Int(0)))
	// Output:
	// x
	// x
	// 0
	// 1
}

// ExampleBuilder_Variable shows interning: building the same variable
// twice yields the same node.
func ExampleBuilder_Variable() {
	b := builder.New()
	x1 := b.Variable("x")
	x2 := b.Variable("x")

	fmt.Println(x1 == x2)
	fmt.Println(x1.RefCount() > 1)
	// Output:
	// true
	// true
}
