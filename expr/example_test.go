package expr_test

import (
	"fmt"

	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/number"
)

// ExampleShared_Evaluate binds a variable and evaluates exactly.
func ExampleShared_Evaluate() {
	x := expr.NewVariable("x")
	one := expr.NewNumber(number.Int(1))
	sum := expr.NewBinary(expr.OpAdd, x, one)

	v, err := sum.Evaluate(map[string]number.Value{"x": number.Rational(1, 2)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output:
	// 3/2
}

// ExampleShared_Substitute swaps a variable for a subtree; untouched
// branches stay shared with the original.
func ExampleShared_Substitute() {
	x := expr.NewVariable("x")
	y := expr.NewVariable("y")
	sum := expr.NewBinary(expr.OpAdd, x, y)

	five := expr.NewNumber(number.Int(5))
	out := sum.Substitute(map[string]*expr.Shared{"x": five})

	fmt.Println(sum)
	fmt.Println(out)
	// Output:
	// x + y
	// 5 + y
}
