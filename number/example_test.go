package number_test

import (
	"fmt"

	"github.com/katalvlaran/symlath/number"
)

// ExampleDiv shows exact rational division and its recombination:
// thirds are thirds, not 0.333….
func ExampleDiv() {
	third := number.Div(number.Int(1), number.Int(3))
	fmt.Println(third)
	fmt.Println(number.Add(third, number.Rational(2, 3)))
	// Output:
	// 1/3
	// 1
}

// ExamplePow shows that integer exponentiation never decays into a
// float approximation.
func ExamplePow() {
	fmt.Println(number.Pow(number.Int(2), number.Int(100)))
	fmt.Println(number.Pow(number.Rational(2, 3), number.Int(-2)))
	// Output:
	// 1267650600228229401496703205376
	// 9/4
}

// ExampleDivide shows the checked division form; the unchecked Div
// would return a symbolic value instead.
func ExampleDivide() {
	if _, err := number.Divide(number.Int(1), number.Int(0)); err != nil {
		fmt.Println(err)
	}
	// Output:
	// number: division by zero: 1/0
}
