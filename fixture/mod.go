package fixture

import "fmt"

// Remainder computes a remainder of x divided by y.
type Remainder func(x, y int) int

// Mod computes a remainder by repeatedly subtracting y from x while x > y.
//
// This is not the usual modulo: when x <= y it returns x unchanged, so
// Mod(2, 5) == 2 and Mod(5, 5) == 5, and for x > y > 0 the result is in
// (0, y], never 0. Mod panics when x > y and y <= 0, since the subtraction
// would never terminate.
func Mod(x, y int) int {
	if x <= y {
		return x
	}
	if y <= 0 {
		panic(fmt.Sprintf("fixture: Mod(%d, %d) does not terminate", x, y))
	}

	r := x % y
	if r == 0 {
		return y
	}
	return r
}

// Native is the Go remainder operator.
func Native(x, y int) int { return x % y }
