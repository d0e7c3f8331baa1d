// Package fixture implements the fizzbuzz and foobar fixture programs.
package fixture

import (
	"bufio"
	"context"
	"io"
	"strconv"
)

// cancelCheck is how many iterations run between context checks.
const cancelCheck = 1 << 12

// FizzBuzzLine returns the text printed for i, without the newline.
//
// Numbers divisible by neither 3 nor 5 are printed as is. Otherwise the line
// is "fizz" when i is divisible by 5, followed by "buzz" when i is divisible
// by 3.
func FizzBuzzLine(i int) string {
	if i%5 != 0 && i%3 != 0 {
		return strconv.Itoa(i)
	}

	var line string
	if i%5 == 0 {
		line += "fizz"
	}
	if i%3 == 0 {
		line += "buzz"
	}
	return line
}

// FizzBuzz writes one line for every i in 1..bound.
// A bound below 1 writes nothing.
func FizzBuzz(ctx context.Context, w io.Writer, bound int) error {
	bw := bufio.NewWriter(w)
	for i := 1; i <= bound; i++ {
		if i%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				_ = bw.Flush()
				return err
			}
		}

		bw.WriteString(FizzBuzzLine(i))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
