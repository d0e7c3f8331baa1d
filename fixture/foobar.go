package fixture

import (
	"bufio"
	"context"
	"io"
)

// FooBarLimit is the last value visited by the foobar loop.
const FooBarLimit = 15

// FooBarToken returns the text printed for x using rem to test divisibility.
//
// Values where neither rem(x, 5) nor rem(x, 3) is zero are skipped and
// produce "". Otherwise the token is "foo" when rem(x, 5) == 0, followed by
// "bar" when rem(x, 3) == 0.
func FooBarToken(x int, rem Remainder) string {
	if rem(x, 5) != 0 && rem(x, 3) != 0 {
		return ""
	}

	var token string
	if rem(x, 5) == 0 {
		token += "foo"
	}
	if rem(x, 3) == 0 {
		token += "bar"
	}
	return token
}

// FooBar writes the tokens for x in 1..limit without any separator
// and without a trailing newline.
func FooBar(ctx context.Context, w io.Writer, limit int, rem Remainder) error {
	if rem == nil {
		rem = Mod
	}

	bw := bufio.NewWriter(w)
	for x := 1; x <= limit; x++ {
		if x%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				_ = bw.Flush()
				return err
			}
		}

		bw.WriteString(FooBarToken(x, rem))
	}
	return bw.Flush()
}
