package main

import (
	"context"
	"fmt"

	"github.com/zeebo/clingy"

	"github.com/loov/fizzbar/config"
	"github.com/loov/fizzbar/fixture"
	"github.com/loov/fizzbar/scan"
)

type cmdMod struct {
	mod string
	x   string
	y   string
}

func (c *cmdMod) Setup(params clingy.Parameters) {
	c.mod = params.Flag("mod", "remainder: subtract or native", config.ModSubtract).(string)

	c.x = params.Arg("x", "dividend").(string)
	c.y = params.Arg("y", "divisor").(string)
}

func (c *cmdMod) Execute(ctx context.Context) error {
	if err := checkMod(c.mod); err != nil {
		return err
	}

	x, err := scan.Parse(c.x)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := scan.Parse(c.y)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}

	var r int
	switch c.mod {
	case config.ModNative:
		if y == 0 {
			return fmt.Errorf("mod %d by zero", x)
		}
		r = fixture.Native(x, y)
	default:
		if x > y && y <= 0 {
			return fmt.Errorf("mod(%d, %d) does not terminate", x, y)
		}
		r = fixture.Mod(x, y)
	}

	_, err = fmt.Fprintln(clingy.Stdout(ctx), r)
	return err
}
