package main

import (
	"context"
	"fmt"

	"github.com/zeebo/clingy"

	"github.com/loov/fizzbar/config"
	"github.com/loov/fizzbar/runner"
	"github.com/loov/fizzbar/scan"
)

type cmdFooBar struct {
	configFlags
	limit string
	mod   string
}

func (c *cmdFooBar) Setup(params clingy.Parameters) {
	c.configFlags.Setup(params)

	c.limit = params.Flag("limit", "last value to visit (default from config, 15)", "").(string)
	c.mod = params.Flag("mod", "remainder: subtract or native (default from config)", "").(string)
}

func (c *cmdFooBar) Execute(ctx context.Context) error {
	cfg, logger, err := c.load(ctx)
	if err != nil {
		return err
	}

	if c.limit != "" {
		limit, err := scan.Parse(c.limit)
		if err != nil {
			return fmt.Errorf("limit: %w", err)
		}
		cfg.FooBar.Limit = limit
	}
	if c.mod != "" {
		if err := checkMod(c.mod); err != nil {
			return err
		}
		cfg.FooBar.Mod = c.mod
	}

	pipeline := runner.NewPipeline(cfg)
	pipeline.SetLogger(logger)

	prog := runner.FooBar(cfg.FooBar.Limit, cfg.Remainder())
	return pipeline.Exec(ctx, prog, clingy.Stdin(ctx), clingy.Stdout(ctx))
}

func checkMod(mod string) error {
	switch mod {
	case config.ModSubtract, config.ModNative:
		return nil
	}
	return fmt.Errorf("unknown mod %q, want %q or %q", mod, config.ModSubtract, config.ModNative)
}
