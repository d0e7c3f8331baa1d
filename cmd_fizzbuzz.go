package main

import (
	"context"
	"fmt"

	"github.com/zeebo/clingy"

	"github.com/loov/fizzbar/runner"
	"github.com/loov/fizzbar/scan"
)

type cmdFizzBuzz struct {
	configFlags
	bound *string
}

func (c *cmdFizzBuzz) Setup(params clingy.Parameters) {
	c.configFlags.Setup(params)

	c.bound = params.Arg("bound", "upper bound, read from stdin when omitted",
		clingy.Optional,
	).(*string)
}

func (c *cmdFizzBuzz) Execute(ctx context.Context) error {
	cfg, logger, err := c.load(ctx)
	if err != nil {
		return err
	}

	bound := cfg.FizzBuzz.Bound
	if c.bound != nil {
		v, err := scan.Parse(*c.bound)
		if err != nil {
			return fmt.Errorf("bound: %w", err)
		}
		bound = &v
	}

	stdin, stderr := clingy.Stdin(ctx), clingy.Stderr(ctx)
	prompt := prompter(stdin, stderr, "bound: ")

	pipeline := runner.NewPipeline(cfg)
	pipeline.SetLogger(logger)
	pipeline.OnProgress(func(event runner.ProgressEvent) { prompt(event.Phase) })

	return pipeline.Exec(ctx, runner.FizzBuzz(bound), stdin, clingy.Stdout(ctx))
}
