package main

import (
	"context"
	"fmt"
	"io"

	"github.com/zeebo/clingy"

	"github.com/loov/fizzbar/report"
	"github.com/loov/fizzbar/runner"
)

type cmdRun struct {
	configFlags
	format   string
	patterns []string
}

func (c *cmdRun) Setup(params clingy.Parameters) {
	c.configFlags.Setup(params)

	c.format = params.Flag("format", "output format: text, markdown or json", "text").(string)

	c.patterns = params.Arg("patterns", "programs to run",
		clingy.Optional,
		clingy.Repeated,
	).([]string)
}

func (c *cmdRun) Execute(ctx context.Context) error {
	switch c.format {
	case "text", "markdown", "json":
	default:
		return fmt.Errorf("unknown format %q", c.format)
	}

	cfg, logger, err := c.load(ctx)
	if err != nil {
		return err
	}

	stdin, stderr := clingy.Stdin(ctx), clingy.Stderr(ctx)
	prompt := prompter(stdin, stderr, "bound: ")
	showProgress := isTerminal(stderr)

	pipeline := runner.NewPipeline(cfg)
	pipeline.SetLogger(logger)
	pipeline.OnProgress(func(event runner.ProgressEvent) {
		prompt(event.Phase)
		if showProgress && event.Phase == "done" && event.Err == nil {
			fmt.Fprintf(stderr, "%s: %d lines\n", event.Program, event.Lines)
		}
	})

	r, err := pipeline.Run(ctx, c.patterns, stdin)
	if err != nil {
		return err
	}

	return write(clingy.Stdout(ctx), c.format, r)
}

func write(w io.Writer, format string, r *report.Report) error {
	switch format {
	case "markdown":
		_, err := io.WriteString(w, report.WriteMarkdown(r))
		return err
	case "json":
		return report.WriteJSON(w, r)
	default:
		_, err := io.WriteString(w, report.WriteText(r))
		return err
	}
}
