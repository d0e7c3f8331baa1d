package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/zeebo/clingy"

	"github.com/loov/fizzbar/config"
)

type configFlags struct {
	configPaths   []string
	inlineConfigs []string
}

func (c *configFlags) Setup(params clingy.Parameters) {
	c.configPaths = params.Flag("config", "path to config file",
		[]string{config.DefaultPath},
		clingy.Repeated,
	).([]string)

	c.inlineConfigs = params.Flag("inline", "inline CUE config",
		[]string{},
		clingy.Short('c'),
		clingy.Repeated,
	).([]string)
}

// load reads the configuration and creates a logger writing to stderr.
func (c *configFlags) load(ctx context.Context) (*config.Config, *slog.Logger, error) {
	// workaround for clingy bug
	if len(c.configPaths) == 0 {
		c.configPaths = []string{config.DefaultPath}
	}

	cfg, err := config.Load(c.configPaths, c.inlineConfigs)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(clingy.Stderr(ctx), &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	logger.LogAttrs(ctx, slog.LevelDebug, "config loaded", slog.Any("config", cfg))

	return cfg, logger, nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// prompter writes a prompt before a program blocks on interactive input.
func prompter(in io.Reader, stderr io.Writer, prompt string) func(phase string) {
	interactive := isTerminal(in)
	return func(phase string) {
		if interactive && phase == "input" {
			_, _ = io.WriteString(stderr, prompt)
		}
	}
}
