// Package runner selects fixture programs and runs them.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/loov/fizzbar/config"
	"github.com/loov/fizzbar/report"
)

// ErrNoMatch is returned when a pattern selects no program.
var ErrNoMatch = errors.New("no program matches")

// ProgressCallback is called during a run to report progress
type ProgressCallback func(event ProgressEvent)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Phase   string // "input", "start" or "done"
	Program string
	Lines   int
	Err     error
}

// Pipeline runs programs configured by a single config.
type Pipeline struct {
	config     *config.Config
	programs   []Program
	logger     *slog.Logger
	onProgress ProgressCallback
}

// NewPipeline creates a pipeline for every program configured by cfg.
func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		config:   cfg,
		programs: Programs(cfg),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used for run diagnostics.
func (p *Pipeline) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// OnProgress sets a callback for progress events during a run.
func (p *Pipeline) OnProgress(cb ProgressCallback) {
	p.onProgress = cb
}

func (p *Pipeline) reportProgress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}

// Programs returns all programs known to the pipeline.
func (p *Pipeline) Programs() []Program {
	return p.programs
}

// Select returns the programs matching any of the glob patterns, in
// registration order. No patterns selects every program.
func (p *Pipeline) Select(patterns []string) ([]Program, error) {
	if len(patterns) == 0 {
		return p.programs, nil
	}

	selected := make([]bool, len(p.programs))
	for _, pattern := range patterns {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		found := false
		for i, prog := range p.programs {
			if ok, _ := path.Match(pattern, prog.Name()); ok {
				selected[i] = true
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w %q", ErrNoMatch, pattern)
		}
	}

	var programs []Program
	for i, prog := range p.programs {
		if selected[i] {
			programs = append(programs, prog)
		}
	}
	return programs, nil
}

// Exec runs a single program, writing its output to out.
func (p *Pipeline) Exec(ctx context.Context, prog Program, in io.Reader, out io.Writer) error {
	if prog.NeedsInput() {
		p.reportProgress(ProgressEvent{Phase: "input", Program: prog.Name()})
	}
	p.reportProgress(ProgressEvent{Phase: "start", Program: prog.Name()})

	counter := &lineCounter{w: out}
	start := time.Now()
	err := prog.Run(ctx, in, counter)

	p.logger.LogAttrs(ctx, slog.LevelDebug, "program finished",
		slog.String("program", prog.Name()),
		slog.Int("lines", counter.lines()),
		slog.Duration("duration", time.Since(start)),
		slog.Any("error", err),
	)
	p.reportProgress(ProgressEvent{Phase: "done", Program: prog.Name(), Lines: counter.lines(), Err: err})

	if err != nil {
		return fmt.Errorf("%s: %w", prog.Name(), err)
	}
	return nil
}

// Run runs the programs matching patterns and collects their output.
func (p *Pipeline) Run(ctx context.Context, patterns []string, in io.Reader) (*report.Report, error) {
	programs, err := p.Select(patterns)
	if err != nil {
		return nil, err
	}

	p.logger.LogAttrs(ctx, slog.LevelInfo, "running fixtures",
		slog.Int("programs", len(programs)),
		slog.Any("config", p.config),
	)

	r := report.NewReport()
	r.Metadata.Started = time.Now()

	for _, prog := range programs {
		var out bytes.Buffer
		start := time.Now()
		if err := p.Exec(ctx, prog, in, &out); err != nil {
			return r, err
		}
		r.Add(prog.Name(), out.String(), time.Since(start))
	}
	return r, nil
}

// lineCounter counts newline-terminated and trailing partial lines written through it.
type lineCounter struct {
	w       io.Writer
	newline int
	partial bool
}

func (c *lineCounter) Write(data []byte) (int, error) {
	n, err := c.w.Write(data)
	written := data[:n]
	if n > 0 {
		c.newline += bytes.Count(written, []byte{'\n'})
		c.partial = written[n-1] != '\n'
	}
	return n, err
}

func (c *lineCounter) lines() int {
	if c.partial {
		return c.newline + 1
	}
	return c.newline
}
