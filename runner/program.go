package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/loov/fizzbar/config"
	"github.com/loov/fizzbar/fixture"
	"github.com/loov/fizzbar/scan"
)

// Program is a runnable fixture.
type Program interface {
	Name() string
	Doc() string
	// NeedsInput reports whether Run reads from its input.
	NeedsInput() bool
	Run(ctx context.Context, in io.Reader, out io.Writer) error
}

// Programs returns every fixture configured by cfg, in fixture order.
func Programs(cfg *config.Config) []Program {
	return []Program{
		FizzBuzz(cfg.FizzBuzz.Bound),
		FooBar(cfg.FooBar.Limit, cfg.Remainder()),
	}
}

// FizzBuzz returns the fizzbuzz program. When bound is nil the bound is
// read from the program input.
func FizzBuzz(bound *int) Program {
	return fizzBuzzProgram{bound: bound}
}

type fizzBuzzProgram struct {
	bound *int
}

func (fizzBuzzProgram) Name() string { return "fizzbuzz" }
func (fizzBuzzProgram) Doc() string  { return "print numbers 1..bound, fizz for 5, buzz for 3" }

func (p fizzBuzzProgram) NeedsInput() bool { return p.bound == nil }

func (p fizzBuzzProgram) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if p.bound != nil {
		return fixture.FizzBuzz(ctx, out, *p.bound)
	}

	bound, err := readBound(ctx, in)
	if err != nil {
		return fmt.Errorf("read bound: %w", err)
	}
	return fixture.FizzBuzz(ctx, out, bound)
}

// readBound reads the bound while honoring ctx. The reader goroutine is
// left behind on cancellation, since a blocked Read cannot be interrupted.
func readBound(ctx context.Context, in io.Reader) (int, error) {
	type result struct {
		bound int
		err   error
	}

	done := make(chan result, 1)
	go func() {
		bound, err := scan.Int(in)
		done <- result{bound: bound, err: err}
	}()

	select {
	case r := <-done:
		return r.bound, r.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// FooBar returns the foobar program visiting 1..limit.
func FooBar(limit int, rem fixture.Remainder) Program {
	return fooBarProgram{limit: limit, rem: rem}
}

type fooBarProgram struct {
	limit int
	rem   fixture.Remainder
}

func (fooBarProgram) Name() string     { return "foobar" }
func (fooBarProgram) Doc() string      { return "print foo for multiples of 5 and bar for multiples of 3" }
func (fooBarProgram) NeedsInput() bool { return false }

func (p fooBarProgram) Run(ctx context.Context, _ io.Reader, out io.Writer) error {
	return fixture.FooBar(ctx, out, p.limit, p.rem)
}
