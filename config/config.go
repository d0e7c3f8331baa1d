// Package config loads fizzbar configuration written in CUE.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/loov/fizzbar/fixture"
)

// DefaultPath is the config file loaded when it exists.
const DefaultPath = "fizzbar.cue"

//go:embed schema.cue
var schema string

// Remainder names.
const (
	ModSubtract = "subtract"
	ModNative   = "native"
)

// Config is the complete configuration.
type Config struct {
	FizzBuzz FizzBuzz `json:"fizzbuzz"`
	FooBar   FooBar   `json:"foobar"`
	Log      Log      `json:"log"`
}

// FizzBuzz configures the fizzbuzz program.
type FizzBuzz struct {
	Bound *int `json:"bound,omitempty"`
}

// FooBar configures the foobar program.
type FooBar struct {
	Limit int    `json:"limit"`
	Mod   string `json:"mod"`
}

// Log configures logging.
type Log struct {
	Level string `json:"level"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	cfg, err := Load(nil, nil)
	if err != nil {
		panic(fmt.Sprintf("config: invalid embedded schema: %v", err))
	}
	return cfg
}

// Load unifies the schema with the config files and inline snippets, in order.
// A missing DefaultPath is skipped, any other missing file is an error.
func Load(paths, inline []string) (*Config, error) {
	ctx := cuecontext.New()

	root := ctx.CompileString(schema, cue.Filename("schema.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	v := root.LookupPath(cue.ParsePath("#Config"))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		file := ctx.CompileBytes(data, cue.Filename(path))
		if err := file.Err(); err != nil {
			return nil, fmt.Errorf("compile %s: %w", path, err)
		}
		v = v.Unify(file)
	}

	for i, src := range inline {
		snippet := ctx.CompileString(src, cue.Filename(fmt.Sprintf("inline-%d.cue", i+1)))
		if err := snippet.Err(); err != nil {
			return nil, fmt.Errorf("compile inline config %q: %w", src, err)
		}
		v = v.Unify(snippet)
	}

	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Remainder returns the remainder function selected by foobar.mod.
func (cfg *Config) Remainder() fixture.Remainder {
	if cfg.FooBar.Mod == ModNative {
		return fixture.Native
	}
	return fixture.Mod
}

// LogLevel returns the configured log level.
func (cfg *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// LogValue implements [slog.LogValuer].
func (cfg *Config) LogValue() slog.Value {
	as := []slog.Attr{
		slog.Int("foobar.limit", cfg.FooBar.Limit),
		slog.String("foobar.mod", cfg.FooBar.Mod),
		slog.String("log.level", cfg.Log.Level),
	}
	if cfg.FizzBuzz.Bound != nil {
		as = append(as, slog.Int("fizzbuzz.bound", *cfg.FizzBuzz.Bound))
	}
	return slog.GroupValue(as...)
}
