// SPDX-License-Identifier: MIT

// Package config loads solver and logging settings from a TOML file.
//
//	[solver]
//	exact = false
//	trace = true
//	pivot_tolerance = 0.0
//	max_denominator = 1000000
//
//	[log]
//	level = "warn"   # debug|info|warn|error
//	format = "text"  # text|json
//
// Keys left out keep their Default values; unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/rational"
)

// ErrInvalid is returned for unreadable or out-of-range configuration.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the whole file.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Log    LogConfig    `toml:"log"`
}

// SolverConfig mirrors gauss.Options.
type SolverConfig struct {
	Exact          bool    `toml:"exact"`
	Trace          bool    `toml:"trace"`
	PivotTolerance float64 `toml:"pivot_tolerance" validate:"finite,gte=0"`
	MaxDenominator int64   `toml:"max_denominator" validate:"gte=1"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("finite", validateFinite); err != nil {
		panic(err)
	}
}

// validateFinite rejects NaN and ±Inf floats.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Float32 && f.Kind() != reflect.Float64 {
		return true
	}
	v := f.Float()

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Default returns the built-in settings: float mode, trace on, exact-zero
// pivot test, rational.DefaultMaxDenominator, warn-level text logs.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			Exact:          false,
			Trace:          gauss.DefaultTrace,
			PivotTolerance: gauss.DefaultPivotTolerance,
			MaxDenominator: rational.DefaultMaxDenominator,
		},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Decode reads TOML from r over Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return cfg, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Load reads the file at path. A missing file yields Default.
func Load(path string) (Config, error) {
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()

	cfg, err := Decode(fh)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SolverOptions converts the solver section into gauss options. A nil logger
// keeps the solver silent.
func (c Config) SolverOptions(logger *slog.Logger) []gauss.Option {
	mode := gauss.Float
	if c.Solver.Exact {
		mode = gauss.Exact
	}
	opts := []gauss.Option{
		gauss.WithMode(mode),
		gauss.WithTrace(c.Solver.Trace),
		gauss.WithPivotTolerance(c.Solver.PivotTolerance),
		gauss.WithMaxDenominator(c.Solver.MaxDenominator),
	}
	if logger != nil {
		opts = append(opts, gauss.WithLogger(logger))
	}

	return opts
}

// SlogLevel returns the configured slog level; unknown names fall back to warn.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelWarn
	}

	return lvl
}

// Logger builds a logger writing to w in the configured format and level.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	ho := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, ho))
	}

	return slog.New(slog.NewTextHandler(w, ho))
}
