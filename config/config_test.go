// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gauss/config"
	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Solver.Exact)
	assert.True(t, cfg.Solver.Trace)
	assert.Zero(t, cfg.Solver.PivotTolerance)
	assert.Equal(t, rational.DefaultMaxDenominator, cfg.Solver.MaxDenominator)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Decode(strings.NewReader(`
[solver]
exact = true
pivot_tolerance = 1e-12

[log]
format = "json"
`))
	require.NoError(t, err)
	assert.True(t, cfg.Solver.Exact)
	assert.True(t, cfg.Solver.Trace)
	assert.Equal(t, 1e-12, cfg.Solver.PivotTolerance)
	assert.Equal(t, rational.DefaultMaxDenominator, cfg.Solver.MaxDenominator)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "[solver\n"},
		{"wrong type", "[solver]\nexact = \"yes\"\n"},
		{"unknown key", "[solver]\nspeed = 3\n"},
		{"unknown table", "[ui]\ntheme = \"dark\"\n"},
		{"negative tolerance", "[solver]\npivot_tolerance = -0.5\n"},
		{"nan tolerance", "[solver]\npivot_tolerance = nan\n"},
		{"inf tolerance", "[solver]\npivot_tolerance = inf\n"},
		{"zero denominator", "[solver]\nmax_denominator = 0\n"},
		{"level", "[log]\nlevel = \"loud\"\n"},
		{"format", "[log]\nformat = \"xml\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestValidate_FiniteRule(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Solver.PivotTolerance = math.Inf(1)
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "'finite' tag")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(dir, "gauss.toml")
	require.NoError(t, os.WriteFile(path, []byte("[solver]\ntrace = false\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Solver.Trace)

	require.NoError(t, os.WriteFile(path, []byte("[solver]\nmax_denominator = -1\n"), 0o600))
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), path)
}

func TestSolverOptions(t *testing.T) {
	t.Parallel()

	a := [][]float64{{2, 1}, {1, 3}}
	b := [][]float64{{3}, {5}}

	cfg := config.Default()
	cfg.Solver.Exact = true
	cfg.Solver.Trace = false
	res, err := gauss.SolveRows(a, b, cfg.SolverOptions(nil)...)
	require.NoError(t, err)
	assert.Equal(t, gauss.Exact, res.Mode)
	assert.Empty(t, res.Trace)

	cfg = config.Default()
	cfg.Solver.MaxDenominator = 1
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res, err = gauss.SolveRows(a, b, cfg.SolverOptions(log)...)
	require.NoError(t, err)
	assert.Equal(t, "1", rational.String(res.Solution[0].Fraction))
	assert.Contains(t, buf.String(), "solve started")
}

func TestLogConfig_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := config.LogConfig{Level: "info", Format: "json"}.Logger(&buf)
	l.Debug("hidden")
	l.Info("shown", "k", 1)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	l = config.LogConfig{Level: "debug", Format: "text"}.Logger(&buf)
	l.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")

	assert.Equal(t, slog.LevelWarn, config.LogConfig{Level: "???"}.SlogLevel())
	assert.Equal(t, slog.LevelError, config.LogConfig{Level: "error"}.SlogLevel())
}
