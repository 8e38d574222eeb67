package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secretary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Population)
	assert.Equal(t, 1000, cfg.Trials)

	thresholds, err := cfg.Thresholds()
	require.NoError(t, err)
	require.Len(t, thresholds, 29)
	assert.Equal(t, 2, thresholds[0])
	assert.Equal(t, 58, thresholds[28])
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
population: 50
trials: 250
seed: 9
workers: 4
sweep:
  start: 5
  stop: 25
  step: 5
early_stop:
  target_rel_stderr: 0.02
output:
  lang: zh
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Population)
	assert.Equal(t, 250, cfg.Trials)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "zh", cfg.Output.Lang)
	assert.Equal(t, "chart", cfg.Output.Format, "unset keys keep their defaults")
	assert.Equal(t, 1000, cfg.EarlyStop.MinTrials)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 15, 20}, p.Strategies)
	assert.Equal(t, 50, p.Population)
	assert.Equal(t, 250, p.Trials)
	assert.Equal(t, int64(9), p.Seed)
	assert.Equal(t, 0.02, p.TargetRelStdErr)
}

func TestLoad_ExplicitStrategies(t *testing.T) {
	path := writeConfig(t, "strategies: [0, 37, 99]\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	thresholds, err := cfg.Thresholds()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 37, 99}, thresholds)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "population: [not, a, number]\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "population: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"population", func(c *Config) { c.Population = -1 }},
		{"trials", func(c *Config) { c.Trials = 0 }},
		{"workers", func(c *Config) { c.Workers = -2 }},
		{"negative strategy", func(c *Config) { c.Strategies = []int{3, -1} }},
		{"sweep stop", func(c *Config) { c.Sweep.Stop = c.Sweep.Start }},
		{"sweep step", func(c *Config) { c.Sweep.Step = 0 }},
		{"stderr target", func(c *Config) { c.EarlyStop.TargetRelStdErr = 1.5 }},
		{"format", func(c *Config) { c.Output.Format = "png" }},
		{"lang", func(c *Config) { c.Output.Lang = "fr" }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
