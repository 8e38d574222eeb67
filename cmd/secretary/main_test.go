package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretary-simulation/internal/config"
	"secretary-simulation/internal/secretary"
	"secretary-simulation/internal/sweep"
)

// quietConfig keeps command logs out of test output.
func quietConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", quietConfig(t)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSweepJSON(t *testing.T) {
	out, err := execute(t, "sweep", "-n", "20", "--strategies", "0,5,19", "--trials", "200", "--seed", "3", "--workers", "2", "--format", "json")
	require.NoError(t, err)

	var rep sweep.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 20, rep.Population)
	assert.Equal(t, int64(3), rep.Seed)
	require.Len(t, rep.Results, 3)
	for i, s := range []int{0, 5, 19} {
		assert.Equal(t, s, rep.Results[i].Strategy)
		assert.Equal(t, 200, rep.Results[i].Trials)
	}
}

func TestSweepIsDeterministicForSeed(t *testing.T) {
	args := []string{"sweep", "--start", "10", "--stop", "50", "--step", "10", "--trials", "300", "--seed", "8", "--format", "json"}
	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)

	var a, b sweep.Report
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	require.Len(t, a.Results, 4)
	for i := range a.Results {
		assert.Equal(t, a.Results[i].Summary, b.Results[i].Summary)
	}
}

func TestRootRunsSweep(t *testing.T) {
	out, err := execute(t, "--strategies", "37", "--trials", "100", "--seed", "1", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Population of 100 candidates")
	assert.Contains(t, out, "Mean outcome")
}

func TestSweepChart(t *testing.T) {
	out, err := execute(t, "sweep", "--trials", "100", "--seed", "2", "--lang", "zh")
	require.NoError(t, err)
	assert.Contains(t, out, "可能遇到 100 个异性")
	assert.Contains(t, out, "策略")
}

func TestSweepEarlyStop(t *testing.T) {
	out, err := execute(t, "sweep", "--strategies", "37", "--trials", "50000", "--target-stderr", "0.1", "--min-trials", "200", "--seed", "4", "--format", "json")
	require.NoError(t, err)

	var rep sweep.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Results, 1)
	assert.Less(t, rep.Results[0].Trials, 50000)
}

func TestSweepInvalidInput(t *testing.T) {
	_, err := execute(t, "sweep", "-n", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "sweep", "--format", "png")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "sweep", "--strategies", "3,-1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "sweep", "unexpected")
	assert.Error(t, err)
}

func TestTrace(t *testing.T) {
	out, err := execute(t, "trace", "-n", "5", "-s", "1", "--seed", "9", "--format", "json")
	require.NoError(t, err)

	var tr secretary.Trial
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	require.Len(t, tr.Permutation, 5)
	assert.Equal(t, 1, tr.Threshold)
	assert.Equal(t, secretary.Select(tr.Permutation, 1), tr.Outcome)
}

func TestTraceDefaultsToOptimalThreshold(t *testing.T) {
	out, err := execute(t, "trace", "--seed", "9", "--format", "json")
	require.NoError(t, err)

	var tr secretary.Trial
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, 37, tr.Threshold)
	assert.Len(t, tr.Permutation, 100)
}

func TestTraceText(t *testing.T) {
	out, err := execute(t, "trace", "-n", "10", "-s", "0", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "max=-∞")
	assert.Contains(t, out, "@ 0")
}

func TestTheory(t *testing.T) {
	out, err := execute(t, "theory", "--strategies", "10,37")
	require.NoError(t, err)
	assert.Contains(t, out, "0.3710")
	assert.Contains(t, out, "s=37")
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "--seed", "5", "--format", "json")
	require.NoError(t, err)

	var rep sweep.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Results, 8)
	assert.Len(t, rep.Results[0].Outcomes, 100)

	out, err = execute(t, "demo", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "5 / ")
	assert.Contains(t, out, "40 / ")
}
