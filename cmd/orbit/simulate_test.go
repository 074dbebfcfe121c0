package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSimulationWorkedExample(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSimulation(config.Default(), simulation{keys: []string{"d"}, ticks: 3}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "[Simulate] tick 1 eye=(-0.1992, "), lines[0])
	for _, line := range lines[:3] {
		assert.Contains(t, line, "radius=2.2361")
	}
	assert.Contains(t, lines[3], "[Simulate] done: 3 ticks")
}

func TestRunSimulationReleaseAfter(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSimulation(config.Default(), simulation{keys: []string{"left", "w"}, ticks: 4, releaseAfter: 2}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	eyeOf := func(line string) string {
		return line[strings.Index(line, "eye="):strings.Index(line, " radius")]
	}
	assert.NotEqual(t, eyeOf(lines[0]), eyeOf(lines[1]))
	assert.Equal(t, eyeOf(lines[1]), eyeOf(lines[2]), "released keys stop the orbit")
	assert.Equal(t, eyeOf(lines[2]), eyeOf(lines[3]))
}

func TestRunSimulationErrors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorContains(t, runSimulation(config.Default(), simulation{keys: []string{"f13"}, ticks: 1}, &out), `unknown key "f13"`)
	assert.ErrorContains(t, runSimulation(config.Default(), simulation{ticks: 0}, &out), "ticks")
	assert.Empty(t, out.String())
}

func TestSimulateCommandWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("eye: [0, 0, 4]\nspeed: 0.1\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"simulate", "--config", path, "--keys", "a,s", "--ticks", "2"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		configPath = ""
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "[Simulate] tick 2")
	assert.Contains(t, out.String(), "radius=4.0000")
}

func TestSimulateCommandRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.toml")
	require.NoError(t, os.WriteFile(path, []byte("znear = -1.0\n"), 0o644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"simulate", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		configPath = ""
	})

	assert.ErrorContains(t, rootCmd.Execute(), "znear")
}
