package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProps(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ashe.properties")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	reset()
	defer reset()

	path := writeProps(t, "slicer.tool_path=/usr/local/bin/slice\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 60, cfg.LlmTimeoutTotal)
	require.Equal(t, 10, cfg.LlmTimeoutLog)
	require.Equal(t, 25, cfg.DriverMaxIterations)
	require.Equal(t, "javac", cfg.CheckerToolName)
	require.Equal(t, "/usr/local/bin/slice", cfg.SlicerToolPath)
}

func TestLoadFirstInitializerWins(t *testing.T) {
	reset()
	defer reset()

	first := writeProps(t, "slicer.tool_path=/first\n")
	second := writeProps(t, "slicer.tool_path=/second\n")

	cfg1, err := Load(first)
	require.NoError(t, err)
	cfg2, err := Load(second)
	require.NoError(t, err)

	require.Same(t, cfg1, cfg2)
	require.Equal(t, "/first", cfg2.SlicerToolPath)
}

func TestRequireSlicerToolPathMissing(t *testing.T) {
	reset()
	defer reset()

	path := writeProps(t, "llm.endpoint=https://example.test/v1/completions\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.RequireSlicerToolPath()
	require.Error(t, err)
}

func TestGlobalPanicsBeforeLoad(t *testing.T) {
	reset()
	defer reset()

	require.Panics(t, func() {
		Global()
	})
}
