package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn and returns everything it wrote to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

// setupTestEnv isolates config, logging, and progress output.
func setupTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RECSIZE_LOGGING_PATH", filepath.Join(t.TempDir(), "recsize.log"))
	viper.Set("quiet", true)
	viper.Set("output", "plain")
	t.Cleanup(func() {
		viper.Set("quiet", false)
		viper.Set("output", "")
	})
}

func TestRunAnalyze_NoArgsShowsHelp(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)

	err := runAnalyze(rootCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "recsize [directory]")
}

func TestRunAnalyze_EmptyDirectory(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()

	out := captureStdout(t, func() {
		err := runAnalyze(rootCmd, []string{dir})
		assert.NoError(t, err)
	})
	assert.Contains(t, out, "No files found.")
}

func TestRunAnalyze_MissingPath(t *testing.T) {
	setupTestEnv(t)

	err := runAnalyze(rootCmd, []string{filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRunAnalyze_PathIsFile(t *testing.T) {
	setupTestEnv(t)
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := runAnalyze(rootCmd, []string{file})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestRunAnalyze_ProducesReport(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()
	for _, f := range []struct {
		name string
		size int
	}{
		{"a.txt", 500},
		{"b.txt", 500},
		{"c.bin", 9000},
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f.name), make([]byte, f.size), 0o644))
	}

	out := captureStdout(t, func() {
		err := runAnalyze(rootCmd, []string{dir})
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "File Size Breakdown:")
	assert.Contains(t, out, "Recommended recordsize:")
}

func TestRunAnalyze_UnknownFormatter(t *testing.T) {
	setupTestEnv(t)
	viper.Set("output", "bogus")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("data"), 0o644))

	err := runAnalyze(rootCmd, []string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formatter")
}
