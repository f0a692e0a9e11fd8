package execute

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunner(dir string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Runner{Dir: dir, Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRunSkipsDisallowedCommands(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644))

	runner, _, stderr := testRunner(dir)
	err := runner.Run(context.Background(), []string{
		`mkdir -p out`,
		`rm -rf /`,
		`cp a.txt out/`,
	})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dir, "out"))
	assert.FileExists(t, filepath.Join(dir, "out", "a.txt"))
	assert.Contains(t, stderr.String(), `skipping disallowed command "rm"`)
}

func TestRunRespectsShellQuoting(t *testing.T) {
	dir := t.TempDir()

	runner, _, _ := testRunner(dir)
	err := runner.Run(context.Background(), []string{`mkdir -p "my docs"`})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dir, "my docs"))
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()

	runner, _, _ := testRunner(dir)
	err := runner.Run(context.Background(), []string{
		`cp missing.txt copy.txt`,
		`mkdir -p never`,
	})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "never"))
	assert.True(t, os.IsNotExist(statErr), "commands after the failure must not run")
}

func TestRunKeepsEarlierEffectsOnFailure(t *testing.T) {
	dir := t.TempDir()

	runner, _, _ := testRunner(dir)
	err := runner.Run(context.Background(), []string{
		`mkdir -p kept`,
		`cp missing.txt copy.txt`,
	})
	require.Error(t, err)

	// No rollback: the directory created before the failure stays.
	assert.DirExists(t, filepath.Join(dir, "kept"))
}

func TestRunRejectsPathsOutsideSourceDir(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "escape")

	runner, _, stderr := testRunner(dir)
	err := runner.Run(context.Background(), []string{
		`mkdir -p ../escape`,
		`mkdir -p "` + outside + `"`,
	})
	require.NoError(t, err)

	_, statErr := os.Stat(outside)
	assert.True(t, os.IsNotExist(statErr), "no directory may be created outside the source dir")
	assert.Contains(t, stderr.String(), "outside source directory")
}

func TestRunSkipsUnparseableCommands(t *testing.T) {
	dir := t.TempDir()

	runner, _, stderr := testRunner(dir)
	err := runner.Run(context.Background(), []string{`mkdir -p "unterminated`})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "unparseable")
}
