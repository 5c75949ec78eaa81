package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-out", dir,
		"-prefix", "s",
		"-channels", "16",
		"-spectra", "3",
		"-frames-min", "1",
		"-frames-max", "2",
		"-workers", "2",
		"-log-level", "error",
	}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	for _, name := range []string{"s-0000.csv", "s-0001.csv", "s-0002.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 16)
	}
	require.Contains(t, stdout.String(), "Spectra")
	require.Contains(t, stdout.String(), "48")
}

func TestRunInvalidConfig(t *testing.T) {
	tests := [][]string{
		{"-channels", "0"},
		{"-noise", "pink"},
		{"-ensemble", "fixed"},
		{"-log-format", "xml"},
		{"-frames-min", "5", "-frames-max", "5"},
		{"-bogus"},
		{"extra"},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != exitUsage {
			t.Fatalf("run(%v) = %d, want %d", args, code, exitUsage)
		}
	}
}

func TestRunOpenFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-out", filepath.Join(blocker, "out"),
		"-channels", "4",
		"-spectra", "2",
		"-log-level", "error",
		"-log-format", "console",
	}, &stdout, &stderr)

	require.Equal(t, exitFailure, code)
	require.Contains(t, stderr.String(), "error: spectrum 0")
	require.Contains(t, stderr.String(), "error: spectrum 1")
}
