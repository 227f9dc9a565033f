package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenilsonani/hyperhash/internal/sha1block"
)

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCommand()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMainRootCommand(t *testing.T) {
	rootCmd := newRootCommand()
	assert.Equal(t, "hyperhash", rootCmd.Use)
	assert.Contains(t, rootCmd.Version, "dev (commit: none, built: unknown)")

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "sum")
	assert.Contains(t, names, "hash-object")
	assert.Contains(t, names, "benchmark")
}

func TestSumCommand(t *testing.T) {
	tmpDir := t.TempDir()
	abc := filepath.Join(tmpDir, "abc.txt")
	empty := filepath.Join(tmpDir, "empty.txt")
	require.NoError(t, os.WriteFile(abc, []byte("abc"), 0644))
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	tests := []struct {
		name        string
		args        []string
		stdin       string
		expectError bool
		expected    []string
	}{
		{
			name:     "files",
			args:     []string{"sum", abc, empty},
			expected: []string{"a9993e364706816aba3e25717850c26c9cd0d89d  " + abc, "da39a3ee5e6b4b0d3255bfef95601890afd80709  " + empty},
		},
		{
			name:     "stdin",
			args:     []string{"sum"},
			stdin:    "abc",
			expected: []string{"a9993e364706816aba3e25717850c26c9cd0d89d  -"},
		},
		{
			name:     "generic backend",
			args:     []string{"sum", "--backend", "generic", abc},
			expected: []string{"a9993e364706816aba3e25717850c26c9cd0d89d  " + abc},
		},
		{
			name:        "unknown backend",
			args:        []string{"sum", "--backend", "nope", abc},
			expectError: true,
		},
		{
			name:        "missing file",
			args:        []string{"sum", filepath.Join(tmpDir, "missing")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(t, tt.stdin, tt.args...)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(output), "\n")
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestSumCommandBackendFromEnv(t *testing.T) {
	t.Setenv(backendEnv, "generic")
	cmd := newSumCommand()
	assert.Equal(t, "generic", cmd.Flag("backend").DefValue)
}

func TestHashObjectCommand(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("Hello, World!\n"), 0644))

	output, err := executeCommand(t, "", "hash-object", testFile)
	require.NoError(t, err)
	assert.Equal(t, "8ab686eafeb1f44702738c8b0f24f2567c36da6d", strings.TrimSpace(output))

	output, err = executeCommand(t, "hello world\n", "hash-object", "--stdin")
	require.NoError(t, err)
	assert.Equal(t, "3b18e512dba79e4c8300dd08aeb37f8e728b8dad", strings.TrimSpace(output))

	_, err = executeCommand(t, "", "hash-object", "-t", "blobby", testFile)
	assert.Error(t, err)
}

func TestBenchmarkCommand(t *testing.T) {
	output, err := executeCommand(t, "", "benchmark", "--size", "1", "--rounds", "1")
	require.NoError(t, err)
	for _, b := range sha1block.Backends() {
		assert.Contains(t, output, b.Name)
	}

	_, err = executeCommand(t, "", "benchmark", "--size", "0")
	assert.Error(t, err)
}

func TestBenchmarkCommandBackend(t *testing.T) {
	output, err := executeCommand(t, "", "benchmark", "--size", "1", "--rounds", "1", "--backend", "generic")
	require.NoError(t, err)
	assert.Contains(t, output, "generic")

	_, err = executeCommand(t, "", "benchmark", "--size", "1", "--backend", "nope")
	assert.Error(t, err)

	backends, err := benchmarkBackends("all")
	require.NoError(t, err)
	assert.Len(t, backends, len(sha1block.Backends()))

	backends, err = benchmarkBackends("generic")
	require.NoError(t, err)
	require.Len(t, backends, 1)
	assert.Equal(t, "generic", backends[0].Name)
}

func TestBenchmarkBackendDefault(t *testing.T) {
	t.Setenv(backendEnv, "")
	assert.Equal(t, "all", newBenchmarkCommand().Flag("backend").DefValue)

	t.Setenv(backendEnv, "generic")
	assert.Equal(t, "generic", newBenchmarkCommand().Flag("backend").DefValue)
}

func TestRunBenchmarkAgrees(t *testing.T) {
	results, err := runBenchmark(4096, 2, sha1block.Backends())
	require.NoError(t, err)
	require.Len(t, results, len(sha1block.Backends()))
	for _, r := range results {
		assert.Equal(t, int64(8192), r.bytes)
		assert.Equal(t, results[0].sum, r.sum)
	}
}

func TestCheckHardware(t *testing.T) {
	output, err := executeCommand(t, "", "--check-hardware")
	require.NoError(t, err)
	assert.Contains(t, output, "Platform")
	assert.Contains(t, output, sha1block.Preferred().Name)
}
