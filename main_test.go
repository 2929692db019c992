package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProgram(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunBounded(t *testing.T) {
	path := writeProgram(t, "2 2\n1 1\n4 6\n1 2\n3 2\n")

	out, err := execute(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "Maximize")
	assert.Contains(t, out, "x1, x2, x3, x4 are non-negative")
	assert.Contains(t, out, "An optimal solution is: x1 = 1, x2 = 3/2, x3 = 0, x4 = 0")
	assert.Contains(t, out, "The value of the objective function is: 5/2")
	assert.Contains(t, out, "The number of pivots is: 2")
	assert.Contains(t, out, "The pivot rule used: bland")
}

func TestRunInfeasible(t *testing.T) {
	path := writeProgram(t, "1 1\n1\n-1\n1\n")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "The linear program is infeasible")
}

func TestRunUnbounded(t *testing.T) {
	path := writeProgram(t, "2 1\n1 0\n1\n-1 1\n")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "The linear program is unbounded")
}

func TestRunVerbose(t *testing.T) {
	path := writeProgram(t, "2 2\n1 1\n4 6\n1 2\n3 2\n")

	out, err := execute(t, path, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "The initial tableau is:")
	assert.Contains(t, out, "The entering variable is x1")
	assert.Contains(t, out, "The leaving variable is x4")
}

func TestRunInputFlag(t *testing.T) {
	path := writeProgram(t, "1 1\n1\n1\n3\n")

	out, err := execute(t, "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "The value of the objective function is: 1/3")
}

func TestRunEveryRule(t *testing.T) {
	path := writeProgram(t, "2 2\n1 1\n4 6\n1 2\n3 2\n")

	for _, rule := range []string{"bland", "random", "maxcoef", "maxincrease"} {
		out, err := execute(t, path, "--pivot", rule)
		require.NoError(t, err, rule)
		assert.Contains(t, out, "The value of the objective function is: 5/2", rule)
		assert.Contains(t, out, "The pivot rule used: "+rule)
	}
}

func TestRunUnknownRule(t *testing.T) {
	path := writeProgram(t, "1 1\n1\n1\n1\n")

	_, err := execute(t, path, "--pivot", "dantzig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pivot rule")
}

func TestRunMissingPath(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid path")
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
