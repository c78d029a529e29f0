// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partree/internal/config"
)

const squareGraph = `4
A
B
C
D
A B 1
B C 2
C D 3
A D 10
`

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs, stdout, stderr bytes.Buffer

	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSolve_Text(t *testing.T) {
	path := writeTemp(t, "square.txt", squareGraph)

	stdout, stderr, err := execute(t, "solve", path)
	require.NoError(t, err)

	assert.Equal(t, "A B 1\nB C 2\nC D 3\n", stdout)
	assert.Contains(t, stderr, "spanning tree")
	assert.Contains(t, stderr, "6")
}

func TestSolve_QuietDOT(t *testing.T) {
	path := writeTemp(t, "square.txt", squareGraph)

	stdout, stderr, err := execute(t, "solve", path, "--format", "dot", "--quiet", "--hide-unused")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "graph \"G\" {"))
	assert.Equal(t, 3, strings.Count(stdout, " -- "))
	assert.Empty(t, stderr)
}

func TestSolve_ConfigFileAndOutput(t *testing.T) {
	graphPath := writeTemp(t, "forest.txt", "3\nA\nB\nC\nA B 5\n")
	out := filepath.Join(t.TempDir(), "arcs.txt")
	cfgPath := writeTemp(t, "partree.toml", "path_compression = true\noutput = \""+filepath.ToSlash(out)+"\"\n")

	stdout, stderr, err := execute(t, "solve", graphPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "2 trees")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "A B 5\n", string(got))
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve")
	assert.Error(t, err, "missing argument")

	_, _, err = execute(t, "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeTemp(t, "bad.txt", "2\nA\nB\nA B heavy\n")
	_, _, err = execute(t, "solve", bad)
	assert.ErrorContains(t, err, "bad weight")

	good := writeTemp(t, "square.txt", squareGraph)
	_, _, err = execute(t, "solve", good, "--format", "png")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "partree v1.2.3\ncommit: abc123\nbuilt: 2026-01-01\n", stdout)
}

func TestVerboseLogsMerges(t *testing.T) {
	path := writeTemp(t, "square.txt", squareGraph)

	var logs, stdout bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"solve", path, "-v"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Contains(t, logs.String(), "merged")
	assert.Contains(t, logs.String(), "run=")
	assert.Regexp(t, `INFO computed spanning forest .*arcs=3 weight=6 elapsed=\S+`, logs.String())
}

func TestGenerate_Path(t *testing.T) {
	stdout, _, err := execute(t, "generate", "path", "3", "--ids", "excel", "--min-weight", "4", "--max-weight", "4")
	require.NoError(t, err)
	assert.Equal(t, "3\nA\nB\nC\nA B 4\nB C 4\n", stdout)
}

func TestGenerate_WideWeightRange(t *testing.T) {
	stdout, _, err := execute(t, "generate", "path", "2", "--min-weight=-4611686018427387904", "--max-weight=4611686018427387903")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "2\n0\n1\n0 1 "))
}

func TestGenerate_ThenSolve(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.txt")
	_, _, err := execute(t, "generate", "grid", "3", "4", "-o", out, "--seed", "9", "--max-weight", "20")
	require.NoError(t, err)

	stdout, _, err := execute(t, "solve", out, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, 11, strings.Count(stdout, "\n"), "12 vertices give 11 arcs")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown topology", []string{"generate", "hypercube", "3"}},
		{"bad size", []string{"generate", "path", "three"}},
		{"missing columns", []string{"generate", "grid", "3"}},
		{"bad probability", []string{"generate", "sparse", "5", "often"}},
		{"too small", []string{"generate", "cycle", "2"}},
		{"inverted weights", []string{"generate", "path", "3", "--min-weight", "5", "--max-weight", "2"}},
		{"unknown ids", []string{"generate", "path", "3", "--ids", "roman"}},
		{"overflowing weights", []string{"generate", "path", "3", "--min-weight=-9223372036854775807", "--max-weight=9223372036854775807"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}
