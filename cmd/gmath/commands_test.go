package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/gmath/internal/observability/log"
	"github.com/zeusync/gmath/internal/scenario"
)

func newRunner() *scenario.Runner {
	return scenario.NewRunner(log.Provide())
}

func TestDemoCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, demoCommand(context.Background(), &out, newRunner()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(scenario.Demo().Cases))
	assert.Equal(t, "add: (1, 0.5, 0) + (2.4, 3.9, 0) -> (3.4, 4.4, 0)", lines[0])
	assert.Equal(t, "sub: (1, 0.5, 0) - (2.4, 3.9, 0) -> (-1.4, -3.4, 0)", lines[1])
	assert.Equal(t, "cross: (1, 0.5, 0) x (2.4, 3.9, 0) -> (0, 0, 2.7)", lines[2])
	assert.Equal(t, "dot: (1, 0.5, 0) . (2.4, 3.9, 0) -> 4.35", lines[4])
	assert.Equal(t, "right scalar: (1, 0.5, 0) * 1.5 -> (1.5, 0.75, 0)", lines[7])
	assert.Equal(t, "compare (1e-17): (1, 0.5, 0) == (1, 0.5, 0) -> true", lines[len(lines)-1])
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("cases:\n  - op: dot\n    a: [1.0, 0.5]\n    b: [2.4, 3.9]\n    want: 4.35\n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("name: off\ncases:\n  - op: add\n    a: [1, 2]\n    b: [3, 4]\n    want: [4, 6, 1]\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, runCommand(context.Background(), &out, newRunner(), []string{good}))
	assert.Equal(t, "PASS good (1/1)\n", out.String())

	out.Reset()
	err := runCommand(context.Background(), &out, newRunner(), []string{good, bad})
	require.ErrorIs(t, err, errScenarioFailed)
	assert.Contains(t, out.String(), "PASS good (1/1)\n")
	assert.Contains(t, out.String(), "FAIL off (0/1)\n")
	assert.Contains(t, out.String(), "  add: (1, 2, 0) + (3, 4, 0) -> (4, 6, 0), want (4, 6, 1)\n")

	err = runCommand(context.Background(), &out, newRunner(), []string{filepath.Join(dir, "missing.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpsCommand(t *testing.T) {
	var out bytes.Buffer
	opsCommand(&out)
	assert.Contains(t, out.String(), "cross      vector\n")
	assert.Contains(t, out.String(), "dot        scalar\n")
	assert.Contains(t, out.String(), "is_zero    bool\n")
}
