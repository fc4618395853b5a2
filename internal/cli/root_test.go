package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/oneof/internal/gen"
	"github.com/ib-77/oneof/pkg/oneof/typeset"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_Stdout(t *testing.T) {
	out, _, err := runRoot(t, "--out", "-", "--max-arity", "3", "--package", "unions")
	require.NoError(t, err)

	assert.Contains(t, out, "package unions")
	assert.Contains(t, out, "type Of2[A, B any] struct {")
	assert.Contains(t, out, "type Of3[A, B, C any] struct {")
	assert.Contains(t, out, "type Either[L, R any] struct {")
	assert.NotContains(t, out, "type Of4[")
}

func TestRoot_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "union_gen.go")

	_, stderr, err := runRoot(t, "-o", path, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote Of2..Of5")

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func Extend4[A, B, C, D, E any]")
}

func TestRoot_RejectsBadArity(t *testing.T) {
	_, _, err := runRoot(t, "--out", "-", "--max-arity", "1")
	assert.ErrorIs(t, err, gen.ErrArity)

	_, _, err = runRoot(t, "--out", "-", "--min-arity", "3")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	out, _, err := runRoot(t, "resolve", "Denied", "NotFound", "Denied", "Timeout")
	require.NoError(t, err)
	assert.Equal(t, "Of3[NotFound, Denied, Timeout].Narrow1() Either[Denied, Of2[NotFound, Timeout]]\n", out)

	_, _, err = runRoot(t, "resolve", "int", "int", "string", "int")
	assert.ErrorIs(t, err, typeset.ErrAmbiguous)

	_, _, err = runRoot(t, "resolve", "bool", "int", "string")
	assert.ErrorIs(t, err, typeset.ErrAbsent)
}

func TestRoot_Env(t *testing.T) {
	t.Setenv("ONEOFGEN_MAX_ARITY", "2")

	out, _, err := runRoot(t, "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "type Of2[A, B any] struct {")
	assert.NotContains(t, out, "type Of3[")
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "oneofgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("package: sums\nmax-arity: 3\n"), 0o644))

	out, _, err := runRoot(t, "--config", cfg, "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "package sums")
	assert.NotContains(t, out, "type Of4[")

	_, _, err = runRoot(t, "--config", filepath.Join(dir, "missing.yaml"), "--out", "-")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "oneofgen v"+Version)
}
