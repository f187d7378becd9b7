package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps setup away from any config file on the host.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestSetupUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"a.obj", "b.obj"}} {
		var stderr bytes.Buffer
		cfg, session, code := setup(args, &stderr)

		assert.Equal(t, exitUsage, code)
		assert.Equal(t, 1, code)
		assert.Nil(t, cfg)
		assert.Nil(t, session)
		assert.Contains(t, stderr.String(), "Usage:")
	}
}

func TestRunUsage(t *testing.T) {
	isolate(t)
	assert.Equal(t, 1, run(nil))
}

func TestSetupLoadFailure(t *testing.T) {
	dir := isolate(t)

	var stderr bytes.Buffer
	_, session, code := setup([]string{filepath.Join(dir, "missing.obj")}, &stderr)

	assert.Equal(t, -1, code)
	assert.Nil(t, session)
}

func TestSetupBadGeometry(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nf 1 2 3\n"), 0644))

	var stderr bytes.Buffer
	_, session, code := setup([]string{path}, &stderr)

	assert.Equal(t, exitFailure, code)
	assert.Nil(t, session)
}

func TestSetupLoadsModel(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\nt 1 0 0\n"), 0644))

	var stderr bytes.Buffer
	cfg, session, code := setup([]string{path}, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, 0, code)
	require.NotNil(t, cfg)
	require.NotNil(t, session)
	assert.Equal(t, 1, session.Player().Len())
	assert.Empty(t, stderr.String())
}
