package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInput_ScriptsAreJoinedByNewline(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(first, []byte("PLAY v1"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("STOP\n"), 0o600))

	in, interactive, closeInput, err := openInput([]string{first, second})
	require.NoError(t, err)
	defer closeInput()

	data, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.False(t, interactive)
	assert.Equal(t, "PLAY v1\nSTOP\n\n", string(data))
}

func TestOpenInput_MissingScript(t *testing.T) {
	_, _, _, err := openInput([]string{filepath.Join(t.TempDir(), "missing.txt")})

	assert.Error(t, err)
}

func TestNewRand_SeedPrecedence(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a := newRand(5, 9, logger)
	b := newRand(0, 5, logger)
	assert.Equal(t, a.Uint64(), b.Uint64(), "flag seed 5 and config seed 5 should match")

	c := newRand(5, 0, logger)
	d := newRand(6, 0, logger)
	assert.NotEqual(t, c.Uint64(), d.Uint64())
}

func TestLoadCatalog(t *testing.T) {
	lib, err := loadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, 5, lib.Len())

	path := filepath.Join(t.TempDir(), "videos.txt")
	require.NoError(t, os.WriteFile(path, []byte("Amy | v1 | #a\n"), 0o600))
	lib, err = loadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())
}
