package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/recipebook/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	testutils.Chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Empty(t, cfg.Files)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "auto", cfg.Style)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipebook.yaml")
	content := "files:\n  - book.yaml\n  - extra.json\ndebug: true\nlog_format: json\naddr: \":9090\"\nstyle: dark\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"book.yaml", "extra.json"}, cfg.Files)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "dark", cfg.Style)
}

func TestLoad_DiscoversWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipebook.yaml"), []byte("addr: \":7070\"\n"), 0o644))

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestLoad_Env(t *testing.T) {
	testutils.Chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RECIPEBOOK_ADDR", ":6060")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: neon\n"), 0o644))

	_, err := Load(NewViper(), path)
	assert.ErrorContains(t, err, "unknown style")
}
