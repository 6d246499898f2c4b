package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "rps.yaml", "lang: es\nno_color: true\nseed: 7\n")
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.NotNil(t, cfg.Lang)
	assert.Equal(t, "es", *cfg.Lang)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.Nil(t, cfg.Verbose)
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "rps.yaml", "seed: [not, a, number]\n")
	_, err := LoadFile(p)
	assert.Error(t, err)
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "rps.yaml", "lang: en\n")
	writeTemp(t, dir, ".rps.yml", "lang: es\n")
	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Lang)
	assert.Equal(t, "es", *cfg.Lang)
}

func TestLoadLocal_NoConfig(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rps"), 0o755))
	writeTemp(t, filepath.Join(dir, "rps"), "config.yml", "verbose: true\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, cfg.Verbose)
	assert.True(t, *cfg.Verbose)
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	_, err := LoadGlobal()
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".rps.yml")
	lang := "es"
	require.NoError(t, Save(p, FileConfig{Lang: &lang}))
	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Lang)
	assert.Equal(t, "es", *cfg.Lang)
	assert.Nil(t, cfg.NoColor)
}
