package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".sassgo.yaml")
	body := "load_paths:\n  - vendor\n  - shared\nout_dir: dist\ncompressed: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"vendor", "shared"}, cfg.LoadPaths)
	require.Equal(t, "dist", cfg.OutDir)
	require.True(t, cfg.Compressed)
}

func TestLoadInvalidYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".sassgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir: [unterminated"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestDefaultOutDir(t *testing.T) {
	require.Equal(t, ".", config.Default().OutDir)
}
