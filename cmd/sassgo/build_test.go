package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCmdWritesCompressedOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.scss")
	require.NoError(t, os.WriteFile(src, []byte(".a { color: red; }"), 0o644))
	out := filepath.Join(dir, "out.css")

	cmd := newBuildCmd()
	require.NoError(t, cmd.Flags().Set("output", out))
	require.NoError(t, cmd.Flags().Set("compressed", "true"))
	require.NoError(t, cmd.RunE(cmd, []string{src}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, ".a{color:red;}", string(data))
}

func TestBuildCmdReportsParseError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.scss")
	require.NoError(t, os.WriteFile(src, []byte(".a { color: "), 0o644))

	cmd := newBuildCmd()
	require.Error(t, cmd.RunE(cmd, []string{src}))
}

func TestFmtCmdWritesInPlace(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.scss")
	require.NoError(t, os.WriteFile(src, []byte(".a{color:red;}"), 0o644))

	cmd := newFmtCmd()
	require.NoError(t, cmd.Flags().Set("write", "true"))
	require.NoError(t, cmd.RunE(cmd, []string{src}))

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, ".a {\n  color: red;\n}\n", string(data))
}
