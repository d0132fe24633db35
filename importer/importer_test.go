package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/importer"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolvePrefersPartialOverPlain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "_foo.scss", "$x: 1;")
	writeFile(t, dir, "foo.scss", "$x: 2;")

	fi := importer.New()
	path, err := fi.Resolve("foo", filepath.Join(dir, "main.scss"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "_foo.scss"), path)
}

func TestResolveFallsBackToPlainFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bar.scss", "$x: 1;")

	fi := importer.New()
	path, err := fi.Resolve("bar", filepath.Join(dir, "main.scss"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "bar.scss"), path)
}

func TestResolveSearchesLoadPaths(t *testing.T) {
	dir := t.TempDir()
	shared := filepath.Join(dir, "shared")
	require.NoError(t, os.Mkdir(shared, 0o755))
	writeFile(t, shared, "_vars.scss", "$x: 1;")

	fi := importer.New(shared)
	path, err := fi.Resolve("vars", filepath.Join(dir, "main.scss"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(shared, "_vars.scss"), path)
}

func TestResolveMissingReturnsNotFoundError(t *testing.T) {
	dir := t.TempDir()
	fi := importer.New()
	_, err := fi.Resolve("missing", filepath.Join(dir, "main.scss"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "import not found: missing")
}

func TestImportParsesAndCaches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "_foo.scss", "$x: 1;")

	fi := importer.New()
	from := filepath.Join(dir, "main.scss")
	ss1, err := fi.Import("foo", from)
	require.NoError(t, err)
	require.NotNil(t, ss1)

	ss2, err := fi.Import("foo", from)
	require.NoError(t, err)
	require.Same(t, ss1, ss2)
}
