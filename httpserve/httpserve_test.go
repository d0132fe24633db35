package httpserve_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/titpetric/sassgo/httpserve"
)

func TestServeHTTPCompilesScssFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.scss"), []byte(".a { color: red; }"), 0o644))

	h := httpserve.New(dir)
	req := httptest.NewRequest("GET", "/style.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, ".a {\n  color: red;\n}\n", rec.Body.String())
}

func TestServeHTTPDefaultsToIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.scss"), []byte(".b { color: blue; }"), 0o644))

	h := httpserve.New(dir)
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "color: blue;")
}

func TestServeHTTPMissingFileReturns500(t *testing.T) {
	dir := t.TempDir()
	h := httpserve.New(dir)
	req := httptest.NewRequest("GET", "/missing.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, 500, rec.Code)
}

func TestServeHTTPResolvesImports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_vars.scss"), []byte("$c: green;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.scss"), []byte("@import \"vars\";\n.c { color: $c; }"), 0o644))

	h := httpserve.New(dir)
	req := httptest.NewRequest("GET", "/main.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "color: green;")
}
