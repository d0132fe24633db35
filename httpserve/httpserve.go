// Package httpserve serves compiled stylesheets over HTTP, compiling on
// every request (no caching layer — spec.md's non-goals exclude
// incremental recompilation, so there is nothing to invalidate). Grounded
// on the CLI-adjacent dev-server pattern used across the example pack
// (a net/http.Handler wrapping a compile function) rather than any one
// teacher file, since lessgo itself is a pure CLI with no server mode.
package httpserve

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/titpetric/sassgo/builtin"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/eval"
	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/lexer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/token"
)

// Handler serves *.scss files from Root, compiling them to CSS on each
// request and rewriting the request's extension to .scss before looking
// the file up, so `<link href="/style.css">` resolves to `style.scss`.
type Handler struct {
	Root      string
	LoadPaths []string
}

// New creates a Handler rooted at dir, with dir itself as the default
// load path for @import resolution.
func New(dir string) *Handler {
	return &Handler{Root: dir, LoadPaths: []string{dir}}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqPath := strings.TrimPrefix(r.URL.Path, "/")
	if reqPath == "" {
		reqPath = "index.css"
	}
	scssPath := filepath.Join(h.Root, strings.TrimSuffix(reqPath, filepath.Ext(reqPath))+".scss")

	text, err := h.compile(scssPath)
	if err != nil {
		log.Printf("httpserve: %s: %s", scssPath, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(text))
}

func (h *Handler) compile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	toks, err := lexer.Lex(string(src))
	if err != nil {
		return "", err
	}
	ss, err := parser.Parse(toks, path)
	if err != nil {
		return "", err
	}
	imp := importer.New(h.LoadPaths...)
	out, err := eval.New(builtin.NewRegistry(), imp, discardLogger{}).Run(ss)
	if err != nil {
		return "", err
	}
	return css.Serialize(out, css.Options{}), nil
}

type discardLogger struct{}

func (discardLogger) Debug(token.Position, string) {}
func (discardLogger) Warn(token.Position, string)  {}
