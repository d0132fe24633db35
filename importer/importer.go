// Package importer resolves `@import` targets against the filesystem,
// retargeted from lessgo's renderer-side single-extension file lookup
// (renderer/renderer.go's import handling, `.less` only) to Sass's
// partial-file convention: `@import "foo"` first tries `_foo.scss`,
// then `foo.scss`, `_foo.sass`, `foo.sass`, searched across a list of
// load paths plus the importing file's own directory.
package importer

import (
	"os"
	"path/filepath"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/lexer"
	"github.com/titpetric/sassgo/parser"
)

// FileImporter implements eval.Importer by reading .scss/.sass files from
// disk, caching parsed stylesheets by resolved path so a partial
// imported from multiple places is only parsed once.
type FileImporter struct {
	LoadPaths []string
	cache     map[string]*ast.Stylesheet
}

// New creates a FileImporter that searches each of loadPaths in order,
// after the importing file's own directory.
func New(loadPaths ...string) *FileImporter {
	return &FileImporter{LoadPaths: loadPaths, cache: map[string]*ast.Stylesheet{}}
}

func (fi *FileImporter) Import(target, from string) (*ast.Stylesheet, error) {
	path, err := fi.Resolve(target, from)
	if err != nil {
		return nil, err
	}
	if ss, ok := fi.cache[path]; ok {
		return ss, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.Lex(string(src))
	if err != nil {
		return nil, err
	}
	ss, err := parser.Parse(toks, path)
	if err != nil {
		return nil, err
	}
	if fi.cache == nil {
		fi.cache = map[string]*ast.Stylesheet{}
	}
	fi.cache[path] = ss
	return ss, nil
}

// Resolve finds the on-disk file for an `@import "target"` directive,
// trying the partial (`_name`) form before the plain form in each
// candidate directory, and `.scss` before `.sass`.
func (fi *FileImporter) Resolve(target, from string) (string, error) {
	dirs := make([]string, 0, len(fi.LoadPaths)+1)
	if from != "" {
		dirs = append(dirs, filepath.Dir(from))
	}
	dirs = append(dirs, fi.LoadPaths...)

	dir, base := filepath.Split(target)
	candidates := []string{
		filepath.Join(dir, "_"+base+".scss"),
		filepath.Join(dir, base+".scss"),
		filepath.Join(dir, "_"+base+".sass"),
		filepath.Join(dir, base+".sass"),
	}
	if filepath.Ext(base) != "" {
		candidates = append([]string{target}, candidates...)
	}
	for _, d := range dirs {
		for _, cand := range candidates {
			p := filepath.Join(d, cand)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
		}
	}
	return "", &NotFoundError{Target: target}
}

// NotFoundError is returned when no candidate file exists in any search
// path.
type NotFoundError struct{ Target string }

func (e *NotFoundError) Error() string { return "import not found: " + e.Target }
