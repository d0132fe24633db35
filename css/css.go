// Package css defines the evaluated CSS statement tree and serializes it
// to text. Grounded on lessgo's Renderer output/indent bookkeeping
// (a bytes.Buffer with a tracked indent level) but walking a flat
// []Stmt tree produced by ./eval instead of an *ast.Rule tree, since by
// the time ./eval hands statements here all selectors/values are fully
// resolved strings (spec.md §6's serializer contract).
package css

import (
	"bytes"
	"fmt"

	"github.com/titpetric/sassgo/internal/strbuild"
)

// Stmt is one emitted CSS statement.
type Stmt interface{ isCSSStmt() }

// Rule is a selector plus its declarations. Nested is a generic
// serializer capability (a Rule can itself contain further Stmts,
// printed inside its own braces); ./eval never populates it for
// ordinary nested Sass rules, which it flattens to siblings instead,
// since CSS itself has no real rule nesting.
type Rule struct {
	Selector string
	Decls    []Decl
	Nested   []Stmt
}

func (Rule) isCSSStmt() {}

// Decl is one `property: value [!important];` line.
type Decl struct {
	Property  string
	Value     string
	Important bool
}

// AtRule is a bubbled/hoisted at-rule (`@media`, `@supports`,
// `@keyframes`, `@font-face`, ...): a prelude string and a nested body.
type AtRule struct {
	Prelude string
	Body    []Stmt
}

func (AtRule) isCSSStmt() {}

// Comment is a preserved `/* ... */` block comment.
type Comment struct{ Text string }

func (Comment) isCSSStmt() {}

// Options controls serialization style.
type Options struct {
	Compressed bool
}

// Serialize renders a statement tree to CSS text.
func Serialize(stmts []Stmt, opts Options) string {
	var buf bytes.Buffer
	s := &serializer{buf: &buf, opts: opts}
	s.stmts(stmts, 0)
	return buf.String()
}

type serializer struct {
	buf  *bytes.Buffer
	opts Options
}

func (s *serializer) indent(level int) string {
	if s.opts.Compressed {
		return ""
	}
	return strbuild.Indent(level)
}

func (s *serializer) stmts(stmts []Stmt, level int) {
	for _, stmt := range stmts {
		if stmtEmpty(stmt) {
			continue
		}
		switch t := stmt.(type) {
		case Rule:
			s.rule(t, level)
		case AtRule:
			s.atRule(t, level)
		case Comment:
			s.comment(t, level)
		}
	}
}

func (s *serializer) rule(r Rule, level int) {
	ind := s.indent(level)
	if len(r.Decls) == 0 && stmtsEmpty(r.Nested) {
		return
	}
	s.buf.WriteString(ind)
	s.buf.WriteString(r.Selector)
	if s.opts.Compressed {
		s.buf.WriteByte('{')
	} else {
		s.buf.WriteString(" {\n")
	}
	for _, d := range r.Decls {
		s.decl(d, level+1)
	}
	if len(r.Nested) > 0 {
		s.stmts(r.Nested, level+1)
	}
	if s.opts.Compressed {
		s.buf.WriteByte('}')
	} else {
		s.buf.WriteString(ind)
		s.buf.WriteString("}\n")
	}
}

func (s *serializer) decl(d Decl, level int) {
	val := d.Value
	if d.Important {
		val += " !important"
	}
	if s.opts.Compressed {
		fmt.Fprintf(s.buf, "%s:%s;", d.Property, val)
		return
	}
	fmt.Fprintf(s.buf, "%s%s: %s;\n", s.indent(level), d.Property, val)
}

// stmtEmpty reports whether a single statement would serialize to
// nothing: a rule with no declarations and no non-empty nested content,
// or an at-rule whose body is itself empty. `@media (min-width: 2px) {}`
// has no CSS meaning and must not be emitted.
func stmtEmpty(st Stmt) bool {
	switch t := st.(type) {
	case Rule:
		return len(t.Decls) == 0 && stmtsEmpty(t.Nested)
	case AtRule:
		return stmtsEmpty(t.Body)
	default:
		return false
	}
}

func stmtsEmpty(stmts []Stmt) bool {
	for _, st := range stmts {
		if !stmtEmpty(st) {
			return false
		}
	}
	return true
}

func (s *serializer) atRule(a AtRule, level int) {
	if stmtsEmpty(a.Body) {
		return
	}
	ind := s.indent(level)
	s.buf.WriteString(ind)
	s.buf.WriteString(a.Prelude)
	if s.opts.Compressed {
		s.buf.WriteByte('{')
	} else {
		s.buf.WriteString(" {\n")
	}
	s.stmts(a.Body, level+1)
	if s.opts.Compressed {
		s.buf.WriteByte('}')
	} else {
		s.buf.WriteString(ind)
		s.buf.WriteString("}\n")
	}
}

func (s *serializer) comment(c Comment, level int) {
	if s.opts.Compressed {
		return
	}
	s.buf.WriteString(s.indent(level))
	s.buf.WriteString(c.Text)
	s.buf.WriteByte('\n')
}
