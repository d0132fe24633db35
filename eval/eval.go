// Package eval is the statement evaluator: it walks a parsed
// *ast.Stylesheet against a scope chain and produces the evaluated CSS
// statement tree consumed by ./css. Grounded on lessgo's
// renderer.Renderer (renderer/renderer.go), whose single struct mixes
// rule-collection, selector-building, and per-statement dispatch; this
// port keeps that same "one evaluator walks the whole tree" shape but
// splits nested-rule composition out to ./selector and arithmetic out to
// ./value, since lessgo inlines both directly in the renderer.
package eval

import (
	"fmt"
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/builtin"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/selector"
	"github.com/titpetric/sassgo/token"
	"github.com/titpetric/sassgo/value"
)

// Importer resolves an `@import` target to a parsed stylesheet, treated
// as an external collaborator per spec.md §6.6; ./importer implements it
// against the Sass partial-file convention.
type Importer interface {
	Import(target string, from string) (*ast.Stylesheet, error)
}

// Logger receives @debug/@warn output; the CLI wires this to stderr.
type Logger interface {
	Debug(pos token.Position, msg string)
	Warn(pos token.Position, msg string)
}

// Evaluator holds the pieces shared across one compilation: the native
// function registry, the importer, and the diagnostic sink.
type Evaluator struct {
	Builtins *builtin.Registry
	Importer Importer
	Log      Logger

	extends []extendReq
}

// extendReq is one `@extend` request: extenders' selector should be
// added wherever a rule's existing selector matches target.
type extendReq struct {
	target    string
	extenders selector.Selector
}

// New creates an Evaluator. reg may be nil (no builtins available, only
// user @function/@mixin definitions resolve), as may imp/log.
func New(reg *builtin.Registry, imp Importer, log Logger) *Evaluator {
	return &Evaluator{Builtins: reg, Importer: imp, Log: log}
}

// ctx is the evaluation context threaded through statement dispatch: the
// active scope, the selector composed so far (empty at top level), and
// three output sinks — decls (the enclosing rule's declaration list, nil
// at top level), local (where sibling rules/comments at this nesting
// level are appended), and top (the document root, where bubbled at-
// rules like @media always land, per CSS's actual nesting semantics).
type ctx struct {
	ev       *Evaluator
	sc       *scope.Scope
	sel      selector.Selector
	decls    *[]css.Decl
	local    *[]css.Stmt
	top      *[]css.Stmt
	content  *contentClosure
	fileName string
}

// contentClosure captures `@include foo { ... }`'s content block together
// with the scope it was written in, so `@content` inside the mixin body
// evaluates against the *caller's* scope (spec.md §10's resolved open
// question), not the mixin's own closure scope.
type contentClosure struct {
	block *ast.Block
	sc    *scope.Scope
}

// Run evaluates a full stylesheet and returns its CSS statement tree.
func (ev *Evaluator) Run(ss *ast.Stylesheet) ([]css.Stmt, error) {
	root := scope.New()
	var top []css.Stmt
	c := ctx{ev: ev, sc: root, local: &top, top: &top, fileName: ss.Source}
	if err := ev.evalStmts(c, ss.Stmts); err != nil {
		return nil, err
	}
	applyExtends(top, ev.extends)
	top = dropPlaceholders(top)
	return top, nil
}

func (ev *Evaluator) evalStmts(c ctx, stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := ev.evalStmt(c, s); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) evalStmt(c ctx, s ast.Stmt) error {
	switch t := s.(type) {
	case ast.VarDecl:
		return ev.evalVarDecl(c, t)
	case ast.RuleSet:
		return ev.evalRuleSet(c, t)
	case ast.Style:
		return ev.evalStyle(c, t)
	case ast.MultilineComment:
		*c.local = append(*c.local, css.Comment{Text: t.Text})
		return nil
	case ast.MixinDecl:
		c.sc.DefineMixin(&Mixin{Name: t.Name, Params: t.Params, Body: t.Body, Closure: c.sc})
		return nil
	case ast.FunctionDecl:
		c.sc.DefineFunction(&Function{Name: t.Name, Params: t.Params, Body: t.Body, Closure: c.sc})
		return nil
	case ast.Include:
		return ev.evalInclude(c, t)
	case ast.ContentStmt:
		return ev.evalContent(c, t)
	case ast.If:
		return ev.evalIf(c, t)
	case ast.Each:
		return ev.evalEach(c, t)
	case ast.For:
		return ev.evalFor(c, t)
	case ast.While:
		return ev.evalWhile(c, t)
	case ast.Media:
		return ev.evalMedia(c, t)
	case ast.Supports:
		return ev.evalSupports(c, t)
	case ast.Keyframes:
		return ev.evalKeyframes(c, t)
	case ast.AtRoot:
		return ev.evalAtRoot(c, t)
	case ast.Import:
		return ev.evalImport(c, t)
	case ast.ExtendStmt:
		return ev.evalExtend(c, t)
	case ast.DebugStmt:
		return ev.evalDebug(c, t)
	case ast.WarnStmt:
		return ev.evalWarn(c, t)
	case ast.ErrorStmt:
		return ev.evalError(c, t)
	case ast.GenericAtRule:
		return ev.evalGenericAtRule(c, t)
	case ast.ReturnStmt:
		return sasserr.Semantic(toSpan(ast.Stmt(t)), "@return is only valid inside a @function body")
	default:
		return fmt.Errorf("eval: unhandled statement %T", s)
	}
}

func (ev *Evaluator) evalVarDecl(c ctx, t ast.VarDecl) error {
	v, err := ev.evalExpr(c, t.Value)
	if err != nil {
		return err
	}
	switch {
	case t.Default:
		c.sc.SetDefault(t.Name, v)
	case t.Global:
		c.sc.SetGlobal(t.Name, v)
	default:
		c.sc.Set(t.Name, v)
	}
	return nil
}

// evalRuleSet evaluates a (possibly nested) rule. CSS has no real
// nesting, so a rule nested inside another never becomes a Nested child
// of its parent's css.Rule: it is flattened to a sibling carrying its
// full zipped selector, appended right after the parent's own rule (if
// the parent has any direct declarations of its own) at whatever level
// the parent itself is landing at, whether that's the document root or
// the body of an enclosing bubbled at-rule.
func (ev *Evaluator) evalRuleSet(c ctx, t ast.RuleSet) error {
	raw, err := ev.resolveInterp(c, t.Selector)
	if err != nil {
		return err
	}
	parsed := selector.Parse(raw)
	zipped := selector.Zip(c.sel, parsed)

	rule := &css.Rule{Selector: zipped.String()}
	var siblings []css.Stmt
	child := c
	child.sc = c.sc.Child()
	child.sel = zipped
	child.decls = &rule.Decls
	child.local = &siblings
	if err := ev.evalStmts(child, t.Body.Stmts); err != nil {
		return err
	}
	if len(rule.Decls) > 0 {
		*c.local = append(*c.local, *rule)
	}
	*c.local = append(*c.local, siblings...)
	return nil
}

func (ev *Evaluator) evalStyle(c ctx, t ast.Style) error {
	prop, err := ev.resolveInterp(c, t.Property)
	if err != nil {
		return err
	}
	if t.Body != nil {
		// Nested-property shorthand: `font: { size: 1em; weight: bold; }`
		// expands each nested Style's property to "<prop>-<nested>".
		for _, sub := range t.Body.Stmts {
			ss, ok := sub.(ast.Style)
			if !ok {
				continue
			}
			subProp, err := ev.resolveInterp(c, ss.Property)
			if err != nil {
				return err
			}
			full := prop
			if subProp != "" {
				full = prop + "-" + subProp
			}
			if ss.Value != nil {
				v, err := ev.evalExpr(c, ss.Value)
				if err != nil {
					return err
				}
				ev2, err := value.Eval(v)
				if err != nil {
					return err
				}
				if value.IsNull(ev2) {
					continue
				}
				*c.decls = append(*c.decls, css.Decl{Property: full, Value: value.Display(ev2), Important: ss.Important})
			}
		}
		return nil
	}
	v, err := ev.evalExpr(c, t.Value)
	if err != nil {
		return err
	}
	resolved, err := value.Eval(v)
	if err != nil {
		return err
	}
	if value.IsNull(resolved) {
		return nil
	}
	if c.decls == nil {
		return sasserr.Semantic(toSpan(ast.Stmt(t)), "declarations must be nested inside a style rule")
	}
	*c.decls = append(*c.decls, css.Decl{Property: prop, Value: value.Display(resolved), Important: t.Important})
	return nil
}

func (ev *Evaluator) evalIf(c ctx, t ast.If) error {
	for _, b := range t.Branches {
		v, err := ev.evalExpr(c, b.Cond)
		if err != nil {
			return err
		}
		truthy, err := value.IsTrue(v)
		if err != nil {
			return err
		}
		if truthy {
			child := c
			child.sc = c.sc.Child()
			return ev.evalStmts(child, b.Body.Stmts)
		}
	}
	if t.Else != nil {
		child := c
		child.sc = c.sc.Child()
		return ev.evalStmts(child, t.Else.Stmts)
	}
	return nil
}

func (ev *Evaluator) evalEach(c ctx, t ast.Each) error {
	listVal, err := ev.evalExpr(c, t.List)
	if err != nil {
		return err
	}
	items, err := asIterable(listVal)
	if err != nil {
		return err
	}
	for _, item := range items {
		child := c
		child.sc = c.sc.Child()
		bindEachVars(child.sc, t.Vars, item)
		if err := ev.evalStmts(child, t.Body.Stmts); err != nil {
			return err
		}
	}
	return nil
}

// bindEachVars binds one or more loop variables per iteration: a single
// var gets the whole item; two or more destructure a List item
// positionally (Sass's `@each $a, $b in $pairs` convention).
func bindEachVars(sc *scope.Scope, vars []string, item value.Value) {
	if len(vars) == 1 {
		sc.SetLocal(vars[0], item)
		return
	}
	var parts []value.Value
	if l, ok := item.(value.List); ok {
		parts = l.Items
	} else {
		parts = []value.Value{item}
	}
	for i, name := range vars {
		if i < len(parts) {
			sc.SetLocal(name, parts[i])
		} else {
			sc.SetLocal(name, value.Null)
		}
	}
}

func asIterable(v value.Value) ([]value.Value, error) {
	ev, err := value.Eval(v)
	if err != nil {
		return nil, err
	}
	switch t := ev.(type) {
	case value.List:
		return t.Items, nil
	case value.MapValue:
		out := make([]value.Value, len(t.Entries))
		for i, e := range t.Entries {
			out[i] = value.List{Items: []value.Value{e.Key, e.Value}, Separator: value.Space}
		}
		return out, nil
	default:
		return []value.Value{ev}, nil
	}
}

func (ev *Evaluator) evalFor(c ctx, t ast.For) error {
	fromV, err := ev.evalExpr(c, t.From)
	if err != nil {
		return err
	}
	toV, err := ev.evalExpr(c, t.To)
	if err != nil {
		return err
	}
	from, err := asInt(fromV)
	if err != nil {
		return err
	}
	to, err := asInt(toV)
	if err != nil {
		return err
	}
	step := 1
	if to < from {
		step = -1
	}
	end := to
	if !t.Inclusive {
		end -= step
	}
	for i := from; (step > 0 && i <= end) || (step < 0 && i >= end); i += step {
		child := c
		child.sc = c.sc.Child()
		child.sc.SetLocal(t.Var, value.Dim(value.NewNumberInt(int64(i)), value.NoUnit))
		if err := ev.evalStmts(child, t.Body.Stmts); err != nil {
			return err
		}
	}
	return nil
}

func asInt(v value.Value) (int, error) {
	ev, err := value.Eval(v)
	if err != nil {
		return 0, err
	}
	d, ok := ev.(value.Dimension)
	if !ok {
		return 0, fmt.Errorf("%s is not a number", value.Inspect(ev))
	}
	f, _ := d.Num.Rat().Float64()
	return int(f), nil
}

func (ev *Evaluator) evalWhile(c ctx, t ast.While) error {
	for {
		v, err := ev.evalExpr(c, t.Cond)
		if err != nil {
			return err
		}
		truthy, err := value.IsTrue(v)
		if err != nil {
			return err
		}
		if !truthy {
			return nil
		}
		child := c
		child.sc = c.sc.Child()
		if err := ev.evalStmts(child, t.Body.Stmts); err != nil {
			return err
		}
	}
}

// evalMedia/evalSupports bubble their compiled body to the document root
// as a css.AtRule. Inside a rule, declarations in the at-rule body go into
// a css.Rule that reuses the currently active selector, matching CSS's
// actual `.a { @media X { decl } }` -> `@media X { .a { decl } }` nesting
// rule (spec.md §10); nested rules become siblings of that wrapper (see
// bubbleAtRule).
func (ev *Evaluator) evalMedia(c ctx, t ast.Media) error {
	q, err := ev.resolveInterp(c, t.Query)
	if err != nil {
		return err
	}
	return ev.bubbleAtRule(c, "@media "+q, t.Body.Stmts)
}

func (ev *Evaluator) evalSupports(c ctx, t ast.Supports) error {
	q, err := ev.resolveInterp(c, t.Query)
	if err != nil {
		return err
	}
	return ev.bubbleAtRule(c, "@supports "+q, t.Body.Stmts)
}

// bubbleAtRule hoists a @media/@supports body to the document root,
// wrapping it in the enclosing selector (if any) so a rule's own
// declarations still apply under the right selector. Any rule nested
// inside the at-rule's body flattens to a sibling of that wrapper
// within the at-rule, per evalRuleSet, rather than nesting inside it.
// An at-rule whose body ends up carrying nothing is dropped entirely,
// since `@media (min-width: 2px) {}` has no CSS meaning.
func (ev *Evaluator) bubbleAtRule(c ctx, prelude string, body []ast.Stmt) error {
	at := &css.AtRule{Prelude: prelude}
	child := c
	if c.sel.Complex == nil {
		// Top-level: evaluate directly into the at-rule body.
		child.decls = nil
		child.local = &at.Body
		if err := ev.evalStmts(child, body); err != nil {
			return err
		}
		if len(at.Body) == 0 {
			return nil
		}
		*c.top = append(*c.top, *at)
		return nil
	}
	rule := &css.Rule{Selector: c.sel.String()}
	var siblings []css.Stmt
	child.decls = &rule.Decls
	child.local = &siblings
	if err := ev.evalStmts(child, body); err != nil {
		return err
	}
	if len(rule.Decls) > 0 {
		at.Body = append(at.Body, *rule)
	}
	at.Body = append(at.Body, siblings...)
	if len(at.Body) == 0 {
		return nil
	}
	*c.top = append(*c.top, *at)
	return nil
}

func (ev *Evaluator) evalKeyframes(c ctx, t ast.Keyframes) error {
	name, err := ev.resolveInterp(c, t.Name)
	if err != nil {
		return err
	}
	at := css.AtRule{Prelude: "@keyframes " + name}
	child := c
	child.sel = selector.Selector{}
	child.decls = nil
	child.local = &at.Body
	if err := ev.evalStmts(child, t.Body.Stmts); err != nil {
		return err
	}
	*c.top = append(*c.top, at)
	return nil
}

func (ev *Evaluator) evalAtRoot(c ctx, t ast.AtRoot) error {
	child := c
	child.sel = selector.Selector{}
	child.decls = nil
	child.local = c.top
	if len(t.Selector) > 0 {
		raw, err := ev.resolveInterp(c, t.Selector)
		if err != nil {
			return err
		}
		return ev.evalRuleSet(child, ast.RuleSet{Selector: []ast.InterpPart{{Text: raw}}, Body: t.Body})
	}
	return ev.evalStmts(child, t.Body.Stmts)
}

func (ev *Evaluator) evalImport(c ctx, t ast.Import) error {
	if ev.Importer == nil {
		return sasserr.Semantic(toSpan(ast.Stmt(t)), "no importer configured for @import")
	}
	for _, target := range t.Targets {
		ss, err := ev.Importer.Import(target, c.fileName)
		if err != nil {
			return sasserr.Semantic(toSpan(ast.Stmt(t)), "failed to import %q: %s", target, err)
		}
		child := c
		child.fileName = ss.Source
		if err := ev.evalStmts(child, ss.Stmts); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) evalExtend(c ctx, t ast.ExtendStmt) error {
	raw, err := ev.resolveInterp(c, t.Target)
	if err != nil {
		return err
	}
	ev.extends = append(ev.extends, extendReq{target: strings.TrimSpace(raw), extenders: c.sel})
	return nil
}

func (ev *Evaluator) evalDebug(c ctx, t ast.DebugStmt) error {
	v, err := ev.evalExpr(c, t.Value)
	if err != nil {
		return err
	}
	if ev.Log != nil {
		resolved, _ := value.Eval(v)
		ev.Log.Debug(t.P, value.Inspect(resolved))
	}
	return nil
}

func (ev *Evaluator) evalWarn(c ctx, t ast.WarnStmt) error {
	v, err := ev.evalExpr(c, t.Value)
	if err != nil {
		return err
	}
	if ev.Log != nil {
		resolved, _ := value.Eval(v)
		ev.Log.Warn(t.P, value.Display(resolved))
	}
	return nil
}

func (ev *Evaluator) evalError(c ctx, t ast.ErrorStmt) error {
	v, err := ev.evalExpr(c, t.Value)
	if err != nil {
		return err
	}
	resolved, _ := value.Eval(v)
	return sasserr.Semantic(toSpan(ast.Stmt(t)), "%s", value.Display(resolved))
}

func (ev *Evaluator) evalGenericAtRule(c ctx, t ast.GenericAtRule) error {
	params, err := ev.resolveInterp(c, t.Params)
	if err != nil {
		return err
	}
	prelude := "@" + t.Name
	if params != "" {
		prelude += " " + params
	}
	if t.Body == nil {
		*c.local = append(*c.local, css.AtRule{Prelude: prelude})
		return nil
	}
	at := css.AtRule{Prelude: prelude}
	child := c
	child.local = &at.Body
	if err := ev.evalStmts(child, t.Body.Stmts); err != nil {
		return err
	}
	*c.local = append(*c.local, at)
	return nil
}

func toSpan(s ast.Stmt) sasserr.Span {
	p := stmtPos(s)
	return sasserr.Span{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// stmtPos extracts the position carried by every Stmt variant.
func stmtPos(s ast.Stmt) token.Position {
	switch t := s.(type) {
	case ast.RuleSet:
		return t.P
	case ast.Style:
		return t.P
	case ast.MultilineComment:
		return t.P
	case ast.VarDecl:
		return t.P
	case ast.MixinDecl:
		return t.P
	case ast.Include:
		return t.P
	case ast.ContentStmt:
		return t.P
	case ast.FunctionDecl:
		return t.P
	case ast.ReturnStmt:
		return t.P
	case ast.If:
		return t.P
	case ast.Each:
		return t.P
	case ast.For:
		return t.P
	case ast.While:
		return t.P
	case ast.Media:
		return t.P
	case ast.Supports:
		return t.P
	case ast.Keyframes:
		return t.P
	case ast.AtRoot:
		return t.P
	case ast.Import:
		return t.P
	case ast.ExtendStmt:
		return t.P
	case ast.DebugStmt:
		return t.P
	case ast.WarnStmt:
		return t.P
	case ast.ErrorStmt:
		return t.P
	case ast.GenericAtRule:
		return t.P
	default:
		return token.Position{}
	}
}

// dropPlaceholders removes rules whose selector is entirely made of
// placeholder (%name) complex selectors that were never matched by an
// @extend, since a placeholder never renders on its own (spec.md §10).
func dropPlaceholders(stmts []css.Stmt) []css.Stmt {
	out := make([]css.Stmt, 0, len(stmts))
	for _, s := range stmts {
		switch t := s.(type) {
		case css.Rule:
			t.Selector = stripPlaceholderSelectors(t.Selector)
			if t.Selector == "" {
				continue
			}
			t.Nested = dropPlaceholders(t.Nested)
			out = append(out, t)
		case css.AtRule:
			t.Body = dropPlaceholders(t.Body)
			out = append(out, t)
		default:
			out = append(out, s)
		}
	}
	return out
}

func stripPlaceholderSelectors(sel string) string {
	parsed := selector.Parse(sel)
	var kept []selector.ComplexSelector
	for _, cs := range parsed.Complex {
		hasPlaceholder := false
		for _, p := range cs.Parts {
			if strings.Contains(p, "%") {
				hasPlaceholder = true
				break
			}
		}
		if !hasPlaceholder {
			kept = append(kept, cs)
		}
	}
	parsed.Complex = kept
	return parsed.String()
}

// applyExtends merges every recorded @extend request into the matching
// rules across the whole tree, adapted from lessgo's renderer.
// collectExtends/renderRule (applied as a final pass rather than inline,
// since a rule can be extended by a selector that appears later in the
// source).
func applyExtends(stmts []css.Stmt, reqs []extendReq) {
	if len(reqs) == 0 {
		return
	}
	for i, s := range stmts {
		switch t := s.(type) {
		case css.Rule:
			sel := selector.Parse(t.Selector)
			for _, req := range reqs {
				if req.extenders.Complex == nil {
					continue
				}
				sel = selector.Extend(sel, req.target, req.extenders)
			}
			t.Selector = sel.String()
			applyExtends(t.Nested, reqs)
			stmts[i] = t
		case css.AtRule:
			applyExtends(t.Body, reqs)
			stmts[i] = t
		}
	}
}
