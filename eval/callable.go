package eval

import (
	"fmt"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/scope"
	"github.com/titpetric/sassgo/token"
	"github.com/titpetric/sassgo/value"
)

// Mixin is a user-defined `@mixin`. It implements scope.MixinDef. The
// body is kept as an immutable *ast.Block and re-walked against a fresh
// child Scope per call rather than replayed from a token stream (as
// original_source's Rust does with a cloned token iterator) — eager
// parsing into ast.Block makes a literal token replay impossible, so
// re-entrancy is achieved structurally instead (spec.md's invited
// "equivalent strategy", recorded in DESIGN.md).
type Mixin struct {
	Name    string
	Params  []ast.Param
	Body    ast.Block
	Closure *scope.Scope
}

func (m *Mixin) MixinName() string   { return m.Name }
func (m *Mixin) CallableName() string { return m.Name }

// Function is a user-defined `@function`, grounded the same way as Mixin.
type Function struct {
	Name    string
	Params  []ast.Param
	Body    ast.Block
	Closure *scope.Scope
}

func (f *Function) FunctionName() string { return f.Name }
func (f *Function) CallableName() string { return f.Name }

func (ev *Evaluator) evalInclude(c ctx, t ast.Include) error {
	m, ok := c.sc.LookupMixin(t.Name)
	if !ok {
		return sasserr.Name(toSpan(ast.Stmt(t)), "Undefined mixin %q.", t.Name)
	}
	mx, ok := m.(*Mixin)
	if !ok {
		return sasserr.Name(toSpan(ast.Stmt(t)), "%q is not callable as a mixin.", t.Name)
	}
	callSc, err := ev.bindParams(c, mx.Params, t.Args, mx.Closure)
	if err != nil {
		return err
	}
	child := c
	child.sc = callSc
	if t.Content != nil {
		child.content = &contentClosure{block: t.Content, sc: c.sc}
	} else {
		child.content = nil
	}
	return ev.evalStmts(child, mx.Body.Stmts)
}

func (ev *Evaluator) evalContent(c ctx, t ast.ContentStmt) error {
	if c.content == nil {
		return nil
	}
	child := c
	child.sc = c.content.sc.Child()
	child.content = nil
	return ev.evalStmts(child, c.content.block.Stmts)
}

// evalCallFunction invokes a user @function, running its body until a
// @return is hit. Grounded on lessgo's evaluateFunction, generalized from
// lessgo's detached-ruleset functions to Sass's @function/@return form.
func (ev *Evaluator) evalCallFunction(c ctx, fn *Function, args ast.CallArgs, at token.Position) (value.Value, error) {
	callSc, err := ev.bindParams(c, fn.Params, args, fn.Closure)
	if err != nil {
		return nil, err
	}
	child := c
	child.sc = callSc
	child.decls = nil
	var discard []css.Stmt
	child.local = &discard
	result, err := ev.runFunctionBody(child, fn.Body.Stmts)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, sasserr.Semantic(sasserr.Span{Line: at.Line, Column: at.Column, Offset: at.Offset}, "Function %q finished without @return.", fn.Name)
	}
	return result, nil
}

func (ev *Evaluator) runFunctionBody(c ctx, stmts []ast.Stmt) (value.Value, error) {
	for _, s := range stmts {
		if ret, ok := s.(ast.ReturnStmt); ok {
			return ev.evalExpr(c, ret.Value)
		}
		if ifs, ok := s.(ast.If); ok {
			v, handled, err := ev.runFunctionIf(c, ifs)
			if err != nil {
				return nil, err
			}
			if handled {
				return v, nil
			}
			continue
		}
		if err := ev.evalStmt(c, s); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// runFunctionIf mirrors evalIf but recurses into runFunctionBody so a
// @return nested inside @if/@else branches (at any depth) of a function
// is still honored. @each/@for/@while bodies are not searched: a @return
// inside one of them reaches evalStmt and is reported as an error.
func (ev *Evaluator) runFunctionIf(c ctx, t ast.If) (value.Value, bool, error) {
	for _, b := range t.Branches {
		v, err := ev.evalExpr(c, b.Cond)
		if err != nil {
			return nil, false, err
		}
		truthy, err := value.IsTrue(v)
		if err != nil {
			return nil, false, err
		}
		if truthy {
			child := c
			child.sc = c.sc.Child()
			res, err := ev.runFunctionBody(child, b.Body.Stmts)
			return res, res != nil, err
		}
	}
	if t.Else != nil {
		child := c
		child.sc = c.sc.Child()
		res, err := ev.runFunctionBody(child, t.Else.Stmts)
		return res, res != nil, err
	}
	return nil, false, nil
}

// bindParams implements Sass's calling convention: positional arguments
// fill params left to right, named arguments bind by name, a trailing
// `...` splat expands a list/arglist as extra positional+keyword
// arguments, unfilled params take their declared default (evaluated in
// the new scope so later defaults can reference earlier params), and a
// final rest (`...`) param collects any remaining positional args into an
// ArgList carrying leftover keywords too. Grounded on lessgo's
// bindMixinArguments, generalized to Sass's named+splat grammar.
func (ev *Evaluator) bindParams(c ctx, params []ast.Param, args ast.CallArgs, closure *scope.Scope) (*scope.Scope, error) {
	positional := make([]value.Value, len(args.Positional))
	for i, e := range args.Positional {
		v, err := ev.evalExpr(c, e)
		if err != nil {
			return nil, err
		}
		positional[i] = v
	}
	named := map[string]value.Value{}
	for _, na := range args.Named {
		v, err := ev.evalExpr(c, na.Value)
		if err != nil {
			return nil, err
		}
		named[na.Name] = v
	}
	if args.Splat != nil {
		sv, err := ev.evalExpr(c, args.Splat)
		if err != nil {
			return nil, err
		}
		rv, err := value.Eval(sv)
		if err != nil {
			return nil, err
		}
		switch t := rv.(type) {
		case value.ArgList:
			positional = append(positional, t.Items...)
			for k, v := range t.Keywords {
				named[k] = v
			}
		case value.List:
			positional = append(positional, t.Items...)
		default:
			positional = append(positional, rv)
		}
	}
	return ev.bindParamsValues(c, params, positional, named, closure)
}

// bindParamsValues is bindParams' core, operating on already-evaluated
// argument values; used directly by call() for dynamic dispatch, where
// the arguments are values rather than unevaluated ast.Expr.
func (ev *Evaluator) bindParamsValues(c ctx, params []ast.Param, positional []value.Value, named map[string]value.Value, closure *scope.Scope) (*scope.Scope, error) {
	sc := closure.Child()
	used := map[string]bool{}
	pi := 0
	for _, p := range params {
		if p.IsRest {
			break
		}
		if pi < len(positional) {
			sc.SetLocal(p.Name, positional[pi])
			pi++
			used[p.Name] = true
			continue
		}
		if v, ok := named[p.Name]; ok {
			sc.SetLocal(p.Name, v)
			used[p.Name] = true
			continue
		}
		if p.Default != nil {
			callCtx := c
			callCtx.sc = sc
			v, err := ev.evalExpr(callCtx, p.Default)
			if err != nil {
				return nil, err
			}
			sc.SetLocal(p.Name, v)
			continue
		}
		return nil, fmt.Errorf("Missing argument $%s.", p.Name)
	}
	if len(params) > 0 && params[len(params)-1].IsRest {
		rest := params[len(params)-1]
		var items []value.Value
		if pi < len(positional) {
			items = append(items, positional[pi:]...)
		}
		kw := map[string]value.Value{}
		for k, v := range named {
			if !used[k] {
				kw[k] = v
			}
		}
		sc.SetLocal(rest.Name, value.ArgList{Items: items, Keywords: kw})
	}
	return sc, nil
}
