package eval

import (
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/builtin"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/token"
	"github.com/titpetric/sassgo/value"
)

// evalExpr resolves an ast.Expr down to a value.Value within c: variables
// are looked up, calls are dispatched, and arithmetic/comparison nodes
// are translated into their lazy value.BinaryOp/UnaryOp form (left
// unevaluated, per spec.md §4.1 — callers needing a concrete result call
// value.Eval on what comes back).
func (ev *Evaluator) evalExpr(c ctx, e ast.Expr) (value.Value, error) {
	switch t := e.(type) {
	case ast.Literal:
		return t.Value, nil
	case ast.VarRef:
		v, ok := c.sc.Lookup(t.Name)
		if !ok {
			return nil, sasserr.Name(toExprSpan(t.P), "Undefined variable: \"$%s\".", t.Name)
		}
		return v, nil
	case ast.Interp:
		s, err := ev.resolveInterp(c, t.Parts)
		if err != nil {
			return nil, err
		}
		return value.Bare(s), nil
	case ast.FuncCall:
		return ev.evalFuncCall(c, t)
	case ast.ListExpr:
		items := make([]value.Value, len(t.Items))
		for i, it := range t.Items {
			v, err := ev.evalExpr(c, it)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return value.List{Items: items, Separator: t.Separator, Brackets: t.Brackets}, nil
	case ast.MapExpr:
		entries := make([]value.MapEntry, len(t.Entries))
		for i, en := range t.Entries {
			k, err := ev.evalExpr(c, en.Key)
			if err != nil {
				return nil, err
			}
			v, err := ev.evalExpr(c, en.Value)
			if err != nil {
				return nil, err
			}
			entries[i] = value.MapEntry{Key: k, Value: v}
		}
		return value.MapValue{Entries: entries}, nil
	case ast.BinaryExpr:
		l, err := ev.evalExpr(c, t.Left)
		if err != nil {
			return nil, err
		}
		r, err := ev.evalExpr(c, t.Right)
		if err != nil {
			return nil, err
		}
		return value.BinaryOp{Left: l, Op: t.Op, Right: r}, nil
	case ast.UnaryExpr:
		v, err := ev.evalExpr(c, t.Operand)
		if err != nil {
			return nil, err
		}
		return value.UnaryOp{Op: t.Op, Val: v}, nil
	case ast.ParenExpr:
		v, err := ev.evalExpr(c, t.Inner)
		if err != nil {
			return nil, err
		}
		return value.Paren{Inner: v}, nil
	default:
		return nil, sasserr.Semantic(sasserr.Span{}, "eval: unhandled expression %T", e)
	}
}

// resolveInterp joins a selector/property/value's interpolated text parts
// into a plain string, evaluating and stringifying each embedded
// expression via value.Display (spec.md §4.1's interpolation rule).
func (ev *Evaluator) resolveInterp(c ctx, parts []ast.InterpPart) (string, error) {
	var b strings.Builder
	for _, p := range parts {
		if p.Expr == nil {
			b.WriteString(p.Text)
			continue
		}
		v, err := ev.evalExpr(c, p.Expr)
		if err != nil {
			return "", err
		}
		resolved, err := value.Eval(v)
		if err != nil {
			return "", err
		}
		b.WriteString(value.Display(resolved))
	}
	return b.String(), nil
}

// evalFuncCall dispatches a call in this order: scope-dependent meta
// forms (need c.sc, so can't live in ./builtin), then user @function
// definitions in scope, then the native registry — matching lessgo's
// evaluateFunction precedence of user detached rulesets before builtins.
func (ev *Evaluator) evalFuncCall(c ctx, t ast.FuncCall) (value.Value, error) {
	name := strings.ReplaceAll(t.Name, "_", "-")

	if v, handled, err := ev.evalMetaCall(c, name, t); handled {
		return v, err
	}

	if fd, ok := c.sc.LookupFunction(name); ok {
		fn, ok := fd.(*Function)
		if !ok {
			return nil, sasserr.Name(toExprSpan(t.P), "%q is not callable as a function.", name)
		}
		return ev.evalCallFunction(c, fn, t.Args, t.P)
	}

	if ev.Builtins != nil {
		if fn, ok := ev.Builtins.Lookup(name); ok {
			args, err := ev.evalBuiltinArgs(c, t.Args)
			if err != nil {
				return nil, err
			}
			v, err := fn(args)
			if err != nil {
				return nil, sasserr.Semantic(toExprSpan(t.P), "%s", err)
			}
			return v, nil
		}
	}

	// An unrecognized name is treated as a plain CSS function call
	// (e.g. `calc(...)`, `url(...)`, vendor functions) passed through
	// verbatim, per spec.md's plain-CSS-passthrough rule.
	return ev.passthroughCall(c, t)
}

func (ev *Evaluator) evalBuiltinArgs(c ctx, args ast.CallArgs) (builtin.Args, error) {
	var out builtin.Args
	for _, e := range args.Positional {
		v, err := ev.evalExpr(c, e)
		if err != nil {
			return out, err
		}
		out.Positional = append(out.Positional, v)
	}
	if len(args.Named) > 0 {
		out.Named = map[string]value.Value{}
		for _, na := range args.Named {
			v, err := ev.evalExpr(c, na.Value)
			if err != nil {
				return out, err
			}
			out.Named[na.Name] = v
		}
	}
	return out, nil
}

func (ev *Evaluator) passthroughCall(c ctx, t ast.FuncCall) (value.Value, error) {
	parts := make([]string, 0, len(t.Args.Positional))
	for _, e := range t.Args.Positional {
		v, err := ev.evalExpr(c, e)
		if err != nil {
			return nil, err
		}
		resolved, err := value.Eval(v)
		if err != nil {
			return nil, err
		}
		parts = append(parts, value.Display(resolved))
	}
	for _, na := range t.Args.Named {
		v, err := ev.evalExpr(c, na.Value)
		if err != nil {
			return nil, err
		}
		resolved, err := value.Eval(v)
		if err != nil {
			return nil, err
		}
		parts = append(parts, na.Name+": "+value.Display(resolved))
	}
	return value.Bare(t.Name + "(" + strings.Join(parts, ", ") + ")"), nil
}

// evalMetaCall handles the handful of builtins that need scope access:
// variable-exists(), global-variable-exists(), mixin-exists(),
// function-exists(), get-function(), call(), and if() (which must stay
// lazy — only the taken branch is evaluated).
func (ev *Evaluator) evalMetaCall(c ctx, name string, t ast.FuncCall) (value.Value, bool, error) {
	switch name {
	case "if":
		if len(t.Args.Positional) < 2 {
			return nil, true, sasserr.Arity(toExprSpan(t.P), "if() requires at least 2 arguments")
		}
		cond, err := ev.evalExpr(c, t.Args.Positional[0])
		if err != nil {
			return nil, true, err
		}
		truthy, err := value.IsTrue(cond)
		if err != nil {
			return nil, true, err
		}
		if truthy {
			v, err := ev.evalExpr(c, t.Args.Positional[1])
			return v, true, err
		}
		if len(t.Args.Positional) > 2 {
			v, err := ev.evalExpr(c, t.Args.Positional[2])
			return v, true, err
		}
		return value.Null, true, nil
	case "variable-exists":
		n, err := ev.identArg(c, t)
		if err != nil {
			return nil, true, err
		}
		return value.Bool(c.sc.VariableExists(n)), true, nil
	case "global-variable-exists":
		n, err := ev.identArg(c, t)
		if err != nil {
			return nil, true, err
		}
		return value.Bool(c.sc.GlobalVariableExists(n)), true, nil
	case "mixin-exists":
		n, err := ev.identArg(c, t)
		if err != nil {
			return nil, true, err
		}
		return value.Bool(c.sc.MixinExists(n)), true, nil
	case "function-exists":
		n, err := ev.identArg(c, t)
		if err != nil {
			return nil, true, err
		}
		_, userDefined := c.sc.LookupFunction(n)
		builtinDefined := false
		if ev.Builtins != nil {
			_, builtinDefined = ev.Builtins.Lookup(n)
		}
		return value.Bool(userDefined || builtinDefined), true, nil
	case "get-function":
		n, err := ev.identArg(c, t)
		if err != nil {
			return nil, true, err
		}
		fd, ok := c.sc.LookupFunction(n)
		if !ok {
			return nil, true, sasserr.Name(toExprSpan(t.P), "Function not found: %q", n)
		}
		fn, ok := fd.(*Function)
		if !ok {
			return nil, true, sasserr.Name(toExprSpan(t.P), "%q is not a function", n)
		}
		return value.FunctionValue{Fn: fn}, true, nil
	case "call":
		v, err := ev.evalCall(c, t)
		return v, true, err
	default:
		return nil, false, nil
	}
}

func (ev *Evaluator) identArg(c ctx, t ast.FuncCall) (string, error) {
	if len(t.Args.Positional) == 0 {
		return "", sasserr.Arity(toExprSpan(t.P), "missing argument")
	}
	v, err := ev.evalExpr(c, t.Args.Positional[0])
	if err != nil {
		return "", err
	}
	ev2, err := value.Eval(v)
	if err != nil {
		return "", err
	}
	id, ok := ev2.(value.Ident)
	if !ok {
		return "", sasserr.Type(toExprSpan(t.P), "%s is not a string", value.Inspect(ev2))
	}
	return id.Text, nil
}

// evalCall implements Sass's call(function, args...): dynamically invokes
// a FunctionValue (from get-function()) with the remaining arguments.
func (ev *Evaluator) evalCall(c ctx, t ast.FuncCall) (value.Value, error) {
	if len(t.Args.Positional) == 0 {
		return nil, sasserr.Arity(toExprSpan(t.P), "call() requires a function argument")
	}
	fv, err := ev.evalExpr(c, t.Args.Positional[0])
	if err != nil {
		return nil, err
	}
	resolved, err := value.Eval(fv)
	if err != nil {
		return nil, err
	}
	fnVal, ok := resolved.(value.FunctionValue)
	if !ok {
		return nil, sasserr.Type(toExprSpan(t.P), "%s is not a function", value.Inspect(resolved))
	}
	fn, ok := fnVal.Fn.(*Function)
	if !ok {
		return nil, sasserr.Type(toExprSpan(t.P), "%q is not callable", fnVal.Fn.CallableName())
	}
	rest := ast.CallArgs{Positional: t.Args.Positional[1:], Named: t.Args.Named, Splat: t.Args.Splat}
	return ev.evalCallFunction(c, fn, rest, t.P)
}

func toExprSpan(p token.Position) sasserr.Span {
	return sasserr.Span{Line: p.Line, Column: p.Column, Offset: p.Offset}
}
