// Package sassfmt reprints a parsed stylesheet back to Sass source
// without evaluating it, backing `sassgo fmt`. Grounded on lessgo's
// cmd/lessgo fmt subcommand (reusing the parser's tree for a round-trip
// print rather than a second formatting-oriented parser), adapted to
// print ast.Stmt/ast.Expr instead of lessgo's ast.Rule/ast.Declaration.
package sassfmt

import (
	"strconv"
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/value"
)

// Format renders ss back to Sass source text, two-space indented.
func Format(ss *ast.Stylesheet) string {
	var b strings.Builder
	printStmts(&b, ss.Stmts, 0)
	return b.String()
}

func ind(b *strings.Builder, level int) {
	b.WriteString(strings.Repeat("  ", level))
}

func printStmts(b *strings.Builder, stmts []ast.Stmt, level int) {
	for _, s := range stmts {
		printStmt(b, s, level)
	}
}

func printStmt(b *strings.Builder, s ast.Stmt, level int) {
	switch t := s.(type) {
	case ast.RuleSet:
		ind(b, level)
		b.WriteString(interpText(t.Selector))
		b.WriteString(" {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.Style:
		ind(b, level)
		b.WriteString(interpText(t.Property))
		if t.Body != nil {
			b.WriteString(" {\n")
			printStmts(b, t.Body.Stmts, level+1)
			ind(b, level)
			b.WriteString("}\n")
			return
		}
		b.WriteString(": ")
		b.WriteString(exprString(t.Value))
		if t.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	case ast.MultilineComment:
		ind(b, level)
		b.WriteString(t.Text)
		b.WriteString("\n")
	case ast.VarDecl:
		ind(b, level)
		b.WriteString("$" + t.Name + ": " + exprString(t.Value))
		if t.Default {
			b.WriteString(" !default")
		}
		if t.Global {
			b.WriteString(" !global")
		}
		b.WriteString(";\n")
	case ast.MixinDecl:
		ind(b, level)
		b.WriteString("@mixin " + t.Name + paramList(t.Params) + " {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.FunctionDecl:
		ind(b, level)
		b.WriteString("@function " + t.Name + paramList(t.Params) + " {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.ReturnStmt:
		ind(b, level)
		b.WriteString("@return " + exprString(t.Value) + ";\n")
	case ast.Include:
		ind(b, level)
		b.WriteString("@include " + t.Name + callArgsString(t.Args))
		if t.Content != nil {
			b.WriteString(" {\n")
			printStmts(b, t.Content.Stmts, level+1)
			ind(b, level)
			b.WriteString("}\n")
			return
		}
		b.WriteString(";\n")
	case ast.ContentStmt:
		ind(b, level)
		b.WriteString("@content;\n")
	case ast.If:
		for i, br := range t.Branches {
			ind(b, level)
			if i == 0 {
				b.WriteString("@if ")
			} else {
				b.WriteString("@else if ")
			}
			b.WriteString(exprString(br.Cond) + " {\n")
			printStmts(b, br.Body.Stmts, level+1)
			ind(b, level)
			b.WriteString("}\n")
		}
		if t.Else != nil {
			ind(b, level)
			b.WriteString("@else {\n")
			printStmts(b, t.Else.Stmts, level+1)
			ind(b, level)
			b.WriteString("}\n")
		}
	case ast.Each:
		ind(b, level)
		names := make([]string, len(t.Vars))
		for i, v := range t.Vars {
			names[i] = "$" + v
		}
		b.WriteString("@each " + strings.Join(names, ", ") + " in " + exprString(t.List) + " {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.For:
		ind(b, level)
		rel := "to"
		if t.Inclusive {
			rel = "through"
		}
		b.WriteString("@for $" + t.Var + " from " + exprString(t.From) + " " + rel + " " + exprString(t.To) + " {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.While:
		ind(b, level)
		b.WriteString("@while " + exprString(t.Cond) + " {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.Media:
		ind(b, level)
		b.WriteString("@media " + interpText(t.Query) + " {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.Supports:
		ind(b, level)
		b.WriteString("@supports " + interpText(t.Query) + " {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.Keyframes:
		ind(b, level)
		b.WriteString("@keyframes " + interpText(t.Name) + " {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.AtRoot:
		ind(b, level)
		b.WriteString("@at-root")
		if len(t.Selector) > 0 {
			b.WriteString(" " + interpText(t.Selector))
		}
		b.WriteString(" {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	case ast.Import:
		ind(b, level)
		quoted := make([]string, len(t.Targets))
		for i, tg := range t.Targets {
			quoted[i] = strconv.Quote(tg)
		}
		b.WriteString("@import " + strings.Join(quoted, ", ") + ";\n")
	case ast.ExtendStmt:
		ind(b, level)
		b.WriteString("@extend " + interpText(t.Target))
		if t.Optional {
			b.WriteString(" !optional")
		}
		b.WriteString(";\n")
	case ast.DebugStmt:
		ind(b, level)
		b.WriteString("@debug " + exprString(t.Value) + ";\n")
	case ast.WarnStmt:
		ind(b, level)
		b.WriteString("@warn " + exprString(t.Value) + ";\n")
	case ast.ErrorStmt:
		ind(b, level)
		b.WriteString("@error " + exprString(t.Value) + ";\n")
	case ast.GenericAtRule:
		ind(b, level)
		b.WriteString("@" + t.Name)
		if params := interpText(t.Params); params != "" {
			b.WriteString(" " + params)
		}
		if t.Body == nil {
			b.WriteString(";\n")
			return
		}
		b.WriteString(" {\n")
		printStmts(b, t.Body.Stmts, level+1)
		ind(b, level)
		b.WriteString("}\n")
	}
}

func interpText(parts []ast.InterpPart) string {
	var b strings.Builder
	for _, p := range parts {
		if p.Expr == nil {
			b.WriteString(p.Text)
			continue
		}
		b.WriteString("#{" + exprString(p.Expr) + "}")
	}
	return b.String()
}

func paramList(params []ast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		s := "$" + p.Name
		if p.IsRest {
			s += "..."
		} else if p.Default != nil {
			s += ": " + exprString(p.Default)
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func callArgsString(args ast.CallArgs) string {
	parts := make([]string, 0, len(args.Positional)+len(args.Named))
	for _, e := range args.Positional {
		parts = append(parts, exprString(e))
	}
	for _, na := range args.Named {
		parts = append(parts, "$"+na.Name+": "+exprString(na.Value))
	}
	if args.Splat != nil {
		parts = append(parts, exprString(args.Splat)+"...")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func exprString(e ast.Expr) string {
	if e == nil {
		return ""
	}
	switch t := e.(type) {
	case ast.Literal:
		return value.Inspect(t.Value)
	case ast.VarRef:
		return "$" + t.Name
	case ast.Interp:
		return "#{" + interpText(t.Parts) + "}"
	case ast.FuncCall:
		return t.Name + callArgsString(t.Args)
	case ast.ListExpr:
		parts := make([]string, len(t.Items))
		for i, it := range t.Items {
			parts[i] = exprString(it)
		}
		joiner := strings.TrimRight(t.Separator.String(), " ") + " "
		if t.Separator != value.CommaSep {
			joiner = " "
		}
		out := strings.Join(parts, joiner)
		if t.Brackets == value.Bracketed {
			return "[" + out + "]"
		}
		return out
	case ast.MapExpr:
		parts := make([]string, len(t.Entries))
		for i, en := range t.Entries {
			parts[i] = exprString(en.Key) + ": " + exprString(en.Value)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ast.BinaryExpr:
		return exprString(t.Left) + " " + t.Op.String() + " " + exprString(t.Right)
	case ast.UnaryExpr:
		return t.Op.String() + exprString(t.Operand)
	case ast.ParenExpr:
		return "(" + exprString(t.Inner) + ")"
	default:
		return ""
	}
}
