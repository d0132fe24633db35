// Package parser implements the recursive-descent statement/expression
// parser, grounded on lessgo's parser.Parser (explicit precedence ladder,
// token lookahead) and on original_source's Mixin::decl_from_tokens for
// the idea of capturing a declaration's body wholesale before
// evaluation. Since ./parser builds a full ast.Block eagerly rather than
// a raw token slice, mixin/function re-entrancy (spec.md §4.5's "replay
// the body") is achieved the equivalent way spec.md's design notes
// invite: the parsed Block is immutable and ./eval hands out a fresh
// child Scope per call rather than re-lexing text.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/titpetric/sassgo/ast"
	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/token"
	"github.com/titpetric/sassgo/value"
)

// Parser walks a flat token slice produced by ./lexer.
type Parser struct {
	toks []token.Token
	pos  int
	src  string
}

// New creates a Parser over a token stream, keeping src (the source
// file name) only for error messages.
func New(toks []token.Token, src string) *Parser {
	return &Parser{toks: toks, src: src}
}

// Parse parses an entire Stylesheet: a flat list of top-level statements.
func Parse(toks []token.Token, src string) (*ast.Stylesheet, error) {
	p := New(toks, src)
	stmts, err := p.parseStmts(true)
	if err != nil {
		return nil, err
	}
	return &ast.Stylesheet{Source: src, Stmts: stmts}, nil
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(off int) token.Token {
	i := p.pos + off
	if i >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) span() sasserr.Span {
	pos := p.cur().Pos
	return sasserr.Span{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.at(k) {
		return token.Token{}, sasserr.Parse(p.span(), "expected %s, found %s %q", k, p.cur().Kind, p.cur().Text)
	}
	return p.advance(), nil
}

// parseStmts parses statements until RBrace (nested block) or EOF (top
// level), skipping comment tokens into MultilineComment nodes.
func (p *Parser) parseStmts(topLevel bool) ([]ast.Stmt, error) {
	var out []ast.Stmt
	for {
		if p.at(token.EOF) {
			if !topLevel {
				return nil, sasserr.Parse(p.span(), "unexpected end of file, expected '}'")
			}
			return out, nil
		}
		if p.at(token.RBrace) {
			if topLevel {
				return nil, sasserr.Parse(p.span(), "unexpected '}'")
			}
			return out, nil
		}
		if p.at(token.CommentBlock) {
			t := p.advance()
			out = append(out, ast.MultilineComment{Text: t.Text, P: t.Pos})
			continue
		}
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			out = append(out, stmt)
		}
	}
}

func (p *Parser) parseBlock() (ast.Block, error) {
	if _, err := p.expect(token.LBrace); err != nil {
		return ast.Block{}, err
	}
	stmts, err := p.parseStmts(false)
	if err != nil {
		return ast.Block{}, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return ast.Block{}, err
	}
	return ast.Block{Stmts: stmts}, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.cur().Kind {
	case token.Variable:
		return p.parseVarDecl()
	case token.AtKeyword:
		return p.parseAtRule()
	default:
		return p.parseRuleOrStyle()
	}
}

func (p *Parser) parseVarDecl() (ast.Stmt, error) {
	tok := p.advance()
	name := tok.Text
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	decl := ast.VarDecl{Name: name, Value: val, P: tok.Pos}
	for p.at(token.Default) || p.at(token.Global) {
		if p.at(token.Default) {
			decl.Default = true
		} else {
			decl.Global = true
		}
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
	return decl, nil
}

// parseRuleOrStyle disambiguates a nested rule set from a property
// declaration by scanning the leading text up to the first '{', ':' or
// ';': '{' makes a rule set and ':' makes a declaration. A ':' is never
// treated as part of a selector, so a rule whose selector contains a
// pseudo-class (`&:hover { ... }`) is parsed as a declaration.
func (p *Parser) parseRuleOrStyle() (ast.Stmt, error) {
	startPos := p.cur().Pos
	text, err := p.parseInterpText(token.LBrace, token.Colon, token.Semicolon)
	if err != nil {
		return nil, err
	}
	switch p.cur().Kind {
	case token.LBrace:
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.RuleSet{Selector: text, Body: body, P: startPos}, nil
	case token.Colon:
		p.advance()
		return p.finishStyle(text, startPos)
	case token.Semicolon:
		p.advance()
		return ast.RuleSet{Selector: text, P: startPos}, nil
	default:
		return nil, sasserr.Parse(p.span(), "expected '{', ':' or ';'")
	}
}

func (p *Parser) finishStyle(prop []ast.InterpPart, startPos token.Position) (ast.Stmt, error) {
	if p.at(token.LBrace) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.Style{Property: prop, Body: &body, P: startPos}, nil
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	important := false
	if p.at(token.Important) {
		p.advance()
		important = true
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
	return ast.Style{Property: prop, Value: val, Important: important, P: startPos}, nil
}

// parseInterpText accumulates raw text (preserving the source's actual
// whitespace between tokens, via each token's byte offset, rather than
// always inserting one — otherwise ".foo" would round-trip as ". foo",
// splitting into two compound-selector parts downstream) and #{...}
// interpolation parts up to (but not consuming) one of the stop kinds,
// used for selector and property-name text which the lexer does not
// tokenize as a single unit.
func (p *Parser) parseInterpText(stop ...token.Kind) ([]ast.InterpPart, error) {
	var parts []ast.InterpPart
	var plain strings.Builder
	lastEnd := -1
	flush := func() {
		if plain.Len() > 0 {
			parts = append(parts, ast.InterpPart{Text: plain.String()})
			plain.Reset()
		}
	}
	for {
		k := p.cur().Kind
		for _, s := range stop {
			if k == s {
				flush()
				return parts, nil
			}
		}
		if k == token.EOF {
			return nil, sasserr.Parse(p.span(), "unexpected end of file")
		}
		if k == token.InterpBegin {
			p.advance()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			end, err := p.expect(token.RBrace)
			if err != nil {
				return nil, err
			}
			flush()
			parts = append(parts, ast.InterpPart{Expr: expr})
			lastEnd = end.Pos.Offset + len(end.Text)
			continue
		}
		t := p.advance()
		text := t.Text
		if t.Kind == token.Placeholder {
			text = "%" + text
		}
		if plain.Len() > 0 && lastEnd >= 0 && t.Pos.Offset > lastEnd {
			plain.WriteByte(' ')
		}
		plain.WriteString(text)
		lastEnd = t.Pos.Offset + len(text)
	}
}

// parseAtRule dispatches on the at-keyword text, matching spec.md §4.6's
// statement-evaluator dispatch table at the parse layer.
func (p *Parser) parseAtRule() (ast.Stmt, error) {
	kw := p.advance()
	switch kw.Text {
	case "mixin":
		return p.parseMixinDecl(kw.Pos)
	case "include":
		return p.parseInclude(kw.Pos)
	case "function":
		return p.parseFunctionDecl(kw.Pos)
	case "return":
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.consumeSemi()
		return ast.ReturnStmt{Value: val, P: kw.Pos}, nil
	case "content":
		p.consumeSemi()
		return ast.ContentStmt{P: kw.Pos}, nil
	case "if":
		return p.parseIf(kw.Pos)
	case "each":
		return p.parseEach(kw.Pos)
	case "for":
		return p.parseFor(kw.Pos)
	case "while":
		return p.parseWhile(kw.Pos)
	case "media":
		return p.parseQueryBlock(kw.Pos, func(q []ast.InterpPart, b ast.Block) ast.Stmt {
			return ast.Media{Query: q, Body: b, P: kw.Pos}
		})
	case "supports":
		return p.parseQueryBlock(kw.Pos, func(q []ast.InterpPart, b ast.Block) ast.Stmt {
			return ast.Supports{Query: q, Body: b, P: kw.Pos}
		})
	case "keyframes", "-webkit-keyframes", "-moz-keyframes":
		return p.parseQueryBlock(kw.Pos, func(q []ast.InterpPart, b ast.Block) ast.Stmt {
			return ast.Keyframes{Name: q, Body: b, P: kw.Pos}
		})
	case "at-root":
		return p.parseAtRoot(kw.Pos)
	case "import":
		return p.parseImport(kw.Pos)
	case "extend":
		return p.parseExtend(kw.Pos)
	case "debug":
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.consumeSemi()
		return ast.DebugStmt{Value: val, P: kw.Pos}, nil
	case "warn":
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.consumeSemi()
		return ast.WarnStmt{Value: val, P: kw.Pos}, nil
	case "error":
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.consumeSemi()
		return ast.ErrorStmt{Value: val, P: kw.Pos}, nil
	default:
		return p.parseGenericAtRule(kw)
	}
}

func (p *Parser) consumeSemi() {
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) parseQueryBlock(pos token.Position, build func([]ast.InterpPart, ast.Block) ast.Stmt) (ast.Stmt, error) {
	query, err := p.parseInterpText(token.LBrace)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return build(query, body), nil
}

func (p *Parser) parseAtRoot(pos token.Position) (ast.Stmt, error) {
	var sel []ast.InterpPart
	if !p.at(token.LBrace) {
		s, err := p.parseInterpText(token.LBrace)
		if err != nil {
			return nil, err
		}
		sel = s
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.AtRoot{Selector: sel, Body: body, P: pos}, nil
}

func (p *Parser) parseGenericAtRule(kw token.Token) (ast.Stmt, error) {
	params, err := p.parseInterpText(token.LBrace, token.Semicolon)
	if err != nil {
		return nil, err
	}
	if p.at(token.Semicolon) {
		p.advance()
		return ast.GenericAtRule{Name: kw.Text, Params: params, P: kw.Pos}, nil
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.GenericAtRule{Name: kw.Text, Params: params, Body: &body, P: kw.Pos}, nil
}

func (p *Parser) parseImport(pos token.Position) (ast.Stmt, error) {
	var targets []string
	for {
		t, err := p.expect(token.String)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t.Text)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.consumeSemi()
	return ast.Import{Targets: targets, P: pos}, nil
}

func (p *Parser) parseExtend(pos token.Position) (ast.Stmt, error) {
	target, err := p.parseInterpText(token.Semicolon, token.Important)
	if err != nil {
		return nil, err
	}
	optional := false
	if p.at(token.Important) { // "!optional" lexes as Error text; handled defensively
		p.advance()
		optional = true
	}
	p.consumeSemi()
	return ast.ExtendStmt{Target: target, Optional: optional, P: pos}, nil
}

func (p *Parser) parseMixinDecl(pos token.Position) (ast.Stmt, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	var params []ast.Param
	if p.at(token.LParen) {
		params, err = p.parseParamList()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.MixinDecl{Name: name.Text, Params: params, Body: body, P: pos}, nil
}

func (p *Parser) parseFunctionDecl(pos token.Position) (ast.Stmt, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.FunctionDecl{Name: name.Text, Params: params, Body: body, P: pos}, nil
}

func (p *Parser) parseParamList() ([]ast.Param, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.at(token.RParen) {
		if p.at(token.Ellipsis) {
			p.advance()
			break
		}
		v, err := p.expect(token.Variable)
		if err != nil {
			return nil, err
		}
		param := ast.Param{Name: v.Text}
		if p.at(token.Ellipsis) {
			p.advance()
			param.IsRest = true
		} else if p.at(token.Colon) {
			p.advance()
			def, err := p.parseTernaryLevel()
			if err != nil {
				return nil, err
			}
			param.Default = def
		}
		params = append(params, param)
		if p.at(token.Comma) {
			p.advance()
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseInclude(pos token.Position) (ast.Stmt, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	var args ast.CallArgs
	if p.at(token.LParen) {
		args, err = p.parseCallArgs()
		if err != nil {
			return nil, err
		}
	}
	var content *ast.Block
	if p.at(token.LBrace) {
		b, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		content = &b
	} else {
		p.consumeSemi()
	}
	return ast.Include{Name: name.Text, Args: args, Content: content, P: pos}, nil
}

func (p *Parser) parseIf(pos token.Position) (ast.Stmt, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := ast.If{Branches: []ast.IfBranch{{Cond: cond, Body: body}}, P: pos}
	for p.at(token.AtKeyword) && p.cur().Text == "else" {
		p.advance()
		if (p.at(token.Ident) || p.at(token.AtKeyword)) && p.cur().Text == "if" {
			p.advance()
			c2, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			b2, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Branches = append(stmt.Branches, ast.IfBranch{Cond: c2, Body: b2})
			continue
		}
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = &elseBody
		break
	}
	return stmt, nil
}

func (p *Parser) parseEach(pos token.Position) (ast.Stmt, error) {
	var vars []string
	for {
		v, err := p.expect(token.Variable)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v.Text)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if p.cur().Kind != token.Ident || p.cur().Text != "in" {
		return nil, sasserr.Parse(p.span(), "expected 'in' in @each")
	}
	p.advance()
	list, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.Each{Vars: vars, List: list, Body: body, P: pos}, nil
}

func (p *Parser) parseFor(pos token.Position) (ast.Stmt, error) {
	v, err := p.expect(token.Variable)
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.Ident || p.cur().Text != "from" {
		return nil, sasserr.Parse(p.span(), "expected 'from' in @for")
	}
	p.advance()
	from, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	inclusive := false
	if p.cur().Kind == token.Ident && p.cur().Text == "through" {
		inclusive = true
	} else if p.cur().Kind == token.Ident && p.cur().Text == "to" {
		inclusive = false
	} else {
		return nil, sasserr.Parse(p.span(), "expected 'to' or 'through' in @for")
	}
	p.advance()
	to, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.For{Var: v.Text, From: from, To: to, Inclusive: inclusive, Body: body, P: pos}, nil
}

func (p *Parser) parseWhile(pos token.Position) (ast.Stmt, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.While{Cond: cond, Body: body, P: pos}, nil
}

// ---- expressions ----

// parseExpr parses a full expression: comma list -> space list -> or ->
// and -> equality -> relational -> additive -> multiplicative -> unary
// -> primary, grounded on lessgo's parser precedence ladder.
func (p *Parser) parseExpr() (ast.Expr, error) {
	first, err := p.parseSpaceList()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Comma) {
		return first, nil
	}
	items := []ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		next, err := p.parseSpaceList()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return ast.ListExpr{Items: items, Separator: value.CommaSep}, nil
}

func (p *Parser) parseSpaceList() (ast.Expr, error) {
	first, err := p.parseTernaryLevel()
	if err != nil {
		return nil, err
	}
	if !p.startsOperand() {
		return first, nil
	}
	items := []ast.Expr{first}
	for p.startsOperand() {
		next, err := p.parseTernaryLevel()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return ast.ListExpr{Items: items, Separator: value.Space}, nil
}

// startsOperand reports whether the current token can begin another
// space-separated list item, used to decide when an implicit space list
// (e.g. "1px solid red") continues.
func (p *Parser) startsOperand() bool {
	switch p.cur().Kind {
	case token.Number, token.String, token.Color, token.Variable, token.Placeholder,
		token.Ident, token.LParen, token.InterpBegin, token.Amp:
		return true
	default:
		return false
	}
}

func (p *Parser) parseTernaryLevel() (ast.Expr, error) { return p.parseOr() }

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Ident && p.cur().Text == "or" {
		pos := p.advance().Pos
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: value.OpOr, Right: right, P: pos}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Ident && p.cur().Text == "and" {
		pos := p.advance().Pos
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: value.OpAnd, Right: right, P: pos}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.at(token.Eq) || p.at(token.Ne) {
		op := value.OpEq
		if p.at(token.Ne) {
			op = value.OpNe
		}
		pos := p.advance().Pos
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: op, Right: right, P: pos}
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op value.Op
		switch p.cur().Kind {
		case token.Gt:
			op = value.OpGt
		case token.Ge:
			op = value.OpGe
		case token.Lt:
			op = value.OpLt
		case token.Le:
			op = value.OpLe
		default:
			return left, nil
		}
		pos := p.advance().Pos
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: op, Right: right, P: pos}
	}
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.at(token.Plus) || p.at(token.Minus) {
		op := value.OpPlus
		if p.at(token.Minus) {
			op = value.OpMinus
		}
		pos := p.advance().Pos
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: op, Right: right, P: pos}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.at(token.Star) || p.at(token.Slash) || p.at(token.Percent) {
		var op value.Op
		switch p.cur().Kind {
		case token.Star:
			op = value.OpMul
		case token.Slash:
			op = value.OpDiv
		case token.Percent:
			op = value.OpRem
		}
		pos := p.advance().Pos
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Op: op, Right: right, P: pos}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.cur().Kind == token.Ident && p.cur().Text == "not" {
		pos := p.advance().Pos
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryExpr{Op: value.OpNot, Operand: operand, P: pos}, nil
	}
	if p.at(token.Plus) || p.at(token.Minus) {
		op := value.OpPlus
		if p.at(token.Minus) {
			op = value.OpMinus
		}
		pos := p.advance().Pos
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryExpr{Op: op, Operand: operand, P: pos}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	t := p.cur()
	switch t.Kind {
	case token.Number:
		p.advance()
		return p.numberLiteral(t)
	case token.String:
		p.advance()
		qk := value.DoubleQuote
		if t.Quote == token.Single {
			qk = value.SingleQuote
		}
		return ast.Literal{Value: value.Ident{Text: t.Text, Quote: qk}, P: t.Pos}, nil
	case token.Color:
		p.advance()
		c, err := parseHexColor(t.Text)
		if err != nil {
			return nil, sasserr.Parse(sasserr.Span{Line: t.Pos.Line, Column: t.Pos.Column, Offset: t.Pos.Offset}, "%s", err)
		}
		return ast.Literal{Value: value.ColorValue{Color: c}, P: t.Pos}, nil
	case token.Variable:
		p.advance()
		return ast.VarRef{Name: t.Text, P: t.Pos}, nil
	case token.Amp:
		p.advance()
		return ast.Literal{Value: value.Bare("&")}, nil
	case token.InterpBegin:
		return p.parseInterpExpr()
	case token.LParen:
		return p.parseParenOrMap()
	case token.LBracket:
		return p.parseBracketList()
	case token.Ident:
		return p.parseIdentOrCall()
	default:
		return nil, sasserr.Parse(p.span(), "unexpected token %s %q", t.Kind, t.Text)
	}
}

func (p *Parser) numberLiteral(t token.Token) (ast.Expr, error) {
	text := t.Text
	unit := ""
	i := 0
	for i < len(text) && (text[i] == '-' || text[i] == '.' || (text[i] >= '0' && text[i] <= '9')) {
		i++
	}
	numPart := text[:i]
	unit = text[i:]
	if strings.HasSuffix(numPart, "%") {
		numPart = strings.TrimSuffix(numPart, "%")
		unit = "%"
	}
	if unit == "%" {
		n, ok := value.NewNumberString(numPart)
		if !ok {
			return nil, sasserr.Parse(sasserr.Span{}, "invalid number %q", text)
		}
		return ast.Literal{Value: value.Dim(n, value.NewUnit("%")), P: t.Pos}, nil
	}
	n, ok := value.NewNumberString(numPart)
	if !ok {
		return nil, sasserr.Parse(sasserr.Span{}, "invalid number %q", text)
	}
	return ast.Literal{Value: value.Dim(n, value.NewUnit(unit)), P: t.Pos}, nil
}

func (p *Parser) parseInterpExpr() (ast.Expr, error) {
	pos := p.advance().Pos // consume #{
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return ast.Interp{Parts: []ast.InterpPart{{Expr: expr}}, P: pos}, nil
}

func (p *Parser) parseParenOrMap() (ast.Expr, error) {
	pos := p.advance().Pos // (
	if p.at(token.RParen) {
		p.advance()
		return ast.ListExpr{Items: nil, Separator: value.Space, P: pos}, nil
	}
	first, err := p.parseSpaceList()
	if err != nil {
		return nil, err
	}
	if p.at(token.Colon) {
		p.advance()
		firstVal, err := p.parseSpaceList()
		if err != nil {
			return nil, err
		}
		entries := []ast.MapEntryExpr{{Key: first, Value: firstVal}}
		for p.at(token.Comma) {
			p.advance()
			k, err := p.parseSpaceList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			v, err := p.parseSpaceList()
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.MapEntryExpr{Key: k, Value: v})
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.MapExpr{Entries: entries, P: pos}, nil
	}
	if p.at(token.Comma) {
		items := []ast.Expr{first}
		for p.at(token.Comma) {
			p.advance()
			next, err := p.parseSpaceList()
			if err != nil {
				return nil, err
			}
			items = append(items, next)
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.ListExpr{Items: items, Separator: value.CommaSep, P: pos}, nil
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.ParenExpr{Inner: first, P: pos}, nil
}

func (p *Parser) parseBracketList() (ast.Expr, error) {
	pos := p.advance().Pos // [
	if p.at(token.RBracket) {
		p.advance()
		return ast.ListExpr{Brackets: value.Bracketed, Separator: value.Space, P: pos}, nil
	}
	items := []ast.Expr{}
	sep := value.Space
	first, err := p.parseSpaceList()
	if err != nil {
		return nil, err
	}
	items = append(items, first)
	if p.at(token.Comma) {
		sep = value.CommaSep
		for p.at(token.Comma) {
			p.advance()
			next, err := p.parseSpaceList()
			if err != nil {
				return nil, err
			}
			items = append(items, next)
		}
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return ast.ListExpr{Items: items, Separator: sep, Brackets: value.Bracketed, P: pos}, nil
}

func (p *Parser) parseIdentOrCall() (ast.Expr, error) {
	t := p.advance()
	if p.at(token.LParen) {
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return ast.FuncCall{Name: t.Text, Args: args, P: t.Pos}, nil
	}
	switch strings.ToLower(t.Text) {
	case "true":
		return ast.Literal{Value: value.True, P: t.Pos}, nil
	case "false":
		return ast.Literal{Value: value.False, P: t.Pos}, nil
	case "null":
		return ast.Literal{Value: value.Null, P: t.Pos}, nil
	}
	return ast.Literal{Value: value.Bare(t.Text), P: t.Pos}, nil
}

func (p *Parser) parseCallArgs() (ast.CallArgs, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return ast.CallArgs{}, err
	}
	var args ast.CallArgs
	for !p.at(token.RParen) {
		if p.at(token.Variable) && p.peekAt(1).Kind == token.Colon {
			name := p.advance().Text
			p.advance() // :
			val, err := p.parseTernaryLevel()
			if err != nil {
				return ast.CallArgs{}, err
			}
			args.Named = append(args.Named, ast.NamedArg{Name: name, Value: val})
		} else {
			val, err := p.parseTernaryLevel()
			if err != nil {
				return ast.CallArgs{}, err
			}
			if p.at(token.Ellipsis) {
				p.advance()
				args.Splat = val
			} else {
				args.Positional = append(args.Positional, val)
			}
		}
		if p.at(token.Comma) {
			p.advance()
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return ast.CallArgs{}, err
	}
	return args, nil
}

func parseHexColor(hex string) (value.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	expand := func(c byte) string { return string([]byte{c, c}) }
	var r, g, b string
	a := "ff"
	switch len(hex) {
	case 3:
		r, g, b = expand(hex[0]), expand(hex[1]), expand(hex[2])
	case 4:
		r, g, b, a = expand(hex[0]), expand(hex[1]), expand(hex[2]), expand(hex[3])
	case 6:
		r, g, b = hex[0:2], hex[2:4], hex[4:6]
	case 8:
		r, g, b, a = hex[0:2], hex[2:4], hex[4:6], hex[6:8]
	default:
		return value.Color{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	rv, err1 := strconv.ParseUint(r, 16, 8)
	gv, err2 := strconv.ParseUint(g, 16, 8)
	bv, err3 := strconv.ParseUint(b, 16, 8)
	av, err4 := strconv.ParseUint(a, 16, 8)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return value.Color{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	c := value.RGBA(uint8(rv), uint8(gv), uint8(bv), float64(av)/255)
	return c.WithRaw("#" + hex), nil
}
