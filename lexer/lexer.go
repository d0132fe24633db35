// Package lexer implements the hand-rolled rune scanner that turns Sass
// source text into a []token.Token stream, grounded on lessgo's
// parser.Lexer (parser/lexer.go) but retargeted at Sass's lexical
// surface: "$name" variables instead of "@name", the full Sass at-
// keyword set, "#{...}"-only interpolation (no "@{...}" form), and
// "%placeholder" selectors.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/titpetric/sassgo/sasserr"
	"github.com/titpetric/sassgo/token"
)

// Lexer scans a single source file into tokens.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int
	start  int
}

// New creates a Lexer over source text.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Lex tokenizes the entire input, returning a stream terminated by a
// single token.EOF token. It returns an error for an unterminated string,
// an unknown `!` flag, a lone '=' and an unexpected character; everything
// else lexes permissively and lets the parser report structural errors
// with better context.
func Lex(input string) ([]token.Token, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) pposition() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

func (l *Lexer) errSpan() sasserr.Span {
	return sasserr.Span{Line: l.line, Column: l.column, Offset: l.pos}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) peekAt(off int) rune {
	p := l.pos
	for i := 0; i < off; i++ {
		if p >= len(l.input) {
			return 0
		}
		_, w := utf8.DecodeRuneInString(l.input[p:])
		p += w
	}
	if p >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[p:])
	return r
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) make(kind token.Kind, startPos token.Position) token.Token {
	return token.Token{Kind: kind, Text: l.input[l.start:l.pos], Pos: startPos}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isLetter(r rune) bool {
	return r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= utf8.RuneSelf
}

func isIdentStart(r rune) bool {
	return (r == '_') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= utf8.RuneSelf
}

func isIdentCont(r rune) bool { return isIdentStart(r) || isDigit(r) || r == '-' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\n' || l.peek() == '\r':
			l.advance()
		case l.peek() == '/' && l.peekAt(1) == '/':
			for l.peek() != '\n' && l.peek() != 0 {
				l.advance()
			}
		case l.peek() == '/' && l.peekAt(1) == '*':
			// Block comments are surfaced as tokens (MultilineComment
			// preserves them in output), so stop skipping here and let
			// next() produce a CommentBlock token instead.
			return
		default:
			return
		}
	}
}

func (l *Lexer) next() (token.Token, error) {
	l.skipWhitespaceAndComments()
	l.start = l.pos
	startPos := l.pposition()

	r := l.peek()
	if r == 0 {
		return token.Token{Kind: token.EOF, Pos: startPos}, nil
	}

	switch {
	case r == '/' && l.peekAt(1) == '*':
		return l.readBlockComment(startPos)
	case r == '$':
		return l.readVariable(startPos)
	case r == '%':
		return l.readPlaceholderOrPercent(startPos)
	case r == '@':
		return l.readAtKeyword(startPos)
	case r == '#' && l.peekAt(1) == '{':
		l.advance()
		l.advance()
		return l.make(token.InterpBegin, startPos), nil
	case r == '#' && isHexDigit(l.peekAt(1)):
		if tok, ok := l.tryReadColor(startPos); ok {
			return tok, nil
		}
		l.advance()
		return l.make(token.Error, startPos), nil
	case r == '"' || r == '\'':
		return l.readString(startPos)
	case isDigit(r) || (r == '.' && isDigit(l.peekAt(1))):
		return l.readNumber(startPos)
	case r == '-' && (isDigit(l.peekAt(1)) || (l.peekAt(1) == '.' && isDigit(l.peekAt(2)))):
		l.advance()
		return l.readNumber(startPos)
	case isIdentStart(r):
		return l.readIdentifier(startPos)
	case r == '!':
		return l.readBang(startPos)
	default:
		return l.readSymbol(startPos)
	}
}

func (l *Lexer) readBlockComment(startPos token.Position) (token.Token, error) {
	l.advance()
	l.advance()
	for {
		if l.peek() == 0 {
			break
		}
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
	return l.make(token.CommentBlock, startPos), nil
}

func (l *Lexer) readVariable(startPos token.Position) (token.Token, error) {
	l.advance() // $
	for isIdentCont(l.peek()) {
		l.advance()
	}
	tok := l.make(token.Variable, startPos)
	tok.Text = strings.TrimPrefix(tok.Text, "$")
	return tok, nil
}

func (l *Lexer) readPlaceholderOrPercent(startPos token.Position) (token.Token, error) {
	if isIdentStart(l.peekAt(1)) {
		l.advance() // %
		for isIdentCont(l.peek()) {
			l.advance()
		}
		tok := l.make(token.Placeholder, startPos)
		tok.Text = strings.TrimPrefix(tok.Text, "%")
		return tok, nil
	}
	l.advance()
	return l.make(token.Percent, startPos), nil
}

// readAtKeyword accepts any @word and defers validation of the keyword
// set (@mixin, @if, @media, ...) to the parser, which is better placed
// to report "unknown at-rule" with the full statement context.
func (l *Lexer) readAtKeyword(startPos token.Position) (token.Token, error) {
	l.advance() // @
	for isIdentCont(l.peek()) {
		l.advance()
	}
	tok := l.make(token.AtKeyword, startPos)
	tok.Text = strings.TrimPrefix(tok.Text, "@")
	return tok, nil
}

func (l *Lexer) readBang(startPos token.Position) (token.Token, error) {
	l.advance() // !
	for isIdentCont(l.peek()) {
		l.advance()
	}
	text := strings.TrimPrefix(l.input[l.start:l.pos], "!")
	switch text {
	case "important":
		return token.Token{Kind: token.Important, Text: text, Pos: startPos}, nil
	case "default":
		return token.Token{Kind: token.Default, Text: text, Pos: startPos}, nil
	case "global":
		return token.Token{Kind: token.Global, Text: text, Pos: startPos}, nil
	default:
		if l.peek() == '=' {
			l.advance()
			return token.Token{Kind: token.Ne, Text: "!=", Pos: startPos}, nil
		}
		return token.Token{Kind: token.Error, Text: "!" + text, Pos: startPos}, sasserr.Parse(l.errSpan(), "unexpected flag !%s", text)
	}
}

func (l *Lexer) readString(startPos token.Position) (token.Token, error) {
	quote := l.advance()
	var b strings.Builder
	for {
		r := l.peek()
		if r == 0 {
			return token.Token{}, sasserr.Parse(l.errSpan(), "unterminated string literal")
		}
		if r == quote {
			l.advance()
			break
		}
		if r == '\\' {
			l.advance()
			esc := l.advance()
			b.WriteRune(esc)
			continue
		}
		b.WriteRune(l.advance())
	}
	q := token.Double
	if quote == '\'' {
		q = token.Single
	}
	return token.Token{Kind: token.String, Text: b.String(), Pos: startPos, Quote: q}, nil
}

func (l *Lexer) readNumber(startPos token.Position) (token.Token, error) {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	// optional unit suffix or trailing %
	if l.peek() == '%' {
		l.advance()
	} else {
		for isLetter(l.peek()) && l.peek() != 0 {
			l.advance()
		}
	}
	return l.make(token.Number, startPos), nil
}

func (l *Lexer) tryReadColor(startPos token.Position) (token.Token, bool) {
	save := *l
	l.advance() // #
	n := 0
	for isHexDigit(l.peek()) {
		l.advance()
		n++
	}
	if n == 3 || n == 4 || n == 6 || n == 8 {
		return l.make(token.Color, startPos), true
	}
	*l = save
	return token.Token{}, false
}

// readIdentifier scans a bare identifier/keyword. "and"/"or"/"not" stay
// Ident tokens; the parser recognizes them by text at the point it's
// expecting a binary/unary operator rather than the lexer special-casing
// them, since they're also valid property/selector words.
func (l *Lexer) readIdentifier(startPos token.Position) (token.Token, error) {
	for isIdentCont(l.peek()) {
		l.advance()
	}
	tok := l.make(token.Ident, startPos)
	return tok, nil
}

func (l *Lexer) readSymbol(startPos token.Position) (token.Token, error) {
	r := l.advance()
	two := func(next rune, k token.Kind) (token.Token, bool) {
		if l.peek() == next {
			l.advance()
			return token.Token{Kind: k, Text: string(r) + string(next), Pos: startPos}, true
		}
		return token.Token{}, false
	}
	switch r {
	case '{':
		return token.Token{Kind: token.LBrace, Text: "{", Pos: startPos}, nil
	case '}':
		return token.Token{Kind: token.RBrace, Text: "}", Pos: startPos}, nil
	case '(':
		return token.Token{Kind: token.LParen, Text: "(", Pos: startPos}, nil
	case ')':
		return token.Token{Kind: token.RParen, Text: ")", Pos: startPos}, nil
	case '[':
		return token.Token{Kind: token.LBracket, Text: "[", Pos: startPos}, nil
	case ']':
		return token.Token{Kind: token.RBracket, Text: "]", Pos: startPos}, nil
	case ':':
		return token.Token{Kind: token.Colon, Text: ":", Pos: startPos}, nil
	case ';':
		return token.Token{Kind: token.Semicolon, Text: ";", Pos: startPos}, nil
	case ',':
		return token.Token{Kind: token.Comma, Text: ",", Pos: startPos}, nil
	case '.':
		if l.peek() == '.' && l.peekAt(1) == '.' {
			l.advance()
			l.advance()
			return token.Token{Kind: token.Ellipsis, Text: "...", Pos: startPos}, nil
		}
		return token.Token{Kind: token.Dot, Text: ".", Pos: startPos}, nil
	case '&':
		return token.Token{Kind: token.Amp, Text: "&", Pos: startPos}, nil
	case '+':
		return token.Token{Kind: token.Plus, Text: "+", Pos: startPos}, nil
	case '-':
		return token.Token{Kind: token.Minus, Text: "-", Pos: startPos}, nil
	case '*':
		return token.Token{Kind: token.Star, Text: "*", Pos: startPos}, nil
	case '/':
		return token.Token{Kind: token.Slash, Text: "/", Pos: startPos}, nil
	case '~':
		return token.Token{Kind: token.Tilde, Text: "~", Pos: startPos}, nil
	case '=':
		if tok, ok := two('=', token.Eq); ok {
			return tok, nil
		}
		return token.Token{Kind: token.Error, Text: "=", Pos: startPos}, sasserr.Parse(l.errSpan(), "unexpected '='")
	case '<':
		if tok, ok := two('=', token.Le); ok {
			return tok, nil
		}
		return token.Token{Kind: token.Lt, Text: "<", Pos: startPos}, nil
	case '>':
		if tok, ok := two('=', token.Ge); ok {
			return tok, nil
		}
		return token.Token{Kind: token.Gt, Text: ">", Pos: startPos}, nil
	default:
		return token.Token{Kind: token.Error, Text: string(r), Pos: startPos}, sasserr.Parse(l.errSpan(), "unexpected character %q", r)
	}
}
