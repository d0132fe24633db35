// Package sasserr defines the structured error kinds raised across the
// evaluator. Every error carries a primary span and, where the source is
// known, a secondary "declared here" span. There is no local recovery: the
// first error aborts the compilation.
package sasserr

import "fmt"

// Kind identifies the category of failure.
type Kind string

const (
	ParseErr    Kind = "ParseError"
	TypeErr     Kind = "TypeError"
	UnitErr     Kind = "UnitError"
	NameErr     Kind = "NameError"
	ArityErr    Kind = "ArityError"
	SemanticErr Kind = "SemanticError"
)

// Span is a source location; Line/Column are 1-based, Offset is a byte offset.
type Span struct {
	Line   int
	Column int
	Offset int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Error is the structured error type raised by every stage of the pipeline.
type Error struct {
	Kind      Kind
	Message   string
	Primary   Span
	Secondary *Span // optional "declared here" location
}

func (e *Error) Error() string {
	if e.Secondary != nil {
		return fmt.Sprintf("%s at %s: %s (declared at %s)", e.Kind, e.Primary, e.Message, *e.Secondary)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Primary, e.Message)
}

// New constructs an Error with no secondary span.
func New(kind Kind, at Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Primary: at, Message: fmt.Sprintf(format, args...)}
}

// WithDeclared attaches a secondary "declared here" span to an error.
func (e *Error) WithDeclared(at Span) *Error {
	e.Secondary = &at
	return e
}

// Parse, Type, Unit, Name, Arity, Semantic are convenience constructors.
func Parse(at Span, format string, args ...any) *Error    { return New(ParseErr, at, format, args...) }
func Type(at Span, format string, args ...any) *Error     { return New(TypeErr, at, format, args...) }
func Unit(at Span, format string, args ...any) *Error     { return New(UnitErr, at, format, args...) }
func Name(at Span, format string, args ...any) *Error     { return New(NameErr, at, format, args...) }
func Arity(at Span, format string, args ...any) *Error    { return New(ArityErr, at, format, args...) }
func Semantic(at Span, format string, args ...any) *Error { return New(SemanticErr, at, format, args...) }
