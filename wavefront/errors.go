package wavefront

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind uint8

// The set of supported parse error kinds.
const (
	InvalidNumber ErrorKind = iota + 1
	MalformedIndex
	IndexOutOfRange
	UnsupportedDirective
	MaterialAttributeBeforeName
	MissingRequiredValue
	TooManyValues
	InvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidNumber:
		return "invalid number"
	case MalformedIndex:
		return "malformed index"
	case IndexOutOfRange:
		return "index out of range"
	case UnsupportedDirective:
		return "unsupported directive"
	case MaterialAttributeBeforeName:
		return "material attribute before newmtl"
	case MissingRequiredValue:
		return "missing required value"
	case TooManyValues:
		return "too many values"
	case InvalidValue:
		return "invalid value"
	}
	return "unknown error"
}

// Sentinel errors that can be matched against any ParseError with errors.Is.
var (
	ErrInvalidNumber               = &ParseError{Kind: InvalidNumber}
	ErrMalformedIndex              = &ParseError{Kind: MalformedIndex}
	ErrIndexOutOfRange             = &ParseError{Kind: IndexOutOfRange}
	ErrUnsupportedDirective        = &ParseError{Kind: UnsupportedDirective}
	ErrMaterialAttributeBeforeName = &ParseError{Kind: MaterialAttributeBeforeName}
	ErrMissingRequiredValue        = &ParseError{Kind: MissingRequiredValue}
	ErrTooManyValues               = &ParseError{Kind: TooManyValues}
	ErrInvalidValue                = &ParseError{Kind: InvalidValue}
)

// A ParseError describes the first problem encountered while parsing obj or
// mtl content. Parsing stops as soon as an error is detected.
type ParseError struct {
	Kind ErrorKind

	// 1-based line number. For continued lines this is the line number
	// of the first physical line.
	Line int

	// The directive keyword being processed (e.g. "f", "Kd").
	Directive string

	// The offending token, if any.
	Token string

	// The collection an index refers to (vertex, texture, normal); only
	// set for IndexOutOfRange errors.
	Collection string

	// Optional details.
	Msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "[line %d] ", e.Line)
	}
	b.WriteString("error: ")
	b.WriteString(e.Kind.String())
	if e.Directive != "" {
		fmt.Fprintf(&b, " in %q", e.Directive)
	}
	if e.Collection != "" {
		fmt.Fprintf(&b, "; %s", e.Collection)
	}
	if e.Token != "" {
		fmt.Fprintf(&b, "; token %q", e.Token)
	}
	if e.Msg != "" {
		fmt.Fprintf(&b, "; %s", e.Msg)
	}
	return b.String()
}

// Is reports whether target is a ParseError of the same kind. This allows
// callers to use errors.Is(err, wavefront.ErrIndexOutOfRange).
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *ParseError) withCollection(collection string) *ParseError {
	e.Collection = collection
	return e
}

func newError(kind ErrorKind, ln *line, token string, msgFormat string, args ...interface{}) *ParseError {
	err := &ParseError{
		Kind:  kind,
		Token: token,
	}
	if ln != nil {
		err.Line = ln.num
		err.Directive = ln.keyword
	}
	if msgFormat != "" {
		err.Msg = fmt.Sprintf(msgFormat, args...)
	}
	return err
}
