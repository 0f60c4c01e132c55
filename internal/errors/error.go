package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategorySyntax       Category = "syntax"
	CategorySemantics    Category = "semantics"
	CategoryMatching     Category = "matching"
	CategoryPrecondition Category = "precondition"
)

// Span addresses a byte range of a route pattern.
type Span struct {
	Offset int
	Length int
}

// String returns the span as "offset..end".
func (s *Span) String() string {
	if s == nil {
		return ""
	}
	if s.Length <= 1 {
		return fmt.Sprintf("offset %d", s.Offset)
	}
	return fmt.Sprintf("offset %d..%d", s.Offset, s.Offset+s.Length)
}

// Error is a structured pattern diagnostic with a code, source span, and fix
// suggestion. Pattern errors are a development-time concern: they carry the
// offending text and position so the author can fix the route definition.
type Error struct {
	// Code is a unique error identifier (e.g. "P003").
	Code string

	// Category is the error type (syntax, semantics, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Pattern is the route pattern the error addresses.
	Pattern string

	// Span is the offending byte range within Pattern.
	Span *Span

	// Suggestion is a hint on how to fix the error, often replacement text.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithSpan attaches the pattern text and the offending byte range.
func (e *Error) WithSpan(patternText string, offset, length int) *Error {
	e.Pattern = patternText
	e.Span = &Span{Offset: offset, Length: length}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}
