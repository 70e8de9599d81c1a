package mdconv

import "fmt"

// ErrorKind classifies conversion failures.
type ErrorKind int

const (
	// UnsupportedFormat indicates the input's format could not be
	// determined or has no converter.
	UnsupportedFormat ErrorKind = iota + 1
	// MalformedInput indicates invalid structured-data syntax.
	MalformedInput
	// MissingContentPart indicates a word-processing container without
	// the expected document body.
	MissingContentPart
	// EmptyResult indicates a conversion that succeeded syntactically but
	// produced no renderable content.
	EmptyResult
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case UnsupportedFormat:
		return "unsupported format"
	case MalformedInput:
		return "malformed input"
	case MissingContentPart:
		return "missing content part"
	case EmptyResult:
		return "empty result"
	default:
		return "unknown error"
	}
}

// ConversionError is a classified per-file conversion failure. The batch
// dispatcher consumes these to synthesize error documents; they never
// abort a batch.
type ConversionError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Kind)
}

// Unwrap returns the underlying cause, if any.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// newError builds a ConversionError for the named source.
func newError(kind ErrorKind, source string, err error) *ConversionError {
	return &ConversionError{Kind: kind, Source: source, Err: err}
}
