package packet

import (
	"errors"
	"strings"
)

// ErrorKind classifies codec failures. Kinds are comparable with errors.Is.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	EndOfBuffer
	InvalidEnumValue
	ArraySizeTooLarge
	UnexpectedDataRemaining
)

func (k ErrorKind) Error() string {
	switch k {
	case EndOfBuffer:
		return "reached end of buffer"
	case InvalidEnumValue:
		return "invalid enum value"
	case ArraySizeTooLarge:
		return "array size too large"
	case UnexpectedDataRemaining:
		return "unexpected data remaining"
	}
	return "unknown error"
}

func (k ErrorKind) String() string {
	switch k {
	case EndOfBuffer:
		return "EndOfBuffer"
	case InvalidEnumValue:
		return "InvalidEnumValue"
	case ArraySizeTooLarge:
		return "ArraySizeTooLarge"
	case UnexpectedDataRemaining:
		return "UnexpectedDataRemaining"
	}
	return "Unknown"
}

// Error is a codec failure together with the field path that led to it.
// Path is ordered innermost field first, outermost message name last.
type Error struct {
	Kind ErrorKind
	Path []string
}

func newError(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return "packet: " + e.Kind.Error()
	}
	return "packet: " + e.Kind.Error() + " (at " + strings.Join(e.Path, " → ") + ")"
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// WithContext records field as the enclosing frame of err.
// Errors that are not codec errors are returned unchanged.
func WithContext(err error, field string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.Path = append(e.Path, field)
	}
	return err
}
