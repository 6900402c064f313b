package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the sentinel behind every ParseError.
	ErrParse = errors.New("parse error")
	// ErrMissingField is the sentinel behind every MissingFieldError.
	ErrMissingField = errors.New("missing field")
)

// ParseError reports malformed markup.
type ParseError struct {
	Source string // file name, when known
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("failed to parse XML: %v", e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// MissingFieldError reports access to a tag that is absent, or that repeats
// where a single child was required.
type MissingFieldError struct {
	Field    string
	Repeated bool
}

func (e *MissingFieldError) Error() string {
	if e.Repeated {
		return fmt.Sprintf("field <%s> repeats where one was expected", e.Field)
	}
	return fmt.Sprintf("field <%s> not found", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
