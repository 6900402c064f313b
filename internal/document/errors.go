package document

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the input path is not an existing regular file
	ErrNotFound = errors.New("not found")
	// ErrUnsupported indicates an unrecognized file extension
	ErrUnsupported = errors.New("unsupported")
)

// NotFoundError reports an input path that does not reference a regular file.
type NotFoundError struct {
	Path string
	Err  error // underlying stat error, if any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// UnsupportedFormatError reports a file extension that is neither kml nor gpx.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q for %s", e.Ext, e.Path)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupported
}
