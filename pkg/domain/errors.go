package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDirectory is returned when the given path is not a directory.
var ErrInvalidDirectory = errors.New("invalid directory")

// ErrNoMatchingFiles is returned when a directory holds no file with a recognized extension.
var ErrNoMatchingFiles = errors.New("no matching files")

// ErrInvalidSelection is returned for a non-numeric or out-of-range file choice.
var ErrInvalidSelection = errors.New("invalid selection")

// ErrUnsupportedFormat is returned when no decoder handles a file extension.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrMalformedDocument is matched by every MalformedDocumentError.
var ErrMalformedDocument = errors.New("malformed document")

// MalformedDocumentError reports a story file that could not be decoded.
type MalformedDocumentError struct {
	Path string
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document %q: %v", e.Path, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedDocument) hold for any MalformedDocumentError.
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}
