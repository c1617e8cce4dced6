package document

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound is returned by Open and Reload when the source file does not exist.
	ErrNotFound = errors.New("document: file not found")
	// ErrIO is returned when the file system fails to read or write a file.
	ErrIO = errors.New("document: i/o failure")
	// ErrOutOfRange is returned when a row index is outside [0, Len()).
	ErrOutOfRange = errors.New("document: row index out of range")
	// ErrInvalidInput is returned for malformed row payloads and options.
	ErrInvalidInput = errors.New("document: invalid input")
	// ErrClosed is returned by every operation on a closed document. It matches ErrInvalidInput.
	ErrClosed = fmt.Errorf("%w: document is closed", ErrInvalidInput)
)

// PathError records a failed file operation. It matches both its Kind
// (ErrNotFound, ErrIO or ErrInvalidInput) and the underlying cause.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("document: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{e.Kind, e.Err}
}

func classifyReadError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return ErrIO
}
