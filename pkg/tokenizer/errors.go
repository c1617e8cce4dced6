package tokenizer

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrBareQuote is returned when a quote appears inside an unquoted field
	// or directly after the closing quote of a quoted field.
	ErrBareQuote = errors.New("tokenizer: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned when a quoted field is not closed before the end of the line.
	ErrUnterminatedQuote = errors.New("tokenizer: unterminated quoted field")
)

// ParseError contains location information for quote-aware parsing errors.
// Line is 1-based within the parsed input; quoted fields may span lines.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tokenizer: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Is.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// newParseError locates offset inside data and wraps err with that position.
func newParseError(data []byte, offset int, err error) *ParseError {
	head := data[:offset]
	return &ParseError{
		Line:   1 + bytes.Count(head, []byte{'\n'}),
		Column: offset - bytes.LastIndexByte(head, '\n'),
		Err:    err,
	}
}
