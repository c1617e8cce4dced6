package document

import (
	"fmt"
	"log/slog"

	apiStorage "csvdoc/pkg/api/storage"
	"csvdoc/pkg/tokenizer"

	"golang.org/x/text/encoding"
)

// Option configures a Document at Open time.
type Option func(*Document) error

// WithComma sets the field delimiter. Default is ','.
func WithComma(comma byte) Option {
	return func(d *Document) error {
		if comma == 0 || comma == '\n' || comma == '\r' {
			return fmt.Errorf("%w: delimiter %q", ErrInvalidInput, comma)
		}
		d.comma = comma
		return nil
	}
}

// WithQuotes enables RFC 4180 quoting with the given quote byte, applied both
// when rows are parsed and when the document is written.
func WithQuotes(quote byte) Option {
	return func(d *Document) error {
		if quote == 0 || quote == '\n' || quote == '\r' {
			return fmt.Errorf("%w: quote %q", ErrInvalidInput, quote)
		}
		d.quote = quote
		return nil
	}
}

// WithNewline fixes the line terminator used by Write instead of detecting
// it from the first line of the file. Only "\n" and "\r\n" are accepted.
func WithNewline(newline string) Option {
	return func(d *Document) error {
		if newline != tokenizer.LF && newline != tokenizer.CRLF {
			return fmt.Errorf("%w: line terminator %q", ErrInvalidInput, newline)
		}
		d.newline = newline
		d.newlineSet = true
		return nil
	}
}

// WithTrailingNewline fixes whether Write terminates the last row instead of
// mirroring the source file.
func WithTrailingNewline(trailing bool) Option {
	return func(d *Document) error {
		d.trailing = trailing
		d.trailingSet = true
		return nil
	}
}

// WithFileSystem replaces the local disk as the source and target of whole-file reads and writes.
func WithFileSystem(fsys apiStorage.FileSystem) Option {
	return func(d *Document) error {
		if fsys == nil {
			return fmt.Errorf("%w: nil file system", ErrInvalidInput)
		}
		d.fsys = fsys
		return nil
	}
}

// WithEncoding transcodes file content from enc on load and back to enc on write.
func WithEncoding(enc encoding.Encoding) Option {
	return func(d *Document) error {
		d.enc = enc
		return nil
	}
}

// WithLogger sets the logger used for debug output. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidInput)
		}
		d.log = logger
		return nil
	}
}
