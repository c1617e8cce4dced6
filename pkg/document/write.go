package document

import (
	"fmt"
	"io"
	"log/slog"

	"csvdoc/pkg/tokenizer"
)

var _ io.WriterTo = (*Document)(nil)

// Write renders the current rows and replaces the file at path with them.
// The cursor position has no effect. Failures match ErrIO.
func (d *Document) Write(path string) error {
	if d == nil || d.closed {
		return ErrClosed
	}
	data := d.Bytes()
	if err := d.fsys.WriteFile(path, data); err != nil {
		return &PathError{Op: "write", Path: path, Kind: ErrIO, Err: err}
	}
	d.log.Debug("csv document written",
		slog.String("path", path),
		slog.Int("rows", len(d.rows)),
		slog.Int("bytes", len(data)))
	return nil
}

// WriteTo implements io.WriterTo. The output is what Write would store, before any transcoding.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d == nil || d.closed {
		return 0, ErrClosed
	}
	n, err := w.Write(d.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrIO, err)
	}
	return int64(n), nil
}

// Bytes renders the current rows: fields joined by the delimiter, rows
// joined by the line terminator, plus a final terminator when the source
// file had one. A closed document renders as nil.
func (d *Document) Bytes() []byte {
	if d == nil || d.closed {
		return nil
	}
	buf := make([]byte, 0, len(d.buf)+64)
	for i, row := range d.rows {
		if i > 0 {
			buf = append(buf, d.newline...)
		}
		buf = d.appendRow(buf, row)
	}
	if d.trailing && len(d.rows) > 0 {
		buf = append(buf, d.newline...)
	}
	return buf
}

func (d *Document) appendRow(dst []byte, row rowData) []byte {
	return tokenizer.AppendRow(dst, row, d.comma, d.quote)
}
