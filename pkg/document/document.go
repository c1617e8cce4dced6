// Package document holds a whole CSV file in memory as an addressable table
// of rows and fields.
//
// A Document is loaded by Open, iterated with Next/Reset (or any number of
// independent Cursors), mutated with Append and Set, and persisted with
// Write. Row handles are views: every mutating call (Append, Set, Reload,
// Close) invalidates the rows and field slices handed out before it.
//
// Line terminators: lines are split at '\n' and a preceding '\r' is dropped.
// The terminator of the first line and the presence of a final terminator
// are remembered and reproduced by Write, so a file with uniform line
// endings is written back byte for byte.
//
// A Document is not safe for concurrent use.
package document

import (
	"bytes"
	"fmt"
	"log/slog"

	apiStorage "csvdoc/pkg/api/storage"
	apiTable "csvdoc/pkg/api/table"
	"csvdoc/pkg/storage"
	"csvdoc/pkg/tokenizer"

	"golang.org/x/text/encoding"
)

var _ apiTable.Table = (*Document)(nil)

// rowData holds the fields of one row. Loaded rows alias the document
// buffer, appended and replaced rows own their bytes.
type rowData [][]byte

// Document is an in-memory CSV file.
type Document struct {
	path string
	fsys apiStorage.FileSystem
	enc  encoding.Encoding
	log  *slog.Logger

	comma       byte
	quote       byte
	newline     string
	newlineSet  bool
	trailing    bool
	trailingSet bool

	buf    []byte
	rows   []rowData
	cursor Cursor
	gen    uint64
	closed bool
}

// Open reads the file at path and splits it into rows. On failure the
// returned document is nil and the error matches ErrNotFound, ErrIO or
// ErrInvalidInput. An empty file is a document with zero rows.
func Open(path string, opts ...Option) (*Document, error) {
	d := &Document{
		path:    path,
		fsys:    storage.NewOSFileSystem(),
		log:     slog.Default(),
		comma:   ',',
		newline: tokenizer.LF,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.quote != 0 && d.quote == d.comma {
		return nil, fmt.Errorf("%w: quote and delimiter are both %q", ErrInvalidInput, d.comma)
	}
	if d.enc != nil {
		fsys, err := storage.NewEncodedFileSystem(d.fsys, d.enc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		d.fsys = fsys
	}
	d.cursor.doc = d

	if err := d.load(); err != nil {
		return nil, err
	}
	return d, nil
}

// With opens the document at path, passes it to fn and closes it on every
// exit path, including a panic in fn.
func With(path string, fn func(*Document) error, opts ...Option) (err error) {
	d, err := Open(path, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := d.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(d)
}

// load replaces the rows with the current content of d.path. The document
// is left untouched when reading or parsing fails.
func (d *Document) load() error {
	data, err := d.fsys.ReadFile(d.path)
	if err != nil {
		return &PathError{Op: "open", Path: d.path, Kind: classifyReadError(err), Err: err}
	}

	lines, terminated := tokenizer.Lines(data, d.quote)
	rows := make([]rowData, 0, len(lines))
	for i, line := range lines {
		row, err := d.split(line)
		if err != nil {
			return &PathError{Op: "open", Path: d.path, Kind: ErrInvalidInput, Err: fmt.Errorf("row %d: %w", i, err)}
		}
		rows = append(rows, row)
	}

	d.buf = data
	d.rows = rows
	if !d.newlineSet {
		d.newline = tokenizer.DetectNewline(data, d.quote)
	}
	if !d.trailingSet {
		d.trailing = terminated
	}
	d.log.Debug("csv document loaded",
		slog.String("path", d.path),
		slog.Int("rows", len(rows)),
		slog.Int("bytes", len(data)))
	return nil
}

// Reload discards all rows and reads the source file again. The document
// cursor is reset. On failure the previous rows are kept.
func (d *Document) Reload() error {
	if d == nil || d.closed {
		return ErrClosed
	}
	if err := d.load(); err != nil {
		return err
	}
	d.cursor.Reset()
	d.gen++
	return nil
}

// Close releases all rows and the read buffer. Closing twice is a no-op.
func (d *Document) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true
	d.rows = nil
	d.buf = nil
	d.gen++
	d.log.Debug("csv document closed", slog.String("path", d.path))
	return nil
}

// Err reports ErrClosed once the document has been closed. Next and Row
// accessors signal a closed document only through their end-marker; Err
// tells the two apart.
func (d *Document) Err() error {
	if d == nil || d.closed {
		return ErrClosed
	}
	return nil
}

// Path returns the path the document was loaded from.
func (d *Document) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

// Len returns the number of rows. A closed document has none.
func (d *Document) Len() int {
	if d == nil || d.closed {
		return 0
	}
	return len(d.rows)
}

// Next returns the row at the document cursor and advances it. Once every
// row has been returned it reports false on each call until Reset.
func (d *Document) Next() (*Row, bool) {
	if d == nil {
		return nil, false
	}
	return d.cursor.Next()
}

// Reset moves the document cursor back to the first row.
func (d *Document) Reset() {
	if d == nil {
		return
	}
	d.cursor.Reset()
}

// At returns the row at index without moving any cursor.
func (d *Document) At(index int) (*Row, error) {
	if d == nil || d.closed {
		return nil, ErrClosed
	}
	if err := d.checkIndex(index); err != nil {
		return nil, err
	}
	return d.row(index), nil
}

// Record implements table.Table.
func (d *Document) Record(index int) ([]string, error) {
	row, err := d.At(index)
	if err != nil {
		return nil, err
	}
	return row.Strings(), nil
}

// Append parses raw as one line and adds it as the last row. One trailing
// line terminator is ignored. The cursor does not move.
func (d *Document) Append(raw []byte) error {
	if d == nil || d.closed {
		return ErrClosed
	}
	row, err := d.parseRecord(raw)
	if err != nil {
		return err
	}
	d.rows = append(d.rows, row)
	d.gen++
	d.log.Debug("csv row appended", slog.String("path", d.path), slog.Int("index", len(d.rows)-1))
	return nil
}

// AppendString is Append for string payloads.
func (d *Document) AppendString(raw string) error {
	return d.Append([]byte(raw))
}

// Set parses raw as one line and replaces the row at index with it.
func (d *Document) Set(index int, raw []byte) error {
	if d == nil || d.closed {
		return ErrClosed
	}
	if err := d.checkIndex(index); err != nil {
		return err
	}
	row, err := d.parseRecord(raw)
	if err != nil {
		return err
	}
	d.rows[index] = row
	d.gen++
	d.log.Debug("csv row replaced", slog.String("path", d.path), slog.Int("index", index))
	return nil
}

// SetString is Set for string payloads.
func (d *Document) SetString(index int, raw string) error {
	return d.Set(index, []byte(raw))
}

func (d *Document) checkIndex(index int) error {
	if index < 0 || index >= len(d.rows) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(d.rows))
	}
	return nil
}

// parseRecord copies raw, strips one trailing terminator and splits it.
// The payload must describe exactly one line. Without quoting a final '\r'
// is rejected too, since it would merge with the terminator on write.
func (d *Document) parseRecord(raw []byte) (rowData, error) {
	line := bytes.Clone(raw)
	if line == nil {
		line = []byte{}
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = bytes.TrimSuffix(line[:n-1], []byte{'\r'})
	}

	if lines, terminated := tokenizer.Lines(line, d.quote); len(lines) > 1 || terminated {
		return nil, fmt.Errorf("%w: row payload contains a line terminator", ErrInvalidInput)
	}
	if d.quote == 0 && bytes.HasSuffix(line, []byte{'\r'}) {
		return nil, fmt.Errorf("%w: row payload ends with a carriage return", ErrInvalidInput)
	}
	row, err := d.split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return row, nil
}

func (d *Document) split(line []byte) (rowData, error) {
	if d.quote == 0 {
		return tokenizer.Split(line, d.comma), nil
	}
	return tokenizer.SplitQuoted(line, d.comma, d.quote)
}

func (d *Document) row(index int) *Row {
	return &Row{doc: d, index: index, gen: d.gen}
}
