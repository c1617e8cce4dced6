package document

import "iter"

// Cursor is a forward-only position over the rows of a Document.
// The zero value is not usable; obtain one from Document.Cursor.
type Cursor struct {
	doc *Document
	pos int
}

// Cursor returns a new cursor at the first row, independent of the
// document cursor driven by Next and Reset.
func (d *Document) Cursor() *Cursor {
	return &Cursor{doc: d}
}

// Next returns the row at the cursor and advances it. At the end, and on a
// closed document, it reports false without moving.
func (c *Cursor) Next() (*Row, bool) {
	d := c.doc
	if d == nil || d.closed || c.pos >= len(d.rows) {
		return nil, false
	}
	row := d.row(c.pos)
	c.pos++
	return row, true
}

// Reset moves the cursor back to the first row.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Pos returns the index of the row the next call to Next will return.
func (c *Cursor) Pos() int {
	return c.pos
}

// Rows iterates over all rows with a private cursor, leaving the document
// cursor where it is.
func (d *Document) Rows() iter.Seq2[int, *Row] {
	return func(yield func(int, *Row) bool) {
		c := d.Cursor()
		for {
			row, ok := c.Next()
			if !ok || !yield(row.Index(), row) {
				return
			}
		}
	}
}
