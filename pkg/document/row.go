package document

// Row is a view of one row of a Document with its own forward-only field
// cursor. It stays valid until the next Append, Set, Reload or Close on the
// document; after that Valid reports false, Next reports the end-marker and
// the accessors behave as for an empty row.
//
// Field slices alias document memory and must not be modified.
type Row struct {
	doc   *Document
	index int
	gen   uint64
	pos   int
}

// Valid reports whether the row still reflects the document.
func (r *Row) Valid() bool {
	return r != nil && r.doc != nil && !r.doc.closed && r.gen == r.doc.gen
}

// Index returns the position of the row in the document.
func (r *Row) Index() int {
	if r == nil {
		return -1
	}
	return r.index
}

// Next returns the field at the row's field cursor and advances it. Once
// all fields have been returned, or the row has been invalidated, it
// reports false on every call.
func (r *Row) Next() ([]byte, bool) {
	fields := r.fields()
	if r == nil || r.pos >= len(fields) {
		return nil, false
	}
	field := fields[r.pos]
	r.pos++
	return field, true
}

// Len returns the number of fields.
func (r *Row) Len() int {
	return len(r.fields())
}

// Field returns the field at i without moving the field cursor.
func (r *Row) Field(i int) ([]byte, bool) {
	fields := r.fields()
	if i < 0 || i >= len(fields) {
		return nil, false
	}
	return fields[i], true
}

// Fields returns the fields of the row. The outer slice is a copy, the
// field bytes are shared with the document.
func (r *Row) Fields() [][]byte {
	fields := r.fields()
	out := make([][]byte, len(fields))
	copy(out, fields)
	return out
}

// Strings returns a copy of the fields as strings.
func (r *Row) Strings() []string {
	fields := r.fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

// String renders the row the way Write would, without a terminator.
func (r *Row) String() string {
	if !r.Valid() {
		return ""
	}
	return string(r.doc.appendRow(nil, r.doc.rows[r.index]))
}

func (r *Row) fields() rowData {
	if !r.Valid() {
		return nil
	}
	return r.doc.rows[r.index]
}
