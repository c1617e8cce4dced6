package table

// Table is a read-only, indexable view of CSV rows.
type Table interface {
	// Len returns the number of rows.
	Len() int

	// Record returns a copy of the fields of the row at index.
	Record(index int) ([]string, error)
}
