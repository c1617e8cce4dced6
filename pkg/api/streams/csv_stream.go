package streams

import "context"

// CsvStream represents a stream of CSV records.
type CsvStream interface {
	// ReadCsvRecord reads the next CSV record from the stream.
	// Returns io.EOF once no records remain.
	ReadCsvRecord(ctx context.Context) ([]string, error)

	// GetHeader returns the header row of the CSV file.
	// This is the first row with column names.
	GetHeader() []string
}
