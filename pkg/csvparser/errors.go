package csvparser

import "errors"

var (
	// Error definitions
	errNilCsvStream               = errors.New("csv stream cannot be nil")
	errNoHeader                   = errors.New("csv stream has no header")
	errColumnsNotSpecified        = errors.New("key and value columns not specified")
	errKeyColumnNotSpecified      = errors.New("key column name not specified")
	errKeyColumnIndexNotSpecified = errors.New("key column index not specified")
	errValColumnNotSpecified      = errors.New("value column name not specified")
	errValColumnIndexNotSpecified = errors.New("value column index not specified")
	errColumnNamesEqual           = errors.New("key and value column names are equal")
	errColumnIndexesEqual         = errors.New("key and value column indexes are equal")
	errKeyColumnMissing           = errors.New("key column not found in CSV header")
	errValColumnMissing           = errors.New("value column not found in CSV header")
	errNilParserOrStream          = errors.New("parser or stream is nil")
)
