package streams

import (
	"context"
	"errors"
	"io"

	iface "csvdoc/pkg/api/streams"
	apiTable "csvdoc/pkg/api/table"
)

var errNilTable = errors.New("streams: table cannot be nil")

type tableStream struct {
	table  apiTable.Table
	header []string
	next   int
}

var _ iface.CsvStream = (*tableStream)(nil)

// NewCsvStream creates a CSV stream over the rows of table.
// The first row is taken as the header immediately; an empty table yields io.EOF.
func NewCsvStream(table apiTable.Table) (iface.CsvStream, error) {
	if table == nil {
		return nil, errNilTable
	}
	if table.Len() == 0 {
		return nil, io.EOF
	}

	header, err := table.Record(0)
	if err != nil {
		return nil, err
	}

	return &tableStream{
		table:  table,
		header: header,
		next:   1,
	}, nil
}

// ReadCsvRecord implements CsvStream.
func (s *tableStream) ReadCsvRecord(ctx context.Context) ([]string, error) {
	if s == nil || s.table == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if s.next >= s.table.Len() {
		return nil, io.EOF
	}
	record, err := s.table.Record(s.next)
	if err != nil {
		return nil, err
	}
	s.next++
	return record, nil
}

// GetHeader implements CsvStream.
func (s *tableStream) GetHeader() []string {
	if s == nil {
		return nil
	}
	return s.header
}
