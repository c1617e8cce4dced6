package csvparser

import (
	"context"
	"io"
	"log/slog"

	attr "csvdoc/pkg/api/attribute"
	apiGroupify "csvdoc/pkg/api/groupify"
	apiParser "csvdoc/pkg/api/parsers"
	apiStreams "csvdoc/pkg/api/streams"
	"csvdoc/pkg/numeric"
)

var (
	_ attr.KeyedAttribute            = (*keyedValue)(nil)
	_ apiParser.KeyedAttributeParser = (*columnParser)(nil)
)

// keyedValue is one key/value pair read from a CSV record
type keyedValue struct {
	key   string
	value attr.NumericAttribute
}

// Key implements attribute.KeyedAttribute.
func (k keyedValue) Key() string {
	return k.key
}

// Value implements attribute.KeyedAttribute.
func (k keyedValue) Value() attr.NumericAttribute {
	return k.value
}

// EqualTo implements attribute.KeyedAttribute.
func (k keyedValue) EqualTo(other attr.KeyedAttribute) bool {
	if other == nil || k.key != other.Key() {
		return false
	}
	return k.value.EqualTo(other.Value())
}

// columnParser reads a key column and a numeric value column from a CSV stream
type columnParser struct {
	stream        apiStreams.CsvStream
	keyIdx        int
	valIdx        int
	useFloats     bool
	normalizeKeys bool
}

// NewColumnParser creates a parser over stream. One of WithColNames or
// WithColIndexes must select the key and value columns.
func NewColumnParser(stream apiStreams.CsvStream, opts ...ParserOption) (apiParser.KeyedAttributeParser, error) {
	if stream == nil {
		return nil, errNilCsvStream
	}
	p := &columnParser{
		stream: stream,
		keyIdx: -1,
		valIdx: -1,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.keyIdx < 0 || p.valIdx < 0 {
		return nil, errColumnsNotSpecified
	}
	return p, nil
}

// ParseAttributes implements parsers.KeyedAttributeParser.
// Records too short to hold both columns and values that do not parse as
// numbers are skipped with a warning.
func (p *columnParser) ParseAttributes(ctx context.Context, out chan<- attr.KeyedAttribute) error {
	if p == nil || p.stream == nil {
		close(out)
		return errNilParserOrStream
	}
	defer close(out)

	kind := attr.Decimal
	if p.useFloats {
		kind = attr.Float
	}

	for line := 1; ; line++ {
		record, err := p.stream.ReadCsvRecord(ctx)
		if err == io.EOF {
			slog.DebugContext(ctx, "End of CSV stream", slog.Int("records", line-1))
			return nil
		}
		if err != nil {
			return err
		}

		if len(record) <= p.keyIdx || len(record) <= p.valIdx {
			slog.WarnContext(ctx, "Skipping short record", slog.Int("record", line), slog.Int("fields", len(record)))
			continue
		}

		raw := record[p.valIdx]
		value, err := numeric.Parse(kind, raw)
		if err != nil {
			slog.WarnContext(ctx, "Failed to parse value", slog.Int("record", line), slog.String("value", raw), slog.Any("error", err))
			continue
		}

		key := record[p.keyIdx]
		if p.normalizeKeys {
			key = apiGroupify.ParseGroupKey(key).String()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- keyedValue{key: key, value: value}:
		}
	}
}
