// Package tokenizer converts between raw CSV lines and field slices.
//
// The default dialect has a single special byte, the field delimiter: a line
// is cut at every delimiter and nothing is unescaped. The quote-aware
// variants (SplitQuoted, AppendRow with a non-zero quote) follow RFC 4180 and
// are only used when a caller opts into quoting.
package tokenizer

import "bytes"

// Split cuts line into fields at every comma byte. Empty fields are kept, so
// ",," yields three empty fields and an empty line yields one.
// The returned fields alias line; their capacity is clipped so appending to
// one field never overwrites the next.
func Split(line []byte, comma byte) [][]byte {
	fields := make([][]byte, 0, bytes.Count(line, []byte{comma})+1)
	for {
		i := bytes.IndexByte(line, comma)
		if i < 0 {
			return append(fields, line[:len(line):len(line)])
		}
		fields = append(fields, line[:i:i])
		line = line[i+1:]
	}
}

// SplitQuoted cuts line into fields like Split, but a field starting with
// quote runs to the matching closing quote and may contain commas, line
// terminators and doubled quotes. Unquoted fields alias line; quoted fields
// are copied because doubled quotes are collapsed.
func SplitQuoted(line []byte, comma, quote byte) ([][]byte, error) {
	var fields [][]byte
	pos := 0
	for {
		if pos < len(line) && line[pos] == quote {
			field, end, err := readQuoted(line, pos, comma, quote)
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
			if end >= len(line) {
				return fields, nil
			}
			pos = end + 1
			continue
		}

		rest := line[pos:]
		end := bytes.IndexByte(rest, comma)
		if end < 0 {
			end = len(rest)
		}
		if q := bytes.IndexByte(rest[:end], quote); q >= 0 {
			return nil, newParseError(line, pos+q, ErrBareQuote)
		}
		fields = append(fields, rest[:end:end])
		if pos+end >= len(line) {
			return fields, nil
		}
		pos += end + 1
	}
}

// readQuoted decodes the quoted field opening at line[start]. It returns the
// unescaped content and the offset of the byte following the closing quote,
// which is either a comma or len(line).
func readQuoted(line []byte, start int, comma, quote byte) ([]byte, int, error) {
	field := []byte{}
	i := start + 1
	for {
		j := bytes.IndexByte(line[i:], quote)
		if j < 0 {
			return nil, 0, newParseError(line, len(line), ErrUnterminatedQuote)
		}
		field = append(field, line[i:i+j]...)
		i += j + 1
		if i < len(line) && line[i] == quote {
			field = append(field, quote)
			i++
			continue
		}
		if i < len(line) && line[i] != comma {
			return nil, 0, newParseError(line, i, ErrBareQuote)
		}
		return field, i, nil
	}
}
