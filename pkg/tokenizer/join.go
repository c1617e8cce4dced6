package tokenizer

// AppendRow appends fields joined by comma to dst and returns the extended
// buffer. No terminator is written.
//
// With quote == 0 fields are written verbatim, which makes AppendRow the exact
// inverse of Split. Otherwise a field containing comma, quote, '\r' or '\n' is
// wrapped in quotes with inner quotes doubled, the inverse of SplitQuoted.
func AppendRow(dst []byte, fields [][]byte, comma, quote byte) []byte {
	for i, field := range fields {
		if i > 0 {
			dst = append(dst, comma)
		}
		if quote == 0 || !fieldNeedsQuote(field, comma, quote) {
			dst = append(dst, field...)
			continue
		}
		dst = append(dst, quote)
		for _, b := range field {
			if b == quote {
				dst = append(dst, quote)
			}
			dst = append(dst, b)
		}
		dst = append(dst, quote)
	}
	return dst
}

func fieldNeedsQuote(field []byte, comma, quote byte) bool {
	for _, b := range field {
		switch b {
		case quote, comma, '\n', '\r':
			return true
		}
	}
	return false
}
