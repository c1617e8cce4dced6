package csvparser

import "strings"

// ParserOption configures a column parser
type ParserOption func(*columnParser) error

// WithColNames sets key and value columns by case-insensitive header lookup
func WithColNames(keyColName, valColName string) ParserOption {
	return func(p *columnParser) error {
		keyColName = strings.TrimSpace(keyColName)
		valColName = strings.TrimSpace(valColName)

		if keyColName == "" {
			return errKeyColumnNotSpecified
		}
		if valColName == "" {
			return errValColumnNotSpecified
		}
		if strings.EqualFold(keyColName, valColName) {
			return errColumnNamesEqual
		}

		header := p.stream.GetHeader()
		if len(header) == 0 {
			return errNoHeader
		}
		p.keyIdx, p.valIdx = -1, -1
		for i, col := range header {
			col = strings.TrimSpace(col)
			if p.keyIdx == -1 && strings.EqualFold(col, keyColName) {
				p.keyIdx = i
			}
			if p.valIdx == -1 && strings.EqualFold(col, valColName) {
				p.valIdx = i
			}
		}
		if p.keyIdx == -1 {
			return errKeyColumnMissing
		}
		if p.valIdx == -1 {
			return errValColumnMissing
		}
		return nil
	}
}

// WithColIndexes sets key and value column indexes directly
func WithColIndexes(keyColIdx, valColIdx int) ParserOption {
	return func(p *columnParser) error {
		if keyColIdx < 0 {
			return errKeyColumnIndexNotSpecified
		}
		if valColIdx < 0 {
			return errValColumnIndexNotSpecified
		}
		if keyColIdx == valColIdx {
			return errColumnIndexesEqual
		}
		p.keyIdx = keyColIdx
		p.valIdx = valColIdx
		return nil
	}
}

// WithDecimals forces decimal parsing (default)
func WithDecimals() ParserOption {
	return func(p *columnParser) error {
		p.useFloats = false
		return nil
	}
}

// WithFloats forces float64 parsing
func WithFloats() ParserOption {
	return func(p *columnParser) error {
		p.useFloats = true
		return nil
	}
}

// WithKeyNormalization lower-cases keys and collapses white space before grouping
func WithKeyNormalization() ParserOption {
	return func(p *columnParser) error {
		p.normalizeKeys = true
		return nil
	}
}
