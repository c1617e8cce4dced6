package numeric

import (
	"fmt"
	"strings"

	attr "csvdoc/pkg/api/attribute"
)

// currencyCleaner strips currency symbols, thousands separators and spaces
// that commonly decorate amounts in exported spreadsheets.
var currencyCleaner = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	",", "",
	" ", "",
)

func cleanNumber(value string) (string, error) {
	value = strings.TrimSpace(currencyCleaner.Replace(value))
	if value == "" {
		return "", ErrEmptyValue
	}
	return value, nil
}

// Parse converts a raw CSV field into a numeric attribute of the given type.
func Parse(kind attr.NumericType, value string) (attr.NumericAttribute, error) {
	switch kind {
	case attr.Decimal:
		return ParseDecimalAttribute(value)
	case attr.Float:
		return ParseFloatAttribute(value)
	default:
		return nil, fmt.Errorf("%w: cannot parse into %s", ErrInvalidType, kind)
	}
}
