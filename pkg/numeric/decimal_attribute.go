package numeric

import (
	attr "csvdoc/pkg/api/attribute"

	apd "github.com/cockroachdb/apd/v3"
)

var (
	_ attr.NumericAttribute = (*decimalAttribute)(nil)
	_ DecimalValue          = (*decimalAttribute)(nil)
)

type decimalAttribute struct {
	value apd.Decimal
}

type DecimalValue interface {
	// GetDecimal returns the decimal value
	GetDecimal() *apd.Decimal
}

// GetDecimal implements DecimalValue.
func (d *decimalAttribute) GetDecimal() *apd.Decimal {
	return &d.value
}

// GetNumericType implements attribute.NumericAttribute.
func (d *decimalAttribute) GetNumericType() attr.NumericType {
	return attr.Decimal
}

// String implements attribute.NumericAttribute.
func (d *decimalAttribute) String() string {
	return d.value.String()
}

// EqualTo implements attribute.NumericAttribute.
func (d *decimalAttribute) EqualTo(other attr.NumericAttribute) bool {
	dv, err := CastToDecimalAttribute(other)
	if err != nil {
		return false
	}
	return d.value.Cmp(dv.GetDecimal()) == 0
}

// NewDecimalAttribute copies value into a new decimal attribute.
func NewDecimalAttribute(value *apd.Decimal) attr.NumericAttribute {
	d := &decimalAttribute{}
	d.value.Set(value)
	return d
}

// ParseDecimalAttribute parses a CSV field such as "€ 1,000.50" as an exact decimal.
func ParseDecimalAttribute(value string) (attr.NumericAttribute, error) {
	cleaned, err := cleanNumber(value)
	if err != nil {
		return nil, err
	}
	d := &decimalAttribute{}
	if _, _, err := d.value.SetString(cleaned); err != nil {
		return nil, err
	}
	return d, nil
}

// CastToDecimalAttribute attempts to cast a NumericAttribute to a DecimalValue.
func CastToDecimalAttribute(value attr.NumericAttribute) (DecimalValue, error) {
	if value == nil || value.GetNumericType() != attr.Decimal {
		return nil, ErrInvalidType
	}
	dv, ok := value.(DecimalValue)
	if !ok {
		return nil, ErrInvalidType
	}
	return dv, nil
}
