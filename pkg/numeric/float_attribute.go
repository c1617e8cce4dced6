package numeric

import (
	"math"
	"strconv"

	attr "csvdoc/pkg/api/attribute"
)

const epsilon = 1e-6

var (
	_ attr.NumericAttribute = (*floatAttribute)(nil)
	_ FloatValue            = (*floatAttribute)(nil)
)

type floatAttribute struct {
	value float64
}

type FloatValue interface {
	// GetFloat returns the float64 value
	GetFloat() float64
}

// GetFloat implements FloatValue.
func (f *floatAttribute) GetFloat() float64 {
	return f.value
}

// GetNumericType implements attribute.NumericAttribute.
func (f *floatAttribute) GetNumericType() attr.NumericType {
	return attr.Float
}

// String implements attribute.NumericAttribute.
func (f *floatAttribute) String() string {
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}

// EqualTo implements attribute.NumericAttribute.
func (f *floatAttribute) EqualTo(other attr.NumericAttribute) bool {
	fv, err := CastToFloatAttribute(other)
	if err != nil {
		return false
	}
	return math.Abs(f.value-fv.GetFloat()) <= epsilon
}

// NewFloatAttribute creates a new float attribute from a float64 value.
func NewFloatAttribute(value float64) attr.NumericAttribute {
	return &floatAttribute{value: value}
}

// ParseFloatAttribute parses a CSV field such as "$12.5" as a float64.
func ParseFloatAttribute(value string) (attr.NumericAttribute, error) {
	cleaned, err := cleanNumber(value)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, err
	}
	return &floatAttribute{value: v}, nil
}

// CastToFloatAttribute attempts to cast a NumericAttribute to a FloatValue.
func CastToFloatAttribute(value attr.NumericAttribute) (FloatValue, error) {
	if value == nil || value.GetNumericType() != attr.Float {
		return nil, ErrInvalidType
	}
	fv, ok := value.(FloatValue)
	if !ok {
		return nil, ErrInvalidType
	}
	return fv, nil
}
