package numeric

import (
	attr "csvdoc/pkg/api/attribute"
)

type nothingAttribute struct{}

// EqualTo implements attribute.NumericAttribute. Nothing equals nothing.
func (n nothingAttribute) EqualTo(other attr.NumericAttribute) bool {
	return other != nil && other.GetNumericType() == attr.Nothing
}

// GetNumericType implements attribute.NumericAttribute.
func (n nothingAttribute) GetNumericType() attr.NumericType {
	return attr.Nothing
}

// String implements attribute.NumericAttribute.
func (n nothingAttribute) String() string {
	return ""
}

var (
	_           attr.NumericAttribute = nothingAttribute{}
	NoneNumeric                       = nothingAttribute{}
)
