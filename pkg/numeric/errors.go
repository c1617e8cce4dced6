package numeric

import "errors"

var (
	// ErrInvalidType is returned when an invalid type conversion is attempted
	ErrInvalidType = errors.New("invalid type conversion")
	// ErrEmptyValue is returned when a field holds nothing but currency marks and white space
	ErrEmptyValue = errors.New("empty numeric value")
)
