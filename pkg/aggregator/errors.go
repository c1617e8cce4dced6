package aggregator

import "errors"

var (
	// ErrMixedTypes is returned when one group receives both decimal and float values
	ErrMixedTypes = errors.New("mixed numeric types in one group")
	// ErrUnknownType is returned for values that are neither decimal nor float
	ErrUnknownType = errors.New("unknown numeric type")
)
