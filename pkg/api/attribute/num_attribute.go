package attribute

// NumericType represents the type of numeric value
type NumericType int

const (
	// Nothing marks the absence of a value, e.g. the average of an empty group
	Nothing NumericType = iota
	// Float represents a float64 value
	Float
	// Decimal represents an arbitrary decimal value with fixed precision
	Decimal
)

// String returns the name of the numeric type.
func (t NumericType) String() string {
	switch t {
	case Float:
		return "float"
	case Decimal:
		return "decimal"
	default:
		return "nothing"
	}
}

type NumericAttribute interface {
	BaseAttribute
	// GetNumericType returns the type of numeric value
	GetNumericType() NumericType
	// EqualTo checks if two numeric attributes are equal
	EqualTo(other NumericAttribute) bool
}
