package attribute

// KeyedAttribute is a numeric value read from one CSV row together with the
// group key taken from another column of the same row.
type KeyedAttribute interface {
	// Key returns the group key
	Key() string

	// Value returns the numeric value associated with the key
	Value() NumericAttribute

	// EqualTo checks if two keyed attributes are equal
	EqualTo(other KeyedAttribute) bool
}
