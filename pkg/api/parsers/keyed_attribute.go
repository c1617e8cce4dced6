package parsers

import (
	"context"

	attr "csvdoc/pkg/api/attribute"
)

// KeyedAttributeParser reads CSV records from a source and sends keyed
// numeric values to a channel
type KeyedAttributeParser interface {
	// ParseAttributes sends one keyed attribute per usable record to out.
	// The channel is closed when parsing is complete or an error occurs.
	ParseAttributes(ctx context.Context, out chan<- attr.KeyedAttribute) error
}
