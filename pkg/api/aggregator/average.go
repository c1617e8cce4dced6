package aggregator

import (
	"context"

	attr "csvdoc/pkg/api/attribute"
)

// AverageByGroup represents aggregated values for a group
type AverageByGroup interface {
	GroupKey() attr.BaseAttribute
	AverageValue() attr.NumericAttribute
	Count() int64
}

// AverageAggregator groups keyed attributes by key and averages each group.
type AverageAggregator interface {
	Process(ctx context.Context, in <-chan attr.KeyedAttribute) ([]AverageByGroup, error)
}
