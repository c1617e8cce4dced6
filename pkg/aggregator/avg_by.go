package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	api "csvdoc/pkg/api/aggregator"
	apiAttr "csvdoc/pkg/api/attribute"
	num "csvdoc/pkg/numeric"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/sync/errgroup"
)

const valueQueueSize = 1024

type avgByGroup struct {
	key   apiAttr.BaseAttribute
	val   apiAttr.NumericAttribute
	count int64
}

func (a avgByGroup) GroupKey() apiAttr.BaseAttribute        { return a.key }
func (a avgByGroup) AverageValue() apiAttr.NumericAttribute { return a.val }
func (a avgByGroup) Count() int64                           { return a.count }

type stringAttr string

func (s stringAttr) String() string { return string(s) }

var (
	_ apiAttr.BaseAttribute = (*stringAttr)(nil)
	_ api.AverageByGroup    = (*avgByGroup)(nil)
	_ api.AverageAggregator = (*avgBy)(nil)

	sumCtx apd.Context = apd.Context{
		Precision:   100,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}

	avgCtx apd.Context = apd.Context{
		Precision:   50,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven, // Banker's rounding for final result
	}
)

type avgBy struct{}

// NewAverageBy creates an aggregator that averages values per key.
// Groups are discovered from the input; every group gets its own worker.
func NewAverageBy() api.AverageAggregator {
	return &avgBy{}
}

type groupResult struct {
	avg   apiAttr.NumericAttribute
	count int64
}

// average consumes in and returns the mean of its values.
// Decimal means are rounded half-even to two places.
func average(ctx context.Context, in <-chan apiAttr.NumericAttribute) (apiAttr.NumericAttribute, int64, error) {
	numType := apiAttr.Nothing
	sumDec := apd.New(0, 0)
	sumFloat := float64(0)
	cnt := int64(0)
	done := ctx.Done()

	for val := range in {
		select {
		case <-done:
			return nil, cnt, ctx.Err()
		default:
		}

		if numType == apiAttr.Nothing {
			numType = val.GetNumericType()
		} else if numType != val.GetNumericType() {
			return nil, cnt, fmt.Errorf("%w: %s and %s", ErrMixedTypes, numType, val.GetNumericType())
		}

		switch numType {
		case apiAttr.Decimal:
			decVal, err := num.CastToDecimalAttribute(val)
			if err != nil {
				slog.ErrorContext(ctx, "Error casting to decimal", slog.Any("error", err))
				return nil, cnt, err
			}
			v := decVal.GetDecimal()
			if _, err := sumCtx.Add(sumDec, sumDec, v); err != nil {
				slog.ErrorContext(ctx, "Error adding value to sum", slog.String("value", v.String()), slog.Any("error", err))
				return nil, cnt, err
			}
		case apiAttr.Float:
			floatVal, err := num.CastToFloatAttribute(val)
			if err != nil {
				slog.ErrorContext(ctx, "Error casting to float", slog.Any("error", err))
				return nil, cnt, err
			}
			sumFloat += floatVal.GetFloat()
		default:
			return nil, cnt, fmt.Errorf("%w: %s", ErrUnknownType, numType)
		}
		cnt++
	}

	switch numType {
	case apiAttr.Decimal:
		avg := apd.New(0, 0)
		if _, err := avgCtx.Quo(avg, sumDec, apd.New(cnt, 0)); err != nil {
			slog.ErrorContext(ctx, "Error calculating average", slog.Any("error", err))
			return nil, cnt, err
		}
		if _, err := avgCtx.Quantize(avg, avg, -2); err != nil {
			slog.ErrorContext(ctx, "Error quantizing average", slog.Any("error", err))
			return nil, cnt, err
		}
		return num.NewDecimalAttribute(avg), cnt, nil
	case apiAttr.Float:
		return num.NewFloatAttribute(sumFloat / float64(cnt)), cnt, nil
	}

	// nothing to average
	return num.NoneNumeric, 0, nil
}

// Process implements aggregator.AverageAggregator.
// Results are ordered by group key.
func (a *avgBy) Process(ctx context.Context, in <-chan apiAttr.KeyedAttribute) ([]api.AverageByGroup, error) {
	queues := make(map[string]chan apiAttr.NumericAttribute)
	// every worker owns its result; they are read only after Wait
	results := make(map[string]*groupResult)

	eg, gctx := errgroup.WithContext(ctx)
	done := gctx.Done()

feed:
	for {
		select {
		case <-done:
			break feed
		case kv, ok := <-in:
			if !ok {
				break feed
			}
			key := kv.Key()
			ch, found := queues[key]
			if !found {
				ch = make(chan apiAttr.NumericAttribute, valueQueueSize)
				res := &groupResult{avg: num.NoneNumeric}
				queues[key] = ch
				results[key] = res
				eg.Go(func() error {
					avg, cnt, err := average(gctx, ch)
					res.avg, res.count = avg, cnt
					return err
				})
				slog.DebugContext(ctx, "New group", slog.String("key", key))
			}
			select {
			case <-done:
				break feed
			case ch <- kv.Value():
			}
		}
	}

	for _, ch := range queues {
		close(ch)
	}
	// unblock a producer still sending after cancellation
	go func() {
		for range in {
		}
	}()

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputs := make([]api.AverageByGroup, 0, len(results))
	for _, key := range slices.Sorted(maps.Keys(results)) {
		res := results[key]
		outputs = append(outputs, avgByGroup{
			key:   stringAttr(key),
			val:   res.avg,
			count: res.count,
		})
	}
	return outputs, nil
}
